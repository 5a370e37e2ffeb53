// Package report turns the outcome of validating one Composition Playlist
// into a flat, serialisable Report. Failures carry a stable error code so
// the CLI, the history ledger and scripts consuming --json output can branch
// on them without parsing messages.
package report
