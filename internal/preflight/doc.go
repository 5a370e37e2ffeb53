// Package preflight provides readiness checks for the filesystem paths
// cplcheck writes to.
//
// The CLI "cplcheck status" command runs RunAll and renders each Result as a
// status line. Checks are gated by config: with history disabled the ledger
// is reported as skipped rather than probed.
package preflight
