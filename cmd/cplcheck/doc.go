// Package main hosts the cplcheck CLI entrypoint and command graph.
//
// The Cobra command tree decodes Composition Playlist files, runs the
// semantic validator from internal/cpl, and reports the outcome as status
// lines, tables or JSON. Configuration and the logger are resolved once per
// invocation by commandContext; every validation run is appended to the
// history ledger unless history is disabled.
//
// Keep this package declarative: behaviour belongs in the internal packages
// and is only surfaced here through commands and flags.
package main
