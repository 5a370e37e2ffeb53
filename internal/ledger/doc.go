// Package ledger keeps a SQLite history of validation runs.
//
// The database lives at <dir>/history.db and is migrated on Open from the
// embedded migrations/*.sql files. Writers serialise on an exclusive file
// lock (<dir>/history.lock) so several cplcheck invocations can share one
// ledger without tripping over SQLite's single-writer rule.
package ledger
