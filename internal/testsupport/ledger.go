package testsupport

import (
	"context"
	"testing"

	"cplcheck/internal/ledger"
	"cplcheck/internal/report"
)

// MustOpenLedger opens a ledger.Store in dir for tests and registers cleanup.
func MustOpenLedger(t testing.TB, dir string) *ledger.Store {
	t.Helper()

	store, err := ledger.Open(dir)
	if err != nil {
		t.Fatalf("ledger.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// Record stores rep in the ledger and fails the test on error.
func Record(t testing.TB, store *ledger.Store, rep report.Report) ledger.Entry {
	t.Helper()

	entry, err := store.Record(context.Background(), rep)
	if err != nil {
		t.Fatalf("store.Record: %v", err)
	}
	return entry
}
