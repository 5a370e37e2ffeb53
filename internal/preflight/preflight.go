package preflight

import (
	"context"

	"cplcheck/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	if !cfg.History.Enabled {
		return []Result{{Name: ledgerCheckName, Passed: true, Detail: "Disabled"}}
	}

	dirCheck := CheckDirectoryAccess("History directory", cfg.History.Dir)
	results := []Result{dirCheck}
	// Opening the ledger in an unusable directory only repeats the failure.
	if dirCheck.Passed {
		results = append(results, CheckLedger(ctx, cfg.History.Dir))
	}
	return results
}
