package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cplcheck/internal/cpl"
	"cplcheck/internal/cplxml"
	"cplcheck/internal/ledger"
	"cplcheck/internal/logging"
	"cplcheck/internal/report"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOutput bool
		strict     bool
		noHistory  bool
	)

	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate one or more Composition Playlist files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			logger = logging.NewComponentLogger(logger, "cli-validate")

			var store *ledger.Store
			if cfg.History.Enabled && !noHistory {
				store, err = ledger.Open(cfg.History.Dir)
				if err != nil {
					return fmt.Errorf("open history ledger: %w", err)
				}
				defer store.Close()
			}

			opts := ctx.validationOptions(strict)
			reports := make([]report.Report, 0, len(args))
			failed := 0
			for _, path := range args {
				rep := validateFile(cmd.Context(), logger, store, path, opts)
				if !rep.Valid {
					failed++
				}
				reports = append(reports, rep)
			}

			if jsonOutput {
				if err := writeJSON(cmd, reports); err != nil {
					return err
				}
			} else {
				printValidationLines(cmd, reports)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d composition playlists failed validation", failed, len(reports))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output reports as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject unrecognised sequence elements")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the runs in the history ledger")
	return cmd
}

// validateFile decodes and validates one document. A nil store skips the
// ledger.
func validateFile(parent context.Context, logger *slog.Logger, store *ledger.Store, path string, opts []cpl.Option) report.Report {
	if parent == nil {
		parent = context.Background()
	}
	runCtx := logging.WithRunID(parent, uuid.NewString())
	log := logging.WithContext(runCtx, logger).With(logging.String(logging.FieldPath, path))

	start := time.Now()
	pl, err := loadPlaylist(path, log, opts)
	rep := report.Build(path, pl, err)
	elapsed := time.Since(start)
	if rep.Valid {
		log.Info("composition playlist valid",
			logging.String("composition_id", rep.CompositionID),
			logging.String("title", rep.Title),
			logging.String("edit_rate", rep.EditRate),
			logging.Int("tracks", len(rep.Tracks)),
			logging.Duration("elapsed", elapsed),
		)
		log.Debug("composition playlist summary", logging.String("summary", report.Summary(pl)))
	} else {
		log.Warn("composition playlist invalid",
			logging.String(logging.FieldErrorCode, rep.ErrorCode),
			logging.Int("schema_problems", len(rep.Problems)),
			logging.Duration("elapsed", elapsed),
			logging.Error(err),
		)
	}

	if store != nil {
		if _, err := store.Record(runCtx, rep); err != nil {
			log.Warn("failed to record validation run", logging.Error(err))
		}
	}
	return rep
}

func loadPlaylist(path string, logger *slog.Logger, opts []cpl.Option) (*cpl.CompositionPlaylist, error) {
	doc, err := cplxml.DecodeFile(path, cplxml.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return cpl.New(doc, opts...)
}

func printValidationLines(cmd *cobra.Command, reports []report.Report) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	failed := 0
	for _, rep := range reports {
		if !rep.Valid {
			failed++
		}
		for _, line := range renderReportLines(rep, colorize) {
			fmt.Fprintln(out, line)
		}
	}
	if len(reports) > 1 {
		fmt.Fprintln(out, renderRunSummary(len(reports), failed))
	}
}
