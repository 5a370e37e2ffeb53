package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cplcheck/internal/config"
	"cplcheck/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show configuration and history ledger readiness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cmd.Context(), cfg)
			if jsonOutput {
				return writeJSON(cmd, results)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			lines := []string{renderHeading("Settings", colorize)}
			lines = append(lines, settingLines(ctx, cfg)...)
			lines = append(lines, "", renderHeading("Checks", colorize))
			for _, result := range results {
				lines = append(lines, renderCheckLine(result, colorize))
			}
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output preflight results as JSON")
	return cmd
}

// settingLines lists the resolved values that change how files are
// validated and where runs are recorded.
func settingLines(ctx *commandContext, cfg *config.Config) []string {
	source := ctx.configPath
	if !ctx.configSeen {
		source += " (not found, using defaults)"
	}
	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = "stderr only"
	}
	history := "disabled"
	if cfg.History.Enabled {
		history = cfg.History.Dir
	}
	return []string{
		renderSetting("config", source),
		renderSetting("strict kinds", yesNo(cfg.Validation.StrictSequenceKinds)),
		renderSetting("positive rate", yesNo(cfg.Validation.RequirePositiveEditRate)),
		renderSetting("log file", logFile),
		renderSetting("history", history),
	}
}
