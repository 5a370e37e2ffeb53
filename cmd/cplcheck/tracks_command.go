package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cplcheck/internal/logging"
	"cplcheck/internal/report"
)

func newTracksCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOutput bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "tracks FILE",
		Short: "List the virtual tracks of a Composition Playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			logger = logging.NewComponentLogger(logger, "cli-tracks")

			pl, err := loadPlaylist(args[0], logger, ctx.validationOptions(strict))
			if err != nil {
				return err
			}
			tracks := report.Tracks(pl)
			if jsonOutput {
				return writeJSON(cmd, tracks)
			}

			rows := make([][]string, 0, len(tracks))
			for _, track := range tracks {
				rows = append(rows, []string{
					track.TrackID,
					kindDisplayName(track.Kind),
					strconv.Itoa(track.Resources),
					strconv.FormatInt(track.Duration, 10),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, report.Summary(pl))
			fmt.Fprintln(out, renderTable(
				[]string{"Track", "Kind", "Resources", "Duration"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output tracks as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject unrecognised sequence elements")
	return cmd
}
