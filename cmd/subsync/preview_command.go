package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <folder>",
		Short: "Show the planned renames without writing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, cleanup, err := ctx.newRunner(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			plan, err := runner.Plan(cmd.Context(), args[0], 0)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(plan.Jobs) == 0 {
				fmt.Fprintf(out, "No subtitle files found in %s\n", plan.Folder)
				return nil
			}

			rows := make([][]string, 0, len(plan.Jobs))
			matched := 0
			for _, job := range plan.Jobs {
				if job.Matched {
					matched++
				}
				video := job.Video
				if video == "" {
					video = "-"
				}
				rows = append(rows, []string{
					job.Subtitle,
					episodeLabel(job.Episode, job.HasEpisode),
					video,
					job.OutputName,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"SUBTITLE", "EP", "VIDEO", "OUTPUT"},
				rows,
				1,
			))
			fmt.Fprintf(out, "%s: %d matched, %d fallback\n",
				plural(len(plan.Jobs), "subtitle"), matched, len(plan.Jobs)-matched)
			return nil
		},
	}
	return cmd
}
