package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShiftCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift <folder> <seconds>",
		Short: "Shift every subtitle in a folder and rename to match videos",
		Long: `Shift rewrites every .srt and .ass file in the folder by the given number
of seconds (negative shifts subtitles earlier, clamped at zero) and names
each output after the video file sharing its episode number. Originals are
never modified. Subtitles without a matching video keep their own name
behind the fallback prefix.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift(cmd, ctx, args[0], args[1])
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runShift(cmd *cobra.Command, ctx *commandContext, folder, seconds string) error {
	offsetMS, err := parseOffsetSeconds(seconds)
	if err != nil {
		return err
	}

	runner, cleanup, err := ctx.newRunner(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer cleanup()

	plan, err := runner.Plan(cmd.Context(), folder, offsetMS)
	if err != nil {
		return err
	}
	if len(plan.Jobs) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No subtitle files found in %s\n", plan.Folder)
		return nil
	}

	summary, err := runner.Execute(cmd.Context(), plan)
	if summary != nil {
		renderSummary(cmd.OutOrStdout(), plan, summary)
	}
	return err
}
