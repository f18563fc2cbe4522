package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "subsync [folder] [seconds]",
		Short:         "Shift subtitle timestamps in bulk and rename them to match videos",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// `subsync <folder> <seconds>` is shorthand for `subsync shift`.
			switch len(args) {
			case 0:
				return cmd.Help()
			case 2:
				return runShift(cmd, ctx, args[0], args[1])
			default:
				return errors.New("expected a folder and a shift in seconds")
			}
		},
	}
	// A negative shift like -5.43 must stay positional once the folder has
	// been seen.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newShiftCommand(ctx))
	rootCmd.AddCommand(newPreviewCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
