package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"subsync/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List past runs, or the files of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("run history is disabled; enable it under [history] in the configuration")
			}
			store, err := ctx.openStore()
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			if len(args) == 1 {
				return renderRunDetail(cmd, store, args[0])
			}
			return renderRunList(cmd, store, limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}

func renderRunList(cmd *cobra.Command, store *history.Store, limit int) error {
	runs, err := store.RecentRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No recorded runs")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			shortRunID(run.ID),
			run.StartedAt.Local().Format(time.DateTime),
			run.Folder,
			formatOffset(run.OffsetMS),
			strconv.Itoa(run.Processed),
			strconv.Itoa(run.Matched),
			strconv.Itoa(run.Fallback),
			strconv.Itoa(run.Failed),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"RUN", "STARTED", "FOLDER", "SHIFT", "FILES", "MATCHED", "FALLBACK", "FAILED"},
		rows,
		4, 5, 6, 7,
	))
	return nil
}

func renderRunDetail(cmd *cobra.Command, store *history.Store, runID string) error {
	run, err := resolveRun(cmd, store, runID)
	if err != nil {
		return err
	}
	files, err := store.FilesForRun(cmd.Context(), run.ID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s in %s, shift %s\n", run.ID, run.Folder, formatOffset(run.OffsetMS))
	if len(files) == 0 {
		fmt.Fprintln(out, "No file records")
		return nil
	}

	rows := make([][]string, 0, len(files))
	for _, file := range files {
		rows = append(rows, []string{
			file.Subtitle,
			string(file.Status),
			orDash(file.Output),
			orDash(file.Video),
			orDash(file.Detail),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"SUBTITLE", "STATUS", "OUTPUT", "VIDEO", "DETAIL"},
		rows,
	))
	return nil
}

// resolveRun accepts a full run ID or an unambiguous prefix of one.
func resolveRun(cmd *cobra.Command, store *history.Store, runID string) (history.Run, error) {
	matches, err := store.FindRuns(cmd.Context(), runID)
	if err != nil {
		return history.Run{}, err
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return history.Run{}, fmt.Errorf("no run matches %q", runID)
	default:
		return history.Run{}, fmt.Errorf("run prefix %q is ambiguous (%d matches)", runID, len(matches))
	}
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
