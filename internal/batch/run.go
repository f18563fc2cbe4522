package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"subsync/internal/fileutil"
	"subsync/internal/history"
	"subsync/internal/logging"
	"subsync/internal/services"
	"subsync/internal/subshift"
)

// Summary aggregates the outcome of one executed plan.
type Summary struct {
	RunID       string
	Processed   int
	Matched     int
	Fallback    int
	Failed      int
	ShiftedCues int
	ClampedCues int
	Warnings    int
}

// Execute runs the plan: lock the folder, then read, shift, and write each
// subtitle in order. Per-file failures are recorded and skipped; the returned
// error is non-nil only for fatal conditions (lock contention, preflight) or
// context cancellation.
func (r *Runner) Execute(ctx context.Context, plan *Plan) (*Summary, error) {
	ctx = services.WithRunID(services.WithFolder(ctx, plan.Folder), plan.RunID)
	logger := logging.WithContext(ctx, r.logger)

	lockPath := filepath.Join(plan.Folder, r.cfg.Batch.LockFileName)
	folderLock := flock.New(lockPath)
	locked, err := folderLock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrLocked, "batch", "lock folder", lockPath, err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrLocked, "batch", "lock folder",
			fmt.Sprintf("%s is held by another run", lockPath), nil)
	}
	defer func() {
		_ = folderLock.Unlock()
		_ = os.Remove(lockPath)
	}()

	if err := checkFreeSpace(plan.Folder, r.cfg.Batch.MinFreeSpaceMiB); err != nil {
		return nil, services.Wrap(services.ErrValidation, "batch", "preflight", plan.Folder, err)
	}

	summary := &Summary{RunID: plan.RunID}

	var run *history.Run
	if r.store != nil {
		run, err = r.store.StartRun(ctx, plan.RunID, plan.Folder, plan.OffsetMS)
		if err != nil {
			// History is an audit trail; its failure must not block the batch.
			logger.Warn("history recording unavailable for this run", logging.Error(err))
			run = nil
		}
	}

	for _, job := range plan.Jobs {
		if ctx.Err() != nil {
			logger.Warn("run interrupted; remaining subtitles left untouched",
				logging.Int("remaining", len(plan.Jobs)-summary.Processed-summary.Failed))
			r.finishRun(ctx, run, summary)
			return summary, ctx.Err()
		}
		r.processJob(ctx, plan, job, summary, run)
	}

	r.finishRun(ctx, run, summary)
	logger.Info("batch complete",
		logging.Int("processed", summary.Processed),
		logging.Int("matched", summary.Matched),
		logging.Int("fallback", summary.Fallback),
		logging.Int("failed", summary.Failed),
		logging.Int("shifted_cues", summary.ShiftedCues),
		logging.Int("clamped_cues", summary.ClampedCues),
	)
	return summary, nil
}

func (r *Runner) processJob(ctx context.Context, plan *Plan, job Job, summary *Summary, run *history.Run) {
	logger := logging.WithContext(ctx, r.logger).With(
		logging.Args(
			logging.String(logging.FieldSubtitle, job.Subtitle),
			logging.String(logging.FieldDialect, job.Dialect.String()),
		)...,
	)

	sourcePath := filepath.Join(plan.Folder, job.Subtitle)
	text, encoding, err := fileutil.ReadDocument(sourcePath)
	if err != nil {
		summary.Failed++
		logger.Warn("skipping unreadable subtitle", logging.Error(err))
		r.recordFile(ctx, run, history.FileRecord{
			RunID: plan.RunID, Subtitle: job.Subtitle,
			Status: history.FileFailed, Detail: err.Error(),
		})
		return
	}
	if encoding != fileutil.EncodingUTF8 {
		logger.Debug("decoded legacy encoding", logging.String("encoding", encoding))
	}

	shifted, report := subshift.Shift(text, job.Dialect, plan.OffsetMS)
	for _, warning := range report.Warnings {
		logger.Warn("timing line failed to decode; left unmodified",
			logging.Int("line", warning.Line),
			logging.Error(warning.Err),
		)
	}
	summary.Warnings += len(report.Warnings)
	summary.ShiftedCues += report.ShiftedCues
	summary.ClampedCues += report.ClampedCues

	outputPath := filepath.Join(plan.Folder, job.OutputName)
	if err := fileutil.WriteDocument(outputPath, shifted); err != nil {
		summary.Failed++
		logger.Warn("skipping unwritable output",
			logging.String(logging.FieldOutput, job.OutputName),
			logging.Error(err),
		)
		r.recordFile(ctx, run, history.FileRecord{
			RunID: plan.RunID, Subtitle: job.Subtitle, Video: job.Video,
			Status: history.FileFailed, Detail: err.Error(),
		})
		return
	}

	summary.Processed++
	record := history.FileRecord{
		RunID: plan.RunID, Subtitle: job.Subtitle,
		Output: job.OutputName, Video: job.Video,
	}
	if job.Matched {
		summary.Matched++
		record.Status = history.FileMatched
		logger.Info("shifted and renamed to match video",
			logging.String(logging.FieldVideo, job.Video),
			logging.String(logging.FieldOutput, job.OutputName),
			logging.Int("cues", report.ShiftedCues),
		)
	} else {
		summary.Fallback++
		record.Status = history.FileFallback
		logger.Info("shifted without a matching video",
			logging.String(logging.FieldOutput, job.OutputName),
			logging.Int("cues", report.ShiftedCues),
		)
	}
	r.recordFile(ctx, run, record)
}

func (r *Runner) recordFile(ctx context.Context, run *history.Run, rec history.FileRecord) {
	if r.store == nil || run == nil {
		return
	}
	if err := r.store.RecordFile(ctx, rec); err != nil {
		logging.WithContext(ctx, r.logger).Warn("failed to record file outcome", logging.Error(err))
	}
}

func (r *Runner) finishRun(ctx context.Context, run *history.Run, summary *Summary) {
	if r.store == nil || run == nil {
		return
	}
	run.Processed = summary.Processed
	run.Matched = summary.Matched
	run.Fallback = summary.Fallback
	run.Failed = summary.Failed
	if err := r.store.FinishRun(ctx, run); err != nil {
		logging.WithContext(ctx, r.logger).Warn("failed to finalize run history", logging.Error(err))
	}
}
