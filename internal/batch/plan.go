package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"subsync/internal/config"
	"subsync/internal/history"
	"subsync/internal/logging"
	"subsync/internal/match"
	"subsync/internal/services"
	"subsync/internal/timecode"
)

// Job is one subtitle scheduled for shifting.
type Job struct {
	Subtitle   string
	Dialect    timecode.Dialect
	Video      string // empty when unmatched
	OutputName string
	Matched    bool
	Episode    int
	HasEpisode bool
}

// Plan is the computed work for one folder, produced once and then only read.
type Plan struct {
	RunID     string
	Folder    string
	OffsetMS  int64
	Videos    int
	Subtitles int
	Jobs      []Job
}

// Runner coordinates planning and execution for batch runs.
type Runner struct {
	cfg    *config.Config
	store  *history.Store // nil when history is disabled
	logger *slog.Logger
}

// New constructs a batch runner. store may be nil to skip history recording.
func New(cfg *config.Config, store *history.Store, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		store:  store,
		logger: logging.NewComponentLogger(logger, "batch"),
	}
}

// Plan enumerates folder and computes the matching. Failure to enumerate the
// folder is the one fatal scan error; everything downstream is per-file.
func (r *Runner) Plan(ctx context.Context, folder string, offsetMS int64) (*Plan, error) {
	absFolder, err := filepath.Abs(folder)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "batch", "resolve folder", "", err)
	}
	info, err := os.Stat(absFolder)
	if err != nil {
		return nil, services.Wrap(services.ErrUnreadable, "batch", "inspect folder", absFolder, err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrValidation, "batch", "inspect folder",
			fmt.Sprintf("%s is not a directory", absFolder), nil)
	}

	entries, err := os.ReadDir(absFolder)
	if err != nil {
		return nil, services.Wrap(services.ErrUnreadable, "batch", "scan folder", absFolder, err)
	}

	plan := &Plan{
		RunID:    uuid.NewString(),
		Folder:   absFolder,
		OffsetMS: offsetMS,
	}
	ctx = services.WithRunID(services.WithFolder(ctx, absFolder), plan.RunID)
	logger := logging.WithContext(ctx, r.logger)

	videoSet := r.cfg.VideoExtensionSet()
	var videos, subtitles []match.MediaFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		switch {
		case hasExtension(videoSet, ext):
			videos = append(videos, match.NewMediaFile(name, match.RoleVideo))
		default:
			if _, ok := timecode.ForExtension(ext); ok {
				subtitles = append(subtitles, match.NewMediaFile(name, match.RoleSubtitle))
			}
		}
	}
	plan.Videos = len(videos)
	plan.Subtitles = len(subtitles)

	dupes := match.DuplicateEpisodes(videos)
	for _, number := range sortedKeys(dupes) {
		logger.Warn("multiple videos share an episode number; first in listing order wins",
			logging.Int(logging.FieldEpisode, number),
			logging.String("videos", strings.Join(dupes[number], ", ")),
		)
	}

	for _, res := range match.All(videos, subtitles, r.cfg.Naming.FallbackPrefix) {
		dialect, ok := timecode.ForExtension(strings.ToLower(filepath.Ext(res.Subtitle.Name)))
		if !ok {
			continue
		}
		job := Job{
			Subtitle:   res.Subtitle.Name,
			Dialect:    dialect,
			Matched:    res.Matched,
			OutputName: res.OutputName,
			Episode:    res.Subtitle.Episode,
			HasEpisode: res.Subtitle.HasEpisode,
		}
		if res.Matched {
			job.Video = res.Video.Name
		}
		// A derived name identical to the source would rewrite the original
		// in place; fall back to prefix naming instead.
		if job.OutputName == job.Subtitle {
			job.OutputName = r.cfg.Naming.FallbackPrefix + job.Subtitle
			logger.Warn("output name collides with source subtitle; using fallback prefix",
				logging.String(logging.FieldSubtitle, job.Subtitle),
				logging.String(logging.FieldOutput, job.OutputName),
			)
		}
		plan.Jobs = append(plan.Jobs, job)
	}

	logger.Info("folder scanned",
		logging.Int("videos", plan.Videos),
		logging.Int("subtitles", plan.Subtitles),
		logging.Int64(logging.FieldOffsetMS, offsetMS),
	)
	return plan, nil
}

func hasExtension(set map[string]struct{}, ext string) bool {
	_, ok := set[ext]
	return ok
}

// sortedKeys keeps the duplicate-episode warnings in a deterministic order.
func sortedKeys(groups map[int][]string) []int {
	keys := make([]int, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}
