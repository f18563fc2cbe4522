package history

import "time"

// FileStatus classifies the outcome of one subtitle within a run.
type FileStatus string

const (
	FileMatched  FileStatus = "matched"
	FileFallback FileStatus = "fallback"
	FileFailed   FileStatus = "failed"
)

// Run is one recorded batch invocation.
type Run struct {
	ID         string
	Folder     string
	OffsetMS   int64
	StartedAt  time.Time
	FinishedAt time.Time // zero until the run completes
	Processed  int
	Matched    int
	Fallback   int
	Failed     int
}

// Finished reports whether the run recorded a completion timestamp.
func (r Run) Finished() bool {
	return !r.FinishedAt.IsZero()
}

// FileRecord is the per-subtitle outcome within a run.
type FileRecord struct {
	RunID    string
	Subtitle string
	Output   string
	Video    string
	Status   FileStatus
	Detail   string
}
