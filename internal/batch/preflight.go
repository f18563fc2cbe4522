package batch

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// checkFreeSpace verifies the target filesystem has room for the rewritten
// subtitles before any file is touched.
func checkFreeSpace(folder string, minMiB int) error {
	if minMiB <= 0 {
		return nil
	}
	var stat unix.Statfs_t
	if err := unix.Statfs(folder, &stat); err != nil {
		return fmt.Errorf("statfs: %w", err)
	}
	available := uint64(stat.Bavail) * uint64(stat.Bsize)
	required := uint64(minMiB) * 1024 * 1024
	if available < required {
		return fmt.Errorf("insufficient free space: %d MiB available, %d MiB required",
			available/(1024*1024), minMiB)
	}
	return nil
}
