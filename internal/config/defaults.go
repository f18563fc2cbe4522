package config

const (
	defaultLogDir          = "~/.local/share/subsync/logs"
	defaultHistoryDB       = "~/.local/share/subsync/history.db"
	defaultFallbackPrefix  = "shifted_"
	defaultLockFileName    = ".subsync.lock"
	defaultMinFreeSpaceMiB = 16
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

var defaultVideoExtensions = []string{".mkv", ".mp4", ".avi"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			HistoryDB: defaultHistoryDB,
		},
		Scan: Scan{
			VideoExtensions: append([]string{}, defaultVideoExtensions...),
		},
		Naming: Naming{
			FallbackPrefix: defaultFallbackPrefix,
		},
		Batch: Batch{
			LockFileName:    defaultLockFileName,
			MinFreeSpaceMiB: defaultMinFreeSpaceMiB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
		},
	}
}
