package constants

// Hub layout
const (
	// DefaultHubDir is the hub directory created under the user's home directory
	DefaultHubDir = ".local-git-hub"
	// BareSuffix marks hub members on disk
	BareSuffix = ".git"
)

// Remote names
const (
	DefaultHubRemote  = "local-hub"
	DefaultPushRemote = "origin"
)

// Name limits
const (
	MaxNameLength = 255
)

// Configuration
const (
	ConfigDir       = ".localhub"
	ConfigFile      = "config.yaml"
	EnvPrefix       = "LOCALHUB_"
	DefaultLogLevel = "warn"
)

// TimeFormat is used for modification timestamps in listings
const TimeFormat = "2006-01-02 15:04:05"
