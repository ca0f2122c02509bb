package constants

const (
	AppName           = "trackly"
	DefaultConfigPath = "~/.config/trackly/trackly.db"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MaxTitleLen caps tracker titles at the display limit.
	MaxTitleLen = 38
)
