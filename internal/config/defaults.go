package config

const (
	defaultLogFormat               = "console"
	defaultLogLevel                = "info"
	defaultStrictSequenceKinds     = false
	defaultRequirePositiveEditRate = true
	defaultHistoryEnabled          = true
	defaultHistoryDir              = "~/.local/share/cplcheck"
	defaultHistoryListLimit        = 20
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Validation: Validation{
			StrictSequenceKinds:     defaultStrictSequenceKinds,
			RequirePositiveEditRate: defaultRequirePositiveEditRate,
		},
		History: History{
			Enabled:   defaultHistoryEnabled,
			Dir:       defaultHistoryDir,
			ListLimit: defaultHistoryListLimit,
		},
	}
}
