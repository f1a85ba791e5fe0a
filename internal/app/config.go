package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	// ProjectPath locates the project.hcl build configuration.
	ProjectPath string
	// ModeOverride, when non-empty, replaces the project file's mode.
	ModeOverride string
	// LogLevel, when non-empty, replaces the project file's log level.
	LogLevel  string
	LogFormat string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectPath == "" {
		return nil, errors.New("ProjectPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
