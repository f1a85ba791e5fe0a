package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vk/hmlc/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	// A .env file, when present, supplies environment-level mode flags.
	_ = godotenv.Load()

	flagSet := flag.NewFlagSet("hmlc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
hmlc - a component compiler for hml/css/js/json source trees.

Usage:
  hmlc [options] [PROJECT_PATH]

Arguments:
  PROJECT_PATH
    Path to the project.hcl build configuration file.

Options:
`)
		flagSet.PrintDefaults()
	}

	projectFlag := flagSet.String("project", "", "Path to the project.hcl file.")
	pFlag := flagSet.String("p", "", "Path to the project.hcl file (shorthand).")
	modeFlag := flagSet.String("mode", "", "Override the build-target mode. Options: 'rich', 'lite' or 'card'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *projectFlag != "" {
		path = *projectFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Project path determined.", "path", path)

	if path == "" {
		slog.Debug("No project path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	mode := strings.ToLower(*modeFlag)
	if env := os.Getenv("HMLC_MODE"); mode == "" && env != "" {
		mode = strings.ToLower(env)
	}
	switch mode {
	case "", "rich", "lite", "card":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid mode: must be 'rich', 'lite' or 'card'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if env := os.Getenv("HMLC_LOG_LEVEL"); logLevel == "" && env != "" {
		logLevel = strings.ToLower(env)
	}
	switch logLevel {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ProjectPath:  path,
		ModeOverride: mode,
		LogLevel:     logLevel,
		LogFormat:    logFormat,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
