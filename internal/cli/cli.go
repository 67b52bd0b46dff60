// Package cli parses the command line into an app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/somiandras/gtm-docs/internal/app"
	"github.com/somiandras/gtm-docs/internal/config"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating the program should exit cleanly (help
// requested or nothing to do), or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("gtm-docs", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gtm-docs - generate cross-linked documentation for a Tag Manager container.

Usage:
  gtm-docs [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to the HCL configuration file describing the container,
    credentials and output target.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the configuration file.")
	cFlag := flagSet.String("c", "", "Path to the configuration file (shorthand).")
	outputFlag := flagSet.String("output", "", "Output file path, overriding the configuration. Use '-' for stdout.")
	formatFlag := flagSet.String("format", "", "Output format, overriding the configuration. Options: 'markdown' or 'html'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 4, "Number of concurrent section builders.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	switch {
	case *configFlag != "":
		path = *configFlag
	case *cFlag != "":
		path = *cFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	}
	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	if f := strings.ToLower(*formatFlag); f != "" && f != config.FormatMarkdown && f != config.FormatHTML {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'markdown' or 'html'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg, err := app.NewConfig(app.Config{
		ConfigPath: path,
		OutputPath: *outputFlag,
		Format:     strings.ToLower(*formatFlag),
		LogFormat:  logFormat,
		LogLevel:   logLevel,
		Workers:    *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}
