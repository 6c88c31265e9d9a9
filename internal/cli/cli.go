package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/stepadapter/internal/app"
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

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("stepadapter", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
stepadapter - Builds the arguments of a pipeline step from the results of the
steps before it.

Usage:
  stepadapter [options] [RECIPES_PATH]

Arguments:
  RECIPES_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	recipesFlag := flagSet.String("recipes", "", "Path to the recipe file or directory.")
	rFlag := flagSet.String("r", "", "Path to the recipe file or directory (shorthand).")
	inputsFlag := flagSet.String("inputs", "", "Path to the inputs snapshot (.json, .hcl, .yaml).")
	iFlag := flagSet.String("i", "", "Path to the inputs snapshot (shorthand).")
	stepFlag := flagSet.String("step", "", "Name of the step whose arguments to build.")
	sFlag := flagSet.String("s", "", "Name of the step whose arguments to build (shorthand).")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := firstNonEmpty(*recipesFlag, *rFlag, flagSet.Arg(0))
	if path == "" {
		slog.Debug("No recipes path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		RecipesPath: path,
		InputsPath:  firstNonEmpty(*inputsFlag, *iFlag),
		Step:        firstNonEmpty(*stepFlag, *sFlag),
		LogFormat:   strings.ToLower(*logFormatFlag),
		LogLevel:    strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
