package cmd

import (
	"github.com/spf13/cobra"

	"move-emitter/core"
)

const (
	VERBOSITY_DEFAULT = core.LOG_WARN
	VERBOSITY_MAX     = core.LOG_TRACE
)

// addVerbosityFlags registers the -v and --quiet flags on the given command
func addVerbosityFlags(command *cobra.Command) {
	command.Flags().CountP("verbose", "v", "increase verbosity, may be repeated")
	command.Flags().BoolP("quiet", "q", false, "do not log anything")
}

// setupLogger builds the process logger from the verbosity flags and installs it as the package default
func setupLogger(command *cobra.Command) (core.Logger, error) {
	verbose, err := command.Flags().GetCount("verbose")
	if err != nil {
		return nil, err
	}

	quiet, err := command.Flags().GetBool("quiet")
	if err != nil {
		return nil, err
	}

	level := VERBOSITY_DEFAULT + core.LogLevel(verbose)
	if level > VERBOSITY_MAX {
		level = VERBOSITY_MAX
	}
	if quiet {
		level = core.LOG_SILENT
	}

	logger, err := core.NewDevelopmentLogger(level)
	if err != nil {
		return nil, err
	}

	core.SetLogger(logger)

	return logger, nil
}
