/*
dot-dev - Development Environment Profiles
Copyright (c) 2024 The dot-dev Authors. All rights reserved.

Licensed under the Business Source License 1.1.
See LICENSE file for full terms.
*/

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmdln/dot-dev/internal/apperr"
	"github.com/cmdln/dot-dev/internal/config"
	"github.com/cmdln/dot-dev/internal/logging"
	"github.com/cmdln/dot-dev/internal/prompt"
	"github.com/cmdln/dot-dev/internal/terminal"
	"github.com/cmdln/dot-dev/internal/util"
)

// ExitInterrupted is the exit status after Ctrl-C, as a shell reports SIGINT
const ExitInterrupted = 130

var (
	version string
	commit  string
	date    string
)

var (
	verbose bool
	logger  = hclog.NewNullLogger()

	// Swapped out in tests
	newTerminal = func() prompt.Terminal { return terminal.Open() }
	interactive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
	}
)

var rootCmd = &cobra.Command{
	Use:   "dot-dev",
	Short: "Manage profiles of environment variables for local development",
	Long: `dot-dev keeps named profiles of environment variable definitions in a JSON file.
Variables are added from flags or interactive prompts, and a profile can be
turned into a dot-env file for a project.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := config.LogLevel()
		if verbose {
			level = "debug"
		}
		logger = logging.New(level, cmd.ErrOrStderr())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

// reportError prints err for the user and returns the exit status
func reportError(w io.Writer, err error) int {
	if errors.Is(err, apperr.ErrInterrupted) {
		fmt.Fprintln(w, "^C")
		return ExitInterrupted
	}
	util.ErrorColor.Fprintf(w, "Error: %s\n", apperr.UserFriendlyMessage(err))
	return 1
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date)
}

// configPath is the profile store named by --file, the settings file or the built-in default
func configPath() string {
	if path := config.ConfigFile(); path != "" {
		return path
	}
	return config.DefaultFile
}

func envFilePath() string {
	if path := config.EnvFile(); path != "" {
		return path
	}
	return config.DefaultEnvFile
}

func init() {
	rootCmd.PersistentFlags().StringP("file", "f", "", fmt.Sprintf("Config file holding the profiles (default %q)", config.DefaultFile))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	_ = viper.BindPFlag(config.KeyFile, rootCmd.PersistentFlags().Lookup("file"))
}
