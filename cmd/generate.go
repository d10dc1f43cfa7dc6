package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdln/dot-dev/internal/apperr"
	"github.com/cmdln/dot-dev/internal/config"
	"github.com/cmdln/dot-dev/internal/dotenv"
	"github.com/cmdln/dot-dev/internal/profile"
	"github.com/cmdln/dot-dev/internal/prompt"
	"github.com/cmdln/dot-dev/internal/util"
)

var (
	generateProfile  string
	generateOutput   string
	generateDefaults bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Short:   "Write a dot-env file for a profile",
	Aliases: []string{"gen"},
	Long: `Writes every variable of a profile to a dot-env file as KEY=value lines.
Values already in the file are kept, as are keys the profile does not define.
Missing values are prompted for, with the default value offered when there is
one. With --defaults nothing is prompted and a required variable without a
default is an error.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		p, err := cfg.Lookup(generateProfile, path)
		if err != nil {
			return err
		}

		output := generateOutput
		if output == "" {
			output = envFilePath()
		}
		existing, err := dotenv.Read(output)
		if err != nil {
			return err
		}
		logger.Debug("existing values", "path", output, "count", len(existing))

		var src dotenv.Source = defaultsSource
		if !generateDefaults {
			src = promptSource(newTerminal())
		}
		entries, err := dotenv.Resolve(p, existing, src)
		if err != nil {
			return err
		}

		logger.Debug("writing", "path", output, "count", len(entries))
		if err := dotenv.Write(output, entries); err != nil {
			return err
		}

		util.SuccessColor.Fprintf(cmd.OutOrStdout(), "Wrote %d variables to %s\n", len(entries), output)
		return nil
	},
}

// promptSource asks for each missing value. Required variables without a
// default must be answered; the rest fall back to their default, or are left
// out when there is none.
func promptSource(t prompt.Terminal) dotenv.Source {
	return func(v profile.EnvironmentVariable) (string, bool, error) {
		if v.Required && v.DefaultValue == "" {
			value, err := prompt.Required(t, v.Name+": ")
			if err != nil {
				return "", false, err
			}
			return value, true, nil
		}

		label := v.Name + ": "
		if v.DefaultValue != "" {
			label = fmt.Sprintf("%s [%s]: ", v.Name, v.DefaultValue)
		}
		value, ok, err := prompt.Optional(t, label)
		if err != nil {
			return "", false, err
		}
		if !ok {
			return v.DefaultValue, v.DefaultValue != "", nil
		}
		return value, true, nil
	}
}

func defaultsSource(v profile.EnvironmentVariable) (string, bool, error) {
	if v.DefaultValue != "" {
		return v.DefaultValue, true, nil
	}
	if v.Required {
		return "", false, apperr.Validation("generate", apperr.ErrMissingValue,
			fmt.Sprintf("%s is required and has no default value.", v.Name),
			"Run generate without --defaults to be prompted for it",
			fmt.Sprintf("Add it to the env file by hand as %s=...", v.Name),
		)
	}
	return "", false, nil
}

func init() {
	generateCmd.Flags().StringVarP(&generateProfile, "profile", "p", "", "Profile to generate instead of the default profile")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", fmt.Sprintf("File to write (default from settings, else %q)", config.DefaultEnvFile))
	generateCmd.Flags().BoolVar(&generateDefaults, "defaults", false, "Use default values without prompting")
	rootCmd.AddCommand(generateCmd)
}
