package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdln/dot-dev/internal/config"
	"github.com/cmdln/dot-dev/internal/profile"
	"github.com/cmdln/dot-dev/internal/prompt"
	"github.com/cmdln/dot-dev/internal/util"
)

var (
	addName         string
	addDescription  string
	addDefaultValue string
	addRequired     bool
	addOptional     bool
	addProfile      string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new environment variable",
	Long: `Adds an environment variable to the default profile, or to the profile named by --profile.
Anything not given as a flag is prompted for. An empty --description or --default-value
means none. If the profile already defines the variable you are asked whether to replace it.`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	path := configPath()
	req := addRequest(cmd, path)

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if original, ok := cfg.Profile(addProfile); ok {
		logger.Debug("original profile", "profile", fmt.Sprintf("%+v", original))
	}

	updated, err := profile.AddVariable(cfg, req, prompt.Console{Terminal: newTerminal()})
	if err != nil {
		return err
	}
	if p, ok := updated.Profile(addProfile); ok {
		logger.Debug("profile after adding", "profile", fmt.Sprintf("%+v", p))
	}

	logger.Debug("saving", "path", path)
	if err := config.Save(path, updated); err != nil {
		return err
	}

	util.SuccessColor.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	return nil
}

// addRequest collects the flags that were given; the rest stay nil and are prompted for
func addRequest(cmd *cobra.Command, path string) profile.AddRequest {
	flags := cmd.Flags()
	req := profile.AddRequest{
		Required: addRequired && !addOptional,
		Source:   path,
	}
	if flags.Changed("name") {
		req.Name = &addName
	}
	if flags.Changed("description") {
		req.Description = &addDescription
	}
	if flags.Changed("default-value") {
		req.DefaultValue = &addDefaultValue
	}
	if flags.Changed("profile") {
		req.ProfileName = &addProfile
	}
	return req
}

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "Name for the new environment variable, usually all upper case")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Optional description")
	addCmd.Flags().StringVarP(&addDefaultValue, "default-value", "D", "", "Default value to present when generating the dot file")
	addCmd.Flags().BoolVarP(&addRequired, "required", "r", false, "Mark the variable as required")
	addCmd.Flags().BoolVarP(&addOptional, "optional", "o", false, "Mark the variable as optional (the default)")
	addCmd.Flags().StringVarP(&addProfile, "profile", "p", "", "Profile to add to instead of the default profile")
	addCmd.MarkFlagsMutuallyExclusive("required", "optional")
	rootCmd.AddCommand(addCmd)
}
