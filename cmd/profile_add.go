package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdln/dot-dev/internal/apperr"
	"github.com/cmdln/dot-dev/internal/config"
	"github.com/cmdln/dot-dev/internal/profile"
	"github.com/cmdln/dot-dev/internal/prompt"
	"github.com/cmdln/dot-dev/internal/util"
)

var profileAddName string

var profileAddCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new, empty profile",
	Long:  `Adds an empty profile. The name is taken from the argument or --name, or prompted for.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		name := profileAddName
		if len(args) == 1 {
			name = args[0]
		}
		if name == "" {
			name, err = prompt.Required(newTerminal(), "Profile name: ")
			if err != nil {
				return fmt.Errorf("reading profile name: %w", err)
			}
		}

		updated, err := profile.AddProfile(cfg, name)
		if errors.Is(err, apperr.ErrProfileExists) {
			util.WarnColor.Fprintln(cmd.OutOrStdout(), apperr.UserFriendlyMessage(err))
			return nil
		}
		if err != nil {
			return err
		}

		logger.Debug("saving", "path", path, "profile", name)
		if err := config.Save(path, updated); err != nil {
			return err
		}

		util.SuccessColor.Fprintf(cmd.OutOrStdout(), "Profile '%s' added to %s\n", util.BoldColor.Sprint(name), path)
		return nil
	},
}

func init() {
	profileAddCmd.Flags().StringVarP(&profileAddName, "name", "n", "", "Name of the new profile")
	profileCmd.AddCommand(profileAddCmd)
}
