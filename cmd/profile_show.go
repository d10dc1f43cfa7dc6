package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdln/dot-dev/internal/config"
	"github.com/cmdln/dot-dev/internal/profile"
	"github.com/cmdln/dot-dev/internal/tui"
)

var profileShowCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show the definitions of a profile",
	Long: `Shows a profile and its definitions. Without a name an interactive picker
is opened on a terminal; otherwise the default profile is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		name := profile.DefaultName
		switch {
		case len(args) == 1:
			name = args[0]
		case interactive():
			name, err = tui.SelectProfile(cfg)
			if err != nil {
				return err
			}
		}

		p, err := cfg.Lookup(name, path)
		if err != nil {
			return err
		}
		if profile.IsDefault(name) {
			name = profile.DefaultName
		}

		fmt.Fprint(cmd.OutOrStdout(), tui.RenderProfile(name, p))
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
}
