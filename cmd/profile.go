package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cmdln/dot-dev/internal/config"
	"github.com/cmdln/dot-dev/internal/util"
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Short:   "Manage profiles",
	Aliases: []string{"p"},
}

var profileListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all profiles, the default first",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		util.InfoColor.Fprintln(out, "Profiles:")
		var data [][]string
		for _, name := range cfg.Names() {
			p, _ := cfg.Profile(name)
			data = append(data, []string{name, util.OrDash(p.Description), strconv.Itoa(len(p.Definitions))})
		}

		util.WriteTable(out, []string{"Profile", "Description", "Definitions"}, data)
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	rootCmd.AddCommand(profileCmd)
}
