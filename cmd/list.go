package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cmdln/dot-dev/internal/config"
	"github.com/cmdln/dot-dev/internal/profile"
	"github.com/cmdln/dot-dev/internal/util"
)

var listProfile string

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the environment variables of a profile",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		p, err := cfg.Lookup(listProfile, path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(p.Definitions) == 0 {
			util.WarnColor.Fprintf(out, "No variables defined in %s.\n", profileLabel(listProfile))
			return nil
		}

		util.InfoColor.Fprintf(out, "Variables in %s:\n", profileLabel(listProfile))
		util.WriteTable(out, []string{"Name", "Required", "Default", "Description"}, definitionRows(p.Definitions))
		return nil
	},
}

// definitionRows flattens definitions into table rows, group members indented under their group
func definitionRows(defs []profile.Definition) [][]string {
	var data [][]string
	for _, d := range defs {
		switch {
		case d.Variable != nil:
			data = append(data, variableRow("", *d.Variable))
		case d.Group != nil:
			data = append(data, []string{"[" + d.Group.Name + "]", "", "", ""})
			for _, m := range d.Group.Members {
				data = append(data, variableRow("  ", m))
			}
		}
	}
	return data
}

func variableRow(indent string, v profile.EnvironmentVariable) []string {
	return []string{
		indent + v.Name,
		util.YesNo(v.Required),
		util.OrDash(v.DefaultValue),
		util.OrDash(v.Description),
	}
}

func profileLabel(name string) string {
	if profile.IsDefault(name) {
		return "the default profile"
	}
	return "profile " + name
}

func init() {
	listCmd.Flags().StringVarP(&listProfile, "profile", "p", "", "Profile to list instead of the default profile")
	rootCmd.AddCommand(listCmd)
}
