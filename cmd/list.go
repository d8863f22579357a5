package cmd

import (
	"raph/internal/util"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the profiles in the AWS config file",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		profiles, err := a.reader.Details(a.settings.ActiveProfile)
		if err != nil {
			return err
		}

		var data [][]string
		for _, p := range profiles {
			marker := ""
			if p.IsActive {
				marker = "*"
			}
			data = append(data, []string{marker, p.Name, string(p.Type), p.Region, p.SSOAccountID})
		}

		util.PrintTable(cmd.OutOrStdout(), []string{"", "Profile", "Type", "Region", "Account"}, data)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
