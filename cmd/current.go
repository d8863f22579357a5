package cmd

import (
	"fmt"

	"raph/internal/aws"

	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active profile",
	Long: `Prints AWS_PROFILE if it is set, otherwise the last profile raph switched to,
otherwise "default".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		profile := a.settings.ActiveProfile
		if profile == "" {
			if profile, err = a.store.Read(); err != nil {
				return err
			}
		}
		if profile == "" {
			profile = aws.DefaultProfile
		}

		fmt.Fprintln(cmd.OutOrStdout(), profile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)
}
