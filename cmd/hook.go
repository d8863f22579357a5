/*
raph - AWS Profile Handler
Copyright (c) 2024 Alessandro Gallo. All rights reserved.

Licensed under the Business Source License 1.1.
See LICENSE file for full terms.
*/

package cmd

import (
	"fmt"
	"io"
	"os"

	"raph/internal/hook"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

var noCompletionFlag bool

var hookCmd = &cobra.Command{
	Use:   "hook [shell]",
	Short: "Print the shell function that applies profile switches",
	Long: heredoc.Doc(`
		Prints a shell function named raph that runs the raph binary and, when a
		profile was switched, exports AWS_PROFILE from the state file. Shell
		completion for profile names is appended unless --no-completion is given.

		Supported shells: zsh, bash, fish

		Examples:
		  # bash / zsh, in ~/.bashrc or ~/.zshrc
		  eval "$(command raph hook bash)"

		  # fish, in ~/.config/fish/config.fish
		  command raph hook fish | source`),
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(hook.ShellBash), string(hook.ShellZsh), string(hook.ShellFish)},
	RunE:      runHookCommand,
}

func runHookCommand(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	factory := hook.NewFactory()

	shell := ""
	if len(args) > 0 {
		shell = args[0]
	} else if shell, err = factory.DetectShell(os.Getenv); err != nil {
		return handleHookError(cmd, err)
	}

	gen, err := factory.CreateHook(shell)
	if err != nil {
		return handleHookError(cmd, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, gen.GenerateFunction(a.store.Path()))

	if noCompletionFlag {
		return nil
	}
	fmt.Fprintln(out)
	return writeCompletion(out, gen.Shell())
}

func writeCompletion(w io.Writer, shell hook.SupportedShell) error {
	switch shell {
	case hook.ShellBash:
		return rootCmd.GenBashCompletionV2(w, true)
	case hook.ShellZsh:
		return rootCmd.GenZshCompletion(w)
	case hook.ShellFish:
		return rootCmd.GenFishCompletion(w, true)
	default:
		return fmt.Errorf("%w: %s", hook.ErrShellNotSupported, shell)
	}
}

// handleHookError prints the suggestions of a hook error before returning it.
func handleHookError(cmd *cobra.Command, err error) error {
	if hookErr, ok := err.(*hook.HookError); ok {
		fmt.Fprintln(cmd.ErrOrStderr(), hookErr.GetUserFriendlyMessage())
		return fmt.Errorf("hook generation failed")
	}
	return err
}

func init() {
	hookCmd.Flags().BoolVar(&noCompletionFlag, "no-completion", false, "Do not append shell completion")
	rootCmd.AddCommand(hookCmd)
}
