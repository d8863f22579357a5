/*
raph - AWS Profile Handler
Copyright (c) 2024 Alessandro Gallo. All rights reserved.

Licensed under the Business Source License 1.1.
See LICENSE file for full terms.
*/

package cmd

import (
	"errors"
	"fmt"

	"raph/internal/aws"
	"raph/internal/util"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// Exit statuses are read by the shell hook: only ExitSwitched makes it
// re-export AWS_PROFILE from the state file.
const (
	ExitExecuted      = 0
	ExitSwitched      = 1
	ExitFatal         = 2
	ExitNotFound      = 5
	ExitPersistFailed = 6
)

var (
	version string
	commit  string
	date    string
)

// ExitError carries the process exit status out of a command. Err is nil
// when the status reports success.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

var rootCmd = &cobra.Command{
	Use:   "raph [profile] [command...]",
	Short: "🦀 AWS Profile Handler and Executor",
	Long: heredoc.Doc(`
		raph switches the AWS profile of your shell, or runs one aws command under a
		profile without touching your shell's environment.

		  raph                 choose a profile interactively
		  raph <profile>       switch to <profile>
		  raph <profile> s3 ls run "aws s3 ls" with AWS_PROFILE=<profile>

		Switching writes the profile to a state file that the shell hook
		(see "raph hook") exports as AWS_PROFILE.`),
	Args:              cobra.ArbitraryArgs,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	ValidArgsFunction: aws.CompleteProfiles(completionProfiles),
	RunE:              runRoot,
}

func init() {
	// Everything after the profile belongs to the aws command
	rootCmd.Flags().SetInterspersed(false)
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	err := rootCmd.Execute()
	code, reported := exitStatus(err)
	if reported != nil {
		console := &util.Console{Out: rootCmd.OutOrStdout(), Err: rootCmd.ErrOrStderr()}
		console.Error(reported)
	}
	return code
}

// exitStatus maps a command error to an exit status and the error, if any,
// that still has to be shown to the user.
func exitStatus(err error) (int, error) {
	if err == nil {
		return ExitExecuted, nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, exitErr.Err
	}
	return ExitFatal, err
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date)
}

func runRoot(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return &ExitError{Code: ExitFatal, Err: err}
	}

	switch len(args) {
	case 0:
		return a.selectAndSwitch(cmd.Context())
	case 1:
		return a.switchTo(args[0])
	default:
		return a.execute(cmd.Context(), args[0], args[1:])
	}
}
