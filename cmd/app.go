package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"raph/internal/aws"
	"raph/internal/config"
	"raph/internal/runner"
	"raph/internal/state"
	"raph/internal/tui"
	"raph/internal/util"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Swapped out in tests.
var (
	loadSettings  = config.Load
	appFs         = afero.NewOsFs()
	selectProfile = tui.SelectProfile
)

// app wires the components for one invocation.
type app struct {
	settings config.Settings
	console  *util.Console
	reader   *aws.Reader
	store    *state.Store
	runner   *runner.Runner
	input    *os.File
}

func newApp(cmd *cobra.Command) (*app, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	console := &util.Console{
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
		Debug: settings.Debug,
	}
	console.Debugf("settings: %s", settings)

	input, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		input = os.Stdin
	}

	return &app{
		settings: settings,
		console:  console,
		reader:   aws.NewReader(appFs, settings.AWSConfigFile, cmd.ErrOrStderr()),
		store:    state.NewStore(appFs, settings.StateFile),
		runner: &runner.Runner{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		},
		input: input,
	}, nil
}

// profiles returns the profile list. An empty config is not an error: the
// reader has already printed guidance and the list still holds "default".
func (a *app) profiles() ([]string, error) {
	profiles, err := a.reader.Profiles()
	if err != nil && !errors.Is(err, aws.ErrNoProfiles) {
		return nil, &ExitError{Code: ExitFatal, Err: err}
	}
	a.console.Debugf("profiles in %s: %v", a.reader.Path(), profiles)
	return profiles, nil
}

func (a *app) validate(profile string) error {
	profiles, err := a.profiles()
	if err != nil {
		return err
	}
	if err := aws.ValidateProfile(profiles, profile); err != nil {
		return &ExitError{Code: ExitNotFound, Err: err}
	}
	return nil
}

func (a *app) persist(profile string) error {
	if err := a.store.Write(profile); err != nil {
		return &ExitError{Code: ExitPersistFailed, Err: err}
	}
	a.console.Debugf("wrote %q to %s", profile, a.store.Path())
	return nil
}

// selectAndSwitch prompts for a profile starting on the active one and
// persists the choice.
func (a *app) selectAndSwitch(ctx context.Context) error {
	details, err := a.reader.Details(a.settings.ActiveProfile)
	if err != nil {
		return &ExitError{Code: ExitFatal, Err: err}
	}

	profile, err := selectProfile(ctx, details, a.settings.ActiveProfile, tui.Options{
		StrictHint: a.settings.StrictHint,
		Input:      a.input,
		Output:     a.console.Err,
		Warnf:      a.console.Warnf,
	})
	if err != nil {
		return &ExitError{Code: ExitNotFound, Err: err}
	}

	if err := a.persist(profile); err != nil {
		return err
	}

	a.console.Successf("AWS profile: %s", util.HighlightColor.Sprint(profile))
	return &ExitError{Code: ExitSwitched}
}

// switchTo validates and persists profile.
func (a *app) switchTo(profile string) error {
	if err := a.validate(profile); err != nil {
		return err
	}
	if err := a.persist(profile); err != nil {
		return err
	}

	a.console.Successf("Profile switched to %s", profile)
	return &ExitError{Code: ExitSwitched}
}

// execute runs one command under profile. The state file is left alone,
// so the exit status tells the hook not to switch.
func (a *app) execute(ctx context.Context, profile string, tokens []string) error {
	if err := a.validate(profile); err != nil {
		return err
	}

	// Spawn failures are reported by the runner and do not change the status
	if err := a.runner.Run(ctx, profile, tokens); err != nil {
		a.console.Debugf("command failed: %v", err)
	}
	return nil
}

// completionProfiles lists profiles for shell completion, quietly.
func completionProfiles() ([]string, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}
	return aws.NewReader(appFs, settings.AWSConfigFile, io.Discard).Profiles()
}
