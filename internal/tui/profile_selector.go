package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"raph/internal/aws"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

var (
	// ErrSelectionCancelled is returned when the user leaves the prompt
	// without choosing a profile.
	ErrSelectionCancelled = errors.New("profile selection cancelled")

	// ErrHintNotFound is returned in strict mode when the current profile is
	// not among the listed profiles.
	ErrHintNotFound = errors.New("current profile not found in config")

	// ErrNotInteractive is returned when there is no terminal to prompt on.
	ErrNotInteractive = errors.New("interactive selection requires a terminal")
)

type ProfileItem struct {
	profile aws.ProfileInfo
}

func (i ProfileItem) FilterValue() string { return i.profile.Name }
func (i ProfileItem) Title() string {
	if i.profile.IsActive {
		return ProfileActiveStyle.Render(i.profile.Name + " (current)")
	}
	return i.profile.Name
}
func (i ProfileItem) Description() string {
	var parts []string

	switch i.profile.Type {
	case aws.ProfileTypeSSO:
		parts = append(parts, ProfileSSO.Render("SSO"))
	case aws.ProfileTypeIAM:
		parts = append(parts, ProfileIAM.Render("IAM"))
	case aws.ProfileTypeKey:
		parts = append(parts, ProfileKey.Render("Key"))
	}

	if i.profile.Region != "" {
		parts = append(parts, MutedStyle.Render(i.profile.Region))
	}

	if i.profile.SSOAccountID != "" {
		parts = append(parts, MutedStyle.Render("("+i.profile.SSOAccountID+")"))
	}

	return strings.Join(parts, " • ")
}

type ProfileSelectorModel struct {
	list      list.Model
	choice    string
	cancelled bool
}

// NewProfileSelector builds the chooser with the cursor on index.
func NewProfileSelector(profiles []aws.ProfileInfo, index int) ProfileSelectorModel {
	items := make([]list.Item, len(profiles))
	for i, profile := range profiles {
		items[i] = ProfileItem{profile: profile}
	}

	const defaultWidth = 80
	const listHeight = 14

	l := list.New(items, list.NewDefaultDelegate(), defaultWidth, listHeight)
	l.Title = "Choose a profile"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = TitleStyle
	l.Styles.PaginationStyle = MutedStyle
	l.Styles.HelpStyle = MutedStyle

	// Quitting is handled by the model so it can be told apart from a choice.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	l.Select(index)

	return ProfileSelectorModel{list: l}
}

// Choice returns the selected profile name, or "" if none was chosen.
func (m ProfileSelectorModel) Choice() string {
	return m.choice
}

// Cancelled reports whether the user left the prompt without choosing.
func (m ProfileSelectorModel) Cancelled() bool {
	return m.cancelled
}

// Index returns the position of the cursor in the full profile list.
func (m ProfileSelectorModel) Index() int {
	return m.list.Index()
}

func (m ProfileSelectorModel) Init() tea.Cmd {
	return nil
}

func (m ProfileSelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 2
		height := msg.Height - 4

		if width < 40 {
			width = 40
		}
		if height < 10 {
			height = 10
		}

		// Resizing repaginates, keep the cursor on the same profile
		index := m.list.Index()
		m.list.SetWidth(width)
		m.list.SetHeight(height)
		m.list.Select(index)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}

		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "esc":
				if m.list.FilterState() == list.FilterApplied {
					break
				}
				m.cancelled = true
				return m, tea.Quit

			case "q":
				m.cancelled = true
				return m, tea.Quit

			case "enter":
				if i, ok := m.list.SelectedItem().(ProfileItem); ok {
					m.choice = i.profile.Name
					return m, tea.Quit
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m ProfileSelectorModel) View() string {
	if m.choice != "" || m.cancelled {
		return ""
	}
	return HeaderStyle.Render("🦀 AWS Profile Handler") + "\n" + m.list.View()
}

// DefaultIndex returns the position of hint in profiles. An empty hint
// stands for the default profile.
func DefaultIndex(profiles []string, hint string) (int, error) {
	if hint == "" {
		hint = aws.DefaultProfile
	}
	for i, p := range profiles {
		if p == hint {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrHintNotFound, hint)
}

// Options controls SelectProfile.
type Options struct {
	// StrictHint fails when the hint is unknown instead of starting on default.
	StrictHint bool
	Input      *os.File
	Output     io.Writer

	// Warnf reports the fallback to default, on Output when nil.
	Warnf func(format string, a ...any)
}

// startIndex resolves where the cursor starts. An unknown hint is an error
// in strict mode, otherwise it is reported through warnf and the cursor
// starts on default.
func startIndex(names []string, hint string, strict bool, warnf func(string, ...any)) (int, error) {
	index, err := DefaultIndex(names, hint)
	if err == nil {
		return index, nil
	}
	if strict {
		return -1, err
	}

	warnf("Current profile '%s' not found in config, starting on default.", hint)
	if index, err = DefaultIndex(names, aws.DefaultProfile); err != nil {
		index = 0
	}
	return index, nil
}

// SelectProfile shows the interactive profile chooser with the cursor on
// hint and blocks until the user picks a profile or cancels.
func SelectProfile(ctx context.Context, profiles []aws.ProfileInfo, hint string, opts Options) (string, error) {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Warnf == nil {
		out := opts.Output
		opts.Warnf = func(format string, a ...any) {
			fmt.Fprintln(out, WarningStyle.Render(fmt.Sprintf(format, a...)))
		}
	}

	if len(profiles) == 0 {
		return "", aws.ErrNoProfiles
	}

	if !isatty.IsTerminal(opts.Input.Fd()) && !isatty.IsCygwinTerminal(opts.Input.Fd()) {
		return "", ErrNotInteractive
	}

	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}

	index, err := startIndex(names, hint, opts.StrictHint, opts.Warnf)
	if err != nil {
		return "", err
	}

	program := tea.NewProgram(
		NewProfileSelector(profiles, index),
		tea.WithContext(ctx),
		tea.WithInput(opts.Input),
		tea.WithOutput(opts.Output),
	)

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) || ctx.Err() != nil {
			return "", ErrSelectionCancelled
		}
		return "", err
	}

	m, ok := finalModel.(ProfileSelectorModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	if m.Cancelled() || m.Choice() == "" {
		return "", ErrSelectionCancelled
	}

	return m.Choice(), nil
}
