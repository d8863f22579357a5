package hook

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrShellNotSupported is returned when an unsupported shell is specified
	ErrShellNotSupported = errors.New("shell not supported")

	// ErrShellDetectionFailed is returned when automatic shell detection fails
	ErrShellDetectionFailed = errors.New("shell detection failed")
)

// HookError represents a hook-specific error with suggestions for the user
type HookError struct {
	Shell       string
	Err         error
	Suggestions []string
}

func (e *HookError) Error() string {
	if e.Shell == "" {
		return fmt.Sprintf("hook: %v", e.Err)
	}
	return fmt.Sprintf("hook for %s: %v", e.Shell, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}

// GetUserFriendlyMessage returns the error with numbered suggestions
func (e *HookError) GetUserFriendlyMessage() string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n\nSuggested solutions:")
		for i, suggestion := range e.Suggestions {
			msg.WriteString(fmt.Sprintf("\n  %d. %s", i+1, suggestion))
		}
	}

	return msg.String()
}

// NewHookError creates a HookError with suggestions matching err
func NewHookError(shell string, err error) *HookError {
	return &HookError{
		Shell:       shell,
		Err:         err,
		Suggestions: generateSuggestions(err),
	}
}

func generateSuggestions(err error) []string {
	supported := make([]string, 0, len(GetSupportedShells()))
	for _, s := range GetSupportedShells() {
		supported = append(supported, string(s))
	}

	switch {
	case errors.Is(err, ErrShellDetectionFailed):
		return []string{
			"Specify the shell explicitly: raph hook <shell>",
			fmt.Sprintf("Supported shells: %s", strings.Join(supported, ", ")),
			"Check your SHELL environment variable: echo $SHELL",
		}
	case errors.Is(err, ErrShellNotSupported):
		return []string{
			fmt.Sprintf("Supported shells: %s", strings.Join(supported, ", ")),
		}
	default:
		return nil
	}
}
