package hook

import (
	"fmt"
)

// Factory creates Generator instances for different shells
type Factory struct{}

// NewFactory creates a new Factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// CreateHook creates a Generator for the specified shell
func (f *Factory) CreateHook(shell string) (Generator, error) {
	switch SupportedShell(shell) {
	case ShellZsh:
		return &posixHook{shell: ShellZsh}, nil
	case ShellBash:
		return &posixHook{shell: ShellBash}, nil
	case ShellFish:
		return &fishHook{}, nil
	default:
		return nil, NewHookError(shell, fmt.Errorf("%w: %s (supported: %v)", ErrShellNotSupported, shell, GetSupportedShells()))
	}
}

// DetectShell attempts to detect the current shell from environment variables
func (f *Factory) DetectShell(getenv func(string) string) (string, error) {
	return DetectCurrentShell(getenv)
}
