package hook

// Generator renders the shell function that wraps raph for one shell.
type Generator interface {
	// Shell returns the shell this generator targets.
	Shell() SupportedShell

	// GenerateFunction returns the shell function. On exit status 1 it
	// re-exports AWS_PROFILE from stateFile, or unsets it when the file is
	// empty.
	GenerateFunction(stateFile string) string
}

// SupportedShell represents a shell the hook can be generated for
type SupportedShell string

const (
	ShellZsh  SupportedShell = "zsh"
	ShellBash SupportedShell = "bash"
	ShellFish SupportedShell = "fish"
)

// SwitchedExitCode is the raph exit status that tells the hook to re-read
// the state file.
const SwitchedExitCode = 1

// GetSupportedShells returns a list of all supported shells
func GetSupportedShells() []SupportedShell {
	return []SupportedShell{
		ShellZsh,
		ShellBash,
		ShellFish,
	}
}

// IsValidShell checks if the given shell is supported
func IsValidShell(shell string) bool {
	for _, supported := range GetSupportedShells() {
		if string(supported) == shell {
			return true
		}
	}
	return false
}
