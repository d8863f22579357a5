package hook

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DetectCurrentShell attempts to detect the current shell from environment variables
func DetectCurrentShell(getenv func(string) string) (string, error) {
	// Method 1: Check SHELL environment variable
	if shell := getenv("SHELL"); shell != "" {
		shellName := normalizeShellName(filepath.Base(shell))
		if IsValidShell(shellName) {
			return shellName, nil
		}
	}

	// Method 2: Check shell-specific environment variables
	if shell := detectShellFromEnvVars(getenv); shell != "" {
		return shell, nil
	}

	return "", NewHookError("", fmt.Errorf("%w: please specify shell explicitly", ErrShellDetectionFailed))
}

// normalizeShellName converts shell executable names to standard shell names
func normalizeShellName(shellName string) string {
	shellName = strings.TrimSuffix(shellName, ".exe")

	switch strings.ToLower(shellName) {
	case "zsh", "zsh5":
		return string(ShellZsh)
	case "bash", "bash4", "bash5":
		return string(ShellBash)
	case "fish":
		return string(ShellFish)
	default:
		return shellName
	}
}

// detectShellFromEnvVars checks shell-specific environment variables
func detectShellFromEnvVars(getenv func(string) string) string {
	if getenv("ZSH_VERSION") != "" || getenv("ZSH_NAME") != "" {
		return string(ShellZsh)
	}

	if getenv("BASH_VERSION") != "" || getenv("BASH") != "" {
		return string(ShellBash)
	}

	if getenv("FISH_VERSION") != "" {
		return string(ShellFish)
	}

	return ""
}
