package aws

import (
	"github.com/spf13/cobra"
)

// FuzzyMatch checks if the input matches the target string in a fuzzy way.
// It matches if all characters in input appear in order in the target string.
// The matching is case-insensitive.
func FuzzyMatch(target, input string) bool {
	if input == "" {
		return true
	}

	// Early termination: if input is longer than target, it can't match
	if len(input) > len(target) {
		return false
	}

	inputIndex := 0
	inputLen := len(input)

	for i := 0; i < len(target) && inputIndex < inputLen; i++ {
		targetChar := target[i]
		inputChar := input[inputIndex]

		if targetChar >= 'A' && targetChar <= 'Z' {
			targetChar += 32
		}
		if inputChar >= 'A' && inputChar <= 'Z' {
			inputChar += 32
		}

		if targetChar == inputChar {
			inputIndex++
		}
	}

	return inputIndex == inputLen
}

// CompleteProfiles returns a cobra ValidArgsFunction that completes the
// first positional argument with profile names from list. Later arguments
// belong to the wrapped aws command and are not completed.
func CompleteProfiles(list func() ([]string, error)) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}

		// ErrNoProfiles still yields "default", so only a nil list is fatal here
		profiles, _ := list()
		if len(profiles) == 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		matches := make([]string, 0, len(profiles))
		for _, profile := range profiles {
			if FuzzyMatch(profile, toComplete) {
				matches = append(matches, profile)
			}
		}

		return matches, cobra.ShellCompDirectiveNoFileComp
	}
}
