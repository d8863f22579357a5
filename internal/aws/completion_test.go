package aws

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
)

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		target   string
		input    string
		expected bool
	}{
		// Exact matches
		{"acme-staging", "acme-staging", true},
		{"production", "production", true},

		// Fuzzy matches - characters in order
		{"acme-staging", "stag", true},
		{"acme-staging", "acme-st", true},
		{"acme-staging", "ast", true},
		{"production-env", "prod", true},
		{"production-env", "pe", true},

		// Case insensitive
		{"Acme-Staging", "stag", true},
		{"PRODUCTION", "prod", true},

		// Non-matches - characters not in order
		{"acme-staging", "gats", false},
		{"production", "dorp", false},

		// Empty input should match everything
		{"acme-staging", "", true},

		// Input longer than target
		{"prod", "production", false},

		{"acme-staging", "xyz", false},
		{"a", "ab", false},
		{"ABC", "abc", true},
	}

	for _, test := range tests {
		result := FuzzyMatch(test.target, test.input)
		if result != test.expected {
			t.Errorf("FuzzyMatch(%q, %q) = %v, expected %v", test.target, test.input, result, test.expected)
		}
	}
}

func TestCompleteProfiles(t *testing.T) {
	list := func() ([]string, error) {
		return []string{"dev", "prod", "prod-eu", "default"}, nil
	}
	complete := CompleteProfiles(list)

	matches, directive := complete(&cobra.Command{}, nil, "prod")
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("Expected NoFileComp directive, got %v", directive)
	}
	if len(matches) != 2 || matches[0] != "prod" || matches[1] != "prod-eu" {
		t.Errorf("Unexpected matches for 'prod': %v", matches)
	}

	matches, _ = complete(&cobra.Command{}, nil, "")
	if len(matches) != 4 {
		t.Errorf("Empty input should return all profiles, got %v", matches)
	}
}

func TestCompleteProfilesAfterProfileArgument(t *testing.T) {
	called := false
	complete := CompleteProfiles(func() ([]string, error) {
		called = true
		return []string{"dev"}, nil
	})

	matches, directive := complete(&cobra.Command{}, []string{"dev"}, "s3")
	if matches != nil {
		t.Errorf("Expected no matches for command tokens, got %v", matches)
	}
	if directive != cobra.ShellCompDirectiveDefault {
		t.Errorf("Expected Default directive, got %v", directive)
	}
	if called {
		t.Error("Profile list should not be read when completing command tokens")
	}
}

func TestCompleteProfilesUnreadableConfig(t *testing.T) {
	complete := CompleteProfiles(func() ([]string, error) {
		return nil, errors.New("boom")
	})

	matches, directive := complete(&cobra.Command{}, nil, "")
	if len(matches) != 0 {
		t.Errorf("Expected no matches, got %v", matches)
	}
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("Expected NoFileComp directive, got %v", directive)
	}
}

func BenchmarkFuzzyMatch(b *testing.B) {
	target := "acme-staging-administratoraccess"
	input := "stag"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FuzzyMatch(target, input)
	}
}
