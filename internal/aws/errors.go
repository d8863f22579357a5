package aws

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigUnreadable is returned when the AWS config file cannot be read.
	ErrConfigUnreadable = errors.New("AWS config could not be read")

	// ErrNoProfiles is returned alongside the implicit default profile when
	// the config file declares no [profile <name>] sections.
	ErrNoProfiles = errors.New("no profiles found")

	// ErrProfileNotFound matches any *ProfileNotFoundError.
	ErrProfileNotFound = errors.New("profile not found")
)

// ProfileNotFoundError reports a requested profile missing from the config.
type ProfileNotFoundError struct {
	Name string
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("profile '%s' not found", e.Name)
}

func (e *ProfileNotFoundError) Is(target error) bool {
	return target == ErrProfileNotFound
}
