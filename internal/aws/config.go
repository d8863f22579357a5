package aws

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// DefaultProfile is the implicit profile every config has.
const DefaultProfile = "default"

// GettingStartedURL is shown when the config file declares no profiles.
const GettingStartedURL = "https://docs.aws.amazon.com/cli/latest/userguide/cli-chap-getting-started.html"

// Anything after the closing bracket, such as an inline comment, is ignored.
var profileHeader = regexp.MustCompile(`^\[profile ([^\]]+)\]`)

// Reader reads profile names from an AWS CLI config file.
type Reader struct {
	fs   afero.Fs
	path string
	out  io.Writer
}

// NewReader returns a Reader for the config file at path. Guidance for an
// empty config is written to out.
func NewReader(fs afero.Fs, path string, out io.Writer) *Reader {
	return &Reader{fs: fs, path: path, out: out}
}

// Path returns the config file location.
func (r *Reader) Path() string {
	return r.path
}

// Profiles returns the profile names in file order with "default" last.
// When the file declares no profiles the list is just ["default"] and the
// error is ErrNoProfiles, which callers may treat as a warning.
func (r *Reader) Profiles() ([]string, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigUnreadable, r.path, err)
	}

	profiles := ParseProfiles(string(data))
	if len(profiles) == 0 {
		fmt.Fprintln(r.out, "No profiles found.")
		fmt.Fprintln(r.out, "Refer to this guide for help on setting up a new AWS profile:")
		fmt.Fprintln(r.out, GettingStartedURL)
		return []string{DefaultProfile}, ErrNoProfiles
	}

	return append(profiles, DefaultProfile), nil
}

// ParseProfiles extracts the names of [profile <name>] section headers.
// Repeated names are kept once, at their first position, and a
// [profile default] header is skipped since default is always implied.
func ParseProfiles(content string) []string {
	var profiles []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(content, "\n") {
		m := profileHeader.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" || name == DefaultProfile || seen[name] {
			continue
		}
		seen[name] = true
		profiles = append(profiles, name)
	}

	return profiles
}

// ValidateProfile checks that name is a usable profile. "default" is always
// accepted, whether or not it appears in profiles.
func ValidateProfile(profiles []string, name string) error {
	if name == DefaultProfile {
		return nil
	}
	for _, p := range profiles {
		if p == name {
			return nil
		}
	}
	return &ProfileNotFoundError{Name: name}
}

// ProfileType represents the type of AWS profile
type ProfileType string

const (
	ProfileTypeSSO ProfileType = "SSO"
	ProfileTypeIAM ProfileType = "IAM"
	ProfileTypeKey ProfileType = "Key"
)

// ProfileInfo contains display details about an AWS profile
type ProfileInfo struct {
	Name         string
	Type         ProfileType
	Region       string
	SSOAccountID string
	IsActive     bool
}

func getProfileType(section *ini.Section) ProfileType {
	if section.HasKey("sso_session") || section.HasKey("sso_start_url") {
		return ProfileTypeSSO
	}
	if section.HasKey("role_arn") {
		return ProfileTypeIAM
	}
	return ProfileTypeKey
}

// Details returns display information for every profile the Reader lists,
// in the same order. Sections ini cannot resolve are reported by name only.
func (r *Reader) Details(active string) ([]ProfileInfo, error) {
	names, err := r.Profiles()
	if err != nil && len(names) == 0 {
		return nil, err
	}

	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigUnreadable, r.path, err)
	}

	// A file ini rejects still has usable headers, so fall back to names only
	cfg, err := ini.LoadSources(ini.LoadOptions{SkipUnrecognizableLines: true}, data)
	if err != nil {
		cfg = nil
	}

	if active == "" {
		active = DefaultProfile
	}

	profiles := make([]ProfileInfo, 0, len(names))
	for _, name := range names {
		info := ProfileInfo{Name: name, Type: ProfileTypeKey, IsActive: name == active}
		if cfg == nil {
			profiles = append(profiles, info)
			continue
		}

		sectionName := "profile " + name
		if name == DefaultProfile {
			sectionName = DefaultProfile
		}
		if section, err := cfg.GetSection(sectionName); err == nil {
			info.Type = getProfileType(section)
			info.Region = section.Key("region").String()
			info.SSOAccountID = section.Key("sso_account_id").String()
		}

		profiles = append(profiles, info)
	}

	return profiles, nil
}
