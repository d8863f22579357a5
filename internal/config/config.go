package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ErrHomeNotSet is returned when HOME is missing from the environment.
var ErrHomeNotSet = errors.New("HOME not set")

// HOME and AWS_PROFILE come from the environment only, never from the
// settings file.
const (
	envHome          = "HOME"
	envActiveProfile = "AWS_PROFILE"
)

const (
	keyAWSConfigFile = "aws_config_file"
	keyStateFile     = "state_file"
	keyStrictHint    = "strict_hint"
	keyDebug         = "debug"
)

// Settings is everything raph reads from the outside world. Components take
// it (or the fields they need) explicitly instead of calling os.Getenv.
type Settings struct {
	Home          string
	ActiveProfile string
	AWSConfigFile string
	StateFile     string
	StrictHint    bool
	Debug         bool
}

// InitConfig initializes Viper to read the raph settings file and the
// environment. It should be called once when the application starts.
func InitConfig() {
	initConfig(viper.GetViper())
}

func initConfig(v *viper.Viper) {
	v.BindEnv(keyAWSConfigFile, "AWS_CONFIG_FILE")
	v.BindEnv(keyDebug, "RAPH_DEBUG")

	home, err := os.UserHomeDir()
	if err != nil {
		// Settings file is optional; Load reports the missing HOME properly.
		return
	}

	// Set the path for the config file: ~/.config/raph/
	v.AddConfigPath(filepath.Join(home, ".config", "raph"))
	v.SetConfigName("config")
	v.SetConfigType("toml")

	// It's okay if the file doesn't exist; defaults apply.
	v.ReadInConfig()
}

// Load resolves the current Settings from the global Viper instance.
func Load() (Settings, error) {
	return load(viper.GetViper())
}

func load(v *viper.Viper) (Settings, error) {
	home := os.Getenv(envHome)
	if home == "" {
		return Settings{}, ErrHomeNotSet
	}

	s := Settings{
		Home:          home,
		ActiveProfile: os.Getenv(envActiveProfile),
		AWSConfigFile: expandHome(v.GetString(keyAWSConfigFile), home),
		StateFile:     expandHome(v.GetString(keyStateFile), home),
		StrictHint:    v.GetBool(keyStrictHint),
		Debug:         v.GetBool(keyDebug),
	}

	if s.AWSConfigFile == "" {
		s.AWSConfigFile = filepath.Join(home, ".aws", "config")
	}
	if s.StateFile == "" {
		s.StateFile = filepath.Join(home, ".raph")
	}

	return s, nil
}

// expandHome turns a leading "~/" into the given home directory.
func expandHome(path, home string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		return filepath.Join(home, path[2:])
	}
	return path
}

func (s Settings) String() string {
	return fmt.Sprintf("home=%s aws_config_file=%s state_file=%s active_profile=%q strict_hint=%t",
		s.Home, s.AWSConfigFile, s.StateFile, s.ActiveProfile, s.StrictHint)
}
