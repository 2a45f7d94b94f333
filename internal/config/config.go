// Package config resolves runtime settings from flags, environment and an optional .env file
package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const appName = "aws-costs"

// Config holds the settings a run is started with
type Config struct {
	Profile string `mapstructure:"profile"`
	Region  string `mapstructure:"region"`
	Debug   bool   `mapstructure:"debug"`
	NoTUI   bool   `mapstructure:"no_tui"`
	LogFile string `mapstructure:"log_file"`
}

// Load merges command-line flags over environment variables over defaults.
// AWS_PROFILE and AWS_REGION are honoured so the tool behaves like the AWS CLI.
// Profile stays empty unless a flag or AWS_PROFILE names one.
func Load(flags *pflag.FlagSet) (Config, error) {
	// a missing .env is normal
	_ = godotenv.Load()

	v := viper.New()

	stateDir, err := StateDir()
	if err != nil {
		return Config{}, err
	}

	// an empty profile leaves credential discovery to the SDK's default chain
	v.SetDefault("profile", "")
	v.SetDefault("region", "")
	v.SetDefault("debug", false)
	v.SetDefault("no_tui", false)
	v.SetDefault("log_file", filepath.Join(stateDir, appName+".log"))

	bindings := map[string]string{
		"profile":  "AWS_PROFILE",
		"region":   "AWS_REGION",
		"debug":    "AWS_COSTS_DEBUG",
		"log_file": "AWS_COSTS_LOG_FILE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, errors.Wrapf(err, "bind %s to %s", key, env)
		}
	}

	if flags != nil {
		for key, name := range map[string]string{
			"profile":  "profile",
			"region":   "region",
			"debug":    "debug",
			"no_tui":   "no-tui",
			"log_file": "log-file",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, errors.Wrapf(err, "bind flag --%s", name)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	return c, nil
}

// StateDir returns where the log file lives, following XDG_STATE_HOME
func StateDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve home directory")
	}
	return filepath.Join(homeDir, ".local", "state", appName), nil
}
