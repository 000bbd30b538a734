package store

import (
	"os"
	"path/filepath"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves the user credential and local paths. The token comes from,
// in order of precedence, the SLACK_USER_TOKEN environment variable and the
// .moments secrets file.
type Config interface {
	Token() string
	BasePath() string
	Timeout() time.Duration
}

// LoadConfig reads the optional .moments config file and the environment.
// A missing config file is not an error; a missing token is surfaced by the
// callers that need one.
func LoadConfig() (Config, error) {
	v := viper.New()

	home, err := homedir.Dir()
	if err != nil {
		home = "."
	}
	v.SetDefault("path", filepath.Join(home, ".moments.db"))
	v.SetDefault("timeout", "10s")
	v.SetConfigName(".moments") // .yaml is implicit

	// Environment wins over the secrets file.
	_ = v.BindEnv("slack_user_token", "SLACK_USER_TOKEN")

	if override := os.Getenv("MOMENTS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home != "" {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &fileConfig{
		path:    v.GetString("path"),
		token:   v.GetString("slack_user_token"),
		timeout: v.GetDuration("timeout"),
	}, nil
}

type fileConfig struct {
	path    string
	token   string
	timeout time.Duration
}

func (f *fileConfig) Token() string {
	return f.token
}

func (f *fileConfig) BasePath() string {
	return f.path
}

func (f *fileConfig) Timeout() time.Duration {
	return f.timeout
}
