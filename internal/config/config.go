package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/abhisek/dropcheck/internal/exercise"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Exercise ExerciseConfig
	Log      LogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings. An empty Path means the store's
// default location.
type DatabaseConfig struct {
	Path string
}

// ExerciseConfig selects where exercises come from.
type ExerciseConfig struct {
	Pack    string
	Default string
}

// LogConfig controls the debug log. The TUI owns the terminal, so logs only
// go to a file.
type LogConfig struct {
	File string
}

// UIConfig holds terminal UI preferences.
type UIConfig struct {
	Splash bool
}

// Load reads configuration from file and env. Env var overrides use prefix
// DROPCHECK_ (e.g. DROPCHECK_EXERCISE_PACK). A missing config file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", "")
	v.SetDefault("exercise.pack", "")
	v.SetDefault("exercise.default", exercise.DefaultID)
	v.SetDefault("log.file", "")
	v.SetDefault("ui.splash", true)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("DROPCHECK_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := os.UserConfigDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(dir, "dropcheck"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DROPCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(path != "" && errors.Is(err, os.ErrNotExist)) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
