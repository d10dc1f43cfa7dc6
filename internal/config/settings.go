package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Setting keys, readable from ~/.config/dot-dev/config.toml or DOT_DEV_* variables
const (
	KeyFile     = "file"
	KeyLogLevel = "log_level"
	KeyEnvFile  = "env_file"
)

const (
	DefaultFile     = "dot-dev.json"
	DefaultEnvFile  = ".env"
	DefaultLogLevel = "warn"
)

// InitConfig initializes Viper to read the dot-dev settings file.
// It should be called once when the application starts.
func InitConfig() {
	viper.SetDefault(KeyFile, DefaultFile)
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)
	viper.SetDefault(KeyEnvFile, DefaultEnvFile)

	viper.SetEnvPrefix("DOT_DEV")
	viper.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: Could not find home directory. Using built-in settings.")
		return
	}

	// ~/.config/dot-dev/config.toml
	viper.AddConfigPath(filepath.Join(home, ".config", "dot-dev"))
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	// A missing settings file just means defaults.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: Could not read settings: %v\n", err)
		}
	}
}

// ConfigFile is the profile store used when --file is not given
func ConfigFile() string {
	return viper.GetString(KeyFile)
}

func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

// EnvFile is where generate writes when --output is not given
func EnvFile() string {
	return viper.GetString(KeyEnvFile)
}
