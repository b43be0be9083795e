// Package settings loads keyglow-host settings from file and environment.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds host tool configuration
type Settings struct {
	Serial  SerialSettings
	Log     LogSettings
	Profile string
}

// SerialSettings selects the keyboard's debug console
type SerialSettings struct {
	Device      string
	Baud        int
	ReadTimeout int `mapstructure:"read_timeout"`
}

// LogSettings controls zap output
type LogSettings struct {
	Level string
}

// Load reads settings from path (or $KEYGLOW_CONFIG, or
// ~/.config/keyglow/config.toml) and env. Env var overrides use prefix KEYGLOW_.
func Load(path string) (Settings, error) {
	v := viper.New()

	v.SetDefault("serial.device", "/dev/ttyACM0")
	v.SetDefault("serial.baud", 115200)
	v.SetDefault("serial.read_timeout", 100)
	v.SetDefault("log.level", "info")
	v.SetDefault("profile", "")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("KEYGLOW_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "keyglow"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("KEYGLOW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default file is fine; an explicit one must exist
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return s, nil
}
