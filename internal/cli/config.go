package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Design-Arena-Gens/darklock/internal/catalog"
	"github.com/Design-Arena-Gens/darklock/internal/logging"
)

// Config is the application configuration loaded from file and environment.
type Config struct {
	TUI struct {
		Theme string `mapstructure:"theme"`
	} `mapstructure:"tui"`
	Catalog struct {
		// Path points at a user-supplied catalog YAML; empty means builtin.
		Path string `mapstructure:"path"`
	} `mapstructure:"catalog"`
	Log struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
	} `mapstructure:"log"`
}

var appConfig *Config

// GetConfig returns the loaded configuration, or nil before initialization.
func GetConfig() *Config {
	return appConfig
}

func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "darklock")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "darklock")
}

func initConfig() {
	viper.SetDefault("tui.theme", "default")
	viper.SetDefault("log.level", "info")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(defaultConfigDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DARKLOCK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: could not read config: %v\n", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: invalid config: %v\n", err)
		cfg = &Config{}
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	appConfig = cfg

	logging.Init(cfg.Log.Level)
}

// loadCatalog returns the configured step catalog, falling back to the
// builtin one.
func loadCatalog() (*catalog.Catalog, error) {
	if cfg := GetConfig(); cfg != nil && cfg.Catalog.Path != "" {
		return catalog.Load(cfg.Catalog.Path)
	}
	return catalog.Builtin()
}
