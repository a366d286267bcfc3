package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// defaultConfigDir is the subdirectory within the user's home directory searched for config.yaml.
const defaultConfigDir = ".config/wordtree"

type Config struct {
	Taxonomy struct {
		// Path to a JSON or YAML taxonomy. Empty means the bundled dicts/tree.json.
		Path string `mapstructure:"path"`
	} `mapstructure:"taxonomy"`

	Output struct {
		Locale string `mapstructure:"locale"` // BCP 47 tag, e.g. "pt-BR" or "en"
		Format string `mapstructure:"format"` // "text" or "table"
	} `mapstructure:"output"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// flagKeys maps command-line flag names to the config keys they override.
var flagKeys = map[string]string{
	"taxonomy":  "taxonomy.path",
	"locale":    "output.locale",
	"format":    "output.format",
	"log-level": "log.level",
}

/*
LoadConfig builds the configuration from, in increasing precedence:
defaults, config.yaml (./ or ~/.config/wordtree, or configFile when set),
WORDTREE_* environment variables, and any flags in flags that were set.

A missing config file is not an error.
*/
func LoadConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, defaultConfigDir))
		}
	}

	// WORDTREE_OUTPUT_LOCALE -> output.locale
	v.SetEnvPrefix("WORDTREE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("taxonomy.path", "")
	v.SetDefault("output.locale", "pt-BR")
	v.SetDefault("output.format", "text")
	v.SetDefault("log.level", "warn")

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag --%s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; defaults, env vars and flags still apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &config, nil
}
