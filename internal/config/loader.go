package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".remap"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for remap settings.
const envPrefix = "REMAP"

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"strategy":  "strategy",
	"format":    "format",
	"log-level": "log_level",
	"trace":     "trace",
}

// LoadConfig loads configuration from defaults, file, env vars and flags,
// in increasing priority. If configPath is non-empty, it is used as the
// explicit config file path and must exist. Otherwise, .remap.yaml is
// searched in CWD and $HOME; a missing file is not an error.
// flags may be nil; only flags named in flagKeys and present in the set
// are bound.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viperCfg.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := viperCfg.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("strategy", DefaultStrategy)
	viperCfg.SetDefault("format", DefaultFormat)
	viperCfg.SetDefault("log_level", DefaultLogLevel)
	viperCfg.SetDefault("trace", DefaultTrace)
}
