package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"cardroom-server/internal/util"
)

// Config provides configuration for the card room server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Blinds struct {
		SmallBlind int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind   int `yaml:"bigBlind" envconfig:"big_blind"`
	}
	StartingBalance int `yaml:"startingBalance" envconfig:"starting_balance"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults and the environment
// still apply
func Load() error {
	config = Config{}
	config.Blinds.SmallBlind = 10
	config.Blinds.BigBlind = 20
	config.StartingBalance = 1000

	configFile := util.Getenv("CARDROOM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("cardroom", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
