package config

import (
	"fmt"
	"os"
)

type Config struct {
	Home string `mapstructure:"-"`

	ListenAddr string   `mapstructure:"listen_addr"`
	IndexerDB  string   `mapstructure:"indexer_db"`
	LogLevel   string   `mapstructure:"log_level"`
	Executors  []string `mapstructure:"executors"`
}

func DefaultConfig(home string) *Config {
	if len(home) == 0 {
		home = os.ExpandEnv("$HOME/.gov")
	}
	return &Config{
		Home:       home,
		ListenAddr: "0.0.0.0:8660",
		IndexerDB:  home + "/data/index.db",
		LogLevel:   "info",
		Executors:  []string{},
	}
}

// DataDir holds the registry snapshot database.
func (c *Config) DataDir() string {
	return c.Home + "/data"
}

func (c *Config) ConfigFile() string {
	return c.Home + "/config/config.toml"
}

func (c *Config) ValidateBasic() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	return nil
}
