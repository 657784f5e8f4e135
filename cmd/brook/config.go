package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// replConfig holds the optional REPL settings read from
// ~/.config/brook/brook.toml. A missing file leaves the defaults in place.
type replConfig struct {
	Prompt      string `toml:"prompt"`
	ContPrompt  string `toml:"cont_prompt"`
	HistoryFile string `toml:"history_file"`
	Color       bool   `toml:"color"`
}

func defaultConfig() replConfig {
	home, _ := os.UserHomeDir()
	return replConfig{
		Prompt:      "brook> ",
		ContPrompt:  "   ... ",
		HistoryFile: filepath.Join(home, ".brook_history"),
		Color:       true,
	}
}

func loadConfig() replConfig {
	cfg := defaultConfig()
	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	_ = applyConfigFile(filepath.Join(home, ".config", "brook", "brook.toml"), &cfg)
	return cfg
}

func applyConfigFile(path string, cfg *replConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return toml.Unmarshal(data, cfg)
}
