package main

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds host-level settings read from config.toml. The defaults
// match the shipped assets, so the file is optional.
type Config struct {
	Title       string `toml:"title"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	TPS         int    `toml:"tps"`
	Map         string `toml:"map"`
	DeadZonePad int    `toml:"dead-zone-pad"`
}

func defaultConfig() Config {
	return Config{
		Title:       "Platformer",
		Width:       640,
		Height:      480,
		TPS:         30,
		Map:         "map.json",
		DeadZonePad: 160,
	}
}

// readConfig loads config.toml when present, rejecting unknown keys so
// typos surface at startup instead of silently falling back to
// defaults.
func readConfig(path string) (Config, error) {
	c := defaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c, nil
	}
	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		var err errUnknownConfig
		for _, key := range undecoded {
			err = append(err, key.String())
		}
		return Config{}, err
	}
	return c, nil
}

type errUnknownConfig []string

func (e errUnknownConfig) Error() string {
	return "unknown config keys: [" + strings.Join(e, ", ") + "]"
}
