package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

var Config Configuration

// DefaultSpectateAddr is where spectators connect when no address is configured.
const DefaultSpectateAddr = "127.0.0.1:42069"

type Configuration struct {
	LogLevel     int               `json:"logLevel" toml:"logLevel"`
	LogFile      string            `json:"logFile" toml:"logFile"`
	Seed         uint64            `json:"seed" toml:"seed"`
	SpectateAddr string            `json:"spectateAddr" toml:"spectateAddr"`
	HoldWindowMs int               `json:"holdWindowMs" toml:"holdWindowMs"`
	Keys         map[string]string `json:"keys" toml:"keys"`
}

func Default() Configuration {
	return Configuration{
		LogLevel:     int(slog.LevelInfo),
		HoldWindowMs: 200,
	}
}

// LoadConfig reads path, or config.json when path is empty. Files ending in .toml are
// decoded as TOML. Anything unreadable leaves the defaults in place.
func LoadConfig(path string) {
	var c = Default()

	if path == "" {
		path = "config.json"
	}

	cf, err := os.ReadFile(path)
	if err != nil {
		slog.Info("failed to open config at path provided, using default config instead", slog.String("path", path))
		Config = c
		return
	}

	if strings.HasSuffix(path, ".toml") {
		_, err = toml.Decode(string(cf), &c)
	} else {
		err = json.Unmarshal(cf, &c)
	}
	if err != nil {
		slog.Info("failed to read configuration, using default config instead...", slog.Any("error", err))
		c = Default()
	}

	Config = c
}
