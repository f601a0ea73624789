// Package config holds the client configuration: collaborator endpoints,
// theme, debug logging, and the home coordinate the picker recenters on.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is everything the client reads at startup. Precedence is
// defaults, then the JSON file, then .env / environment variables.
type Config struct {
	APIBaseURL   string  `json:"api_base_url"`
	NominatimURL string  `json:"nominatim_url"`
	DetectURL    string  `json:"detect_url"`
	Theme        string  `json:"theme"` // "light" or "dark"
	DebugMode    bool    `json:"debug_mode"`
	HomeLat      float64 `json:"home_lat"`
	HomeLon      float64 `json:"home_lon"`
}

// DefaultConfig points at the documented collaborator endpoints. The home
// coordinate defaults to Kuala Lumpur, where the original deployment ran.
func DefaultConfig() Config {
	return Config{
		APIBaseURL:   "http://localhost:5000",
		NominatimURL: "https://nominatim.openstreetmap.org",
		DetectURL:    "http://localhost:5001/detect",
		Theme:        "light",
		HomeLat:      3.0458,
		HomeLon:      101.7092,
	}
}

// ConfigDir returns where config and session files live. A project-local
// .skylander directory wins over the home-level one.
func ConfigDir() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".skylander")
		if stat, err := os.Stat(localDir); err == nil && stat.IsDir() {
			return localDir, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".skylander"), nil
}

// ConfigFile returns the full path to the config file.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration, applying the environment overlay last.
// A missing file is not an error; defaults apply.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigFile()
	if err != nil {
		return applyEnv(cfg), err
	}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return applyEnv(DefaultConfig()), err
		}
	} else if !os.IsNotExist(err) {
		return applyEnv(cfg), err
	}

	return applyEnv(cfg), nil
}

// Save writes the configuration to disk.
func Save(cfg Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path, err := ConfigFile()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// applyEnv loads a .env file if present and overlays SKYLANDER_* variables
// on top of the file values.
func applyEnv(cfg Config) Config {
	_ = godotenv.Load()

	if v := os.Getenv("SKYLANDER_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("SKYLANDER_NOMINATIM_URL"); v != "" {
		cfg.NominatimURL = v
	}
	if v := os.Getenv("SKYLANDER_DETECT_URL"); v != "" {
		cfg.DetectURL = v
	}
	if v := os.Getenv("SKYLANDER_DARK_MODE"); v == "1" {
		cfg.Theme = "dark"
	}
	if v := os.Getenv("SKYLANDER_DEBUG"); v == "1" {
		cfg.DebugMode = true
	}
	if v := os.Getenv("SKYLANDER_HOME_LAT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.HomeLat = f
		}
	}
	if v := os.Getenv("SKYLANDER_HOME_LON"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.HomeLon = f
		}
	}
	return cfg
}
