// Package config persists user preferences to a per-user settings file and
// resolves the API credential. Loading is intentionally forgiving: corrupt
// local state must never prevent the application from starting.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/dealve/dealve/internal/models"
)

const (
	// FilePermissions is the mode for the settings file.
	FilePermissions = 0644
	// DirPermissions is the mode for the settings directory.
	DirPermissions = 0755

	// EnvAPIKey overrides the persisted API key when set.
	EnvAPIKey = "ITAD_API_KEY"

	// DefaultPageSize is the pagination batch size.
	DefaultPageSize = 50
	// DefaultGameInfoDelayMs is the debounce delay before loading game info
	// after a selection change.
	DefaultGameInfoDelayMs = 200
)

// ConfigFilePath is the settings file location. It is a variable so tests
// can redirect it.
var ConfigFilePath = defaultConfigPath()

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dealve", "config.json")
}

// Settings is the persisted preferences record. Platform and sort values are
// stored as display names so the file stays hand-editable.
type Settings struct {
	DefaultPlatform      string   `json:"default_platform"`
	EnabledPlatforms     []string `json:"enabled_platforms"`
	Region               string   `json:"region"`
	DealsPageSize        int      `json:"deals_page_size"`
	GameInfoDelayMs      int      `json:"game_info_delay_ms"`
	APIKey               string   `json:"api_key,omitempty"`
	DefaultSortCriteria  string   `json:"default_sort_criteria"`
	DefaultSortDirection string   `json:"default_sort_direction"`
}

// Default returns the settings used for a fresh install: every platform
// enabled, no shop filter, US region, price-ascending sort.
func Default() Settings {
	enabled := make([]string, 0, len(models.AllPlatforms))
	for _, p := range models.AllPlatforms {
		enabled = append(enabled, p.Name())
	}
	return Settings{
		DefaultPlatform:      models.PlatformAll.Name(),
		EnabledPlatforms:     enabled,
		Region:               models.DefaultRegion.Code(),
		DealsPageSize:        DefaultPageSize,
		GameInfoDelayMs:      DefaultGameInfoDelayMs,
		DefaultSortCriteria:  "Price",
		DefaultSortDirection: "Ascending",
	}
}

// Load reads the settings file, returning defaults when the file is absent
// or malformed. Missing fields keep their default values. Load never fails.
func Load() Settings {
	s := Default()

	path := ConfigFilePath
	if path == "" {
		return s
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}

	// Normalize comments/trailing commas first; a file someone annotated by
	// hand should still load.
	if err := json.Unmarshal(jsonc.ToJSON(data), &s); err != nil {
		return Default()
	}
	if s.DealsPageSize <= 0 {
		s.DealsPageSize = DefaultPageSize
	}
	if s.GameInfoDelayMs <= 0 {
		s.GameInfoDelayMs = DefaultGameInfoDelayMs
	}
	return s
}

// Save writes the settings file, creating the config directory if needed.
func Save(s Settings) error {
	path := ConfigFilePath
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, FilePermissions)
}

// LoadAPIKey resolves the credential: environment variable first, persisted
// file second. Empty values are treated as unset.
func LoadAPIKey() string {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	return Load().APIKey
}

// SetAPIKey persists a freshly validated key (onboarding result).
func SetAPIKey(key string) error {
	s := Load()
	s.APIKey = key
	return Save(s)
}

// DefaultPlatformValue resolves the persisted default platform name,
// falling back to the "All" sentinel for unknown names.
func (s Settings) DefaultPlatformValue() models.Platform {
	return models.PlatformFromName(s.DefaultPlatform)
}

// EnabledPlatformSet resolves the persisted enabled-platform names. Unknown
// names are dropped.
func (s Settings) EnabledPlatformSet() map[models.Platform]bool {
	set := make(map[models.Platform]bool, len(s.EnabledPlatforms))
	for _, name := range s.EnabledPlatforms {
		for _, p := range models.AllPlatforms {
			if p.Name() == name {
				set[p] = true
			}
		}
	}
	return set
}

// RegionValue resolves the persisted region code, accepting legacy aliases
// and defaulting to US.
func (s Settings) RegionValue() models.Region {
	r, _ := models.RegionFromCode(s.Region)
	return r
}
