package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dealve/dealve/internal/models"
)

func withTempConfig(t *testing.T, contents string) {
	t.Helper()
	original := ConfigFilePath
	ConfigFilePath = filepath.Join(t.TempDir(), "config.json")
	t.Cleanup(func() {
		ConfigFilePath = original
	})
	if contents != "" {
		if err := os.WriteFile(ConfigFilePath, []byte(contents), FilePermissions); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	withTempConfig(t, "")

	s := Load()
	if s.Region != "US" {
		t.Errorf("Region = %q, want US", s.Region)
	}
	if s.DealsPageSize != DefaultPageSize {
		t.Errorf("DealsPageSize = %d, want %d", s.DealsPageSize, DefaultPageSize)
	}
	if s.DefaultPlatform != models.PlatformAll.Name() {
		t.Errorf("DefaultPlatform = %q, want %q", s.DefaultPlatform, models.PlatformAll.Name())
	}
	if len(s.EnabledPlatforms) != len(models.AllPlatforms) {
		t.Errorf("EnabledPlatforms = %d entries, want %d", len(s.EnabledPlatforms), len(models.AllPlatforms))
	}
}

func TestLoad_ToleratesCommentsAndTrailingCommas(t *testing.T) {
	withTempConfig(t, `{
		// hand-edited
		"region": "DE",
		"deals_page_size": 100,
	}`)

	s := Load()
	if s.Region != "DE" {
		t.Errorf("Region = %q, want DE", s.Region)
	}
	if s.DealsPageSize != 100 {
		t.Errorf("DealsPageSize = %d, want 100", s.DealsPageSize)
	}
	// Untouched fields keep their defaults.
	if s.GameInfoDelayMs != DefaultGameInfoDelayMs {
		t.Errorf("GameInfoDelayMs = %d, want %d", s.GameInfoDelayMs, DefaultGameInfoDelayMs)
	}
}

func TestLoad_MalformedFileFallsBackToDefaults(t *testing.T) {
	withTempConfig(t, `{"region": `)

	s := Load()
	if s.Region != "US" {
		t.Errorf("Region = %q, want US", s.Region)
	}
}

func TestLoad_NonPositiveNumbersAreRepaired(t *testing.T) {
	withTempConfig(t, `{"deals_page_size": 0, "game_info_delay_ms": -5}`)

	s := Load()
	if s.DealsPageSize != DefaultPageSize {
		t.Errorf("DealsPageSize = %d, want %d", s.DealsPageSize, DefaultPageSize)
	}
	if s.GameInfoDelayMs != DefaultGameInfoDelayMs {
		t.Errorf("GameInfoDelayMs = %d, want %d", s.GameInfoDelayMs, DefaultGameInfoDelayMs)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	withTempConfig(t, "")

	s := Default()
	s.Region = "FR"
	s.DefaultSortCriteria = "Cut"
	s.DefaultSortDirection = "Descending"
	if err := Save(s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := Load()
	if got.Region != "FR" || got.DefaultSortCriteria != "Cut" || got.DefaultSortDirection != "Descending" {
		t.Errorf("round trip lost fields: %+v", got)
	}
}

func TestLoadAPIKey_EnvironmentTakesPriority(t *testing.T) {
	withTempConfig(t, `{"api_key": "from-file"}`)
	t.Setenv(EnvAPIKey, "from-env")

	if key := LoadAPIKey(); key != "from-env" {
		t.Errorf("LoadAPIKey = %q, want from-env", key)
	}
}

func TestLoadAPIKey_FallsBackToFile(t *testing.T) {
	withTempConfig(t, `{"api_key": "from-file"}`)
	t.Setenv(EnvAPIKey, "")

	if key := LoadAPIKey(); key != "from-file" {
		t.Errorf("LoadAPIKey = %q, want from-file", key)
	}
}

func TestSetAPIKey_PreservesOtherSettings(t *testing.T) {
	withTempConfig(t, `{"region": "JP"}`)

	if err := SetAPIKey("secret"); err != nil {
		t.Fatalf("SetAPIKey failed: %v", err)
	}
	s := Load()
	if s.APIKey != "secret" {
		t.Errorf("APIKey = %q, want secret", s.APIKey)
	}
	if s.Region != "JP" {
		t.Errorf("Region = %q, want JP", s.Region)
	}
}

func TestSettings_ValueResolution(t *testing.T) {
	s := Settings{
		DefaultPlatform:  "Steam",
		EnabledPlatforms: []string{"Steam", "GOG", "NotAShop"},
		Region:           "eu1",
	}

	if s.DefaultPlatformValue().Name() != "Steam" {
		t.Errorf("DefaultPlatformValue = %q", s.DefaultPlatformValue().Name())
	}
	set := s.EnabledPlatformSet()
	if len(set) != 2 {
		t.Errorf("EnabledPlatformSet = %d entries, want 2 (unknown dropped)", len(set))
	}
	if s.RegionValue() != models.RegionDE {
		t.Errorf("RegionValue = %v, want legacy eu1 -> DE", s.RegionValue())
	}
}
