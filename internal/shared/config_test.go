package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./moviefav.db" {
			t.Errorf("expected database path ./moviefav.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 3000 {
			t.Errorf("expected server port 3000, got %d", config.Server.Port)
		}

		if config.API.BaseURL != "http://127.0.0.1:3000" {
			t.Errorf("expected api base URL http://127.0.0.1:3000, got %s", config.API.BaseURL)
		}

		if !config.Favorites.SerializeToggles {
			t.Error("expected serialize_toggles to default to true")
		}

		if config.Server.Addr() != "127.0.0.1:3000" {
			t.Errorf("expected server addr 127.0.0.1:3000, got %s", config.Server.Addr())
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Database.Path != DefaultConfig().Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[database]
path = "/custom/path.db"

[api]
base_url = "http://localhost:9090"

[favorites]
serialize_toggles = false
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}
		if config.API.BaseURL != "http://localhost:9090" {
			t.Errorf("expected base URL http://localhost:9090, got %s", config.API.BaseURL)
		}
		if config.Favorites.SerializeToggles {
			t.Error("expected serialize_toggles to be overridden to false")
		}
		if config.Server.Port != 3000 {
			t.Errorf("expected unset server port to keep default 3000, got %d", config.Server.Port)
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("Applies Dotenv Overrides", func(t *testing.T) {
		envPath := filepath.Join(t.TempDir(), ".env")
		content := "MOVIEFAV_API_URL=http://env.example\nMOVIEFAV_DB_PATH=/tmp/env.db\nMOVIEFAV_SERVER_PORT=4000\n"
		if err := os.WriteFile(envPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}
		for _, k := range []string{EnvAPIURL, EnvDatabasePath, EnvServerPort, EnvLogLevel} {
			t.Setenv(k, "")
			os.Unsetenv(k)
		}

		config := DefaultConfig()
		if err := LoadEnv(config, envPath); err != nil {
			t.Fatalf("failed to load env: %v", err)
		}

		if config.API.BaseURL != "http://env.example" {
			t.Errorf("expected base URL from env, got %s", config.API.BaseURL)
		}
		if config.Database.Path != "/tmp/env.db" {
			t.Errorf("expected database path from env, got %s", config.Database.Path)
		}
		if config.Server.Port != 4000 {
			t.Errorf("expected port 4000 from env, got %d", config.Server.Port)
		}
	})

	t.Run("Missing Dotenv File Is Ignored", func(t *testing.T) {
		config := DefaultConfig()
		if err := LoadEnv(config, filepath.Join(t.TempDir(), ".env")); err != nil {
			t.Errorf("expected missing env file to be ignored, got %v", err)
		}
	})

	t.Run("Invalid Port", func(t *testing.T) {
		t.Setenv(EnvServerPort, "not-a-port")

		config := DefaultConfig()
		if err := LoadEnv(config, filepath.Join(t.TempDir(), ".env")); err == nil {
			t.Error("expected error for invalid port")
		}
	})
}
