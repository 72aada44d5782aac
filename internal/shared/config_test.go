package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("LoadConfig", func(t *testing.T) {
		t.Run("loads valid config", func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "config.toml")

			content := `
[credentials.spotify]
client_id = "test_id"
client_secret = "test_secret"

[credentials.youtube]
proxy_url = "http://localhost:9999"

[database]
path = "test.db"
max_open_conns = 10
max_idle_conns = 3

[output]
format = "csv"
directory = "/tmp/reports"
`
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			config, err := LoadConfig(configPath)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if config.Credentials.Spotify.ClientID != "test_id" {
				t.Errorf("expected client_id test_id, got %s", config.Credentials.Spotify.ClientID)
			}
			if config.Credentials.YouTube.ProxyURL != "http://localhost:9999" {
				t.Errorf("unexpected proxy_url %s", config.Credentials.YouTube.ProxyURL)
			}
			if config.Database.Path != "test.db" || config.Database.MaxOpenConns != 10 {
				t.Errorf("unexpected database config %+v", config.Database)
			}
			if config.Output.Format != "csv" {
				t.Errorf("unexpected output format %s", config.Output.Format)
			}
		})

		t.Run("missing file", func(t *testing.T) {
			if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
				t.Error("expected error for missing file")
			}
		})

		t.Run("invalid TOML", func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "bad.toml")
			if err := os.WriteFile(configPath, []byte("[[[not toml"), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			if _, err := LoadConfig(configPath); err == nil {
				t.Error("expected parse error")
			}
		})
	})

	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path == "" {
			t.Error("expected default database path")
		}
		if config.Credentials.YouTube.ProxyURL == "" {
			t.Error("expected default proxy URL")
		}
		if config.Output.Format == "" {
			t.Error("expected default output format")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		t.Run("creates file from template", func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "config.toml")

			if err := CreateConfigFile(configPath); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			config, err := LoadConfig(configPath)
			if err != nil {
				t.Fatalf("created config should load: %v", err)
			}
			if config.Database.Path != DefaultConfig().Database.Path {
				t.Error("expected created config to match defaults")
			}
		})

		t.Run("refuses to overwrite", func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "config.toml")

			if err := os.WriteFile(configPath, []byte("existing"), 0644); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}

			if err := CreateConfigFile(configPath); err == nil {
				t.Error("expected error when file exists")
			}
		})
	})

	t.Run("SpotifyConfig Map", func(t *testing.T) {
		cfg := SpotifyConfig{ClientID: "id", ClientSecret: "secret"}
		m := cfg.Map()

		if m["client_id"] != "id" || m["client_secret"] != "secret" {
			t.Errorf("unexpected credential map %+v", m)
		}
	})
}
