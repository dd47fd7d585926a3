package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DeviceListTool != "idevice_id" {
		t.Fatalf("unexpected DeviceListTool: %q", cfg.DeviceListTool)
	}
	if cfg.DeviceInfoTool != "ideviceinfo" {
		t.Fatalf("unexpected DeviceInfoTool: %q", cfg.DeviceInfoTool)
	}
	if cfg.Strict {
		t.Fatal("Strict should default to false")
	}
	if cfg.Timeout() != 0 {
		t.Fatalf("unexpected Timeout: %v", cfg.Timeout())
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestLoad_OverridesAndKeepsDefaults(t *testing.T) {
	path := writeTempConfig(t, `
device_info_tool = "/opt/homebrew/bin/ideviceinfo"
strict = true
timeout_seconds = 15
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DeviceListTool != "idevice_id" {
		t.Fatalf("DeviceListTool = %q, want default", cfg.DeviceListTool)
	}
	if cfg.DeviceInfoTool != "/opt/homebrew/bin/ideviceinfo" {
		t.Fatalf("DeviceInfoTool = %q", cfg.DeviceInfoTool)
	}
	if !cfg.Strict {
		t.Fatal("Strict = false, want true")
	}
	if cfg.Timeout() != 15*time.Second {
		t.Fatalf("Timeout() = %v, want 15s", cfg.Timeout())
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{name: "bad toml", contents: "strict = ", wantErr: "failed to decode"},
		{name: "empty tool", contents: `device_list_tool = "  "`, wantErr: "device_list_tool must not be empty"},
		{name: "negative timeout", contents: "timeout_seconds = -1", wantErr: "timeout_seconds must be between"},
		{name: "huge timeout", contents: "timeout_seconds = 7200", wantErr: "timeout_seconds must be between"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTempConfig(t, tt.contents))
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := LoadOrDefault(missing, false)
	if err != nil {
		t.Fatalf("LoadOrDefault(missing, false) error = %v", err)
	}
	if cfg.DeviceListTool != "idevice_id" {
		t.Fatalf("unexpected DeviceListTool: %q", cfg.DeviceListTool)
	}

	if _, err := LoadOrDefault(missing, true); err == nil {
		t.Fatal("LoadOrDefault(missing, true) error = nil")
	}

	if _, err := LoadOrDefault("", true); err != nil {
		t.Fatalf("LoadOrDefault(\"\") error = %v", err)
	}

	bad := writeTempConfig(t, "timeout_seconds = -5")
	if _, err := LoadOrDefault(bad, false); err == nil {
		t.Fatal("LoadOrDefault(invalid, false) error = nil")
	}
}
