package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewPathManager(t *testing.T) {
	tests := []struct {
		name     string
		home     string
		expected string
	}{
		{
			name:     "default home directory",
			home:     "",
			expected: filepath.Join(os.Getenv("HOME"), ".config", "logira"),
		},
		{
			name:     "custom home directory",
			home:     "/custom/home",
			expected: "/custom/home/.config/logira",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPathManager(tt.home)
			if pm.ConfigDir() != tt.expected {
				t.Errorf("ConfigDir() = %v, want %v", pm.ConfigDir(), tt.expected)
			}
		})
	}
}

func TestPathManager_Paths(t *testing.T) {
	pm := NewPathManager("/test/home")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "ConfigFile", got: pm.ConfigFile(), want: "/test/home/.config/logira/logira.yml"},
		{name: "CredentialsDir", got: pm.CredentialsDir(), want: "/test/home/.config/logira/credentials"},
		{name: "DataDir", got: pm.DataDir(), want: "/test/home/.local/share/logira"},
		{name: "LogFile", got: pm.LogFile(), want: "/test/home/.local/share/logira/logs/logira.log"},
		{name: "MetricsTextfile", got: pm.MetricsTextfile(), want: "/test/home/.local/share/logira/metrics/logira.prom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestPathManager_EnsureDirectories(t *testing.T) {
	home := t.TempDir()
	pm := NewPathManager(home)

	if err := pm.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}

	for _, dir := range []string{
		pm.ConfigDir(),
		filepath.Dir(pm.LogFile()),
		filepath.Dir(pm.MetricsTextfile()),
	} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("directory %s was not created: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}

	// 2回目の呼び出しもエラーにならない
	if err := pm.EnsureDirectories(); err != nil {
		t.Errorf("EnsureDirectories() second call error = %v", err)
	}
}
