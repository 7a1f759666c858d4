package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Dirs) != 1 || cfg.Dirs[0] != "." {
		t.Errorf("Dirs = %v, want [.]", cfg.Dirs)
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != "jar" {
		t.Errorf("Extensions = %v, want [jar]", cfg.Extensions)
	}
	if cfg.Mode != ModeExtended {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeExtended)
	}
	if cfg.Separator != "!" {
		t.Errorf("Separator = %q, want %q", cfg.Separator, "!")
	}
	if cfg.AbsolutePath {
		t.Errorf("AbsolutePath = %v, want false", cfg.AbsolutePath)
	}
	if cfg.IgnoreCase {
		t.Errorf("IgnoreCase = %v, want false", cfg.IgnoreCase)
	}
	if cfg.Lister != ListerAuto {
		t.Errorf("Lister = %q, want %q", cfg.Lister, ListerAuto)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

// TestValidate covers the rejected value combinations
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults",
			modify: func(c *Config) {},
		},
		{
			name:    "no directories",
			modify:  func(c *Config) { c.Dirs = nil },
			wantErr: "at least one directory",
		},
		{
			name:    "empty directory",
			modify:  func(c *Config) { c.Dirs = []string{""} },
			wantErr: "directory must not be empty",
		},
		{
			name:    "no extensions",
			modify:  func(c *Config) { c.Extensions = nil },
			wantErr: "at least one extension",
		},
		{
			name:    "dot only extension",
			modify:  func(c *Config) { c.Extensions = []string{"."} },
			wantErr: "extension must not be empty",
		},
		{
			name:    "unknown mode",
			modify:  func(c *Config) { c.Mode = "glob" },
			wantErr: "invalid regex mode",
		},
		{
			name:    "unknown lister",
			modify:  func(c *Config) { c.Lister = "7z" },
			wantErr: "invalid lister",
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:   "perl mode with builtin lister",
			modify: func(c *Config) { c.Mode = ModePerl; c.Lister = ListerBuiltin },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want containing %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNormalizeExtension(t *testing.T) {
	tests := map[string]string{
		"jar":   "jar",
		".jar":  "jar",
		" zip ": "zip",
		".":     "",
	}
	for in, want := range tests {
		if got := NormalizeExtension(in); got != want {
			t.Errorf("NormalizeExtension(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Dirs[0] = "changed"
	clone.Extensions = append(clone.Extensions, "zip")

	if cfg.Dirs[0] != "." {
		t.Errorf("Clone shares Dirs with original: %v", cfg.Dirs)
	}
	if len(cfg.Extensions) != 1 {
		t.Errorf("Clone shares Extensions with original: %v", cfg.Extensions)
	}
}

func TestValidateDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	t.Run("existing directory", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Dirs = []string{tmpDir}

		resolved, err := cfg.ValidateDirectories()
		if err != nil {
			t.Fatalf("ValidateDirectories() error = %v", err)
		}
		if resolved.Dirs[0] != tmpDir {
			t.Errorf("Dirs[0] = %q, want %q", resolved.Dirs[0], tmpDir)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Dirs = []string{filepath.Join(tmpDir, "nope")}

		_, err := cfg.ValidateDirectories()
		if err == nil || !strings.Contains(err.Error(), "does not exist") {
			t.Errorf("ValidateDirectories() error = %v, want does not exist", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Dirs = []string{file}

		_, err := cfg.ValidateDirectories()
		if err == nil || !strings.Contains(err.Error(), "not a directory") {
			t.Errorf("ValidateDirectories() error = %v, want not a directory", err)
		}
	})

	t.Run("unreadable directory", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("permission bits are not enforced for this user")
		}
		locked := filepath.Join(tmpDir, "locked")
		if err := os.Mkdir(locked, 0000); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		t.Cleanup(func() { os.Chmod(locked, 0755) })

		cfg := DefaultConfig()
		cfg.Dirs = []string{locked}

		_, err := cfg.ValidateDirectories()
		if err == nil || !strings.Contains(err.Error(), "not readable") {
			t.Errorf("ValidateDirectories() error = %v, want not readable", err)
		}
	})

	t.Run("absolute path resolution", func(t *testing.T) {
		sub := filepath.Join(tmpDir, "sub")
		if err := os.Mkdir(sub, 0755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		t.Chdir(tmpDir)

		cfg := DefaultConfig()
		cfg.Dirs = []string{"sub", "."}
		cfg.AbsolutePath = true

		resolved, err := cfg.ValidateDirectories()
		if err != nil {
			t.Fatalf("ValidateDirectories() error = %v", err)
		}

		wantRoot, err := filepath.EvalSymlinks(tmpDir)
		if err != nil {
			t.Fatalf("EvalSymlinks() error = %v", err)
		}
		if resolved.Dirs[0] != filepath.Join(wantRoot, "sub") {
			t.Errorf("Dirs[0] = %q, want %q", resolved.Dirs[0], filepath.Join(wantRoot, "sub"))
		}
		if resolved.Dirs[1] != wantRoot {
			t.Errorf("Dirs[1] = %q, want %q", resolved.Dirs[1], wantRoot)
		}
		if cfg.Dirs[0] != "sub" {
			t.Errorf("original config was modified: %v", cfg.Dirs)
		}
	})
}
