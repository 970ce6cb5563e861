// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// setupTestConfig sets DIRDIFF_CFG_FILE to point to a test config file.
// Returns cleanup function that should be deferred.
func setupTestConfig(t *testing.T, testdataFile string) (cleanup func()) {
	t.Helper()

	// Get absolute path to testdata file
	configPath := filepath.Join("testdata", testdataFile)
	absPath, err := filepath.Abs(configPath)
	assert.NoError(t, err, "failed to get absolute path for test config")

	// Set DIRDIFF_CFG_FILE environment variable
	t.Setenv("DIRDIFF_CFG_FILE", absPath)

	// Reset the global Config to force reload
	Config = Type{}

	return func() {
		// Reset global Config
		Config = Type{}
	}
}

// withConfig is a helper that sets up a test config and executes a test function.
// This reduces boilerplate for common test patterns.
func withConfig(t *testing.T, testFile string, fn func(t *testing.T)) {
	t.Helper()
	cleanup := setupTestConfig(t, testFile)
	defer cleanup()
	_, _ = Load()
	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple values",
			testFile: "simple.yaml",
			wantErr:  false,
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Contains(t, cfg.Data, "threshold")
				assert.Equal(t, 0.1, cfg.Data["threshold"])
				assert.Equal(t, "nvim", cfg.Data["editor"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			wantErr:  false,
			checkFunc: func(t *testing.T, cfg Type) {
				scan, ok := cfg.Data["scan"].(map[string]interface{})
				assert.True(t, ok, "scan should be a map")
				assert.Equal(t, 0.25, scan["threshold"])
				assert.Equal(t, 8, scan["workers"])
				ignore, ok := scan["ignore"].([]interface{})
				assert.True(t, ok)
				assert.Len(t, ignore, 2)
			},
		},
		{
			name:     "mixed types",
			testFile: "mixed-types.yaml",
			wantErr:  false,
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Equal(t, "test-project", cfg.Data["name"])
				assert.Equal(t, 1, cfg.Data["version"])
				assert.Equal(t, true, cfg.Data["enabled"])
				assert.Equal(t, 0.5, cfg.Data["threshold"])
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			wantErr:  false,
			checkFunc: func(t *testing.T, cfg Type) {
				// Empty YAML unmarshals to nil map, which is acceptable
				assert.NotEmpty(t, cfg.Source, "should have a source path")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			cfg, err := Load()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestGetString(t *testing.T) {
	withConfig(t, "simple.yaml", func(t *testing.T) {
		got, err := GetString("editor")
		assert.NoError(t, err)
		assert.Equal(t, "nvim", got)
	})

	withConfig(t, "simple.yaml", func(t *testing.T) {
		got, err := GetString("missing", "fallback")
		assert.NoError(t, err)
		assert.Equal(t, "fallback", got)
	})

	withConfig(t, "simple.yaml", func(t *testing.T) {
		_, err := GetString("missing")
		assert.Error(t, err)
	})

	withConfig(t, "simple.yaml", func(t *testing.T) {
		// Exists but wrong type.
		_, err := GetString("threshold")
		assert.Error(t, err)
	})
}

func TestGetFloat(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		got, err := GetFloat("scan.threshold")
		assert.NoError(t, err)
		assert.Equal(t, 0.25, got)
	})

	withConfig(t, "nested.yaml", func(t *testing.T) {
		// Namespaced lookup: "threshold" resolves under the scan namespace.
		Config.Namespace = "scan"
		got, err := GetFloat("threshold")
		assert.NoError(t, err)
		assert.Equal(t, 0.25, got)
	})

	withConfig(t, "nested.yaml", func(t *testing.T) {
		// Integer-shaped YAML accepted as float.
		got, err := GetFloat("scan.workers")
		assert.NoError(t, err)
		assert.Equal(t, 8.0, got)
	})

	withConfig(t, "nested.yaml", func(t *testing.T) {
		got, err := GetFloat("missing.key", 0.05)
		assert.NoError(t, err)
		assert.Equal(t, 0.05, got)
	})
}

func TestGetInt(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		got, err := GetInt("scan.workers")
		assert.NoError(t, err)
		assert.Equal(t, 8, got)
	})

	withConfig(t, "nested.yaml", func(t *testing.T) {
		got, err := GetInt("scan.missing", 4)
		assert.NoError(t, err)
		assert.Equal(t, 4, got)
	})
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, "nested.yaml", func(t *testing.T) {
		got, err := GetStringSlice("scan.ignore")
		assert.NoError(t, err)
		assert.Equal(t, []string{".git", "node_modules"}, got)
	})

	withConfig(t, "nested.yaml", func(t *testing.T) {
		got, err := GetStringSlice("scan.nope", []string{"build"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"build"}, got)
	})

	withConfig(t, "mixed-types.yaml", func(t *testing.T) {
		got, err := GetStringSlice("ignore")
		assert.NoError(t, err)
		assert.Equal(t, []string{"build", "dist"}, got)
	})
}
