package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// TestNewConfig verifies the default values of NewConfig.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default BatchSize is 4", func(t *testing.T) {
		t.Parallel()
		if cfg.BatchSize != 4 {
			t.Errorf("expected BatchSize to be 4, got %d", cfg.BatchSize)
		}
	})

	t.Run("default Color is auto", func(t *testing.T) {
		t.Parallel()
		if cfg.Color != ColorAuto {
			t.Errorf("expected Color to be auto, got %q", cfg.Color)
		}
	})

	t.Run("default analysis tunables", func(t *testing.T) {
		t.Parallel()
		a := cfg.Analysis
		if a.TopValue() != 8 || a.MinPatternLength != 2 || a.MaxPatternsValue() != 6 {
			t.Errorf("unexpected pattern defaults: %+v", a)
		}
		if a.PatternScanLimit != 4096 || a.PreviewLimit != 200 {
			t.Errorf("unexpected limits: %+v", a)
		}
		if a.EntropyThreshold != 4.5 || a.LowEntropyThreshold != 2.0 {
			t.Errorf("unexpected thresholds: %+v", a)
		}
		if len(a.Codecs) != 0 {
			t.Errorf("expected every codec by default, got %v", a.Codecs)
		}
	})
}

// TestConfigValidate tests each validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	validConfig := func() *Config {
		cfg := NewConfig()
		cfg.Inputs = []string{"hello"}
		return cfg
	}

	tests := []struct {
		name     string
		modify   func(*Config)
		expected error
	}{
		{"valid config returns nil", func(*Config) {}, nil},
		{"list file counts as input", func(c *Config) { c.Inputs = nil; c.ListFile = "list.txt" }, nil},
		{"no input", func(c *Config) { c.Inputs = nil }, ErrNoInput},
		{"json and markdown", func(c *Config) { c.JSONReport = true; c.MarkdownReport = true }, ErrConflictingReportFormats},
		{"zero batch", func(c *Config) { c.BatchSize = 0 }, ErrInvalidBatchSize},
		{"bad color", func(c *Config) { c.Color = "sometimes" }, ErrInvalidColorMode},
		{"negative top", func(c *Config) { c.Analysis.Top = IntPtr(-1) }, ErrInvalidTop},
		{"zero top is allowed", func(c *Config) { c.Analysis.Top = IntPtr(0) }, nil},
		{"unset top is allowed", func(c *Config) { c.Analysis.Top = nil }, nil},
		{"zero pattern length", func(c *Config) { c.Analysis.MinPatternLength = 0 }, ErrInvalidPatternLength},
		{"negative max patterns", func(c *Config) { c.Analysis.MaxPatterns = IntPtr(-1) }, ErrInvalidMaxPatterns},
		{"zero max patterns is allowed", func(c *Config) { c.Analysis.MaxPatterns = IntPtr(0) }, nil},
		{"zero scan limit", func(c *Config) { c.Analysis.PatternScanLimit = 0 }, ErrInvalidPatternScanLimit},
		{"zero preview limit", func(c *Config) { c.Analysis.PreviewLimit = 0 }, ErrInvalidPreviewLimit},
		{"zero threshold", func(c *Config) { c.Analysis.EntropyThreshold = 0 }, ErrInvalidThreshold},
		{"unknown codec", func(c *Config) { c.Analysis.Codecs = []string{"rot13"} }, ErrUnknownCodec},
		{"known codecs", func(c *Config) { c.Analysis.Codecs = []string{"hex", "utf8"} }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.expected == nil {
				if err != nil {
					t.Errorf("expected nil, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

// TestAnalysisMerge tests that only set fields override.
func TestAnalysisMerge(t *testing.T) {
	t.Parallel()

	base := DefaultAnalysis()
	merged := base.Merge(Analysis{Top: IntPtr(3), Codecs: []string{"hex"}, EntropyThreshold: 4})

	if merged.TopValue() != 3 || merged.EntropyThreshold != 4 {
		t.Errorf("expected overrides to apply, got %+v", merged)
	}
	if merged.MaxPatternsValue() != base.MaxPatternsValue() || merged.PreviewLimit != base.PreviewLimit {
		t.Errorf("expected unset fields to keep defaults, got %+v", merged)
	}
	if !reflect.DeepEqual(merged.Codecs, []string{"hex"}) {
		t.Errorf("expected [hex], got %v", merged.Codecs)
	}
	if len(base.Codecs) != 0 || base.TopValue() != DefaultTop {
		t.Error("merge modified its receiver")
	}
}

// TestAnalysisMergeExplicitZero tests that an explicit zero overrides the
// defaults for the fields where zero has a meaning.
func TestAnalysisMergeExplicitZero(t *testing.T) {
	t.Parallel()

	merged := DefaultAnalysis().Merge(Analysis{Top: IntPtr(0), MaxPatterns: IntPtr(0)})
	if merged.TopValue() != 0 {
		t.Errorf("expected top 0, got %d", merged.TopValue())
	}
	if merged.MaxPatternsValue() != 0 {
		t.Errorf("expected max patterns 0, got %d", merged.MaxPatternsValue())
	}

	over := Analysis{Top: IntPtr(4)}
	merged = DefaultAnalysis().Merge(over)
	*over.Top = 9
	if merged.TopValue() != 4 {
		t.Errorf("expected merge to copy the value, got %d", merged.TopValue())
	}
}

// TestAnalyzerOptions tests conversion into engine options.
func TestAnalyzerOptions(t *testing.T) {
	t.Parallel()

	a := DefaultAnalysis()
	a.Codecs = []string{"utf8"}
	opts, err := a.AnalyzerOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) == 0 {
		t.Error("expected options")
	}

	a.Codecs = []string{"nope"}
	if _, err := a.AnalyzerOptions(); !errors.Is(err, ErrUnknownCodec) {
		t.Errorf("expected ErrUnknownCodec, got %v", err)
	}
}

// TestFileResolve tests merging defaults and profiles.
func TestFileResolve(t *testing.T) {
	t.Parallel()

	f := &File{
		Defaults: Analysis{Top: IntPtr(10)},
		Profiles: map[string]Analysis{
			"tokens": {Codecs: []string{"base64", "base64url"}, EntropyThreshold: 4},
			"quick":  {MaxPatterns: IntPtr(1)},
		},
	}

	t.Run("defaults only", func(t *testing.T) {
		t.Parallel()
		got, err := f.Resolve(DefaultAnalysis(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TopValue() != 10 {
			t.Errorf("expected top 10, got %d", got.TopValue())
		}
	})

	t.Run("profile over defaults", func(t *testing.T) {
		t.Parallel()
		got, err := f.Resolve(DefaultAnalysis(), "tokens")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TopValue() != 10 || got.EntropyThreshold != 4 || len(got.Codecs) != 2 {
			t.Errorf("unexpected result: %+v", got)
		}
	})

	t.Run("unknown profile", func(t *testing.T) {
		t.Parallel()
		_, err := f.Resolve(DefaultAnalysis(), "missing")
		if !errors.Is(err, ErrUnknownProfile) {
			t.Errorf("expected ErrUnknownProfile, got %v", err)
		}
		if !strings.Contains(err.Error(), "[quick tokens]") {
			t.Errorf("expected defined profiles in message, got %v", err)
		}
	})
}

// TestLoadConfigFile tests reading YAML configuration files.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `defaults:
  top: 12
  previewLimit: 64
profiles:
  hashes:
    codecs: [hex]
    minPatternLength: 4
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		f, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Defaults.TopValue() != 12 || f.Defaults.PreviewLimit != 64 {
			t.Errorf("unexpected defaults: %+v", f.Defaults)
		}
		hashes, ok := f.Profiles["hashes"]
		if !ok {
			t.Fatal("expected hashes profile")
		}
		if hashes.MinPatternLength != 4 || !reflect.DeepEqual(hashes.Codecs, []string{"hex"}) {
			t.Errorf("unexpected profile: %+v", hashes)
		}
	})

	t.Run("explicit zero is kept", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := "profiles:\n  all:\n    maxPatterns: 0\n    top: 0\n  plain:\n    previewLimit: 16\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		f, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		plain := f.Profiles["plain"]
		if plain.Top != nil || plain.MaxPatterns != nil {
			t.Errorf("expected unset fields to stay nil, got %+v", plain)
		}

		got, err := f.Resolve(DefaultAnalysis(), "all")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.MaxPatternsValue() != 0 || got.TopValue() != 0 {
			t.Errorf("expected maxPatterns=0 top=0, got maxPatterns=%d top=%d",
				got.MaxPatternsValue(), got.TopValue())
		}
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "empty.yaml")
		if err := os.WriteFile(path, nil, 0600); err != nil {
			t.Fatal(err)
		}
		f, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Profiles == nil {
			t.Error("expected initialized profile map")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("defaults: [unclosed"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

// TestFindConfigFile tests the explicit path branch of the search.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("defaults: {}\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if got := FindConfigFile(path); got != path {
		t.Errorf("expected %s, got %s", path, got)
	}
	if got := FindConfigFile(filepath.Join(dir, "missing.yaml")); got != "" {
		t.Errorf("expected empty path, got %s", got)
	}
}

// TestApplyConfigFile tests applying an explicit configuration file.
func TestApplyConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	content := "defaults:\n  top: 5\nprofiles:\n  strict:\n    entropyThreshold: 3.5\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	t.Run("profile applied", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ConfigFilePath = path
		cfg.Profile = "strict"

		used, err := cfg.ApplyConfigFile()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if used != path {
			t.Errorf("expected %s, got %s", path, used)
		}
		if cfg.Analysis.TopValue() != 5 || cfg.Analysis.EntropyThreshold != 3.5 {
			t.Errorf("unexpected analysis: %+v", cfg.Analysis)
		}
	})

	t.Run("explicit missing file", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ConfigFilePath = filepath.Join(dir, "missing.yaml")
		if _, err := cfg.ApplyConfigFile(); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("unknown profile", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ConfigFilePath = path
		cfg.Profile = "lenient"
		if _, err := cfg.ApplyConfigFile(); !errors.Is(err, ErrUnknownProfile) {
			t.Errorf("expected ErrUnknownProfile, got %v", err)
		}
	})
}

// TestXDGConfigDir tests the XDG config directory path.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if filepath.Base(dir) != AppName {
		t.Errorf("expected directory to end with %s, got %s", AppName, dir)
	}
}
