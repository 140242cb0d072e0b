package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"setlist/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_CACHE_HOME", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLibrary := filepath.Join(tempHome, "Documents", "ProPresenter", "Libraries", "Default")
	if cfg.Paths.LibraryDir != wantLibrary {
		t.Fatalf("unexpected library dir: got %q want %q", cfg.Paths.LibraryDir, wantLibrary)
	}
	if cfg.Paths.PlaylistDir != filepath.Join(tempHome, "Documents", "ProPresenter", "Playlists") {
		t.Fatalf("unexpected playlist dir: %q", cfg.Paths.PlaylistDir)
	}
	if len(cfg.Templates.Dirs) != 1 || cfg.Templates.Dirs[0] != filepath.Join(tempHome, ".config", "setlist", "templates") {
		t.Fatalf("unexpected template dirs: %v", cfg.Templates.Dirs)
	}
	if !cfg.History.Enabled {
		t.Fatal("expected history enabled by default")
	}
	if cfg.HistoryPath() != filepath.Join(cfg.Paths.CacheDir, "history.db") {
		t.Fatalf("unexpected history path: %q", cfg.HistoryPath())
	}
	if cfg.Matcher.MinScore != 0.6 {
		t.Fatalf("unexpected matcher threshold: %v", cfg.Matcher.MinScore)
	}
	if cfg.Export.FontName != "Helvetica" || cfg.Export.FontSize != 72 {
		t.Fatalf("unexpected export defaults: %q %v", cfg.Export.FontName, cfg.Export.FontSize)
	}
	if cfg.Playlist.LibraryFolder != "Library" {
		t.Fatalf("unexpected library folder: %q", cfg.Playlist.LibraryFolder)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %q %q", cfg.Logging.Format, cfg.Logging.Level)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LibraryDir, cfg.Paths.PlaylistDir, cfg.Paths.CacheDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "setlist.toml")

	type payload struct {
		Paths struct {
			LibraryDir string `toml:"library_dir"`
		} `toml:"paths"`
		Templates struct {
			Dirs []string `toml:"dirs"`
		} `toml:"templates"`
		Matcher struct {
			MinScore float64 `toml:"min_score"`
		} `toml:"matcher"`
		Export struct {
			FontName string `toml:"font_name"`
		} `toml:"export"`
	}
	custom := payload{}
	custom.Paths.LibraryDir = filepath.Join(tempDir, "library")
	custom.Templates.Dirs = []string{filepath.Join(tempDir, "templates"), filepath.Join(tempDir, "templates")}
	custom.Matcher.MinScore = 0.8
	custom.Export.FontName = "Georgia"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.LibraryDir != filepath.Join(tempDir, "library") {
		t.Fatalf("unexpected library dir: %q", cfg.Paths.LibraryDir)
	}
	if len(cfg.Templates.Dirs) != 1 {
		t.Fatalf("expected duplicate template dirs collapsed, got %v", cfg.Templates.Dirs)
	}
	if cfg.Matcher.MinScore != 0.8 {
		t.Fatalf("unexpected matcher threshold: %v", cfg.Matcher.MinScore)
	}
	if cfg.Export.FontName != "Georgia" {
		t.Fatalf("unexpected export font: %q", cfg.Export.FontName)
	}
	if cfg.Export.FontSize != 72 {
		t.Fatalf("expected default font size to survive partial [export] section, got %v", cfg.Export.FontSize)
	}
}

func TestEnvVarSuppliesLibraryDir(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "setlist.toml")

	if err := os.WriteFile(configPath, []byte("[paths]\nlibrary_dir = \"\"\n"), 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}
	t.Setenv("SETLIST_LIBRARY_DIR", filepath.Join(tempDir, "env-library"))

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.LibraryDir != filepath.Join(tempDir, "env-library") {
		t.Fatalf("expected library dir from env, got %q", cfg.Paths.LibraryDir)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "library_dir") {
		t.Fatalf("sample config missing library_dir: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Playlist.LibraryFolder != "Library" {
		t.Fatalf("unexpected sample library folder: %q", cfg.Playlist.LibraryFolder)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	newValid := func() config.Config {
		cfg := config.Default()
		cfg.Paths.LibraryDir = "/library"
		cfg.Paths.PlaylistDir = "/playlists"
		cfg.Logging.Level = "info"
		return cfg
	}

	cfg := newValid()
	cfg.Matcher.MinScore = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range matcher threshold")
	}

	cfg = newValid()
	cfg.Export.FontSize = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive font size")
	}

	cfg = newValid()
	cfg.Playlist.LibraryFolder = "a/b"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for nested library folder")
	}

	cfg = newValid()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}

	cfg = newValid()
	cfg.Paths.LibraryDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing library dir")
	}
}
