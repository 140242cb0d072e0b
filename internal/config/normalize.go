package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeTemplates(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeExport()
	c.normalizePlaylist()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LibraryDir == "" {
		if value, ok := os.LookupEnv("SETLIST_LIBRARY_DIR"); ok {
			c.Paths.LibraryDir = strings.TrimSpace(value)
		}
	}
	if c.Paths.LibraryDir, err = expandPath(c.Paths.LibraryDir); err != nil {
		return fmt.Errorf("paths.library_dir: %w", err)
	}
	if c.Paths.PlaylistDir, err = expandPath(c.Paths.PlaylistDir); err != nil {
		return fmt.Errorf("paths.playlist_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CacheDir) == "" {
		c.Paths.CacheDir = defaultCacheDir()
	}
	if c.Paths.CacheDir, err = expandPath(c.Paths.CacheDir); err != nil {
		return fmt.Errorf("paths.cache_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTemplates() error {
	dirs := make([]string, 0, len(c.Templates.Dirs))
	seen := make(map[string]struct{}, len(c.Templates.Dirs))
	for _, dir := range c.Templates.Dirs {
		trimmed := strings.TrimSpace(dir)
		if trimmed == "" {
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return fmt.Errorf("templates.dirs: %w", err)
		}
		if _, exists := seen[expanded]; exists {
			continue
		}
		seen[expanded] = struct{}{}
		dirs = append(dirs, expanded)
	}
	if len(dirs) == 0 {
		expanded, err := expandPath(defaultTemplateDir)
		if err != nil {
			return fmt.Errorf("templates.dirs: %w", err)
		}
		dirs = []string{expanded}
	}
	c.Templates.Dirs = dirs
	return nil
}

func (c *Config) normalizeHistory() error {
	c.History.Path = strings.TrimSpace(c.History.Path)
	if c.History.Path == "" {
		return nil
	}
	var err error
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeExport() {
	c.Export.FontName = strings.TrimSpace(c.Export.FontName)
	if c.Export.FontName == "" {
		c.Export.FontName = defaultExportFontName
	}
	if c.Export.FontSize <= 0 {
		c.Export.FontSize = defaultExportFontSize
	}
}

func (c *Config) normalizePlaylist() {
	c.Playlist.LibraryFolder = strings.Trim(strings.TrimSpace(c.Playlist.LibraryFolder), "/")
	if c.Playlist.LibraryFolder == "" {
		c.Playlist.LibraryFolder = defaultLibraryFolder
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
