package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatcher(); err != nil {
		return err
	}
	if err := c.validateExport(); err != nil {
		return err
	}
	if err := c.validatePlaylist(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.LibraryDir) == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/setlist/config.toml"
		}
		return fmt.Errorf("paths.library_dir is required. Set SETLIST_LIBRARY_DIR env var or edit %s (create with 'setlist config init')", defaultPath)
	}
	if strings.TrimSpace(c.Paths.PlaylistDir) == "" {
		return errors.New("paths.playlist_dir must be set")
	}
	return nil
}

func (c *Config) validateMatcher() error {
	if c.Matcher.MinScore < 0 || c.Matcher.MinScore > 1 {
		return errors.New("matcher.min_score must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateExport() error {
	if c.Export.FontSize <= 0 {
		return errors.New("export.font_size must be positive")
	}
	return nil
}

func (c *Config) validatePlaylist() error {
	if strings.ContainsAny(c.Playlist.LibraryFolder, `/\`) {
		return errors.New("playlist.library_folder must be a single folder name")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
}
