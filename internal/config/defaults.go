package config

const (
	defaultLibraryDir      = "~/Documents/ProPresenter/Libraries/Default"
	defaultPlaylistDir     = "~/Documents/ProPresenter/Playlists"
	defaultTemplateDir     = "~/.config/setlist/templates"
	defaultHistoryEnabled  = true
	defaultMatcherMinScore = 0.6
	defaultExportFontName  = "Helvetica"
	defaultExportFontSize  = 72
	defaultLibraryFolder   = "Library"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir:  defaultLibraryDir,
			PlaylistDir: defaultPlaylistDir,
			CacheDir:    defaultCacheDir(),
		},
		Templates: Templates{
			Dirs: []string{defaultTemplateDir},
		},
		History: History{
			Enabled: defaultHistoryEnabled,
		},
		Matcher: Matcher{
			MinScore: defaultMatcherMinScore,
		},
		Export: Export{
			FontName: defaultExportFontName,
			FontSize: defaultExportFontSize,
		},
		Playlist: Playlist{
			LibraryFolder: defaultLibraryFolder,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
