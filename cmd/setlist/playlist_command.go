package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"setlist/internal/adapter"
	"setlist/internal/export"
	"setlist/internal/librarycache"
	"setlist/internal/logging"
	"setlist/internal/playlist"
	"setlist/internal/rv"
)

func newPlaylistCommand(ctx *commandContext) *cobra.Command {
	var (
		name       string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "playlist <manifest>",
		Short: "Assemble a playlist archive from a manifest of titles",
		Long: `Playlist reads a manifest file with one title per line (# starts a
comment). Titles matching documents in the library become references
to those files; everything else is generated as a simple text document
and embedded in the archive.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.componentLogger("playlist")

			titles, err := readManifest(args[0])
			if err != nil {
				return err
			}
			if len(titles) == 0 {
				return fmt.Errorf("no titles found in %s", args[0])
			}

			playlistName := strings.TrimSpace(name)
			if playlistName == "" {
				playlistName = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}

			entries, err := librarycache.Scan(cfg.Paths.LibraryDir)
			if err != nil {
				return err
			}
			history, err := ctx.openHistory()
			if err != nil {
				return err
			}
			if history != nil {
				defer history.Close()
			}
			resolver := &librarycache.Resolver{Store: history, MinScore: cfg.Matcher.MinScore}

			items := make([]playlist.Item, 0, len(titles))
			for _, title := range titles {
				kind := manifestKind(title)
				entry, ok, err := resolver.Resolve(cmd.Context(), title, entries)
				if err != nil {
					return err
				}
				if ok {
					logger.Info("resolved in library",
						logging.Args(logging.String("title", title), logging.String("path", entry.Path))...)
					items = append(items, playlist.External(title, kind, entry.Path))
					continue
				}

				data, err := placeholderDocument(title)
				if err != nil {
					return err
				}
				logger.Info("embedding generated document", logging.Args(logging.String("title", title))...)
				items = append(items, playlist.Embedded(title, kind, data))
			}

			target := strings.TrimSpace(outputPath)
			if target == "" {
				target = filepath.Join(cfg.Paths.PlaylistDir, playlistName+".proplaylist")
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("create playlist directory: %w", err)
			}

			f, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("create playlist archive: %w", err)
			}
			assembler := playlist.Assembler{LibraryFolder: cfg.Playlist.LibraryFolder}
			if err := assembler.WriteArchive(f, playlistName, items); err != nil {
				f.Close()
				os.Remove(target)
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close playlist archive: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d items)\n", target, len(items))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Playlist name (defaults to the manifest file name)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Archive path (defaults into the configured playlist directory)")
	return cmd
}

func readManifest(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var titles []string
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		titles = append(titles, line)
	}
	return titles, nil
}

func manifestKind(title string) playlist.Kind {
	lower := strings.ToLower(title)
	if strings.HasPrefix(lower, "scripture") || strings.HasPrefix(lower, "reading") {
		return playlist.KindScripture
	}
	return playlist.KindLyrics
}

// placeholderDocument builds a one-slide document carrying the title so
// unresolved manifest entries still show something on screen.
func placeholderDocument(title string) ([]byte, error) {
	song, err := export.BuildSong(title, []export.Stanza{{Lines: []string{title}}})
	if err != nil {
		return nil, err
	}
	song.Category = "Presentation"
	return rv.Marshal(adapter.ToWire(song)), nil
}
