package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"setlist/internal/adapter"
	"setlist/internal/export"
	"setlist/internal/logging"
	"setlist/internal/playlist"
	"setlist/internal/rv"
	"setlist/internal/template"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var (
		name         string
		category     string
		templateRole string
		outputDir    string
	)

	cmd := &cobra.Command{
		Use:   "generate <text-file>",
		Short: "Generate a presentation document from stanza text",
		Long: `Generate reads a text file of stanzas ([Label] headings separated by
blank lines) and writes a presentation document into the library.
With --template the slides are cloned from a template document so they
pick up its styling; otherwise the built-in song styling is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.componentLogger("generate")

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read text file: %w", err)
			}
			stanzas := export.ParseStanzas(string(data))
			if len(stanzas) == 0 {
				return fmt.Errorf("no stanzas found in %s", args[0])
			}

			title := strings.TrimSpace(name)
			if title == "" {
				title = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}

			style := export.Style{FontName: cfg.Export.FontName, FontSize: cfg.Export.FontSize}
			doc, err := buildDocument(ctx, title, category, templateRole, style, stanzas)
			if err != nil {
				return err
			}

			dir := strings.TrimSpace(outputDir)
			if dir == "" {
				dir = cfg.Paths.LibraryDir
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			kind := playlist.KindForCategory(category)
			path := filepath.Join(dir, playlist.Sanitize(title, kind)+".pro")
			if err := export.WritePresentationFile(path, doc); err != nil {
				return err
			}

			logger.Info("wrote document",
				logging.Args(logging.String("path", path), logging.Int("cues", len(doc.Cues)))...)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d cues)\n", path, len(doc.Cues))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Document name (defaults to the text file name)")
	cmd.Flags().StringVar(&category, "category", "Song", "Document category")
	cmd.Flags().StringVarP(&templateRole, "template", "t", "", "Template role to style slides with (song, scripture, info)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (defaults to the configured library)")
	return cmd
}

// buildDocument lowers stanzas into a wire document, through a template
// donor when one is requested.
func buildDocument(ctx *commandContext, title, category, templateRole string, style export.Style, stanzas []export.Stanza) (*rv.Presentation, error) {
	if strings.TrimSpace(templateRole) != "" {
		role, err := template.ParseRole(templateRole)
		if err != nil {
			return nil, err
		}
		cache, err := ctx.templateCache()
		if err != nil {
			return nil, err
		}
		donor, err := cache.Load(role)
		if err != nil {
			return nil, err
		}
		lines := make([]string, 0, len(stanzas))
		for _, st := range stanzas {
			lines = append(lines, strings.Join(st.Lines, "\n"))
		}
		doc, err := template.BuildPresentation(donor, title, lines)
		if err != nil {
			return nil, err
		}
		if category != "" {
			doc.Category = category
		}
		return doc, nil
	}

	song, err := export.BuildSongStyled(title, stanzas, style)
	if err != nil {
		return nil, err
	}
	if category != "" {
		song.Category = category
	}
	return adapter.ToWire(song), nil
}
