package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"setlist/internal/export"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "extract <document.pro>",
		Short: "Extract editable stanza text from a presentation document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := export.ReadPresentationFile(args[0])
			if err != nil {
				return err
			}

			text := export.ExtractText(doc)
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("%s contains no readable text", args[0])
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(text+"\n"), 0o644); err != nil {
					return fmt.Errorf("write text file: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outputPath)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write text to a file instead of stdout")
	return cmd
}
