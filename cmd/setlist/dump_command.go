package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"setlist/internal/export"
	"setlist/internal/rtf"
	"setlist/internal/rv"
)

type dumpDocument struct {
	Name                string    `json:"name"`
	UUID                string    `json:"uuid,omitempty"`
	Category            string    `json:"category,omitempty"`
	SelectedArrangement string    `json:"selected_arrangement,omitempty"`
	Arrangements        []dumpArr `json:"arrangements,omitempty"`
	Cues                []dumpCue `json:"cues"`
	Application         string    `json:"application,omitempty"`
}

type dumpArr struct {
	Name   string `json:"name"`
	Groups int    `json:"groups"`
}

type dumpCue struct {
	Name  string `json:"name,omitempty"`
	Group string `json:"group,omitempty"`
	Text  string `json:"text,omitempty"`
}

func newDumpCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dump <document.pro>",
		Short: "Show the structure of a presentation document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := export.ReadPresentationFile(args[0])
			if err != nil {
				return err
			}

			model := buildDumpModel(doc)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), model)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:     %s\n", model.Name)
			if model.Category != "" {
				fmt.Fprintf(out, "Category: %s\n", model.Category)
			}
			if model.UUID != "" {
				fmt.Fprintf(out, "UUID:     %s\n", model.UUID)
			}
			if model.Application != "" {
				fmt.Fprintf(out, "Saved by: %s\n", model.Application)
			}
			for _, arr := range model.Arrangements {
				marker := ""
				if arr.Name == model.SelectedArrangement {
					marker = " (selected)"
				}
				fmt.Fprintf(out, "Arrangement: %s, %d groups%s\n", arr.Name, arr.Groups, marker)
			}

			rows := make([][]string, 0, len(model.Cues))
			for i, cue := range model.Cues {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					cue.Group,
					cue.Name,
					firstLine(cue.Text),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Group", "Cue", "Text"},
				rows, 0))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func buildDumpModel(doc *rv.Presentation) dumpDocument {
	model := dumpDocument{
		Name:     doc.Name,
		Category: doc.Category,
	}
	if doc.UUID != nil {
		model.UUID = doc.UUID.Value
	}
	if doc.ApplicationInfo != nil && doc.ApplicationInfo.ApplicationVersion != nil {
		v := doc.ApplicationInfo.ApplicationVersion
		model.Application = fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.PatchVersion)
	}

	selected := ""
	if doc.SelectedArrangement != nil {
		selected = doc.SelectedArrangement.Value
	}
	for _, arr := range doc.Arrangements {
		entry := dumpArr{Name: arr.Name, Groups: len(arr.GroupIdentifiers)}
		model.Arrangements = append(model.Arrangements, entry)
		if arr.UUID != nil && arr.UUID.Value == selected {
			model.SelectedArrangement = arr.Name
		}
	}

	groups := cueGroupNames(doc)
	for _, cue := range doc.Cues {
		entry := dumpCue{Name: cue.Name}
		if cue.UUID != nil {
			entry.Group = groups[cue.UUID.Value]
		}
		entry.Text = cueSlideText(cue)
		model.Cues = append(model.Cues, entry)
	}
	return model
}

func cueGroupNames(doc *rv.Presentation) map[string]string {
	names := make(map[string]string)
	for _, cg := range doc.CueGroups {
		if cg.Group == nil {
			continue
		}
		for _, id := range cg.CueIdentifiers {
			if id != nil {
				names[id.Value] = cg.Group.Name
			}
		}
	}
	return names
}

func cueSlideText(cue *rv.Cue) string {
	for _, action := range cue.Actions {
		st, ok := action.Data.(*rv.SlideType)
		if !ok || st.Presentation == nil || st.Presentation.BaseSlide == nil {
			continue
		}
		for _, se := range st.Presentation.BaseSlide.Elements {
			if se.Element == nil || se.Element.Text == nil {
				continue
			}
			if text, ok := rtf.Decode(se.Element.Text.RtfData); ok {
				return text
			}
		}
	}
	return ""
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	const limit = 60
	if len(line) > limit {
		return line[:limit-3] + "..."
	}
	return line
}
