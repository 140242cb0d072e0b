package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"setlist/internal/export"
	"setlist/internal/rv"
)

type analyzeFinding struct {
	label   string
	kind    statusKind
	message string
}

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <document.pro>",
		Short: "Check a presentation document for structural problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := export.ReadPresentationFile(args[0])
			if err != nil {
				return err
			}

			findings := analyzeDocument(doc)
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			problems := 0
			for _, f := range findings {
				if f.kind == statusWarn || f.kind == statusError {
					problems++
				}
				fmt.Fprintln(out, renderStatusLine(f.label, f.kind, f.message, colorize))
			}

			if problems > 0 {
				return fmt.Errorf("%d problem(s) found in %s", problems, args[0])
			}
			return nil
		},
	}
	return cmd
}

func analyzeDocument(doc *rv.Presentation) []analyzeFinding {
	var findings []analyzeFinding
	add := func(label string, kind statusKind, message string) {
		findings = append(findings, analyzeFinding{label: label, kind: kind, message: message})
	}

	if doc.Name == "" {
		add("name", statusWarn, "document has no name")
	} else {
		add("name", statusOK, doc.Name)
	}

	if len(doc.Cues) == 0 {
		add("cues", statusError, "document has no cues")
	} else {
		add("cues", statusOK, strconv.Itoa(len(doc.Cues)))
	}

	cueIDs := make(map[string]bool, len(doc.Cues))
	for _, cue := range doc.Cues {
		if cue.UUID != nil {
			cueIDs[cue.UUID.Value] = true
		}
	}

	groupIDs := make(map[string]bool, len(doc.CueGroups))
	dangling := 0
	for _, cg := range doc.CueGroups {
		if cg.Group != nil && cg.Group.UUID != nil {
			groupIDs[cg.Group.UUID.Value] = true
		}
		for _, id := range cg.CueIdentifiers {
			if id == nil || !cueIDs[id.Value] {
				dangling++
			}
		}
	}
	if dangling > 0 {
		add("groups", statusError, fmt.Sprintf("%d group cue reference(s) point at missing cues", dangling))
	} else {
		add("groups", statusOK, strconv.Itoa(len(doc.CueGroups)))
	}

	if len(doc.Arrangements) == 0 {
		add("arrangements", statusWarn, "document has no arrangements")
	} else {
		missing := 0
		for _, arr := range doc.Arrangements {
			for _, id := range arr.GroupIdentifiers {
				if id == nil || !groupIDs[id.Value] {
					missing++
				}
			}
		}
		if missing > 0 {
			add("arrangements", statusError, fmt.Sprintf("%d arrangement reference(s) point at missing groups", missing))
		} else {
			add("arrangements", statusOK, strconv.Itoa(len(doc.Arrangements)))
		}

		selected := ""
		if doc.SelectedArrangement != nil {
			selected = doc.SelectedArrangement.Value
		}
		if selected == "" {
			add("selection", statusWarn, "no arrangement selected")
		} else {
			found := false
			for _, arr := range doc.Arrangements {
				if arr.UUID != nil && arr.UUID.Value == selected {
					found = true
					break
				}
			}
			if found {
				add("selection", statusOK, "")
			} else {
				add("selection", statusError, "selected arrangement does not exist")
			}
		}
	}

	brokenChain := 0
	for _, cue := range doc.Cues {
		if cue.CompletionTargetType != rv.CompletionTargetCue {
			continue
		}
		if cue.CompletionTargetUUID == nil || !cueIDs[cue.CompletionTargetUUID.Value] {
			brokenChain++
		}
	}
	if brokenChain > 0 {
		add("completion", statusError, fmt.Sprintf("%d completion target(s) point at missing cues", brokenChain))
	} else {
		add("completion", statusOK, "")
	}

	readable := 0
	for _, cue := range doc.Cues {
		if cueSlideText(cue) != "" {
			readable++
		}
	}
	if len(doc.Cues) > 0 && readable == 0 {
		add("text", statusWarn, "no cue text could be decoded")
	} else {
		add("text", statusOK, fmt.Sprintf("%d of %d cues carry readable text", readable, len(doc.Cues)))
	}

	return findings
}
