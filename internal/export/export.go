// Package export bridges plain text and presentation documents: it
// parses editor text into stanzas, generates fully styled presentations
// from them, writes and reads library files, and extracts editable text
// back out of existing documents.
package export

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"setlist/internal/pres"
)

// Stanza is one labeled block of lyric or content lines.
type Stanza struct {
	Label string
	Lines []string
}

// ParseStanzas splits editor text into stanzas. A line of the form
// [Label] starts a new stanza; a blank line ends the current one.
func ParseStanzas(text string) []Stanza {
	var (
		stanzas []Stanza
		current *Stanza
	)
	flush := func() {
		if current != nil && (current.Label != "" || len(current.Lines) > 0) {
			stanzas = append(stanzas, *current)
		}
		current = nil
	}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			flush()
			current = &Stanza{Label: strings.TrimSpace(trimmed[1 : len(trimmed)-1])}
		default:
			if current == nil {
				current = &Stanza{}
			}
			current.Lines = append(current.Lines, trimmed)
		}
	}
	flush()
	return stanzas
}

// Group label colors, matched by keyword.
var (
	verseColor  = pres.Color{B: 1, A: 1}
	chorusColor = pres.Color{G: 1, A: 1}
	bridgeColor = pres.Color{R: 1, B: 1, A: 1}
	tagColor    = pres.Color{G: 1, B: 1, A: 1}
	otherColor  = pres.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
)

// GroupColor picks the display color for a group label.
func GroupColor(label string) pres.Color {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "verse"):
		return verseColor
	case strings.Contains(l, "chorus"):
		return chorusColor
	case strings.Contains(l, "bridge"):
		return bridgeColor
	case strings.Contains(l, "tag"), strings.Contains(l, "ending"):
		return tagColor
	default:
		return otherColor
	}
}

// defaultSongShadow is the drop shadow applied when no template styles
// the text.
var defaultSongShadow = pres.Shadow{
	Color:   pres.Black,
	Angle:   315,
	Offset:  5,
	Radius:  5,
	Opacity: 0.75,
}

// Style overrides the default text styling of generated documents.
// Zero fields fall back to Helvetica 72.
type Style struct {
	FontName string
	FontSize float64
}

func (s Style) withDefaults() Style {
	if s.FontName == "" {
		s.FontName = "Helvetica"
	}
	if s.FontSize <= 0 {
		s.FontSize = 72
	}
	return s
}

// songTextElement styles stanza text the house way: white, centered,
// shadowed, across the full canvas.
func songTextElement(text string, style Style) pres.TextElement {
	shadow := defaultSongShadow
	return pres.TextElement{
		Name:   "TextElement",
		Bounds: pres.Rect{Size: pres.DefaultCanvas},
		Text:   text,
		Font: pres.Font{
			Name: style.FontName,
			Size: style.FontSize,
		},
		TextColor:          pres.White,
		Alignment:          pres.AlignCenter,
		VerticalAlignment:  pres.VAlignMiddle,
		LineHeightMultiple: pres.DefaultLineHeightMultiple,
		Shadow:             &shadow,
	}
}

// BuildSong assembles a presentation from stanzas with the default
// styling.
func BuildSong(name string, stanzas []Stanza) (*pres.Presentation, error) {
	return BuildSongStyled(name, stanzas, Style{})
}

// BuildSongStyled assembles a presentation from stanzas: one cue and one
// group per stanza, groups ordered into a single selected arrangement.
// Unlabeled stanzas are numbered Verse 1, Verse 2 and so on.
func BuildSongStyled(name string, stanzas []Stanza, style Style) (*pres.Presentation, error) {
	style = style.withDefaults()
	var (
		cues      []pres.Cue
		cueGroups []pres.CueGroup
		groupIDs  []uuid.UUID
	)
	verse := 0
	for _, st := range stanzas {
		label := st.Label
		if label == "" {
			verse++
			label = "Verse " + strconv.Itoa(verse)
		}
		cue := pres.Cue{
			ID:   uuid.New(),
			Name: label,
			Actions: []pres.Action{pres.SlideAction{
				ID: uuid.New(),
				Slide: pres.Slide{
					Size:     pres.DefaultCanvas,
					Elements: []pres.Element{songTextElement(strings.Join(st.Lines, "\n"), style)},
				},
			}},
		}
		group := pres.Group{ID: uuid.New(), Name: label, Color: GroupColor(label)}
		cues = append(cues, cue)
		cueGroups = append(cueGroups, pres.CueGroup{Group: group, CueIDs: []uuid.UUID{cue.ID}})
		groupIDs = append(groupIDs, group.ID)
	}

	return pres.NewBuilder(name).
		WithCategory("Song").
		WithCues(cues).
		WithCueGroups(cueGroups).
		WithArrangements([]pres.Arrangement{{Name: "Default", GroupIDs: groupIDs}}).
		Build()
}
