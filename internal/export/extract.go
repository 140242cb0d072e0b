package export

import (
	"strings"

	"setlist/internal/rtf"
	"setlist/internal/rv"
)

// ExtractText renders a document back into editor text: a [Label]
// line per cue, that cue's slide text beneath it, stanzas separated by
// blank lines. Labels come from the group a cue belongs to, falling
// back to the cue's own name.
func ExtractText(p *rv.Presentation) string {
	labels := cueLabels(p)

	var stanzas []string
	for _, cue := range p.Cues {
		text, ok := cueText(cue)
		if !ok {
			continue
		}
		var b strings.Builder
		if label := labels[cueKey(cue.UUID)]; label != "" {
			b.WriteString("[")
			b.WriteString(label)
			b.WriteString("]\n")
		} else if cue.Name != "" {
			b.WriteString("[")
			b.WriteString(cue.Name)
			b.WriteString("]\n")
		}
		b.WriteString(text)
		stanzas = append(stanzas, b.String())
	}
	return strings.Join(stanzas, "\n\n")
}

func cueKey(u *rv.UUID) string {
	if u == nil {
		return ""
	}
	return u.Value
}

// cueLabels maps each cue identifier to the name of the group that
// contains it.
func cueLabels(p *rv.Presentation) map[string]string {
	labels := make(map[string]string)
	for _, cg := range p.CueGroups {
		if cg.Group == nil || cg.Group.Name == "" {
			continue
		}
		for _, id := range cg.CueIdentifiers {
			if id != nil {
				labels[id.Value] = cg.Group.Name
			}
		}
	}
	return labels
}

// cueText decodes the first readable text element of a cue's slide.
func cueText(cue *rv.Cue) (string, bool) {
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
				return text, true
			}
		}
	}
	return "", false
}
