package adapter

import (
	"github.com/google/uuid"

	"setlist/internal/pres"
	"setlist/internal/rv"
)

// uuidFromWire parses a wire identifier. Missing or malformed
// identifiers lift to the nil UUID rather than failing; documents in
// the wild carry both.
func uuidFromWire(u *rv.UUID) uuid.UUID {
	if u == nil {
		return uuid.Nil
	}
	id, err := uuid.Parse(u.Value)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// ColorFromWire lifts a wire color. Nil lifts to opaque white, the
// model default.
func ColorFromWire(c *rv.Color) pres.Color {
	if c == nil {
		return pres.White
	}
	return pres.Color{
		R: float64(c.Red),
		G: float64(c.Green),
		B: float64(c.Blue),
		A: float64(c.Alpha),
	}
}

// PointFromWire lifts a wire point.
func PointFromWire(p *rv.Point) pres.Point {
	if p == nil {
		return pres.Point{}
	}
	return pres.Point{X: p.X, Y: p.Y}
}

// SizeFromWire lifts a wire size.
func SizeFromWire(s *rv.Size) pres.Size {
	if s == nil {
		return pres.Size{}
	}
	return pres.Size{Width: s.Width, Height: s.Height}
}

// RectFromWire lifts a wire rect.
func RectFromWire(r *rv.Rect) pres.Rect {
	if r == nil {
		return pres.Rect{}
	}
	return pres.Rect{Origin: PointFromWire(r.Origin), Size: SizeFromWire(r.Size)}
}

// CCLIFromWire lifts licensing metadata.
func CCLIFromWire(c *rv.CCLI) *pres.CCLI {
	if c == nil {
		return nil
	}
	return &pres.CCLI{
		Author:        c.Author,
		ArtistCredits: c.ArtistCredits,
		SongTitle:     c.SongTitle,
		Publisher:     c.Publisher,
		CopyrightYear: int(c.CopyrightYear),
		SongNumber:    int(c.SongNumber),
		Display:       c.Display,
	}
}

// BibleReferenceFromWire lifts a passage reference.
func BibleReferenceFromWire(r *rv.BibleReference) *pres.BibleReference {
	if r == nil {
		return nil
	}
	return &pres.BibleReference{
		BookIndex:               int(r.BookIndex),
		BookName:                r.BookName,
		ChapterStart:            int(r.ChapterStart),
		ChapterEnd:              int(r.ChapterEnd),
		VerseStart:              int(r.VerseStart),
		VerseEnd:                int(r.VerseEnd),
		TranslationName:         r.TranslationName,
		TranslationAbbreviation: r.TranslationDisplayAbbreviation,
	}
}

// ArrangementFromWire lifts an arrangement. Malformed group
// identifiers are dropped.
func ArrangementFromWire(a *rv.Arrangement) pres.Arrangement {
	out := pres.Arrangement{
		ID:   uuidFromWire(a.UUID),
		Name: a.Name,
	}
	for _, id := range a.GroupIdentifiers {
		if parsed := uuidFromWire(id); parsed != uuid.Nil {
			out.GroupIDs = append(out.GroupIDs, parsed)
		}
	}
	return out
}

// GroupFromWire lifts a cue group band.
func GroupFromWire(g *rv.CueGroup) pres.CueGroup {
	out := pres.CueGroup{}
	if g.Group != nil {
		out.Group = pres.Group{
			ID:     uuidFromWire(g.Group.UUID),
			Name:   g.Group.Name,
			Color:  ColorFromWire(g.Group.Color),
			HotKey: hotKeyFromWire(g.Group.HotKey),
		}
		if id := g.Group.ApplicationGroupIdentifier; id != nil {
			out.Group.ApplicationGroupID = id.Value
		}
	}
	for _, id := range g.CueIdentifiers {
		if parsed := uuidFromWire(id); parsed != uuid.Nil {
			out.CueIDs = append(out.CueIDs, parsed)
		}
	}
	return out
}

func hotKeyFromWire(h *rv.HotKey) *pres.HotKey {
	if h == nil {
		return nil
	}
	return &pres.HotKey{Code: int(h.Code)}
}

// TimelineFromWire lifts a playback timeline. Timecode-triggered cues
// carry no time offset and lift with zero seconds.
func TimelineFromWire(t *rv.Timeline) *pres.Timeline {
	if t == nil {
		return nil
	}
	out := &pres.Timeline{Duration: t.Duration, Loop: t.Loop}
	for _, c := range t.Cues {
		cue := pres.TimelineCue{
			ID:       uuidFromWire(c.UUID),
			ActionID: uuidFromWire(c.ActionUUID),
		}
		if trigger, ok := c.Trigger.(*rv.TimelineTimeTrigger); ok {
			cue.Seconds = trigger.Seconds
		}
		out.Cues = append(out.Cues, cue)
	}
	return out
}
