package pres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrMissingArrangement is returned by Build when a presentation has no
// arrangements. Every presentation needs at least one so the host
// application has a playback order.
var ErrMissingArrangement = errors.New("presentation has no arrangements")

// Builder assembles a Presentation step by step. Dangling references
// are dropped as groups and arrangements are supplied; Build assigns
// missing identifiers and chains cue completion so playback advances
// cue to cue.
type Builder struct {
	p        Presentation
	selected uuid.UUID
}

// NewBuilder starts a presentation with the given name and a fresh
// identifier.
func NewBuilder(name string) *Builder {
	return &Builder{p: Presentation{ID: uuid.New(), Name: name}}
}

// WithUUID overrides the generated presentation identifier.
func (b *Builder) WithUUID(id uuid.UUID) *Builder {
	b.p.ID = id
	return b
}

// WithCategory sets the library category (Song, Scripture, ...).
func (b *Builder) WithCategory(category string) *Builder {
	b.p.Category = category
	return b
}

// WithNotes attaches free-form operator notes.
func (b *Builder) WithNotes(notes string) *Builder {
	b.p.Notes = notes
	return b
}

// WithCCLI attaches licensing metadata.
func (b *Builder) WithCCLI(c CCLI) *Builder {
	b.p.CCLI = &c
	return b
}

// WithBibleReference attaches a scripture passage reference.
func (b *Builder) WithBibleReference(ref BibleReference) *Builder {
	b.p.BibleReference = &ref
	return b
}

// WithCues sets the cue list in playback order.
func (b *Builder) WithCues(cues []Cue) *Builder {
	b.p.Cues = cues
	return b
}

// WithCueGroups sets the group bands over the cue list. Cue references
// are filtered against the cues set so far, so supply cues first.
// Groups without an application group identifier get one assigned.
func (b *Builder) WithCueGroups(groups []CueGroup) *Builder {
	known := make(map[uuid.UUID]bool, len(b.p.Cues))
	for _, c := range b.p.Cues {
		if c.ID != uuid.Nil {
			known[c.ID] = true
		}
	}
	b.p.CueGroups = append([]CueGroup(nil), groups...)
	for i := range b.p.CueGroups {
		b.p.CueGroups[i].CueIDs = keepKnown(b.p.CueGroups[i].CueIDs, known)
		if b.p.CueGroups[i].Group.ApplicationGroupID == "" {
			b.p.CueGroups[i].Group.ApplicationGroupID = strings.ToUpper(uuid.NewString())
		}
	}
	return b
}

// WithArrangements sets the available arrangements. Group references
// are filtered against the cue groups set so far, so supply groups
// first.
func (b *Builder) WithArrangements(arrangements []Arrangement) *Builder {
	known := make(map[uuid.UUID]bool, len(b.p.CueGroups))
	for i := range b.p.CueGroups {
		if id := b.p.CueGroups[i].Group.ID; id != uuid.Nil {
			known[id] = true
		}
	}
	b.p.Arrangements = append([]Arrangement(nil), arrangements...)
	for i := range b.p.Arrangements {
		b.p.Arrangements[i].GroupIDs = keepKnown(b.p.Arrangements[i].GroupIDs, known)
	}
	return b
}

// WithSelectedArrangement selects an arrangement by identifier. If the
// identifier matches no arrangement at Build time the first arrangement
// is selected instead.
func (b *Builder) WithSelectedArrangement(id uuid.UUID) *Builder {
	b.selected = id
	return b
}

// Build validates and finalizes the presentation.
//
// Identifiers left zero are assigned. Cue completion is chained so each
// cue advances to the next and the last cue stops. Dangling references
// were already dropped, not failed, as the With methods ran: a document
// with a pruned reference is usable, a rejected one is not.
func (b *Builder) Build() (*Presentation, error) {
	if len(b.p.Arrangements) == 0 {
		return nil, fmt.Errorf("pres: build %q: %w", b.p.Name, ErrMissingArrangement)
	}

	p := b.p
	p.Cues = append([]Cue(nil), b.p.Cues...)
	p.CueGroups = append([]CueGroup(nil), b.p.CueGroups...)
	p.Arrangements = append([]Arrangement(nil), b.p.Arrangements...)

	assignIdentifiers(&p)
	chainCompletion(p.Cues)

	p.SelectedArrangement = b.selected
	if !arrangementExists(p.Arrangements, p.SelectedArrangement) {
		p.SelectedArrangement = p.Arrangements[0].ID
	}
	return &p, nil
}

func assignIdentifiers(p *Presentation) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Cues {
		if p.Cues[i].ID == uuid.Nil {
			p.Cues[i].ID = uuid.New()
		}
	}
	for i := range p.CueGroups {
		if p.CueGroups[i].Group.ID == uuid.Nil {
			p.CueGroups[i].Group.ID = uuid.New()
		}
	}
	for i := range p.Arrangements {
		if p.Arrangements[i].ID == uuid.Nil {
			p.Arrangements[i].ID = uuid.New()
		}
	}
}

// keepKnown drops identifiers that resolve to nothing. Order is
// preserved for the references that remain.
func keepKnown(ids []uuid.UUID, known map[uuid.UUID]bool) []uuid.UUID {
	kept := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if known[id] {
			kept = append(kept, id)
		}
	}
	return kept
}

// chainCompletion links each cue to its successor. The last cue gets no
// target so playback stops at the end.
func chainCompletion(cues []Cue) {
	for i := range cues {
		if i < len(cues)-1 {
			cues[i].Completion = Completion{
				Target:    TargetNext,
				TargetCue: cues[i+1].ID,
				Action:    CompleteOnFirst,
			}
		} else {
			cues[i].Completion = Completion{
				Target: TargetNone,
				Action: CompleteOnFirst,
			}
		}
	}
}

func arrangementExists(arrangements []Arrangement, id uuid.UUID) bool {
	if id == uuid.Nil {
		return false
	}
	for _, a := range arrangements {
		if a.ID == id {
			return true
		}
	}
	return false
}
