// Package template turns donor documents into styled presentations.
//
// A donor is an ordinary document whose first slide carries the styling
// an operator wants reused. The engine extracts that slide, clones it
// once per line of new content, and assembles the clones into a fresh
// presentation. Donors are found by role under reserved filenames or
// handed in directly as bytes from a playlist archive.
package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"setlist/internal/rtf"
	"setlist/internal/rv"
)

// Role selects which donor a presentation is styled after.
type Role int

const (
	RoleScripture Role = iota
	RoleSong
	RoleInfo
)

// Filename is the reserved donor filename for the role.
func (r Role) Filename() string {
	switch r {
	case RoleSong:
		return "__template_song__.pro"
	case RoleInfo:
		return "__template_info__.pro"
	default:
		return "__template_scripture__.pro"
	}
}

func (r Role) String() string {
	switch r {
	case RoleSong:
		return "song"
	case RoleInfo:
		return "info"
	default:
		return "scripture"
	}
}

// ParseRole maps a user-facing role name.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(s) {
	case "scripture":
		return RoleScripture, nil
	case "song":
		return RoleSong, nil
	case "info":
		return RoleInfo, nil
	}
	return 0, fmt.Errorf("template: unknown role %q", s)
}

// ErrNotFound is returned when no donor exists for a role in any
// search directory.
var ErrNotFound = errors.New("template not found")

// Cache locates and decodes donor documents. One cache serves one
// build session; it is not safe for concurrent use.
type Cache struct {
	searchDirs []string
	loaded     map[Role]*rv.Presentation
}

// NewCache builds a cache over the given search directories, earliest
// directory winning.
func NewCache(searchDirs ...string) *Cache {
	return &Cache{
		searchDirs: searchDirs,
		loaded:     make(map[Role]*rv.Presentation),
	}
}

// Locate returns the path of the donor file for role, searching
// directories in order.
func (c *Cache) Locate(role Role) (string, error) {
	for _, dir := range c.searchDirs {
		path := filepath.Join(dir, role.Filename())
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("template: locate %s donor: %w", role, ErrNotFound)
}

// Load returns the decoded donor for role, reading it at most once.
func (c *Cache) Load(role Role) (*rv.Presentation, error) {
	if p, ok := c.loaded[role]; ok {
		return p, nil
	}
	path, err := c.Locate(role)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("template: read donor %s: %w", path, err)
	}
	p, err := rv.UnmarshalPresentation(data)
	if err != nil {
		return nil, fmt.Errorf("template: decode donor %s: %w", path, err)
	}
	c.loaded[role] = p
	return p, nil
}

// LoadBytes registers an in-memory donor for role, as extracted from a
// playlist archive. It takes precedence over on-disk donors.
func (c *Cache) LoadBytes(role Role, data []byte) error {
	p, err := rv.UnmarshalPresentation(data)
	if err != nil {
		return fmt.Errorf("template: decode embedded %s donor: %w", role, err)
	}
	c.loaded[role] = p
	return nil
}

// ExtractSlide returns the first slide of a document, walking cues and
// their actions depth first.
func ExtractSlide(p *rv.Presentation) (*rv.Slide, bool) {
	for _, cue := range p.Cues {
		for _, action := range cue.Actions {
			st, ok := action.Data.(*rv.SlideType)
			if !ok || st.Presentation == nil || st.Presentation.BaseSlide == nil {
				continue
			}
			return st.Presentation.BaseSlide, true
		}
	}
	return nil, false
}

// CloneSlideWithText deep-copies a slide, replaces the content of every
// text element with text, and assigns the clone a fresh identifier so
// it never collides with its donor. The donor is left untouched.
func CloneSlideWithText(donor *rv.Slide, text string) (*rv.Slide, error) {
	clone := new(rv.Slide)
	if err := rv.Unmarshal(rv.Marshal(donor), clone); err != nil {
		return nil, fmt.Errorf("template: clone slide: %w", err)
	}
	clone.UUID = rv.NewUUID(strings.ToUpper(uuid.NewString()))
	for _, se := range clone.Elements {
		if se.Element == nil || se.Element.Text == nil {
			continue
		}
		se.Element.Text.RtfData = rtf.EncodeWith(text, textOptions(se.Element.Text))
	}
	return clone, nil
}

// textOptions derives encode styling from the donor element so clones
// keep the donor's look.
func textOptions(t *rv.Text) rtf.Options {
	opts := rtf.Options{}
	if t.Attributes != nil && t.Attributes.Font != nil {
		opts.FontName = t.Attributes.Font.Name
		opts.FontSize = t.Attributes.Font.Size
	}
	if t.ParagraphStyle != nil {
		switch t.ParagraphStyle.Alignment {
		case rv.AlignCenter:
			opts.Alignment = rtf.AlignCenter
		case rv.AlignRight:
			opts.Alignment = rtf.AlignRight
		case rv.AlignJustified:
			opts.Alignment = rtf.AlignJustified
		}
	}
	return opts
}

// BuildPresentation assembles a new document named name from a donor's
// styling, one cue per non-blank line. The result has a single
// "Default" group and arrangement, selected.
func BuildPresentation(donor *rv.Presentation, name string, lines []string) (*rv.Presentation, error) {
	slide, ok := ExtractSlide(donor)
	if !ok {
		return nil, fmt.Errorf("template: donor %q has no slides", donor.Name)
	}

	out := &rv.Presentation{
		ApplicationInfo: donor.ApplicationInfo,
		UUID:            freshUUID(),
		Name:            name,
		Category:        donor.Category,
		Background:      donor.Background,
	}

	groupID := freshUUID()
	group := &rv.CueGroup{
		Group: &rv.Group{
			UUID:                       groupID,
			Name:                       "Default",
			Color:                      &rv.Color{Red: 0.5, Green: 0.5, Blue: 0.5, Alpha: 1},
			ApplicationGroupIdentifier: freshUUID(),
		},
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		clone, err := CloneSlideWithText(slide, line)
		if err != nil {
			return nil, err
		}
		cue := &rv.Cue{
			UUID:      freshUUID(),
			IsEnabled: true,
			Actions: []*rv.Action{{
				UUID:      freshUUID(),
				IsEnabled: true,
				Type:      rv.ActionTypePresentationSlide,
				Data: &rv.SlideType{Presentation: &rv.PresentationSlide{
					BaseSlide: clone,
				}},
			}},
		}
		out.Cues = append(out.Cues, cue)
		group.CueIdentifiers = append(group.CueIdentifiers, cue.UUID)
	}

	chainCompletion(out.Cues)

	arrangement := &rv.Arrangement{
		UUID:             freshUUID(),
		Name:             "Default",
		GroupIdentifiers: []*rv.UUID{groupID},
	}
	out.CueGroups = []*rv.CueGroup{group}
	out.Arrangements = []*rv.Arrangement{arrangement}
	out.SelectedArrangement = arrangement.UUID
	return out, nil
}

func chainCompletion(cues []*rv.Cue) {
	for i, cue := range cues {
		cue.CompletionActionType = rv.CompletionActionFirst
		if i < len(cues)-1 {
			cue.CompletionTargetType = rv.CompletionTargetNext
			cue.CompletionTargetUUID = cues[i+1].UUID
		} else {
			cue.CompletionTargetType = rv.CompletionTargetNone
			cue.CompletionTargetUUID = nil
		}
	}
}

func freshUUID() *rv.UUID {
	return rv.NewUUID(strings.ToUpper(uuid.NewString()))
}
