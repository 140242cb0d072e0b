package template

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"setlist/internal/rtf"
	"setlist/internal/rv"
)

func donorPresentation() *rv.Presentation {
	slide := &rv.Slide{
		UUID: rv.NewUUID("D0000000-0000-4000-8000-000000000001"),
		Size: &rv.Size{Width: 1920, Height: 1080},
		Elements: []*rv.SlideElement{{
			Element: &rv.Element{
				UUID: rv.NewUUID("D0000000-0000-4000-8000-000000000002"),
				Name: "TextElement",
				Text: &rv.Text{
					RtfData: rtf.EncodeWith("donor text", rtf.Options{FontName: "Georgia", FontSize: 96, Alignment: rtf.AlignCenter}),
					Attributes: &rv.TextAttributes{
						Font: &rv.Font{Name: "Georgia", Size: 96},
					},
					ParagraphStyle: &rv.Paragraph{Alignment: rv.AlignCenter},
				},
			},
		}},
	}
	return &rv.Presentation{
		UUID:     rv.NewUUID("D0000000-0000-4000-8000-000000000000"),
		Name:     "Donor",
		Category: "Scripture",
		Cues: []*rv.Cue{
			{
				UUID: rv.NewUUID("D0000000-0000-4000-8000-000000000003"),
				Actions: []*rv.Action{{
					Type: rv.ActionTypeClear,
					Data: &rv.ClearType{Layer: rv.ClearLayerMedia},
				}},
			},
			{
				UUID: rv.NewUUID("D0000000-0000-4000-8000-000000000004"),
				Actions: []*rv.Action{{
					Type: rv.ActionTypePresentationSlide,
					Data: &rv.SlideType{Presentation: &rv.PresentationSlide{BaseSlide: slide}},
				}},
			},
		},
	}
}

func TestExtractSlideSkipsNonSlideActions(t *testing.T) {
	slide, ok := ExtractSlide(donorPresentation())
	if !ok {
		t.Fatalf("no slide found")
	}
	if slide.UUID.Value != "D0000000-0000-4000-8000-000000000001" {
		t.Errorf("wrong slide: %v", slide.UUID)
	}
}

func TestExtractSlideEmptyDocument(t *testing.T) {
	if _, ok := ExtractSlide(&rv.Presentation{Name: "Empty"}); ok {
		t.Errorf("found a slide in an empty document")
	}
}

func TestCloneSlideWithText(t *testing.T) {
	donor, _ := ExtractSlide(donorPresentation())
	donorRtf := string(donor.Elements[0].Element.Text.RtfData)

	clone, err := CloneSlideWithText(donor, "new content")
	if err != nil {
		t.Fatalf("clone: %v", err)
	}

	if clone.UUID.Value == donor.UUID.Value {
		t.Errorf("clone kept the donor slide identifier")
	}
	got, ok := rtf.Decode(clone.Elements[0].Element.Text.RtfData)
	if !ok || got != "new content" {
		t.Errorf("clone text = %q, %v", got, ok)
	}
	if string(donor.Elements[0].Element.Text.RtfData) != donorRtf {
		t.Errorf("donor rtf was modified")
	}
	// Donor styling carries into the re-encoded payload. 96pt is 192
	// half points.
	out := string(clone.Elements[0].Element.Text.RtfData)
	if !strings.Contains(out, `\fs192`) || !strings.Contains(out, "Georgia") || !strings.Contains(out, `\qc`) {
		t.Errorf("donor styling lost: %q", out)
	}
}

func TestCloneIsolation(t *testing.T) {
	donor, _ := ExtractSlide(donorPresentation())
	clone, err := CloneSlideWithText(donor, "x")
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	clone.Elements[0].Element.Name = "Mutated"
	clone.Size.Width = 1
	if donor.Elements[0].Element.Name != "TextElement" {
		t.Errorf("mutating clone element changed the donor")
	}
	if donor.Size.Width != 1920 {
		t.Errorf("mutating clone size changed the donor")
	}
}

func TestBuildPresentation(t *testing.T) {
	donor := donorPresentation()
	lines := []string{"Line one", "", "   ", "Line two", "Line three"}
	p, err := BuildPresentation(donor, "Built", lines)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if p.Name != "Built" {
		t.Errorf("Name = %q", p.Name)
	}
	if len(p.Cues) != 3 {
		t.Fatalf("cues = %d, want 3 (blank lines skipped)", len(p.Cues))
	}
	if len(p.CueGroups) != 1 || p.CueGroups[0].Group.Name != "Default" {
		t.Fatalf("cue groups = %+v, want single Default group", p.CueGroups)
	}
	if len(p.CueGroups[0].CueIdentifiers) != 3 {
		t.Errorf("group cue identifiers = %d, want 3", len(p.CueGroups[0].CueIdentifiers))
	}
	if p.CueGroups[0].Group.ApplicationGroupIdentifier == nil {
		t.Errorf("application group identifier not assigned")
	}
	if len(p.Arrangements) != 1 || p.Arrangements[0].Name != "Default" {
		t.Fatalf("arrangements = %+v, want single Default", p.Arrangements)
	}
	if p.SelectedArrangement == nil || p.SelectedArrangement.Value != p.Arrangements[0].UUID.Value {
		t.Errorf("arrangement not selected")
	}

	for i, cue := range p.Cues {
		if i < len(p.Cues)-1 {
			if cue.CompletionTargetType != rv.CompletionTargetNext ||
				cue.CompletionTargetUUID.Value != p.Cues[i+1].UUID.Value {
				t.Errorf("cue %d completion not chained", i)
			}
		} else if cue.CompletionTargetType != rv.CompletionTargetNone {
			t.Errorf("last cue should have no completion target")
		}
	}

	slide, ok := ExtractSlide(p)
	if !ok {
		t.Fatalf("built document has no slides")
	}
	got, _ := rtf.Decode(slide.Elements[0].Element.Text.RtfData)
	if got != "Line one" {
		t.Errorf("first slide text = %q", got)
	}
}

func TestBuildPresentationDonorWithoutSlides(t *testing.T) {
	if _, err := BuildPresentation(&rv.Presentation{Name: "Empty"}, "X", []string{"a"}); err == nil {
		t.Errorf("expected error for donor without slides")
	}
}

func TestCacheSearchOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	writeDonor := func(dir, name string) {
		donor := donorPresentation()
		donor.Name = name
		if err := os.WriteFile(filepath.Join(dir, RoleScripture.Filename()), rv.Marshal(donor), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	writeDonor(first, "First")
	writeDonor(second, "Second")

	c := NewCache(first, second)
	p, err := c.Load(RoleScripture)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Name != "First" {
		t.Errorf("loaded %q, want donor from first search dir", p.Name)
	}
}

func TestCacheLoadMemoizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, RoleSong.Filename())
	if err := os.WriteFile(path, rv.Marshal(donorPresentation()), 0o644); err != nil {
		t.Fatal(err)
	}
	c := NewCache(dir)
	if _, err := c.Load(RoleSong); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Load(RoleSong); err != nil {
		t.Errorf("second load should come from cache: %v", err)
	}
}

func TestCacheMissing(t *testing.T) {
	c := NewCache(t.TempDir())
	if _, err := c.Load(RoleInfo); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCacheLoadBytesTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	onDisk := donorPresentation()
	onDisk.Name = "OnDisk"
	if err := os.WriteFile(filepath.Join(dir, RoleScripture.Filename()), rv.Marshal(onDisk), 0o644); err != nil {
		t.Fatal(err)
	}

	embedded := donorPresentation()
	embedded.Name = "Embedded"

	c := NewCache(dir)
	if err := c.LoadBytes(RoleScripture, rv.Marshal(embedded)); err != nil {
		t.Fatalf("load bytes: %v", err)
	}
	p, err := c.Load(RoleScripture)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Name != "Embedded" {
		t.Errorf("loaded %q, want embedded donor", p.Name)
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"scripture", "Song", "INFO"} {
		if _, err := ParseRole(s); err != nil {
			t.Errorf("ParseRole(%q): %v", s, err)
		}
	}
	if _, err := ParseRole("sermon"); err == nil {
		t.Errorf("ParseRole should reject unknown roles")
	}
}
