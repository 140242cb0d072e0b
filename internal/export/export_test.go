package export

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"setlist/internal/adapter"
	"setlist/internal/pres"
	"setlist/internal/rv"
)

const songText = `[Verse 1]
Amazing grace how sweet the sound
That saved a wretch like me

[Chorus]
My chains are gone
I've been set free

No label stanza here`

func TestParseStanzas(t *testing.T) {
	got := ParseStanzas(songText)
	want := []Stanza{
		{Label: "Verse 1", Lines: []string{"Amazing grace how sweet the sound", "That saved a wretch like me"}},
		{Label: "Chorus", Lines: []string{"My chains are gone", "I've been set free"}},
		{Lines: []string{"No label stanza here"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseStanzas:\n got %+v\nwant %+v", got, want)
	}
}

func TestParseStanzasEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"only blanks", "\n\n\n", 0},
		{"label without lines", "[Tag]", 1},
		{"consecutive labels", "[Verse 1]\n[Verse 2]\nline", 2},
		{"windows line endings", "[Verse 1]\r\nline one\r\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseStanzas(tt.text); len(got) != tt.want {
				t.Errorf("stanzas = %d (%+v), want %d", len(got), got, tt.want)
			}
		})
	}
}

func TestGroupColor(t *testing.T) {
	tests := []struct {
		label string
		want  pres.Color
	}{
		{"Verse 1", verseColor},
		{"Chorus", chorusColor},
		{"Bridge", bridgeColor},
		{"Tag", tagColor},
		{"Ending", tagColor},
		{"Intro", otherColor},
	}
	for _, tt := range tests {
		if got := GroupColor(tt.label); got != tt.want {
			t.Errorf("GroupColor(%q) = %+v, want %+v", tt.label, got, tt.want)
		}
	}
}

func TestBuildSong(t *testing.T) {
	p, err := BuildSong("Amazing Grace", ParseStanzas(songText))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if len(p.Cues) != 3 {
		t.Fatalf("cues = %d, want 3", len(p.Cues))
	}
	if p.Cues[2].Name != "Verse 1" {
		t.Errorf("unlabeled stanza named %q, want Verse 1", p.Cues[2].Name)
	}
	if len(p.CueGroups) != 3 {
		t.Fatalf("groups = %d, want 3", len(p.CueGroups))
	}
	if p.CueGroups[1].Group.Color != chorusColor {
		t.Errorf("chorus group color = %+v", p.CueGroups[1].Group.Color)
	}
	if len(p.Arrangements) != 1 || len(p.Arrangements[0].GroupIDs) != 3 {
		t.Fatalf("arrangements = %+v", p.Arrangements)
	}
	if p.SelectedArrangement != p.Arrangements[0].ID {
		t.Errorf("arrangement not selected")
	}

	slide := p.Cues[0].Actions[0].(pres.SlideAction).Slide
	el := slide.Elements[0].(pres.TextElement)
	if el.Font.Name != "Helvetica" || el.Font.Size != 72 {
		t.Errorf("font = %+v, want Helvetica 72", el.Font)
	}
	if el.TextColor != pres.White || el.Alignment != pres.AlignCenter {
		t.Errorf("styling = color %+v align %v", el.TextColor, el.Alignment)
	}
	if el.Shadow == nil || el.Shadow.Opacity != 0.75 {
		t.Errorf("default shadow missing or unstyled: %+v", el.Shadow)
	}
	if el.Text != "Amazing grace how sweet the sound\nThat saved a wretch like me" {
		t.Errorf("slide text = %q", el.Text)
	}
}

func TestBuildSongStyled(t *testing.T) {
	p, err := BuildSongStyled("Hymn", ParseStanzas("line one"), Style{FontName: "Georgia", FontSize: 96})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	el := p.Cues[0].Actions[0].(pres.SlideAction).Slide.Elements[0].(pres.TextElement)
	if el.Font.Name != "Georgia" || el.Font.Size != 96 {
		t.Errorf("font = %+v, want Georgia 96", el.Font)
	}

	p, err = BuildSongStyled("Hymn", ParseStanzas("line one"), Style{})
	if err != nil {
		t.Fatalf("build with zero style: %v", err)
	}
	el = p.Cues[0].Actions[0].(pres.SlideAction).Slide.Elements[0].(pres.TextElement)
	if el.Font.Name != "Helvetica" || el.Font.Size != 72 {
		t.Errorf("zero style font = %+v, want defaults", el.Font)
	}
}

func TestFileRoundTripAndExtract(t *testing.T) {
	p, err := BuildSong("Amazing Grace", ParseStanzas(songText))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	wire := adapter.ToWire(p)

	dir := t.TempDir()
	path := filepath.Join(dir, "Amazing Grace.pro")
	if err := WritePresentationFile(path, wire); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ReadPresentationFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Name != "Amazing Grace" {
		t.Errorf("Name = %q", got.Name)
	}

	text := ExtractText(got)
	stanzas := ParseStanzas(text)
	if len(stanzas) != 3 {
		t.Fatalf("extracted stanzas = %d (%q)", len(stanzas), text)
	}
	if stanzas[0].Label != "Verse 1" || stanzas[1].Label != "Chorus" {
		t.Errorf("labels = %q, %q", stanzas[0].Label, stanzas[1].Label)
	}
	if stanzas[0].Lines[0] != "Amazing grace how sweet the sound" {
		t.Errorf("first line = %q", stanzas[0].Lines[0])
	}
}

func TestReadPresentationFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadPresentationFile(filepath.Join(dir, "missing.pro"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.pro")
	if err := os.WriteFile(bad, []byte{0x80, 0x80, 0x80}, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = ReadPresentationFile(bad)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if errors.Is(err, os.ErrNotExist) {
		t.Errorf("decode failure should not look like a missing file: %v", err)
	}
}

func TestWritePresentationFileReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pro")

	if err := WritePresentationFile(path, &rv.Presentation{Name: "One"}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WritePresentationFile(path, &rv.Presentation{Name: "Two"}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	got, err := ReadPresentationFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Name != "Two" {
		t.Errorf("Name = %q, want Two", got.Name)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "doc.pro" && e.Name() != lockName {
			t.Errorf("leftover file %q in library dir", e.Name())
		}
	}
}
