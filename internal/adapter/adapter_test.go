package adapter

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"setlist/internal/pres"
	"setlist/internal/rtf"
	"setlist/internal/rv"
)

func init() {
	now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
}

func buildSong(t *testing.T) *pres.Presentation {
	t.Helper()
	cues := []pres.Cue{
		{ID: uuid.New(), Name: "Verse 1", Actions: []pres.Action{pres.SlideAction{
			ID: uuid.New(),
			Slide: pres.Slide{Elements: []pres.Element{
				pres.DefaultTextElement("Amazing grace how sweet the sound"),
			}},
		}}},
		{ID: uuid.New(), Name: "Verse 2", Actions: []pres.Action{pres.SlideAction{
			ID: uuid.New(),
			Slide: pres.Slide{Elements: []pres.Element{
				pres.DefaultTextElement("That saved a wretch like me"),
			}},
		}}},
	}
	group := pres.Group{ID: uuid.New(), Name: "Verse 1", Color: pres.Color{B: 1, A: 1}}
	p, err := pres.NewBuilder("Amazing Grace").
		WithCategory("Song").
		WithNotes("Key of G").
		WithCues(cues).
		WithCueGroups([]pres.CueGroup{{Group: group, CueIDs: []uuid.UUID{cues[0].ID, cues[1].ID}}}).
		WithArrangements([]pres.Arrangement{{Name: "Default", GroupIDs: []uuid.UUID{group.ID}}}).
		WithCCLI(pres.CCLI{SongTitle: "Amazing Grace", Author: "John Newton", SongNumber: 22025}).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return p
}

func TestToWireStampsApplicationInfo(t *testing.T) {
	w := ToWire(buildSong(t))
	ai := w.ApplicationInfo
	if ai == nil {
		t.Fatalf("ApplicationInfo missing")
	}
	if ai.Platform != rv.PlatformMacOS || ai.PlatformVersion.MajorVersion != 14 {
		t.Errorf("platform = %v %v, want macOS 14", ai.Platform, ai.PlatformVersion)
	}
	if ai.Application != rv.ApplicationProPresenter {
		t.Errorf("Application = %v", ai.Application)
	}
	if ai.ApplicationVersion.MajorVersion != 7 || ai.ApplicationVersion.MinorVersion != 14 {
		t.Errorf("ApplicationVersion = %+v, want 7.14", ai.ApplicationVersion)
	}
}

func TestToWireCompletionChain(t *testing.T) {
	p := buildSong(t)
	w := ToWire(p)
	if len(w.Cues) != 2 {
		t.Fatalf("cues = %d, want 2", len(w.Cues))
	}
	first := w.Cues[0]
	if first.CompletionTargetType != rv.CompletionTargetNext {
		t.Errorf("first cue target = %v, want Next", first.CompletionTargetType)
	}
	wantTarget := strings.ToUpper(p.Cues[1].ID.String())
	if first.CompletionTargetUUID == nil || first.CompletionTargetUUID.Value != wantTarget {
		t.Errorf("first cue target UUID = %v, want %s", first.CompletionTargetUUID, wantTarget)
	}
	if first.CompletionActionType != rv.CompletionActionFirst {
		t.Errorf("first cue action = %v, want First", first.CompletionActionType)
	}
	last := w.Cues[1]
	if last.CompletionTargetType != rv.CompletionTargetNone {
		t.Errorf("last cue target = %v, want None", last.CompletionTargetType)
	}
	if last.CompletionTargetUUID != nil {
		t.Errorf("last cue target UUID = %v, want nil", last.CompletionTargetUUID)
	}
}

func slideOf(t *testing.T, c *rv.Cue) *rv.Slide {
	t.Helper()
	if len(c.Actions) == 0 {
		t.Fatalf("cue has no actions")
	}
	st, ok := c.Actions[0].Data.(*rv.SlideType)
	if !ok {
		t.Fatalf("action data = %T, want *rv.SlideType", c.Actions[0].Data)
	}
	return st.Presentation.BaseSlide
}

func TestToWireElementScaffolding(t *testing.T) {
	w := ToWire(buildSong(t))
	slide := slideOf(t, w.Cues[0])

	if len(slide.Elements) != 1 {
		t.Fatalf("elements = %d, want 1", len(slide.Elements))
	}
	el := slide.Elements[0].Element

	path := el.Path
	if path == nil || !path.Closed || len(path.Points) != 4 {
		t.Fatalf("path = %+v, want closed 4-point rectangle", path)
	}
	want := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i, p := range path.Points {
		if p.Point.X != want[i][0] || p.Point.Y != want[i][1] {
			t.Errorf("path point %d = (%v,%v), want (%v,%v)", i, p.Point.X, p.Point.Y, want[i][0], want[i][1])
		}
	}
	if path.Shape == nil || path.Shape.Type != rv.PathShapeRectangle {
		t.Errorf("path shape = %+v, want rectangle", path.Shape)
	}

	if el.Fill == nil || el.Fill.Enabled {
		t.Errorf("text element fill should be present but disabled: %+v", el.Fill)
	}
	if el.Stroke == nil || el.Stroke.Enabled {
		t.Errorf("text element stroke should be present but disabled: %+v", el.Stroke)
	}
	if _, ok := el.TextLineMask.(*rv.ElementLineFillMask); !ok {
		t.Errorf("TextLineMask = %T, want full-width line fill mask", el.TextLineMask)
	}
	if el.Opacity != 1 {
		t.Errorf("Opacity = %v, want 1", el.Opacity)
	}

	if len(slide.ElementBuildOrder) != 1 || slide.ElementBuildOrder[0].Value != el.UUID.Value {
		t.Errorf("build order = %v, want the element identifier", slide.ElementBuildOrder)
	}
}

func TestToWireAssignsFreshElementIdentifiers(t *testing.T) {
	p := buildSong(t)
	a := slideOf(t, ToWire(p).Cues[0]).Elements[0].Element.UUID.Value
	b := slideOf(t, ToWire(p).Cues[0]).Elements[0].Element.UUID.Value
	if a == b {
		t.Errorf("two lowerings produced the same element identifier %q", a)
	}
}

func TestToWireTextPayload(t *testing.T) {
	w := ToWire(buildSong(t))
	el := slideOf(t, w.Cues[0]).Elements[0].Element
	if el.Text == nil {
		t.Fatalf("text payload missing")
	}
	got, ok := rtf.Decode(el.Text.RtfData)
	if !ok {
		t.Fatalf("rtf payload not decodable")
	}
	if got != "Amazing grace how sweet the sound" {
		t.Errorf("rtf text = %q", got)
	}
	fill, ok := el.Text.Attributes.Fill.(*rv.TextSolidFill)
	if !ok {
		t.Fatalf("text fill = %T, want solid", el.Text.Attributes.Fill)
	}
	if fill.Color.Red != 1 || fill.Color.Green != 1 || fill.Color.Blue != 1 || fill.Color.Alpha != 1 {
		t.Errorf("text color = %+v, want opaque white", fill.Color)
	}
	if el.Text.ParagraphStyle.LineHeightMultiple != 1 {
		t.Errorf("LineHeightMultiple = %v, want 1", el.Text.ParagraphStyle.LineHeightMultiple)
	}
}

func TestToWireSurvivesWireRoundTrip(t *testing.T) {
	p := buildSong(t)
	data := rv.Marshal(ToWire(p))
	got, err := rv.UnmarshalPresentation(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Name != "Amazing Grace" || got.Category != "Song" {
		t.Errorf("metadata lost: name %q category %q", got.Name, got.Category)
	}
	if got.Notes != "Key of G" {
		t.Errorf("Notes = %q, want Key of G", got.Notes)
	}
	ccli := CCLIFromWire(got.CCLI)
	if ccli == nil || ccli.SongNumber != 22025 || ccli.Author != "John Newton" {
		t.Errorf("CCLI lift = %+v", ccli)
	}
	arr := ArrangementFromWire(got.Arrangements[0])
	if arr.Name != "Default" || len(arr.GroupIDs) != 1 {
		t.Errorf("arrangement lift = %+v", arr)
	}
	if arr.GroupIDs[0] != GroupFromWire(got.CueGroups[0]).Group.ID {
		t.Errorf("arrangement group reference does not match lifted group")
	}
}

func TestToWireGroupCarriesApplicationGroup(t *testing.T) {
	p := buildSong(t)
	data := rv.Marshal(ToWire(p))
	got, err := rv.UnmarshalPresentation(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	g := got.CueGroups[0].Group
	if g.ApplicationGroupIdentifier == nil || g.ApplicationGroupIdentifier.Value == "" {
		t.Fatalf("application group identifier missing from wire group")
	}
	if g.ApplicationGroupName != "Verse 1" {
		t.Errorf("ApplicationGroupName = %q, want the group name", g.ApplicationGroupName)
	}
	if lifted := GroupFromWire(got.CueGroups[0]); lifted.Group.ApplicationGroupID != g.ApplicationGroupIdentifier.Value {
		t.Errorf("lifted ApplicationGroupID = %q, want %q",
			lifted.Group.ApplicationGroupID, g.ApplicationGroupIdentifier.Value)
	}
}

func TestCueEnabledAndHotKeyLowering(t *testing.T) {
	c := pres.Cue{ID: uuid.New(), Name: "Bridge", Disabled: true, HotKey: &pres.HotKey{Code: 18}}
	w := cueToWire(&c)
	if w.IsEnabled {
		t.Errorf("disabled cue lowered as enabled")
	}
	if w.HotKey == nil || w.HotKey.Code != 18 {
		t.Errorf("HotKey = %+v, want code 18", w.HotKey)
	}

	w = cueToWire(&pres.Cue{ID: uuid.New(), Name: "Verse 1"})
	if !w.IsEnabled {
		t.Errorf("default cue lowered as disabled")
	}
	if w.HotKey != nil {
		t.Errorf("HotKey = %+v, want none", w.HotKey)
	}
}

func TestTimelineFromWire(t *testing.T) {
	if got := TimelineFromWire(nil); got != nil {
		t.Fatalf("TimelineFromWire(nil) = %+v, want nil", got)
	}

	cueID := strings.ToUpper(uuid.NewString())
	actionID := strings.ToUpper(uuid.NewString())
	tl := TimelineFromWire(&rv.Timeline{
		Duration: 180,
		Loop:     true,
		Cues: []*rv.TimelineCue{
			{
				UUID:       rv.NewUUID(cueID),
				Trigger:    &rv.TimelineTimeTrigger{Seconds: 12.5},
				ActionUUID: rv.NewUUID(actionID),
			},
			{Trigger: &rv.TimelineTimecodeTrigger{Time: &rv.TimecodeTime{}}},
		},
	})
	if tl.Duration != 180 || !tl.Loop {
		t.Errorf("timeline = %+v, want duration 180 looped", tl)
	}
	if len(tl.Cues) != 2 {
		t.Fatalf("cues = %d, want 2", len(tl.Cues))
	}
	first := tl.Cues[0]
	if first.Seconds != 12.5 {
		t.Errorf("Seconds = %v, want 12.5", first.Seconds)
	}
	if first.ID.String() != strings.ToLower(cueID) || first.ActionID.String() != strings.ToLower(actionID) {
		t.Errorf("identifiers = %v %v", first.ID, first.ActionID)
	}
	if tl.Cues[1].Seconds != 0 {
		t.Errorf("timecode cue Seconds = %v, want 0", tl.Cues[1].Seconds)
	}
}

func TestAlignmentTables(t *testing.T) {
	tests := []struct {
		in   pres.Alignment
		want rv.TextAlignment
	}{
		{pres.AlignLeft, rv.AlignLeft},
		{pres.AlignCenter, rv.AlignCenter},
		{pres.AlignRight, rv.AlignRight},
		{pres.AlignJustified, rv.AlignJustified},
	}
	for _, tt := range tests {
		if got := alignmentToWire(tt.in); got != tt.want {
			t.Errorf("alignmentToWire(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorFromWireDefaults(t *testing.T) {
	if got := ColorFromWire(nil); got != pres.White {
		t.Errorf("ColorFromWire(nil) = %+v, want white", got)
	}
	c := ColorFromWire(&rv.Color{Red: 1, Alpha: 0.5})
	if c.R != 1 || c.A != 0.5 {
		t.Errorf("ColorFromWire = %+v", c)
	}
}

func TestMediaSourceLowering(t *testing.T) {
	tests := []struct {
		name string
		src  pres.MediaSource
		kind string
	}{
		{"image file", pres.FileSource{Path: "/media/slide.png"}, "image"},
		{"video file", pres.FileSource{Path: "/media/loop.mp4"}, "video"},
		{"live video", pres.LiveVideoSource{DeviceName: "Cam 1"}, "live"},
		{"web", pres.URLSource{Address: "https://example.com"}, "web"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mediaToWire(tt.src, false, 1)
			switch tt.kind {
			case "image":
				if _, ok := m.Type.(*rv.MediaImage); !ok {
					t.Errorf("Type = %T, want image", m.Type)
				}
			case "video":
				if _, ok := m.Type.(*rv.MediaVideo); !ok {
					t.Errorf("Type = %T, want video", m.Type)
				}
			case "live":
				lv, ok := m.Type.(*rv.MediaLiveVideo)
				if !ok || lv.Properties.DeviceName != "Cam 1" {
					t.Errorf("Type = %+v, want live video Cam 1", m.Type)
				}
			case "web":
				wc, ok := m.Type.(*rv.MediaWebContent)
				if !ok || wc.Properties.Address != "https://example.com" {
					t.Errorf("Type = %+v, want web content", m.Type)
				}
			}
		})
	}
}
