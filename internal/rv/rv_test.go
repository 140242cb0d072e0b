package rv

import (
	"bytes"
	"reflect"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestPresentationRoundTrip(t *testing.T) {
	orig := &Presentation{
		ApplicationInfo: &ApplicationInfo{
			Platform:        PlatformMacOS,
			PlatformVersion: &Version{MajorVersion: 14},
			Application:     ApplicationProPresenter,
			ApplicationVersion: &Version{
				MajorVersion: 7,
				MinorVersion: 14,
			},
		},
		UUID:     NewUUID("0B1A2C3D-0000-4000-8000-000000000001"),
		Name:     "Amazing Grace",
		Category: "Song",
		Background: &Background{
			Fill: &BackgroundColorFill{Color: &Color{Alpha: 1}},
		},
		SelectedArrangement: NewUUID("0B1A2C3D-0000-4000-8000-000000000002"),
		Arrangements: []*Arrangement{{
			UUID: NewUUID("0B1A2C3D-0000-4000-8000-000000000002"),
			Name: "Default",
			GroupIdentifiers: []*UUID{
				NewUUID("0B1A2C3D-0000-4000-8000-000000000003"),
			},
		}},
		CueGroups: []*CueGroup{{
			Group: &Group{
				UUID:                       NewUUID("0B1A2C3D-0000-4000-8000-000000000003"),
				Name:                       "Verse 1",
				Color:                      &Color{Blue: 1, Alpha: 1},
				ApplicationGroupIdentifier: NewUUID("0B1A2C3D-0000-4000-8000-000000000008"),
				ApplicationGroupName:       "Verse 1",
			},
			CueIdentifiers: []*UUID{
				NewUUID("0B1A2C3D-0000-4000-8000-000000000004"),
			},
		}},
		Cues: []*Cue{{
			UUID:                 NewUUID("0B1A2C3D-0000-4000-8000-000000000004"),
			IsEnabled:            true,
			CompletionTargetType: CompletionTargetNone,
			CompletionActionType: CompletionActionFirst,
			Actions: []*Action{{
				UUID:      NewUUID("0B1A2C3D-0000-4000-8000-000000000005"),
				IsEnabled: true,
				Type:      ActionTypePresentationSlide,
				Data: &SlideType{
					Presentation: &PresentationSlide{
						BaseSlide: &Slide{
							UUID: NewUUID("0B1A2C3D-0000-4000-8000-000000000006"),
							Size: &Size{Width: 1920, Height: 1080},
							Elements: []*SlideElement{{
								Element: &Element{
									UUID:   NewUUID("0B1A2C3D-0000-4000-8000-000000000007"),
									Name:   "TextElement",
									Bounds: &Rect{Origin: &Point{X: 0, Y: 0}, Size: &Size{Width: 1920, Height: 1080}},
									Text: &Text{
										RtfData: []byte("{\\rtf1 test}"),
									},
									TextLineMask: &ElementLineFillMask{Mask: &LineFillMask{}},
								},
							}},
						},
					},
				},
			}},
		}},
		CCLI: &CCLI{
			Author:        "John Newton",
			SongTitle:     "Amazing Grace",
			CopyrightYear: 1779,
			SongNumber:    22025,
			Display:       true,
		},
		MusicKey: "G",
	}

	data := Marshal(orig)
	got, err := UnmarshalPresentation(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, orig) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, orig)
	}
}

func TestUnknownFieldsSurviveRewrite(t *testing.T) {
	p := &Presentation{
		UUID: NewUUID("0B1A2C3D-0000-4000-8000-00000000000A"),
		Name: "Passthrough",
	}
	raw := Marshal(p)

	// Fields this package does not model, appended the way a newer
	// writer would emit them.
	extra := protowire.AppendTag(nil, 99, protowire.VarintType)
	extra = protowire.AppendVarint(extra, 7)
	extra = protowire.AppendTag(extra, 100, protowire.BytesType)
	extra = protowire.AppendBytes(extra, []byte("opaque"))
	raw = append(raw, extra...)

	got, err := UnmarshalPresentation(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got.Name = "Rewritten"
	out := Marshal(got)

	if !bytes.Contains(out, extra) {
		t.Errorf("unmodeled fields dropped on rewrite")
	}
	back, err := UnmarshalPresentation(out)
	if err != nil {
		t.Fatalf("unmarshal rewritten: %v", err)
	}
	if back.Name != "Rewritten" {
		t.Errorf("Name = %q, want %q", back.Name, "Rewritten")
	}
	if back.UUID == nil || back.UUID.Value != p.UUID.Value {
		t.Errorf("UUID lost on rewrite")
	}
}

func TestNestedUnknownFieldsPreserved(t *testing.T) {
	c := &Color{Red: 0.5, Alpha: 1}
	raw := Marshal(c)
	extra := protowire.AppendTag(nil, 9, protowire.Fixed32Type)
	extra = protowire.AppendFixed32(extra, 0xDEADBEEF)
	raw = append(raw, extra...)

	var got Color
	if err := Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !bytes.Equal(Marshal(&got), raw) {
		t.Errorf("rewrite of color with unmodeled field is not byte identical")
	}
}

func TestStrokePatternPacked(t *testing.T) {
	s := &Stroke{
		Enabled: true,
		Width:   3,
		Style:   StrokeDashed,
		Pattern: []float64{4, 2, 1, 2},
	}
	var got Stroke
	if err := Unmarshal(Marshal(s), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got.Pattern, s.Pattern) {
		t.Errorf("Pattern = %v, want %v", got.Pattern, s.Pattern)
	}
}

func TestURLOptionalRelativePathPresence(t *testing.T) {
	empty := ""
	u := &URL{
		Platform:         URLPlatformMacOS,
		Storage:          &URLAbsoluteString{Path: "/Users/pro/Documents/song.pro"},
		RelativeFilePath: &empty,
	}
	var got URL
	if err := Unmarshal(Marshal(u), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.RelativeFilePath == nil {
		t.Fatalf("explicit empty RelativeFilePath lost its presence")
	}
	abs, ok := got.Storage.(*URLAbsoluteString)
	if !ok {
		t.Fatalf("Storage = %T, want *URLAbsoluteString", got.Storage)
	}
	if abs.Path != "/Users/pro/Documents/song.pro" {
		t.Errorf("Path = %q", abs.Path)
	}
}

func TestActionOneofVariants(t *testing.T) {
	tests := []struct {
		name string
		data ActionTypeData
	}{
		{"slide", &SlideType{Presentation: &PresentationSlide{BaseSlide: &Slide{UUID: NewUUID("a")}}}},
		{"clear", &ClearType{Layer: ClearLayerMedia}},
		{"media", &MediaType{Media: &Media{UUID: NewUUID("b")}}},
		{"audience look", &AudienceLookType{Identification: &CollectionElementType{ParameterName: "Lights Down"}}},
		{"macro", &MacroType{Identification: &CollectionElementType{ParameterName: "Walk In"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Action{UUID: NewUUID("act"), IsEnabled: true, Data: tt.data}
			var got Action
			if err := Unmarshal(Marshal(a), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !reflect.DeepEqual(got.Data, tt.data) {
				t.Errorf("Data = %+v, want %+v", got.Data, tt.data)
			}
		})
	}
}

func TestPlaylistDocumentRoundTrip(t *testing.T) {
	doc := &PlaylistDocument{
		ApplicationInfo: &ApplicationInfo{Platform: PlatformMacOS},
		RootNode: &Playlist{
			UUID: NewUUID("root"),
			Name: "Root",
			Type: NodeRoot,
			Children: []*Playlist{{
				UUID: NewUUID("child"),
				Name: "Sunday Service",
				Type: NodePlaylist,
				Items: []*PlaylistItem{
					{
						UUID: NewUUID("item1"),
						Name: "Amazing Grace",
						Type: &PlaylistItemPresentation{
							URL: &URL{
								Platform: URLPlatformMacOS,
								Storage:  &URLAbsoluteString{Path: "/lib/Amazing Grace.pro"},
							},
							LibraryRelativePath: "Amazing Grace.pro",
						},
					},
					{
						UUID: NewUUID("item2"),
						Name: "Welcome",
						Type: &PlaylistItemHeader{Color: &Color{Green: 1, Alpha: 1}},
					},
				},
			}},
		},
	}
	got, err := UnmarshalPlaylistDocument(Marshal(doc))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, doc)
	}
}

func TestUnmarshalMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"truncated tag", []byte{0x80}},
		{"truncated length delimited", []byte{0x0A, 0x05, 0x01}},
		{"wrong wire type for message", func() []byte {
			b := protowire.AppendTag(nil, 2, protowire.VarintType)
			return protowire.AppendVarint(b, 1)
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalPresentation(tt.data); err == nil {
				t.Errorf("expected error for %q", tt.name)
			}
		})
	}
}
