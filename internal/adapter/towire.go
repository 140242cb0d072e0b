package adapter

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"setlist/internal/pres"
	"setlist/internal/rtf"
	"setlist/internal/rv"
)

// now is stubbed in tests.
var now = time.Now

// ToWire lowers a built presentation into a complete wire document.
func ToWire(p *pres.Presentation) *rv.Presentation {
	w := &rv.Presentation{
		ApplicationInfo:     applicationInfo(),
		UUID:                wireUUID(p.ID),
		Name:                p.Name,
		Category:            p.Category,
		Notes:               p.Notes,
		LastDateUsed:        wireTimestamp(now()),
		LastModifiedDate:    wireTimestamp(now()),
		Background:          &rv.Background{Fill: &rv.BackgroundColorFill{Color: ColorToWire(pres.Black)}},
		SelectedArrangement: wireUUID(p.SelectedArrangement),
	}
	for i := range p.Arrangements {
		w.Arrangements = append(w.Arrangements, arrangementToWire(&p.Arrangements[i]))
	}
	for i := range p.CueGroups {
		w.CueGroups = append(w.CueGroups, cueGroupToWire(&p.CueGroups[i]))
	}
	for i := range p.Cues {
		w.Cues = append(w.Cues, cueToWire(&p.Cues[i]))
	}
	if p.CCLI != nil {
		w.CCLI = ccliToWire(p.CCLI)
	}
	if p.BibleReference != nil {
		w.BibleReference = bibleReferenceToWire(p.BibleReference)
	}
	return w
}

// applicationInfo stamps documents as written by ProPresenter 7.14 on
// macOS 14, the newest writer whose output this codec mirrors.
func applicationInfo() *rv.ApplicationInfo {
	return &rv.ApplicationInfo{
		Platform:        rv.PlatformMacOS,
		PlatformVersion: &rv.Version{MajorVersion: 14},
		Application:     rv.ApplicationProPresenter,
		ApplicationVersion: &rv.Version{
			MajorVersion: 7,
			MinorVersion: 14,
		},
	}
}

func wireUUID(id uuid.UUID) *rv.UUID {
	if id == uuid.Nil {
		return nil
	}
	return rv.NewUUID(strings.ToUpper(id.String()))
}

func wireTimestamp(t time.Time) *rv.Timestamp {
	return &rv.Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

// ColorToWire converts a model color to its wire form.
func ColorToWire(c pres.Color) *rv.Color {
	return &rv.Color{
		Red:   float32(c.R),
		Green: float32(c.G),
		Blue:  float32(c.B),
		Alpha: float32(c.A),
	}
}

// PointToWire converts a model point to its wire form.
func PointToWire(p pres.Point) *rv.Point {
	return &rv.Point{X: p.X, Y: p.Y}
}

// SizeToWire converts a model size to its wire form.
func SizeToWire(s pres.Size) *rv.Size {
	return &rv.Size{Width: s.Width, Height: s.Height}
}

// RectToWire converts a model rect to its wire form.
func RectToWire(r pres.Rect) *rv.Rect {
	return &rv.Rect{Origin: PointToWire(r.Origin), Size: SizeToWire(r.Size)}
}

func arrangementToWire(a *pres.Arrangement) *rv.Arrangement {
	w := &rv.Arrangement{UUID: wireUUID(a.ID), Name: a.Name}
	for _, id := range a.GroupIDs {
		w.GroupIdentifiers = append(w.GroupIdentifiers, wireUUID(id))
	}
	return w
}

func cueGroupToWire(g *pres.CueGroup) *rv.CueGroup {
	w := &rv.CueGroup{Group: &rv.Group{
		UUID:   wireUUID(g.Group.ID),
		Name:   g.Group.Name,
		Color:  ColorToWire(g.Group.Color),
		HotKey: hotKeyToWire(g.Group.HotKey),
	}}
	// The host application mirrors the group name next to its own
	// identifier; both travel together or not at all.
	if g.Group.ApplicationGroupID != "" {
		w.Group.ApplicationGroupIdentifier = rv.NewUUID(g.Group.ApplicationGroupID)
		w.Group.ApplicationGroupName = g.Group.Name
	}
	for _, id := range g.CueIDs {
		w.CueIdentifiers = append(w.CueIdentifiers, wireUUID(id))
	}
	return w
}

func hotKeyToWire(h *pres.HotKey) *rv.HotKey {
	if h == nil {
		return nil
	}
	return &rv.HotKey{Code: int32(h.Code)}
}

func ccliToWire(c *pres.CCLI) *rv.CCLI {
	return &rv.CCLI{
		Author:        c.Author,
		ArtistCredits: c.ArtistCredits,
		SongTitle:     c.SongTitle,
		Publisher:     c.Publisher,
		CopyrightYear: uint32(c.CopyrightYear),
		SongNumber:    uint32(c.SongNumber),
		Display:       c.Display,
	}
}

func bibleReferenceToWire(r *pres.BibleReference) *rv.BibleReference {
	return &rv.BibleReference{
		BookIndex:                      uint32(r.BookIndex),
		BookName:                       r.BookName,
		ChapterStart:                   uint32(r.ChapterStart),
		ChapterEnd:                     uint32(r.ChapterEnd),
		VerseStart:                     uint32(r.VerseStart),
		VerseEnd:                       uint32(r.VerseEnd),
		TranslationName:                r.TranslationName,
		TranslationDisplayAbbreviation: r.TranslationAbbreviation,
	}
}

func cueToWire(c *pres.Cue) *rv.Cue {
	w := &rv.Cue{
		UUID:                 wireUUID(c.ID),
		Name:                 c.Name,
		IsEnabled:            !c.Disabled,
		HotKey:               hotKeyToWire(c.HotKey),
		CompletionTargetType: completionTargetToWire(c.Completion.Target),
		CompletionTargetUUID: wireUUID(c.Completion.TargetCue),
		CompletionActionType: completionActionToWire(c.Completion.Action),
	}
	for _, a := range c.Actions {
		w.Actions = append(w.Actions, actionToWire(a))
	}
	return w
}

func completionTargetToWire(t pres.CompletionTarget) rv.CompletionTargetType {
	switch t {
	case pres.TargetNext:
		return rv.CompletionTargetNext
	case pres.TargetRandom:
		return rv.CompletionTargetRandom
	case pres.TargetCue:
		return rv.CompletionTargetCue
	case pres.TargetFirst:
		return rv.CompletionTargetFirst
	default:
		return rv.CompletionTargetNone
	}
}

func completionActionToWire(a pres.CompletionAction) rv.CompletionActionType {
	switch a {
	case pres.CompleteOnLast:
		return rv.CompletionActionLast
	case pres.CompleteAfterAction:
		return rv.CompletionActionAfterAction
	case pres.CompleteAfterTime:
		return rv.CompletionActionAfterTime
	default:
		return rv.CompletionActionFirst
	}
}

func actionToWire(a pres.Action) *rv.Action {
	w := &rv.Action{IsEnabled: true}
	switch a := a.(type) {
	case pres.SlideAction:
		w.UUID = actionUUID(a.ID)
		w.Type = rv.ActionTypePresentationSlide
		w.Data = &rv.SlideType{Presentation: &rv.PresentationSlide{
			BaseSlide: slideToWire(&a.Slide),
		}}
	case pres.ClearAction:
		w.UUID = actionUUID(a.ID)
		w.Name = "Clear"
		w.Type = rv.ActionTypeClear
		w.Data = &rv.ClearType{Layer: clearLayerToWire(a.Layer)}
	case pres.MediaAction:
		w.UUID = actionUUID(a.ID)
		w.Type = rv.ActionTypeMedia
		w.Data = &rv.MediaType{Media: mediaToWire(a.Source, a.Loop, a.Volume)}
	case pres.AudienceLookAction:
		w.UUID = actionUUID(a.ID)
		w.Name = a.Name
		w.Type = rv.ActionTypeAudienceLook
		w.Data = &rv.AudienceLookType{Identification: &rv.CollectionElementType{
			ParameterName: a.Name,
		}}
	case pres.MacroAction:
		w.UUID = actionUUID(a.ID)
		w.Name = a.Name
		w.Type = rv.ActionTypeMacro
		w.Data = &rv.MacroType{Identification: &rv.CollectionElementType{
			ParameterName: a.Name,
		}}
	}
	return w
}

func actionUUID(id uuid.UUID) *rv.UUID {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return wireUUID(id)
}

func clearLayerToWire(l pres.ClearLayer) rv.ClearLayer {
	switch l {
	case pres.ClearMedia:
		return rv.ClearLayerMedia
	case pres.ClearAudio:
		return rv.ClearLayerAudio
	case pres.ClearProps:
		return rv.ClearLayerProps
	case pres.ClearAll:
		return rv.ClearLayerAll
	default:
		return rv.ClearLayerPresentation
	}
}

func slideToWire(s *pres.Slide) *rv.Slide {
	id := s.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	size := s.Size
	if size == (pres.Size{}) {
		size = pres.DefaultCanvas
	}
	w := &rv.Slide{
		UUID: wireUUID(id),
		Size: SizeToWire(size),
	}
	if s.BackgroundColor != nil {
		w.DrawsBackgroundColor = true
		w.BackgroundColor = ColorToWire(*s.BackgroundColor)
	}
	for _, e := range s.Elements {
		we := elementToWire(e)
		w.Elements = append(w.Elements, we)
		w.ElementBuildOrder = append(w.ElementBuildOrder, we.Element.UUID)
	}
	return w
}

// elementToWire lowers one element. Wire elements always get fresh
// identifiers so cloned slides never collide in the host application.
func elementToWire(e pres.Element) *rv.SlideElement {
	base := &rv.Element{
		UUID:    wireUUID(uuid.New()),
		Opacity: 1,
		Path:    unitRectanglePath(),
		Fill:    disabledFill(),
		Stroke:  disabledStroke(),
		Shadow:  disabledShadow(),
		Feather: &rv.Feather{},
	}
	switch e := e.(type) {
	case pres.TextElement:
		base.Name = elementName(e.Name, "TextElement")
		base.Bounds = RectToWire(e.Bounds)
		base.Text = textToWire(&e)
		base.TextLineMask = &rv.ElementLineFillMask{Mask: &rv.LineFillMask{}}
		if e.Shadow != nil {
			base.Shadow = shadowToWire(e.Shadow)
		}
	case pres.ShapeElement:
		base.Name = elementName(e.Name, "ShapeElement")
		base.Bounds = RectToWire(e.Bounds)
		base.Fill = &rv.Fill{
			Enabled: true,
			Value:   &rv.FillColor{Color: ColorToWire(e.FillColor)},
		}
	case pres.MediaElement:
		base.Name = elementName(e.Name, "MediaElement")
		base.Bounds = RectToWire(e.Bounds)
		base.Fill = &rv.Fill{
			Enabled: true,
			Value:   &rv.FillMedia{Media: &rv.MediaFill{Media: mediaToWire(e.Source, false, 1)}},
		}
	case pres.TimerElement:
		base.Name = elementName(e.Name, "TimerElement")
		base.Bounds = RectToWire(e.Bounds)
		base.Text = textToWire(&pres.TextElement{
			Font:               e.Font,
			TextColor:          pres.White,
			Alignment:          pres.AlignCenter,
			VerticalAlignment:  pres.VAlignMiddle,
			LineHeightMultiple: pres.DefaultLineHeightMultiple,
		})
		base.TextLineMask = &rv.ElementLineFillMask{Mask: &rv.LineFillMask{}}
	}
	return &rv.SlideElement{Element: base}
}

func elementName(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}

// unitRectanglePath is the full-bounds rectangle every element carries.
// Path coordinates are normalized to the element bounds.
func unitRectanglePath() *rv.Path {
	corner := func(x, y float64) *rv.BezierPoint {
		p := &rv.Point{X: x, Y: y}
		return &rv.BezierPoint{Point: p, Q0: &rv.Point{X: x, Y: y}, Q1: &rv.Point{X: x, Y: y}}
	}
	return &rv.Path{
		Closed: true,
		Points: []*rv.BezierPoint{
			corner(0, 0), corner(1, 0), corner(1, 1), corner(0, 1),
		},
		Shape: &rv.PathShape{Type: rv.PathShapeRectangle},
	}
}

func disabledFill() *rv.Fill {
	return &rv.Fill{Value: &rv.FillColor{Color: &rv.Color{}}}
}

func disabledStroke() *rv.Stroke {
	return &rv.Stroke{Width: 1, Color: &rv.Color{Alpha: 1}}
}

func disabledShadow() *rv.Shadow {
	return &rv.Shadow{
		Angle:   315,
		Offset:  5,
		Radius:  5,
		Color:   &rv.Color{Alpha: 1},
		Opacity: 0.75,
	}
}

func shadowToWire(s *pres.Shadow) *rv.Shadow {
	return &rv.Shadow{
		Enabled: true,
		Angle:   s.Angle,
		Offset:  s.Offset,
		Radius:  s.Radius,
		Color:   ColorToWire(s.Color),
		Opacity: s.Opacity,
	}
}

func textToWire(e *pres.TextElement) *rv.Text {
	font := e.Font
	if font.Name == "" {
		font.Name = "Helvetica"
	}
	if font.Size <= 0 {
		font.Size = 72
	}
	lineHeight := e.LineHeightMultiple
	if lineHeight <= 0 {
		lineHeight = pres.DefaultLineHeightMultiple
	}
	return &rv.Text{
		RtfData: rtf.EncodeWith(e.Text, rtf.Options{
			FontName:  font.Name,
			FontSize:  font.Size,
			Alignment: rtfAlignment(e.Alignment),
		}),
		Attributes: &rv.TextAttributes{
			Font: &rv.Font{
				Name:   font.Name,
				Family: font.Family,
				Size:   font.Size,
				Bold:   font.Bold,
				Italic: font.Italic,
			},
			Fill: &rv.TextSolidFill{Color: ColorToWire(e.TextColor)},
		},
		ParagraphStyle: &rv.Paragraph{
			Alignment:          alignmentToWire(e.Alignment),
			LineHeightMultiple: lineHeight,
		},
		VerticalAlignment: verticalAlignmentToWire(e.VerticalAlignment),
	}
}

func rtfAlignment(a pres.Alignment) rtf.Alignment {
	switch a {
	case pres.AlignCenter:
		return rtf.AlignCenter
	case pres.AlignRight:
		return rtf.AlignRight
	case pres.AlignJustified:
		return rtf.AlignJustified
	default:
		return rtf.AlignLeft
	}
}

func alignmentToWire(a pres.Alignment) rv.TextAlignment {
	switch a {
	case pres.AlignCenter:
		return rv.AlignCenter
	case pres.AlignRight:
		return rv.AlignRight
	case pres.AlignJustified:
		return rv.AlignJustified
	default:
		return rv.AlignLeft
	}
}

func verticalAlignmentToWire(a pres.VerticalAlignment) rv.TextVerticalAlignment {
	switch a {
	case pres.VAlignMiddle:
		return rv.VerticalAlignMiddle
	case pres.VAlignBottom:
		return rv.VerticalAlignBottom
	default:
		return rv.VerticalAlignTop
	}
}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".heic": true, ".tiff": true, ".bmp": true,
}

func mediaToWire(src pres.MediaSource, loop bool, volume float64) *rv.Media {
	m := &rv.Media{
		UUID:    wireUUID(uuid.New()),
		Drawing: &rv.MediaDrawingProperties{ScaleBehavior: rv.ScaleFill},
		Audio:   &rv.MediaAudioProperties{Volume: volume},
	}
	if loop {
		m.Transport = &rv.MediaTransportProperties{PlayRate: 1, TimesToLoop: -1}
	} else {
		m.Transport = &rv.MediaTransportProperties{PlayRate: 1}
	}
	switch src := src.(type) {
	case pres.FileSource:
		m.URL = &rv.URL{
			Platform: rv.URLPlatformMacOS,
			Storage:  &rv.URLAbsoluteString{Path: src.Path},
		}
		if imageExtensions[strings.ToLower(filepath.Ext(src.Path))] {
			m.Type = &rv.MediaImage{Properties: &rv.MediaImageProperties{}}
		} else {
			m.Type = &rv.MediaVideo{Properties: &rv.MediaVideoProperties{}}
		}
	case pres.LiveVideoSource:
		m.Type = &rv.MediaLiveVideo{Properties: &rv.MediaLiveVideoProperties{
			DeviceName: src.DeviceName,
		}}
	case pres.URLSource:
		m.URL = &rv.URL{
			Platform: rv.URLPlatformWeb,
			Storage:  &rv.URLAbsoluteString{Path: src.Address},
		}
		m.Type = &rv.MediaWebContent{Properties: &rv.MediaWebContentProperties{
			Address: src.Address,
		}}
	}
	return m
}
