package pres

import "github.com/google/uuid"

// Color is an RGBA color with components in 0..1.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// Point is a 2D coordinate in canvas space.
type Point struct {
	X float64
	Y float64
}

// Size is a 2D extent in canvas space.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an origin plus a size.
type Rect struct {
	Origin Point
	Size   Size
}

// Alignment is horizontal paragraph alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustified
)

// VerticalAlignment positions text within its element bounds.
type VerticalAlignment int

const (
	VAlignTop VerticalAlignment = iota
	VAlignMiddle
	VAlignBottom
)

// Font names a typeface and size for a text element.
type Font struct {
	Name   string
	Family string
	Size   float64
	Bold   bool
	Italic bool
}

// Shadow is a drop shadow behind text or shapes.
type Shadow struct {
	Color   Color
	Angle   float64
	Offset  float64
	Radius  float64
	Opacity float64
}

// Element is one drawable item on a slide. Implementations are
// TextElement, ShapeElement, MediaElement and TimerElement.
type Element interface {
	isElement()
}

// TextElement renders styled text.
type TextElement struct {
	ID                 uuid.UUID
	Name               string
	Bounds             Rect
	Text               string
	Font               Font
	TextColor          Color
	Alignment          Alignment
	VerticalAlignment  VerticalAlignment
	LineHeightMultiple float64
	Shadow             *Shadow
}

func (TextElement) isElement() {}

// ShapeElement renders a filled rectangle.
type ShapeElement struct {
	ID        uuid.UUID
	Name      string
	Bounds    Rect
	FillColor Color
}

func (ShapeElement) isElement() {}

// MediaElement renders media within a slide.
type MediaElement struct {
	ID     uuid.UUID
	Name   string
	Bounds Rect
	Source MediaSource
}

func (MediaElement) isElement() {}

// TimerElement renders a countdown or clock readout.
type TimerElement struct {
	ID     uuid.UUID
	Name   string
	Bounds Rect
	Font   Font
}

func (TimerElement) isElement() {}

// MediaSource locates media content. Implementations are FileSource,
// LiveVideoSource and URLSource.
type MediaSource interface {
	isMediaSource()
}

// FileSource is an on-disk media file.
type FileSource struct {
	Path string
}

func (FileSource) isMediaSource() {}

// LiveVideoSource is a capture device.
type LiveVideoSource struct {
	DeviceName string
}

func (LiveVideoSource) isMediaSource() {}

// URLSource is web-hosted content.
type URLSource struct {
	Address string
}

func (URLSource) isMediaSource() {}

// Slide is the renderable canvas behind a cue.
type Slide struct {
	ID              uuid.UUID
	Size            Size
	BackgroundColor *Color
	Elements        []Element
}

// ClearLayer identifies an output layer a clear action targets.
type ClearLayer int

const (
	ClearPresentation ClearLayer = iota
	ClearMedia
	ClearAudio
	ClearProps
	ClearAll
)

// Action is one triggerable behavior within a cue. Implementations are
// SlideAction, ClearAction, MediaAction, AudienceLookAction and
// MacroAction.
type Action interface {
	isAction()
}

// SlideAction shows a slide.
type SlideAction struct {
	ID    uuid.UUID
	Slide Slide
}

func (SlideAction) isAction() {}

// ClearAction clears an output layer.
type ClearAction struct {
	ID    uuid.UUID
	Layer ClearLayer
}

func (ClearAction) isAction() {}

// MediaAction plays media.
type MediaAction struct {
	ID     uuid.UUID
	Source MediaSource
	Loop   bool
	Volume float64
}

func (MediaAction) isAction() {}

// AudienceLookAction triggers a named audience look.
type AudienceLookAction struct {
	ID   uuid.UUID
	Name string
}

func (AudienceLookAction) isAction() {}

// MacroAction runs a named macro.
type MacroAction struct {
	ID   uuid.UUID
	Name string
}

func (MacroAction) isAction() {}

// CompletionTarget selects what fires when a cue completes.
type CompletionTarget int

const (
	TargetNone CompletionTarget = iota
	TargetNext
	TargetRandom
	TargetCue
	TargetFirst
)

// CompletionAction selects when a cue is considered complete.
type CompletionAction int

const (
	CompleteOnFirst CompletionAction = iota
	CompleteOnLast
	CompleteAfterAction
	CompleteAfterTime
)

// Completion describes how cue playback advances. The builder assigns
// it; callers normally leave it zero.
type Completion struct {
	Target     CompletionTarget
	TargetCue  uuid.UUID
	Action     CompletionAction
}

// HotKey binds a keyboard key to a cue or group.
type HotKey struct {
	Code int
}

// Cue groups actions that fire together.
type Cue struct {
	ID         uuid.UUID
	Name       string
	Actions    []Action
	Completion Completion
	Disabled   bool
	HotKey     *HotKey
}

// Group is a named, colored band of cues.
type Group struct {
	ID     uuid.UUID
	Name   string
	Color  Color
	HotKey *HotKey

	// ApplicationGroupID is the host application's own identifier for
	// the group. The builder assigns one when left empty.
	ApplicationGroupID string
}

// CueGroup binds a group to the cues it contains, by identifier.
type CueGroup struct {
	Group  Group
	CueIDs []uuid.UUID
}

// Arrangement orders groups into a performance sequence.
type Arrangement struct {
	ID       uuid.UUID
	Name     string
	GroupIDs []uuid.UUID
}

// CCLI is song licensing metadata.
type CCLI struct {
	Author        string
	ArtistCredits string
	SongTitle     string
	Publisher     string
	CopyrightYear int
	SongNumber    int
	Display       bool
}

// BibleReference identifies the passage a scripture presentation shows.
type BibleReference struct {
	BookIndex               int
	BookName                string
	ChapterStart            int
	ChapterEnd              int
	VerseStart              int
	VerseEnd                int
	TranslationName         string
	TranslationAbbreviation string
}

// TimelineCue fires an action at an offset into the timeline.
type TimelineCue struct {
	ID       uuid.UUID
	Seconds  float64
	ActionID uuid.UUID
}

// Timeline drives timed automatic playback of a presentation.
type Timeline struct {
	Duration float64
	Loop     bool
	Cues     []TimelineCue
}

// Presentation is a complete, internally consistent document. Obtain
// one through Builder.Build rather than constructing it directly.
type Presentation struct {
	ID                  uuid.UUID
	Name                string
	Category            string
	Notes               string
	CCLI                *CCLI
	BibleReference      *BibleReference
	Cues                []Cue
	CueGroups           []CueGroup
	Arrangements        []Arrangement
	SelectedArrangement uuid.UUID
}
