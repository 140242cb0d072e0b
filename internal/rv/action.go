package rv

// Label is display text plus a color swatch.
type Label struct {
	Text  string // field 1
	Color *Color // field 2

	unknown []byte
}

func (m *Label) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Text)
	b = appendMsg(b, 2, m.Color)
	return append(b, m.unknown...)
}

func (m *Label) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Text = r.str()
		case 2:
			m.Color = new(Color)
			r.msg(m.Color)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// LayerIdentification names the presentation layer an action targets.
type LayerIdentification struct {
	UUID *UUID  // field 1
	Name string // field 2

	unknown []byte
}

func (m *LayerIdentification) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.UUID)
	b = appendString(b, 2, m.Name)
	return append(b, m.unknown...)
}

func (m *LayerIdentification) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.UUID = new(UUID)
			r.msg(m.UUID)
		case 2:
			m.Name = r.str()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// TimecodeTime is an HH:MM:SS:FF timestamp.
type TimecodeTime struct {
	Hours   int32 // field 1
	Minutes int32 // field 2
	Seconds int32 // field 3
	Frames  int32 // field 4

	unknown []byte
}

func (m *TimecodeTime) marshal(b []byte) []byte {
	b = appendInt32(b, 1, m.Hours)
	b = appendInt32(b, 2, m.Minutes)
	b = appendInt32(b, 3, m.Seconds)
	b = appendInt32(b, 4, m.Frames)
	return append(b, m.unknown...)
}

func (m *TimecodeTime) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Hours = r.i32()
		case 2:
			m.Minutes = r.i32()
		case 3:
			m.Seconds = r.i32()
		case 4:
			m.Frames = r.i32()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// ActionType labels the payload kind of an action.
type ActionType int32

const (
	ActionTypeUnknown           ActionType = 0
	ActionTypePresentationSlide ActionType = 1
	ActionTypeClear             ActionType = 2
	ActionTypeMedia             ActionType = 3
	ActionTypeAudienceLook      ActionType = 4
	ActionTypeMacro             ActionType = 5
)

// ActionTypeData is the payload oneof of an action. Each payload message
// implements the marker directly.
type ActionTypeData interface {
	message
	isActionTypeData()
}

// SlideType shows a presentation slide.
type SlideType struct {
	Presentation *PresentationSlide // field 1

	unknown []byte
}

func (*SlideType) isActionTypeData() {}

func (m *SlideType) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.Presentation)
	return append(b, m.unknown...)
}

func (m *SlideType) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Presentation = new(PresentationSlide)
			r.msg(m.Presentation)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// ClearLayer identifies a clearable output layer.
type ClearLayer int32

const (
	ClearLayerUnknown      ClearLayer = 0
	ClearLayerPresentation ClearLayer = 1
	ClearLayerMedia        ClearLayer = 2
	ClearLayerAudio        ClearLayer = 3
	ClearLayerProps        ClearLayer = 4
	ClearLayerMessages     ClearLayer = 5
	ClearLayerAnnouncements ClearLayer = 6
	ClearLayerAll          ClearLayer = 7
)

// ClearType clears an output layer.
type ClearType struct {
	Layer ClearLayer // field 1

	unknown []byte
}

func (*ClearType) isActionTypeData() {}

func (m *ClearType) marshal(b []byte) []byte {
	b = appendInt32(b, 1, int32(m.Layer))
	return append(b, m.unknown...)
}

func (m *ClearType) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Layer = ClearLayer(r.i32())
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// MediaType plays a media item on a layer.
type MediaType struct {
	Media                  *Media // field 1
	LayerType              int32  // field 2
	AlreadyPlayingBehavior int32  // field 3

	unknown []byte
}

func (*MediaType) isActionTypeData() {}

func (m *MediaType) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.Media)
	b = appendInt32(b, 2, m.LayerType)
	b = appendInt32(b, 3, m.AlreadyPlayingBehavior)
	return append(b, m.unknown...)
}

func (m *MediaType) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Media = new(Media)
			r.msg(m.Media)
		case 2:
			m.LayerType = r.i32()
		case 3:
			m.AlreadyPlayingBehavior = r.i32()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// AudienceLookType triggers a named audience look.
type AudienceLookType struct {
	Identification *CollectionElementType // field 1

	unknown []byte
}

func (*AudienceLookType) isActionTypeData() {}

func (m *AudienceLookType) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.Identification)
	return append(b, m.unknown...)
}

func (m *AudienceLookType) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Identification = new(CollectionElementType)
			r.msg(m.Identification)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// MacroType runs a named macro.
type MacroType struct {
	Identification *CollectionElementType // field 1

	unknown []byte
}

func (*MacroType) isActionTypeData() {}

func (m *MacroType) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.Identification)
	return append(b, m.unknown...)
}

func (m *MacroType) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Identification = new(CollectionElementType)
			r.msg(m.Identification)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Action is one triggerable behavior within a cue.
type Action struct {
	UUID                *UUID                // field 1
	Name                string               // field 2
	Label               *Label               // field 3
	DelayTime           float64              // field 4
	IsEnabled           bool                 // field 6
	LayerIdentification *LayerIdentification // field 7
	Duration            float64              // field 8
	Type                ActionType           // field 9
	Data                ActionTypeData       // oneof, fields 10..14

	unknown []byte
}

func (m *Action) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.UUID)
	b = appendString(b, 2, m.Name)
	b = appendMsg(b, 3, m.Label)
	b = appendDouble(b, 4, m.DelayTime)
	b = appendBool(b, 6, m.IsEnabled)
	b = appendMsg(b, 7, m.LayerIdentification)
	b = appendDouble(b, 8, m.Duration)
	b = appendInt32(b, 9, int32(m.Type))
	switch d := m.Data.(type) {
	case *SlideType:
		b = appendMsg(b, 10, d)
	case *ClearType:
		b = appendMsg(b, 11, d)
	case *MediaType:
		b = appendMsg(b, 12, d)
	case *AudienceLookType:
		b = appendMsg(b, 13, d)
	case *MacroType:
		b = appendMsg(b, 14, d)
	case nil:
	}
	return append(b, m.unknown...)
}

func (m *Action) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.UUID = new(UUID)
			r.msg(m.UUID)
		case 2:
			m.Name = r.str()
		case 3:
			m.Label = new(Label)
			r.msg(m.Label)
		case 4:
			m.DelayTime = r.f64()
		case 6:
			m.IsEnabled = r.boolean()
		case 7:
			m.LayerIdentification = new(LayerIdentification)
			r.msg(m.LayerIdentification)
		case 8:
			m.Duration = r.f64()
		case 9:
			m.Type = ActionType(r.i32())
		case 10:
			d := new(SlideType)
			r.msg(d)
			m.Data = d
		case 11:
			d := new(ClearType)
			r.msg(d)
			m.Data = d
		case 12:
			d := new(MediaType)
			r.msg(d)
			m.Data = d
		case 13:
			d := new(AudienceLookType)
			r.msg(d)
			m.Data = d
		case 14:
			d := new(MacroType)
			r.msg(d)
			m.Data = d
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// CompletionTargetType selects what fires when a cue completes.
type CompletionTargetType int32

const (
	CompletionTargetNone   CompletionTargetType = 0
	CompletionTargetNext   CompletionTargetType = 1
	CompletionTargetRandom CompletionTargetType = 2
	CompletionTargetCue    CompletionTargetType = 3
	CompletionTargetFirst  CompletionTargetType = 4
)

// CompletionActionType selects when a cue is considered complete.
type CompletionActionType int32

const (
	CompletionActionFirst       CompletionActionType = 0
	CompletionActionLast        CompletionActionType = 1
	CompletionActionAfterAction CompletionActionType = 2
	CompletionActionAfterTime   CompletionActionType = 3
)

// Cue groups actions that fire together.
type Cue struct {
	UUID                 *UUID                // field 1
	Name                 string               // field 2
	CompletionTargetType CompletionTargetType // field 3
	CompletionTargetUUID *UUID                // field 4
	CompletionActionType CompletionActionType // field 5
	CompletionActionUUID *UUID                // field 6
	TriggerTime          *TimecodeTime        // field 7
	HotKey               *HotKey              // field 8
	Actions              []*Action            // field 9
	IsEnabled            bool                 // field 11
	CompletionTime       float64              // field 12

	unknown []byte
}

func (m *Cue) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.UUID)
	b = appendString(b, 2, m.Name)
	b = appendInt32(b, 3, int32(m.CompletionTargetType))
	b = appendMsg(b, 4, m.CompletionTargetUUID)
	b = appendInt32(b, 5, int32(m.CompletionActionType))
	b = appendMsg(b, 6, m.CompletionActionUUID)
	b = appendMsg(b, 7, m.TriggerTime)
	b = appendMsg(b, 8, m.HotKey)
	b = appendMsgs(b, 9, m.Actions)
	b = appendBool(b, 11, m.IsEnabled)
	b = appendDouble(b, 12, m.CompletionTime)
	return append(b, m.unknown...)
}

func (m *Cue) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.UUID = new(UUID)
			r.msg(m.UUID)
		case 2:
			m.Name = r.str()
		case 3:
			m.CompletionTargetType = CompletionTargetType(r.i32())
		case 4:
			m.CompletionTargetUUID = new(UUID)
			r.msg(m.CompletionTargetUUID)
		case 5:
			m.CompletionActionType = CompletionActionType(r.i32())
		case 6:
			m.CompletionActionUUID = new(UUID)
			r.msg(m.CompletionActionUUID)
		case 7:
			m.TriggerTime = new(TimecodeTime)
			r.msg(m.TriggerTime)
		case 8:
			m.HotKey = new(HotKey)
			r.msg(m.HotKey)
		case 9:
			a := new(Action)
			r.msg(a)
			m.Actions = append(m.Actions, a)
		case 11:
			m.IsEnabled = r.boolean()
		case 12:
			m.CompletionTime = r.f64()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}
