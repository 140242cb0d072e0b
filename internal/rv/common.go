package rv

// UUID is the string-form identifier every addressable entity carries.
type UUID struct {
	Value string // field 1

	unknown []byte
}

// NewUUID wraps an identifier string.
func NewUUID(s string) *UUID {
	return &UUID{Value: s}
}

func (m *UUID) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Value)
	return append(b, m.unknown...)
}

func (m *UUID) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Value = r.str()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Color is an RGBA color with float components in 0..1.
type Color struct {
	Red   float32 // field 1
	Green float32 // field 2
	Blue  float32 // field 3
	Alpha float32 // field 4

	unknown []byte
}

func (m *Color) marshal(b []byte) []byte {
	b = appendFloat(b, 1, m.Red)
	b = appendFloat(b, 2, m.Green)
	b = appendFloat(b, 3, m.Blue)
	b = appendFloat(b, 4, m.Alpha)
	return append(b, m.unknown...)
}

func (m *Color) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Red = r.f32()
		case 2:
			m.Green = r.f32()
		case 3:
			m.Blue = r.f32()
		case 4:
			m.Alpha = r.f32()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// IntRange is a half-open character or verse range.
type IntRange struct {
	Start int32 // field 1
	End   int32 // field 2

	unknown []byte
}

func (m *IntRange) marshal(b []byte) []byte {
	b = appendInt32(b, 1, m.Start)
	b = appendInt32(b, 2, m.End)
	return append(b, m.unknown...)
}

func (m *IntRange) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Start = r.i32()
		case 2:
			m.End = r.i32()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// URLPlatform identifies the platform a URL was written on.
type URLPlatform int32

const (
	URLPlatformUnknown URLPlatform = 0
	URLPlatformMacOS   URLPlatform = 1
	URLPlatformWindows URLPlatform = 2
	URLPlatformWeb     URLPlatform = 3
)

// URLStorage is the storage oneof of a URL.
type URLStorage interface {
	message
	isURLStorage()
}

// URLAbsoluteString stores an absolute path or address.
type URLAbsoluteString struct {
	Path string // field 2 on URL

	unknown []byte
}

func (*URLAbsoluteString) isURLStorage() {}

func (m *URLAbsoluteString) marshal(b []byte) []byte { return b }

func (m *URLAbsoluteString) unmarshal(data []byte) error { return nil }

// URL locates a file or web resource.
type URL struct {
	Platform         URLPlatform // field 1
	Storage          URLStorage  // oneof, field 2 (absolute string)
	RelativeFilePath *string     // field 3

	unknown []byte
}

func (m *URL) marshal(b []byte) []byte {
	b = appendInt32(b, 1, int32(m.Platform))
	switch s := m.Storage.(type) {
	case *URLAbsoluteString:
		b = appendString(b, 2, s.Path)
	case nil:
	}
	b = appendOptString(b, 3, m.RelativeFilePath)
	return append(b, m.unknown...)
}

func (m *URL) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Platform = URLPlatform(r.i32())
		case 2:
			m.Storage = &URLAbsoluteString{Path: r.str()}
		case 3:
			v := r.str()
			m.RelativeFilePath = &v
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Timestamp mirrors google.protobuf.Timestamp.
type Timestamp struct {
	Seconds int64 // field 1
	Nanos   int32 // field 2

	unknown []byte
}

func (m *Timestamp) marshal(b []byte) []byte {
	b = appendInt64(b, 1, m.Seconds)
	b = appendInt32(b, 2, m.Nanos)
	return append(b, m.unknown...)
}

func (m *Timestamp) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Seconds = r.i64()
		case 2:
			m.Nanos = r.i32()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Version is a semantic application or platform version.
type Version struct {
	MajorVersion uint32 // field 1
	MinorVersion uint32 // field 2
	PatchVersion uint32 // field 3
	Build        string // field 4

	unknown []byte
}

func (m *Version) marshal(b []byte) []byte {
	b = appendUint32(b, 1, m.MajorVersion)
	b = appendUint32(b, 2, m.MinorVersion)
	b = appendUint32(b, 3, m.PatchVersion)
	b = appendString(b, 4, m.Build)
	return append(b, m.unknown...)
}

func (m *Version) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.MajorVersion = r.u32()
		case 2:
			m.MinorVersion = r.u32()
		case 3:
			m.PatchVersion = r.u32()
		case 4:
			m.Build = r.str()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// ApplicationInfoPlatform identifies the writing platform.
type ApplicationInfoPlatform int32

const (
	PlatformUndefined ApplicationInfoPlatform = 0
	PlatformMacOS     ApplicationInfoPlatform = 1
	PlatformWindows   ApplicationInfoPlatform = 2
)

// ApplicationInfoApplication identifies the writing application.
type ApplicationInfoApplication int32

const (
	ApplicationUndefined    ApplicationInfoApplication = 0
	ApplicationProPresenter ApplicationInfoApplication = 1
)

// ApplicationInfo records which application and platform wrote a document.
type ApplicationInfo struct {
	Platform           ApplicationInfoPlatform    // field 1
	PlatformVersion    *Version                   // field 2
	Application        ApplicationInfoApplication // field 3
	ApplicationVersion *Version                   // field 4

	unknown []byte
}

func (m *ApplicationInfo) marshal(b []byte) []byte {
	b = appendInt32(b, 1, int32(m.Platform))
	b = appendMsg(b, 2, m.PlatformVersion)
	b = appendInt32(b, 3, int32(m.Application))
	b = appendMsg(b, 4, m.ApplicationVersion)
	return append(b, m.unknown...)
}

func (m *ApplicationInfo) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Platform = ApplicationInfoPlatform(r.i32())
		case 2:
			m.PlatformVersion = new(Version)
			r.msg(m.PlatformVersion)
		case 3:
			m.Application = ApplicationInfoApplication(r.i32())
		case 4:
			m.ApplicationVersion = new(Version)
			r.msg(m.ApplicationVersion)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// HotKey binds a key code to a cue or group.
type HotKey struct {
	Code              int32  // field 1
	ControlIdentifier string // field 2

	unknown []byte
}

func (m *HotKey) marshal(b []byte) []byte {
	b = appendInt32(b, 1, m.Code)
	b = appendString(b, 2, m.ControlIdentifier)
	return append(b, m.unknown...)
}

func (m *HotKey) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Code = r.i32()
		case 2:
			m.ControlIdentifier = r.str()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// GuidelineOrientation orients an alignment guide.
type GuidelineOrientation int32

const (
	GuidelineHorizontal GuidelineOrientation = 0
	GuidelineVertical   GuidelineOrientation = 1
)

// AlignmentGuide is a layout guideline on a slide.
type AlignmentGuide struct {
	UUID        *UUID                // field 1
	Orientation GuidelineOrientation // field 2
	Location    float64              // field 3

	unknown []byte
}

func (m *AlignmentGuide) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.UUID)
	b = appendInt32(b, 2, int32(m.Orientation))
	b = appendDouble(b, 3, m.Location)
	return append(b, m.unknown...)
}

func (m *AlignmentGuide) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.UUID = new(UUID)
			r.msg(m.UUID)
		case 2:
			m.Orientation = GuidelineOrientation(r.i32())
		case 3:
			m.Location = r.f64()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// CollectionElementType identifies a parameter within a named collection
// (audience looks, macros).
type CollectionElementType struct {
	ParameterUUID    *UUID                  // field 1
	ParameterName    string                 // field 2
	ParentCollection *CollectionElementType // field 3

	unknown []byte
}

func (m *CollectionElementType) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.ParameterUUID)
	b = appendString(b, 2, m.ParameterName)
	b = appendMsg(b, 3, m.ParentCollection)
	return append(b, m.unknown...)
}

func (m *CollectionElementType) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.ParameterUUID = new(UUID)
			r.msg(m.ParameterUUID)
		case 2:
			m.ParameterName = r.str()
		case 3:
			m.ParentCollection = new(CollectionElementType)
			r.msg(m.ParentCollection)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// BackgroundFill is the fill oneof of a presentation background.
type BackgroundFill interface{ isBackgroundFill() }

// BackgroundColorFill is a solid background color.
type BackgroundColorFill struct {
	Color *Color // field 2 on Background
}

func (*BackgroundColorFill) isBackgroundFill() {}

// Background is the presentation-level background.
type Background struct {
	IsEnabled bool           // field 1
	Fill      BackgroundFill // oneof, field 2 (color)

	unknown []byte
}

func (m *Background) marshal(b []byte) []byte {
	b = appendBool(b, 1, m.IsEnabled)
	switch f := m.Fill.(type) {
	case *BackgroundColorFill:
		b = appendMsg(b, 2, f.Color)
	case nil:
	}
	return append(b, m.unknown...)
}

func (m *Background) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.IsEnabled = r.boolean()
		case 2:
			c := new(Color)
			r.msg(c)
			m.Fill = &BackgroundColorFill{Color: c}
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Effect is a named render effect (transitions and friends).
type Effect struct {
	UUID                *UUID  // field 1
	Enabled             bool   // field 2
	Name                string // field 3
	RenderID            string // field 4
	BehaviorDescription string // field 5
	Category            string // field 6

	unknown []byte
}

func (m *Effect) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.UUID)
	b = appendBool(b, 2, m.Enabled)
	b = appendString(b, 3, m.Name)
	b = appendString(b, 4, m.RenderID)
	b = appendString(b, 5, m.BehaviorDescription)
	b = appendString(b, 6, m.Category)
	return append(b, m.unknown...)
}

func (m *Effect) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.UUID = new(UUID)
			r.msg(m.UUID)
		case 2:
			m.Enabled = r.boolean()
		case 3:
			m.Name = r.str()
		case 4:
			m.RenderID = r.str()
		case 5:
			m.BehaviorDescription = r.str()
		case 6:
			m.Category = r.str()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Transition wraps an effect with a duration.
type Transition struct {
	Duration     float64 // field 1
	FavoriteUUID *UUID   // field 2
	Effect       *Effect // field 3

	unknown []byte
}

func (m *Transition) marshal(b []byte) []byte {
	b = appendDouble(b, 1, m.Duration)
	b = appendMsg(b, 2, m.FavoriteUUID)
	b = appendMsg(b, 3, m.Effect)
	return append(b, m.unknown...)
}

func (m *Transition) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Duration = r.f64()
		case 2:
			m.FavoriteUUID = new(UUID)
			r.msg(m.FavoriteUUID)
		case 3:
			m.Effect = new(Effect)
			r.msg(m.Effect)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}
