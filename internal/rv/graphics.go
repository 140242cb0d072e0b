package rv

// Point is a 2D coordinate.
type Point struct {
	X float64 // field 1
	Y float64 // field 2

	unknown []byte
}

func (m *Point) marshal(b []byte) []byte {
	b = appendDouble(b, 1, m.X)
	b = appendDouble(b, 2, m.Y)
	return append(b, m.unknown...)
}

func (m *Point) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.X = r.f64()
		case 2:
			m.Y = r.f64()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Size is a 2D extent.
type Size struct {
	Width  float64 // field 1
	Height float64 // field 2

	unknown []byte
}

func (m *Size) marshal(b []byte) []byte {
	b = appendDouble(b, 1, m.Width)
	b = appendDouble(b, 2, m.Height)
	return append(b, m.unknown...)
}

func (m *Size) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Width = r.f64()
		case 2:
			m.Height = r.f64()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Rect is an origin plus a size.
type Rect struct {
	Origin *Point // field 1
	Size   *Size  // field 2

	unknown []byte
}

func (m *Rect) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.Origin)
	b = appendMsg(b, 2, m.Size)
	return append(b, m.unknown...)
}

func (m *Rect) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Origin = new(Point)
			r.msg(m.Origin)
		case 2:
			m.Size = new(Size)
			r.msg(m.Size)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// EdgeInsets pads a rectangle inward.
type EdgeInsets struct {
	Top    float64 // field 1
	Right  float64 // field 2
	Bottom float64 // field 3
	Left   float64 // field 4

	unknown []byte
}

func (m *EdgeInsets) marshal(b []byte) []byte {
	b = appendDouble(b, 1, m.Top)
	b = appendDouble(b, 2, m.Right)
	b = appendDouble(b, 3, m.Bottom)
	b = appendDouble(b, 4, m.Left)
	return append(b, m.unknown...)
}

func (m *EdgeInsets) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Top = r.f64()
		case 2:
			m.Right = r.f64()
		case 3:
			m.Bottom = r.f64()
		case 4:
			m.Left = r.f64()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// BezierPoint is a path vertex with control handles in unit space.
type BezierPoint struct {
	Point       *Point // field 1
	Q0          *Point // field 2, control handle before the vertex
	Q1          *Point // field 3, control handle after the vertex
	CurveActive bool   // field 4

	unknown []byte
}

func (m *BezierPoint) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.Point)
	b = appendMsg(b, 2, m.Q0)
	b = appendMsg(b, 3, m.Q1)
	b = appendBool(b, 4, m.CurveActive)
	return append(b, m.unknown...)
}

func (m *BezierPoint) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Point = new(Point)
			r.msg(m.Point)
		case 2:
			m.Q0 = new(Point)
			r.msg(m.Q0)
		case 3:
			m.Q1 = new(Point)
			r.msg(m.Q1)
		case 4:
			m.CurveActive = r.boolean()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// PathShapeType names the primitive a path was derived from.
type PathShapeType int32

const (
	PathShapeUnknown   PathShapeType = 0
	PathShapeRectangle PathShapeType = 1
	PathShapeEllipse   PathShapeType = 2
)

// PathShape tags a path with its source primitive.
type PathShape struct {
	Type PathShapeType // field 1

	unknown []byte
}

func (m *PathShape) marshal(b []byte) []byte {
	b = appendInt32(b, 1, int32(m.Type))
	return append(b, m.unknown...)
}

func (m *PathShape) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Type = PathShapeType(r.i32())
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Path is a closed or open bezier outline in unit coordinate space.
type Path struct {
	Closed bool           // field 1
	Points []*BezierPoint // field 2
	Shape  *PathShape     // field 3

	unknown []byte
}

func (m *Path) marshal(b []byte) []byte {
	b = appendBool(b, 1, m.Closed)
	b = appendMsgs(b, 2, m.Points)
	b = appendMsg(b, 3, m.Shape)
	return append(b, m.unknown...)
}

func (m *Path) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Closed = r.boolean()
		case 2:
			p := new(BezierPoint)
			r.msg(p)
			m.Points = append(m.Points, p)
		case 3:
			m.Shape = new(PathShape)
			r.msg(m.Shape)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// GradientStop is one color stop along a gradient axis.
type GradientStop struct {
	Position float64 // field 1
	Color    *Color  // field 2

	unknown []byte
}

func (m *GradientStop) marshal(b []byte) []byte {
	b = appendDouble(b, 1, m.Position)
	b = appendMsg(b, 2, m.Color)
	return append(b, m.unknown...)
}

func (m *GradientStop) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Position = r.f64()
		case 2:
			m.Color = new(Color)
			r.msg(m.Color)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Gradient is an angled multi-stop gradient fill.
type Gradient struct {
	Angle float64         // field 1
	Stops []*GradientStop // field 2

	unknown []byte
}

func (m *Gradient) marshal(b []byte) []byte {
	b = appendDouble(b, 1, m.Angle)
	b = appendMsgs(b, 2, m.Stops)
	return append(b, m.unknown...)
}

func (m *Gradient) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Angle = r.f64()
		case 2:
			s := new(GradientStop)
			r.msg(s)
			m.Stops = append(m.Stops, s)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// MediaFill fills a region with a referenced media item.
type MediaFill struct {
	Media *Media // field 1

	unknown []byte
}

func (m *MediaFill) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.Media)
	return append(b, m.unknown...)
}

func (m *MediaFill) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Media = new(Media)
			r.msg(m.Media)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// FillValue is the value oneof of a fill.
type FillValue interface{ isFillValue() }

// FillColor is a solid color fill.
type FillColor struct {
	Color *Color // field 2 on Fill
}

func (*FillColor) isFillValue() {}

// FillGradient is a gradient fill.
type FillGradient struct {
	Gradient *Gradient // field 3 on Fill
}

func (*FillGradient) isFillValue() {}

// FillMedia fills with a media reference.
type FillMedia struct {
	Media *MediaFill // field 4 on Fill
}

func (*FillMedia) isFillValue() {}

// Fill paints the interior of an element path.
type Fill struct {
	Enabled bool      // field 1
	Value   FillValue // oneof, fields 2..4

	unknown []byte
}

func (m *Fill) marshal(b []byte) []byte {
	b = appendBool(b, 1, m.Enabled)
	switch v := m.Value.(type) {
	case *FillColor:
		b = appendMsg(b, 2, v.Color)
	case *FillGradient:
		b = appendMsg(b, 3, v.Gradient)
	case *FillMedia:
		b = appendMsg(b, 4, v.Media)
	case nil:
	}
	return append(b, m.unknown...)
}

func (m *Fill) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Enabled = r.boolean()
		case 2:
			c := new(Color)
			r.msg(c)
			m.Value = &FillColor{Color: c}
		case 3:
			g := new(Gradient)
			r.msg(g)
			m.Value = &FillGradient{Gradient: g}
		case 4:
			f := new(MediaFill)
			r.msg(f)
			m.Value = &FillMedia{Media: f}
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// StrokeStyle selects a dash pattern family.
type StrokeStyle int32

const (
	StrokeSolid    StrokeStyle = 0
	StrokeRounded  StrokeStyle = 1
	StrokeDashed   StrokeStyle = 2
	StrokeSquare   StrokeStyle = 3
	StrokeDashedEq StrokeStyle = 4
)

// Stroke outlines an element path.
type Stroke struct {
	Enabled bool        // field 1
	Width   float64     // field 2
	Color   *Color      // field 3
	Style   StrokeStyle // field 4
	Pattern []float64   // field 5, dash lengths

	unknown []byte
}

func (m *Stroke) marshal(b []byte) []byte {
	b = appendBool(b, 1, m.Enabled)
	b = appendDouble(b, 2, m.Width)
	b = appendMsg(b, 3, m.Color)
	b = appendInt32(b, 4, int32(m.Style))
	b = appendDoubles(b, 5, m.Pattern)
	return append(b, m.unknown...)
}

func (m *Stroke) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Enabled = r.boolean()
		case 2:
			m.Width = r.f64()
		case 3:
			m.Color = new(Color)
			r.msg(m.Color)
		case 4:
			m.Style = StrokeStyle(r.i32())
		case 5:
			r.f64s(&m.Pattern)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// ShadowStyle selects drop versus inner shadows.
type ShadowStyle int32

const (
	ShadowDrop  ShadowStyle = 0
	ShadowInner ShadowStyle = 1
)

// Shadow renders behind or inside an element.
type Shadow struct {
	Enabled bool        // field 1
	Style   ShadowStyle // field 2
	Angle   float64     // field 3, degrees
	Offset  float64     // field 4
	Radius  float64     // field 5
	Color   *Color      // field 6
	Opacity float64     // field 7

	unknown []byte
}

func (m *Shadow) marshal(b []byte) []byte {
	b = appendBool(b, 1, m.Enabled)
	b = appendInt32(b, 2, int32(m.Style))
	b = appendDouble(b, 3, m.Angle)
	b = appendDouble(b, 4, m.Offset)
	b = appendDouble(b, 5, m.Radius)
	b = appendMsg(b, 6, m.Color)
	b = appendDouble(b, 7, m.Opacity)
	return append(b, m.unknown...)
}

func (m *Shadow) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Enabled = r.boolean()
		case 2:
			m.Style = ShadowStyle(r.i32())
		case 3:
			m.Angle = r.f64()
		case 4:
			m.Offset = r.f64()
		case 5:
			m.Radius = r.f64()
		case 6:
			m.Color = new(Color)
			r.msg(m.Color)
		case 7:
			m.Opacity = r.f64()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Feather softens element edges.
type Feather struct {
	Enabled bool    // field 1
	Radius  float64 // field 2

	unknown []byte
}

func (m *Feather) marshal(b []byte) []byte {
	b = appendBool(b, 1, m.Enabled)
	b = appendDouble(b, 2, m.Radius)
	return append(b, m.unknown...)
}

func (m *Feather) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Enabled = r.boolean()
		case 2:
			m.Radius = r.f64()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// LineFillMask clips text line backgrounds. A zero-value mask means the
// background spans the full element width.
type LineFillMask struct {
	Height           float64 // field 1
	VerticalOffset   float64 // field 2
	HorizontalOffset float64 // field 3

	unknown []byte
}

func (m *LineFillMask) marshal(b []byte) []byte {
	b = appendDouble(b, 1, m.Height)
	b = appendDouble(b, 2, m.VerticalOffset)
	b = appendDouble(b, 3, m.HorizontalOffset)
	return append(b, m.unknown...)
}

func (m *LineFillMask) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Height = r.f64()
		case 2:
			m.VerticalOffset = r.f64()
		case 3:
			m.HorizontalOffset = r.f64()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// ElementFlipMode mirrors an element across an axis.
type ElementFlipMode int32

const (
	FlipNone       ElementFlipMode = 0
	FlipHorizontal ElementFlipMode = 1
	FlipVertical   ElementFlipMode = 2
	FlipBoth       ElementFlipMode = 3
)

// ElementTextLineMask is the text line mask oneof of an element.
type ElementTextLineMask interface{ isElementTextLineMask() }

// ElementPathMask masks text lines with an explicit path.
type ElementPathMask struct {
	Path *Path // field 15 on Element
}

func (*ElementPathMask) isElementTextLineMask() {}

// ElementLineFillMask masks text lines with a line fill mask.
type ElementLineFillMask struct {
	Mask *LineFillMask // field 16 on Element
}

func (*ElementLineFillMask) isElementTextLineMask() {}

// Element is a drawable item on a slide.
type Element struct {
	UUID              *UUID           // field 1
	Name              string          // field 2
	Bounds            *Rect           // field 3
	Rotation          float64         // field 4
	Opacity           float64         // field 5
	Path              *Path           // field 6
	Fill              *Fill           // field 7
	Stroke            *Stroke         // field 8
	Shadow            *Shadow         // field 9
	Feather           *Feather        // field 10
	Text              *Text           // field 11
	FlipMode          ElementFlipMode // field 12
	Hidden            bool            // field 13
	AspectRatioLocked bool            // field 14
	TextLineMask      ElementTextLineMask

	unknown []byte
}

func (m *Element) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.UUID)
	b = appendString(b, 2, m.Name)
	b = appendMsg(b, 3, m.Bounds)
	b = appendDouble(b, 4, m.Rotation)
	b = appendDouble(b, 5, m.Opacity)
	b = appendMsg(b, 6, m.Path)
	b = appendMsg(b, 7, m.Fill)
	b = appendMsg(b, 8, m.Stroke)
	b = appendMsg(b, 9, m.Shadow)
	b = appendMsg(b, 10, m.Feather)
	b = appendMsg(b, 11, m.Text)
	b = appendInt32(b, 12, int32(m.FlipMode))
	b = appendBool(b, 13, m.Hidden)
	b = appendBool(b, 14, m.AspectRatioLocked)
	switch v := m.TextLineMask.(type) {
	case *ElementPathMask:
		b = appendMsg(b, 15, v.Path)
	case *ElementLineFillMask:
		b = appendMsg(b, 16, v.Mask)
	case nil:
	}
	return append(b, m.unknown...)
}

func (m *Element) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.UUID = new(UUID)
			r.msg(m.UUID)
		case 2:
			m.Name = r.str()
		case 3:
			m.Bounds = new(Rect)
			r.msg(m.Bounds)
		case 4:
			m.Rotation = r.f64()
		case 5:
			m.Opacity = r.f64()
		case 6:
			m.Path = new(Path)
			r.msg(m.Path)
		case 7:
			m.Fill = new(Fill)
			r.msg(m.Fill)
		case 8:
			m.Stroke = new(Stroke)
			r.msg(m.Stroke)
		case 9:
			m.Shadow = new(Shadow)
			r.msg(m.Shadow)
		case 10:
			m.Feather = new(Feather)
			r.msg(m.Feather)
		case 11:
			m.Text = new(Text)
			r.msg(m.Text)
		case 12:
			m.FlipMode = ElementFlipMode(r.i32())
		case 13:
			m.Hidden = r.boolean()
		case 14:
			m.AspectRatioLocked = r.boolean()
		case 15:
			p := new(Path)
			r.msg(p)
			m.TextLineMask = &ElementPathMask{Path: p}
		case 16:
			lm := new(LineFillMask)
			r.msg(lm)
			m.TextLineMask = &ElementLineFillMask{Mask: lm}
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}
