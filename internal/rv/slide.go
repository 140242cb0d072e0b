package rv

// TextScroller animates text elements across the slide.
type TextScroller struct {
	ShouldScroll      bool    // field 1
	ScrollRate        float64 // field 2
	ShouldLoop        bool    // field 3
	ShouldFadeTop     bool    // field 4
	ShouldFadeBottom  bool    // field 5
	StartsWithElement bool    // field 6

	unknown []byte
}

func (m *TextScroller) marshal(b []byte) []byte {
	b = appendBool(b, 1, m.ShouldScroll)
	b = appendDouble(b, 2, m.ScrollRate)
	b = appendBool(b, 3, m.ShouldLoop)
	b = appendBool(b, 4, m.ShouldFadeTop)
	b = appendBool(b, 5, m.ShouldFadeBottom)
	b = appendBool(b, 6, m.StartsWithElement)
	return append(b, m.unknown...)
}

func (m *TextScroller) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.ShouldScroll = r.boolean()
		case 2:
			m.ScrollRate = r.f64()
		case 3:
			m.ShouldLoop = r.boolean()
		case 4:
			m.ShouldFadeTop = r.boolean()
		case 5:
			m.ShouldFadeBottom = r.boolean()
		case 6:
			m.StartsWithElement = r.boolean()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// SlideElement wraps a graphics element with slide-level behavior.
type SlideElement struct {
	Element      *Element      // field 1
	Info         int32         // field 2
	RevealType   int32         // field 3
	TextScroller *TextScroller // field 4

	unknown []byte
}

func (m *SlideElement) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.Element)
	b = appendInt32(b, 2, m.Info)
	b = appendInt32(b, 3, m.RevealType)
	b = appendMsg(b, 4, m.TextScroller)
	return append(b, m.unknown...)
}

func (m *SlideElement) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Element = new(Element)
			r.msg(m.Element)
		case 2:
			m.Info = r.i32()
		case 3:
			m.RevealType = r.i32()
		case 4:
			m.TextScroller = new(TextScroller)
			r.msg(m.TextScroller)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Slide is the renderable canvas behind a cue.
type Slide struct {
	Elements             []*SlideElement   // field 1
	ElementBuildOrder    []*UUID           // field 2
	Guidelines           []*AlignmentGuide // field 3
	DrawsBackgroundColor bool              // field 4
	BackgroundColor      *Color            // field 5
	Size                 *Size             // field 6
	UUID                 *UUID             // field 7

	unknown []byte
}

func (m *Slide) marshal(b []byte) []byte {
	b = appendMsgs(b, 1, m.Elements)
	b = appendMsgs(b, 2, m.ElementBuildOrder)
	b = appendMsgs(b, 3, m.Guidelines)
	b = appendBool(b, 4, m.DrawsBackgroundColor)
	b = appendMsg(b, 5, m.BackgroundColor)
	b = appendMsg(b, 6, m.Size)
	b = appendMsg(b, 7, m.UUID)
	return append(b, m.unknown...)
}

func (m *Slide) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			e := new(SlideElement)
			r.msg(e)
			m.Elements = append(m.Elements, e)
		case 2:
			u := new(UUID)
			r.msg(u)
			m.ElementBuildOrder = append(m.ElementBuildOrder, u)
		case 3:
			g := new(AlignmentGuide)
			r.msg(g)
			m.Guidelines = append(m.Guidelines, g)
		case 4:
			m.DrawsBackgroundColor = r.boolean()
		case 5:
			m.BackgroundColor = new(Color)
			r.msg(m.BackgroundColor)
		case 6:
			m.Size = new(Size)
			r.msg(m.Size)
		case 7:
			m.UUID = new(UUID)
			r.msg(m.UUID)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Notes is operator-facing rich text attached to a slide.
type Notes struct {
	RtfData    []byte          // field 1
	Attributes *TextAttributes // field 2

	unknown []byte
}

func (m *Notes) marshal(b []byte) []byte {
	b = appendBytes(b, 1, m.RtfData)
	b = appendMsg(b, 2, m.Attributes)
	return append(b, m.unknown...)
}

func (m *Notes) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.RtfData = r.bytes()
		case 2:
			m.Attributes = new(TextAttributes)
			r.msg(m.Attributes)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// PresentationSlide pairs a base slide with presentation metadata.
type PresentationSlide struct {
	BaseSlide          *Slide            // field 1
	Notes              *Notes            // field 2
	TemplateGuidelines []*AlignmentGuide // field 3
	ChordChart         *URL              // field 4

	unknown []byte
}

func (m *PresentationSlide) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.BaseSlide)
	b = appendMsg(b, 2, m.Notes)
	b = appendMsgs(b, 3, m.TemplateGuidelines)
	b = appendMsg(b, 4, m.ChordChart)
	return append(b, m.unknown...)
}

func (m *PresentationSlide) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.BaseSlide = new(Slide)
			r.msg(m.BaseSlide)
		case 2:
			m.Notes = new(Notes)
			r.msg(m.Notes)
		case 3:
			g := new(AlignmentGuide)
			r.msg(g)
			m.TemplateGuidelines = append(m.TemplateGuidelines, g)
		case 4:
			m.ChordChart = new(URL)
			r.msg(m.ChordChart)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}
