package rv

// Font names a typeface for a run of text.
type Font struct {
	Name   string  // field 1, PostScript name
	Size   float64 // field 2
	Family string  // field 3
	Face   string  // field 4
	Bold   bool    // field 5
	Italic bool    // field 6

	unknown []byte
}

func (m *Font) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendDouble(b, 2, m.Size)
	b = appendString(b, 3, m.Family)
	b = appendString(b, 4, m.Face)
	b = appendBool(b, 5, m.Bold)
	b = appendBool(b, 6, m.Italic)
	return append(b, m.unknown...)
}

func (m *Font) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Name = r.str()
		case 2:
			m.Size = r.f64()
		case 3:
			m.Family = r.str()
		case 4:
			m.Face = r.str()
		case 5:
			m.Bold = r.boolean()
		case 6:
			m.Italic = r.boolean()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// TextAlignment is horizontal paragraph alignment.
type TextAlignment int32

const (
	AlignLeft      TextAlignment = 0
	AlignRight     TextAlignment = 1
	AlignCenter    TextAlignment = 2
	AlignJustified TextAlignment = 3
)

// TabStop positions a tab within a paragraph.
type TabStop struct {
	Location  float64       // field 1
	Alignment TextAlignment // field 2

	unknown []byte
}

func (m *TabStop) marshal(b []byte) []byte {
	b = appendDouble(b, 1, m.Location)
	b = appendInt32(b, 2, int32(m.Alignment))
	return append(b, m.unknown...)
}

func (m *TabStop) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Location = r.f64()
		case 2:
			m.Alignment = TextAlignment(r.i32())
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// TextList describes bullet or numbered list styling.
type TextList struct {
	Enabled     bool   // field 1
	MarkerStyle int32  // field 2
	Prefix      string // field 3

	unknown []byte
}

func (m *TextList) marshal(b []byte) []byte {
	b = appendBool(b, 1, m.Enabled)
	b = appendInt32(b, 2, m.MarkerStyle)
	b = appendString(b, 3, m.Prefix)
	return append(b, m.unknown...)
}

func (m *TextList) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Enabled = r.boolean()
		case 2:
			m.MarkerStyle = r.i32()
		case 3:
			m.Prefix = r.str()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Paragraph holds paragraph-level typography.
type Paragraph struct {
	Alignment          TextAlignment // field 1
	FirstLineHeadIndent float64      // field 2
	HeadIndent         float64       // field 3
	TailIndent         float64       // field 4
	LineHeightMultiple float64       // field 5
	MaximumLineHeight  float64       // field 6
	MinimumLineHeight  float64       // field 7
	LineSpacing        float64       // field 8
	ParagraphSpacing   float64       // field 9
	SpacingBefore      float64       // field 10
	TabStops           []*TabStop    // field 11
	DefaultTabInterval float64       // field 12
	List               *TextList     // field 13

	unknown []byte
}

func (m *Paragraph) marshal(b []byte) []byte {
	b = appendInt32(b, 1, int32(m.Alignment))
	b = appendDouble(b, 2, m.FirstLineHeadIndent)
	b = appendDouble(b, 3, m.HeadIndent)
	b = appendDouble(b, 4, m.TailIndent)
	b = appendDouble(b, 5, m.LineHeightMultiple)
	b = appendDouble(b, 6, m.MaximumLineHeight)
	b = appendDouble(b, 7, m.MinimumLineHeight)
	b = appendDouble(b, 8, m.LineSpacing)
	b = appendDouble(b, 9, m.ParagraphSpacing)
	b = appendDouble(b, 10, m.SpacingBefore)
	b = appendMsgs(b, 11, m.TabStops)
	b = appendDouble(b, 12, m.DefaultTabInterval)
	b = appendMsg(b, 13, m.List)
	return append(b, m.unknown...)
}

func (m *Paragraph) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Alignment = TextAlignment(r.i32())
		case 2:
			m.FirstLineHeadIndent = r.f64()
		case 3:
			m.HeadIndent = r.f64()
		case 4:
			m.TailIndent = r.f64()
		case 5:
			m.LineHeightMultiple = r.f64()
		case 6:
			m.MaximumLineHeight = r.f64()
		case 7:
			m.MinimumLineHeight = r.f64()
		case 8:
			m.LineSpacing = r.f64()
		case 9:
			m.ParagraphSpacing = r.f64()
		case 10:
			m.SpacingBefore = r.f64()
		case 11:
			ts := new(TabStop)
			r.msg(ts)
			m.TabStops = append(m.TabStops, ts)
		case 12:
			m.DefaultTabInterval = r.f64()
		case 13:
			m.List = new(TextList)
			r.msg(m.List)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// CustomAttributeValue is the value oneof of a custom attribute.
type CustomAttributeValue interface{ isCustomAttributeValue() }

// CustomAttributeCapitalization upper- or lower-cases a range.
type CustomAttributeCapitalization struct {
	Mode int32 // field 2 on CustomAttribute
}

func (*CustomAttributeCapitalization) isCustomAttributeValue() {}

// CustomAttributeFontReference substitutes a font over a range.
type CustomAttributeFontReference struct {
	Font *Font // field 3 on CustomAttribute
}

func (*CustomAttributeFontReference) isCustomAttributeValue() {}

// CustomAttributeOriginalFontSize remembers the pre-scaling size.
type CustomAttributeOriginalFontSize struct {
	Size float64 // field 4 on CustomAttribute
}

func (*CustomAttributeOriginalFontSize) isCustomAttributeValue() {}

// CustomAttribute annotates a character range of attributed text.
type CustomAttribute struct {
	Range *IntRange            // field 1
	Value CustomAttributeValue // oneof, fields 2..4

	unknown []byte
}

func (m *CustomAttribute) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.Range)
	switch v := m.Value.(type) {
	case *CustomAttributeCapitalization:
		b = appendInt32(b, 2, v.Mode)
	case *CustomAttributeFontReference:
		b = appendMsg(b, 3, v.Font)
	case *CustomAttributeOriginalFontSize:
		b = appendDouble(b, 4, v.Size)
	case nil:
	}
	return append(b, m.unknown...)
}

func (m *CustomAttribute) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Range = new(IntRange)
			r.msg(m.Range)
		case 2:
			m.Value = &CustomAttributeCapitalization{Mode: r.i32()}
		case 3:
			f := new(Font)
			r.msg(f)
			m.Value = &CustomAttributeFontReference{Font: f}
		case 4:
			m.Value = &CustomAttributeOriginalFontSize{Size: r.f64()}
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// TextAttributesFill is the text fill oneof.
type TextAttributesFill interface{ isTextAttributesFill() }

// TextSolidFill fills glyphs with a solid color.
type TextSolidFill struct {
	Color *Color // field 2 on TextAttributes
}

func (*TextSolidFill) isTextAttributesFill() {}

// TextGradientFill fills glyphs with a gradient.
type TextGradientFill struct {
	Gradient *Gradient // field 3 on TextAttributes
}

func (*TextGradientFill) isTextAttributesFill() {}

// TextAttributes is run-level typography for attributed text.
type TextAttributes struct {
	Font             *Font              // field 1
	Fill             TextAttributesFill // oneof, fields 2..3
	UnderlineStyle   int32              // field 4
	UnderlineColor   *Color             // field 5
	StrikethroughStyle int32            // field 6
	StrikethroughColor *Color           // field 7
	StrokeWidth      float64            // field 8
	StrokeColor      *Color             // field 9
	Kerning          float64            // field 10
	BaselineOffset   float64            // field 11
	Superscript      int32              // field 12
	CustomAttributes []*CustomAttribute // field 13

	unknown []byte
}

func (m *TextAttributes) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.Font)
	switch v := m.Fill.(type) {
	case *TextSolidFill:
		b = appendMsg(b, 2, v.Color)
	case *TextGradientFill:
		b = appendMsg(b, 3, v.Gradient)
	case nil:
	}
	b = appendInt32(b, 4, m.UnderlineStyle)
	b = appendMsg(b, 5, m.UnderlineColor)
	b = appendInt32(b, 6, m.StrikethroughStyle)
	b = appendMsg(b, 7, m.StrikethroughColor)
	b = appendDouble(b, 8, m.StrokeWidth)
	b = appendMsg(b, 9, m.StrokeColor)
	b = appendDouble(b, 10, m.Kerning)
	b = appendDouble(b, 11, m.BaselineOffset)
	b = appendInt32(b, 12, m.Superscript)
	b = appendMsgs(b, 13, m.CustomAttributes)
	return append(b, m.unknown...)
}

func (m *TextAttributes) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Font = new(Font)
			r.msg(m.Font)
		case 2:
			c := new(Color)
			r.msg(c)
			m.Fill = &TextSolidFill{Color: c}
		case 3:
			g := new(Gradient)
			r.msg(g)
			m.Fill = &TextGradientFill{Gradient: g}
		case 4:
			m.UnderlineStyle = r.i32()
		case 5:
			m.UnderlineColor = new(Color)
			r.msg(m.UnderlineColor)
		case 6:
			m.StrikethroughStyle = r.i32()
		case 7:
			m.StrikethroughColor = new(Color)
			r.msg(m.StrikethroughColor)
		case 8:
			m.StrokeWidth = r.f64()
		case 9:
			m.StrokeColor = new(Color)
			r.msg(m.StrokeColor)
		case 10:
			m.Kerning = r.f64()
		case 11:
			m.BaselineOffset = r.f64()
		case 12:
			m.Superscript = r.i32()
		case 13:
			ca := new(CustomAttribute)
			r.msg(ca)
			m.CustomAttributes = append(m.CustomAttributes, ca)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// TextVerticalAlignment positions text within its element bounds.
type TextVerticalAlignment int32

const (
	VerticalAlignTop    TextVerticalAlignment = 0
	VerticalAlignMiddle TextVerticalAlignment = 1
	VerticalAlignBottom TextVerticalAlignment = 2
)

// TextScaleBehavior controls automatic text fitting.
type TextScaleBehavior int32

const (
	ScaleNone              TextScaleBehavior = 0
	ScaleFontSize          TextScaleBehavior = 1
	ScaleAdjustHeight      TextScaleBehavior = 2
	ScaleAdjustWidthHeight TextScaleBehavior = 3
)

// TextTransform rewrites character case at render time.
type TextTransform int32

const (
	TransformNone       TextTransform = 0
	TransformUppercase  TextTransform = 1
	TransformLowercase  TextTransform = 2
	TransformCapitalize TextTransform = 3
)

// ChordPro carries chord chart text attached to a text element.
type ChordPro struct {
	Enabled bool   // field 1
	Notation string // field 2

	unknown []byte
}

func (m *ChordPro) marshal(b []byte) []byte {
	b = appendBool(b, 1, m.Enabled)
	b = appendString(b, 2, m.Notation)
	return append(b, m.unknown...)
}

func (m *ChordPro) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Enabled = r.boolean()
		case 2:
			m.Notation = r.str()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Text is the rich-text payload of a slide element. RtfData holds the
// authoritative attributed string; Attributes and Paragraph mirror its
// base styling for fast inspection.
type Text struct {
	RtfData           []byte                // field 1
	Attributes        *TextAttributes       // field 2
	ParagraphStyle    *Paragraph            // field 3
	VerticalAlignment TextVerticalAlignment // field 4
	ScaleBehavior     TextScaleBehavior     // field 5
	Transform         TextTransform         // field 6
	Margins           *EdgeInsets           // field 7
	IsSuperscriptStandardized bool          // field 8
	ChordPro          *ChordPro             // field 9

	unknown []byte
}

func (m *Text) marshal(b []byte) []byte {
	b = appendBytes(b, 1, m.RtfData)
	b = appendMsg(b, 2, m.Attributes)
	b = appendMsg(b, 3, m.ParagraphStyle)
	b = appendInt32(b, 4, int32(m.VerticalAlignment))
	b = appendInt32(b, 5, int32(m.ScaleBehavior))
	b = appendInt32(b, 6, int32(m.Transform))
	b = appendMsg(b, 7, m.Margins)
	b = appendBool(b, 8, m.IsSuperscriptStandardized)
	b = appendMsg(b, 9, m.ChordPro)
	return append(b, m.unknown...)
}

func (m *Text) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.RtfData = r.bytes()
		case 2:
			m.Attributes = new(TextAttributes)
			r.msg(m.Attributes)
		case 3:
			m.ParagraphStyle = new(Paragraph)
			r.msg(m.ParagraphStyle)
		case 4:
			m.VerticalAlignment = TextVerticalAlignment(r.i32())
		case 5:
			m.ScaleBehavior = TextScaleBehavior(r.i32())
		case 6:
			m.Transform = TextTransform(r.i32())
		case 7:
			m.Margins = new(EdgeInsets)
			r.msg(m.Margins)
		case 8:
			m.IsSuperscriptStandardized = r.boolean()
		case 9:
			m.ChordPro = new(ChordPro)
			r.msg(m.ChordPro)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}
