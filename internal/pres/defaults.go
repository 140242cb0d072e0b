package pres

// Canvas and styling defaults applied when the caller leaves a value
// unset.
var (
	// White is the default text color.
	White = Color{R: 1, G: 1, B: 1, A: 1}

	// Black is an opaque black, used for default backgrounds.
	Black = Color{A: 1}

	// DefaultCanvas is the slide size assumed throughout.
	DefaultCanvas = Size{Width: 1920, Height: 1080}
)

// DefaultLineHeightMultiple is single line spacing.
const DefaultLineHeightMultiple = 1.0

// NewSlide returns a slide on the default canvas.
func NewSlide() Slide {
	return Slide{Size: DefaultCanvas}
}

// DefaultTextElement returns a full-canvas text element with default
// styling: white text, left aligned, single spaced.
func DefaultTextElement(text string) TextElement {
	return TextElement{
		Name: "TextElement",
		Bounds: Rect{
			Size: DefaultCanvas,
		},
		Text:               text,
		TextColor:          White,
		Alignment:          AlignLeft,
		VerticalAlignment:  VAlignTop,
		LineHeightMultiple: DefaultLineHeightMultiple,
	}
}
