// Package rtf encodes and decodes the Cocoa-flavored RTF payloads that
// text elements carry. Encoding produces a complete document from plain
// text; decoding is a best-effort extraction that tolerates whatever a
// host application wrote.
package rtf

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Alignment is paragraph alignment within the encoded document.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustified
)

// Options style an encoded document.
type Options struct {
	FontName  string  // PostScript font name, default Helvetica
	FontSize  float64 // points, default 72
	Alignment Alignment
}

const defaultFontSize = 72

// superscriptDigits maps the Unicode superscript digits to their ASCII
// forms, indexed by digit value.
var superscriptDigits = map[rune]byte{
	'⁰': '0', '¹': '1', '²': '2', '³': '3', '⁴': '4',
	'⁵': '5', '⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9',
}

var normalToSuperscript = map[byte]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
}

// Encode produces a complete RTF document containing text with default
// styling. The output is well formed for any input, including empty.
func Encode(text string) []byte {
	return EncodeWith(text, Options{})
}

// EncodeWith produces a complete RTF document with the given styling.
//
// Unicode superscript digits become {\super N} runs with ASCII digits,
// which is how the host application represents verse numbers. Newlines
// become paragraph breaks.
func EncodeWith(text string, opts Options) []byte {
	font := opts.FontName
	if font == "" {
		font = "Helvetica"
	}
	size := opts.FontSize
	if size <= 0 {
		size = defaultFontSize
	}

	var b bytes.Buffer
	b.WriteString(`{\rtf1\ansi\ansicpg1252\cocoartf2761` + "\n")
	b.WriteString(`\cocoatextscaling0\cocoaplatform0{\fonttbl\f0\fswiss\fcharset0 `)
	b.WriteString(font)
	b.WriteString(";}\n")
	b.WriteString(`{\colortbl;\red255\green255\blue255;\red255\green255\blue255;}` + "\n")
	b.WriteString(`{\*\expandedcolortbl;;\csgenericrgb\c100000\c100000\c100000;}` + "\n")
	b.WriteString(`\pard\pardirnatural`)
	b.WriteString(alignmentControl(opts.Alignment))
	b.WriteString(`\partightenfactor0` + "\n\n")
	// RTF font sizes are half points.
	b.WriteString(`\f0\fs`)
	b.WriteString(strconv.Itoa(int(size * 2)))
	b.WriteString(`\slmult1 \cf2 `)
	writeBody(&b, text)
	b.WriteString("}")
	return b.Bytes()
}

func alignmentControl(a Alignment) string {
	switch a {
	case AlignCenter:
		return `\qc`
	case AlignRight:
		return `\qr`
	case AlignJustified:
		return `\qj`
	default:
		return `\ql`
	}
}

func writeBody(b *bytes.Buffer, text string) {
	var super []byte
	flush := func() {
		if len(super) == 0 {
			return
		}
		b.WriteString(`{\super `)
		b.Write(super)
		b.WriteString("}")
		super = super[:0]
	}
	for _, r := range text {
		if d, ok := superscriptDigits[r]; ok {
			super = append(super, d)
			continue
		}
		flush()
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '{':
			b.WriteString(`\{`)
		case '}':
			b.WriteString(`\}`)
		case '\n':
			b.WriteString(`\par `)
		case '\r':
		default:
			if r < 0x80 {
				b.WriteByte(byte(r))
			} else {
				// Non-ASCII goes out as a signed 16-bit unicode escape.
				b.WriteString(`\u`)
				b.WriteString(strconv.Itoa(int(int16(r))))
				b.WriteString(` `)
			}
		}
	}
	flush()
}

var (
	superRe      = regexp.MustCompile(`\{\\super ([0-9]+)\}`)
	groupRe      = regexp.MustCompile(`\{\\\*?\\?(fonttbl|colortbl|expandedcolortbl|stylesheet|info)(?:[^{}]|\{[^{}]*\})*\}`)
	breakRe      = regexp.MustCompile(`\\(par\b|line\b)`)
	unicodeRe    = regexp.MustCompile(`\\u(-?[0-9]+) ?`)
	hexRe        = regexp.MustCompile(`\\'([0-9a-fA-F]{2})`)
	controlRe    = regexp.MustCompile(`\\[a-zA-Z]+-?[0-9]* ?`)
)

// Decode extracts plain text from an RTF document. It reports false for
// input that is not RTF or that contains no visible text. Superscript
// runs come back as Unicode superscript digits.
func Decode(data []byte) (string, bool) {
	s := strings.TrimSpace(string(data))
	if !strings.HasPrefix(s, `{\rtf`) {
		return "", false
	}

	// Escaped literals first so later passes cannot eat them.
	s = strings.ReplaceAll(s, `\\`, "\x00")
	s = strings.ReplaceAll(s, `\{`, "\x01")
	s = strings.ReplaceAll(s, `\}`, "\x02")

	s = superRe.ReplaceAllStringFunc(s, func(m string) string {
		digits := superRe.FindStringSubmatch(m)[1]
		var out strings.Builder
		for i := 0; i < len(digits); i++ {
			out.WriteRune(normalToSuperscript[digits[i]])
		}
		return out.String()
	})
	s = groupRe.ReplaceAllString(s, "")
	s = breakRe.ReplaceAllString(s, "\n")
	s = unicodeRe.ReplaceAllStringFunc(s, func(m string) string {
		n, err := strconv.Atoi(unicodeRe.FindStringSubmatch(m)[1])
		if err != nil {
			return ""
		}
		if n < 0 {
			n += 65536
		}
		return string(rune(n))
	})
	s = hexRe.ReplaceAllStringFunc(s, func(m string) string {
		hex := hexRe.FindStringSubmatch(m)[1]
		b := byte(hexVal(hex[0])<<4 | hexVal(hex[1]))
		r := charmap.Windows1252.DecodeByte(b)
		return string(r)
	})
	s = controlRe.ReplaceAllString(s, "")
	s = strings.NewReplacer("{", "", "}", "").Replace(s)

	s = strings.ReplaceAll(s, "\x00", `\`)
	s = strings.ReplaceAll(s, "\x01", "{")
	s = strings.ReplaceAll(s, "\x02", "}")

	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		kept = append(kept, strings.TrimSpace(line))
	}
	for len(kept) > 0 && kept[0] == "" {
		kept = kept[1:]
	}
	for len(kept) > 0 && kept[len(kept)-1] == "" {
		kept = kept[:len(kept)-1]
	}
	out := strings.Join(kept, "\n")
	if strings.TrimSpace(out) == "" {
		return "", false
	}
	return out, true
}

func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
