package playlist

import (
	"regexp"
	"strings"
)

// Kind selects the sanitization rules for an item name. Song titles
// are quoted verbatim, scripture titles follow a house style, and
// everything else gets a conservative cleanup.
type Kind int

const (
	KindText Kind = iota
	KindLyrics
	KindScripture
)

// KindForCategory maps a presentation library category to a kind.
func KindForCategory(category string) Kind {
	switch strings.ToLower(category) {
	case "song", "lyrics":
		return KindLyrics
	case "scripture":
		return KindScripture
	default:
		return KindText
	}
}

var (
	scripturePrefixRe = regexp.MustCompile(`(?i)^(scripture reading|scripture|reading)\b[\s:\-]*`)
	verseColonRe      = regexp.MustCompile(`(\d):(\d)`)
)

// Sanitize rewrites an item name into a safe, stable filename stem.
// It is deterministic and idempotent: sanitizing an already sanitized
// name returns it unchanged. An empty result falls back to "Untitled".
func Sanitize(name string, kind Kind) string {
	s := name
	switch kind {
	case KindLyrics:
		// Song titles pass through. Only the filesystem cleanup below
		// applies.
	case KindScripture:
		s = scripturePrefixRe.ReplaceAllString(s, "")
		s = stripParentheticals(s)
		s = verseColonRe.ReplaceAllString(s, "${1}v${2}")
	default:
		s = stripParentheticals(s)
		s = strings.ReplaceAll(s, ": ", " - ")
		s = strings.ReplaceAll(s, ":", " - ")
	}

	s = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return -1
		}
		return r
	}, s)

	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "Untitled"
	}
	return s
}

// stripParentheticals removes parenthesized runs, nesting included. A
// stray closing paren at top level is discarded.
func stripParentheticals(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
