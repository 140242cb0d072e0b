package librarycache

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Entry is one library document candidate.
type Entry struct {
	Title string
	Path  string
}

// Scan walks dir for presentation documents and returns them sorted by
// title. A missing directory yields an empty slice.
func Scan(dir string) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".pro") {
			return nil
		}
		title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		entries = append(entries, Entry{Title: title, Path: path})
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan library %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Title < entries[j].Title })
	return entries, nil
}

// NormalizeTitle folds a title into its comparison key: lowercase,
// diacritics stripped, punctuation removed, whitespace collapsed.
func NormalizeTitle(s string) string {
	decomposed := norm.NFD.String(strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// Combining marks left over from decomposition.
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Score rates how well a query title matches a candidate title, from 0
// (unrelated) to 1 (same after normalization).
func Score(query, candidate string) float64 {
	q := NormalizeTitle(query)
	c := NormalizeTitle(candidate)
	if q == "" || c == "" {
		return 0
	}
	if q == c {
		return 1
	}

	qTokens := tokenSet(q)
	cTokens := tokenSet(c)
	shared := 0
	for token := range qTokens {
		if _, ok := cTokens[token]; ok {
			shared++
		}
	}
	dice := float64(2*shared) / float64(len(qTokens)+len(cTokens))

	// A full-phrase containment beats partial token overlap: "amazing
	// grace" against "amazing grace my chains are gone" should score
	// higher than its Dice coefficient alone.
	if strings.Contains(c, q) || strings.Contains(q, c) {
		contained := 0.5 + 0.5*float64(min(len(q), len(c)))/float64(max(len(q), len(c)))
		if contained > dice {
			return contained
		}
	}
	return dice
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range strings.Fields(s) {
		set[token] = struct{}{}
	}
	return set
}

// Match returns the best-scoring entry for query, or ok=false when no
// candidate reaches minScore. Ties break toward the shorter title.
func Match(query string, entries []Entry, minScore float64) (Entry, float64, bool) {
	var (
		best      Entry
		bestScore float64
		found     bool
	)
	for _, entry := range entries {
		score := Score(query, entry.Title)
		if score < minScore {
			continue
		}
		if !found || score > bestScore || (score == bestScore && len(entry.Title) < len(best.Title)) {
			best = entry
			bestScore = score
			found = true
		}
	}
	return best, bestScore, found
}

// Resolver combines fuzzy matching with selection history.
type Resolver struct {
	// Store is optional; without it resolution is purely fuzzy.
	Store    *Store
	MinScore float64
}

// Resolve maps title to a library entry. A remembered pick that still
// exists on disk wins; otherwise the best fuzzy match is returned and
// remembered for next time.
func (r *Resolver) Resolve(ctx context.Context, title string, entries []Entry) (Entry, bool, error) {
	if r.Store != nil {
		sel, err := r.Store.Lookup(ctx, title)
		if err != nil {
			return Entry{}, false, err
		}
		if sel != nil {
			if _, statErr := os.Stat(sel.Path); statErr == nil {
				entry := Entry{
					Title: strings.TrimSuffix(filepath.Base(sel.Path), filepath.Ext(sel.Path)),
					Path:  sel.Path,
				}
				if err := r.Store.Record(ctx, title, sel.Path); err != nil {
					return Entry{}, false, err
				}
				return entry, true, nil
			}
			// Stale history entry: the document moved or was deleted.
			if _, err := r.Store.Forget(ctx, title); err != nil {
				return Entry{}, false, err
			}
		}
	}

	entry, _, ok := Match(title, entries, r.MinScore)
	if !ok {
		return Entry{}, false, nil
	}
	if r.Store != nil {
		if err := r.Store.Record(ctx, title, entry.Path); err != nil {
			return Entry{}, false, err
		}
	}
	return entry, true, nil
}
