// Package slug derives URL-safe identifiers from app titles
package slug

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

const (
	// MaxLen bounds generated slugs; suffixed probes may run slightly longer
	MaxLen = 100

	fallbackSlug  = "app"
	randSuffixLen = 6
	randAlphabet  = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// fold chain strips diacritics and fullwidth forms before the ascii pass.
// Accented letters transliterate to their base form ("Café" -> "cafe")
// instead of dropping out entirely ("caf")
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			width.Fold,
		)
	},
}

// Make returns the base slug for a title.
// Runs of anything outside [a-z0-9] collapse to a single hyphen,
// leading and trailing hyphens are trimmed, and empty results
// fall back to "app"
func Make(title string) string {
	ch := foldPool.Get().(transform.Transformer)
	ch.Reset()
	folded, _, err := transform.String(ch, title)
	foldPool.Put(ch)
	if err != nil {
		folded = strings.ToLower(title)
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range folded {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}

	s := b.String()
	if s == "" {
		return fallbackSlug
	}
	if len(s) > MaxLen {
		s = strings.TrimRight(s[:MaxLen], "-")
	}
	return s
}

// Sequential probes base, base-1, base-2, ... until taken reports false.
// taken is typically an existence check against storage
func Sequential(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}
	for i := 1; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if !taken(candidate) {
			return candidate
		}
	}
}

// Randomized appends a 6-char lowercase alphanumeric suffix to base
func Randomized(base string) string {
	var sb strings.Builder
	sb.Grow(len(base) + 1 + randSuffixLen)
	sb.WriteString(base)
	sb.WriteByte('-')
	for i := 0; i < randSuffixLen; i++ {
		sb.WriteByte(randAlphabet[rand.Intn(len(randAlphabet))])
	}
	return sb.String()
}
