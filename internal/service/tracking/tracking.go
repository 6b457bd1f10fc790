// Package tracking generates and recognises human-readable tracking codes
// of the form #XXX-NNNN.
package tracking

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	prefixLen      = 3
	fallbackPrefix = "IMG"
	padding        = "X"
	minSuffix      = 1000
	maxSuffix      = 9999
)

// Pattern matches a status lookup command ("status #abc-1234") in free text.
// The first submatch is the code as typed.
var Pattern = regexp.MustCompile(`(?i)status\s+(#\w{3}-\d{3,5})`)

// IntN returns a uniform integer in [0, n).
type IntN func(n int) int

// Generator builds tracking codes. The zero value is not usable; use New.
type Generator struct {
	intN IntN
}

// New returns a Generator. A nil intN uses math/rand/v2.
func New(intN IntN) *Generator {
	if intN == nil {
		intN = rand.IntN
	}
	return &Generator{intN: intN}
}

// Code derives a tracking code from eventName. Codes are not unique.
func (g *Generator) Code(eventName string) string {
	n := minSuffix + g.intN(maxSuffix-minSuffix+1)
	return fmt.Sprintf("#%s-%d", Prefix(eventName), n)
}

// Prefix returns the three-letter prefix for eventName: diacritics stripped,
// non-letters dropped, uppercased, padded with X, or IMG when no letter remains.
func Prefix(eventName string) string {
	letters := make([]rune, 0, prefixLen)
	for _, r := range foldDiacritics(eventName) {
		if !isASCIILetter(r) {
			continue
		}
		letters = append(letters, unicode.ToUpper(r))
		if len(letters) == prefixLen {
			break
		}
	}

	if len(letters) == 0 {
		return fallbackPrefix
	}
	return string(letters) + strings.Repeat(padding, prefixLen-len(letters))
}

// Find extracts the tracking code from a status command in text.
func Find(text string) (string, bool) {
	m := Pattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return Normalize(m[1]), true
}

// Normalize uppercases a user-supplied code so lookups are case-insensitive.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
