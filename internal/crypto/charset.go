package crypto

import "strings"

const (
	lowercaseChars   = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars       = "0123456789"
	punctuationChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	minimalChars     = "-_$%&"
	urlChars         = "-_.~"
)

// CharacterClass is a named pool of candidate characters.
type CharacterClass struct {
	Name  string
	Chars string
}

var (
	Lowercase   = CharacterClass{Name: "lower", Chars: lowercaseChars}
	Uppercase   = CharacterClass{Name: "upper", Chars: uppercaseChars}
	Digits      = CharacterClass{Name: "digits", Chars: digitChars}
	Punctuation = CharacterClass{Name: "punctuation", Chars: punctuationChars}
	Minimal     = CharacterClass{Name: "minimal", Chars: minimalChars}
	URLSafe     = CharacterClass{Name: "url", Chars: urlChars}
)

// Custom returns a class made of the given characters.
func Custom(chars string) CharacterClass {
	return CharacterClass{Name: "custom", Chars: chars}
}

// without returns the class pool with every excluded character removed.
// Duplicate characters collapse to one so each keeps equal weight.
func (c CharacterClass) without(exclude string) []rune {
	pool := make([]rune, 0, len(c.Chars))
	seen := make(map[rune]bool, len(c.Chars))
	for _, ch := range c.Chars {
		if seen[ch] || strings.ContainsRune(exclude, ch) {
			continue
		}
		seen[ch] = true
		pool = append(pool, ch)
	}
	return pool
}

// NormalizeExclusions joins the given values and drops whitespace, so
// "A B u" and ["A", "Bu"] both exclude A, B and u.
func NormalizeExclusions(values ...string) string {
	var sb strings.Builder
	for _, v := range values {
		for _, r := range v {
			if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
				continue
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
