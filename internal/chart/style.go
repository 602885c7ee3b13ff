package chart

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style holds the alpha levels used to tell frontier points from dominated ones
// and to fill bars. Hue always comes from the series or measure name.
type Style struct {
	FrontierFill    float64 `yaml:"frontier_fill"`
	FrontierBorder  float64 `yaml:"frontier_border"`
	DominatedFill   float64 `yaml:"dominated_fill"`
	DominatedBorder float64 `yaml:"dominated_border"`
	BarFill         float64 `yaml:"bar_fill"`
	BarBorder       float64 `yaml:"bar_border"`
}

func DefaultStyle() Style {
	return Style{
		FrontierFill:    0.5,
		FrontierBorder:  0.9,
		DominatedFill:   0.1,
		DominatedBorder: 0.2,
		BarFill:         0.3,
		BarBorder:       1,
	}
}

// TitleCase turns identifiers such as "true_positive_rate_parity" into
// "True Positive Rate Parity". Only whitespace separates words, so
// "non-neural" becomes "Non-neural".
func TitleCase(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		r, n := utf8.DecodeRuneInString(s)
		if unicode.IsSpace(r) {
			b.WriteString(s[:n])
			s = s[n:]
			continue
		}
		end := strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			end = len(s)
		}
		word := s[:end]
		s = s[end:]

		// leading punctuation is kept; the first letter or digit is raised
		start := strings.IndexFunc(word, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		})
		if start < 0 {
			b.WriteString(word)
			continue
		}
		_, size := utf8.DecodeRuneInString(word[start:])
		b.WriteString(word[:start])
		b.WriteString(upper.String(word[start : start+size]))
		b.WriteString(lower.String(word[start+size:]))
	}
	return b.String()
}
