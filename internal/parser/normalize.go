package parser

import "strings"

// NormalizeText maps full-width digits and Latin letters to their ASCII
// equivalents and full-width comma variants to an ASCII comma, so that all
// downstream pattern matching can assume ASCII digits and the "h" period
// marker. Idempotent: normalizing an already-normalized string is a no-op.
func NormalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= '０' && r <= '９': // full-width digits
			r -= 0xFEE0
		case r >= 'Ａ' && r <= 'Ｚ': // full-width upper-case letters
			r -= 0xFEE0
		case r >= 'ａ' && r <= 'ｚ': // full-width lower-case letters, including the ｈ marker
			r -= 0xFEE0
		case r == '、' || r == '，':
			r = ','
		}
		b.WriteRune(r)
	}
	return b.String()
}
