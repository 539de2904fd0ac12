package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SymbolName turns a display text into a symbolic member name:
// diacritics stripped, upper-cased, spaces and hyphens replaced by
// underscores, anything else outside [A-Z0-9_] dropped.
//
//	"San Andrés de Sotavento" -> "SAN_ANDRES_DE_SOTAVENTO"
//	"Nariño"                  -> "NARINO"
func SymbolName(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, text)
	if err != nil {
		plain = text
	}

	plain = strings.ToUpper(strings.TrimSpace(plain))

	var b strings.Builder
	b.Grow(len(plain))
	for _, r := range plain {
		switch {
		case r == ' ' || r == '-':
			b.WriteByte('_')
		case r == '_', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}
