// Package slug derives URL-safe identifiers from display names. Names are
// mostly Russian, so the mapping transliterates Cyrillic before collapsing
// everything else to hyphens.
package slug

import (
	"strings"
	"unicode"
)

var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

// Make is deterministic and pure: the same name always yields the same
// slug. Runs of non-alphanumeric characters collapse to a single hyphen
// and leading/trailing hyphens are trimmed.
func Make(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if repl, ok := translit[r]; ok {
			b.WriteString(repl)
			continue
		}
		switch {
		case r >= 'a' && r <= 'z', unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}

	var out strings.Builder
	prevHyphen := false
	for _, r := range b.String() {
		if r == '-' {
			prevHyphen = true
			continue
		}
		if prevHyphen && out.Len() > 0 {
			out.WriteRune('-')
		}
		prevHyphen = false
		out.WriteRune(r)
	}
	return out.String()
}
