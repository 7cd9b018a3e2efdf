package localisation

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var colourCode = regexp.MustCompile(`§([WBGRbgYMTOlJPV])(.+?)§!`)

var colourClasses = map[string]string{
	"W": "white",
	"B": "blue",
	"G": "green",
	"R": "red",
	"b": "black",
	"g": "grey",
	"Y": "yellow",
	"M": "marine",
	"T": "teal",
	"O": "orange",
	"l": "lime",
	"J": "jade",
	"P": "purple",
	"V": "violet",
}

// Colourise turns §X...§! colour codes into span markup. Unknown codes are
// left untouched.
func Colourise(s string) string {
	return colourCode.ReplaceAllStringFunc(s, func(m string) string {
		parts := colourCode.FindStringSubmatch(m)
		return `<span class="` + colourClasses[parts[1]] + `">` + parts[2] + `</span>`
	})
}

var foldReplacer = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "Th",
	"ł", "l", "Ł", "L",
	"‘", "'", "’", "'",
	"“", `"`, "”", `"`,
	"–", "-", "—", "-",
)

// Fold reduces a display name to ASCII for page titles: "Rósande" becomes
// "Rosande". Characters with no ASCII form are dropped.
func Fold(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
		norm.NFC,
	)
	out, _, err := transform.String(t, foldReplacer.Replace(s))
	if err != nil {
		return s
	}
	return out
}
