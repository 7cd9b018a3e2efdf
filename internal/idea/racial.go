package idea

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/louisbranch/anbennar-atlas/internal/modifier"
	"github.com/louisbranch/anbennar-atlas/internal/script"
	"github.com/louisbranch/anbennar-atlas/internal/source"
)

// RacialModifier is one racial administration or military bonus.
type RacialModifier struct {
	ID      string
	Title   string
	Effects []modifier.Effect
}

// ParseRacialModifiers reads the racial event modifiers: entries whose key
// ends with administration or military.
func ParseRacialModifiers(doc *script.Object) []RacialModifier {
	var out []RacialModifier
	for _, f := range doc.Fields() {
		if !strings.HasSuffix(f.Key, "administration") && !strings.HasSuffix(f.Key, "military") {
			continue
		}
		obj, err := f.Value.Object()
		if err != nil {
			continue
		}
		out = append(out, RacialModifier{
			ID:      f.Key,
			Title:   TitleCase(f.Key),
			Effects: modifier.Effects(obj, "picture"),
		})
	}
	return out
}

// ReadRacialModifiers parses the racial modifier file when present.
func ReadRacialModifiers(tree *source.Tree) ([]RacialModifier, error) {
	if !tree.Exists(source.RacialModifierFile) {
		return nil, nil
	}
	doc, err := tree.Document(source.RacialModifierFile)
	if err != nil {
		tree.Skip("racial_modifiers", source.RacialModifierFile, err)
		return nil, nil
	}
	return ParseRacialModifiers(doc), nil
}

// TitleCase turns an id into words: "half_orc_military" becomes
// "Half Orc Military".
func TitleCase(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
