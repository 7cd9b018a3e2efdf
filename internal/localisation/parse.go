package localisation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/louisbranch/anbennar-atlas/internal/script"
)

var gameLanguages = map[string]language.Tag{
	"english":      language.English,
	"french":       language.French,
	"german":       language.German,
	"spanish":      language.Spanish,
	"russian":      language.Russian,
	"polish":       language.Polish,
	"braz_por":     language.BrazilianPortuguese,
	"japanese":     language.Japanese,
	"korean":       language.Korean,
	"simp_chinese": language.SimplifiedChinese,
}

// ParseLanguage accepts a game language name ("english") or a BCP 47 tag.
func ParseLanguage(name string) (language.Tag, error) {
	name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "l_")))
	if tag, ok := gameLanguages[name]; ok {
		return tag, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("unknown language %q: %w", name, err)
	}
	return tag, nil
}

// ParseFile reads one localisation file. The language comes from the header
// line ("l_english:") or, failing that, the "_l_english.yml" file name suffix.
func ParseFile(name string, data []byte) (language.Tag, Table, error) {
	return parseFile(name, data)
}

func parseFile(name string, data []byte) (language.Tag, Table, error) {
	var text string
	if utf8.Valid(data) {
		text = strings.TrimPrefix(string(data), "\ufeff")
	} else {
		decoded, err := script.Decode(data)
		if err != nil {
			return language.Und, nil, err
		}
		text = decoded
	}

	header, body, _ := strings.Cut(text, "\n")
	tag, ok := headerLanguage(header)
	if !ok {
		tag, ok = filenameLanguage(name)
	}
	if !ok {
		return language.Und, nil, fmt.Errorf("%s: no language header", name)
	}
	return tag, parseEntries(body), nil
}

func headerLanguage(line string) (language.Tag, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "l_") || !strings.HasSuffix(line, ":") {
		return language.Und, false
	}
	tag, err := ParseLanguage(strings.TrimSuffix(line, ":"))
	return tag, err == nil
}

func filenameLanguage(name string) (language.Tag, bool) {
	base := strings.TrimSuffix(name, ".yml")
	i := strings.LastIndex(base, "_l_")
	if i < 0 {
		return language.Und, false
	}
	tag, err := ParseLanguage(base[i+3:])
	return tag, err == nil
}

// parseEntries reads KEY:0 "value" lines. The version digits are optional,
// inline comments are dropped, and a value runs to its last quote so quotes
// inside it survive. Entries too short to hold a quoted value read as "".
func parseEntries(body string) Table {
	out := Table{}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, rest, ok := strings.Cut(line, ":")
		if !ok || key == "" {
			continue
		}
		out[key] = entryValue(rest)
	}
	return out
}

func entryValue(rest string) string {
	if len(rest) < 4 {
		return ""
	}
	val := strings.TrimLeft(rest, "0123456789")
	val = strings.TrimLeft(val, " \t")
	if !strings.HasSuffix(val, `"`) {
		if i := strings.LastIndex(val, `"`); i >= 0 {
			val = val[:i]
		}
	}
	val = strings.TrimPrefix(val, `"`)
	val = strings.TrimSuffix(val, `"`)
	return val
}
