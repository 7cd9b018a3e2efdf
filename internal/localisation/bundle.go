// Package localisation loads the game's display strings.
//
// Strings live in l_<language> files. A Bundle keeps one table per language
// and resolves lookups against the requested language first, then English.
package localisation

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// BaseLanguage is the language every lookup falls back to.
var BaseLanguage = language.English

// Localiser resolves display strings by key.
type Localiser interface {
	Lookup(key string) (string, bool)
}

// Table holds the strings of one language.
type Table map[string]string

// Lookup implements Localiser.
func (t Table) Lookup(key string) (string, bool) {
	v, ok := t[key]
	return v, ok
}

// Bundle contains every language table found in a localisation directory.
type Bundle struct {
	tables map[language.Tag]Table
}

// NewBundle builds a bundle from ready tables, mostly for tests.
func NewBundle(tables map[language.Tag]Table) *Bundle {
	b := &Bundle{tables: map[language.Tag]Table{}}
	for tag, table := range tables {
		b.tables[tag] = copyTable(table)
	}
	return b
}

// LoadFromFS reads every .yml file in fsys. Files under a "replace"
// directory load last so their entries win. A file that cannot be read or
// has no language is passed to skip and ignored.
func LoadFromFS(fsys fs.FS, skip func(path string, err error)) (*Bundle, error) {
	var paths []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(path.Ext(p), ".yml") {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk localisation: %w", err)
	}
	sort.Slice(paths, func(i, j int) bool {
		ri, rj := isReplacement(paths[i]), isReplacement(paths[j])
		if ri != rj {
			return rj
		}
		return paths[i] < paths[j]
	})

	bundle := &Bundle{tables: map[language.Tag]Table{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			if skip != nil {
				skip(p, err)
			}
			continue
		}
		tag, entries, err := parseFile(path.Base(p), data)
		if err != nil {
			if skip != nil {
				skip(p, err)
			}
			continue
		}
		bundle.add(tag, entries)
	}
	return bundle, nil
}

func isReplacement(p string) bool {
	for _, dir := range strings.Split(path.Dir(p), "/") {
		if dir == "replace" {
			return true
		}
	}
	return false
}

func (b *Bundle) add(tag language.Tag, entries Table) {
	table, ok := b.tables[tag]
	if !ok {
		table = Table{}
		b.tables[tag] = table
	}
	for key, value := range entries {
		table[key] = value
	}
}

// HasLanguage reports whether the language exists in this bundle.
func (b *Bundle) HasLanguage(tag language.Tag) bool {
	if b == nil {
		return false
	}
	_, ok := b.tables[tag]
	return ok
}

// Languages returns the loaded languages sorted by tag.
func (b *Bundle) Languages() []language.Tag {
	if b == nil {
		return nil
	}
	out := make([]language.Tag, 0, len(b.tables))
	for tag := range b.tables {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Len returns the number of entries for a language.
func (b *Bundle) Len(tag language.Tag) int {
	if b == nil {
		return 0
	}
	return len(b.tables[tag])
}

// LanguageMessages returns a copy of one language's exact table.
func (b *Bundle) LanguageMessages(tag language.Tag) Table {
	if b == nil {
		return Table{}
	}
	return copyTable(b.tables[tag])
}

// Message returns one string with base-language fallback.
func (b *Bundle) Message(tag language.Tag, key string) (string, bool) {
	if b == nil || key == "" {
		return "", false
	}
	if table, ok := b.tables[tag]; ok {
		if value, exists := table[key]; exists {
			return value, true
		}
	}
	if tag != BaseLanguage {
		if table, ok := b.tables[BaseLanguage]; ok {
			value, exists := table[key]
			return value, exists
		}
	}
	return "", false
}

// For returns a Localiser bound to one language.
func (b *Bundle) For(tag language.Tag) Localiser {
	return view{bundle: b, tag: tag}
}

type view struct {
	bundle *Bundle
	tag    language.Tag
}

func (v view) Lookup(key string) (string, bool) {
	return v.bundle.Message(v.tag, key)
}

func copyTable(source Table) Table {
	out := make(Table, len(source))
	for key, value := range source {
		out[key] = value
	}
	return out
}
