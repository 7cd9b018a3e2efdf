// Package idea reads national idea groups and racial modifiers.
package idea

import (
	"strings"

	"github.com/louisbranch/anbennar-atlas/internal/localisation"
	"github.com/louisbranch/anbennar-atlas/internal/modifier"
	"github.com/louisbranch/anbennar-atlas/internal/script"
	"github.com/louisbranch/anbennar-atlas/internal/source"
)

// Set is a national idea group.
type Set struct {
	ID    string
	Name  string
	Tags  []string
	Start []modifier.Effect
	Bonus []modifier.Effect
	Ideas []Idea
}

// Idea is one of the ordered ideas of a group.
type Idea struct {
	ID          string
	Name        string
	Description string
	Effects     []modifier.Effect
}

// ParseSets reads an idea file. A group without a display name keeps an
// empty Name; an idea without one keeps its id.
func ParseSets(doc *script.Object, loc localisation.Localiser) []Set {
	if loc == nil {
		loc = localisation.Table{}
	}
	var out []Set
	for _, f := range doc.Fields() {
		body, err := f.Value.Object()
		if err != nil {
			continue
		}
		set := Set{ID: f.Key, Name: lookup(loc, f.Key, "")}
		for _, field := range body.Fields() {
			switch field.Key {
			case "start":
				set.Start = effects(field.Value)
			case "bonus":
				set.Bonus = effects(field.Value)
			case "free":
			case "trigger":
				set.Tags = append(set.Tags, triggerTags(field.Value)...)
			default:
				obj, err := field.Value.Object()
				if err != nil {
					continue
				}
				set.Ideas = append(set.Ideas, Idea{
					ID:          field.Key,
					Name:        lookup(loc, field.Key, field.Key),
					Description: lookup(loc, field.Key+"_desc", ""),
					Effects:     modifier.Effects(obj),
				})
			}
		}
		out = append(out, set)
	}
	return out
}

// triggerTags returns the tags an idea group is restricted to: tag fields at
// the top of the trigger or inside an OR.
func triggerTags(v script.Value) []string {
	obj, err := v.Object()
	if err != nil {
		return nil
	}
	var out []string
	for _, f := range obj.Fields() {
		switch {
		case f.Key == "tag":
			if s, err := f.Value.Text(); err == nil {
				out = append(out, s)
			}
		case f.Key == "OR":
			or, err := f.Value.Object()
			if err != nil {
				continue
			}
			for _, g := range or.Fields() {
				if !strings.EqualFold(g.Key, "tag") {
					continue
				}
				if s, err := g.Value.Text(); err == nil {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

func effects(v script.Value) []modifier.Effect {
	obj, err := v.Object()
	if err != nil {
		return nil
	}
	return modifier.Effects(obj)
}

func lookup(loc localisation.Localiser, key, fallback string) string {
	if s, ok := loc.Lookup(key); ok && s != "" {
		return s
	}
	return fallback
}

// Index maps tags to idea groups.
type Index struct {
	sets  []Set
	byTag map[string]int
}

// NewIndex indexes sets by tag. When two groups claim a tag the later one
// wins.
func NewIndex(sets []Set) *Index {
	idx := &Index{sets: sets, byTag: map[string]int{}}
	for i, s := range sets {
		for _, tag := range s.Tags {
			idx.byTag[tag] = i
		}
	}
	return idx
}

// ForTag returns the idea group of a tag.
func (i *Index) ForTag(tag string) (Set, bool) {
	n, ok := i.byTag[tag]
	if !ok {
		return Set{}, false
	}
	return i.sets[n], true
}

// Sets returns every group in file order.
func (i *Index) Sets() []Set { return i.sets }

// Names maps every indexed tag to its group's display name. Groups without
// a display name are left out.
func (i *Index) Names() map[string]string {
	out := make(map[string]string, len(i.byTag))
	for tag, n := range i.byTag {
		if name := i.sets[n].Name; name != "" {
			out[tag] = name
		}
	}
	return out
}

// Read parses every idea file. Groups without tags, such as the generic
// and custom groups, are kept but never indexed.
func Read(tree *source.Tree, loc localisation.Localiser) ([]Set, error) {
	if !tree.Exists(source.IdeaDir) {
		return nil, nil
	}
	docs, err := tree.Documents(source.IdeaDir, "ideas")
	if err != nil {
		return nil, err
	}
	var out []Set
	for _, doc := range docs {
		out = append(out, ParseSets(doc.Object, loc)...)
	}
	return out, nil
}
