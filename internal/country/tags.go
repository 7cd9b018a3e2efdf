package country

import (
	"go.uber.org/zap"

	"github.com/louisbranch/anbennar-atlas/internal/scan"
	"github.com/louisbranch/anbennar-atlas/internal/script"
	"github.com/louisbranch/anbennar-atlas/internal/source"
)

// EndGameTrigger is the scripted trigger listing the tags that can never
// form an end-game tag.
const EndGameTrigger = "was_never_end_game_tag_trigger"

var (
	endGamePolicy = scan.Policy{Targets: []string{"tag", "was_tag"}}

	// Tag changes inside conditions or map highlights are checks, not
	// outcomes.
	formablePolicy = scan.Policy{
		Targets:     []string{"change_tag"},
		Opaque:      []string{"potential", "provinces_to_highlight", "allow"},
		StopOnMatch: true,
	}

	missionPolicy = scan.Policy{
		Targets: []string{"tag", "was_tag"},
		Opaque:  []string{"NOT"},
	}
)

// EndGameTags returns the tags named in the first end-game trigger found in
// the scripted trigger files.
func EndGameTags(tree *source.Tree) (scan.Set, error) {
	const family = "scripted_triggers"
	set := scan.NewSet()
	docs, err := optionalDocuments(tree, source.ScriptedTriggerDir, family)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		trigger, ok := doc.Object.First(EndGameTrigger)
		if !ok {
			continue
		}
		collect(tree, family, set, trigger, endGamePolicy)
		return set, nil
	}
	tree.Logger().Debug("no end-game trigger found")
	return set, nil
}

// FormableTags returns the tags that decisions and events change a country
// into. Each definition inside a file is scanned on its own, and only the
// first tag change of any block counts.
func FormableTags(tree *source.Tree) (scan.Set, error) {
	set := scan.NewSet()
	for _, dir := range []struct{ path, family string }{
		{source.DecisionDir, "decisions"},
		{source.EventDir, "events"},
	} {
		docs, err := optionalDocuments(tree, dir.path, dir.family)
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			for _, group := range doc.Object.Fields() {
				defs, err := group.Value.Object()
				if err != nil {
					continue
				}
				for _, def := range defs.Fields() {
					collect(tree, dir.family, set, def.Value, formablePolicy)
				}
			}
		}
	}
	return set, nil
}

// MissionTags returns the tags a mission tree is available to, read from
// the potential of every tree. Negated conditions are ignored.
func MissionTags(tree *source.Tree) (scan.Set, error) {
	const family = "missions"
	set := scan.NewSet()
	docs, err := optionalDocuments(tree, source.MissionDir, family)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		for _, f := range doc.Object.Fields() {
			mt, err := f.Value.Object()
			if err != nil {
				continue
			}
			for _, potential := range mt.All("potential") {
				collect(tree, family, set, potential, missionPolicy)
			}
		}
	}
	return set, nil
}

func collect(tree *source.Tree, family string, set scan.Set, v script.Value, p scan.Policy) {
	scan.Walk(v, p, func(f script.Field) {
		s, err := f.Value.Text()
		if err != nil {
			tree.Logger().Debug("skipping non-scalar match", zap.String("family", family), zap.String("key", f.Key))
			tree.Diagnostics().FieldSkipped(family, f.Key)
			return
		}
		set.Add(s)
	})
}

// optionalDocuments parses dir when it exists. These families only refine
// the country list, so a missing directory is not fatal.
func optionalDocuments(tree *source.Tree, dir, family string) ([]source.Document, error) {
	if !tree.Exists(dir) {
		tree.Logger().Debug("optional directory missing", zap.String("family", family))
		return nil, nil
	}
	return tree.Documents(dir, family)
}
