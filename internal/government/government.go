// Package government reads governments, their reform tiers and the reforms
// themselves, and resolves them into per-government listings.
package government

import (
	"encoding/json"

	"github.com/louisbranch/anbennar-atlas/internal/localisation"
	"github.com/louisbranch/anbennar-atlas/internal/modifier"
	"github.com/louisbranch/anbennar-atlas/internal/script"
	"github.com/louisbranch/anbennar-atlas/internal/source"
)

// DefaultsReform holds values shared by every reform and is not a reform.
const DefaultsReform = "defaults_reform"

// Government is a government type with its reform tiers.
type Government struct {
	ID    string
	Tiers []Tier
}

// Tier is one reform level. Levels start at 1.
type Tier struct {
	Level   int
	ID      string
	Reforms []string
}

// Reform is a government reform.
type Reform struct {
	ID          string
	Name        string
	HasName     bool
	Description string
	Icon        string
	Effects     []modifier.Effect
	// Potential is the raw condition block, as JSON with repeated keys
	// grouped into arrays.
	Potential   json.RawMessage
	BasicReform bool
	Monarchy    bool
}

// ParseGovernments reads a government file.
func ParseGovernments(doc *script.Object) ([]Government, []*script.FieldError) {
	var (
		out  []Government
		errs []*script.FieldError
	)
	for _, f := range doc.Fields() {
		body, err := f.Value.Object()
		if err != nil {
			errs = append(errs, script.NewFieldError(f, err))
			continue
		}
		g := Government{ID: f.Key}
		levels, ok := body.First("reform_levels")
		if ok {
			obj, err := levels.Object()
			if err != nil {
				errs = append(errs, &script.FieldError{Key: "reform_levels", Err: err})
			}
			for _, lf := range obj.Fields() {
				tier := Tier{Level: len(g.Tiers) + 1, ID: lf.Key}
				if lo, err := lf.Value.Object(); err == nil {
					for _, rv := range lo.All("reforms") {
						ids, err := rv.Strings()
						if err != nil {
							errs = append(errs, script.NewFieldError(lf, err))
							continue
						}
						tier.Reforms = append(tier.Reforms, ids...)
					}
				}
				g.Tiers = append(g.Tiers, tier)
			}
		}
		out = append(out, g)
	}
	return out, errs
}

// ParseReforms reads a reform file. Display names and descriptions come
// from loc; modifiers that are not known are skipped.
func ParseReforms(doc *script.Object, loc localisation.Localiser) ([]Reform, []*script.FieldError) {
	if loc == nil {
		loc = localisation.Table{}
	}
	var (
		out  []Reform
		errs []*script.FieldError
	)
	for _, f := range doc.Fields() {
		if f.Key == DefaultsReform {
			continue
		}
		r := Reform{ID: f.Key}
		r.Name, r.HasName = loc.Lookup(f.Key)
		r.Description, _ = loc.Lookup(f.Key + "_desc")

		body, err := f.Value.Object()
		if err != nil {
			errs = append(errs, script.NewFieldError(f, err))
			out = append(out, r)
			continue
		}
		for _, field := range body.Fields() {
			var err error
			switch field.Key {
			case "icon":
				r.Icon, err = field.Value.Text()
			case "modifiers":
				var obj *script.Object
				if obj, err = field.Value.Object(); err == nil {
					r.Effects = append(r.Effects, modifier.Effects(obj)...)
				}
			case "potential":
				var obj *script.Object
				if obj, err = field.Value.Object(); err == nil {
					r.Potential, err = obj.MarshalJSON()
				}
			case "basic_reform":
				r.BasicReform, err = field.Value.Bool()
			case "monarchy":
				r.Monarchy, err = field.Value.Bool()
			}
			if err != nil {
				errs = append(errs, script.NewFieldError(field, err))
			}
		}
		out = append(out, r)
	}
	return out, errs
}

// ReadGovernments parses every government file.
func ReadGovernments(tree *source.Tree) ([]Government, error) {
	const family = "governments"
	if !tree.Exists(source.GovernmentDir) {
		return nil, nil
	}
	docs, err := tree.Documents(source.GovernmentDir, family)
	if err != nil {
		return nil, err
	}
	var out []Government
	for _, doc := range docs {
		govs, errs := ParseGovernments(doc.Object)
		tree.SkipFields(family, doc.Path, errs)
		out = append(out, govs...)
	}
	return out, nil
}

// ReadReforms parses every reform file.
func ReadReforms(tree *source.Tree, loc localisation.Localiser) ([]Reform, error) {
	const family = "government_reforms"
	if !tree.Exists(source.ReformDir) {
		return nil, nil
	}
	docs, err := tree.Documents(source.ReformDir, family)
	if err != nil {
		return nil, err
	}
	var out []Reform
	for _, doc := range docs {
		reforms, errs := ParseReforms(doc.Object, loc)
		tree.SkipFields(family, doc.Path, errs)
		out = append(out, reforms...)
	}
	return out, nil
}
