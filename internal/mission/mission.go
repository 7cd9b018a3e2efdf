// Package mission reads mission trees.
package mission

import (
	"github.com/louisbranch/anbennar-atlas/internal/script"
	"github.com/louisbranch/anbennar-atlas/internal/source"
)

// Tree is one column of missions.
type Tree struct {
	ID               string
	Generic          bool
	AI               bool
	HasCountryShield bool
	Slot             uint64
	Missions         []Mission
}

// Mission is one entry of a tree.
type Mission struct {
	ID               string
	Icon             string
	Position         uint64
	RequiredMissions []string
}

var treeKeys = map[string]bool{
	"generic":            true,
	"ai":                 true,
	"has_country_shield": true,
	"slot":               true,
	"potential":          true,
	"potential_on_load":  true,
}

// ParseTrees reads a mission file. Entries of a tree count as missions when
// they carry a position or a trigger.
func ParseTrees(doc *script.Object) ([]Tree, []*script.FieldError) {
	var (
		out  []Tree
		errs []*script.FieldError
	)
	for _, f := range doc.Fields() {
		body, err := f.Value.Object()
		if err != nil {
			errs = append(errs, script.NewFieldError(f, err))
			continue
		}
		t := Tree{ID: f.Key}
		for _, field := range body.Fields() {
			var err error
			switch field.Key {
			case "generic":
				t.Generic, err = field.Value.Bool()
			case "ai":
				t.AI, err = field.Value.Bool()
			case "has_country_shield":
				t.HasCountryShield, err = field.Value.Bool()
			case "slot":
				t.Slot, err = field.Value.Uint()
			default:
				if treeKeys[field.Key] {
					continue
				}
				m, ok, merrs := parseMission(field)
				errs = append(errs, merrs...)
				if ok {
					t.Missions = append(t.Missions, m)
				}
			}
			if err != nil {
				errs = append(errs, script.NewFieldError(field, err))
			}
		}
		out = append(out, t)
	}
	return out, errs
}

func parseMission(f script.Field) (Mission, bool, []*script.FieldError) {
	body, err := f.Value.Object()
	if err != nil {
		return Mission{}, false, nil
	}
	var (
		m    = Mission{ID: f.Key}
		ok   bool
		errs []*script.FieldError
	)
	for _, field := range body.Fields() {
		var err error
		switch field.Key {
		case "icon":
			m.Icon, err = field.Value.Text()
		case "position":
			ok = true
			m.Position, err = field.Value.Uint()
		case "trigger":
			ok = true
		case "required_missions":
			var ids []string
			ids, err = field.Value.Strings()
			m.RequiredMissions = append(m.RequiredMissions, ids...)
		}
		if err != nil {
			errs = append(errs, script.NewFieldError(field, err))
		}
	}
	return m, ok, errs
}

// Read parses every mission file.
func Read(tree *source.Tree) ([]Tree, error) {
	const family = "missions"
	if !tree.Exists(source.MissionDir) {
		return nil, nil
	}
	docs, err := tree.Documents(source.MissionDir, family)
	if err != nil {
		return nil, err
	}
	var out []Tree
	for _, doc := range docs {
		trees, errs := ParseTrees(doc.Object)
		tree.SkipFields(family, doc.Path, errs)
		out = append(out, trees...)
	}
	return out, nil
}
