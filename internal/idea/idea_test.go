package idea

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/louisbranch/anbennar-atlas/internal/localisation"
	"github.com/louisbranch/anbennar-atlas/internal/modifier"
	"github.com/louisbranch/anbennar-atlas/internal/script"
	"github.com/louisbranch/anbennar-atlas/internal/source"
)

const lorentIdeas = `
A01_ideas = {
	start = {
		land_morale = 0.1
		made_up_modifier = 3
	}
	bonus = { discipline = 0.05 }
	trigger = {
		OR = { tag = A01 TAG = A13 }
		tag = A14
	}
	free = yes
	lorentish_chivalry = {
		cavalry_power = 0.1
		country_event = { id = flavour.1 }
	}
	the_kings_court = { global_tax_modifier = -0.1 }
}
generic_ideas = { start = { discipline = 0.05 } }
`

func parse(t *testing.T, src string) *script.Object {
	t.Helper()
	obj, err := script.ParseString(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return obj
}

func keys(effects []modifier.Effect) []string {
	var out []string
	for _, e := range effects {
		out = append(out, e.Key+"="+e.Display)
	}
	return out
}

func TestParseSets(t *testing.T) {
	loc := localisation.Table{
		"A01_ideas":               "Lorentish Ideas",
		"lorentish_chivalry":      "Lorentish Chivalry",
		"lorentish_chivalry_desc": "Knights of the Rose.",
	}
	sets := ParseSets(parse(t, lorentIdeas), loc)
	if len(sets) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(sets))
	}
	lorent := sets[0]
	if lorent.Name != "Lorentish Ideas" {
		t.Fatalf("unexpected name %q", lorent.Name)
	}
	if diff := cmp.Diff([]string{"A01", "A13", "A14"}, lorent.Tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"land_morale=+10%"}, keys(lorent.Start)); diff != "" {
		t.Fatalf("start mismatch (-want +got):\n%s", diff)
	}
	if len(lorent.Ideas) != 2 {
		t.Fatalf("expected 2 ideas, got %+v", lorent.Ideas)
	}
	first := lorent.Ideas[0]
	if first.Name != "Lorentish Chivalry" || first.Description != "Knights of the Rose." || len(first.Effects) != 1 {
		t.Fatalf("unexpected first idea %+v", first)
	}
	second := lorent.Ideas[1]
	if second.Name != "the_kings_court" || second.Description != "" {
		t.Fatalf("expected id fallback, got %+v", second)
	}
	if second.Effects[0].Tone != modifier.Malus {
		t.Fatalf("expected a tax penalty to be a malus, got %v", second.Effects[0].Tone)
	}
	if sets[1].Name != "" || len(sets[1].Tags) != 0 {
		t.Fatalf("unexpected generic set %+v", sets[1])
	}
}

func TestIndex(t *testing.T) {
	sets := []Set{
		{ID: "a", Name: "A Ideas", Tags: []string{"A01", "A02"}},
		{ID: "b", Name: "", Tags: []string{"B01"}},
		{ID: "c", Name: "C Ideas", Tags: []string{"A02"}},
	}
	idx := NewIndex(sets)
	if s, ok := idx.ForTag("A02"); !ok || s.ID != "c" {
		t.Fatalf("expected later group to win, got %+v", s)
	}
	if _, ok := idx.ForTag("Z99"); ok {
		t.Fatal("expected no group for Z99")
	}
	want := map[string]string{"A01": "A Ideas", "A02": "C Ideas"}
	if diff := cmp.Diff(want, idx.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestRacialModifiers(t *testing.T) {
	got := ParseRacialModifiers(parse(t, `
half_orc_military = {
	picture = half_orc
	discipline = 0.05
	land_morale = 0.1
}
elven_administration = { global_tax_modifier = 0.1 }
elven_diplomacy = { diplomats = 1 }
`))
	if len(got) != 2 {
		t.Fatalf("expected 2 modifiers, got %+v", got)
	}
	if got[0].Title != "Half Orc Military" || got[1].Title != "Elven Administration" {
		t.Fatalf("unexpected titles %q %q", got[0].Title, got[1].Title)
	}
	if diff := cmp.Diff([]string{"discipline=+5%", "land_morale=+10%"}, keys(got[0].Effects)); diff != "" {
		t.Fatalf("effects mismatch (-want +got):\n%s", diff)
	}
}

func TestReadOptionalFiles(t *testing.T) {
	root := t.TempDir()
	tree, err := source.Open(root, nil, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sets, err := Read(tree, nil)
	if err != nil || sets != nil {
		t.Fatalf("expected no sets, got %v (%v)", sets, err)
	}
	racial, err := ReadRacialModifiers(tree)
	if err != nil || racial != nil {
		t.Fatalf("expected no racial modifiers, got %v (%v)", racial, err)
	}

	path := filepath.Join(root, filepath.FromSlash(source.IdeaDir), "00_country_ideas.txt")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(lorentIdeas), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	sets, err = Read(tree, nil)
	if err != nil || len(sets) != 2 {
		t.Fatalf("expected 2 sets, got %v (%v)", sets, err)
	}
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"half_orc_military": "Half Orc Military",
		"monarchy":          "Monarchy",
		"":                  "",
		"a__b":              "A  B",
	}
	for in, want := range tests {
		if got := TitleCase(in); got != want {
			t.Fatalf("TitleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
