package country

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/louisbranch/anbennar-atlas/internal/localisation"
	"github.com/louisbranch/anbennar-atlas/internal/platform/telemetry/metrics"
	"github.com/louisbranch/anbennar-atlas/internal/scan"
	"github.com/louisbranch/anbennar-atlas/internal/script"
	"github.com/louisbranch/anbennar-atlas/internal/source"
)

func parse(t *testing.T, src string) *script.Object {
	t.Helper()
	obj, err := script.ParseString(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return obj
}

func writeTree(t *testing.T, files map[string]string) (*source.Tree, *metrics.Diagnostics) {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	diag := metrics.NewDiagnostics()
	tree, err := source.Open(root, nil, diag)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return tree, diag
}

func TestParseTags(t *testing.T) {
	got, errs := ParseTags(parse(t, `
# Cannor
A01 = "countries/Lorent.txt"
A02 = "countries/Deranne.txt" # trailing comment
NPC = "countries/NPC.txt"
A03 = { broken }
`))
	want := []Tag{
		{Tag: "A01", Path: "countries/Lorent.txt"},
		{Tag: "A02", Path: "countries/Deranne.txt"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	if len(errs) != 1 || errs[0].Key != "A03" {
		t.Fatalf("expected A03 error, got %v", errs)
	}
}

func TestParseHistory(t *testing.T) {
	got, errs := ParseHistory(parse(t, `
government = monarchy
add_government_reform = feudalism_reform
add_government_reform = lorentish_reform
government_rank = 3
primary_culture = high_lorentish
add_accepted_culture = bahari
add_accepted_culture = kuzarami
religion = regent_court
technology_group = tech_cannorian
capital = 67
fixed_capital = 67
historical_rival = A02
historical_friend = A04
historical_friend = A05
setup_vision = yes
1444.1.1 = { primary_culture = low_lorentish }
`))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors %v", errs)
	}
	want := History{
		SetupVision:       true,
		Government:        "monarchy",
		GovernmentReforms: []string{"feudalism_reform", "lorentish_reform"},
		GovernmentRank:    3,
		PrimaryCulture:    "high_lorentish",
		AcceptedCultures:  []string{"bahari", "kuzarami"},
		Religion:          "regent_court",
		TechnologyGroup:   "tech_cannorian",
		Capital:           67,
		FixedCapital:      67,
		HistoricalRivals:  []string{"A02"},
		HistoricalFriends: []string{"A04", "A05"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}

	_, errs = ParseHistory(parse(t, "capital = { 1 } government_rank = high"))
	if len(errs) != 2 {
		t.Fatalf("expected 2 field errors, got %v", errs)
	}
}

func TestReadTagsAndHistories(t *testing.T) {
	tree, diag := writeTree(t, map[string]string{
		"common/country_tags/00_countries.txt": `A01 = "countries/Lorent.txt" NPC = "countries/NPC.txt"`,
		"common/country_tags/01_countries.txt": `A01 = "countries/Other.txt" B01 = "countries/Verne.txt"`,
		"history/countries/A01 - Lorent.txt":   "primary_culture = high_lorentish",
		"history/countries/B01 - Verne.txt":    "religion = regent_court",
		"history/countries/B02 - Broken.txt":   "religion = {",
	})
	tags, err := ReadTags(tree)
	if err != nil {
		t.Fatalf("read tags: %v", err)
	}
	want := []Tag{
		{Tag: "A01", Path: "countries/Lorent.txt"},
		{Tag: "B01", Path: "countries/Verne.txt"},
	}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}

	histories, err := ReadHistories(tree)
	if err != nil {
		t.Fatalf("read histories: %v", err)
	}
	if len(histories) != 2 || histories["A01"].PrimaryCulture != "high_lorentish" {
		t.Fatalf("unexpected histories %+v", histories)
	}
	if v := testutil.ToFloat64(diag.FilesSkipped.WithLabelValues("country_history")); v != 1 {
		t.Fatalf("expected 1 skipped history, got %v", v)
	}
	if v := testutil.ToFloat64(diag.EntitiesDropped.WithLabelValues("countries", "duplicate_tag")); v != 1 {
		t.Fatalf("expected 1 duplicate tag, got %v", v)
	}
}

func TestScanners(t *testing.T) {
	tree, _ := writeTree(t, map[string]string{
		"common/scripted_triggers/00_scripted_triggers.txt": `
some_other_trigger = { tag = X99 }
was_never_end_game_tag_trigger = {
	NOT = { tag = Z01 }
	NOT = { was_tag = Z02 }
}
was_never_end_game_tag_trigger = { tag = X98 }
`,
		"decisions/Lorent.txt": `
country_decisions = {
	form_lorent = {
		potential = { NOT = { change_tag = NOPE } }
		allow = { change_tag = NOPE }
		provinces_to_highlight = { change_tag = NOPE }
		effect = {
			change_tag = Z35
			change_tag = Z36
		}
	}
}
`,
		"events/Flavour.txt": `
namespace = flavour
country_event = {
	id = flavour.1
	option = { change_tag = Z01 }
	option = { hidden_effect = { change_tag = Z03 } }
}
`,
		"events/broken.txt": "country_event = {",
		"missions/Lorent_Missions.txt": `
lorent_missions = {
	slot = 1
	potential = {
		OR = { tag = A01 was_tag = A02 }
		NOT = { tag = A03 }
	}
}
generic_missions = { potential = { always = yes } }
`,
	})

	endGame, err := EndGameTags(tree)
	if err != nil {
		t.Fatalf("end game tags: %v", err)
	}
	if diff := cmp.Diff([]string{"Z01", "Z02"}, endGame.Sorted()); diff != "" {
		t.Fatalf("end game mismatch (-want +got):\n%s", diff)
	}

	formable, err := FormableTags(tree)
	if err != nil {
		t.Fatalf("formable tags: %v", err)
	}
	if diff := cmp.Diff([]string{"Z01", "Z03", "Z35"}, formable.Sorted()); diff != "" {
		t.Fatalf("formable mismatch (-want +got):\n%s", diff)
	}

	missions, err := MissionTags(tree)
	if err != nil {
		t.Fatalf("mission tags: %v", err)
	}
	if diff := cmp.Diff([]string{"A01", "A02"}, missions.Sorted()); diff != "" {
		t.Fatalf("missions mismatch (-want +got):\n%s", diff)
	}
}

func TestScannersWithoutDirectories(t *testing.T) {
	tree, _ := writeTree(t, map[string]string{"map/area.txt": ""})
	for name, fn := range map[string]func(*source.Tree) (scan.Set, error){
		"end game": EndGameTags,
		"formable": FormableTags,
		"missions": MissionTags,
	} {
		set, err := fn(tree)
		if err != nil || len(set) != 0 {
			t.Fatalf("%s: expected empty set, got %v (%v)", name, set.Sorted(), err)
		}
	}
}

func TestEnrich(t *testing.T) {
	tags := []Tag{{Tag: "B01"}, {Tag: "A01"}, {Tag: "A02"}, {Tag: "A03"}}
	histories := map[string]History{
		"A01": {PrimaryCulture: "high_lorentish", Religion: "regent_court"},
		"B01": {PrimaryCulture: "unknown_culture"},
		"Z99": {PrimaryCulture: "ghost"},
	}
	loc := localisation.Table{
		"A01":            "Lorent",
		"A01_ADJ":        "Lorentish",
		"A02":            "",
		"B01":            "Verne",
		"high_lorentish": "High Lorentish",
		"regent_court":   "Regent Court",
	}
	sets := Sets{
		EndGame:    scan.NewSet("A01"),
		Formable:   scan.NewSet("A01", "B01"),
		Missions:   scan.NewSet("B01"),
		IdeaGroups: map[string]string{"A01": "Lorentish Ideas"},
	}
	diag := metrics.NewDiagnostics()
	got := (&Enricher{Diagnostics: diag}).Enrich(tags, histories, loc, sets)

	want := []Country{
		{
			Tag:       "A01",
			Name:      "Lorent",
			Adjective: "Lorentish",
			History:   histories["A01"],
			Culture:   "High Lorentish",
			Religion:  "Regent Court",
			EndGame:   true,
			Formable:  true,
			IdeaGroup: "Lorentish Ideas",
		},
		{
			Tag:         "B01",
			Name:        "Verne",
			History:     histories["B01"],
			Culture:     "unknown_culture",
			Formable:    true,
			HasMissions: true,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("countries mismatch (-want +got):\n%s", diff)
	}
	if v := testutil.ToFloat64(diag.EntitiesDropped.WithLabelValues("countries", "no_name")); v != 2 {
		t.Fatalf("expected 2 dropped countries, got %v", v)
	}
}

func TestTitleFoldsName(t *testing.T) {
	c := Country{Name: "Rósande"}
	if got := c.Title(); got != "Rosande" {
		t.Fatalf("expected Rosande, got %q", got)
	}
}
