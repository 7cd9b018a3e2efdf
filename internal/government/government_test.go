package government

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/louisbranch/anbennar-atlas/internal/localisation"
	"github.com/louisbranch/anbennar-atlas/internal/platform/telemetry/metrics"
	"github.com/louisbranch/anbennar-atlas/internal/script"
)

func parse(t *testing.T, src string) *script.Object {
	t.Helper()
	obj, err := script.ParseString(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return obj
}

func TestParseGovernments(t *testing.T) {
	got, errs := ParseGovernments(parse(t, `
monarchy = {
	basic_reform = monarchy_mechanic
	color = { 255 0 0 }
	reform_levels = {
		basic_monarchy_reforms = {
			reforms = { feudalism_reform autocracy_reform }
		}
		monarchy_succession = {
			reforms = { elective_monarchy }
			reforms = { hereditary_monarchy }
		}
		empty_tier = { }
	}
}
pre_dharma_mapping = { }
`))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors %v", errs)
	}
	want := []Government{
		{ID: "monarchy", Tiers: []Tier{
			{Level: 1, ID: "basic_monarchy_reforms", Reforms: []string{"feudalism_reform", "autocracy_reform"}},
			{Level: 2, ID: "monarchy_succession", Reforms: []string{"elective_monarchy", "hereditary_monarchy"}},
			{Level: 3, ID: "empty_tier"},
		}},
		{ID: "pre_dharma_mapping"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("governments mismatch (-want +got):\n%s", diff)
	}
}

func TestParseReforms(t *testing.T) {
	loc := localisation.Table{
		"feudalism_reform":      "Feudal Monarchy",
		"feudalism_reform_desc": `Lords hold land.\nThe §Gcrown§! rules.`,
	}
	got, errs := ParseReforms(parse(t, `
defaults_reform = { icon = nope }
feudalism_reform = {
	icon = feudal_monarchy
	monarchy = yes
	basic_reform = no
	potential = {
		has_reform = feudalism_reform
		OR = { tag = A01 tag = A02 }
	}
	modifiers = {
		global_manpower_modifier = 0.1
		not_a_modifier = 5
	}
}
autocracy_reform = { icon = { broken } }
`), loc)
	if len(got) != 2 {
		t.Fatalf("expected 2 reforms, got %+v", got)
	}
	feudal := got[0]
	if !feudal.HasName || feudal.Name != "Feudal Monarchy" || feudal.Icon != "feudal_monarchy" {
		t.Fatalf("unexpected reform %+v", feudal)
	}
	if !feudal.Monarchy || feudal.BasicReform {
		t.Fatalf("unexpected flags %+v", feudal)
	}
	if len(feudal.Effects) != 1 || feudal.Effects[0].Display != "+10%" {
		t.Fatalf("unexpected effects %+v", feudal.Effects)
	}
	wantPotential := `{"has_reform":"feudalism_reform","OR":{"tag":["A01","A02"]}}`
	if string(feudal.Potential) != wantPotential {
		t.Fatalf("potential = %s, want %s", feudal.Potential, wantPotential)
	}
	if got[1].HasName || got[1].Icon != "" {
		t.Fatalf("unexpected autocracy reform %+v", got[1])
	}
	if len(errs) != 1 || errs[0].Key != "icon" {
		t.Fatalf("expected icon error, got %v", errs)
	}
}

func TestResolve(t *testing.T) {
	govs := []Government{
		{ID: "monarchy", Tiers: []Tier{
			{Level: 1, ID: "basic_monarchy_reforms", Reforms: []string{"feudalism_reform", "hidden_reform", "missing_reform"}},
			{Level: 2, ID: "monarchy_succession"},
		}},
		{ID: "pre_dharma_mapping", Tiers: []Tier{{Level: 1, ID: "x"}}},
	}
	reforms := []Reform{
		{ID: "feudalism_reform", Name: "Feudal Monarchy", HasName: true, Description: `Lords hold land.\nThe §Gcrown§! rules.`},
		{ID: "hidden_reform"},
	}
	loc := localisation.Table{"basic_monarchy_reforms": "Basic Reforms"}
	diag := metrics.NewDiagnostics()

	got := (&Resolver{Diagnostics: diag}).Resolve(govs, reforms, loc)
	want := []Listing{{
		ID:    "monarchy",
		Title: "Monarchy",
		Tiers: []ResolvedTier{
			{Level: 1, Name: "Basic Reforms", Reforms: []Reform{{
				ID:          "feudalism_reform",
				Name:        "Feudal Monarchy",
				HasName:     true,
				Description: `Lords hold land.<br>The <span class="green">crown</span> rules.`,
			}}},
			{Level: 2, Name: "monarchy_succession"},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("listings mismatch (-want +got):\n%s", diff)
	}
	if v := testutil.ToFloat64(diag.ReferencesUnresolved.WithLabelValues("reform")); v != 1 {
		t.Fatalf("expected 1 unresolved reform, got %v", v)
	}
}
