package geo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/louisbranch/anbennar-atlas/internal/platform/telemetry/metrics"
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

func TestParseAreas(t *testing.T) {
	doc := parse(t, `
adenica_area = { 1 2 }
colored_area = { color = { 10 20 30 } 3 }
empty_area = { }
broken_area = { 4 four }
`)
	got, errs := ParseAreas(doc)
	want := []AreaDef{
		{ID: "adenica_area", Provinces: []uint64{1, 2}},
		{ID: "colored_area", Provinces: []uint64{3}},
		{ID: "empty_area"},
		{ID: "broken_area", Provinces: []uint64{4}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("areas mismatch (-want +got):\n%s", diff)
	}
	if len(errs) != 1 || errs[0].Key != "broken_area" {
		t.Fatalf("expected one broken_area error, got %v", errs)
	}
}

func TestParseRegionsAndSuperRegions(t *testing.T) {
	regions, errs := ParseRegions(parse(t, `
lencenor_region = {
	areas = { adenica_area lorent_area }
	monsoon = { 00.06.01 00.09.30 }
}
dameshead_region = { areas = { damesear_area } areas = { wesdam_area } }
`))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors %v", errs)
	}
	wantRegions := []RegionDef{
		{ID: "lencenor_region", Areas: []string{"adenica_area", "lorent_area"}},
		{ID: "dameshead_region", Areas: []string{"damesear_area", "wesdam_area"}},
	}
	if diff := cmp.Diff(wantRegions, regions); diff != "" {
		t.Fatalf("regions mismatch (-want +got):\n%s", diff)
	}

	supers, errs := ParseSuperRegions(parse(t, `
west_cannor_superregion = { lencenor_region dameshead_region }
sarhal_superregion = { restrict_charter sarhal_region }
bad_superregion = yes
`))
	if len(errs) != 1 || errs[0].Key != "bad_superregion" {
		t.Fatalf("expected bad_superregion error, got %v", errs)
	}
	wantSupers := []SuperRegionDef{
		{ID: "west_cannor_superregion", Members: []string{"lencenor_region", "dameshead_region"}},
		{ID: "sarhal_superregion", Members: []string{RestrictCharter, "sarhal_region"}},
	}
	if diff := cmp.Diff(wantSupers, supers); diff != "" {
		t.Fatalf("super regions mismatch (-want +got):\n%s", diff)
	}
}

func TestParseProvinceHistory(t *testing.T) {
	got, errs := ParseProvinceHistory(parse(t, `
owner = A01
controller = A01
culture = high_lorentish
culture = low_lorentish
religion = regent_court
base_tax = 5
base_production = 4
base_manpower = three
trade_goods = wine
is_city = yes
1444.11.11 = { owner = A02 }
owner = A03
trade_goods = cloth
`))
	want := ProvinceHistory{
		Owner:          "A03",
		Controller:     "A01",
		Culture:        "high_lorentish",
		Religion:       "regent_court",
		TradeGoods:     "cloth",
		BaseTax:        5,
		BaseProduction: 4,
		IsCity:         true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
	if len(errs) != 1 || errs[0].Key != "base_manpower" {
		t.Fatalf("expected base_manpower error, got %v", errs)
	}
}

func TestReadProvinceHistories(t *testing.T) {
	tree, diag := writeTree(t, map[string]string{
		"history/provinces/1 - Adenica.txt":   "owner = A01",
		"history/provinces/2-Blayscrest.txt":  "owner = A02",
		"history/provinces/notes.txt":         "owner = A03",
		"history/provinces/3 - Broken.txt":    "owner = {",
		"history/provinces/4 - Bad Field.txt": "base_tax = lots",
	})
	got, err := ReadProvinceHistories(tree)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := map[uint64]ProvinceHistory{
		1: {Owner: "A01"},
		2: {Owner: "A02"},
		4: {},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("histories mismatch (-want +got):\n%s", diff)
	}
	if v := testutil.ToFloat64(diag.FilesSkipped.WithLabelValues("province_history")); v != 2 {
		t.Fatalf("expected 2 skipped files, got %v", v)
	}
	if v := testutil.ToFloat64(diag.FieldsSkipped.WithLabelValues("province_history", "base_tax")); v != 1 {
		t.Fatalf("expected 1 skipped field, got %v", v)
	}
}

func TestReadMapFiles(t *testing.T) {
	tree, _ := writeTree(t, map[string]string{
		source.AreaFile:        "adenica_area = { 1 2 }",
		source.RegionFile:      "r1 = { areas = { adenica_area } }",
		source.SuperRegionFile: "sr1 = { r1 }",
	})
	areas, err := ReadAreas(tree)
	if err != nil || len(areas) != 1 {
		t.Fatalf("read areas: %v %v", areas, err)
	}
	regions, err := ReadRegions(tree)
	if err != nil || len(regions) != 1 {
		t.Fatalf("read regions: %v %v", regions, err)
	}
	supers, err := ReadSuperRegions(tree)
	if err != nil || len(supers) != 1 {
		t.Fatalf("read super regions: %v %v", supers, err)
	}

	continents, err := ReadContinents(tree)
	if err != nil {
		t.Fatalf("read continents: %v", err)
	}
	if continents.Len() != 0 {
		t.Fatalf("expected no continents without the file, got %d", continents.Len())
	}
}

func TestParseContinents(t *testing.T) {
	c, errs := ParseContinents(parse(t, `
europe = { 1 2 }
africa = { 3 }
island_check_provinces = { }
`))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors %v", errs)
	}
	if id, ok := c.Of(3); !ok || id != "africa" {
		t.Fatalf("expected province 3 in africa, got %q", id)
	}
	if _, ok := c.Of(9); ok {
		t.Fatal("expected province 9 without continent")
	}
	if diff := cmp.Diff([]string{"europe", "africa", "island_check_provinces"}, c.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}
