package geo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultContinentNames(t *testing.T) {
	names := DefaultContinentNames()
	tests := map[string]string{
		"africa":        "Sarhal",
		"europe":        "Cannor",
		"serpentspine":  "Serpentspine",
		"asia":          "Haless",
		"north_america": "North Aelantir",
		"south_america": "South Aelantir",
		"oceania":       "Insyaa",
		"atlantis":      "",
	}
	for id, want := range tests {
		if got := names.Name(id); got != want {
			t.Fatalf("Name(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestLoadContinentNamesOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "continents.yaml")
	if err := os.WriteFile(path, []byte("continents:\n  europe: Old World\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	names, err := LoadContinentNames(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(ContinentNames{"europe": "Old World"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadContinentNames(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := ParseContinentNames([]byte("continents: [")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestPlacements(t *testing.T) {
	in := adenicaInput()
	in.Areas[0].Provinces = []uint64{5, 1, 2}
	superRegions, err := (&Assembler{}).Assemble(in)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	continents, errs := ParseContinents(parse(t, "europe = { 2 1 }"))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors %v", errs)
	}

	got := Placements(superRegions, continents, DefaultContinentNames())
	want := []Placement{
		{ProvinceID: 1, Province: "Adenica", Continent: "Cannor", SuperRegion: "Western Cannor", Region: "Lencenor", Area: "Adenica"},
		{ProvinceID: 2, Province: "Blayscrest", Continent: "Cannor", SuperRegion: "Western Cannor", Region: "Lencenor", Area: "Adenica"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("placements mismatch (-want +got):\n%s", diff)
	}
}
