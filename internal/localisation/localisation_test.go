package localisation

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/louisbranch/anbennar-atlas/internal/source"
)

// compareTags compares language tags by value; Tag has unexported fields.
var compareTags = cmp.Comparer(func(a, b language.Tag) bool { return a == b })

func TestParseEntryWithUnusualProperties(t *testing.T) {
	data := "l_english:\n   ABC:00001     \t\"HEL\"LO\\n\" \t  # this is a comment"
	tag, table, err := ParseFile("test_l_english.yml", []byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tag != language.English {
		t.Fatalf("expected english, got %s", tag)
	}
	if got := table["ABC"]; got != `HEL"LO\n` {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestParseEntries(t *testing.T) {
	data := "\ufeffl_english:\n" +
		" # comment line\n" +
		" Z35:0 \"Rósande\"\n" +
		" Z35_ADJ: \"Rósanda\"\n" +
		" aw_haunted_house.120.t:0 \"The Starless Night\" # inline\n" +
		" EMPTY:0 \"\"\n" +
		" SHORT:0\n"
	_, table, err := ParseFile("anb_countries_l_english.yml", []byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := Table{
		"Z35":                    "Rósande",
		"Z35_ADJ":                "Rósanda",
		"aw_haunted_house.120.t": "The Starless Night",
		"EMPTY":                  "",
		"SHORT":                  "",
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLanguageFromFilename(t *testing.T) {
	tag, _, err := ParseFile("anb_cultures_l_french.yml", []byte("# no header\n moon_elf:0 \"Elfe\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tag != language.French {
		t.Fatalf("expected french, got %s", tag)
	}
	if _, _, err := ParseFile("notes.yml", []byte("nothing\n")); err == nil {
		t.Fatal("expected error without any language")
	}
}

func TestParseLanguage(t *testing.T) {
	tests := map[string]language.Tag{
		"english":  language.English,
		"l_german": language.German,
		"braz_por": language.BrazilianPortuguese,
		"en":       language.English,
	}
	for name, want := range tests {
		got, err := ParseLanguage(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != want {
			t.Fatalf("%s: expected %s, got %s", name, want, got)
		}
	}
	if _, err := ParseLanguage("klingon-!!"); err == nil {
		t.Fatal("expected error for unknown language")
	}
}

func TestLoadFromFSFallsBackToEnglish(t *testing.T) {
	fsys := fstest.MapFS{
		"anb_countries_l_english.yml":   {Data: []byte("l_english:\n A01:0 \"Lorent\"\n A01_ADJ:0 \"Lorentish\"\n")},
		"anb_countries_l_french.yml":    {Data: []byte("l_french:\n A01:0 \"Lorent (fr)\"\n")},
		"replace/anb_fix_l_english.yml": {Data: []byte("l_english:\n A01:0 \"Kingdom of Lorent\"\n")},
		"aaa_override_l_english.yml":    {Data: []byte("l_english:\n A01:0 \"Early\"\n")},
		"broken.yml":                    {Data: []byte("not a localisation file\n")},
		"gfx/readme.txt":                {Data: []byte("ignored")},
	}
	var skipped []string
	bundle, err := LoadFromFS(fsys, func(p string, err error) { skipped = append(skipped, p) })
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"broken.yml"}, skipped); diff != "" {
		t.Fatalf("skipped mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]language.Tag{language.English, language.French}, bundle.Languages(), compareTags); diff != "" {
		t.Fatalf("languages mismatch (-want +got):\n%s", diff)
	}

	english := bundle.For(language.English)
	if got, _ := english.Lookup("A01"); got != "Kingdom of Lorent" {
		t.Fatalf("expected replace directory to win, got %q", got)
	}

	french := bundle.For(language.French)
	if got, _ := french.Lookup("A01"); got != "Lorent (fr)" {
		t.Fatalf("expected french name, got %q", got)
	}
	if got, ok := french.Lookup("A01_ADJ"); !ok || got != "Lorentish" {
		t.Fatalf("expected english fallback, got %q (%v)", got, ok)
	}
	if _, ok := french.Lookup("missing"); ok {
		t.Fatal("expected missing key to be absent")
	}

	german := bundle.For(language.German)
	if got, _ := german.Lookup("A01_ADJ"); got != "Lorentish" {
		t.Fatalf("expected fallback for unloaded language, got %q", got)
	}
}

func TestLanguageMessagesIsCopy(t *testing.T) {
	bundle := NewBundle(map[language.Tag]Table{language.English: {"A01": "Lorent"}})
	messages := bundle.LanguageMessages(language.English)
	messages["A01"] = "changed"
	if got, _ := bundle.Message(language.English, "A01"); got != "Lorent" {
		t.Fatalf("expected bundle to be unchanged, got %q", got)
	}
	if bundle.Len(language.English) != 1 {
		t.Fatalf("expected one entry, got %d", bundle.Len(language.English))
	}
}

func TestLoadFromTree(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "localisation")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "anb_religions_l_english.yml"), []byte("l_english:\n regent_court:0 \"Regent Court\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tree, err := source.Open(root, nil, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	bundle, err := Load(tree)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, _ := bundle.Message(language.English, "regent_court"); got != "Regent Court" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestColourise(t *testing.T) {
	in := "Start as §YLorent§! and beat §Rthe Gawed§!, §Xunknown§!"
	want := `Start as <span class="yellow">Lorent</span> and beat <span class="red">the Gawed</span>, §Xunknown§!`
	if got := Colourise(in); got != want {
		t.Fatalf("unexpected output\nwant %s\ngot  %s", want, got)
	}
}

func TestFold(t *testing.T) {
	tests := map[string]string{
		"Rósande":        "Rosande",
		"Stalbóric":      "Stalboric",
		"Æther Straße":   "AEther Strasse",
		"Suhan’s Praxis": "Suhan's Praxis",
		"Lorent":         "Lorent",
	}
	for in, want := range tests {
		if got := Fold(in); got != want {
			t.Fatalf("Fold(%q) = %q, want %q", in, got, want)
		}
	}
}
