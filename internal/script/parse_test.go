package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, src string) *Object {
	t.Helper()
	obj, err := ParseString(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return obj
}

func TestParseDuplicateKeysKeepOrder(t *testing.T) {
	obj := mustParse(t, `
owner = A01
controller = A01
owner = A02 # conquered
add_core = A01
add_core = A02
`)
	first, ok := obj.FirstText("owner")
	if !ok || first != "A01" {
		t.Fatalf("expected first owner A01, got %q (%v)", first, ok)
	}
	last, ok := obj.LastText("owner")
	if !ok || last != "A02" {
		t.Fatalf("expected last owner A02, got %q (%v)", last, ok)
	}
	if diff := cmp.Diff([]string{"A01", "A02"}, obj.AllText("add_core")); diff != "" {
		t.Fatalf("add_core mismatch (-want +got):\n%s", diff)
	}
	if obj.Len() != 5 {
		t.Fatalf("expected 5 fields, got %d", obj.Len())
	}
}

func TestParseArraysAndObjects(t *testing.T) {
	obj := mustParse(t, `
adenica_area = { 1 2 3 }
r1 = {
	areas = { adenica_area }
	monsoon = { 00.06.01 00.09.30 }
}
empty = {}
`)
	area, _ := obj.First("adenica_area")
	ids, err := area.Array()
	if err != nil {
		t.Fatalf("read area array: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %d", len(ids))
	}
	n, err := ids[2].Uint()
	if err != nil || n != 3 {
		t.Fatalf("expected third id 3, got %d (%v)", n, err)
	}
	if _, err := area.Object(); err == nil {
		t.Fatal("expected item-only block to fail object read")
	}

	region, _ := obj.First("r1")
	regionObj, err := region.Object()
	if err != nil {
		t.Fatalf("read region object: %v", err)
	}
	areas, _ := regionObj.First("areas")
	names, err := areas.Strings()
	if err != nil {
		t.Fatalf("read areas: %v", err)
	}
	if diff := cmp.Diff([]string{"adenica_area"}, names); diff != "" {
		t.Fatalf("areas mismatch (-want +got):\n%s", diff)
	}
	if _, err := region.Array(); err == nil {
		t.Fatal("expected field-only block to fail array read")
	}

	empty, _ := obj.First("empty")
	if _, err := empty.Object(); err != nil {
		t.Fatalf("empty block as object: %v", err)
	}
	if items, err := empty.Array(); err != nil || len(items) != 0 {
		t.Fatalf("empty block as array: %v %v", items, err)
	}
}

func TestParseOperatorsQuotesAndTags(t *testing.T) {
	obj := mustParse(t, `
trigger = {
	num_of_cities >= 10
	NOT = { tag = "Z01" }
	has_country_flag ?= flag_a
	army_size != 3
}
name = "The \"Lorentish\" Realm"
color = rgb { 10 20 30 }
`)
	trigger, _ := obj.First("trigger")
	tobj, err := trigger.Object()
	if err != nil {
		t.Fatalf("trigger object: %v", err)
	}
	want := []Operator{OpGreaterEqual, OpEqual, OpExists, OpNotEqual}
	var got []Operator
	for _, f := range tobj.Fields() {
		got = append(got, f.Op)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("operators mismatch (-want +got):\n%s", diff)
	}

	name, _ := obj.First("name")
	if !name.Quoted() {
		t.Fatal("expected quoted name")
	}
	if s, _ := name.Text(); s != `The "Lorentish" Realm` {
		t.Fatalf("unexpected name %q", s)
	}

	color, _ := obj.First("color")
	if color.Tag() != "rgb" {
		t.Fatalf("expected rgb tag, got %q", color.Tag())
	}
	if items, err := color.Array(); err != nil || len(items) != 3 {
		t.Fatalf("expected 3 colour components, got %v (%v)", items, err)
	}
}

func TestParseMixedBlockKeepsFieldsAndItems(t *testing.T) {
	obj := mustParse(t, `my_area = { color = { 1 2 3 } 10 11 }`)
	v, _ := obj.First("my_area")
	ids, err := v.Strings()
	if err != nil {
		t.Fatalf("mixed block as array: %v", err)
	}
	if diff := cmp.Diff([]string{"10", "11"}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	inner, err := v.Object()
	if err != nil {
		t.Fatalf("mixed block as object: %v", err)
	}
	if _, ok := inner.First("color"); !ok {
		t.Fatal("expected color field to survive")
	}
}

func TestParseIgnoresStrayTopLevelClose(t *testing.T) {
	obj := mustParse(t, "a = 1\n}\nb = 2\n")
	if obj.Len() != 2 {
		t.Fatalf("expected 2 fields, got %d", obj.Len())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "unclosed block", src: "a = { b = c", want: "missing '}'"},
		{name: "missing value", src: "a = }", want: "missing value"},
		{name: "operator without key", src: "= 3", want: "without a key"},
		{name: "unterminated quote", src: `a = "open`, want: "unterminated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.src)
			if err == nil {
				t.Fatal("expected error")
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in %v", tt.want, err)
			}
		})
	}
}

func TestParseDecodesWindows1252(t *testing.T) {
	// 0xF3 is "ó" in Windows-1252 and invalid as a lone UTF-8 byte.
	data := []byte("name = \"R\xf3sande\"\n")
	obj, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if name, _ := obj.FirstText("name"); name != "Rósande" {
		t.Fatalf("expected decoded name, got %q", name)
	}

	bom := append([]byte{0xEF, 0xBB, 0xBF}, []byte("name = \"Rósande\"")...)
	obj, err = Parse(bom)
	if err != nil {
		t.Fatalf("parse utf-8 with bom: %v", err)
	}
	if name, _ := obj.FirstText("name"); name != "Rósande" {
		t.Fatalf("expected utf-8 name, got %q", name)
	}
}

func TestReadFileAddsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.txt")
	if err := os.WriteFile(path, []byte("a = {"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := ReadFile(path)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Path != path {
		t.Fatalf("expected path %q, got %q", path, pe.Path)
	}
}

func TestValueReadersReportShape(t *testing.T) {
	obj := mustParse(t, "a = { b = c }\nn = 0.25\nflag = yes\nword = maybe\n")
	a, _ := obj.First("a")
	if _, err := a.Text(); err == nil {
		t.Fatal("expected block to fail text read")
	} else {
		var se *ShapeError
		if !errors.As(err, &se) || se.Want != "string" {
			t.Fatalf("unexpected error %v", err)
		}
	}
	n, _ := obj.First("n")
	if f, err := n.Float(); err != nil || f != 0.25 {
		t.Fatalf("expected 0.25, got %v (%v)", f, err)
	}
	if _, err := n.Uint(); err == nil {
		t.Fatal("expected decimal to fail uint read")
	}
	flag, _ := obj.First("flag")
	if b, err := flag.Bool(); err != nil || !b {
		t.Fatalf("expected yes, got %v (%v)", b, err)
	}
	word, _ := obj.First("word")
	if _, err := word.Bool(); err == nil {
		t.Fatal("expected non yes/no to fail bool read")
	}
}

func TestMarshalJSONGroupsDuplicates(t *testing.T) {
	obj := mustParse(t, `
OR = { tag = A01 tag = "A02" }
num_of_cities = 5
has_reform = yes
color = { 1 2 3 }
`)
	data, err := obj.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"OR":{"tag":["A01","A02"]},"num_of_cities":5,"has_reform":true,"color":[1,2,3]}`
	if string(data) != want {
		t.Fatalf("unexpected json\nwant %s\ngot  %s", want, data)
	}
}
