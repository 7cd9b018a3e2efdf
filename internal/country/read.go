package country

import (
	"github.com/louisbranch/anbennar-atlas/internal/script"
	"github.com/louisbranch/anbennar-atlas/internal/source"
)

// NonPlayerTag is reserved for rebels and natives and never listed.
const NonPlayerTag = "NPC"

// ParseTags reads one country tag file: TAG = "countries/File.txt".
func ParseTags(doc *script.Object) ([]Tag, []*script.FieldError) {
	var (
		out  []Tag
		errs []*script.FieldError
	)
	for _, f := range doc.Fields() {
		if f.Key == NonPlayerTag {
			continue
		}
		path, err := f.Value.Text()
		if err != nil {
			errs = append(errs, script.NewFieldError(f, err))
			continue
		}
		out = append(out, Tag{Tag: f.Key, Path: path})
	}
	return out, errs
}

// ReadTags parses every tag file. A tag defined twice keeps its first path.
func ReadTags(tree *source.Tree) ([]Tag, error) {
	const family = "country_tags"
	docs, err := tree.Documents(source.CountryTagDir, family)
	if err != nil {
		return nil, err
	}
	var out []Tag
	seen := map[string]bool{}
	for _, doc := range docs {
		tags, errs := ParseTags(doc.Object)
		tree.SkipFields(family, doc.Path, errs)
		for _, t := range tags {
			if seen[t.Tag] {
				tree.Diagnostics().Dropped("countries", "duplicate_tag")
				continue
			}
			seen[t.Tag] = true
			out = append(out, t)
		}
	}
	return out, nil
}

// ParseHistory reads a country history file. Single fields take their first
// top-level value; list fields collect every occurrence. Dated blocks are
// ignored.
func ParseHistory(doc *script.Object) (History, []*script.FieldError) {
	var (
		h    History
		errs []*script.FieldError
	)
	fail := func(key string, err error) {
		errs = append(errs, &script.FieldError{Key: key, Err: err})
	}
	text := func(key string) string {
		v, ok := doc.First(key)
		if !ok {
			return ""
		}
		s, err := v.Text()
		if err != nil {
			fail(key, err)
		}
		return s
	}
	number := func(key string) uint64 {
		v, ok := doc.First(key)
		if !ok {
			return 0
		}
		n, err := v.Uint()
		if err != nil {
			fail(key, err)
		}
		return n
	}
	all := func(key string) []string {
		var out []string
		for _, v := range doc.All(key) {
			s, err := v.Text()
			if err != nil {
				fail(key, err)
				continue
			}
			out = append(out, s)
		}
		return out
	}

	if v, ok := doc.First("setup_vision"); ok {
		b, err := v.Bool()
		if err != nil {
			fail("setup_vision", err)
		}
		h.SetupVision = b
	}
	h.Government = text("government")
	h.GovernmentReforms = all("add_government_reform")
	h.GovernmentRank = number("government_rank")
	h.PrimaryCulture = text("primary_culture")
	h.AcceptedCultures = all("add_accepted_culture")
	h.Religion = text("religion")
	h.TechnologyGroup = text("technology_group")
	h.Capital = number("capital")
	h.FixedCapital = number("fixed_capital")
	h.HistoricalRivals = all("historical_rival")
	h.HistoricalFriends = all("historical_friend")
	return h, errs
}

// ReadHistories parses every country history file, keyed by the tag written
// before the "-" in the file name.
func ReadHistories(tree *source.Tree) (map[string]History, error) {
	const family = "country_history"
	docs, err := tree.Documents(source.CountryHistoryDir, family)
	if err != nil {
		return nil, err
	}
	out := make(map[string]History, len(docs))
	for _, doc := range docs {
		tag := source.IDFromFilename(doc.Name, "-")
		h, errs := ParseHistory(doc.Object)
		tree.SkipFields(family, doc.Path, errs)
		out[tag] = h
	}
	return out, nil
}
