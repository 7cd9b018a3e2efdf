package geo

import (
	"strconv"

	"github.com/louisbranch/anbennar-atlas/internal/script"
	"github.com/louisbranch/anbennar-atlas/internal/source"
)

// ParseAreas reads area.txt: one block of province ids per area. Items that
// are not province ids are reported and left out.
func ParseAreas(doc *script.Object) ([]AreaDef, []*script.FieldError) {
	var (
		out  []AreaDef
		errs []*script.FieldError
	)
	for _, f := range doc.Fields() {
		def := AreaDef{ID: f.Key}
		items, err := f.Value.Array()
		if err != nil && f.Value.IsBlock() {
			// only a color entry: an area without provinces
			items, err = nil, nil
		}
		if err != nil {
			errs = append(errs, script.NewFieldError(f, err))
			continue
		}
		for _, item := range items {
			id, err := item.Uint()
			if err != nil {
				errs = append(errs, script.NewFieldError(f, err))
				continue
			}
			def.Provinces = append(def.Provinces, id)
		}
		out = append(out, def)
	}
	return out, errs
}

// ParseRegions reads region.txt. Each region lists its areas in one or more
// "areas" blocks; other fields (monsoon dates) are ignored.
func ParseRegions(doc *script.Object) ([]RegionDef, []*script.FieldError) {
	var (
		out  []RegionDef
		errs []*script.FieldError
	)
	for _, f := range doc.Fields() {
		def := RegionDef{ID: f.Key}
		body, err := f.Value.Object()
		if err != nil {
			errs = append(errs, script.NewFieldError(f, err))
			continue
		}
		for _, af := range body.Fields() {
			if af.Key != "areas" {
				continue
			}
			ids, err := af.Value.Strings()
			if err != nil {
				errs = append(errs, script.NewFieldError(af, err))
				continue
			}
			def.Areas = append(def.Areas, ids...)
		}
		out = append(out, def)
	}
	return out, errs
}

// ParseSuperRegions reads superregion.txt: one list of region ids per super
// region, possibly including RestrictCharter.
func ParseSuperRegions(doc *script.Object) ([]SuperRegionDef, []*script.FieldError) {
	var (
		out  []SuperRegionDef
		errs []*script.FieldError
	)
	for _, f := range doc.Fields() {
		members, err := f.Value.Strings()
		if err != nil {
			errs = append(errs, script.NewFieldError(f, err))
			continue
		}
		out = append(out, SuperRegionDef{ID: f.Key, Members: members})
	}
	return out, errs
}

// ParseProvinceHistory reads the starting state of one province. Dated
// blocks are ignored; owner and trade goods take the last top-level value,
// everything else the first.
func ParseProvinceHistory(doc *script.Object) (ProvinceHistory, []*script.FieldError) {
	var (
		h    ProvinceHistory
		errs []*script.FieldError
	)
	text := func(key string, last bool) string {
		var (
			v  script.Value
			ok bool
		)
		if last {
			v, ok = doc.Last(key)
		} else {
			v, ok = doc.First(key)
		}
		if !ok {
			return ""
		}
		s, err := v.Text()
		if err != nil {
			errs = append(errs, &script.FieldError{Key: key, Err: err})
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
			errs = append(errs, &script.FieldError{Key: key, Err: err})
		}
		return n
	}

	h.Owner = text("owner", true)
	h.Controller = text("controller", false)
	h.Culture = text("culture", false)
	h.Religion = text("religion", false)
	h.TradeGoods = text("trade_goods", true)
	h.BaseTax = number("base_tax")
	h.BaseProduction = number("base_production")
	h.BaseManpower = number("base_manpower")
	if v, ok := doc.First("is_city"); ok {
		b, err := v.Bool()
		if err != nil {
			errs = append(errs, &script.FieldError{Key: "is_city", Err: err})
		}
		h.IsCity = b
	}
	return h, errs
}

// ReadAreas parses the area file. A missing file is fatal.
func ReadAreas(tree *source.Tree) ([]AreaDef, error) {
	doc, err := tree.Document(source.AreaFile)
	if err != nil {
		return nil, err
	}
	defs, errs := ParseAreas(doc)
	tree.SkipFields("areas", source.AreaFile, errs)
	return defs, nil
}

// ReadRegions parses the region file. A missing file is fatal.
func ReadRegions(tree *source.Tree) ([]RegionDef, error) {
	doc, err := tree.Document(source.RegionFile)
	if err != nil {
		return nil, err
	}
	defs, errs := ParseRegions(doc)
	tree.SkipFields("regions", source.RegionFile, errs)
	return defs, nil
}

// ReadSuperRegions parses the super region file. A missing file is fatal.
func ReadSuperRegions(tree *source.Tree) ([]SuperRegionDef, error) {
	doc, err := tree.Document(source.SuperRegionFile)
	if err != nil {
		return nil, err
	}
	defs, errs := ParseSuperRegions(doc)
	tree.SkipFields("superregions", source.SuperRegionFile, errs)
	return defs, nil
}

// ReadProvinceHistories parses every province history file, keyed by the id
// written before the "-" in the file name. Files whose name does not start
// with an id are skipped.
func ReadProvinceHistories(tree *source.Tree) (map[uint64]ProvinceHistory, error) {
	const family = "province_history"
	docs, err := tree.Documents(source.ProvinceHistoryDir, family)
	if err != nil {
		return nil, err
	}
	out := make(map[uint64]ProvinceHistory, len(docs))
	for _, doc := range docs {
		id, err := strconv.ParseUint(source.IDFromFilename(doc.Name, "-"), 10, 64)
		if err != nil {
			tree.Skip(family, doc.Path, err)
			continue
		}
		h, errs := ParseProvinceHistory(doc.Object)
		tree.SkipFields(family, doc.Path, errs)
		out[id] = h
	}
	return out, nil
}

// Continents maps provinces to the continent listing them.
type Continents struct {
	order      []string
	byProvince map[uint64]string
}

// ParseContinents reads continent.txt. A province listed twice keeps the
// last continent.
func ParseContinents(doc *script.Object) (Continents, []*script.FieldError) {
	c := Continents{byProvince: map[uint64]string{}}
	var errs []*script.FieldError
	for _, f := range doc.Fields() {
		items, err := f.Value.Array()
		if err != nil {
			errs = append(errs, script.NewFieldError(f, err))
			continue
		}
		c.order = append(c.order, f.Key)
		for _, item := range items {
			id, err := item.Uint()
			if err != nil {
				errs = append(errs, script.NewFieldError(f, err))
				continue
			}
			c.byProvince[id] = f.Key
		}
	}
	return c, errs
}

// ReadContinents parses the continent file. The file is optional; without
// it no province has a continent.
func ReadContinents(tree *source.Tree) (Continents, error) {
	if !tree.Exists(source.ContinentFile) {
		tree.Logger().Debug("no continent file")
		return Continents{byProvince: map[uint64]string{}}, nil
	}
	doc, err := tree.Document(source.ContinentFile)
	if err != nil {
		return Continents{}, err
	}
	c, errs := ParseContinents(doc)
	tree.SkipFields("continents", source.ContinentFile, errs)
	return c, nil
}

// Of returns the continent of a province.
func (c Continents) Of(province uint64) (string, bool) {
	id, ok := c.byProvince[province]
	return id, ok
}

// IDs returns the continent ids in file order.
func (c Continents) IDs() []string { return c.order }

// Len returns the number of provinces with a continent.
func (c Continents) Len() int { return len(c.byProvince) }
