// Package geo assembles the map hierarchy: provinces into areas, areas into
// regions and regions into super regions.
//
// The three map files are authored independently and refer to each other
// only by identifier. Assembly drains one pool per level from the top down so
// that every child ends up with at most one parent, and parents left without
// children are dropped.
package geo

// RestrictCharter is the pseudo-member of a super region list that marks it
// as closed to trade company charters.
const RestrictCharter = "restrict_charter"

// Province is one map province. Identity is the numeric id.
type Province struct {
	ID        uint64
	Name      string
	Adjective string
	History   *ProvinceHistory
}

// ProvinceHistory is the starting state recorded for a province.
type ProvinceHistory struct {
	Owner          string
	Controller     string
	Culture        string
	Religion       string
	TradeGoods     string
	BaseTax        uint64
	BaseProduction uint64
	BaseManpower   uint64
	IsCity         bool
}

// Development is the sum of the three base values.
func (h ProvinceHistory) Development() uint64 {
	return h.BaseTax + h.BaseProduction + h.BaseManpower
}

// Area groups provinces. Identity is the id.
type Area struct {
	ID        string
	Name      string
	Provinces []Province
}

// Region groups areas. Identity is the id.
type Region struct {
	ID    string
	Name  string
	Areas []Area
}

// SuperRegion groups regions.
type SuperRegion struct {
	ID              string
	Name            string
	Regions         []Region
	RestrictCharter bool
}

// ProvinceCount returns the number of provinces under the super region.
func (s SuperRegion) ProvinceCount() int {
	n := 0
	for _, r := range s.Regions {
		for _, a := range r.Areas {
			n += len(a.Provinces)
		}
	}
	return n
}

// AreaDef is an area as written in the area file.
type AreaDef struct {
	ID        string
	Provinces []uint64
}

// RegionDef is a region as written in the region file.
type RegionDef struct {
	ID    string
	Areas []string
}

// SuperRegionDef is a super region as written in the super region file.
// Members are region ids or RestrictCharter.
type SuperRegionDef struct {
	ID      string
	Members []string
}
