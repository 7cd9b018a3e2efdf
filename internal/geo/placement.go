package geo

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed continents.yaml
var defaultContinents []byte

// ContinentNames maps continent ids to display names.
type ContinentNames map[string]string

type continentFile struct {
	Continents ContinentNames `yaml:"continents"`
}

// ParseContinentNames decodes a continents document.
func ParseContinentNames(data []byte) (ContinentNames, error) {
	var f continentFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode continent names: %w", err)
	}
	if f.Continents == nil {
		f.Continents = ContinentNames{}
	}
	return f.Continents, nil
}

// DefaultContinentNames returns the built-in continent names.
func DefaultContinentNames() ContinentNames {
	names, err := ParseContinentNames(defaultContinents)
	if err != nil {
		panic(err)
	}
	return names
}

// LoadContinentNames reads names from path, or returns the built-in names
// when path is empty.
func LoadContinentNames(path string) (ContinentNames, error) {
	if path == "" {
		return DefaultContinentNames(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read continent names: %w", err)
	}
	return ParseContinentNames(data)
}

// Name returns the display name of a continent, or "" when unknown.
func (n ContinentNames) Name(id string) string { return n[id] }

// Placement is one province with every level above it.
type Placement struct {
	ProvinceID  uint64
	Province    string
	Continent   string
	SuperRegion string
	Region      string
	Area        string
}

// Placements flattens the assembled tree into one row per province, sorted
// by province id. Provinces without a continent are left out.
func Placements(superRegions []SuperRegion, continents Continents, names ContinentNames) []Placement {
	var out []Placement
	for _, sr := range superRegions {
		for _, r := range sr.Regions {
			for _, a := range r.Areas {
				for _, p := range a.Provinces {
					continent, ok := continents.Of(p.ID)
					if !ok {
						continue
					}
					out = append(out, Placement{
						ProvinceID:  p.ID,
						Province:    p.Name,
						Continent:   names.Name(continent),
						SuperRegion: sr.Name,
						Region:      r.Name,
						Area:        a.Name,
					})
				}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProvinceID < out[j].ProvinceID })
	return out
}
