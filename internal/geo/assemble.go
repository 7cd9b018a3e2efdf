package geo

import (
	"fmt"
	"strconv"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"

	"github.com/louisbranch/anbennar-atlas/internal/localisation"
	apperrors "github.com/louisbranch/anbennar-atlas/internal/platform/errors"
	"github.com/louisbranch/anbennar-atlas/internal/platform/logging"
	"github.com/louisbranch/anbennar-atlas/internal/platform/telemetry/metrics"
)

// Levels name the hierarchy in logs, errors and counters.
const (
	LevelProvince    = "province"
	LevelArea        = "area"
	LevelRegion      = "region"
	LevelSuperRegion = "superregion"
)

// Input is everything assembly reads. It is not modified.
type Input struct {
	Areas        []AreaDef
	Regions      []RegionDef
	SuperRegions []SuperRegionDef
	Histories    map[uint64]ProvinceHistory
	Localiser    localisation.Localiser
}

// Assembler builds the super region trees.
//
// References that match nothing are counted and logged in both modes. A
// reference to an entity another parent already owns is a duplicate claim:
// strict mode fails on the first one, lenient mode logs it and moves on.
type Assembler struct {
	Strict      bool
	Logger      *zap.Logger
	Diagnostics *metrics.Diagnostics
}

// Assemble claims provinces into areas, areas into regions and regions into
// super regions, in file order. Regions and super regions left empty are
// dropped, as are areas and regions no parent claims.
func (a *Assembler) Assemble(in Input) ([]SuperRegion, error) {
	logger := logging.OrNop(a.Logger)
	loc := in.Localiser
	if loc == nil {
		loc = localisation.Table{}
	}

	provinces := NewPool[uint64, Province]()
	areas := NewPool[string, Area]()
	for _, def := range in.Areas {
		if areas.Known(def.ID) {
			a.duplicateDefinition(logger, LevelArea, def.ID)
			continue
		}
		area := Area{ID: def.ID, Name: text(loc, def.ID+"_name")}
		for _, id := range def.Provinces {
			// Only kept definitions seed the pool.
			if !provinces.Known(id) {
				provinces.Put(id, newProvince(id, loc, in.Histories))
			}
			p, ok, err := claim(a, logger, provinces, LevelProvince, id, def.ID, nil)
			if err != nil {
				return nil, err
			}
			if ok {
				area.Provinces = append(area.Provinces, p)
			}
		}
		areas.Put(def.ID, area)
	}

	regions := NewPool[string, Region]()
	for _, def := range in.Regions {
		if regions.Known(def.ID) {
			a.duplicateDefinition(logger, LevelRegion, def.ID)
			continue
		}
		region := Region{ID: def.ID, Name: text(loc, def.ID+"_name")}
		for _, id := range def.Areas {
			area, ok, err := claim(a, logger, areas, LevelArea, id, def.ID, areas.Keys)
			if err != nil {
				return nil, err
			}
			if ok {
				region.Areas = append(region.Areas, area)
			}
		}
		if len(region.Areas) == 0 {
			a.dropEmpty(logger, LevelRegion, def.ID)
			regions.Retire(def.ID)
			continue
		}
		regions.Put(def.ID, region)
	}

	var out []SuperRegion
	seen := map[string]bool{}
	for _, def := range in.SuperRegions {
		if seen[def.ID] {
			a.duplicateDefinition(logger, LevelSuperRegion, def.ID)
			continue
		}
		seen[def.ID] = true
		sr := SuperRegion{ID: def.ID, Name: text(loc, def.ID)}
		for _, id := range def.Members {
			if id == RestrictCharter {
				sr.RestrictCharter = true
				continue
			}
			region, ok, err := claim(a, logger, regions, LevelRegion, id, def.ID, regions.Keys)
			if err != nil {
				return nil, err
			}
			if ok {
				sr.Regions = append(sr.Regions, region)
			}
		}
		if len(sr.Regions) == 0 {
			a.dropEmpty(logger, LevelSuperRegion, def.ID)
			continue
		}
		out = append(out, sr)
	}

	for _, id := range provinces.Remaining() {
		logger.Debug("province not claimed by any area", zap.Uint64("province", id))
	}
	for _, id := range areas.Remaining() {
		logger.Debug("area not claimed by any region", zap.String("area", id))
	}
	for _, id := range regions.Remaining() {
		logger.Debug("region not claimed by any super region", zap.String("region", id))
	}
	return out, nil
}

func newProvince(id uint64, loc localisation.Localiser, histories map[uint64]ProvinceHistory) Province {
	key := strconv.FormatUint(id, 10)
	p := Province{
		ID:        id,
		Name:      text(loc, "PROV"+key),
		Adjective: text(loc, "PROV_ADJ"+key),
	}
	if h, ok := histories[id]; ok {
		p.History = &h
	}
	return p
}

func text(loc localisation.Localiser, key string) string {
	s, _ := loc.Lookup(key)
	return s
}

// claim takes key from pool on behalf of parent. It reports false when the
// reference is skipped and returns an error only for a duplicate claim in
// strict mode.
func claim[K comparable, V any](a *Assembler, logger *zap.Logger, pool *Pool[K, V], level string, key K, parent string, candidates func() []string) (V, bool, error) {
	v, status, owner := pool.Take(key, parent)
	child := fmt.Sprint(key)
	switch status {
	case Taken:
		return v, true, nil
	case AlreadyClaimed:
		a.Diagnostics.DuplicateClaim(level)
		if a.Strict {
			return v, false, apperrors.WithMetadata(
				apperrors.CodeDuplicateClaim,
				fmt.Sprintf("%s %s claimed by both %s and %s", level, child, owner, parent),
				map[string]string{"level": level, "child": child, "owner": owner, "parent": parent},
			)
		}
		logger.Warn("duplicate claim skipped",
			zap.String("level", level),
			zap.String("child", child),
			zap.String("owner", owner),
			zap.String("parent", parent),
		)
	case Retired:
		logger.Debug("reference to dropped entity skipped",
			zap.String("level", level),
			zap.String("child", child),
			zap.String("parent", parent),
		)
	default:
		a.Diagnostics.Unresolved(level)
		fields := []zap.Field{
			zap.String("level", level),
			zap.String("child", child),
			zap.String("parent", parent),
		}
		if candidates != nil {
			if s, ok := Suggest(child, candidates()); ok {
				fields = append(fields, zap.String("suggestion", s))
			}
		}
		logger.Warn("unresolved reference", fields...)
	}
	return v, false, nil
}

func (a *Assembler) duplicateDefinition(logger *zap.Logger, level, id string) {
	a.Diagnostics.Dropped(level, "duplicate_definition")
	logger.Warn("duplicate definition ignored", zap.String("level", level), zap.String("id", id))
}

func (a *Assembler) dropEmpty(logger *zap.Logger, level, id string) {
	a.Diagnostics.Dropped(level, "empty")
	logger.Debug("dropping empty entity", zap.String("level", level), zap.String("id", id))
}

// Suggest returns the candidate closest to name by edit distance, when it is
// close enough to be a plausible typo.
func Suggest(name string, candidates []string) (string, bool) {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	limit := len(name) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return "", false
	}
	return best, true
}
