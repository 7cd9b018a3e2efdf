package storage

import (
	"context"
	"time"

	"github.com/louisbranch/anbennar-atlas/internal/country"
	"github.com/louisbranch/anbennar-atlas/internal/geo"
	"github.com/louisbranch/anbennar-atlas/internal/government"
)

// Snapshot is everything one run writes.
type Snapshot struct {
	GameDir      string
	Countries    []country.Country
	Placements   []geo.Placement
	SuperRegions []geo.SuperRegion
	Governments  []government.Listing
}

// Run is the record of one saved snapshot.
type Run struct {
	ID           string
	CreatedAt    time.Time
	GameDir      string
	Countries    int
	Provinces    int
	SuperRegions int
}

// ModelStore persists snapshots. Saving replaces the previous snapshot.
type ModelStore interface {
	SaveModel(ctx context.Context, snap Snapshot) (Run, error)
	LatestRun(ctx context.Context) (Run, bool, error)
	Close() error
}
