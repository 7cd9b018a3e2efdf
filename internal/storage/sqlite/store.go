// Package sqlite stores the latest atlas model in SQLite for report
// renderers.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/louisbranch/anbennar-atlas/internal/geo"
	apperrors "github.com/louisbranch/anbennar-atlas/internal/platform/errors"
	"github.com/louisbranch/anbennar-atlas/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/anbennar-atlas/internal/platform/timeouts"
	"github.com/louisbranch/anbennar-atlas/internal/storage"
	"github.com/louisbranch/anbennar-atlas/internal/storage/sqlite/migrations"
)

// Store persists snapshots in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ storage.ModelStore = (*Store)(nil)

// Open opens the database at path and applies the embedded schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, storeError("storage path is required", nil)
	}
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)", filepath.Clean(path), timeouts.StoreBusy.Milliseconds())
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, storeError("open sqlite db", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, storeError("ping sqlite db", err)
	}
	if _, err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, storeError("run migrations", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func storeError(msg string, cause error) error {
	if cause == nil {
		return apperrors.New(apperrors.CodeStoreFailed, msg)
	}
	return apperrors.Wrap(apperrors.CodeStoreFailed, msg, cause)
}

// SaveModel replaces the stored model with snap in one transaction and
// records the run.
func (s *Store) SaveModel(ctx context.Context, snap storage.Snapshot) (storage.Run, error) {
	if s == nil || s.sqlDB == nil {
		return storage.Run{}, storeError("storage is not configured", nil)
	}
	run := storage.Run{
		ID:           uuid.NewString(),
		CreatedAt:    s.now().UTC(),
		GameDir:      snap.GameDir,
		Countries:    len(snap.Countries),
		Provinces:    len(snap.Placements),
		SuperRegions: len(snap.SuperRegions),
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return storage.Run{}, storeError("begin snapshot", err)
	}
	if err := writeSnapshot(ctx, tx, run, snap); err != nil {
		_ = tx.Rollback()
		return storage.Run{}, storeError("write snapshot", err)
	}
	if err := tx.Commit(); err != nil {
		return storage.Run{}, storeError("commit snapshot", err)
	}
	return run, nil
}

func writeSnapshot(ctx context.Context, tx *sql.Tx, run storage.Run, snap storage.Snapshot) error {
	for _, table := range []string{"countries", "placements", "reforms"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, c := range snap.Countries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO countries (tag, name, title, adjective, culture, religion, end_game, formable, has_missions, idea_group)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.Tag, c.Name, c.Title(), c.Adjective, c.Culture, c.Religion,
			c.EndGame, c.Formable, c.HasMissions, c.IdeaGroup,
		); err != nil {
			return fmt.Errorf("insert country %s: %w", c.Tag, err)
		}
	}

	for _, p := range snap.Placements {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO placements (province_id, province, continent, super_region, region, area)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			int64(p.ProvinceID), p.Province, p.Continent, p.SuperRegion, p.Region, p.Area,
		); err != nil {
			return fmt.Errorf("insert placement %d: %w", p.ProvinceID, err)
		}
	}

	for _, g := range snap.Governments {
		for _, tier := range g.Tiers {
			for _, r := range tier.Reforms {
				var potential sql.NullString
				if len(r.Potential) > 0 {
					potential = sql.NullString{String: string(r.Potential), Valid: true}
				}
				if _, err := tx.ExecContext(ctx,
					`INSERT OR IGNORE INTO reforms (government, tier, id, name, description, icon, potential)
					 VALUES (?, ?, ?, ?, ?, ?, ?)`,
					g.ID, tier.Level, r.ID, r.Name, r.Description, r.Icon, potential,
				); err != nil {
					return fmt.Errorf("insert reform %s: %w", r.ID, err)
				}
			}
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, game_dir, countries, provinces, super_regions)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.UnixMilli(), run.GameDir, run.Countries, run.Provinces, run.SuperRegions,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// CountRows returns the number of rows in one of the model tables.
func (s *Store) CountRows(ctx context.Context, table string) (int, error) {
	switch table {
	case "runs", "countries", "placements", "reforms":
	default:
		return 0, fmt.Errorf("unknown table %q", table)
	}
	var n int
	if err := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, storeError("count "+table, err)
	}
	return n, nil
}

// LatestRun returns the most recent run.
func (s *Store) LatestRun(ctx context.Context) (storage.Run, bool, error) {
	var (
		run     storage.Run
		created int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, created_at, game_dir, countries, provinces, super_regions
		 FROM runs ORDER BY created_at DESC, rowid DESC LIMIT 1`,
	).Scan(&run.ID, &created, &run.GameDir, &run.Countries, &run.Provinces, &run.SuperRegions)
	if err == sql.ErrNoRows {
		return storage.Run{}, false, nil
	}
	if err != nil {
		return storage.Run{}, false, storeError("latest run", err)
	}
	run.CreatedAt = time.UnixMilli(created).UTC()
	return run, true, nil
}

// CountryRow is a stored country.
type CountryRow struct {
	Tag         string
	Name        string
	Title       string
	Adjective   string
	Culture     string
	Religion    string
	EndGame     bool
	Formable    bool
	HasMissions bool
	IdeaGroup   string
}

// ListCountries returns the stored countries ordered by tag.
func (s *Store) ListCountries(ctx context.Context) ([]CountryRow, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT tag, name, title, adjective, culture, religion, end_game, formable, has_missions, idea_group
		 FROM countries ORDER BY tag`,
	)
	if err != nil {
		return nil, storeError("list countries", err)
	}
	defer rows.Close()

	var out []CountryRow
	for rows.Next() {
		var c CountryRow
		if err := rows.Scan(&c.Tag, &c.Name, &c.Title, &c.Adjective, &c.Culture, &c.Religion,
			&c.EndGame, &c.Formable, &c.HasMissions, &c.IdeaGroup); err != nil {
			return nil, storeError("scan country", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list countries", err)
	}
	return out, nil
}

// ListPlacements returns the stored placements ordered by province id.
func (s *Store) ListPlacements(ctx context.Context) ([]geo.Placement, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT province_id, province, continent, super_region, region, area
		 FROM placements ORDER BY province_id`,
	)
	if err != nil {
		return nil, storeError("list placements", err)
	}
	defer rows.Close()

	var out []geo.Placement
	for rows.Next() {
		var (
			p  geo.Placement
			id int64
		)
		if err := rows.Scan(&id, &p.Province, &p.Continent, &p.SuperRegion, &p.Region, &p.Area); err != nil {
			return nil, storeError("scan placement", err)
		}
		p.ProvinceID = uint64(id)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list placements", err)
	}
	return out, nil
}
