package atlas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/louisbranch/anbennar-atlas/internal/geo"
	"github.com/louisbranch/anbennar-atlas/internal/localisation"
	entrypoint "github.com/louisbranch/anbennar-atlas/internal/platform/cmd"
	"github.com/louisbranch/anbennar-atlas/internal/platform/logging"
	"github.com/louisbranch/anbennar-atlas/internal/platform/telemetry/metrics"
	"github.com/louisbranch/anbennar-atlas/internal/storage"
	"github.com/louisbranch/anbennar-atlas/internal/storage/sqlite"
)

// Summary counts what one run produced.
type Summary struct {
	GameDir         string   `json:"game_dir"`
	Language        string   `json:"language"`
	SuperRegions    int      `json:"super_regions"`
	Regions         int      `json:"regions"`
	Areas           int      `json:"areas"`
	Provinces       int      `json:"provinces"`
	Placements      int      `json:"placements"`
	Countries       int      `json:"countries"`
	EndGame         int      `json:"end_game_countries"`
	Formable        int      `json:"formable_countries"`
	WithMissions    int      `json:"countries_with_missions"`
	Governments     int      `json:"governments"`
	IdeaGroups      int      `json:"idea_groups"`
	MissionTrees    int      `json:"mission_trees"`
	RacialModifiers int      `json:"racial_modifiers"`
	RunID           string   `json:"run_id,omitempty"`
	Diagnostics     []string `json:"diagnostics,omitempty"`
}

// Summarise counts the entities of a model.
func Summarise(m *Model) Summary {
	s := Summary{
		GameDir:         m.GameDir,
		Language:        m.Language.String(),
		SuperRegions:    len(m.SuperRegions),
		Placements:      len(m.Placements),
		Countries:       len(m.Countries),
		Governments:     len(m.Governments),
		IdeaGroups:      len(m.Ideas),
		MissionTrees:    len(m.Missions),
		RacialModifiers: len(m.RacialModifiers),
	}
	for _, sr := range m.SuperRegions {
		s.Regions += len(sr.Regions)
		for _, r := range sr.Regions {
			s.Areas += len(r.Areas)
		}
		s.Provinces += sr.ProvinceCount()
	}
	for _, c := range m.Countries {
		if c.EndGame {
			s.EndGame++
		}
		if c.Formable {
			s.Formable++
		}
		if c.HasMissions {
			s.WithMissions++
		}
	}
	return s
}

// Run builds the model and prints a summary. The model is stored when a
// database path is set and the run is not a dry run.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAtlas, func(ctx context.Context) error {
		return run(ctx, cfg, out, logger)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer, logger *zap.Logger) error {
	if out == nil {
		out = io.Discard
	}
	logger = logging.OrNop(logger)

	tag, err := localisation.ParseLanguage(cfg.Language)
	if err != nil {
		return err
	}
	names, err := geo.LoadContinentNames(cfg.Continents)
	if err != nil {
		return err
	}

	diagnostics := metrics.NewDiagnostics()
	model, err := Build(ctx, Options{
		GameDir:     cfg.GameDir,
		Language:    tag,
		Strict:      cfg.Strict,
		Continents:  names,
		Logger:      logger,
		Diagnostics: diagnostics,
	})
	if err != nil {
		return err
	}

	summary := Summarise(model)
	if cfg.DBPath != "" && !cfg.DryRun {
		runID, err := save(ctx, cfg.DBPath, model, logger)
		if err != nil {
			return err
		}
		summary.RunID = runID
	}

	samples, err := diagnostics.Samples()
	if err != nil {
		return err
	}
	for _, sample := range samples {
		summary.Diagnostics = append(summary.Diagnostics, sample.String())
	}

	if cfg.JSONOutput {
		encoded, err := json.Marshal(summary)
		if err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
		_, err = fmt.Fprintln(out, string(encoded))
		return err
	}
	if err := writeSummary(out, summary); err != nil {
		return err
	}
	if cfg.Reports {
		if err := writeSuperRegionReport(out, model.SuperRegions); err != nil {
			return err
		}
	}
	return diagnostics.WriteSummary(out)
}

// openStore opens the content store at path.
var openStore = func(ctx context.Context, path string) (storage.ModelStore, error) {
	return sqlite.Open(ctx, path)
}

func save(ctx context.Context, path string, model *Model, logger *zap.Logger) (string, error) {
	store, err := openStore(ctx, path)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close store", zap.String("path", path), zap.Error(err))
		}
	}()
	saved, err := store.SaveModel(ctx, model.Snapshot())
	if err != nil {
		return "", err
	}
	logger.Info("model stored", zap.String("path", path), zap.String("run_id", saved.ID))
	return saved.ID, nil
}

func writeSummary(w io.Writer, s Summary) error {
	lines := []struct {
		label string
		value int
	}{
		{"super regions", s.SuperRegions},
		{"regions", s.Regions},
		{"areas", s.Areas},
		{"provinces", s.Provinces},
		{"placements", s.Placements},
		{"countries", s.Countries},
		{"end-game countries", s.EndGame},
		{"formable countries", s.Formable},
		{"countries with missions", s.WithMissions},
		{"governments", s.Governments},
		{"idea groups", s.IdeaGroups},
		{"mission trees", s.MissionTrees},
		{"racial modifiers", s.RacialModifiers},
	}
	if _, err := fmt.Fprintf(w, "atlas: %s (%s)\n", s.GameDir, s.Language); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "  %-24s %d\n", line.label+":", line.value); err != nil {
			return err
		}
	}
	if s.RunID != "" {
		if _, err := fmt.Fprintf(w, "stored run %s\n", s.RunID); err != nil {
			return err
		}
	}
	return nil
}

func writeSuperRegionReport(w io.Writer, superRegions []geo.SuperRegion) error {
	if _, err := fmt.Fprintln(w, "super regions:"); err != nil {
		return err
	}
	for _, sr := range superRegions {
		name := sr.Name
		if name == "" {
			name = sr.ID
		}
		if _, err := fmt.Fprintf(w, "  %s %q: %d regions, %d provinces\n", sr.ID, name, len(sr.Regions), sr.ProvinceCount()); err != nil {
			return err
		}
	}
	return nil
}
