package atlas

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/louisbranch/anbennar-atlas/internal/country"
	"github.com/louisbranch/anbennar-atlas/internal/geo"
	"github.com/louisbranch/anbennar-atlas/internal/government"
	"github.com/louisbranch/anbennar-atlas/internal/idea"
	"github.com/louisbranch/anbennar-atlas/internal/localisation"
	"github.com/louisbranch/anbennar-atlas/internal/mission"
	"github.com/louisbranch/anbennar-atlas/internal/platform/logging"
	"github.com/louisbranch/anbennar-atlas/internal/platform/otel"
	"github.com/louisbranch/anbennar-atlas/internal/platform/telemetry/metrics"
	"github.com/louisbranch/anbennar-atlas/internal/scan"
	"github.com/louisbranch/anbennar-atlas/internal/source"
	"github.com/louisbranch/anbennar-atlas/internal/storage"
)

// Options controls one build.
type Options struct {
	GameDir  string
	Language language.Tag
	// Strict fails the build on the first duplicate claim.
	Strict bool
	// Continents names continent ids. Nil uses the built-in names.
	Continents  geo.ContinentNames
	Logger      *zap.Logger
	Diagnostics *metrics.Diagnostics
}

// Model is everything derived from one game directory.
type Model struct {
	GameDir         string
	Language        language.Tag
	SuperRegions    []geo.SuperRegion
	Placements      []geo.Placement
	Countries       []country.Country
	Governments     []government.Listing
	Ideas           []idea.Set
	Missions        []mission.Tree
	RacialModifiers []idea.RacialModifier
}

// Snapshot returns the part of the model the content store keeps.
func (m *Model) Snapshot() storage.Snapshot {
	return storage.Snapshot{
		GameDir:      m.GameDir,
		Countries:    m.Countries,
		Placements:   m.Placements,
		SuperRegions: m.SuperRegions,
		Governments:  m.Governments,
	}
}

// inputs are the files read before any cross-referencing.
type inputs struct {
	bundle       *localisation.Bundle
	areas        []geo.AreaDef
	regions      []geo.RegionDef
	superRegions []geo.SuperRegionDef
	continents   geo.Continents
	provinces    map[uint64]geo.ProvinceHistory
	tags         []country.Tag
	histories    map[string]country.History
}

// Build reads the game directory and resolves every cross-reference. Reads
// and scans run in parallel; assembly and enrichment run in order on the
// results.
func Build(ctx context.Context, opts Options) (*Model, error) {
	logger := logging.OrNop(opts.Logger)
	ctx, span := otel.Tracer().Start(ctx, "atlas.build", trace.WithAttributes(
		attribute.String("atlas.game_dir", opts.GameDir),
		attribute.Bool("atlas.strict", opts.Strict),
	))
	defer span.End()

	model, err := build(ctx, opts, logger)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return model, nil
}

func build(ctx context.Context, opts Options, logger *zap.Logger) (*Model, error) {
	if opts.Continents == nil {
		opts.Continents = geo.DefaultContinentNames()
	}
	if opts.Language == language.Und {
		opts.Language = localisation.BaseLanguage
	}

	tree, err := source.Open(opts.GameDir, logger, opts.Diagnostics)
	if err != nil {
		return nil, err
	}
	if err := tree.Require(source.Required...); err != nil {
		return nil, err
	}

	in, err := readStage(ctx, tree)
	if err != nil {
		return nil, err
	}
	if !in.bundle.HasLanguage(opts.Language) {
		logger.Warn("language not found, using base language",
			zap.String("language", opts.Language.String()),
			zap.String("base", localisation.BaseLanguage.String()),
		)
	}
	loc := in.bundle.For(opts.Language)

	sets, err := scanStage(ctx, tree)
	if err != nil {
		return nil, err
	}

	model := &Model{GameDir: opts.GameDir, Language: opts.Language}
	if err := stage(ctx, "atlas.assemble", func(context.Context) error {
		assembler := geo.Assembler{Strict: opts.Strict, Logger: logger, Diagnostics: opts.Diagnostics}
		superRegions, err := assembler.Assemble(geo.Input{
			Areas:        in.areas,
			Regions:      in.regions,
			SuperRegions: in.superRegions,
			Histories:    in.provinces,
			Localiser:    loc,
		})
		if err != nil {
			return err
		}
		model.SuperRegions = superRegions
		model.Placements = geo.Placements(superRegions, in.continents, opts.Continents)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := stage(ctx, "atlas.enrich", func(context.Context) error {
		ideas, err := idea.Read(tree, loc)
		if err != nil {
			return err
		}
		model.Ideas = ideas
		sets.IdeaGroups = idea.NewIndex(ideas).Names()
		enricher := country.Enricher{Logger: logger, Diagnostics: opts.Diagnostics}
		model.Countries = enricher.Enrich(in.tags, in.histories, loc, sets)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := stage(ctx, "atlas.catalogue", func(context.Context) error {
		govs, err := government.ReadGovernments(tree)
		if err != nil {
			return err
		}
		reforms, err := government.ReadReforms(tree, loc)
		if err != nil {
			return err
		}
		resolver := government.Resolver{Logger: logger, Diagnostics: opts.Diagnostics}
		model.Governments = resolver.Resolve(govs, reforms, loc)

		if model.Missions, err = mission.Read(tree); err != nil {
			return err
		}
		if model.RacialModifiers, err = idea.ReadRacialModifiers(tree); err != nil {
			return err
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.Info("model built",
		zap.Int("super_regions", len(model.SuperRegions)),
		zap.Int("placements", len(model.Placements)),
		zap.Int("countries", len(model.Countries)),
	)
	return model, nil
}

func readStage(ctx context.Context, tree *source.Tree) (inputs, error) {
	var in inputs
	err := stage(ctx, "atlas.read", func(ctx context.Context) error {
		g, ctx := errgroup.WithContext(ctx)
		read := func(fn func() error) {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				return fn()
			})
		}

		read(func() (err error) {
			in.bundle, err = localisation.Load(tree)
			return err
		})
		read(func() (err error) {
			in.provinces, err = geo.ReadProvinceHistories(tree)
			return err
		})
		read(func() (err error) {
			in.histories, err = country.ReadHistories(tree)
			return err
		})
		read(func() (err error) {
			in.tags, err = country.ReadTags(tree)
			return err
		})
		read(func() (err error) {
			if in.areas, err = geo.ReadAreas(tree); err != nil {
				return err
			}
			if in.regions, err = geo.ReadRegions(tree); err != nil {
				return err
			}
			if in.superRegions, err = geo.ReadSuperRegions(tree); err != nil {
				return err
			}
			in.continents, err = geo.ReadContinents(tree)
			return err
		})
		return g.Wait()
	})
	return in, err
}

func scanStage(ctx context.Context, tree *source.Tree) (country.Sets, error) {
	var sets country.Sets
	err := stage(ctx, "atlas.scan", func(context.Context) error {
		var g errgroup.Group
		scanInto := func(dst *scan.Set, fn func(*source.Tree) (scan.Set, error)) {
			g.Go(func() error {
				set, err := fn(tree)
				if err != nil {
					return err
				}
				*dst = set
				return nil
			})
		}
		scanInto(&sets.EndGame, country.EndGameTags)
		scanInto(&sets.Formable, country.FormableTags)
		scanInto(&sets.Missions, country.MissionTags)
		return g.Wait()
	})
	return sets, err
}

// stage runs fn inside a span named name.
func stage(ctx context.Context, name string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ctx, span := otel.Tracer().Start(ctx, name)
	defer span.End()
	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
