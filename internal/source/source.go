// Package source locates and reads the game data directory.
//
// Missing required paths are fatal. Individual files that fail to read or
// parse are logged, counted, and skipped so one bad file never stops a build.
package source

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/louisbranch/anbennar-atlas/internal/platform/errors"
	"github.com/louisbranch/anbennar-atlas/internal/platform/logging"
	"github.com/louisbranch/anbennar-atlas/internal/platform/telemetry/metrics"
	"github.com/louisbranch/anbennar-atlas/internal/script"
)

// Well-known paths relative to the game root.
const (
	AreaFile           = "map/area.txt"
	RegionFile         = "map/region.txt"
	SuperRegionFile    = "map/superregion.txt"
	ContinentFile      = "map/continent.txt"
	ProvinceHistoryDir = "history/provinces"
	CountryHistoryDir  = "history/countries"
	CountryTagDir      = "common/country_tags"
	LocalisationDir    = "localisation"
	ScriptedTriggerDir = "common/scripted_triggers"
	DecisionDir        = "decisions"
	EventDir           = "events"
	MissionDir         = "missions"
	GovernmentDir      = "common/governments"
	ReformDir          = "common/government_reforms"
	IdeaDir            = "common/ideas"
	RacialModifierFile = "common/event_modifiers/racial_admin_military.txt"
)

// Required lists the inputs without which no model can be built.
var Required = []string{
	AreaFile,
	RegionFile,
	SuperRegionFile,
	ProvinceHistoryDir,
	CountryHistoryDir,
	CountryTagDir,
	LocalisationDir,
}

// Tree is a game data directory.
type Tree struct {
	root        string
	logger      *zap.Logger
	diagnostics *metrics.Diagnostics
}

// Document is one parsed file.
type Document struct {
	Path   string // relative to the tree root, slash separated
	Name   string // base file name
	Object *script.Object
}

// Open checks that root is a directory.
func Open(root string, logger *zap.Logger, diagnostics *metrics.Diagnostics) (*Tree, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, missing(root, err)
	}
	return &Tree{root: root, logger: logging.OrNop(logger), diagnostics: diagnostics}, nil
}

// Root returns the directory the tree was opened at.
func (t *Tree) Root() string { return t.root }

// Path joins rel onto the root.
func (t *Tree) Path(rel string) string {
	return filepath.Join(t.root, filepath.FromSlash(rel))
}

// Exists reports whether rel is present.
func (t *Tree) Exists(rel string) bool {
	_, err := os.Stat(t.Path(rel))
	return err == nil
}

// Require fails with MISSING_INPUT naming the first absent path.
func (t *Tree) Require(paths ...string) error {
	for _, rel := range paths {
		if _, err := os.Stat(t.Path(rel)); err != nil {
			return missing(rel, err)
		}
	}
	return nil
}

func missing(path string, cause error) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeMissingInput,
		fmt.Sprintf("missing required input %s", path),
		map[string]string{"path": path},
		cause,
	)
}

// Files lists the regular files under dir, recursively, sorted by path. When
// ext is set only files with that extension are listed.
func (t *Tree) Files(dir, ext string) ([]string, error) {
	base := t.Path(dir)
	var out []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext != "" && !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}
		rel, err := filepath.Rel(t.root, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, missing(dir, err)
	}
	sort.Strings(out)
	return out, nil
}

// Document parses one file. Callers decide whether a failure is fatal.
func (t *Tree) Document(rel string) (*script.Object, error) {
	obj, err := script.ReadFile(t.Path(rel))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, missing(rel, err)
		}
		return nil, apperrors.WrapWithMetadata(apperrors.CodeParseFailed, "parse "+rel, map[string]string{"path": rel}, err)
	}
	return obj, nil
}

// Documents parses every .txt file under dir. Files that fail are logged,
// counted under family, and skipped.
func (t *Tree) Documents(dir, family string) ([]Document, error) {
	paths, err := t.Files(dir, ".txt")
	if err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(paths))
	for _, rel := range paths {
		obj, err := t.Document(rel)
		if err != nil {
			t.Skip(family, rel, err)
			continue
		}
		docs = append(docs, Document{Path: rel, Name: filepath.Base(rel), Object: obj})
	}
	return docs, nil
}

// Skip logs and counts a file that could not be used.
func (t *Tree) Skip(family, rel string, err error) {
	t.logger.Warn("skipping file",
		zap.String("family", family),
		zap.String("path", rel),
		zap.Error(err),
	)
	t.diagnostics.FileSkipped(family)
}

// SkipFields logs and counts fields that were left at their defaults.
func (t *Tree) SkipFields(family, rel string, errs []*script.FieldError) {
	for _, fe := range errs {
		t.logger.Warn("skipping field",
			zap.String("family", family),
			zap.String("path", rel),
			zap.String("field", fe.Key),
			zap.Int("line", fe.Line),
			zap.Error(fe.Err),
		)
		t.diagnostics.FieldSkipped(family, fe.Key)
	}
}

// Logger returns the tree's logger.
func (t *Tree) Logger() *zap.Logger { return t.logger }

// Diagnostics returns the run counters, which may be nil.
func (t *Tree) Diagnostics() *metrics.Diagnostics { return t.diagnostics }

// IDFromFilename returns the join key written before the first sep in a file
// name, trimmed: "123 - Adenica.txt" gives "123". Names without sep give the
// name without its extension.
func IDFromFilename(name, sep string) string {
	name = filepath.Base(name)
	if i := strings.Index(name, sep); i >= 0 {
		return strings.TrimSpace(name[:i])
	}
	return strings.TrimSpace(strings.TrimSuffix(name, filepath.Ext(name)))
}
