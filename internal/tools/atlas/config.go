// Package atlas builds the cross-referenced model of a game directory and
// optionally stores it for report renderers.
package atlas

import (
	"errors"
	"flag"
	"strings"
	"time"

	"github.com/louisbranch/anbennar-atlas/internal/localisation"
	entrypoint "github.com/louisbranch/anbennar-atlas/internal/platform/cmd"
	"github.com/louisbranch/anbennar-atlas/internal/platform/timeouts"
)

// Config holds atlas command configuration.
type Config struct {
	GameDir    string        `env:"GAME_DIR"`
	DBPath     string        `env:"DB_PATH"`
	Language   string        `env:"LANGUAGE" envDefault:"english"`
	Continents string        `env:"CONTINENTS"`
	Strict     bool          `env:"STRICT"`
	Verbose    bool          `env:"VERBOSE"`
	Timeout    time.Duration `env:"TIMEOUT"`
	DryRun     bool
	Reports    bool
	JSONOutput bool
}

// ParseConfig parses environment and flags into a Config. Flags win over
// the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Language: "english", Timeout: timeouts.Build}

	fs.StringVar(&cfg.GameDir, "dir", cfg.GameDir, "game data directory (default: ATLAS_GAME_DIR)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "sqlite database to store the model in (default: ATLAS_DB_PATH, empty = do not store)")
	fs.StringVar(&cfg.Language, "language", cfg.Language, "localisation language, a game name (english) or a BCP 47 tag")
	fs.StringVar(&cfg.Continents, "continents", cfg.Continents, "YAML file of continent display names (default: built-in names)")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "fail on the first duplicate claim instead of skipping it")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log silent drops at debug level")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "build the model without storing it")
	fs.BoolVar(&cfg.Reports, "reports", false, "print a per super region breakdown")
	fs.BoolVar(&cfg.JSONOutput, "json", false, "output a JSON summary")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}

	cfg.GameDir = strings.TrimSpace(cfg.GameDir)
	cfg.DBPath = strings.TrimSpace(cfg.DBPath)
	if cfg.GameDir == "" {
		return Config{}, errors.New("-dir is required")
	}
	if _, err := localisation.ParseLanguage(cfg.Language); err != nil {
		return Config{}, err
	}
	if cfg.Timeout <= 0 {
		return Config{}, errors.New("-timeout must be > 0")
	}
	return cfg, nil
}
