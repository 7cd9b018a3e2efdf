package government

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/louisbranch/anbennar-atlas/internal/localisation"
	"github.com/louisbranch/anbennar-atlas/internal/platform/logging"
	"github.com/louisbranch/anbennar-atlas/internal/platform/telemetry/metrics"
)

// Ignored lists governments that exist only for save conversion.
var Ignored = []string{"pre_dharma_mapping"}

// Listing is a government with its tiers resolved to reforms.
type Listing struct {
	ID    string
	Title string
	Tiers []ResolvedTier
}

// ResolvedTier is a tier with a display name and its named reforms.
type ResolvedTier struct {
	Level   int
	Name    string
	Reforms []Reform
}

// Resolver joins governments to reforms.
type Resolver struct {
	Logger      *zap.Logger
	Diagnostics *metrics.Diagnostics
}

// Resolve builds one listing per government. Reforms without a display name
// are left out, as are ignored governments. Tier names fall back to the
// tier id. Descriptions have colour codes and escaped line breaks turned
// into markup.
func (r *Resolver) Resolve(govs []Government, reforms []Reform, loc localisation.Localiser) []Listing {
	logger := logging.OrNop(r.Logger)
	if loc == nil {
		loc = localisation.Table{}
	}
	byID := make(map[string]Reform, len(reforms))
	for _, rf := range reforms {
		if _, dup := byID[rf.ID]; !dup {
			byID[rf.ID] = rf
		}
	}

	var out []Listing
	for _, g := range govs {
		if ignored(g.ID) {
			continue
		}
		l := Listing{ID: g.ID, Title: title(g.ID)}
		for _, t := range g.Tiers {
			name, ok := loc.Lookup(t.ID)
			if !ok {
				name = t.ID
			}
			rt := ResolvedTier{Level: t.Level, Name: name}
			for _, id := range t.Reforms {
				rf, ok := byID[id]
				if !ok {
					r.Diagnostics.Unresolved("reform")
					logger.Warn("unresolved reference",
						zap.String("level", "reform"),
						zap.String("child", id),
						zap.String("parent", g.ID),
					)
					continue
				}
				if !rf.HasName {
					continue
				}
				rf.Description = Describe(rf.Description)
				rt.Reforms = append(rt.Reforms, rf)
			}
			l.Tiers = append(l.Tiers, rt)
		}
		out = append(out, l)
	}
	return out
}

// Describe renders a reform description as markup.
func Describe(desc string) string {
	return localisation.Colourise(strings.ReplaceAll(desc, `\n`, "<br>"))
}

func ignored(id string) bool {
	for _, s := range Ignored {
		if s == id {
			return true
		}
	}
	return false
}

// title capitalises the first letter of an id.
func title(id string) string {
	r, size := utf8.DecodeRuneInString(id)
	if size == 0 {
		return id
	}
	return string(unicode.ToUpper(r)) + id[size:]
}
