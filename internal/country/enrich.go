package country

import (
	"sort"

	"go.uber.org/zap"

	"github.com/louisbranch/anbennar-atlas/internal/localisation"
	"github.com/louisbranch/anbennar-atlas/internal/platform/logging"
	"github.com/louisbranch/anbennar-atlas/internal/platform/telemetry/metrics"
	"github.com/louisbranch/anbennar-atlas/internal/scan"
)

// AdjectiveSuffix is appended to a tag to find its adjective.
const AdjectiveSuffix = "_ADJ"

// Sets are the classifications computed by scanning the script files.
type Sets struct {
	EndGame  scan.Set
	Formable scan.Set
	Missions scan.Set
	// IdeaGroups maps a tag to the display name of its national ideas.
	IdeaGroups map[string]string
}

// Enricher turns tags and histories into countries.
type Enricher struct {
	Logger      *zap.Logger
	Diagnostics *metrics.Diagnostics
}

// Enrich builds one country per tag, sorted by tag. Tags without a display
// name are placeholders and are dropped. Histories without a tag are
// ignored.
func (e *Enricher) Enrich(tags []Tag, histories map[string]History, loc localisation.Localiser, sets Sets) []Country {
	logger := logging.OrNop(e.Logger)
	if loc == nil {
		loc = localisation.Table{}
	}

	listed := make(map[string]bool, len(tags))
	out := make([]Country, 0, len(tags))
	for _, t := range tags {
		listed[t.Tag] = true
		name, _ := loc.Lookup(t.Tag)
		if name == "" {
			e.Diagnostics.Dropped("countries", "no_name")
			logger.Debug("dropping country without a name", zap.String("tag", t.Tag))
			continue
		}
		c := Country{
			Tag:         t.Tag,
			Name:        name,
			History:     histories[t.Tag],
			EndGame:     sets.EndGame.Has(t.Tag),
			Formable:    sets.Formable.Has(t.Tag),
			HasMissions: sets.Missions.Has(t.Tag),
			IdeaGroup:   sets.IdeaGroups[t.Tag],
		}
		c.Adjective, _ = loc.Lookup(t.Tag + AdjectiveSuffix)
		c.Culture = display(loc, c.History.PrimaryCulture)
		c.Religion = display(loc, c.History.Religion)
		out = append(out, c)
	}

	for tag := range histories {
		if !listed[tag] {
			logger.Debug("history without a country tag", zap.String("tag", tag))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

// display returns the localised name of id, or id itself.
func display(loc localisation.Localiser, id string) string {
	if id == "" {
		return ""
	}
	if s, ok := loc.Lookup(id); ok {
		return s
	}
	return id
}
