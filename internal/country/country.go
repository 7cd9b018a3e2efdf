// Package country reads country tags and histories and enriches them into
// the country list: display names, localised culture and religion, and the
// end-game, formable and mission classifications.
package country

import (
	"github.com/louisbranch/anbennar-atlas/internal/localisation"
)

// Tag is one entry of the country tag files.
type Tag struct {
	Tag  string
	Path string // country definition file, relative to common/
}

// History is the starting state of a country.
type History struct {
	SetupVision       bool
	Government        string
	GovernmentReforms []string
	GovernmentRank    uint64
	PrimaryCulture    string
	AcceptedCultures  []string
	Religion          string
	TechnologyGroup   string
	Capital           uint64
	FixedCapital      uint64
	HistoricalRivals  []string
	HistoricalFriends []string
}

// Country is a playable country with its display data.
type Country struct {
	Tag       string
	Name      string
	Adjective string
	History   History

	// Culture and Religion are the display names of the history ids, or the
	// ids themselves when no display name exists.
	Culture  string
	Religion string

	EndGame     bool
	Formable    bool
	HasMissions bool
	IdeaGroup   string
}

// Title is the display name folded to ASCII, used for page titles.
func (c Country) Title() string {
	return localisation.Fold(c.Name)
}
