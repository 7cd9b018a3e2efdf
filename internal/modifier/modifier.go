// Package modifier describes how raw modifier fields read to a player.
//
// Every known modifier has a static Descriptor: its display name, whether
// the value is a percentage, a flat amount or a toggle, whether a positive
// value is good for the country, and the factor applied before display.
package modifier

import (
	"math"
	"strconv"
	"strings"

	"github.com/louisbranch/anbennar-atlas/internal/script"
)

// Format is how a value is printed.
type Format int

const (
	// None prints nothing; the modifier is a toggle.
	None Format = iota
	Percent
	Flat
)

func (f Format) String() string {
	switch f {
	case Percent:
		return "percent"
	case Flat:
		return "flat"
	default:
		return "none"
	}
}

// Normal is the direction in which a value benefits the country.
type Normal int

const (
	Positive Normal = iota
	Negative
)

// Tone classifies a value as good or bad for the country.
type Tone string

const (
	Bonus Tone = "bonus"
	Malus Tone = "malus"
)

// Descriptor is the static record of one modifier.
type Descriptor struct {
	ID         string
	Name       string
	Format     Format
	Normal     Normal
	Multiplier float64
}

// Modifiers whose stored sign reads the opposite way: a positive reduction
// of liberty desire is shown as a negative change.
var inverted = map[string]bool{
	"reduced_liberty_desire":                   true,
	"reduced_liberty_desire_on_same_continent": true,
}

var byID = index(table)

func index(descriptors []Descriptor) map[string]Descriptor {
	out := make(map[string]Descriptor, len(descriptors))
	for _, d := range descriptors {
		out[d.ID] = d
	}
	return out
}

// Lookup finds the descriptor of a raw key, ignoring case.
func Lookup(key string) (Descriptor, bool) {
	d, ok := byID[strings.ToLower(key)]
	return d, ok
}

// Len returns the number of known modifiers.
func Len() int { return len(byID) }

// Render formats a stored value with its sign, e.g. "+10%" or "-1".
func (d Descriptor) Render(v float64) string {
	sign := "+"
	if inverted[d.ID] {
		if v > 0 {
			sign = "-"
		}
	} else if v < 0 {
		sign = "-"
	}
	scaled := math.Abs(v * d.Multiplier)
	switch d.Format {
	case Percent:
		return sign + strconv.FormatFloat(math.Round(scaled), 'f', -1, 64) + "%"
	case Flat:
		return sign + strconv.FormatFloat(scaled, 'f', -1, 64)
	default:
		return ""
	}
}

// Tone reports whether v helps the country. Zero counts as positive.
func (d Descriptor) Tone(v float64) Tone {
	negative := math.Signbit(v)
	if !negative && d.Normal == Negative || negative && d.Normal == Positive {
		return Malus
	}
	return Bonus
}

// Localise returns the display name and value for a raw key and value. A
// value that is not a number is returned as written. Unknown keys report
// false and must be skipped by callers.
func Localise(key, raw string) (name, display string, ok bool) {
	d, ok := Lookup(key)
	if !ok {
		return "", "", false
	}
	v, err := strconv.ParseFloat(strings.TrimPrefix(raw, "+"), 64)
	if err != nil {
		return d.Name, raw, true
	}
	return d.Name, d.Render(v), true
}

// Effect is one known modifier field of a block.
type Effect struct {
	Key        string
	Descriptor Descriptor
	Raw        string
	Display    string
	Tone       Tone
}

// Effects returns the known modifier fields of obj in source order. Keys in
// skip, unknown keys and block values are left out.
func Effects(obj *script.Object, skip ...string) []Effect {
	var out []Effect
	for _, f := range obj.Fields() {
		if contains(skip, f.Key) {
			continue
		}
		e, ok := NewEffect(f.Key, f.Value)
		if !ok {
			continue
		}
		out = append(out, e)
	}
	return out
}

// NewEffect describes a single key and value. It reports false for unknown
// keys and non-scalar values.
func NewEffect(key string, value script.Value) (Effect, bool) {
	d, ok := Lookup(key)
	if !ok {
		return Effect{}, false
	}
	raw, err := value.Text()
	if err != nil {
		return Effect{}, false
	}
	e := Effect{Key: key, Descriptor: d, Raw: raw, Display: raw, Tone: Bonus}
	if v, err := value.Float(); err == nil {
		e.Display = d.Render(v)
		e.Tone = d.Tone(v)
	}
	return e, true
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
