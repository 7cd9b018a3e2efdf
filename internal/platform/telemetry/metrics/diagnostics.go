package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Diagnostics holds the counters of one run.
type Diagnostics struct {
	registry *prometheus.Registry

	FilesSkipped         *prometheus.CounterVec
	FieldsSkipped        *prometheus.CounterVec
	ReferencesUnresolved *prometheus.CounterVec
	DuplicateClaims      *prometheus.CounterVec
	EntitiesDropped      *prometheus.CounterVec
}

// NewDiagnostics creates counters on a fresh registry.
func NewDiagnostics() *Diagnostics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Diagnostics{
		registry: reg,

		FilesSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "atlas_files_skipped_total",
			Help: "Files skipped because they could not be read or parsed",
		}, []string{"family"}),
		FieldsSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "atlas_fields_skipped_total",
			Help: "Fields skipped because the stored value had the wrong shape",
		}, []string{"family", "field"}),
		ReferencesUnresolved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "atlas_references_unresolved_total",
			Help: "Child references that matched nothing in the pool",
		}, []string{"level"}),
		DuplicateClaims: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "atlas_claims_duplicate_total",
			Help: "Child references to an entity already claimed by another parent",
		}, []string{"level"}),
		EntitiesDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "atlas_entities_dropped_total",
			Help: "Entities omitted from the model by a filtering rule",
		}, []string{"family", "reason"}),
	}
}

// Registry exposes the run registry, e.g. for testutil assertions.
func (d *Diagnostics) Registry() *prometheus.Registry {
	if d == nil {
		return nil
	}
	return d.registry
}

// FileSkipped records a file that could not be used.
func (d *Diagnostics) FileSkipped(family string) {
	if d != nil {
		d.FilesSkipped.WithLabelValues(family).Inc()
	}
}

// FieldSkipped records a field read with the wrong shape.
func (d *Diagnostics) FieldSkipped(family, field string) {
	if d != nil {
		d.FieldsSkipped.WithLabelValues(family, field).Inc()
	}
}

// Unresolved records a reference that matched nothing.
func (d *Diagnostics) Unresolved(level string) {
	if d != nil {
		d.ReferencesUnresolved.WithLabelValues(level).Inc()
	}
}

// DuplicateClaim records a second claim of an owned entity.
func (d *Diagnostics) DuplicateClaim(level string) {
	if d != nil {
		d.DuplicateClaims.WithLabelValues(level).Inc()
	}
}

// Dropped records an entity left out of the model.
func (d *Diagnostics) Dropped(family, reason string) {
	if d != nil {
		d.EntitiesDropped.WithLabelValues(family, reason).Inc()
	}
}

// Sample is one non-zero counter value.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

func (s Sample) String() string {
	if s.Labels == "" {
		return fmt.Sprintf("%s %g", s.Name, s.Value)
	}
	return fmt.Sprintf("%s{%s} %g", s.Name, s.Labels, s.Value)
}

// Samples gathers every non-zero counter, sorted by name then labels.
func (d *Diagnostics) Samples() ([]Sample, error) {
	if d == nil {
		return nil, nil
	}
	families, err := d.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather diagnostics: %w", err)
	}
	var out []Sample
	for _, family := range families {
		for _, m := range family.GetMetric() {
			value := m.GetCounter().GetValue()
			if value == 0 {
				continue
			}
			pairs := make([]string, 0, len(m.GetLabel()))
			for _, label := range m.GetLabel() {
				pairs = append(pairs, fmt.Sprintf("%s=%q", label.GetName(), label.GetValue()))
			}
			out = append(out, Sample{Name: family.GetName(), Labels: strings.Join(pairs, ","), Value: value})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})
	return out, nil
}

// WriteSummary prints the non-zero counters, one per line.
func (d *Diagnostics) WriteSummary(w io.Writer) error {
	samples, err := d.Samples()
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		_, err := fmt.Fprintln(w, "diagnostics: none")
		return err
	}
	if _, err := fmt.Fprintln(w, "diagnostics:"); err != nil {
		return err
	}
	for _, s := range samples {
		if _, err := fmt.Fprintf(w, "  %s\n", s); err != nil {
			return err
		}
	}
	return nil
}
