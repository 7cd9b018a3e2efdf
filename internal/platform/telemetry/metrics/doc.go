// Package metrics counts recoverable diagnostics for one atlas run.
//
// Counters are Prometheus collectors registered on a private registry owned by
// a Diagnostics value. A nil *Diagnostics is valid and records nothing, so
// components accept one optionally.
//
// # Counters
//
//   - atlas_files_skipped_total{family}
//   - atlas_fields_skipped_total{family,field}
//   - atlas_references_unresolved_total{level}
//   - atlas_claims_duplicate_total{level}
//   - atlas_entities_dropped_total{family,reason}
package metrics
