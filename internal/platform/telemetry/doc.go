// Package telemetry groups the run-level observability of the atlas build.
//
// # Diagnostics (telemetry/metrics)
//
// Recoverable problems found while reading game data are counted rather than
// failing the batch:
//   - Files skipped because they could not be read or parsed
//   - References that did not resolve against a pool
//   - Duplicate claims of an already owned entity
//   - Entities dropped by a filtering rule
//
// Counters live on a per-run registry so that concurrent builds and tests
// never share state. Tracing is configured separately by platform/otel.
package telemetry
