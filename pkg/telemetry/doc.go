// Package telemetry provides OpenTelemetry metrics and tracing for the
// congruence closure engine, backed by a Prometheus exporter.
//
// # Overview
//
// A Provider is attached to an Engine explicitly through
// pkg/config.Options.Telemetry. An Engine constructed without one performs
// no tracing or metrics recording at all — like pkg/logging's Discard
// logger, telemetry here is opt-in, not a default side effect of
// construction.
//
// Provider exposes four instruments:
//
//   - ccengine_tokens_interned_total: counter, incremented once per newly
//     allocated token.
//   - ccengine_merges_total: counter, incremented once per public Merge
//     call, whether or not it actually changed anything (idempotent
//     merges still count, since they are still a call the caller made).
//   - ccengine_merge_propagation_steps: histogram of how many MaybeMerge
//     candidate pairs a single top-level Merge examined before reaching
//     fixpoint — a direct, observable measurement of how much work a
//     single Merge call did before reaching fixpoint.
//   - ccengine_equivalence_classes: an observable gauge, read at
//     collection time from the ClassCounter passed to NewProvider (for
//     example one built on Engine.Stats).
package telemetry
