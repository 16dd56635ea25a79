// Package gen converts a serverless invocation trace into a synthetic,
// time-bounded, rate-constrained request schedule for driving load
// experiments against a function-serving platform.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - scale.go: selecting and reshaping a trace window onto the target
//     experiment duration (thumbnails and minute_range strategies)
//   - normalize.go: rescaling the intensity curve to a target rate
//     ceiling or a flat constant rate
//   - spec.go / smirnov.go: the two arrival generators that turn a
//     normalized curve into a concrete ordered event schedule
//
// # Architecture
//
// The pipeline is a chain of pure functions over immutable values:
//
//	trace.Index -> Scale -> Normalize -> GenerateSpec | GenerateSmirnov
//
// Each stage returns fresh values with no back-references into the trace
// index, so independent runs (for example, several seeds in parallel)
// share nothing mutable. All randomness lives in the Smirnov generator
// behind an explicit seed.
//
// Sub-packages:
//   - gen/trace: immutable trace index, Azure trace loaders, catalog
//   - gen/export: CSV/JSON serialization of schedules and catalogs
package gen
