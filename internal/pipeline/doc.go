// Package pipeline runs the generator stages over one front-end snapshot.
//
// A run checks the host baseline, looks up the provider and result types,
// extracts candidates, validates them in parallel against a shared
// provider cache, merges the outcomes in candidate order and builds the
// specification forest. A Generator keeps the outputs of its previous run
// and reports whether the spec and diagnostics changed, so hosts can skip
// downstream emission on unrelated edits.
package pipeline
