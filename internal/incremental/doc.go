// Package incremental tracks pipeline step values across runs.
//
// Values are compared structurally through content fingerprints
// (hashstructure) so re-running on unchanged input reports StepCached and
// hands back the previous value. A Node tracks one step output, a Table
// tracks a keyed stream such as per-declaration candidates. Either may be
// backed by a Store so a restarted host keeps its cache.
package incremental
