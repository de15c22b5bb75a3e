// Package diagnostic provides the diagnostics reported by the localized
// string generator.
//
// Key capabilities:
//   - Fixed descriptor catalogue (ITH0001..ITH0013) with {0}-style templates
//   - Locations trimmed to plain file/span values, detached from the front-end
//   - Order-stable, deduplicating List that compares by value across runs
package diagnostic
