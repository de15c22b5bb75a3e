// Package provider resolves where a declaring type obtains its localizer.
//
// The Resolver walks a type and its base types looking for a single
// accessible field of the provider type, falling back to a primary
// constructor parameter of the type itself. Conflicts surface as a
// diagnostic on the Resolution. The Cache memoizes resolutions for one run
// and computes each type once even when validators ask concurrently.
package provider
