// Package config holds the generator configuration.
//
// A configuration names the marker attribute, the provider interface, the
// result type and the universal root used by the provider walk, together
// with the host baseline, worker count and logging settings. Files may be
// YAML or TOML; keys missing from a file keep their defaults.
package config
