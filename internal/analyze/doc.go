// Package analyze models the symbol facts the generator consumes from the
// language front-end.
//
// The front-end itself (parsing, semantic model, attribute argument
// evaluation) lives outside this module. analyze only describes what it
// hands over and provides an in-memory implementation of the Facts oracle.
//
// Key types:
//   - TypeID: fully qualified metadata name + generic arity
//   - TypeRef: a type as used by a field, parameter or return value
//   - TypeInfo: a declared type with its base, fields and constructors
//   - Declaration: one marked member declaration as the front-end sees it
//   - TypeGraph: Facts implementation backed by plain values, loadable from
//     a YAML snapshot
package analyze
