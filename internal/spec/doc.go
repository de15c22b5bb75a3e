// Package spec holds the specification handed to the emitter: validated
// methods grouped under their declaring types, nested the way the types are
// nested in source.
//
// Key types:
//   - MethodSpec: one validated method, with its ordered ParameterSpec list
//   - ProviderSource: the field or primary constructor parameter a type
//     obtains its localizer from
//   - TypeNode: a declaring type with its methods and nested types
//   - Forest: the root-level TypeNodes
//
// Builder assembles a Forest bottom-up, keeping only types that have methods
// or nested types with methods. All values compare by value.
package spec
