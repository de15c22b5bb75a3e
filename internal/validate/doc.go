// Package validate checks candidates against the method rules.
//
// Rules run in a fixed order and the first failing rule decides the
// outcome: either one diagnostic, a silent bail for input that is not
// valid yet, or a MethodSpec ready for the tree builder. Instance methods
// consult the shared provider cache for their declaring type.
package validate
