package analyze

// Facts is the read-only view of the semantic model the generator queries.
// Implementations must be safe for concurrent use by multiple goroutines.
type Facts interface {
	// Type returns the declaration facts for a type defined in the program.
	Type(id TypeID) (*TypeInfo, bool)
	// Implements reports whether ref is iface or implements it.
	Implements(ref TypeRef, iface TypeID) bool
	// LookupType resolves a metadata name ("Name" or "Name`Arity") to the
	// single visible type with that name.
	LookupType(metadataName string) (TypeID, bool)
}
