// Package extract turns marked declarations into generator candidates.
//
// A candidate is a plain value snapshot of one method declaration: its
// name, modifiers, signature, explicit resource id and trimmed locations.
// Declarations of the wrong shape, or whose marker arguments did not bind,
// produce no candidate and no diagnostic.
package extract
