// Package morph implements the partition-preserving filter and the stable
// mapping-set intersection shared by Core and IsIsomorphic.
//
// A Mapping is the trimmed form {v -> f(v) : f(v) != v} produced by the
// retract and isomorphism finders. Two mappings are compared by their sorted
// key/value pairs, never by map identity or iteration order, so that
// equality is stable for hashing regardless of insertion order.
package morph
