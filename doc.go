// Package treemap implements a generic ordered map backed by a
// red-black tree with a shared black sentinel. Search, insertion,
// and deletion run in O(log n); in-order traversal yields entries in
// ascending key order in O(n).
//
// The tree is a single-writer structure: it performs no internal
// locking, and callers sharing one instance across goroutines must
// serialize all mutating operations. Iteration sequences observe the
// live tree, so mutating while iterating is undefined.
package treemap
