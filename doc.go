// Package smallstr provides a growable, UTF-8-validated text buffer that
// stores short values inline, avoiding heap allocation until a value grows
// past a fixed threshold.
//
// The smallstr package provides:
//
//   - Inline storage for values up to 23 bytes, with zero heap allocation
//   - One-way escalation to an owned heap buffer once a value outgrows
//     the inline threshold
//   - UTF-8-boundary-safe mutation: Push, PushString, Pop, Remove, Retain,
//     Truncate, Reserve, ShrinkToFit
//   - Validated, zero-copy adoption of existing byte buffers
//   - Pluggable allocation through the alloc package
//   - Grapheme-cluster and display-width helpers for editor-style callers
//
// Basic usage:
//
//	var s smallstr.String
//	s.PushString("Hello")
//	s.Push('!')
//
//	s.OnHeap() // false: 6 bytes fit inline
//
//	s.PushString(" This sentence does not fit in 23 bytes.")
//	s.OnHeap() // true: escalated, and it stays that way
//
// Representation:
//
// A String is either Inline (bytes held directly in the value, capacity 23)
// or Heap (bytes held in an exclusively owned allocation). Escalation is
// monotonic: once a String is heap-backed it never reverts to inline
// storage, no matter how short its content later becomes. Truncate and
// Clear never release capacity; only ShrinkToFit reallocates, and only
// Clone may produce a new, separate inline value from short heap-backed
// content.
//
// The zero value is an empty inline String, ready to use.
//
// Thread Safety:
//
// A String performs no internal locking. It may be handed off between
// goroutines, but exactly one goroutine may mutate it at a time; concurrent
// mutation requires external synchronization. Allocators from the alloc
// package are safe for concurrent use by independent Strings.
package smallstr
