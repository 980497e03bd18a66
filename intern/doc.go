// Package intern provides a concurrent canonicalizing cache whose values are
// held weakly.
//
// # Overview
//
// An [Interner] maps a comparable key to at most one live canonical value.
// Callers offer a freshly built candidate together with its key and receive
// the canonical value back:
//
//	var kws intern.Interner[string, Keyword]
//	k := kws.Intern("foo", &Keyword{name: "foo"})
//
// If no canonical value exists for the key, the candidate becomes canonical.
// Otherwise the candidate is discarded and the existing value is returned, so
// values returned for equal keys are pointer-identical for as long as any
// caller keeps one of them reachable.
//
// # Reclamation
//
// The interner holds only weak pointers to its values. When the last strong
// reference to a canonical value is dropped, the garbage collector may
// reclaim it. The runtime then runs a cleanup which pushes a notice onto a
// lock-free queue; the next call to [Interner.Intern] or [Interner.Purge]
// drains the queue and removes the stale entries. An entry is only removed
// if it still holds the exact reclaimed weak pointer, so a mapping installed
// concurrently for the same key is never clobbered.
//
// A lookup may also find an entry whose value was reclaimed before its
// notice was drained. Intern then removes that exact entry and retries.
//
// # Thread Safety
//
// All methods are safe for concurrent use. No lock is held across any
// operation; the table is a sync.Map mutated only with load-or-store and
// compare-and-delete.
package intern
