package intern

import (
	"runtime"
	"sync"
	"sync/atomic"
	"weak"

	"github.com/signadot/go-edn/debug"
)

// Interner is a canonicalizing map from K to weakly held *T.
// The zero value is ready to use. An Interner must not be copied after
// first use.
type Interner[K comparable, T any] struct {
	table sync.Map // K -> weak.Pointer[T]
	dead  atomic.Pointer[notice[K, T]]

	hits    atomic.Uint64
	misses  atomic.Uint64
	retries atomic.Uint64
	purged  atomic.Uint64
}

// notice records a canonical value which has been reclaimed.
type notice[K comparable, T any] struct {
	key  K
	wp   weak.Pointer[T]
	next *notice[K, T]
}

// Stats are monotonically increasing counters describing an Interner's
// activity.
type Stats struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Retries uint64 `json:"retries"`
	Purged  uint64 `json:"purged"`
}

func New[K comparable, T any]() *Interner[K, T] {
	return &Interner[K, T]{}
}

// Intern returns the canonical value for key. If there is none, candidate
// becomes canonical and is returned.
//
// It panics if candidate is nil.
func (in *Interner[K, T]) Intern(key K, candidate *T) *T {
	if candidate == nil {
		panic("intern: Intern called with nil candidate")
	}
	for {
		in.drain()
		if v, ok := in.table.Load(key); ok {
			if p := v.(weak.Pointer[T]).Value(); p != nil {
				in.hits.Add(1)
				return p
			}
		}
		wp := weak.Make(candidate)
		v, loaded := in.table.LoadOrStore(key, wp)
		if !loaded {
			runtime.AddCleanup(candidate, in.reclaimed, notice[K, T]{key: key, wp: wp})
			in.misses.Add(1)
			return candidate
		}
		existing := v.(weak.Pointer[T])
		if p := existing.Value(); p != nil {
			in.hits.Add(1)
			return p
		}
		// reclaimed out from under us; its notice may not be queued yet.
		in.table.CompareAndDelete(key, existing)
		in.retries.Add(1)
		if debug.Intern() {
			debug.Logf("intern: retry %v: stale entry\n", key)
		}
	}
}

// Purge removes the entries of all values reclaimed so far and returns
// the number removed.
func (in *Interner[K, T]) Purge() int {
	return in.drain()
}

// Len returns the number of entries in the table, including stale entries
// which have not yet been purged.
func (in *Interner[K, T]) Len() int {
	n := 0
	in.table.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (in *Interner[K, T]) Stats() Stats {
	return Stats{
		Hits:    in.hits.Load(),
		Misses:  in.misses.Load(),
		Retries: in.retries.Load(),
		Purged:  in.purged.Load(),
	}
}

// reclaimed runs on the runtime's cleanup goroutine and must not block.
func (in *Interner[K, T]) reclaimed(n notice[K, T]) {
	nn := &n
	for {
		head := in.dead.Load()
		nn.next = head
		if in.dead.CompareAndSwap(head, nn) {
			return
		}
	}
}

func (in *Interner[K, T]) drain() int {
	if in.dead.Load() == nil {
		return 0
	}
	removed := 0
	for n := in.dead.Swap(nil); n != nil; n = n.next {
		if in.table.CompareAndDelete(n.key, n.wp) {
			removed++
		}
	}
	if removed == 0 {
		return 0
	}
	in.purged.Add(uint64(removed))
	if debug.Intern() {
		debug.Logf("intern: purged %d stale entries\n", removed)
		debug.LogAny(in.Stats())
	}
	return removed
}
