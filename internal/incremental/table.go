package incremental

import (
	"fmt"
	"sync"
)

// Change is the step reason of one keyed value.
type Change[K comparable] struct {
	Key    K
	Reason StepReason
}

// Table tracks a keyed stream of values.
type Table[K comparable, V any] struct {
	mu      sync.Mutex
	order   []K
	entries map[K]entry[V]
}

// NewTable creates an empty table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{entries: make(map[K]entry[V])}
}

// Update replaces the table content with values, keyed by key. It returns
// the values in input order, with cached values replaced by their previous
// instance, and one change per input value followed by the removed keys in
// their previous order. When a key repeats, the last value is kept.
func (t *Table[K, V]) Update(values []V, key func(V) K) ([]V, []Change[K], error) {
	out := make([]V, 0, len(values))
	changes := make([]Change[K], 0, len(values))
	next := make(map[K]entry[V], len(values))
	order := make([]K, 0, len(values))

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, v := range values {
		k := key(v)

		fp, err := Fingerprint(v)
		if err != nil {
			return nil, nil, fmt.Errorf("key %v: %w", k, err)
		}

		reason := StepNew
		if prev, ok := t.entries[k]; ok {
			reason = StepModified
			if prev.Fingerprint == fp {
				reason = StepCached
				v = prev.Value
			}
		}

		if _, dup := next[k]; !dup {
			order = append(order, k)
		}

		next[k] = entry[V]{Fingerprint: fp, Value: v}
		out = append(out, v)
		changes = append(changes, Change[K]{Key: k, Reason: reason})
	}

	for _, k := range t.order {
		if _, ok := next[k]; !ok {
			changes = append(changes, Change[K]{Key: k, Reason: StepRemoved})
		}
	}

	t.order = order
	t.entries = next

	return out, changes, nil
}

// Len returns the number of tracked keys.
func (t *Table[K, V]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}

// Get returns the tracked value for a key.
func (t *Table[K, V]) Get(k K) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[k]

	return e.Value, ok
}

// Summary counts changes per reason.
func Summary[K comparable](changes []Change[K]) map[StepReason]int {
	out := make(map[StepReason]int)
	for _, c := range changes {
		out[c.Reason]++
	}

	return out
}
