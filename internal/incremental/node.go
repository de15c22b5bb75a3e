package incremental

import (
	"fmt"
	"sync"
)

// entry is the persisted form of a step value.
type entry[T any] struct {
	Fingerprint uint64 `msgpack:"fp"`
	Value       T      `msgpack:"value"`
}

// Node holds the last value of one pipeline step.
type Node[T any] struct {
	name  string
	equal func(a, b T) bool
	store Store

	mu     sync.Mutex
	loaded bool
	has    bool
	prev   entry[T]
}

// NodeOption configures a Node.
type NodeOption[T any] func(*Node[T])

// WithEqual sets a structural equality check used in addition to the
// fingerprint.
func WithEqual[T any](equal func(a, b T) bool) NodeOption[T] {
	return func(n *Node[T]) {
		n.equal = equal
	}
}

// WithNodeStore persists the node value under its name.
func WithNodeStore[T any](store Store) NodeOption[T] {
	return func(n *Node[T]) {
		n.store = store
	}
}

// NewNode creates a node. The name keys the value in an attached Store.
func NewNode[T any](name string, opts ...NodeOption[T]) *Node[T] {
	n := &Node[T]{name: name}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Name returns the node name.
func (n *Node[T]) Name() string {
	return n.name
}

// Update records v as the current value. On StepCached the previous value
// is returned in place of v. A store failure is returned together with a
// valid value and reason.
func (n *Node[T]) Update(v T) (T, StepReason, error) {
	fp, err := Fingerprint(v)
	if err != nil {
		return v, StepNew, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	var storeErr error
	if !n.loaded {
		n.loaded = true
		storeErr = n.seed()
	}

	reason := StepNew
	if n.has {
		reason = StepModified
		if n.prev.Fingerprint == fp && (n.equal == nil || n.equal(n.prev.Value, v)) {
			return n.prev.Value, StepCached, storeErr
		}
	}

	n.prev = entry[T]{Fingerprint: fp, Value: v}
	n.has = true

	if n.store != nil {
		if err := n.store.Put(n.name, &n.prev); err != nil && storeErr == nil {
			storeErr = fmt.Errorf("store %s: %w", n.name, err)
		}
	}

	return v, reason, storeErr
}

// Value returns the last recorded value.
func (n *Node[T]) Value() (T, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.prev.Value, n.has
}

// Reset forgets the previous value. An attached store is left untouched.
func (n *Node[T]) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()

	var zero entry[T]
	n.prev = zero
	n.has = false
	n.loaded = true
}

func (n *Node[T]) seed() error {
	if n.store == nil {
		return nil
	}

	var e entry[T]

	ok, err := n.store.Get(n.name, &e)
	if err != nil {
		return fmt.Errorf("load %s: %w", n.name, err)
	}

	if ok {
		n.prev = e
		n.has = true
	}

	return nil
}
