package main

import (
	"sync"
	"sync/atomic"
)

func main() {} // Required for c-shared build mode

// handle is the Go view of mc_handle. Handles are unique across all tables
// so a handle of one kind never resolves in another.
type handle = uintptr

var lastHandle atomic.Uintptr

// table maps handles to live objects of one kind. It guards the map only;
// the objects themselves follow the Go types' own concurrency rules.
type table[T any] struct {
	mu    sync.RWMutex
	items map[handle]T
}

func newTable[T any]() *table[T] {
	return &table[T]{items: make(map[handle]T)}
}

func (t *table[T]) add(v T) handle {
	h := lastHandle.Add(1)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.items[h] = v
	return h
}

func (t *table[T]) get(h handle) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.items[h]
	return v, ok
}

// remove deletes h and returns its object. Removing 0 or an already
// removed handle reports false.
func (t *table[T]) remove(h handle) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.items[h]
	if ok {
		delete(t.items, h)
	}
	return v, ok
}

func (t *table[T]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}
