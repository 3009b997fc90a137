package events

import (
	"fmt"
	"sync"
)

// Observable is implemented by values that notify observer containers when
// they are closed. Embed a *Node and return it from ObserverNode.
type Observable interface {
	ObserverNode() *Node
}

type detacher interface {
	detach(n *Node)
}

// Node tracks the containers holding an observable value. Closing the node
// removes the value from every container that holds it.
type Node struct {
	mu       sync.Mutex
	watchers map[detacher]struct{}
	key      any
	hasKey   bool
	closed   bool
}

// NewNode returns a node ready to embed in an observable value.
func NewNode() *Node {
	return &Node{watchers: make(map[detacher]struct{})}
}

// ObserverNode returns the node itself, so *Node can be embedded directly.
func (n *Node) ObserverNode() *Node {
	return n
}

func (n *Node) attach(w detacher) {
	n.mu.Lock()
	n.watchers[w] = struct{}{}
	n.mu.Unlock()
}

// attachKey registers a keyed container. An observable can only ever live
// under one key across all keyed containers.
func (n *Node) attachKey(w detacher, key any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.hasKey && n.key != key {
		return fmt.Errorf("events: cannot use multiple keys (%v, %v) for one observable", key, n.key)
	}
	n.key = key
	n.hasKey = true
	n.watchers[w] = struct{}{}
	return nil
}

func (n *Node) forget(w detacher) {
	n.mu.Lock()
	delete(n.watchers, w)
	n.mu.Unlock()
}

// Close notifies every container holding the value so it is removed, then
// clears the watcher set. Closing twice is a no-op.
func (n *Node) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	watchers := make([]detacher, 0, len(n.watchers))
	for w := range n.watchers {
		watchers = append(watchers, w)
	}
	n.watchers = make(map[detacher]struct{})
	n.mu.Unlock()

	for _, w := range watchers {
		w.detach(n)
	}
}

// ObserverList is a slice of observables that forgets closed items.
type ObserverList[T Observable] struct {
	mu    sync.Mutex
	items []T
}

// NewObserverList returns a list holding the given items.
func NewObserverList[T Observable](items ...T) *ObserverList[T] {
	l := &ObserverList[T]{}
	for _, it := range items {
		l.Append(it)
	}
	return l
}

// Append adds item to the end of the list.
func (l *ObserverList[T]) Append(item T) {
	l.mu.Lock()
	l.items = append(l.items, item)
	l.mu.Unlock()
	item.ObserverNode().attach(l)
}

// Items returns a snapshot of the list.
func (l *ObserverList[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items.
func (l *ObserverList[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

func (l *ObserverList[T]) detach(n *Node) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.items[:0]
	for _, it := range l.items {
		if it.ObserverNode() != n {
			kept = append(kept, it)
		}
	}
	l.items = kept
}

// ObserverMap maps keys to observables and forgets closed items.
type ObserverMap[K comparable, V Observable] struct {
	mu    sync.Mutex
	items map[K]V
}

// NewObserverMap returns an empty map.
func NewObserverMap[K comparable, V Observable]() *ObserverMap[K, V] {
	return &ObserverMap[K, V]{items: make(map[K]V)}
}

// Set stores value under key. It fails when the value already lives under a
// different key in any keyed container.
func (m *ObserverMap[K, V]) Set(key K, value V) error {
	if err := value.ObserverNode().attachKey(m, key); err != nil {
		return err
	}
	m.mu.Lock()
	m.items[key] = value
	m.mu.Unlock()
	return nil
}

// Get returns the value stored under key.
func (m *ObserverMap[K, V]) Get(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok
}

// Delete removes the entry for key without closing the value.
func (m *ObserverMap[K, V]) Delete(key K) {
	m.mu.Lock()
	v, ok := m.items[key]
	if ok {
		delete(m.items, key)
	}
	m.mu.Unlock()
	if ok {
		v.ObserverNode().forget(m)
	}
}

// Len returns the number of entries.
func (m *ObserverMap[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func (m *ObserverMap[K, V]) detach(n *Node) {
	n.mu.Lock()
	key, hasKey := n.key, n.hasKey
	n.mu.Unlock()
	if !hasKey {
		return
	}
	k, ok := key.(K)
	if !ok {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.items[k]; ok && cur.ObserverNode() == n {
		delete(m.items, k)
	}
}

// ObserverSet is a set of observables that forgets closed items.
type ObserverSet[T interface {
	Observable
	comparable
}] struct {
	mu    sync.Mutex
	items map[T]struct{}
}

// NewObserverSet returns a set holding the given items.
func NewObserverSet[T interface {
	Observable
	comparable
}](items ...T) *ObserverSet[T] {
	s := &ObserverSet[T]{items: make(map[T]struct{})}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts item.
func (s *ObserverSet[T]) Add(item T) {
	s.mu.Lock()
	s.items[item] = struct{}{}
	s.mu.Unlock()
	item.ObserverNode().attach(s)
}

// Discard removes item without closing it.
func (s *ObserverSet[T]) Discard(item T) {
	s.mu.Lock()
	_, ok := s.items[item]
	if ok {
		delete(s.items, item)
	}
	s.mu.Unlock()
	if ok {
		item.ObserverNode().forget(s)
	}
}

// Contains reports whether item is in the set.
func (s *ObserverSet[T]) Contains(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.items[item]
	return ok
}

// Len returns the number of items.
func (s *ObserverSet[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *ObserverSet[T]) detach(n *Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for it := range s.items {
		if it.ObserverNode() == n {
			delete(s.items, it)
		}
	}
}
