// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

// Package console holds the screen controllers behind the TUI: pure
// state plus service calls, no rendering. Each screen keeps an
// in-memory list as the single source of truth for what is displayed
// and filters it locally.
package console

import (
	"strings"
	"sync"
)

// listState is the shared list container of every screen. Loads are
// generation-counted: each load takes a new generation and a finishing
// load applies its result only while its generation is still the
// latest, so a slow stale response can never overwrite a newer one.
type listState[T any] struct {
	mu         sync.Mutex
	generation uint64
	items      []T
}

// beginLoad registers a new load and returns its generation token.
func (s *listState[T]) beginLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	return s.generation
}

// complete applies the result of the load identified by gen. Results
// of superseded loads are dropped; errors never touch the held items.
func (s *listState[T]) complete(gen uint64, items []T, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	if err != nil {
		return false
	}

	s.items = items
	return true
}

// snapshot returns a copy of the held items.
func (s *listState[T]) snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// mutate applies fn to the held items under the lock. Mutations also
// bump the generation: an in-flight load from before the mutation is
// stale by definition.
func (s *listState[T]) mutate(fn func(items []T) []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.items = fn(s.items)
}

// filterItems returns the items whose search text contains query,
// case-insensitively. An empty query returns everything.
func filterItems[T any](items []T, query string, text func(T) string) []T {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return items
	}

	var out []T
	for _, item := range items {
		if strings.Contains(strings.ToLower(text(item)), query) {
			out = append(out, item)
		}
	}
	return out
}
