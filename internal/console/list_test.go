package console

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ── stale-load guard ─────────────────────────────────────────────────────────

func TestListState_StaleLoadDropped(t *testing.T) {
	var s listState[string]

	older := s.beginLoad()
	newer := s.beginLoad()

	// the newer load finishes first
	assert.True(t, s.complete(newer, []string{"fresh"}, nil))

	// the older one limps in afterwards and must be dropped
	assert.False(t, s.complete(older, []string{"stale"}, nil))

	assert.Equal(t, []string{"fresh"}, s.snapshot())
}

func TestListState_FailedLoadKeepsItems(t *testing.T) {
	var s listState[string]

	gen := s.beginLoad()
	s.complete(gen, []string{"a", "b"}, nil)

	gen = s.beginLoad()
	assert.False(t, s.complete(gen, nil, errors.New("boom")))

	assert.Equal(t, []string{"a", "b"}, s.snapshot())
}

func TestListState_MutationInvalidatesInFlightLoad(t *testing.T) {
	var s listState[string]

	gen := s.beginLoad()

	// a local mutation lands while the load is in flight
	s.mutate(func(items []string) []string { return append(items, "local") })

	assert.False(t, s.complete(gen, []string{"from-backend"}, nil),
		"a load started before the mutation is stale")
	assert.Equal(t, []string{"local"}, s.snapshot())
}

func TestListState_SnapshotIsACopy(t *testing.T) {
	var s listState[string]
	s.mutate(func([]string) []string { return []string{"a"} })

	snap := s.snapshot()
	snap[0] = "changed"

	assert.Equal(t, []string{"a"}, s.snapshot())
}

// ── filtering ────────────────────────────────────────────────────────────────

func TestFilterItems(t *testing.T) {
	items := []string{"Agence Lyon", "Agence Rabat", "Dépôt Casablanca"}
	ident := func(s string) string { return s }

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query returns all", query: "", want: items},
		{name: "blank query returns all", query: "   ", want: items},
		{name: "case-insensitive", query: "AGENCE", want: []string{"Agence Lyon", "Agence Rabat"}},
		{name: "substring", query: "casab", want: []string{"Dépôt Casablanca"}},
		{name: "no match", query: "tanger", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filterItems(items, tt.query, ident))
		})
	}
}
