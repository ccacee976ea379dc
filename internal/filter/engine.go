// Package filter implements the collection filter engine shared by the
// portfolio, media library and admin list pages: a free-text query over
// configured fields combined with categorical facet selections, applied as a
// pure projection over an in-memory collection.
package filter

import "strings"

// All is the facet sentinel meaning "no restriction". An empty selection is
// treated the same way.
const All = "all"

// Query is the set of active predicates for one Apply call.
type Query struct {
	// Text is matched case-insensitively as a substring against every
	// configured text field; a record passes if any field matches. Empty
	// matches everything.
	Text string
	// Facets maps facet name to the selected value. A missing entry, an
	// empty value or the All sentinel deactivates that facet.
	Facets map[string]string
}

// Facet returns a Query restricting a single facet.
func Facet(name, value string) Query {
	return Query{Facets: map[string]string{name: value}}
}

// Engine filters a collection of T without mutating or reordering it. The
// zero value is unusable; construct with New.
type Engine[T any] struct {
	textFields func(T) []string
	facets     map[string]func(T) string
}

// New creates an engine whose text predicate matches against the fields
// returned by textFields. Pass nil to disable text matching.
func New[T any](textFields func(T) []string) *Engine[T] {
	return &Engine[T]{
		textFields: textFields,
		facets:     make(map[string]func(T) string),
	}
}

// WithFacet registers a named categorical dimension keyed by the given
// extractor. Returns the engine for chaining.
func (e *Engine[T]) WithFacet(name string, key func(T) string) *Engine[T] {
	e.facets[name] = key
	return e
}

// Apply returns the ordered subsequence of records satisfying q. The input
// slice is never modified; relative order is always preserved and an empty
// result is a valid outcome, not an error.
func (e *Engine[T]) Apply(records []T, q Query) []T {
	out := make([]T, 0, len(records))
	text := strings.ToLower(strings.TrimSpace(q.Text))

	for _, rec := range records {
		if !e.matchesText(rec, text) {
			continue
		}
		if !e.matchesFacets(rec, q.Facets) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (e *Engine[T]) matchesText(rec T, text string) bool {
	if text == "" || e.textFields == nil {
		return true
	}
	for _, field := range e.textFields(rec) {
		if strings.Contains(strings.ToLower(field), text) {
			return true
		}
	}
	return false
}

func (e *Engine[T]) matchesFacets(rec T, selections map[string]string) bool {
	for name, selected := range selections {
		if selected == "" || selected == All {
			continue
		}
		key, ok := e.facets[name]
		if !ok {
			// Unknown facet names never match anything; a selection on a
			// dimension the engine does not know about is a caller bug we
			// surface as an empty result rather than a silent pass.
			return false
		}
		if key(rec) != selected {
			return false
		}
	}
	return true
}
