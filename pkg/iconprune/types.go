package iconprune

import "sort"

// ExpectedSet is the set of icon file paths the manifest references.
type ExpectedSet map[string]struct{}

// NewExpectedSet builds a set from paths. Duplicates collapse.
func NewExpectedSet(paths ...string) ExpectedSet {
	s := make(ExpectedSet, len(paths))
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add inserts path into the set.
func (s ExpectedSet) Add(path string) {
	s[path] = struct{}{}
}

// Contains reports whether path is expected. Comparison is exact.
func (s ExpectedSet) Contains(path string) bool {
	_, ok := s[path]
	return ok
}

// Len returns the number of distinct expected paths.
func (s ExpectedSet) Len() int {
	return len(s)
}

// Sorted returns the expected paths in lexical order.
func (s ExpectedSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Plan is the classification of every icon file found on disk.
// Every discovered file lands in exactly one of Kept or Removable.
type Plan struct {
	Expected  ExpectedSet
	Kept      []string
	Removable []string
}

// Total returns the number of icon files discovered.
func (p Plan) Total() int {
	return len(p.Kept) + len(p.Removable)
}

// HasMismatch reports whether some expected icons were not found on disk.
func (p Plan) HasMismatch() bool {
	return p.Expected.Len() != len(p.Kept)
}

// Missing returns expected paths without a file on disk, sorted.
func (p Plan) Missing() []string {
	found := make(map[string]struct{}, len(p.Kept))
	for _, k := range p.Kept {
		found[k] = struct{}{}
	}
	var missing []string
	for _, e := range p.Expected.Sorted() {
		if _, ok := found[e]; !ok {
			missing = append(missing, e)
		}
	}
	return missing
}

// Summary returns the counts presented at the confirmation gate.
func (p Plan) Summary() DeletionSummary {
	return DeletionSummary{Removable: len(p.Removable), Kept: len(p.Kept)}
}

// Result describes a completed reconciliation.
type Result struct {
	Plan Plan

	// Confirmed is true when the operator approved deletion.
	Confirmed bool

	// Removed counts files actually deleted. On a deletion failure it holds the
	// number removed before the failure.
	Removed int
}
