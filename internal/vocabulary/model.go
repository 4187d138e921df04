// Package vocabulary defines the word-pair model and the sources that load it.
package vocabulary

import "fmt"

// Entry is a single term and its translation.
type Entry struct {
	Term        string `yaml:"term"`
	Translation string `yaml:"translation"`
}

// Set is a collection of vocabulary entries with unique terms.
// It is read-only after construction.
type Set struct {
	entries []Entry
	byTerm  map[string]string
}

// NewSet builds a set from entries, rejecting blank fields and duplicate terms.
func NewSet(entries []Entry) (Set, error) {
	byTerm := make(map[string]string, len(entries))
	kept := make([]Entry, 0, len(entries))
	for i, entry := range entries {
		if entry.Term == "" {
			return Set{}, fmt.Errorf("entry %d has an empty term", i+1)
		}
		if entry.Translation == "" {
			return Set{}, fmt.Errorf("entry %d (%s) has an empty translation", i+1, entry.Term)
		}
		if _, ok := byTerm[entry.Term]; ok {
			return Set{}, fmt.Errorf("duplicate term %q", entry.Term)
		}
		byTerm[entry.Term] = entry.Translation
		kept = append(kept, entry)
	}
	return Set{entries: kept, byTerm: byTerm}, nil
}

// Entries returns a copy of the entries in load order.
func (s Set) Entries() []Entry {
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Len returns the number of entries in the set.
func (s Set) Len() int {
	return len(s.entries)
}

// Translation looks up the translation for a term.
func (s Set) Translation(term string) (string, bool) {
	translation, ok := s.byTerm[term]
	return translation, ok
}
