// Package acronym holds the set of user declared acronyms which acronym aware
// case conversions render as fixed upper case units.
package acronym

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/octohelm/inflector/pkg/camelcase"
)

// MinLen is the shortest acronym accepted, in runes.
const MinLen = 2

// Set is an immutable set of upper case acronyms.
type Set map[string]struct{}

// Parse splits csv on commas and builds a Set. Tokens are trimmed and upper
// cased; tokens shorter than MinLen are dropped.
func Parse(csv string) Set {
	return NewSet(strings.Split(csv, ",")...)
}

func NewSet(tokens ...string) Set {
	s := make(Set, len(tokens))
	for _, t := range tokens {
		t = camelcase.ToUpper(strings.TrimSpace(t))
		if utf8.RuneCountInString(t) < MinLen {
			continue
		}
		s[t] = struct{}{}
	}
	return s
}

// Has matches word case-insensitively.
func (s Set) Has(word string) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[camelcase.ToUpper(word)]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the acronyms in ascending lexicographic order.
func (s Set) Sorted() []string {
	list := make([]string, 0, len(s))
	for a := range s {
		list = append(list, a)
	}
	sort.Strings(list)
	return list
}

func (s Set) String() string {
	return strings.Join(s.Sorted(), ",")
}

// Registry is the shared, mutable holder of the current Set.
// Writers replace the whole Set, so a Snapshot never changes after it is taken.
type Registry struct {
	mu  sync.RWMutex
	set Set
}

func NewRegistry(tokens ...string) *Registry {
	return &Registry{set: NewSet(tokens...)}
}

// Set replaces the registry content with the acronyms parsed from csv.
func (r *Registry) Set(csv string) {
	r.Replace(Parse(csv))
}

// SetList replaces the registry content with tokens.
func (r *Registry) SetList(tokens []string) {
	r.Replace(NewSet(tokens...))
}

func (r *Registry) Replace(set Set) {
	if set == nil {
		set = Set{}
	}

	r.mu.Lock()
	r.set = set
	r.mu.Unlock()
}

// Clear empties the registry, so conversions fall back to default casing.
func (r *Registry) Clear() {
	r.Replace(nil)
}

// Get returns the acronyms sorted and comma joined.
func (r *Registry) Get() string {
	return r.Snapshot().String()
}

func (r *Registry) Snapshot() Set {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.set
}

func (r *Registry) Len() int {
	return r.Snapshot().Len()
}
