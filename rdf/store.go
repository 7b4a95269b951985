package rdf

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors returned by Singleton lookups. The translation layer maps
// both onto malformed-construct diagnostics.
var (
	// ErrNoMatch indicates a required triple is absent.
	ErrNoMatch = errors.New("no matching triple")

	// ErrAmbiguous indicates a functional predicate has multiple objects.
	ErrAmbiguous = errors.New("multiple matching triples")
)

// Store holds the ingested triples of one document and tracks which of them
// the engine has consumed. All lookups are pure reads except Consume.
//
// Iteration order of every query is determined solely by triple content,
// never by insertion order, which is what makes translation deterministic
// under streamed input.
type Store struct {
	triples  []Triple
	consumed []bool
	byKey    map[string]int
	bySubj   map[string][]int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		byKey:  make(map[string]int),
		bySubj: make(map[string][]int),
	}
}

// Assert inserts a fact. Asserting an identical triple twice is a no-op.
func (s *Store) Assert(t Triple) {
	key := t.Key()
	if _, ok := s.byKey[key]; ok {
		return
	}
	idx := len(s.triples)
	s.triples = append(s.triples, t)
	s.consumed = append(s.consumed, false)
	s.byKey[key] = idx
	subjKey := t.Subject.Key()
	s.bySubj[subjKey] = append(s.bySubj[subjKey], idx)
}

// Len returns the number of distinct triples held.
func (s *Store) Len() int { return len(s.triples) }

// Match returns the triples matching the given fields in deterministic
// (content-sorted) order. A nil subject or object and an empty predicate act
// as wildcards.
func (s *Store) Match(subject Term, predicate IRI, object Term) []Triple {
	var out []Triple
	for _, idx := range s.candidates(subject) {
		t := s.triples[idx]
		if subject != nil && t.Subject.Key() != subject.Key() {
			continue
		}
		if predicate != "" && t.Predicate != predicate {
			continue
		}
		if object != nil && t.Object.Key() != object.Key() {
			continue
		}
		out = append(out, t)
	}
	sortTriples(out)
	return out
}

// Contains reports whether at least one triple matches the given fields.
func (s *Store) Contains(subject Term, predicate IRI, object Term) bool {
	for _, idx := range s.candidates(subject) {
		t := s.triples[idx]
		if subject != nil && t.Subject.Key() != subject.Key() {
			continue
		}
		if predicate != "" && t.Predicate != predicate {
			continue
		}
		if object != nil && t.Object.Key() != object.Key() {
			continue
		}
		return true
	}
	return false
}

// Singleton returns the unique object for a functional predicate rooted at
// subject. It returns ErrNoMatch when absent and ErrAmbiguous when the
// predicate has more than one object.
func (s *Store) Singleton(subject Term, predicate IRI) (Term, error) {
	matches := s.Match(subject, predicate, nil)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%s %s: %w", subject.String(), IRI(predicate).String(), ErrNoMatch)
	case 1:
		return matches[0].Object, nil
	default:
		return nil, fmt.Errorf("%s %s: %w", subject.String(), IRI(predicate).String(), ErrAmbiguous)
	}
}

// Consume marks a triple as used by a translator. Consuming an unknown or
// already-consumed triple is a no-op.
func (s *Store) Consume(t Triple) {
	if idx, ok := s.byKey[t.Key()]; ok {
		s.consumed[idx] = true
	}
}

// Consumed reports whether the given triple has been consumed.
func (s *Store) Consumed(t Triple) bool {
	idx, ok := s.byKey[t.Key()]
	return ok && s.consumed[idx]
}

// Unconsumed returns the residue: every asserted triple never claimed by a
// translator, in deterministic order.
func (s *Store) Unconsumed() []Triple {
	var out []Triple
	for idx, t := range s.triples {
		if !s.consumed[idx] {
			out = append(out, t)
		}
	}
	sortTriples(out)
	return out
}

// All returns every asserted triple in deterministic order.
func (s *Store) All() []Triple {
	out := make([]Triple, len(s.triples))
	copy(out, s.triples)
	sortTriples(out)
	return out
}

// Subjects returns the distinct subject terms in deterministic order.
func (s *Store) Subjects() []Term {
	keys := make([]string, 0, len(s.bySubj))
	for k := range s.bySubj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Term, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.triples[s.bySubj[k][0]].Subject)
	}
	return out
}

// candidates narrows the scan to one subject's triples when the subject is
// bound, falling back to a full scan for wildcard subjects.
func (s *Store) candidates(subject Term) []int {
	if subject == nil {
		idxs := make([]int, len(s.triples))
		for i := range s.triples {
			idxs[i] = i
		}
		return idxs
	}
	return s.bySubj[subject.Key()]
}

func sortTriples(ts []Triple) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].Key() < ts[j].Key() })
}
