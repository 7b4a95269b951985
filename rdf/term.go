// Package rdf provides the term model and the consuming triple store the
// translation engine operates on. Terms are value types addressed by stable
// identifiers rather than pointers, so graph sharing and cycles never require
// cyclic Go structures.
package rdf

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/c360studio/owlgraph/vocabulary"
)

// Term is a node or literal appearing in a triple. The three implementations
// are IRI, BlankNode, and Literal.
type Term interface {
	// Key returns a stable identity string. Two terms are the same graph
	// node iff their keys are equal.
	Key() string

	// String returns a display form suitable for diagnostics.
	String() string
}

// IRI is a globally named reference.
type IRI string

// Key implements Term.
func (i IRI) Key() string { return "<" + string(i) + ">" }

// String returns the CURIE form when a prefix is registered.
func (i IRI) String() string { return vocabulary.Shorten(string(i)) }

// BlankNode is an anonymous reference, meaningful only within one document.
type BlankNode string

// Key implements Term.
func (b BlankNode) Key() string { return "_:" + string(b) }

// String implements Term.
func (b BlankNode) String() string { return "_:" + string(b) }

// NewBlankNode returns a blank node with a fresh document-unique identifier.
func NewBlankNode() BlankNode {
	return BlankNode("genid-" + uuid.NewString())
}

// Literal is a data value with an optional datatype or language tag.
type Literal struct {
	Value    string
	Datatype IRI
	Lang     string
}

// Key implements Term.
func (l Literal) Key() string {
	switch {
	case l.Lang != "":
		return fmt.Sprintf("%q@%s", l.Value, l.Lang)
	case l.Datatype != "":
		return fmt.Sprintf("%q^^<%s>", l.Value, l.Datatype)
	default:
		return fmt.Sprintf("%q", l.Value)
	}
}

// String implements Term.
func (l Literal) String() string {
	switch {
	case l.Lang != "":
		return fmt.Sprintf("%q@%s", l.Value, l.Lang)
	case l.Datatype != "":
		return fmt.Sprintf("%q^^%s", l.Value, vocabulary.Shorten(string(l.Datatype)))
	default:
		return fmt.Sprintf("%q", l.Value)
	}
}

// IsResource reports whether the term can appear in subject position.
func IsResource(t Term) bool {
	switch t.(type) {
	case IRI, BlankNode:
		return true
	default:
		return false
	}
}
