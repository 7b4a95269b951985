package model

import (
	"fmt"

	"github.com/c360studio/owlgraph/rdf"
)

// Individual is a resolved individual-shaped operand.
type Individual interface {
	isIndividual()
	fmt.Stringer
}

// NamedIndividual is an individual referenced by IRI.
type NamedIndividual struct {
	IRI rdf.IRI
}

func (NamedIndividual) isIndividual() {}

func (i NamedIndividual) String() string { return i.IRI.String() }

// AnonymousIndividual is an individual denoted by a blank node. Its ID is the
// graph-local blank node identifier, preserved so that multiple references to
// the same node stay correlated.
type AnonymousIndividual struct {
	ID rdf.BlankNode
}

func (*AnonymousIndividual) isIndividual() {}

func (i *AnonymousIndividual) String() string { return i.ID.String() }
