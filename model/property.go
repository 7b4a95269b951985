package model

import (
	"fmt"

	"github.com/c360studio/owlgraph/rdf"
)

// PropertyExpression is a resolved property-shaped operand.
type PropertyExpression interface {
	isPropertyExpression()
	fmt.Stringer
}

// ObjectProperty is an object property referenced by IRI.
type ObjectProperty struct {
	IRI rdf.IRI
}

func (ObjectProperty) isPropertyExpression() {}

func (p ObjectProperty) String() string { return p.IRI.String() }

// InverseObjectProperty is the inverse of an object property expression.
type InverseObjectProperty struct {
	Property PropertyExpression
}

func (*InverseObjectProperty) isPropertyExpression() {}

func (p *InverseObjectProperty) String() string {
	return fmt.Sprintf("ObjectInverseOf(%s)", p.Property)
}

// DataProperty is a data property referenced by IRI.
type DataProperty struct {
	IRI rdf.IRI
}

func (DataProperty) isPropertyExpression() {}

func (p DataProperty) String() string { return p.IRI.String() }
