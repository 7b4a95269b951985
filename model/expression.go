// Package model defines the typed object model the translation engine
// produces: class expressions, property expressions, individuals, and axioms.
// Composite expressions are pointer values so that shared substructure in the
// source graph stays shared in the output.
//
// String methods render OWL functional syntax; the export package composes
// them into full documents.
package model

import (
	"fmt"
	"strings"

	"github.com/c360studio/owlgraph/rdf"
)

// ClassExpression is a fully resolved class-shaped operand. Every operand of
// every variant is itself resolved; no variant holds a raw graph node.
type ClassExpression interface {
	isClassExpression()
	fmt.Stringer
}

// NamedClass is a class referenced by IRI. The terminal case of resolution.
type NamedClass struct {
	IRI rdf.IRI
}

func (NamedClass) isClassExpression() {}

func (c NamedClass) String() string { return c.IRI.String() }

// ObjectSomeValuesFrom is an existential restriction over an object property.
type ObjectSomeValuesFrom struct {
	Property PropertyExpression
	Filler   ClassExpression
}

func (*ObjectSomeValuesFrom) isClassExpression() {}

func (e *ObjectSomeValuesFrom) String() string {
	return fmt.Sprintf("ObjectSomeValuesFrom(%s %s)", e.Property, e.Filler)
}

// ObjectAllValuesFrom is a universal restriction over an object property.
type ObjectAllValuesFrom struct {
	Property PropertyExpression
	Filler   ClassExpression
}

func (*ObjectAllValuesFrom) isClassExpression() {}

func (e *ObjectAllValuesFrom) String() string {
	return fmt.Sprintf("ObjectAllValuesFrom(%s %s)", e.Property, e.Filler)
}

// ObjectHasValue restricts a property to a specific individual value.
type ObjectHasValue struct {
	Property   PropertyExpression
	Individual Individual
}

func (*ObjectHasValue) isClassExpression() {}

func (e *ObjectHasValue) String() string {
	return fmt.Sprintf("ObjectHasValue(%s %s)", e.Property, e.Individual)
}

// CardinalityKind distinguishes exact, minimum, and maximum cardinality.
type CardinalityKind string

const (
	// CardinalityExact is owl:cardinality.
	CardinalityExact CardinalityKind = "exact"

	// CardinalityMin is owl:minCardinality.
	CardinalityMin CardinalityKind = "min"

	// CardinalityMax is owl:maxCardinality.
	CardinalityMax CardinalityKind = "max"
)

// ObjectCardinality is a cardinality restriction over an object property.
// Filler is nil for the unqualified form.
type ObjectCardinality struct {
	Kind     CardinalityKind
	Property PropertyExpression
	Filler   ClassExpression
	N        int
}

func (*ObjectCardinality) isClassExpression() {}

func (e *ObjectCardinality) String() string {
	name := map[CardinalityKind]string{
		CardinalityExact: "ObjectExactCardinality",
		CardinalityMin:   "ObjectMinCardinality",
		CardinalityMax:   "ObjectMaxCardinality",
	}[e.Kind]
	if e.Filler != nil {
		return fmt.Sprintf("%s(%d %s %s)", name, e.N, e.Property, e.Filler)
	}
	return fmt.Sprintf("%s(%d %s)", name, e.N, e.Property)
}

// ObjectIntersectionOf is the conjunction of its operands.
type ObjectIntersectionOf struct {
	Operands []ClassExpression
}

func (*ObjectIntersectionOf) isClassExpression() {}

func (e *ObjectIntersectionOf) String() string {
	return fmt.Sprintf("ObjectIntersectionOf(%s)", joinExpressions(e.Operands))
}

// ObjectUnionOf is the disjunction of its operands.
type ObjectUnionOf struct {
	Operands []ClassExpression
}

func (*ObjectUnionOf) isClassExpression() {}

func (e *ObjectUnionOf) String() string {
	return fmt.Sprintf("ObjectUnionOf(%s)", joinExpressions(e.Operands))
}

// ObjectComplementOf is the negation of its operand.
type ObjectComplementOf struct {
	Operand ClassExpression
}

func (*ObjectComplementOf) isClassExpression() {}

func (e *ObjectComplementOf) String() string {
	return fmt.Sprintf("ObjectComplementOf(%s)", e.Operand)
}

// ObjectOneOf is the enumeration of its individuals.
type ObjectOneOf struct {
	Individuals []Individual
}

func (*ObjectOneOf) isClassExpression() {}

func (e *ObjectOneOf) String() string {
	parts := make([]string, len(e.Individuals))
	for i, ind := range e.Individuals {
		parts[i] = ind.String()
	}
	return fmt.Sprintf("ObjectOneOf(%s)", strings.Join(parts, " "))
}

// DataSomeValuesFrom is an existential restriction over a data property.
type DataSomeValuesFrom struct {
	Property PropertyExpression
	Datatype rdf.IRI
}

func (*DataSomeValuesFrom) isClassExpression() {}

func (e *DataSomeValuesFrom) String() string {
	return fmt.Sprintf("DataSomeValuesFrom(%s %s)", e.Property, e.Datatype.String())
}

// DataAllValuesFrom is a universal restriction over a data property.
type DataAllValuesFrom struct {
	Property PropertyExpression
	Datatype rdf.IRI
}

func (*DataAllValuesFrom) isClassExpression() {}

func (e *DataAllValuesFrom) String() string {
	return fmt.Sprintf("DataAllValuesFrom(%s %s)", e.Property, e.Datatype.String())
}

// DataHasValue restricts a data property to a specific literal value.
type DataHasValue struct {
	Property PropertyExpression
	Value    rdf.Literal
}

func (*DataHasValue) isClassExpression() {}

func (e *DataHasValue) String() string {
	return fmt.Sprintf("DataHasValue(%s %s)", e.Property, e.Value.String())
}

func joinExpressions(ops []ClassExpression) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.String()
	}
	return strings.Join(parts, " ")
}
