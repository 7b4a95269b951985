package model

import (
	"fmt"
	"strings"

	"github.com/c360studio/owlgraph/rdf"
)

// Axiom is a top-level logical statement reconstructed from the graph. Each
// axiom owns its operand expressions; no axiom shares mutable state with
// another.
type Axiom interface {
	isAxiom()
	fmt.Stringer
}

// EntityKind labels a declared entity.
type EntityKind string

const (
	// KindClass declares an OWL class.
	KindClass EntityKind = "Class"

	// KindObjectProperty declares an object property.
	KindObjectProperty EntityKind = "ObjectProperty"

	// KindDataProperty declares a data property.
	KindDataProperty EntityKind = "DataProperty"

	// KindAnnotationProperty declares an annotation property.
	KindAnnotationProperty EntityKind = "AnnotationProperty"

	// KindNamedIndividual declares a named individual.
	KindNamedIndividual EntityKind = "NamedIndividual"
)

// Declaration introduces a named entity of a given kind.
type Declaration struct {
	Kind   EntityKind
	Entity rdf.IRI
}

func (*Declaration) isAxiom() {}

func (a *Declaration) String() string {
	return fmt.Sprintf("Declaration(%s(%s))", a.Kind, a.Entity.String())
}

// SubClassOf states that Sub is subsumed by Super.
type SubClassOf struct {
	Sub   ClassExpression
	Super ClassExpression
}

func (*SubClassOf) isAxiom() {}

func (a *SubClassOf) String() string {
	return fmt.Sprintf("SubClassOf(%s %s)", a.Sub, a.Super)
}

// EquivalentClasses states mutual subsumption of its operands.
type EquivalentClasses struct {
	Operands []ClassExpression
}

func (*EquivalentClasses) isAxiom() {}

func (a *EquivalentClasses) String() string {
	return fmt.Sprintf("EquivalentClasses(%s)", joinExpressions(a.Operands))
}

// DisjointClasses states pairwise disjointness of its operands.
type DisjointClasses struct {
	Operands []ClassExpression
}

func (*DisjointClasses) isAxiom() {}

func (a *DisjointClasses) String() string {
	return fmt.Sprintf("DisjointClasses(%s)", joinExpressions(a.Operands))
}

// SubObjectPropertyOf states property subsumption.
type SubObjectPropertyOf struct {
	Sub   PropertyExpression
	Super PropertyExpression
}

func (*SubObjectPropertyOf) isAxiom() {}

func (a *SubObjectPropertyOf) String() string {
	return fmt.Sprintf("SubObjectPropertyOf(%s %s)", a.Sub, a.Super)
}

// SubPropertyChainOf states that the composition of Chain is subsumed by
// Super.
type SubPropertyChainOf struct {
	Chain []PropertyExpression
	Super PropertyExpression
}

func (*SubPropertyChainOf) isAxiom() {}

func (a *SubPropertyChainOf) String() string {
	parts := make([]string, len(a.Chain))
	for i, p := range a.Chain {
		parts[i] = p.String()
	}
	return fmt.Sprintf("SubObjectPropertyOf(ObjectPropertyChain(%s) %s)",
		strings.Join(parts, " "), a.Super)
}

// InverseObjectProperties states that two object properties are inverses.
type InverseObjectProperties struct {
	First  PropertyExpression
	Second PropertyExpression
}

func (*InverseObjectProperties) isAxiom() {}

func (a *InverseObjectProperties) String() string {
	return fmt.Sprintf("InverseObjectProperties(%s %s)", a.First, a.Second)
}

// EquivalentObjectProperties states property equivalence.
type EquivalentObjectProperties struct {
	Operands []PropertyExpression
}

func (*EquivalentObjectProperties) isAxiom() {}

func (a *EquivalentObjectProperties) String() string {
	parts := make([]string, len(a.Operands))
	for i, p := range a.Operands {
		parts[i] = p.String()
	}
	return fmt.Sprintf("EquivalentObjectProperties(%s)", strings.Join(parts, " "))
}

// ObjectPropertyDomain constrains the subjects of a property.
type ObjectPropertyDomain struct {
	Property PropertyExpression
	Domain   ClassExpression
}

func (*ObjectPropertyDomain) isAxiom() {}

func (a *ObjectPropertyDomain) String() string {
	return fmt.Sprintf("ObjectPropertyDomain(%s %s)", a.Property, a.Domain)
}

// ObjectPropertyRange constrains the objects of a property.
type ObjectPropertyRange struct {
	Property PropertyExpression
	Range    ClassExpression
}

func (*ObjectPropertyRange) isAxiom() {}

func (a *ObjectPropertyRange) String() string {
	return fmt.Sprintf("ObjectPropertyRange(%s %s)", a.Property, a.Range)
}

// DataPropertyDomain constrains the subjects of a data property.
type DataPropertyDomain struct {
	Property PropertyExpression
	Domain   ClassExpression
}

func (*DataPropertyDomain) isAxiom() {}

func (a *DataPropertyDomain) String() string {
	return fmt.Sprintf("DataPropertyDomain(%s %s)", a.Property, a.Domain)
}

// DataPropertyRange constrains a data property's values to a datatype.
type DataPropertyRange struct {
	Property PropertyExpression
	Range    rdf.IRI
}

func (*DataPropertyRange) isAxiom() {}

func (a *DataPropertyRange) String() string {
	return fmt.Sprintf("DataPropertyRange(%s %s)", a.Property, a.Range.String())
}

// CharacteristicKind labels a property characteristic axiom.
type CharacteristicKind string

const (
	// CharacteristicFunctional marks owl:FunctionalProperty.
	CharacteristicFunctional CharacteristicKind = "Functional"

	// CharacteristicInverseFunctional marks owl:InverseFunctionalProperty.
	CharacteristicInverseFunctional CharacteristicKind = "InverseFunctional"

	// CharacteristicTransitive marks owl:TransitiveProperty.
	CharacteristicTransitive CharacteristicKind = "Transitive"

	// CharacteristicSymmetric marks owl:SymmetricProperty.
	CharacteristicSymmetric CharacteristicKind = "Symmetric"
)

// ObjectPropertyCharacteristic states a characteristic of a property.
type ObjectPropertyCharacteristic struct {
	Kind     CharacteristicKind
	Property PropertyExpression
}

func (*ObjectPropertyCharacteristic) isAxiom() {}

func (a *ObjectPropertyCharacteristic) String() string {
	return fmt.Sprintf("%sObjectProperty(%s)", a.Kind, a.Property)
}

// ClassAssertion states that an individual is an instance of a class
// expression.
type ClassAssertion struct {
	Class      ClassExpression
	Individual Individual
}

func (*ClassAssertion) isAxiom() {}

func (a *ClassAssertion) String() string {
	return fmt.Sprintf("ClassAssertion(%s %s)", a.Class, a.Individual)
}

// ObjectPropertyAssertion relates two individuals.
type ObjectPropertyAssertion struct {
	Property PropertyExpression
	Subject  Individual
	Object   Individual
}

func (*ObjectPropertyAssertion) isAxiom() {}

func (a *ObjectPropertyAssertion) String() string {
	return fmt.Sprintf("ObjectPropertyAssertion(%s %s %s)", a.Property, a.Subject, a.Object)
}

// DataPropertyAssertion relates an individual to a literal value.
type DataPropertyAssertion struct {
	Property PropertyExpression
	Subject  Individual
	Value    rdf.Literal
}

func (*DataPropertyAssertion) isAxiom() {}

func (a *DataPropertyAssertion) String() string {
	return fmt.Sprintf("DataPropertyAssertion(%s %s %s)", a.Property, a.Subject, a.Value.String())
}

// SameIndividual states identity of its individuals.
type SameIndividual struct {
	Individuals []Individual
}

func (*SameIndividual) isAxiom() {}

func (a *SameIndividual) String() string {
	return fmt.Sprintf("SameIndividual(%s)", joinIndividuals(a.Individuals))
}

// DifferentIndividuals states distinctness of its individuals.
type DifferentIndividuals struct {
	Individuals []Individual
}

func (*DifferentIndividuals) isAxiom() {}

func (a *DifferentIndividuals) String() string {
	return fmt.Sprintf("DifferentIndividuals(%s)", joinIndividuals(a.Individuals))
}

// AnnotationAssertion attaches an annotation value to a subject term.
type AnnotationAssertion struct {
	Property rdf.IRI
	Subject  rdf.Term
	Value    rdf.Term
}

func (*AnnotationAssertion) isAxiom() {}

func (a *AnnotationAssertion) String() string {
	return fmt.Sprintf("AnnotationAssertion(%s %s %s)",
		a.Property.String(), a.Subject.String(), a.Value.String())
}

func joinIndividuals(inds []Individual) string {
	parts := make([]string, len(inds))
	for i, ind := range inds {
		parts[i] = ind.String()
	}
	return strings.Join(parts, " ")
}
