package vocabulary

// OWLNamespace is the base IRI of the OWL 2 vocabulary.
const OWLNamespace = "http://www.w3.org/2002/07/owl#"

// Entity declaration classes.
const (
	// OWLClass is the class of OWL classes.
	OWLClass = OWLNamespace + "Class"

	// OWLObjectProperty is the class of object properties.
	OWLObjectProperty = OWLNamespace + "ObjectProperty"

	// OWLDatatypeProperty is the class of data properties.
	OWLDatatypeProperty = OWLNamespace + "DatatypeProperty"

	// OWLAnnotationProperty is the class of annotation properties.
	OWLAnnotationProperty = OWLNamespace + "AnnotationProperty"

	// OWLNamedIndividual is the class of named individuals.
	OWLNamedIndividual = OWLNamespace + "NamedIndividual"

	// OWLOntology is the class of ontology headers.
	OWLOntology = OWLNamespace + "Ontology"

	// OWLRestriction is the class of property restrictions.
	OWLRestriction = OWLNamespace + "Restriction"

	// OWLThing is the universal class.
	OWLThing = OWLNamespace + "Thing"

	// OWLNothing is the empty class.
	OWLNothing = OWLNamespace + "Nothing"
)

// Restriction predicates. A restriction main node carries owl:onProperty plus
// exactly one construct-specific predicate from this group.
const (
	// OWLOnProperty links a restriction to the restricted property.
	OWLOnProperty = OWLNamespace + "onProperty"

	// OWLSomeValuesFrom marks an existential restriction filler.
	OWLSomeValuesFrom = OWLNamespace + "someValuesFrom"

	// OWLAllValuesFrom marks a universal restriction filler.
	OWLAllValuesFrom = OWLNamespace + "allValuesFrom"

	// OWLHasValue marks a value restriction.
	OWLHasValue = OWLNamespace + "hasValue"

	// OWLCardinality marks an exact cardinality restriction.
	OWLCardinality = OWLNamespace + "cardinality"

	// OWLMinCardinality marks a minimum cardinality restriction.
	OWLMinCardinality = OWLNamespace + "minCardinality"

	// OWLMaxCardinality marks a maximum cardinality restriction.
	OWLMaxCardinality = OWLNamespace + "maxCardinality"

	// OWLOnClass qualifies a cardinality restriction with a filler class.
	OWLOnClass = OWLNamespace + "onClass"
)

// Boolean connectives and enumerations.
const (
	// OWLIntersectionOf links a class node to an RDF list of conjuncts.
	OWLIntersectionOf = OWLNamespace + "intersectionOf"

	// OWLUnionOf links a class node to an RDF list of disjuncts.
	OWLUnionOf = OWLNamespace + "unionOf"

	// OWLComplementOf links a class node to its complemented operand.
	OWLComplementOf = OWLNamespace + "complementOf"

	// OWLOneOf links a class node to an RDF list of individuals.
	OWLOneOf = OWLNamespace + "oneOf"
)

// Class and property axiom predicates.
const (
	// OWLEquivalentClass asserts class equivalence.
	OWLEquivalentClass = OWLNamespace + "equivalentClass"

	// OWLDisjointWith asserts pairwise class disjointness.
	OWLDisjointWith = OWLNamespace + "disjointWith"

	// OWLAllDisjointClasses is the reified n-ary disjointness class.
	OWLAllDisjointClasses = OWLNamespace + "AllDisjointClasses"

	// OWLMembers lists the operands of a reified n-ary axiom.
	OWLMembers = OWLNamespace + "members"

	// OWLInverseOf asserts that two object properties are inverses, or, on
	// an anonymous node, forms an inverse property expression.
	OWLInverseOf = OWLNamespace + "inverseOf"

	// OWLPropertyChainAxiom links a property to an RDF list forming a
	// subproperty chain.
	OWLPropertyChainAxiom = OWLNamespace + "propertyChainAxiom"

	// OWLEquivalentProperty asserts property equivalence.
	OWLEquivalentProperty = OWLNamespace + "equivalentProperty"
)

// Property characteristic classes, asserted via rdf:type on a property.
const (
	// OWLFunctionalProperty marks a property as functional.
	OWLFunctionalProperty = OWLNamespace + "FunctionalProperty"

	// OWLInverseFunctionalProperty marks a property as inverse functional.
	OWLInverseFunctionalProperty = OWLNamespace + "InverseFunctionalProperty"

	// OWLTransitiveProperty marks a property as transitive.
	OWLTransitiveProperty = OWLNamespace + "TransitiveProperty"

	// OWLSymmetricProperty marks a property as symmetric.
	OWLSymmetricProperty = OWLNamespace + "SymmetricProperty"
)

// Individual axiom predicates.
const (
	// OWLSameAs asserts individual identity.
	OWLSameAs = OWLNamespace + "sameAs"

	// OWLDifferentFrom asserts individual distinctness.
	OWLDifferentFrom = OWLNamespace + "differentFrom"
)
