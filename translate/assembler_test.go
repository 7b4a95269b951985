package translate_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/owlgraph/model"
	"github.com/c360studio/owlgraph/rdf"
	"github.com/c360studio/owlgraph/translate"
	"github.com/c360studio/owlgraph/vocabulary"
)

const ns = "http://example.org/vehicles#"

func iri(local string) rdf.IRI { return rdf.IRI(ns + local) }

func voc(full string) rdf.IRI { return rdf.IRI(full) }

func newStore(triples ...rdf.Triple) *rdf.Store {
	store := rdf.NewStore()
	for _, t := range triples {
		store.Assert(t)
	}
	return store
}

// restrictionTriples builds the standard existential restriction shape
// rooted at the given blank node.
func restrictionTriples(node rdf.BlankNode, property, filler rdf.Term) []rdf.Triple {
	return []rdf.Triple{
		{Subject: node, Predicate: voc(vocabulary.RDFType), Object: voc(vocabulary.OWLRestriction)},
		{Subject: node, Predicate: voc(vocabulary.OWLOnProperty), Object: property},
		{Subject: node, Predicate: voc(vocabulary.OWLSomeValuesFrom), Object: filler},
	}
}

func axiomStrings(result *translate.Result) []string {
	out := make([]string, len(result.Axioms))
	for i, ax := range result.Axioms {
		out[i] = ax.String()
	}
	return out
}

func diagnosticKinds(result *translate.Result) []translate.DiagnosticKind {
	out := make([]translate.DiagnosticKind, len(result.Diagnostics))
	for i, d := range result.Diagnostics {
		out[i] = d.Kind
	}
	return out
}

func TestSomeValuesFromScenario(t *testing.T) {
	store := newStore(restrictionTriples("r", iri("hasPart"), iri("Engine"))...)
	store.Assert(rdf.Triple{Subject: iri("Car"), Predicate: voc(vocabulary.RDFSSubClassOf), Object: rdf.BlankNode("r")})

	result := translate.TranslateDocument(store)

	require.Len(t, result.Axioms, 1)
	sub, ok := result.Axioms[0].(*model.SubClassOf)
	require.True(t, ok)

	restriction, ok := sub.Super.(*model.ObjectSomeValuesFrom)
	require.True(t, ok)
	assert.Equal(t, model.ObjectProperty{IRI: iri("hasPart")}, restriction.Property)
	assert.Equal(t, model.NamedClass{IRI: iri("Engine")}, restriction.Filler)

	assert.Empty(t, result.Residue)
	assert.Empty(t, result.Diagnostics)
}

func TestMissingQuantifierScenario(t *testing.T) {
	store := newStore(
		rdf.Triple{Subject: rdf.BlankNode("r"), Predicate: voc(vocabulary.RDFType), Object: voc(vocabulary.OWLRestriction)},
		rdf.Triple{Subject: rdf.BlankNode("r"), Predicate: voc(vocabulary.OWLOnProperty), Object: iri("hasPart")},
	)

	result := translate.TranslateDocument(store)

	assert.Empty(t, result.Axioms)
	assert.Contains(t, diagnosticKinds(result), translate.DiagMalformedConstruct)
	assert.Contains(t, diagnosticKinds(result), translate.DiagResidueTriples)
	assert.Len(t, result.Residue, 2)
}

func TestMalformedNodeReportsOnce(t *testing.T) {
	// A restriction without a quantifier, referenced from two axioms.
	store := newStore(
		rdf.Triple{Subject: rdf.BlankNode("r"), Predicate: voc(vocabulary.RDFType), Object: voc(vocabulary.OWLRestriction)},
		rdf.Triple{Subject: rdf.BlankNode("r"), Predicate: voc(vocabulary.OWLOnProperty), Object: iri("hasPart")},
		rdf.Triple{Subject: iri("Car"), Predicate: voc(vocabulary.RDFSSubClassOf), Object: rdf.BlankNode("r")},
		rdf.Triple{Subject: iri("Truck"), Predicate: voc(vocabulary.RDFSSubClassOf), Object: rdf.BlankNode("r")},
	)

	result := translate.TranslateDocument(store)

	assert.Empty(t, result.Axioms)
	malformed := 0
	for _, k := range diagnosticKinds(result) {
		if k == translate.DiagMalformedConstruct {
			malformed++
		}
	}
	assert.Equal(t, 1, malformed)
	assert.Len(t, result.Residue, 4)
}

func TestSelfReferentialRestriction(t *testing.T) {
	store := newStore(restrictionTriples("a", iri("hasPart"), rdf.BlankNode("a"))...)

	result := translate.TranslateDocument(store)

	assert.Empty(t, result.Axioms)
	assert.Contains(t, diagnosticKinds(result), translate.DiagCyclicConstruct)
	assert.Len(t, result.Residue, 3)
}

func TestCycleChains(t *testing.T) {
	for _, depth := range []int{1, 2, 50} {
		t.Run(fmt.Sprintf("depth%d", depth), func(t *testing.T) {
			store := rdf.NewStore()
			for i := 0; i < depth; i++ {
				node := rdf.BlankNode(fmt.Sprintf("n%d", i))
				next := rdf.BlankNode(fmt.Sprintf("n%d", (i+1)%depth))
				for _, tr := range restrictionTriples(node, iri("hasPart"), next) {
					store.Assert(tr)
				}
			}

			result := translate.TranslateDocument(store)

			assert.Empty(t, result.Axioms)
			assert.Contains(t, diagnosticKinds(result), translate.DiagCyclicConstruct)
		})
	}
}

func TestDeterminismUnderInsertionOrder(t *testing.T) {
	triples := restrictionTriples("r", iri("hasPart"), iri("Engine"))
	triples = append(triples,
		rdf.Triple{Subject: iri("Car"), Predicate: voc(vocabulary.RDFSSubClassOf), Object: rdf.BlankNode("r")},
		rdf.Triple{Subject: iri("Car"), Predicate: voc(vocabulary.RDFType), Object: voc(vocabulary.OWLClass)},
		rdf.Triple{Subject: iri("Engine"), Predicate: voc(vocabulary.RDFType), Object: voc(vocabulary.OWLClass)},
		rdf.Triple{Subject: iri("Car"), Predicate: voc(vocabulary.OWLDisjointWith), Object: iri("Bicycle")},
	)

	forward := rdf.NewStore()
	for _, tr := range triples {
		forward.Assert(tr)
	}
	backward := rdf.NewStore()
	for i := len(triples) - 1; i >= 0; i-- {
		backward.Assert(triples[i])
	}

	first := translate.TranslateDocument(forward)
	second := translate.TranslateDocument(backward)

	if diff := cmp.Diff(axiomStrings(first), axiomStrings(second)); diff != "" {
		t.Errorf("axiom sets differ under insertion order (-forward +backward):\n%s", diff)
	}
	assert.Equal(t, first.Residue, second.Residue)
}

func TestSharedFillerIsReferenceEqual(t *testing.T) {
	store := newStore(restrictionTriples("shared", iri("hasPart"), iri("Engine"))...)
	store.Assert(rdf.Triple{Subject: iri("Car"), Predicate: voc(vocabulary.RDFSSubClassOf), Object: rdf.BlankNode("shared")})
	store.Assert(rdf.Triple{Subject: iri("Truck"), Predicate: voc(vocabulary.RDFSSubClassOf), Object: rdf.BlankNode("shared")})

	result := translate.TranslateDocument(store)

	require.Len(t, result.Axioms, 2)
	first, ok := result.Axioms[0].(*model.SubClassOf)
	require.True(t, ok)
	second, ok := result.Axioms[1].(*model.SubClassOf)
	require.True(t, ok)

	assert.Same(t, first.Super, second.Super)
	assert.Empty(t, result.Residue)
}

func TestResidueCompleteness(t *testing.T) {
	triples := restrictionTriples("r", iri("hasPart"), iri("Engine"))
	triples = append(triples,
		rdf.Triple{Subject: iri("Car"), Predicate: voc(vocabulary.RDFSSubClassOf), Object: rdf.BlankNode("r")},
		// An undeclared predicate the engine cannot claim.
		rdf.Triple{Subject: iri("Car"), Predicate: iri("color"), Object: rdf.Literal{Value: "red"}},
	)
	store := newStore(triples...)

	result := translate.TranslateDocument(store)

	require.Len(t, result.Residue, 1)
	assert.Equal(t, iri("color"), result.Residue[0].Predicate)

	// Residue plus consumed triples must cover the original set exactly.
	consumed := 0
	for _, tr := range store.All() {
		if store.Consumed(tr) {
			consumed++
		}
	}
	assert.Equal(t, store.Len(), consumed+len(result.Residue))
}

func TestLocalFailureIsolationInIntersection(t *testing.T) {
	store := rdf.NewStore()

	// _:x owl:intersectionOf ( :Engine _:bad :Wheel )
	listTriples := []rdf.Triple{
		{Subject: rdf.BlankNode("x"), Predicate: voc(vocabulary.OWLIntersectionOf), Object: rdf.BlankNode("l1")},
		{Subject: rdf.BlankNode("l1"), Predicate: voc(vocabulary.RDFFirst), Object: iri("Engine")},
		{Subject: rdf.BlankNode("l1"), Predicate: voc(vocabulary.RDFRest), Object: rdf.BlankNode("l2")},
		{Subject: rdf.BlankNode("l2"), Predicate: voc(vocabulary.RDFFirst), Object: rdf.BlankNode("bad")},
		{Subject: rdf.BlankNode("l2"), Predicate: voc(vocabulary.RDFRest), Object: rdf.BlankNode("l3")},
		{Subject: rdf.BlankNode("l3"), Predicate: voc(vocabulary.RDFFirst), Object: iri("Wheel")},
		{Subject: rdf.BlankNode("l3"), Predicate: voc(vocabulary.RDFRest), Object: voc(vocabulary.RDFNil)},
		{Subject: iri("Machine"), Predicate: voc(vocabulary.OWLEquivalentClass), Object: rdf.BlankNode("x")},
		// _:bad has no recognizable shape.
		{Subject: rdf.BlankNode("bad"), Predicate: iri("mystery"), Object: rdf.Literal{Value: "?"}},
	}
	for _, tr := range listTriples {
		store.Assert(tr)
	}

	result := translate.TranslateDocument(store)

	require.Len(t, result.Axioms, 1)
	eq, ok := result.Axioms[0].(*model.EquivalentClasses)
	require.True(t, ok)

	intersection, ok := eq.Operands[1].(*model.ObjectIntersectionOf)
	require.True(t, ok)
	require.Len(t, intersection.Operands, 2)
	assert.Equal(t, model.NamedClass{IRI: iri("Engine")}, intersection.Operands[0])
	assert.Equal(t, model.NamedClass{IRI: iri("Wheel")}, intersection.Operands[1])

	kinds := diagnosticKinds(result)
	unsupported := 0
	for _, k := range kinds {
		if k == translate.DiagUnsupportedConstruct {
			unsupported++
		}
	}
	assert.Equal(t, 1, unsupported)
}

func TestDeclarationsAndAssertions(t *testing.T) {
	store := newStore(
		rdf.Triple{Subject: iri("Car"), Predicate: voc(vocabulary.RDFType), Object: voc(vocabulary.OWLClass)},
		rdf.Triple{Subject: iri("hasPart"), Predicate: voc(vocabulary.RDFType), Object: voc(vocabulary.OWLObjectProperty)},
		rdf.Triple{Subject: iri("weight"), Predicate: voc(vocabulary.RDFType), Object: voc(vocabulary.OWLDatatypeProperty)},
		rdf.Triple{Subject: iri("car1"), Predicate: voc(vocabulary.RDFType), Object: voc(vocabulary.OWLNamedIndividual)},
		rdf.Triple{Subject: iri("car1"), Predicate: voc(vocabulary.RDFType), Object: iri("Car")},
		rdf.Triple{Subject: iri("car1"), Predicate: iri("hasPart"), Object: iri("engine1")},
		rdf.Triple{Subject: iri("car1"), Predicate: iri("weight"), Object: rdf.Literal{Value: "1200", Datatype: voc(vocabulary.XSDInteger)}},
		rdf.Triple{Subject: iri("car1"), Predicate: voc(vocabulary.RDFSLabel), Object: rdf.Literal{Value: "first car"}},
	)

	result := translate.TranslateDocument(store)

	assert.Empty(t, result.Residue)
	assert.Empty(t, result.Diagnostics)

	var kinds []string
	for _, ax := range result.Axioms {
		kinds = append(kinds, fmt.Sprintf("%T", ax))
	}
	assert.Contains(t, kinds, "*model.Declaration")
	assert.Contains(t, kinds, "*model.ClassAssertion")
	assert.Contains(t, kinds, "*model.ObjectPropertyAssertion")
	assert.Contains(t, kinds, "*model.DataPropertyAssertion")
	assert.Contains(t, kinds, "*model.AnnotationAssertion")
	assert.Len(t, result.Axioms, 8)
}

func TestAnonymousIndividualAssertions(t *testing.T) {
	store := newStore(
		rdf.Triple{Subject: iri("hasPart"), Predicate: voc(vocabulary.RDFType), Object: voc(vocabulary.OWLObjectProperty)},
		rdf.Triple{Subject: iri("car1"), Predicate: iri("hasPart"), Object: rdf.BlankNode("anon")},
		rdf.Triple{Subject: rdf.BlankNode("anon"), Predicate: iri("hasPart"), Object: iri("bolt1")},
	)

	result := translate.TranslateDocument(store)

	require.Len(t, result.Axioms, 3)
	var asObject, asSubject model.Individual
	for _, ax := range result.Axioms {
		if opa, ok := ax.(*model.ObjectPropertyAssertion); ok {
			if _, anon := opa.Object.(*model.AnonymousIndividual); anon {
				asObject = opa.Object
			}
			if _, anon := opa.Subject.(*model.AnonymousIndividual); anon {
				asSubject = opa.Subject
			}
		}
	}
	require.NotNil(t, asObject)
	require.NotNil(t, asSubject)
	assert.Same(t, asObject, asSubject)
}

func TestAllDisjointClasses(t *testing.T) {
	store := newStore(
		rdf.Triple{Subject: rdf.BlankNode("d"), Predicate: voc(vocabulary.RDFType), Object: voc(vocabulary.OWLAllDisjointClasses)},
		rdf.Triple{Subject: rdf.BlankNode("d"), Predicate: voc(vocabulary.OWLMembers), Object: rdf.BlankNode("l1")},
		rdf.Triple{Subject: rdf.BlankNode("l1"), Predicate: voc(vocabulary.RDFFirst), Object: iri("Car")},
		rdf.Triple{Subject: rdf.BlankNode("l1"), Predicate: voc(vocabulary.RDFRest), Object: rdf.BlankNode("l2")},
		rdf.Triple{Subject: rdf.BlankNode("l2"), Predicate: voc(vocabulary.RDFFirst), Object: iri("Bicycle")},
		rdf.Triple{Subject: rdf.BlankNode("l2"), Predicate: voc(vocabulary.RDFRest), Object: rdf.BlankNode("l3")},
		rdf.Triple{Subject: rdf.BlankNode("l3"), Predicate: voc(vocabulary.RDFFirst), Object: iri("Boat")},
		rdf.Triple{Subject: rdf.BlankNode("l3"), Predicate: voc(vocabulary.RDFRest), Object: voc(vocabulary.RDFNil)},
	)

	result := translate.TranslateDocument(store)

	require.Len(t, result.Axioms, 1)
	disjoint, ok := result.Axioms[0].(*model.DisjointClasses)
	require.True(t, ok)
	assert.Len(t, disjoint.Operands, 3)
	assert.Empty(t, result.Residue)
}

func TestPropertyAxioms(t *testing.T) {
	store := newStore(
		rdf.Triple{Subject: iri("hasPart"), Predicate: voc(vocabulary.RDFType), Object: voc(vocabulary.OWLObjectProperty)},
		rdf.Triple{Subject: iri("partOf"), Predicate: voc(vocabulary.RDFType), Object: voc(vocabulary.OWLObjectProperty)},
		rdf.Triple{Subject: iri("hasPart"), Predicate: voc(vocabulary.OWLInverseOf), Object: iri("partOf")},
		rdf.Triple{Subject: iri("hasPart"), Predicate: voc(vocabulary.RDFType), Object: voc(vocabulary.OWLTransitiveProperty)},
		rdf.Triple{Subject: iri("hasPart"), Predicate: voc(vocabulary.RDFSDomain), Object: iri("Machine")},
		rdf.Triple{Subject: iri("hasPart"), Predicate: voc(vocabulary.RDFSRange), Object: iri("Component")},
		rdf.Triple{Subject: iri("weight"), Predicate: voc(vocabulary.RDFType), Object: voc(vocabulary.OWLDatatypeProperty)},
		rdf.Triple{Subject: iri("weight"), Predicate: voc(vocabulary.RDFSRange), Object: voc(vocabulary.XSDInteger)},
	)

	result := translate.TranslateDocument(store)

	assert.Empty(t, result.Residue)

	var kinds []string
	for _, ax := range result.Axioms {
		kinds = append(kinds, fmt.Sprintf("%T", ax))
	}
	assert.Contains(t, kinds, "*model.InverseObjectProperties")
	assert.Contains(t, kinds, "*model.ObjectPropertyCharacteristic")
	assert.Contains(t, kinds, "*model.ObjectPropertyDomain")
	assert.Contains(t, kinds, "*model.ObjectPropertyRange")
	assert.Contains(t, kinds, "*model.DataPropertyRange")
}

func TestPropertyChain(t *testing.T) {
	store := newStore(
		rdf.Triple{Subject: iri("hasGrandparent"), Predicate: voc(vocabulary.OWLPropertyChainAxiom), Object: rdf.BlankNode("l1")},
		rdf.Triple{Subject: rdf.BlankNode("l1"), Predicate: voc(vocabulary.RDFFirst), Object: iri("hasParent")},
		rdf.Triple{Subject: rdf.BlankNode("l1"), Predicate: voc(vocabulary.RDFRest), Object: rdf.BlankNode("l2")},
		rdf.Triple{Subject: rdf.BlankNode("l2"), Predicate: voc(vocabulary.RDFFirst), Object: iri("hasParent")},
		rdf.Triple{Subject: rdf.BlankNode("l2"), Predicate: voc(vocabulary.RDFRest), Object: voc(vocabulary.RDFNil)},
	)

	result := translate.TranslateDocument(store)

	require.Len(t, result.Axioms, 1)
	chain, ok := result.Axioms[0].(*model.SubPropertyChainOf)
	require.True(t, ok)
	assert.Len(t, chain.Chain, 2)
	assert.Empty(t, result.Residue)
}

func TestSameAndDifferentIndividuals(t *testing.T) {
	store := newStore(
		rdf.Triple{Subject: iri("car1"), Predicate: voc(vocabulary.OWLSameAs), Object: iri("auto1")},
		rdf.Triple{Subject: iri("car1"), Predicate: voc(vocabulary.OWLDifferentFrom), Object: iri("bike1")},
	)

	result := translate.TranslateDocument(store)

	require.Len(t, result.Axioms, 2)
	assert.Empty(t, result.Residue)
}
