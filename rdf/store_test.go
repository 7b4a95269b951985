package rdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/owlgraph/rdf"
	"github.com/c360studio/owlgraph/vocabulary"
)

const ns = "http://example.org/vehicles#"

func tripleFixture() []rdf.Triple {
	return []rdf.Triple{
		{Subject: rdf.BlankNode("r"), Predicate: rdf.IRI(vocabulary.RDFType), Object: rdf.IRI(vocabulary.OWLRestriction)},
		{Subject: rdf.BlankNode("r"), Predicate: rdf.IRI(vocabulary.OWLOnProperty), Object: rdf.IRI(ns + "hasPart")},
		{Subject: rdf.BlankNode("r"), Predicate: rdf.IRI(vocabulary.OWLSomeValuesFrom), Object: rdf.IRI(ns + "Engine")},
		{Subject: rdf.IRI(ns + "Car"), Predicate: rdf.IRI(vocabulary.RDFSSubClassOf), Object: rdf.BlankNode("r")},
	}
}

func TestAssertIsIdempotent(t *testing.T) {
	store := rdf.NewStore()
	for _, tr := range tripleFixture() {
		store.Assert(tr)
		store.Assert(tr)
	}

	assert.Equal(t, 4, store.Len())
}

func TestMatchWildcards(t *testing.T) {
	store := rdf.NewStore()
	for _, tr := range tripleFixture() {
		store.Assert(tr)
	}

	bySubject := store.Match(rdf.BlankNode("r"), "", nil)
	assert.Len(t, bySubject, 3)

	byPredicate := store.Match(nil, rdf.IRI(vocabulary.OWLOnProperty), nil)
	require.Len(t, byPredicate, 1)
	assert.Equal(t, rdf.IRI(ns+"hasPart"), byPredicate[0].Object)

	byObject := store.Match(nil, "", rdf.BlankNode("r"))
	require.Len(t, byObject, 1)
	assert.Equal(t, rdf.IRI(ns+"Car"), byObject[0].Subject)

	assert.Len(t, store.Match(nil, "", nil), 4)
}

func TestMatchOrderIsInsertionIndependent(t *testing.T) {
	forward := rdf.NewStore()
	backward := rdf.NewStore()

	triples := tripleFixture()
	for _, tr := range triples {
		forward.Assert(tr)
	}
	for i := len(triples) - 1; i >= 0; i-- {
		backward.Assert(triples[i])
	}

	assert.Equal(t, forward.All(), backward.All())
	assert.Equal(t, forward.Match(rdf.BlankNode("r"), "", nil), backward.Match(rdf.BlankNode("r"), "", nil))
}

func TestSingleton(t *testing.T) {
	store := rdf.NewStore()
	for _, tr := range tripleFixture() {
		store.Assert(tr)
	}

	obj, err := store.Singleton(rdf.BlankNode("r"), rdf.IRI(vocabulary.OWLOnProperty))
	require.NoError(t, err)
	assert.Equal(t, rdf.IRI(ns+"hasPart"), obj)

	_, err = store.Singleton(rdf.BlankNode("r"), rdf.IRI(vocabulary.OWLHasValue))
	assert.ErrorIs(t, err, rdf.ErrNoMatch)

	store.Assert(rdf.Triple{Subject: rdf.BlankNode("r"), Predicate: rdf.IRI(vocabulary.OWLOnProperty), Object: rdf.IRI(ns + "hasEngine")})
	_, err = store.Singleton(rdf.BlankNode("r"), rdf.IRI(vocabulary.OWLOnProperty))
	assert.ErrorIs(t, err, rdf.ErrAmbiguous)
}

func TestConsumeAndResidue(t *testing.T) {
	store := rdf.NewStore()
	triples := tripleFixture()
	for _, tr := range triples {
		store.Assert(tr)
	}

	store.Consume(triples[0])
	store.Consume(triples[1])
	store.Consume(triples[1]) // second consume is a no-op

	assert.True(t, store.Consumed(triples[0]))
	assert.False(t, store.Consumed(triples[2]))

	residue := store.Unconsumed()
	assert.Len(t, residue, 2)
	for _, tr := range residue {
		assert.False(t, store.Consumed(tr))
	}
}

func TestLiteralTermKeys(t *testing.T) {
	plain := rdf.Literal{Value: "Engine"}
	typed := rdf.Literal{Value: "2", Datatype: rdf.IRI(vocabulary.XSDNonNegativeInteger)}
	tagged := rdf.Literal{Value: "Motor", Lang: "de"}

	assert.NotEqual(t, plain.Key(), typed.Key())
	assert.NotEqual(t, plain.Key(), tagged.Key())
	assert.False(t, rdf.IsResource(plain))
	assert.True(t, rdf.IsResource(rdf.IRI(ns+"Car")))
	assert.True(t, rdf.IsResource(rdf.BlankNode("r")))
}

func TestNewBlankNodeIsUnique(t *testing.T) {
	a := rdf.NewBlankNode()
	b := rdf.NewBlankNode()
	assert.NotEqual(t, a, b)
}
