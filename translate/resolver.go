package translate

import (
	"fmt"
	"strings"

	"github.com/c360studio/owlgraph/model"
	"github.com/c360studio/owlgraph/rdf"
	"github.com/c360studio/owlgraph/vocabulary"
)

var typeIRI = rdf.IRI(vocabulary.RDFType)

// ClassExpression resolves a graph node to a class expression.
//
// Named nodes are terminal: they resolve directly to NamedClass without
// recursion. Anonymous nodes go through the memo cache and, on a miss, the
// translator dispatcher; the result is cached before returning so a second
// reference to the same node reuses the object rather than a copy. A node
// re-entered while still in progress is the cycle signal.
func (c *Context) ClassExpression(node rdf.Term) (model.ClassExpression, error) {
	switch n := node.(type) {
	case rdf.IRI:
		return model.NamedClass{IRI: n}, nil

	case rdf.Literal:
		c.report(DiagUnsupportedConstruct, n, "", "literal cannot be a class expression")
		return nil, errUnsupported

	case rdf.BlankNode:
		if expr, ok := c.classMemo[n]; ok {
			if c.inProgress[n] {
				// The cache and the in-progress marker disagreeing is an
				// engine invariant violation, not bad input.
				panic("translate: memo cache and in-progress marker disagree for " + n.String())
			}
			return expr, nil
		}
		// A node that already failed once fails again silently; its
		// diagnostic was reported on the first attempt.
		if failErr, ok := c.classFailed[n]; ok {
			return nil, failErr
		}
		if c.inProgress[n] {
			c.report(DiagCyclicConstruct, n, "", "node references itself while being translated")
			return nil, errCyclic
		}

		c.inProgress[n] = true
		expr, err := c.dispatchClass(n)
		delete(c.inProgress, n)
		if err != nil {
			c.classFailed[n] = err
			return nil, err
		}
		c.classMemo[n] = expr
		return expr, nil

	default:
		c.report(DiagUnsupportedConstruct, node, "", fmt.Sprintf("unrecognized term %T", node))
		return nil, errUnsupported
	}
}

// PropertyExpression resolves a property node: a named object or data
// property, or an anonymous owl:inverseOf expression. The inverseOf triple is
// recorded in the caller's claim.
func (c *Context) PropertyExpression(node rdf.Term, cl *claim) (model.PropertyExpression, error) {
	switch n := node.(type) {
	case rdf.IRI:
		if c.declaredDataProps[n] {
			return model.DataProperty{IRI: n}, nil
		}
		return model.ObjectProperty{IRI: n}, nil

	case rdf.BlankNode:
		inner, err := c.singleton(cl, n, rdf.IRI(vocabulary.OWLInverseOf))
		if err != nil {
			c.report(DiagMalformedConstruct, n, rdf.IRI(vocabulary.OWLInverseOf),
				"anonymous property node without owl:inverseOf")
			return nil, errMalformed
		}
		innerIRI, ok := inner.(rdf.IRI)
		if !ok {
			c.report(DiagUnsupportedConstruct, n, rdf.IRI(vocabulary.OWLInverseOf),
				"inverse of a non-named property")
			return nil, errUnsupported
		}
		return &model.InverseObjectProperty{Property: model.ObjectProperty{IRI: innerIRI}}, nil

	default:
		c.report(DiagUnsupportedConstruct, node, "", "literal cannot be a property expression")
		return nil, errUnsupported
	}
}

// Individual resolves a node to an individual. Anonymous individuals are
// memoized so repeated references share one value.
func (c *Context) Individual(node rdf.Term) (model.Individual, error) {
	switch n := node.(type) {
	case rdf.IRI:
		return model.NamedIndividual{IRI: n}, nil

	case rdf.BlankNode:
		if ind, ok := c.individualMemo[n]; ok {
			return ind, nil
		}
		ind := &model.AnonymousIndividual{ID: n}
		c.individualMemo[n] = ind
		return ind, nil

	default:
		c.report(DiagUnsupportedConstruct, node, "", "literal cannot be an individual")
		return nil, errUnsupported
	}
}

// list walks an RDF list spine (rdf:first / rdf:rest), recording the spine
// triples in the claim and returning the item terms in order. A spine that
// loops back on itself is reported as cyclic.
func (c *Context) list(node rdf.Term, cl *claim) ([]rdf.Term, error) {
	var items []rdf.Term
	seen := make(map[string]bool)
	current := node

	for {
		if iri, ok := current.(rdf.IRI); ok && string(iri) == vocabulary.RDFNil {
			return items, nil
		}
		bn, ok := current.(rdf.BlankNode)
		if !ok {
			c.report(DiagMalformedConstruct, current, rdf.IRI(vocabulary.RDFRest),
				"list node is neither a blank node nor rdf:nil")
			return nil, errMalformed
		}
		if seen[bn.Key()] {
			c.report(DiagCyclicConstruct, bn, rdf.IRI(vocabulary.RDFRest), "list spine loops back on itself")
			return nil, errCyclic
		}
		seen[bn.Key()] = true

		c.claimType(cl, bn, rdf.IRI(vocabulary.RDFList))
		first, err := c.singleton(cl, bn, rdf.IRI(vocabulary.RDFFirst))
		if err != nil {
			c.report(DiagMalformedConstruct, bn, rdf.IRI(vocabulary.RDFFirst), err.Error())
			return nil, errMalformed
		}
		rest, err := c.singleton(cl, bn, rdf.IRI(vocabulary.RDFRest))
		if err != nil {
			c.report(DiagMalformedConstruct, bn, rdf.IRI(vocabulary.RDFRest), err.Error())
			return nil, errMalformed
		}

		items = append(items, first)
		current = rest
	}
}

// isDatatype reports whether an IRI denotes a datatype the engine models:
// anything in the XSD namespace, the RDF literal datatypes, or a subject
// declared rdfs:Datatype in this document.
func (c *Context) isDatatype(iri rdf.IRI) bool {
	s := string(iri)
	if strings.HasPrefix(s, vocabulary.XSDNamespace) {
		return true
	}
	if s == vocabulary.RDFLangString || s == vocabulary.RDFPlainLiteral {
		return true
	}
	return c.declaredDatatypes[iri]
}

// isBuiltinNamespace reports whether an IRI belongs to one of the reserved
// vocabularies, which never name user classes or properties.
func isBuiltinNamespace(iri rdf.IRI) bool {
	s := string(iri)
	return strings.HasPrefix(s, vocabulary.RDFNamespace) ||
		strings.HasPrefix(s, vocabulary.RDFSNamespace) ||
		strings.HasPrefix(s, vocabulary.OWLNamespace) ||
		strings.HasPrefix(s, vocabulary.XSDNamespace)
}
