package translate

import (
	"strconv"

	"github.com/c360studio/owlgraph/model"
	"github.com/c360studio/owlgraph/rdf"
	"github.com/c360studio/owlgraph/vocabulary"
)

// classTranslator recognizes one construct kind. The guard tests whether the
// node carries the construct's distinguishing triples; the build constructs
// the typed expression, recording every triple it reads and committing the
// consume marks only on success.
type classTranslator struct {
	name  string
	guard func(*Context, rdf.BlankNode) bool
	build func(*Context, rdf.BlankNode) (model.ClassExpression, error)
}

// classTranslators is the dispatch table, evaluated strictly in order. The
// order is part of the engine's contract: a node carrying triples for more
// than one construct is claimed by the first matching entry and the leftover
// triples surface as residue. Restrictions come before boolean connectives
// because their guards are the most specific; the bare-restriction entry is
// last so it only catches restriction nodes missing their quantifier.
//
// The table is populated in init because the build functions recurse through
// dispatchClass back into the table.
var classTranslators []classTranslator

func init() {
	classTranslators = []classTranslator{
		{
			name:  "someValuesFrom",
			guard: hasPredicate(vocabulary.OWLSomeValuesFrom),
			build: func(c *Context, node rdf.BlankNode) (model.ClassExpression, error) {
				return c.buildQuantifiedRestriction(node, rdf.IRI(vocabulary.OWLSomeValuesFrom))
			},
		},
		{
			name:  "allValuesFrom",
			guard: hasPredicate(vocabulary.OWLAllValuesFrom),
			build: func(c *Context, node rdf.BlankNode) (model.ClassExpression, error) {
				return c.buildQuantifiedRestriction(node, rdf.IRI(vocabulary.OWLAllValuesFrom))
			},
		},
		{
			name:  "hasValue",
			guard: hasPredicate(vocabulary.OWLHasValue),
			build: (*Context).buildHasValueRestriction,
		},
		{
			name:  "cardinality",
			guard: hasPredicate(vocabulary.OWLCardinality),
			build: func(c *Context, node rdf.BlankNode) (model.ClassExpression, error) {
				return c.buildCardinalityRestriction(node, rdf.IRI(vocabulary.OWLCardinality), model.CardinalityExact)
			},
		},
		{
			name:  "minCardinality",
			guard: hasPredicate(vocabulary.OWLMinCardinality),
			build: func(c *Context, node rdf.BlankNode) (model.ClassExpression, error) {
				return c.buildCardinalityRestriction(node, rdf.IRI(vocabulary.OWLMinCardinality), model.CardinalityMin)
			},
		},
		{
			name:  "maxCardinality",
			guard: hasPredicate(vocabulary.OWLMaxCardinality),
			build: func(c *Context, node rdf.BlankNode) (model.ClassExpression, error) {
				return c.buildCardinalityRestriction(node, rdf.IRI(vocabulary.OWLMaxCardinality), model.CardinalityMax)
			},
		},
		{
			name:  "intersectionOf",
			guard: hasPredicate(vocabulary.OWLIntersectionOf),
			build: func(c *Context, node rdf.BlankNode) (model.ClassExpression, error) {
				return c.buildOperandSet(node, rdf.IRI(vocabulary.OWLIntersectionOf))
			},
		},
		{
			name:  "unionOf",
			guard: hasPredicate(vocabulary.OWLUnionOf),
			build: func(c *Context, node rdf.BlankNode) (model.ClassExpression, error) {
				return c.buildOperandSet(node, rdf.IRI(vocabulary.OWLUnionOf))
			},
		},
		{
			name:  "complementOf",
			guard: hasPredicate(vocabulary.OWLComplementOf),
			build: (*Context).buildComplement,
		},
		{
			name:  "oneOf",
			guard: hasPredicate(vocabulary.OWLOneOf),
			build: (*Context).buildOneOf,
		},
		{
			name: "bareRestriction",
			guard: func(c *Context, node rdf.BlankNode) bool {
				return c.store.Contains(node, typeIRI, rdf.IRI(vocabulary.OWLRestriction))
			},
			build: func(c *Context, node rdf.BlankNode) (model.ClassExpression, error) {
				c.report(DiagMalformedConstruct, node, "",
					"restriction node carries no quantifier, value, or cardinality predicate")
				return nil, errMalformed
			},
		},
	}
}

func hasPredicate(predicate string) func(*Context, rdf.BlankNode) bool {
	return func(c *Context, node rdf.BlankNode) bool {
		return c.store.Contains(node, rdf.IRI(predicate), nil)
	}
}

// dispatchClass selects the first translator whose guard matches. A node
// matching no guard is unsupported and stays entirely unconsumed so its
// triples can be reported verbatim in the residue.
func (c *Context) dispatchClass(node rdf.BlankNode) (model.ClassExpression, error) {
	for _, tr := range classTranslators {
		if tr.guard(c, node) {
			c.logger.Debug("dispatching class translator", "translator", tr.name, "node", node.String())
			return tr.build(c, node)
		}
	}
	c.report(DiagUnsupportedConstruct, node, "", "no translator matches node shape")
	return nil, errUnsupported
}

// buildQuantifiedRestriction is the shared algorithm for existential and
// universal restrictions: the two are structurally identical except for the
// filler predicate and the constructor invoked. The restricted property
// decides the object/data variant.
func (c *Context) buildQuantifiedRestriction(node rdf.BlankNode, fillerPredicate rdf.IRI) (model.ClassExpression, error) {
	cl := &claim{}
	c.claimType(cl, node, rdf.IRI(vocabulary.OWLRestriction))

	fillerTerm, err := c.singleton(cl, node, fillerPredicate)
	if err != nil {
		c.report(DiagMalformedConstruct, node, fillerPredicate, err.Error())
		return nil, errMalformed
	}
	prop, err := c.restrictedProperty(node, cl)
	if err != nil {
		return nil, err
	}

	var expr model.ClassExpression
	if _, isData := prop.(model.DataProperty); isData {
		datatype, ok := fillerTerm.(rdf.IRI)
		if !ok || !c.isDatatype(datatype) {
			c.report(DiagUnsupportedConstruct, node, fillerPredicate,
				"data restriction filler is not a recognized datatype")
			return nil, errUnsupported
		}
		if fillerPredicate == rdf.IRI(vocabulary.OWLSomeValuesFrom) {
			expr = &model.DataSomeValuesFrom{Property: prop, Datatype: datatype}
		} else {
			expr = &model.DataAllValuesFrom{Property: prop, Datatype: datatype}
		}
	} else {
		filler, err := c.ClassExpression(fillerTerm)
		if err != nil {
			// Partially built restriction is discarded, not half-initialized.
			return nil, err
		}
		if fillerPredicate == rdf.IRI(vocabulary.OWLSomeValuesFrom) {
			expr = &model.ObjectSomeValuesFrom{Property: prop, Filler: filler}
		} else {
			expr = &model.ObjectAllValuesFrom{Property: prop, Filler: filler}
		}
	}

	cl.commit(c.store)
	return expr, nil
}

// buildHasValueRestriction translates owl:hasValue. A literal value forms a
// data restriction, a resource value an object restriction.
func (c *Context) buildHasValueRestriction(node rdf.BlankNode) (model.ClassExpression, error) {
	cl := &claim{}
	c.claimType(cl, node, rdf.IRI(vocabulary.OWLRestriction))

	valueTerm, err := c.singleton(cl, node, rdf.IRI(vocabulary.OWLHasValue))
	if err != nil {
		c.report(DiagMalformedConstruct, node, rdf.IRI(vocabulary.OWLHasValue), err.Error())
		return nil, errMalformed
	}
	prop, err := c.restrictedProperty(node, cl)
	if err != nil {
		return nil, err
	}

	var expr model.ClassExpression
	if lit, ok := valueTerm.(rdf.Literal); ok {
		expr = &model.DataHasValue{Property: prop, Value: lit}
	} else {
		ind, err := c.Individual(valueTerm)
		if err != nil {
			return nil, err
		}
		expr = &model.ObjectHasValue{Property: prop, Individual: ind}
	}

	cl.commit(c.store)
	return expr, nil
}

// buildCardinalityRestriction translates the three cardinality forms. The
// count literal must parse as a non-negative integer; owl:onClass qualifies
// the restriction when present.
func (c *Context) buildCardinalityRestriction(node rdf.BlankNode, predicate rdf.IRI, kind model.CardinalityKind) (model.ClassExpression, error) {
	cl := &claim{}
	c.claimType(cl, node, rdf.IRI(vocabulary.OWLRestriction))

	countTerm, err := c.singleton(cl, node, predicate)
	if err != nil {
		c.report(DiagMalformedConstruct, node, predicate, err.Error())
		return nil, errMalformed
	}
	lit, ok := countTerm.(rdf.Literal)
	if !ok {
		c.report(DiagMalformedConstruct, node, predicate, "cardinality value is not a literal")
		return nil, errMalformed
	}
	n, err := strconv.Atoi(lit.Value)
	if err != nil || n < 0 {
		c.report(DiagMalformedConstruct, node, predicate,
			"cardinality value "+lit.Value+" is not a non-negative integer")
		return nil, errMalformed
	}

	prop, err := c.restrictedProperty(node, cl)
	if err != nil {
		return nil, err
	}

	var filler model.ClassExpression
	if c.store.Contains(node, rdf.IRI(vocabulary.OWLOnClass), nil) {
		fillerTerm, err := c.singleton(cl, node, rdf.IRI(vocabulary.OWLOnClass))
		if err != nil {
			c.report(DiagMalformedConstruct, node, rdf.IRI(vocabulary.OWLOnClass), err.Error())
			return nil, errMalformed
		}
		filler, err = c.ClassExpression(fillerTerm)
		if err != nil {
			return nil, err
		}
	}

	expr := &model.ObjectCardinality{Kind: kind, Property: prop, Filler: filler, N: n}
	cl.commit(c.store)
	return expr, nil
}

// buildOperandSet is the shared algorithm for owl:intersectionOf and
// owl:unionOf. Operands that fail to resolve are skipped with their own
// diagnostics; siblings still resolve.
func (c *Context) buildOperandSet(node rdf.BlankNode, predicate rdf.IRI) (model.ClassExpression, error) {
	cl := &claim{}
	c.claimType(cl, node, rdf.IRI(vocabulary.OWLClass))

	listNode, err := c.singleton(cl, node, predicate)
	if err != nil {
		c.report(DiagMalformedConstruct, node, predicate, err.Error())
		return nil, errMalformed
	}
	items, err := c.list(listNode, cl)
	if err != nil {
		return nil, err
	}

	operands := make([]model.ClassExpression, 0, len(items))
	for _, item := range items {
		op, opErr := c.ClassExpression(item)
		if opErr != nil {
			continue // local failure, already reported at depth
		}
		operands = append(operands, op)
	}
	if len(operands) == 0 {
		c.report(DiagUnsupportedConstruct, node, predicate, "no operand could be resolved")
		return nil, errUnsupported
	}

	var expr model.ClassExpression
	if predicate == rdf.IRI(vocabulary.OWLIntersectionOf) {
		expr = &model.ObjectIntersectionOf{Operands: operands}
	} else {
		expr = &model.ObjectUnionOf{Operands: operands}
	}

	cl.commit(c.store)
	return expr, nil
}

func (c *Context) buildComplement(node rdf.BlankNode) (model.ClassExpression, error) {
	cl := &claim{}
	c.claimType(cl, node, rdf.IRI(vocabulary.OWLClass))

	operandTerm, err := c.singleton(cl, node, rdf.IRI(vocabulary.OWLComplementOf))
	if err != nil {
		c.report(DiagMalformedConstruct, node, rdf.IRI(vocabulary.OWLComplementOf), err.Error())
		return nil, errMalformed
	}
	operand, err := c.ClassExpression(operandTerm)
	if err != nil {
		return nil, err
	}

	expr := &model.ObjectComplementOf{Operand: operand}
	cl.commit(c.store)
	return expr, nil
}

func (c *Context) buildOneOf(node rdf.BlankNode) (model.ClassExpression, error) {
	cl := &claim{}
	c.claimType(cl, node, rdf.IRI(vocabulary.OWLClass))

	listNode, err := c.singleton(cl, node, rdf.IRI(vocabulary.OWLOneOf))
	if err != nil {
		c.report(DiagMalformedConstruct, node, rdf.IRI(vocabulary.OWLOneOf), err.Error())
		return nil, errMalformed
	}
	items, err := c.list(listNode, cl)
	if err != nil {
		return nil, err
	}

	individuals := make([]model.Individual, 0, len(items))
	for _, item := range items {
		ind, indErr := c.Individual(item)
		if indErr != nil {
			continue
		}
		individuals = append(individuals, ind)
	}
	if len(individuals) == 0 {
		c.report(DiagUnsupportedConstruct, node, rdf.IRI(vocabulary.OWLOneOf), "no individual could be resolved")
		return nil, errUnsupported
	}

	expr := &model.ObjectOneOf{Individuals: individuals}
	cl.commit(c.store)
	return expr, nil
}

// restrictedProperty reads owl:onProperty and resolves it. A restriction
// without owl:onProperty is malformed.
func (c *Context) restrictedProperty(node rdf.BlankNode, cl *claim) (model.PropertyExpression, error) {
	propTerm, err := c.singleton(cl, node, rdf.IRI(vocabulary.OWLOnProperty))
	if err != nil {
		c.report(DiagMalformedConstruct, node, rdf.IRI(vocabulary.OWLOnProperty), err.Error())
		return nil, errMalformed
	}
	return c.PropertyExpression(propTerm, cl)
}
