package translate

import (
	"fmt"

	"github.com/c360studio/owlgraph/model"
	"github.com/c360studio/owlgraph/rdf"
	"github.com/c360studio/owlgraph/vocabulary"
)

// Result is the outcome of translating one document: the best-effort axiom
// set, the residue of triples no translator claimed, and the diagnostics
// collected along the way. Whether a non-empty residue is a warning or a hard
// failure is the caller's policy, not the engine's.
type Result struct {
	Axioms      []model.Axiom
	Residue     []rdf.Triple
	Diagnostics []Diagnostic
}

// TranslateDocument runs the full translation over a finished triple set.
//
// The scan is driven by axiom-shaped triples in fixed passes: declarations,
// class axioms, property axioms, then assertions. Within each pass the store's
// content-sorted iteration order makes the output independent of the order
// triples were asserted. Failures are local; sibling axioms still translate.
func TranslateDocument(store *rdf.Store, opts ...Option) *Result {
	c := newContext(store)
	for _, opt := range opts {
		opt(c)
	}

	c.scanDeclarations()
	c.translateClassAxioms()
	c.translatePropertyAxioms()
	c.translateAssertions()
	c.translateDanglingExpressions()

	residue := store.Unconsumed()
	if len(residue) > 0 {
		c.report(DiagResidueTriples, nil, "",
			fmt.Sprintf("%d triples left unconsumed after translation", len(residue)))
	}

	c.logger.Debug("document translated",
		"axioms", len(c.axioms),
		"residue", len(residue),
		"diagnostics", len(c.diags))

	return &Result{Axioms: c.axioms, Residue: residue, Diagnostics: c.diags}
}

// declarationKinds maps a declaring rdf:type object to the entity kind it
// declares.
var declarationKinds = map[rdf.IRI]model.EntityKind{
	rdf.IRI(vocabulary.OWLClass):              model.KindClass,
	rdf.IRI(vocabulary.OWLObjectProperty):     model.KindObjectProperty,
	rdf.IRI(vocabulary.OWLDatatypeProperty):   model.KindDataProperty,
	rdf.IRI(vocabulary.OWLAnnotationProperty): model.KindAnnotationProperty,
	rdf.IRI(vocabulary.OWLNamedIndividual):    model.KindNamedIndividual,
}

// scanDeclarations collects typed named entities, emits Declaration axioms,
// and records the property directions later passes depend on. Blank subjects
// are expression roots and belong to the dispatcher, not this pass.
func (c *Context) scanDeclarations() {
	for _, t := range c.store.Match(nil, typeIRI, nil) {
		subject, ok := t.Subject.(rdf.IRI)
		if !ok {
			continue
		}
		object, ok := t.Object.(rdf.IRI)
		if !ok {
			continue
		}

		if kind, declares := declarationKinds[object]; declares {
			switch kind {
			case model.KindObjectProperty:
				c.declaredObjectProps[subject] = true
			case model.KindDataProperty:
				c.declaredDataProps[subject] = true
			case model.KindAnnotationProperty:
				c.declaredAnnotationProps[subject] = true
			}
			c.emit(&model.Declaration{Kind: kind, Entity: subject})
			c.store.Consume(t)
			continue
		}

		switch string(object) {
		case vocabulary.RDFSDatatype:
			c.declaredDatatypes[subject] = true
			c.store.Consume(t)
		case vocabulary.OWLOntology:
			// Ontology header; nothing to declare.
			c.store.Consume(t)
		}
	}
}

func (c *Context) translateClassAxioms() {
	for _, t := range c.store.Match(nil, rdf.IRI(vocabulary.RDFSSubClassOf), nil) {
		sub, err := c.ClassExpression(t.Subject)
		if err != nil {
			continue
		}
		super, err := c.ClassExpression(t.Object)
		if err != nil {
			continue
		}
		c.store.Consume(t)
		c.emit(&model.SubClassOf{Sub: sub, Super: super})
	}

	for _, t := range c.store.Match(nil, rdf.IRI(vocabulary.OWLEquivalentClass), nil) {
		first, err := c.ClassExpression(t.Subject)
		if err != nil {
			continue
		}
		second, err := c.ClassExpression(t.Object)
		if err != nil {
			continue
		}
		c.store.Consume(t)
		c.emit(&model.EquivalentClasses{Operands: []model.ClassExpression{first, second}})
	}

	for _, t := range c.store.Match(nil, rdf.IRI(vocabulary.OWLDisjointWith), nil) {
		first, err := c.ClassExpression(t.Subject)
		if err != nil {
			continue
		}
		second, err := c.ClassExpression(t.Object)
		if err != nil {
			continue
		}
		c.store.Consume(t)
		c.emit(&model.DisjointClasses{Operands: []model.ClassExpression{first, second}})
	}

	// Reified n-ary form: _:x rdf:type owl:AllDisjointClasses ; owl:members (...).
	for _, t := range c.store.Match(nil, typeIRI, rdf.IRI(vocabulary.OWLAllDisjointClasses)) {
		cl := &claim{}
		cl.add(t)
		listNode, err := c.singleton(cl, t.Subject, rdf.IRI(vocabulary.OWLMembers))
		if err != nil {
			c.report(DiagMalformedConstruct, t.Subject, rdf.IRI(vocabulary.OWLMembers), err.Error())
			continue
		}
		items, err := c.list(listNode, cl)
		if err != nil {
			continue
		}
		operands := make([]model.ClassExpression, 0, len(items))
		for _, item := range items {
			op, opErr := c.ClassExpression(item)
			if opErr != nil {
				continue
			}
			operands = append(operands, op)
		}
		if len(operands) < 2 {
			c.report(DiagUnsupportedConstruct, t.Subject, rdf.IRI(vocabulary.OWLMembers),
				"disjointness needs at least two resolvable operands")
			continue
		}
		cl.commit(c.store)
		c.emit(&model.DisjointClasses{Operands: operands})
	}
}

// characteristicKinds lists the characteristic classes in the fixed order
// their axioms are emitted, keeping output independent of input order.
var characteristicKinds = []struct {
	class rdf.IRI
	kind  model.CharacteristicKind
}{
	{rdf.IRI(vocabulary.OWLFunctionalProperty), model.CharacteristicFunctional},
	{rdf.IRI(vocabulary.OWLInverseFunctionalProperty), model.CharacteristicInverseFunctional},
	{rdf.IRI(vocabulary.OWLTransitiveProperty), model.CharacteristicTransitive},
	{rdf.IRI(vocabulary.OWLSymmetricProperty), model.CharacteristicSymmetric},
}

func (c *Context) translatePropertyAxioms() {
	for _, entry := range characteristicKinds {
		class, kind := entry.class, entry.kind
		for _, t := range c.store.Match(nil, typeIRI, class) {
			cl := &claim{}
			cl.add(t)
			prop, err := c.PropertyExpression(t.Subject, cl)
			if err != nil {
				continue
			}
			cl.commit(c.store)
			c.emit(&model.ObjectPropertyCharacteristic{Kind: kind, Property: prop})
		}
	}

	for _, t := range c.store.Match(nil, rdf.IRI(vocabulary.RDFSSubPropertyOf), nil) {
		cl := &claim{}
		cl.add(t)
		sub, err := c.PropertyExpression(t.Subject, cl)
		if err != nil {
			continue
		}
		super, err := c.PropertyExpression(t.Object, cl)
		if err != nil {
			continue
		}
		cl.commit(c.store)
		c.emit(&model.SubObjectPropertyOf{Sub: sub, Super: super})
	}

	// owl:inverseOf between two named properties is an axiom; on a blank
	// subject it forms an inverse expression and is consumed by whichever
	// construct uses it.
	for _, t := range c.store.Match(nil, rdf.IRI(vocabulary.OWLInverseOf), nil) {
		subject, ok := t.Subject.(rdf.IRI)
		if !ok {
			continue
		}
		cl := &claim{}
		cl.add(t)
		second, err := c.PropertyExpression(t.Object, cl)
		if err != nil {
			continue
		}
		cl.commit(c.store)
		c.emit(&model.InverseObjectProperties{
			First:  model.ObjectProperty{IRI: subject},
			Second: second,
		})
	}

	for _, t := range c.store.Match(nil, rdf.IRI(vocabulary.OWLEquivalentProperty), nil) {
		cl := &claim{}
		cl.add(t)
		first, err := c.PropertyExpression(t.Subject, cl)
		if err != nil {
			continue
		}
		second, err := c.PropertyExpression(t.Object, cl)
		if err != nil {
			continue
		}
		cl.commit(c.store)
		c.emit(&model.EquivalentObjectProperties{Operands: []model.PropertyExpression{first, second}})
	}

	for _, t := range c.store.Match(nil, rdf.IRI(vocabulary.OWLPropertyChainAxiom), nil) {
		cl := &claim{}
		cl.add(t)
		super, err := c.PropertyExpression(t.Subject, cl)
		if err != nil {
			continue
		}
		items, err := c.list(t.Object, cl)
		if err != nil {
			continue
		}
		chain := make([]model.PropertyExpression, 0, len(items))
		ok := true
		for _, item := range items {
			link, linkErr := c.PropertyExpression(item, cl)
			if linkErr != nil {
				ok = false
				break
			}
			chain = append(chain, link)
		}
		if !ok || len(chain) == 0 {
			continue
		}
		cl.commit(c.store)
		c.emit(&model.SubPropertyChainOf{Chain: chain, Super: super})
	}

	for _, t := range c.store.Match(nil, rdf.IRI(vocabulary.RDFSDomain), nil) {
		cl := &claim{}
		cl.add(t)
		prop, err := c.PropertyExpression(t.Subject, cl)
		if err != nil {
			continue
		}
		domain, err := c.ClassExpression(t.Object)
		if err != nil {
			continue
		}
		cl.commit(c.store)
		if _, isData := prop.(model.DataProperty); isData {
			c.emit(&model.DataPropertyDomain{Property: prop, Domain: domain})
		} else {
			c.emit(&model.ObjectPropertyDomain{Property: prop, Domain: domain})
		}
	}

	for _, t := range c.store.Match(nil, rdf.IRI(vocabulary.RDFSRange), nil) {
		cl := &claim{}
		cl.add(t)
		prop, err := c.PropertyExpression(t.Subject, cl)
		if err != nil {
			continue
		}
		if _, isData := prop.(model.DataProperty); isData {
			datatype, ok := t.Object.(rdf.IRI)
			if !ok || !c.isDatatype(datatype) {
				c.report(DiagMalformedConstruct, t.Subject, rdf.IRI(vocabulary.RDFSRange),
					"data property range is not a recognized datatype")
				continue
			}
			cl.commit(c.store)
			c.emit(&model.DataPropertyRange{Property: prop, Range: datatype})
			continue
		}
		rng, err := c.ClassExpression(t.Object)
		if err != nil {
			continue
		}
		cl.commit(c.store)
		c.emit(&model.ObjectPropertyRange{Property: prop, Range: rng})
	}
}

func (c *Context) translateAssertions() {
	// Class assertions: remaining rdf:type triples whose object is a user
	// class or an anonymous class expression.
	for _, t := range c.store.Match(nil, typeIRI, nil) {
		if c.store.Consumed(t) {
			continue
		}
		if obj, ok := t.Object.(rdf.IRI); ok && isBuiltinNamespace(obj) {
			continue
		}
		ind, err := c.Individual(t.Subject)
		if err != nil {
			continue
		}
		class, err := c.ClassExpression(t.Object)
		if err != nil {
			continue
		}
		c.store.Consume(t)
		c.emit(&model.ClassAssertion{Class: class, Individual: ind})
	}

	for _, t := range c.store.Match(nil, rdf.IRI(vocabulary.OWLSameAs), nil) {
		first, err := c.Individual(t.Subject)
		if err != nil {
			continue
		}
		second, err := c.Individual(t.Object)
		if err != nil {
			continue
		}
		c.store.Consume(t)
		c.emit(&model.SameIndividual{Individuals: []model.Individual{first, second}})
	}

	for _, t := range c.store.Match(nil, rdf.IRI(vocabulary.OWLDifferentFrom), nil) {
		first, err := c.Individual(t.Subject)
		if err != nil {
			continue
		}
		second, err := c.Individual(t.Object)
		if err != nil {
			continue
		}
		c.store.Consume(t)
		c.emit(&model.DifferentIndividuals{Individuals: []model.Individual{first, second}})
	}

	// Property and annotation assertions over declared predicates. Triples
	// with undeclared predicates are left for the residue rather than
	// guessed at.
	for _, t := range c.store.All() {
		if c.store.Consumed(t) {
			continue
		}
		switch {
		case c.isAnnotationPredicate(t.Predicate):
			c.store.Consume(t)
			c.emit(&model.AnnotationAssertion{Property: t.Predicate, Subject: t.Subject, Value: t.Object})

		case c.declaredDataProps[t.Predicate]:
			lit, ok := t.Object.(rdf.Literal)
			if !ok {
				c.report(DiagMalformedConstruct, t.Subject, t.Predicate,
					"data property assertion value is not a literal")
				continue
			}
			subject, err := c.Individual(t.Subject)
			if err != nil {
				continue
			}
			c.store.Consume(t)
			c.emit(&model.DataPropertyAssertion{
				Property: model.DataProperty{IRI: t.Predicate},
				Subject:  subject,
				Value:    lit,
			})

		case c.declaredObjectProps[t.Predicate]:
			subject, err := c.Individual(t.Subject)
			if err != nil {
				continue
			}
			object, err := c.Individual(t.Object)
			if err != nil {
				continue
			}
			c.store.Consume(t)
			c.emit(&model.ObjectPropertyAssertion{
				Property: model.ObjectProperty{IRI: t.Predicate},
				Subject:  subject,
				Object:   object,
			})
		}
	}
}

// translateDanglingExpressions visits anonymous expression roots no axiom
// referenced, so malformed or cyclic orphans still surface as diagnostics
// instead of disappearing into unexplained residue.
func (c *Context) translateDanglingExpressions() {
	for _, subject := range c.store.Subjects() {
		bn, ok := subject.(rdf.BlankNode)
		if !ok {
			continue
		}
		if _, done := c.classMemo[bn]; done {
			continue
		}
		if _, failed := c.classFailed[bn]; failed {
			continue
		}
		for _, tr := range classTranslators {
			if tr.guard(c, bn) {
				_, _ = c.ClassExpression(bn)
				break
			}
		}
	}
}

func (c *Context) isAnnotationPredicate(predicate rdf.IRI) bool {
	if c.declaredAnnotationProps[predicate] {
		return true
	}
	s := string(predicate)
	return s == vocabulary.RDFSLabel || s == vocabulary.RDFSComment
}
