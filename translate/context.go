package translate

import (
	"log/slog"

	"github.com/c360studio/owlgraph/model"
	"github.com/c360studio/owlgraph/rdf"
)

// Context is the process-scoped state of one document translation: the triple
// store, the memoization caches keyed by blank node identity, the in-progress
// cycle guard, and the accumulating axiom and diagnostic lists. A Context is
// created per document and discarded after TranslateDocument returns; separate
// documents translate on separate Contexts with no shared state.
type Context struct {
	store  *rdf.Store
	logger *slog.Logger

	// Memoization caches. A cached value is shared, never copied, so
	// diamond-shaped references in the source graph stay shared in the
	// output model. Failures are memoized too: a defective node referenced
	// by several axioms reports its diagnostic exactly once.
	classMemo      map[rdf.BlankNode]model.ClassExpression
	classFailed    map[rdf.BlankNode]error
	individualMemo map[rdf.BlankNode]model.Individual

	// inProgress marks blank nodes whose translation has started but not
	// finished. Re-entering an in-progress node is the sole cycle signal.
	inProgress map[rdf.BlankNode]bool

	// Entity kinds collected in the declaration pass, consulted when a
	// property's direction (object vs data) or a datatype must be decided.
	declaredObjectProps     map[rdf.IRI]bool
	declaredDataProps       map[rdf.IRI]bool
	declaredAnnotationProps map[rdf.IRI]bool
	declaredDatatypes       map[rdf.IRI]bool

	axioms []model.Axiom
	diags  []Diagnostic
}

// Option configures a Context before translation runs.
type Option func(*Context)

// WithLogger sets the structured logger used for debug traces.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newContext(store *rdf.Store) *Context {
	return &Context{
		store:                   store,
		logger:                  slog.Default(),
		classMemo:               make(map[rdf.BlankNode]model.ClassExpression),
		classFailed:             make(map[rdf.BlankNode]error),
		individualMemo:          make(map[rdf.BlankNode]model.Individual),
		inProgress:              make(map[rdf.BlankNode]bool),
		declaredObjectProps:     make(map[rdf.IRI]bool),
		declaredDataProps:       make(map[rdf.IRI]bool),
		declaredAnnotationProps: make(map[rdf.IRI]bool),
		declaredDatatypes:       make(map[rdf.IRI]bool),
	}
}

// report appends a diagnostic and traces it.
func (c *Context) report(kind DiagnosticKind, node rdf.Term, predicate rdf.IRI, message string) {
	c.diags = append(c.diags, Diagnostic{Kind: kind, Node: node, Predicate: predicate, Message: message})
	attrs := []any{"kind", string(kind), "message", message}
	if node != nil {
		attrs = append(attrs, "node", node.String())
	}
	if predicate != "" {
		attrs = append(attrs, "predicate", predicate.String())
	}
	c.logger.Debug("translation diagnostic", attrs...)
}

func (c *Context) emit(axiom model.Axiom) {
	c.axioms = append(c.axioms, axiom)
}

// claim accumulates the triples a translator has read while building a
// construct. The marks are committed to the store only when the build
// succeeds, so a failed build leaves its triples in the residue.
type claim struct {
	triples []rdf.Triple
}

func (cl *claim) add(t rdf.Triple) {
	cl.triples = append(cl.triples, t)
}

func (cl *claim) commit(store *rdf.Store) {
	for _, t := range cl.triples {
		store.Consume(t)
	}
}

// singleton reads the unique object of a functional predicate and records the
// triple in the claim. Errors pass through untranslated; callers map them to
// malformed-construct diagnostics.
func (c *Context) singleton(cl *claim, subject rdf.Term, predicate rdf.IRI) (rdf.Term, error) {
	obj, err := c.store.Singleton(subject, predicate)
	if err != nil {
		return nil, err
	}
	cl.add(rdf.Triple{Subject: subject, Predicate: predicate, Object: obj})
	return obj, nil
}

// claimType records the subject's rdf:type triple for the given class in the
// claim when present. Absence is not an error; guards already establish the
// node's shape.
func (c *Context) claimType(cl *claim, subject rdf.Term, class rdf.IRI) {
	t := rdf.Triple{Subject: subject, Predicate: typeIRI, Object: class}
	if c.store.Contains(subject, typeIRI, class) {
		cl.add(t)
	}
}
