package translate

import (
	"errors"
	"fmt"

	"github.com/c360studio/owlgraph/rdf"
)

// DiagnosticKind classifies a translation failure. All kinds are local: they
// attach to the node being built and never abort sibling translation.
type DiagnosticKind string

const (
	// DiagMalformedConstruct marks a required triple that is missing or has
	// the wrong shape, such as a restriction without owl:onProperty.
	DiagMalformedConstruct DiagnosticKind = "malformed_construct"

	// DiagUnsupportedConstruct marks a recognizable but untranslatable node
	// shape. The node's triples are left unconsumed for residue reporting.
	DiagUnsupportedConstruct DiagnosticKind = "unsupported_construct"

	// DiagCyclicConstruct marks a node re-entered while its own translation
	// was still in progress.
	DiagCyclicConstruct DiagnosticKind = "cyclic_construct"

	// DiagResidueTriples summarizes triples never claimed by any translator.
	// Informational unless the caller escalates it via strictness config.
	DiagResidueTriples DiagnosticKind = "residue_triples"
)

// Diagnostic records one local translation failure keyed by the offending
// node and, where known, the predicate being processed.
type Diagnostic struct {
	Kind      DiagnosticKind
	Node      rdf.Term
	Predicate rdf.IRI
	Message   string
}

// String renders a single-line report form.
func (d Diagnostic) String() string {
	loc := ""
	if d.Node != nil {
		loc = " at " + d.Node.String()
	}
	if d.Predicate != "" {
		loc += " (" + d.Predicate.String() + ")"
	}
	return fmt.Sprintf("%s%s: %s", d.Kind, loc, d.Message)
}

// Internal error signals carried between translators. Diagnostics are
// recorded at the point of failure; these errors only stop the current
// build from producing a value.
var (
	errMalformed   = errors.New("malformed construct")
	errUnsupported = errors.New("unsupported construct")
	errCyclic      = errors.New("cyclic construct")
)
