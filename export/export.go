// Package export serializes translation results. The primary format is the
// OWL functional-style syntax; residue triples can additionally be written
// back out as N-Triples for inspection or re-ingestion.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/c360studio/owlgraph/rdf"
	"github.com/c360studio/owlgraph/translate"
	"github.com/c360studio/owlgraph/vocabulary"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatFunctional produces an OWL functional-style document (.ofn).
	FormatFunctional Format = "functional"

	// FormatNTriples produces N-Triples (.nt) of the residue graph.
	FormatNTriples Format = "ntriples"
)

// Writer renders translation results to an output stream.
type Writer struct {
	ontologyIRI string
	comments    bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithOntologyIRI sets the IRI written in the Ontology header.
func WithOntologyIRI(iri string) Option {
	return func(w *Writer) { w.ontologyIRI = iri }
}

// WithDiagnosticComments includes each diagnostic as a comment line above the
// axiom block.
func WithDiagnosticComments() Option {
	return func(w *Writer) { w.comments = true }
}

// NewWriter creates a writer with the given options.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write serializes the result in the requested format.
func (w *Writer) Write(out io.Writer, result *translate.Result, format Format) error {
	switch format {
	case FormatFunctional:
		return w.writeFunctional(out, result)
	case FormatNTriples:
		return w.writeNTriples(out, result.Residue)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeFunctional renders the axiom set as a functional-style document:
// prefix declarations, an Ontology header, then one axiom per line.
func (w *Writer) writeFunctional(out io.Writer, result *translate.Result) error {
	var sb strings.Builder

	registry := vocabulary.Prefixes()
	for _, label := range vocabulary.SortedPrefixLabels() {
		sb.WriteString(fmt.Sprintf("Prefix(%s:=<%s>)\n", label, registry[label]))
	}
	sb.WriteString("\n")

	if w.ontologyIRI != "" {
		sb.WriteString(fmt.Sprintf("Ontology(<%s>\n", w.ontologyIRI))
	} else {
		sb.WriteString("Ontology(\n")
	}

	if w.comments {
		for _, d := range result.Diagnostics {
			sb.WriteString("# ")
			sb.WriteString(string(d.Kind))
			if d.Node != nil {
				sb.WriteString(" ")
				sb.WriteString(d.Node.String())
			}
			sb.WriteString(": ")
			sb.WriteString(d.Message)
			sb.WriteString("\n")
		}
	}

	for _, axiom := range result.Axioms {
		sb.WriteString(axiom.String())
		sb.WriteString("\n")
	}
	sb.WriteString(")\n")

	_, err := io.WriteString(out, sb.String())
	return err
}

// writeNTriples renders triples one statement per line.
func (w *Writer) writeNTriples(out io.Writer, triples []rdf.Triple) error {
	var sb strings.Builder
	for _, t := range triples {
		sb.WriteString(formatTerm(t.Subject))
		sb.WriteString(" ")
		sb.WriteString(formatTerm(t.Predicate))
		sb.WriteString(" ")
		sb.WriteString(formatTerm(t.Object))
		sb.WriteString(" .\n")
	}
	_, err := io.WriteString(out, sb.String())
	return err
}

// formatTerm renders a term in N-Triples form, with full IRIs rather than the
// CURIE display form.
func formatTerm(term rdf.Term) string {
	switch v := term.(type) {
	case rdf.IRI:
		return fmt.Sprintf("<%s>", string(v))
	case rdf.BlankNode:
		return "_:" + string(v)
	case rdf.Literal:
		quoted := fmt.Sprintf("\"%s\"", escapeString(v.Value))
		switch {
		case v.Lang != "":
			return quoted + "@" + v.Lang
		case v.Datatype != "":
			return fmt.Sprintf("%s^^<%s>", quoted, string(v.Datatype))
		default:
			return quoted
		}
	default:
		return term.Key()
	}
}

// escapeString escapes special characters for N-Triples literals.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
