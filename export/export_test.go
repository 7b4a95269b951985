package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/owlgraph/model"
	"github.com/c360studio/owlgraph/rdf"
	"github.com/c360studio/owlgraph/translate"
)

func sampleResult() *translate.Result {
	engine := model.NamedClass{IRI: rdf.IRI("http://example.org/v#Engine")}
	restriction := &model.ObjectSomeValuesFrom{
		Property: model.ObjectProperty{IRI: rdf.IRI("http://example.org/v#hasPart")},
		Filler:   engine,
	}
	return &translate.Result{
		Axioms: []model.Axiom{
			&model.Declaration{Kind: model.KindClass, Entity: rdf.IRI("http://example.org/v#Car")},
			&model.SubClassOf{
				Sub:   model.NamedClass{IRI: rdf.IRI("http://example.org/v#Car")},
				Super: restriction,
			},
		},
	}
}

func TestWriteFunctional(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(WithOntologyIRI("http://example.org/vehicles"))
	err := w.Write(&buf, sampleResult(), FormatFunctional)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Prefix(owl:=<http://www.w3.org/2002/07/owl#>)")
	assert.Contains(t, out, "Ontology(<http://example.org/vehicles>")
	assert.Contains(t, out, "Declaration(Class(")
	assert.Contains(t, out, "SubClassOf(")
	assert.Contains(t, out, "ObjectSomeValuesFrom(")
	assert.True(t, strings.HasSuffix(out, ")\n"))
}

func TestWriteFunctionalWithDiagnostics(t *testing.T) {
	result := sampleResult()
	result.Diagnostics = []translate.Diagnostic{
		{Kind: translate.DiagMalformedConstruct, Node: rdf.BlankNode("r"), Message: "missing quantifier"},
	}

	var buf strings.Builder
	w := NewWriter(WithDiagnosticComments())
	err := w.Write(&buf, result, FormatFunctional)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "# malformed_construct _:r: missing quantifier")
}

func TestWriteNTriplesResidue(t *testing.T) {
	result := &translate.Result{
		Residue: []rdf.Triple{
			{
				Subject:   rdf.BlankNode("r"),
				Predicate: rdf.IRI("http://example.org/v#note"),
				Object:    rdf.Literal{Value: "line one\nline \"two\"", Lang: "en"},
			},
			{
				Subject:   rdf.IRI("http://example.org/v#a"),
				Predicate: rdf.IRI("http://example.org/v#p"),
				Object:    rdf.IRI("http://example.org/v#b"),
			},
		},
	}

	var buf strings.Builder
	err := NewWriter().Write(&buf, result, FormatNTriples)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `_:r <http://example.org/v#note> "line one\nline \"two\""@en .`, lines[0])
	assert.Equal(t, `<http://example.org/v#a> <http://example.org/v#p> <http://example.org/v#b> .`, lines[1])
}

func TestWriteUnsupportedFormat(t *testing.T) {
	var buf strings.Builder
	err := NewWriter().Write(&buf, sampleResult(), Format("turtle"))
	assert.Error(t, err)
}
