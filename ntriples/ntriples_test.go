package ntriples

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/owlgraph/rdf"
)

func TestReadBasicDocument(t *testing.T) {
	doc := `# vehicles
<http://example.org/v#Car> <http://www.w3.org/2000/01/rdf-schema#subClassOf> _:r .
_:r <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Restriction> .

<http://example.org/v#car1> <http://example.org/v#weight> "1200"^^<http://www.w3.org/2001/XMLSchema#integer> .
<http://example.org/v#car1> <http://www.w3.org/2000/01/rdf-schema#label> "première voiture"@fr .
`
	store, parseErrs, err := NewReader().Read(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, parseErrs)
	assert.Equal(t, 4, store.Len())

	matches := store.Match(rdf.IRI("http://example.org/v#car1"), rdf.IRI("http://example.org/v#weight"), nil)
	require.Len(t, matches, 1)
	lit, ok := matches[0].Object.(rdf.Literal)
	require.True(t, ok)
	assert.Equal(t, "1200", lit.Value)
	assert.Equal(t, rdf.IRI("http://www.w3.org/2001/XMLSchema#integer"), lit.Datatype)

	matches = store.Match(rdf.IRI("http://example.org/v#car1"), rdf.IRI("http://www.w3.org/2000/01/rdf-schema#label"), nil)
	require.Len(t, matches, 1)
	lit, ok = matches[0].Object.(rdf.Literal)
	require.True(t, ok)
	assert.Equal(t, "première voiture", lit.Value)
	assert.Equal(t, "fr", lit.Lang)
}

func TestReadSkipsMalformedLines(t *testing.T) {
	doc := `<http://example.org/v#a> <http://example.org/v#p> <http://example.org/v#b> .
this line is not a triple
<http://example.org/v#a> <http://example.org/v#p> "unterminated .
"literal" <http://example.org/v#p> <http://example.org/v#b> .
<http://example.org/v#a> <http://example.org/v#p> <http://example.org/v#c>
`
	store, parseErrs, err := NewReader().Read(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
	require.Len(t, parseErrs, 4)
	assert.Equal(t, 2, parseErrs[0].Line)
	assert.Contains(t, parseErrs[3].Message, "terminated")
}

func TestReadEscapes(t *testing.T) {
	doc := `<http://example.org/v#a> <http://example.org/v#note> "line one\nline \"two\"\t\\" .
`
	store, parseErrs, err := NewReader().Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Empty(t, parseErrs)

	matches := store.Match(nil, rdf.IRI("http://example.org/v#note"), nil)
	require.Len(t, matches, 1)
	lit := matches[0].Object.(rdf.Literal)
	assert.Equal(t, "line one\nline \"two\"\t\\", lit.Value)
}

func TestReadResolvesRelativeIRIs(t *testing.T) {
	doc := `<Car> <http://www.w3.org/2000/01/rdf-schema#subClassOf> <Vehicle> .
`
	reader := NewReader(WithBaseIRI("http://example.org/v#"))
	store, parseErrs, err := reader.Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Empty(t, parseErrs)
	assert.True(t, store.Contains(
		rdf.IRI("http://example.org/v#Car"),
		rdf.IRI("http://www.w3.org/2000/01/rdf-schema#subClassOf"),
		rdf.IRI("http://example.org/v#Vehicle")))
}

func TestReadDuplicateLinesCollapse(t *testing.T) {
	line := `<http://example.org/v#a> <http://example.org/v#p> <http://example.org/v#b> .` + "\n"
	store, _, err := NewReader().Read(strings.NewReader(line + line + line))
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}
