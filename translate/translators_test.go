package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The dispatch table is assembled in init. This pins down both that it is
// populated by the time any translation runs and that the evaluation order,
// which decides which construct claims an ambiguous node, stays fixed.
func TestClassTranslatorOrder(t *testing.T) {
	require.NotEmpty(t, classTranslators)

	var names []string
	for _, tr := range classTranslators {
		names = append(names, tr.name)
		require.NotNil(t, tr.guard, "translator %q has no guard", tr.name)
		require.NotNil(t, tr.build, "translator %q has no build", tr.name)
	}

	assert.Equal(t, []string{
		"someValuesFrom",
		"allValuesFrom",
		"hasValue",
		"cardinality",
		"minCardinality",
		"maxCardinality",
		"intersectionOf",
		"unionOf",
		"complementOf",
		"oneOf",
		"bareRestriction",
	}, names)
}
