package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNormalizer(t *testing.T) Normalizer {
	t.Helper()
	n, err := NewNormalizer()
	require.NoError(t, err)
	return n
}

func TestNormalizer_Analyze(t *testing.T) {
	n := newTestNormalizer(t)

	analysis, err := n.Analyze("Python developer with SQL experience.")
	require.NoError(t, err)
	tokens := analysis.Tokens

	assert.Contains(t, tokens, "python")
	assert.Contains(t, tokens, "developer")
	assert.Contains(t, tokens, "sql")
	assert.Contains(t, tokens, "experience")
	assert.NotContains(t, tokens, "with", "stopwords are dropped")
	assert.NotContains(t, tokens, ".", "punctuation is dropped")
	assert.Len(t, tokens, 4)
}

func TestNormalizer_LowercasesAndLemmatizes(t *testing.T) {
	n := newTestNormalizer(t)

	analysis, err := n.Analyze("Developers building Services")
	require.NoError(t, err)
	tokens := analysis.Tokens

	assert.Contains(t, tokens, "developer")
	assert.Contains(t, tokens, "service")
	for _, tok := range tokens {
		assert.Equal(t, strings.ToLower(tok), tok)
	}
}

func TestNormalizer_Empty(t *testing.T) {
	n := newTestNormalizer(t)

	for _, text := range []string{"", "   \n\t", "the and of", "!!! , ;"} {
		analysis, err := n.Analyze(text)
		require.NoError(t, err)
		assert.Empty(t, analysis.Tokens, "text %q", text)
		assert.NotNil(t, analysis.Tokens)
	}
}

func TestNormalizer_Nouns(t *testing.T) {
	n := newTestNormalizer(t)

	analysis, err := n.Analyze("Looking for Python and Java developer")
	require.NoError(t, err)

	assert.Contains(t, analysis.Nouns, "java")
	assert.Contains(t, analysis.Nouns, "developer")
	assert.NotContains(t, analysis.Nouns, "for")
	assert.NotContains(t, analysis.Tokens, "for")
}

func TestNormalizer_ReusesTaggerModel(t *testing.T) {
	n := newTestNormalizer(t)

	impl, ok := n.(*normalizer)
	require.True(t, ok)
	require.NotNil(t, impl.model, "tagger model is loaded once at construction")

	first, err := n.Analyze("Looking for Python and Java developer")
	require.NoError(t, err)
	second, err := n.Analyze("Looking for Python and Java developer")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("The"))
	assert.True(t, IsStopWord("n't"))
	assert.False(t, IsStopWord("kubernetes"))
}

func TestIsPunctuation(t *testing.T) {
	assert.True(t, isPunctuation(","))
	assert.True(t, isPunctuation("--"))
	assert.False(t, isPunctuation("c++"))
	assert.False(t, isPunctuation("2024"))
}
