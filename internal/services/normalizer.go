package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
)

// nounTags are the Penn Treebank tags for common and proper nouns.
var nounTags = map[string]struct{}{
	"NN":   {},
	"NNS":  {},
	"NNP":  {},
	"NNPS": {},
}

// TextAnalysis is the normalized view of one text.
type TextAnalysis struct {
	// Tokens are lowercase lemmas with stopwords and punctuation removed.
	Tokens []string
	// Nouns are the lowercased surface forms of tokens tagged as nouns.
	Nouns []string
}

type Normalizer interface {
	Analyze(text string) (*TextAnalysis, error)
}

type normalizer struct {
	lemmatizer *golem.Lemmatizer
	model      *prose.Model
}

// NewNormalizer loads the English lemma dictionary and the POS tagger
// weights. The returned Normalizer is read-only and safe to share between
// requests.
func NewNormalizer() (Normalizer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load lemmatizer: %w", err)
	}

	// prose decodes its tagger on every document unless handed a model
	warmup, err := prose.NewDocument(
		"load tagger",
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load tagger model: %w", err)
	}

	return &normalizer{
		lemmatizer: lemmatizer,
		model:      warmup.Model,
	}, nil
}

// Analyze implements Normalizer.
func (n *normalizer) Analyze(text string) (*TextAnalysis, error) {
	analysis := &TextAnalysis{
		Tokens: []string{},
		Nouns:  []string{},
	}
	if strings.TrimSpace(text) == "" {
		return analysis, nil
	}

	doc, err := prose.NewDocument(
		text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
		prose.UsingModel(n.model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize text: %w", err)
	}

	for _, tok := range doc.Tokens() {
		lower := strings.ToLower(tok.Text)

		if _, ok := nounTags[tok.Tag]; ok {
			analysis.Nouns = append(analysis.Nouns, lower)
		}

		if isPunctuation(lower) || IsStopWord(lower) {
			continue
		}

		lemma := strings.ToLower(n.lemmatizer.Lemma(lower))
		if lemma == "" {
			lemma = lower
		}
		// Lemmas are emitted as space separated words downstream
		analysis.Tokens = append(analysis.Tokens, strings.Fields(lemma)...)
	}

	return analysis, nil
}

// isPunctuation treats any token without a letter or digit as punctuation.
func isPunctuation(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
