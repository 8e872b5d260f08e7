package services

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// termPattern picks vocabulary terms out of normalized text: runs of two or
// more word characters, so "node.js" contributes "node" and "js".
var termPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Similarity returns the TF-IDF cosine similarity of two normalized token
// sequences as a percentage in [0, 100], rounded to two decimals.
//
// Both sequences form the corpus. IDF is smoothed, ln((1+n)/(1+df)) + 1, and
// each vector is L2 normalized. If either side has no terms the score is 0.
func Similarity(resumeTokens, jdTokens []string) float64 {
	docs := [][]string{
		vocabularyTerms(resumeTokens),
		vocabularyTerms(jdTokens),
	}
	if len(docs[0]) == 0 || len(docs[1]) == 0 {
		return 0
	}

	vocab := buildVocabulary(docs)
	vectors := tfidfVectors(docs, vocab)

	cosine := floats.Dot(vectors[0], vectors[1])
	cosine = math.Max(0, math.Min(1, cosine))

	return roundTo(cosine*100, 2)
}

func vocabularyTerms(tokens []string) []string {
	return termPattern.FindAllString(strings.Join(tokens, " "), -1)
}

// buildVocabulary maps each term of the corpus to a column, in sorted order.
func buildVocabulary(docs [][]string) map[string]int {
	seen := make(map[string]struct{})
	for _, doc := range docs {
		for _, term := range doc {
			seen[term] = struct{}{}
		}
	}

	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocab := make(map[string]int, len(terms))
	for i, term := range terms {
		vocab[term] = i
	}
	return vocab
}

func tfidfVectors(docs [][]string, vocab map[string]int) [][]float64 {
	n := float64(len(docs))

	counts := make([][]float64, len(docs))
	df := make([]float64, len(vocab))
	for i, doc := range docs {
		counts[i] = make([]float64, len(vocab))
		for _, term := range doc {
			counts[i][vocab[term]]++
		}
		for col, c := range counts[i] {
			if c > 0 {
				df[col]++
			}
		}
	}

	idf := make([]float64, len(vocab))
	for col := range idf {
		idf[col] = math.Log((1+n)/(1+df[col])) + 1
	}

	for _, vec := range counts {
		floats.Mul(vec, idf)
		if norm := floats.Norm(vec, 2); norm > 0 {
			floats.Scale(1/norm, vec)
		}
	}
	return counts
}

func roundTo(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(value*shift) / shift
}
