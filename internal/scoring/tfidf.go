package scoring

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Vectorizer limits, mirroring the trained extraction pipeline: unigrams and
// bigrams, vocabulary capped at 100 terms.
const (
	tfidfMaxFeatures = 100
	tfidfMaxNGram    = 2
)

// tfidfSimilarity computes the TF-IDF cosine similarity between the joined
// candidate-skill text and the joined required-skill text. It captures skills
// that are related but not identical ("machine learning" vs "ml pipelines").
// Returns 0.0 whenever vectorization is impossible (either side empty, or no
// shared vocabulary source after tokenization).
func tfidfSimilarity(cvSkills, requiredSkills []string) float64 {
	if len(cvSkills) == 0 || len(requiredSkills) == 0 {
		return 0.0
	}

	docs := [2][]string{
		ngrams(tokenize(strings.Join(cvSkills, " "))),
		ngrams(tokenize(strings.Join(requiredSkills, " "))),
	}
	if len(docs[0]) == 0 || len(docs[1]) == 0 {
		return 0.0
	}

	vocab := buildVocabulary(docs)
	if len(vocab) == 0 {
		return 0.0
	}

	vecA := tfidfVector(docs[0], docs, vocab)
	vecB := tfidfVector(docs[1], docs, vocab)

	return cosine(vecA, vecB)
}

// tokenize lowercases text and splits it into alphanumeric word tokens.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ngrams expands word tokens into unigrams plus bigrams.
func ngrams(tokens []string) []string {
	terms := make([]string, 0, len(tokens)*tfidfMaxNGram)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// buildVocabulary selects up to tfidfMaxFeatures terms across both documents,
// preferring the most frequent terms and breaking ties lexically so the
// vocabulary is stable.
func buildVocabulary(docs [2][]string) map[string]int {
	counts := make(map[string]int)
	for _, doc := range docs {
		for _, term := range doc {
			counts[term]++
		}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > tfidfMaxFeatures {
		terms = terms[:tfidfMaxFeatures]
	}

	vocab := make(map[string]int, len(terms))
	for i, term := range terms {
		vocab[term] = i
	}
	return vocab
}

// tfidfVector builds the smoothed TF-IDF vector of one document:
// tf(term) * (ln((1+n)/(1+df)) + 1), L2-normalized by cosine below.
func tfidfVector(doc []string, docs [2][]string, vocab map[string]int) []float64 {
	vec := make([]float64, len(vocab))
	for _, term := range doc {
		if idx, ok := vocab[term]; ok {
			vec[idx]++
		}
	}

	n := float64(len(docs))
	for term, idx := range vocab {
		if vec[idx] == 0 {
			continue
		}
		df := 0.0
		for _, d := range docs {
			for _, t := range d {
				if t == term {
					df++
					break
				}
			}
		}
		idf := math.Log((1+n)/(1+df)) + 1
		vec[idx] *= idf
	}
	return vec
}

// cosine returns the cosine similarity of two equal-length vectors.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
