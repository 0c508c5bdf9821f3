package nlp

import (
	"math"
	"sort"
)

// Vectorizer turns normalized text into fixed-size TF-IDF feature vectors
// over a vocabulary of unigrams and bigrams learned once at fit time. After
// FitVectorizer returns, the vocabulary and IDF weights never change, so
// Transform is a pure function of its input.
type Vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// FitVectorizer builds a vocabulary from the training documents, keeping the
// maxFeatures most frequent terms. IDF weights are smoothed so that terms
// seen in every document still carry a small positive weight.
func FitVectorizer(docs []string, maxFeatures int) *Vectorizer {
	total := make(map[string]int)
	docFreq := make(map[string]int)

	for _, doc := range docs {
		terms := ngrams(Tokenize(doc))
		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			total[t]++
			seen[t] = struct{}{}
		}
		for t := range seen {
			docFreq[t]++
		}
	}

	terms := make([]string, 0, len(total))
	for t := range total {
		terms = append(terms, t)
	}
	// Most frequent first; ties broken lexicographically so fitting the same
	// corpus twice yields the same vocabulary.
	sort.Slice(terms, func(i, j int) bool {
		if total[terms[i]] != total[terms[j]] {
			return total[terms[i]] > total[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if maxFeatures > 0 && len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	v := &Vectorizer{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for i, t := range terms {
		v.vocab[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}
	return v
}

// Size returns the vector dimension.
func (v *Vectorizer) Size() int { return len(v.idf) }

// Transform maps a normalized string onto the trained vocabulary. Terms
// outside the vocabulary contribute nothing. The result is L2-normalized.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, t := range ngrams(Tokenize(text)) {
		if i, ok := v.vocab[t]; ok {
			vec[i] += v.idf[i]
		}
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// ngrams emits the unigrams and adjacent-pair bigrams of a token stream.
func ngrams(tokens []string) []string {
	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}
