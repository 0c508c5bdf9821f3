package nlp

import (
	"errors"
	"math"
	"sort"
)

// NaiveBayes is a multinomial naive-Bayes classifier over TF-IDF features.
// It is fit once and read-only afterwards.
type NaiveBayes struct {
	classes   []string
	logPrior  []float64
	logLikeli [][]float64
}

// FitNaiveBayes trains a model on the given feature vectors and their labels.
// It returns an error when the inputs are empty or inconsistent; callers fall
// back to rule-based classification in that case.
func FitNaiveBayes(vectors [][]float64, labels []string) (*NaiveBayes, error) {
	if len(vectors) == 0 || len(vectors) != len(labels) {
		return nil, errors.New("nlp: training vectors and labels mismatch")
	}
	features := len(vectors[0])
	if features == 0 {
		return nil, errors.New("nlp: empty feature space")
	}

	classSet := make(map[string]struct{})
	for _, l := range labels {
		classSet[l] = struct{}{}
	}
	classes := make([]string, 0, len(classSet))
	for c := range classSet {
		classes = append(classes, c)
	}
	sort.Strings(classes)

	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	counts := make([]float64, len(classes))
	featureSums := make([][]float64, len(classes))
	for i := range featureSums {
		featureSums[i] = make([]float64, features)
	}

	for i, vec := range vectors {
		if len(vec) != features {
			return nil, errors.New("nlp: inconsistent vector dimensions")
		}
		c := index[labels[i]]
		counts[c]++
		for j, x := range vec {
			featureSums[c][j] += x
		}
	}

	nb := &NaiveBayes{
		classes:   classes,
		logPrior:  make([]float64, len(classes)),
		logLikeli: make([][]float64, len(classes)),
	}

	// Small additive smoothing: the corpus is short phrases, so unseen terms
	// must stay strongly penalized for posteriors to separate.
	const alpha = 0.01
	for c := range classes {
		nb.logPrior[c] = math.Log(counts[c] / float64(len(vectors)))
		var total float64
		for _, x := range featureSums[c] {
			total += x
		}
		denom := math.Log(total + alpha*float64(features))
		nb.logLikeli[c] = make([]float64, features)
		for j := range nb.logLikeli[c] {
			nb.logLikeli[c][j] = math.Log(featureSums[c][j]+alpha) - denom
		}
	}
	return nb, nil
}

// Classes returns the labels the model can predict, sorted.
func (nb *NaiveBayes) Classes() []string { return nb.classes }

// Predict returns the most probable class for the vector together with its
// posterior probability.
func (nb *NaiveBayes) Predict(vec []float64) (string, float64) {
	scores := make([]float64, len(nb.classes))
	for c := range nb.classes {
		s := nb.logPrior[c]
		lik := nb.logLikeli[c]
		for j, x := range vec {
			if x != 0 && j < len(lik) {
				s += x * lik[j]
			}
		}
		scores[c] = s
	}

	// Softmax over log scores via log-sum-exp for a calibrated confidence.
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}
	var sum float64
	for _, s := range scores {
		sum += math.Exp(s - maxScore)
	}

	best, bestProb := 0, 0.0
	for c, s := range scores {
		p := math.Exp(s-maxScore) / sum
		if p > bestProb {
			best, bestProb = c, p
		}
	}
	return nb.classes[best], bestProb
}
