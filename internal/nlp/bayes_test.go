package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitNaiveBayesRejectsBadInput(t *testing.T) {
	_, err := FitNaiveBayes(nil, nil)
	assert.Error(t, err)

	_, err = FitNaiveBayes([][]float64{{1, 0}}, []string{"a", "b"})
	assert.Error(t, err)

	_, err = FitNaiveBayes([][]float64{{}}, []string{"a"})
	assert.Error(t, err)

	_, err = FitNaiveBayes([][]float64{{1, 0}, {1}}, []string{"a", "b"})
	assert.Error(t, err)
}

func TestNaiveBayesSeparatesClasses(t *testing.T) {
	docs := []string{
		"hola buenos días", "hola qué tal", "buenas tardes hola",
		"crear tarea nueva", "crear una tarea", "nueva tarea crear",
	}
	labels := []string{"greeting", "greeting", "greeting", "create", "create", "create"}

	v := FitVectorizer(docs, 1000)
	vecs := make([][]float64, len(docs))
	for i, d := range docs {
		vecs[i] = v.Transform(d)
	}

	nb, err := FitNaiveBayes(vecs, labels)
	require.NoError(t, err)
	assert.Equal(t, []string{"create", "greeting"}, nb.Classes())

	label, conf := nb.Predict(v.Transform("hola"))
	assert.Equal(t, "greeting", label)
	assert.Greater(t, conf, 0.5)

	label, conf = nb.Predict(v.Transform("crear tarea"))
	assert.Equal(t, "create", label)
	assert.Greater(t, conf, 0.5)
}

func TestNaiveBayesZeroVectorFallsToPrior(t *testing.T) {
	docs := []string{"hola", "hola qué tal", "crear tarea"}
	labels := []string{"greeting", "greeting", "create"}

	v := FitVectorizer(docs, 1000)
	vecs := make([][]float64, len(docs))
	for i, d := range docs {
		vecs[i] = v.Transform(d)
	}

	nb, err := FitNaiveBayes(vecs, labels)
	require.NoError(t, err)

	// Nothing in vocabulary: the posterior reduces to the class priors.
	label, conf := nb.Predict(v.Transform("zzz"))
	assert.Equal(t, "greeting", label)
	assert.InDelta(t, 2.0/3.0, conf, 1e-9)
}
