package nlp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fitDocs = []string{
	"crear tarea nueva",
	"crear hábito nuevo",
	"ver mis tareas",
	"necesito motivación",
	"hola buenos días",
}

func TestFitVectorizerDeterministic(t *testing.T) {
	a := FitVectorizer(fitDocs, 1000)
	b := FitVectorizer(fitDocs, 1000)

	require.Equal(t, a.Size(), b.Size())
	for _, doc := range fitDocs {
		assert.Equal(t, a.Transform(doc), b.Transform(doc))
	}
}

func TestFitVectorizerRespectsMaxFeatures(t *testing.T) {
	v := FitVectorizer(fitDocs, 3)
	assert.Equal(t, 3, v.Size())
}

func TestTransformL2Normalized(t *testing.T) {
	v := FitVectorizer(fitDocs, 1000)
	vec := v.Transform("crear tarea nueva")

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestTransformUnknownTermsYieldZeroVector(t *testing.T) {
	v := FitVectorizer(fitDocs, 1000)
	for _, x := range v.Transform("zzz qqq www") {
		assert.Zero(t, x)
	}
}

func TestNgramsIncludeBigrams(t *testing.T) {
	v := FitVectorizer([]string{"crear tarea"}, 1000)
	// unigrams crear, tarea plus the bigram "crear tarea"
	assert.Equal(t, 3, v.Size())
}
