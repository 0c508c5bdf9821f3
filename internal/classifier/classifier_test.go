package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/models"
)

func trainedClassifier(t *testing.T) *ModelClassifier {
	t.Helper()
	m, err := Train(0.3, zap.NewNop())
	require.NoError(t, err)
	return m
}

func TestTrainedClassifierIntents(t *testing.T) {
	m := trainedClassifier(t)

	tests := []struct {
		text string
		want string
	}{
		{"hola", models.IntentGreeting},
		{"buenos días", models.IntentGreeting},
		{"quiero crear una tarea", models.IntentCreateTask},
		{"crear tarea", models.IntentCreateTask},
		{"quiero crear un hábito", models.IntentCreateHabit},
		{"necesito motivación", models.IntentMotivation},
		{"ver estadísticas", models.IntentAnalyticsRequest},
		{"adiós", models.IntentGoodbye},
	}
	for _, tt := range tests {
		res := m.ClassifyIntent(tt.text)
		assert.Equal(t, tt.want, res.Label, "text %q", tt.text)
		assert.GreaterOrEqual(t, res.Confidence, 0.3, "text %q", tt.text)
	}
}

func TestTrainedClassifierConfidenceFloor(t *testing.T) {
	m := trainedClassifier(t)

	// Out-of-vocabulary input carries no evidence; the prediction falls
	// below the floor and downgrades to general.
	res := m.ClassifyIntent("zzz qqq www")
	assert.Equal(t, models.IntentGeneral, res.Label)
	assert.Less(t, res.Confidence, 0.3)
}

func TestTrainedClassifierEmptyInput(t *testing.T) {
	m := trainedClassifier(t)

	res := m.ClassifyIntent("")
	assert.Equal(t, models.IntentGeneral, res.Label)
	assert.Zero(t, res.Confidence)

	sent := m.ClassifySentiment("   ")
	assert.Equal(t, models.SentimentNeutral, sent.Label)
	assert.Zero(t, sent.Confidence)
}

func TestTrainedClassifierSentiment(t *testing.T) {
	m := trainedClassifier(t)

	assert.Equal(t, models.SentimentNegative, m.ClassifySentiment("estoy muy triste").Label)
	assert.Equal(t, models.SentimentPositive, m.ClassifySentiment("estoy feliz").Label)
}

func TestTrainedClassifierInfo(t *testing.T) {
	m := trainedClassifier(t)
	info := m.Info()
	assert.Equal(t, "trained", info["mode"])
}

func TestNewFallsBackNever(t *testing.T) {
	// Training over the bundled corpus must succeed; New returns the
	// trained bundle rather than the rule fallback.
	clf := New(0.3, zap.NewNop())
	_, ok := clf.(*ModelClassifier)
	assert.True(t, ok)
}

func TestRuleClassifierIntents(t *testing.T) {
	c := NewRuleClassifier()

	tests := []struct {
		text string
		want string
	}{
		{"hola", models.IntentGreeting},
		{"crear tarea", models.IntentCreateTask},
		{"ver mis tareas", models.IntentViewTasks},
		{"mostrar mis hábitos", models.IntentViewHabits},
		{"estoy triste", models.IntentEmotionalSupport},
		{"necesito motivación", models.IntentMotivation},
		{"ver mi progreso", models.IntentAnalyticsRequest},
		{"ayuda", models.IntentHelp},
		{"algo sin sentido", models.IntentGeneral},
		{"", models.IntentGeneral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.ClassifyIntent(tt.text).Label, "text %q", tt.text)
	}
}

func TestRuleClassifierSentiment(t *testing.T) {
	c := NewRuleClassifier()

	assert.Equal(t, models.SentimentNegative, c.ClassifySentiment("estoy muy triste y no sé qué hacer").Label)
	assert.Equal(t, models.SentimentPositive, c.ClassifySentiment("me siento genial hoy").Label)
	assert.Equal(t, models.SentimentNeutral, c.ClassifySentiment("crear tarea").Label)
}

func TestDowngrade(t *testing.T) {
	r := downgrade(Result{Label: models.IntentGreeting, Confidence: 0.2}, 0.3)
	assert.Equal(t, models.IntentGeneral, r.Label)

	r = downgrade(Result{Label: models.IntentGreeting, Confidence: 0.9}, 0.3)
	assert.Equal(t, models.IntentGreeting, r.Label)
}
