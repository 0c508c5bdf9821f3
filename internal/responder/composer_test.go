package responder

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/dialogue"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/entity"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/models"
)

func fixedClock(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 29, hour, 0, 0, 0, time.UTC)
	}
}

func seededComposer(hour int) *Composer {
	return NewComposer(rand.New(rand.NewSource(1)), fixedClock(hour))
}

func TestComposeDeterministicWithSeed(t *testing.T) {
	a := seededComposer(10)
	b := seededComposer(10)

	for i := 0; i < 5; i++ {
		ra, _ := a.Compose(models.IntentMotivation, nil, models.SentimentNeutral, dialogue.State{})
		rb, _ := b.Compose(models.IntentMotivation, nil, models.SentimentNeutral, dialogue.State{})
		assert.Equal(t, ra, rb)
	}
}

func TestComposeUnknownIntentUsesGeneralBank(t *testing.T) {
	c := seededComposer(10)
	reply, suggestions := c.Compose("does_not_exist", nil, models.SentimentNeutral, dialogue.State{})
	assert.NotEmpty(t, reply)
	assert.NotEmpty(t, suggestions)
}

func TestComposeTimeGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{8, "¡Buenos días! 🌅"},
		{14, "¡Buenas tardes! ☀️"},
		{19, "¡Buenas tardes! 🌆"},
		{23, "¡Buenas noches! 🌙"},
		{3, "¡Buenas noches! 🌙"},
	}
	for _, tt := range tests {
		c := seededComposer(tt.hour)
		reply, _ := c.Compose(models.IntentGreeting, nil, models.SentimentNeutral, dialogue.State{})
		assert.Contains(t, reply, tt.want, "hour %d", tt.hour)
	}
}

func TestComposeMentionsExtractedEntities(t *testing.T) {
	c := seededComposer(10)

	reply, _ := c.Compose(models.IntentTaskManagement,
		entity.Set{entity.KindTaskName: "terminar el informe", entity.KindPriority: "alta"},
		models.SentimentNeutral, dialogue.State{})
	assert.Contains(t, reply, "«terminar el informe»")
	assert.Contains(t, reply, "prioridad alta")

	reply, _ = c.Compose(models.IntentHabitTracking,
		entity.Set{entity.KindHabitName: "meditar", entity.KindFrequency: "diario"},
		models.SentimentNeutral, dialogue.State{})
	assert.Contains(t, reply, "«meditar»")
	assert.Contains(t, reply, "frecuencia diario")
}

func TestComposeSentimentClauses(t *testing.T) {
	c := seededComposer(10)

	reply, _ := c.Compose(models.IntentGeneral, nil, models.SentimentNegative, dialogue.State{})
	assert.Contains(t, reply, "paso a paso")

	reply, _ = c.Compose(models.IntentGeneral, nil, models.SentimentPositive, dialogue.State{})
	assert.Contains(t, reply, "energía positiva")
}

func TestComposeLongConversationNudge(t *testing.T) {
	c := seededComposer(10)
	reply, _ := c.Compose(models.IntentGeneral, nil, models.SentimentNeutral, dialogue.State{TurnCount: 5})
	assert.Contains(t, reply, "más a fondo")
}

func TestSlotPrompts(t *testing.T) {
	c := seededComposer(10)

	taskPrompt, _ := c.SlotPrompt(dialogue.SlotAwaitingTaskName)
	assert.Contains(t, taskPrompt, "tarea")

	habitPrompt, _ := c.SlotPrompt(dialogue.SlotAwaitingHabitName)
	assert.Contains(t, habitPrompt, "hábito")
}

func TestConfirmations(t *testing.T) {
	c := seededComposer(10)

	taskReply, _ := c.TaskConfirmation(&models.TaskDraft{
		Title: "terminar el informe", Description: "terminar el informe",
		Priority: models.PriorityMedium, Status: models.StatusPending,
	})
	assert.Contains(t, taskReply, "terminar el informe")
	assert.Contains(t, taskReply, models.StatusPending)

	habitReply, _ := c.HabitConfirmation(&models.HabitDraft{
		Name: "meditar", Description: "meditar",
		Frequency: models.FrequencyDaily, TimeOfDay: models.TimeOfDayFlexible,
	})
	assert.Contains(t, habitReply, "meditar")
	assert.Contains(t, habitReply, models.FrequencyDaily)
}

func TestFallbackIsStatic(t *testing.T) {
	c := seededComposer(10)
	a, _ := c.Fallback()
	b, _ := c.Fallback()
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}

func TestNewComposerNilDefaults(t *testing.T) {
	c := NewComposer(nil, nil)
	reply, _ := c.Compose(models.IntentGreeting, nil, models.SentimentNeutral, dialogue.State{})
	assert.NotEmpty(t, reply)
}
