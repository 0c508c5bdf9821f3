package assistant

import (
	"strings"
	"time"

	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/classifier"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/dialogue"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/entity"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/models"
)

// completeCreation closes a slot-filling flow: the utterance is the awaited
// name, so the creation intent is packaged for the persistence collaborator
// and the flow returns to idle. The engine performs no I/O here; ownership
// of the draft transfers to the caller through the response.
func (e *Engine) completeCreation(s *session, text string, entities entity.Set, sentiment classifier.Result) *models.ChatResponse {
	name := strings.TrimSpace(text)
	slot := s.tracker.Pending()
	s.tracker.ClearSlot()

	if slot == dialogue.SlotAwaitingHabitName {
		draft := buildHabitDraft(name, entities)
		reply, suggestions := e.composer.HabitConfirmation(draft)
		resp := &models.ChatResponse{
			Response:            reply,
			Intent:              models.IntentHabitCreationComplete,
			Confidence:          0.95,
			Sentiment:           sentiment.Label,
			SentimentConfidence: sentiment.Confidence,
			Suggestions:         suggestions,
			Entities:            map[string]string{entity.KindHabitName: name, entity.KindFrequency: draft.Frequency},
			Timestamp:           time.Now().UTC().Format(time.RFC3339),
			HabitCreated:        draft,
		}
		return resp
	}

	draft := buildTaskDraft(name, entities)
	reply, suggestions := e.composer.TaskConfirmation(draft)
	return &models.ChatResponse{
		Response:            reply,
		Intent:              models.IntentTaskCreationComplete,
		Confidence:          0.95,
		Sentiment:           sentiment.Label,
		SentimentConfidence: sentiment.Confidence,
		Suggestions:         suggestions,
		Entities:            map[string]string{entity.KindTaskName: name, entity.KindPriority: draft.Priority},
		Timestamp:           time.Now().UTC().Format(time.RFC3339),
		TaskCreated:         draft,
	}
}

// buildTaskDraft fills task defaults, honoring extracted attributes when the
// name turn carried them.
func buildTaskDraft(name string, entities entity.Set) *models.TaskDraft {
	return &models.TaskDraft{
		Title:       name,
		Description: name,
		Priority:    canonicalPriority(entities[entity.KindPriority]),
		Status:      models.StatusPending,
		DueDate:     entities[entity.KindDate],
	}
}

// buildHabitDraft fills habit defaults.
func buildHabitDraft(name string, entities entity.Set) *models.HabitDraft {
	return &models.HabitDraft{
		Name:        name,
		Description: name,
		Frequency:   canonicalFrequency(entities[entity.KindFrequency]),
		TimeOfDay:   models.TimeOfDayFlexible,
	}
}

// canonicalPriority maps the extractor's Spanish priority words onto the
// stored values; anything unrecognized defaults to medium.
func canonicalPriority(extracted string) string {
	switch extracted {
	case "alta":
		return models.PriorityHigh
	case "baja":
		return models.PriorityLow
	case "media":
		return models.PriorityMedium
	default:
		return models.PriorityMedium
	}
}

// canonicalFrequency maps extracted frequency words; the default is daily.
func canonicalFrequency(extracted string) string {
	switch extracted {
	case "semanal":
		return models.FrequencyWeekly
	case "mensual":
		return models.FrequencyMonthly
	case "diario":
		return models.FrequencyDaily
	default:
		return models.FrequencyDaily
	}
}
