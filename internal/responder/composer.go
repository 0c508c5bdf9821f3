package responder

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/dialogue"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/entity"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/models"
)

// Composer selects and personalizes replies from the intent-keyed template
// bank. The random source is injected so tests can fix the seed; the clock is
// injected so the time-of-day greeting is testable.
type Composer struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewComposer builds a composer. A nil rng falls back to a time-seeded
// source and a nil clock falls back to time.Now.
func NewComposer(rng *rand.Rand, now func() time.Time) *Composer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Composer{rng: rng, now: now}
}

// Compose builds the reply and suggestion chips for a classified utterance.
// Unknown intents use the general bank; composition itself cannot fail.
func (c *Composer) Compose(intent string, entities entity.Set, sentiment string, state dialogue.State) (string, []string) {
	bank, ok := responseBank[intent]
	if !ok {
		bank = responseBank[models.IntentGeneral]
	}

	var b strings.Builder
	if intent == models.IntentGreeting {
		b.WriteString(c.timeGreeting())
		b.WriteString(" ")
	}
	b.WriteString(c.pick(bank))

	if name, ok := entities[entity.KindTaskName]; ok {
		fmt.Fprintf(&b, " Veo que quieres trabajar en «%s».", name)
		if p, ok := entities[entity.KindPriority]; ok {
			fmt.Fprintf(&b, " Con prioridad %s, te ayudo a estructurarla de la mejor manera.", p)
		}
	} else if name, ok := entities[entity.KindHabitName]; ok {
		fmt.Fprintf(&b, " Perfecto, vamos con el hábito «%s».", name)
		if f, ok := entities[entity.KindFrequency]; ok {
			fmt.Fprintf(&b, " Con frecuencia %s, te ayudo a establecerlo de manera sostenible.", f)
		}
	}

	switch sentiment {
	case models.SentimentNegative:
		b.WriteString(" Entiendo que te sientes un poco abrumado. Te ayudo a organizarte paso a paso. 🌱")
	case models.SentimentPositive:
		b.WriteString(" ¡Me encanta tu energía positiva! Vamos a aprovecharla al máximo. ⚡")
	}

	if state.TurnCount > 3 && intent == models.IntentGeneral {
		b.WriteString(" Veo que ya llevamos un rato conversando. ¿Hay algo específico en lo que pueda ayudarte más a fondo?")
	}

	return b.String(), c.Suggestions(intent)
}

// SlotPrompt is the question that opens a creation flow; it overrides the
// templated reply entirely.
func (c *Composer) SlotPrompt(slot dialogue.Slot) (string, []string) {
	switch slot {
	case dialogue.SlotAwaitingHabitName:
		return "¡Excelente! 🔄 ¿Qué hábito quieres crear? Por ejemplo: hacer ejercicio, leer 30 minutos, meditar.",
			suggestionBank[models.IntentCreateHabit]
	default:
		return "¡Perfecto! 📝 ¿Qué tarea quieres crear? Por ejemplo: estudiar programación, hacer ejercicio, leer un libro.",
			suggestionBank[models.IntentCreateTask]
	}
}

// TaskConfirmation is the reply for a completed task-creation flow.
func (c *Composer) TaskConfirmation(draft *models.TaskDraft) (string, []string) {
	return fmt.Sprintf("¡Excelente! He creado la tarea: %s\n\n📝 Descripción: %s\n⚡ Prioridad: %s\n📊 Estado: %s\n\n💡 Consejo: divide las tareas grandes en pasos pequeños para mayor éxito.",
			draft.Title, draft.Description, draft.Priority, draft.Status),
		[]string{"Ver todas mis tareas", "Crear nueva tarea"}
}

// HabitConfirmation is the reply for a completed habit-creation flow.
func (c *Composer) HabitConfirmation(draft *models.HabitDraft) (string, []string) {
	return fmt.Sprintf("¡Perfecto! He creado el hábito: %s\n\n📝 Descripción: %s\n🔄 Frecuencia: %s\n⏰ Momento: %s\n\n💡 Consejo: los hábitos se forman con consistencia, no con perfección.",
			draft.Name, draft.Description, draft.Frequency, draft.TimeOfDay),
		[]string{"Ver mis hábitos", "Crear nuevo hábito"}
}

// CancelMessage acknowledges an aborted creation flow.
func (c *Composer) CancelMessage() (string, []string) {
	return "Sin problema, lo dejamos para después. ¿Hay algo más en lo que pueda ayudarte?",
		suggestionBank[models.IntentGeneral]
}

// Fallback is the static reply used when everything else is unavailable.
func (c *Composer) Fallback() (string, []string) {
	return fallbackResponse, fallbackSuggestions
}

// Suggestions returns the quick-reply chips for an intent.
func (c *Composer) Suggestions(intent string) []string {
	if s, ok := suggestionBank[intent]; ok {
		return s
	}
	return suggestionBank[models.IntentGeneral]
}

func (c *Composer) pick(candidates []string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return candidates[c.rng.Intn(len(candidates))]
}

// timeGreeting bands the hour of day into a Spanish salutation.
func (c *Composer) timeGreeting() string {
	switch hour := c.now().Hour(); {
	case hour >= 5 && hour < 12:
		return "¡Buenos días! 🌅"
	case hour >= 12 && hour < 17:
		return "¡Buenas tardes! ☀️"
	case hour >= 17 && hour < 21:
		return "¡Buenas tardes! 🌆"
	default:
		return "¡Buenas noches! 🌙"
	}
}
