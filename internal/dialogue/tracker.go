package dialogue

import (
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/models"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/nlp"
)

// Slot is the pending slot-filling state of a conversation. The flow is an
// explicit state machine: idle → awaiting a name → idle, left either by a
// captured answer, a cancellation or an unrelated explicit command.
type Slot int

const (
	SlotNone Slot = iota
	SlotAwaitingTaskName
	SlotAwaitingHabitName
)

// Decision is the tracker's verdict on an utterance received while a slot
// is pending.
type Decision int

const (
	DecisionIdle    Decision = iota // no slot pending
	DecisionAccept                  // utterance is the slot value
	DecisionCancel                  // user backed out of the flow
	DecisionDeflect                 // utterance is an unrelated explicit command
)

// State is the derived dialogue context handed to the response composer.
// It is recomputed from history on every turn.
type State struct {
	LastIntent    string
	RecentIntents []string
	MoodTrend     string
	Pending       Slot
	TurnCount     int
}

// cancelWords abort a pending creation flow.
var cancelWords = map[string]struct{}{
	"no": {}, "cancelar": {}, "cancela": {}, "olvidar": {}, "olvídalo": {}, "olvidalo": {},
}

// commandWords mark an utterance as an explicit command rather than a slot
// answer; unrelated-intent detection takes precedence over slot capture.
var commandWords = map[string]struct{}{
	"crear": {}, "ver": {}, "mostrar": {}, "listar": {}, "ayuda": {}, "hola": {}, "gracias": {},
}

// Tracker owns one conversation's history and pending-slot state. It is not
// safe for concurrent use; the engine serializes turns per session.
type Tracker struct {
	history       *History
	pending       Slot
	intentWindow  int
	moodWindow    int
	slotMaxTokens int
}

// NewTracker builds a tracker with the given history capacity, recent-intent
// window and mood window.
func NewTracker(historySize, intentWindow, moodWindow, slotMaxTokens int) *Tracker {
	return &Tracker{
		history:       NewHistory(historySize),
		intentWindow:  intentWindow,
		moodWindow:    moodWindow,
		slotMaxTokens: slotMaxTokens,
	}
}

// Observe appends a completed turn to the history.
func (t *Tracker) Observe(turn Turn) {
	t.history.Append(turn)
}

// History exposes the rolling turn buffer.
func (t *Tracker) History() *History { return t.history }

// Pending returns the current slot state.
func (t *Tracker) Pending() Slot { return t.pending }

// BeginSlot opens a slot-filling flow; the next turn is expected to name the
// task or habit.
func (t *Tracker) BeginSlot(s Slot) { t.pending = s }

// ClearSlot returns the conversation to the idle state.
func (t *Tracker) ClearSlot() { t.pending = SlotNone }

// Decide classifies an utterance against the pending slot. Acceptance
// requires a short utterance with no cancellation and no explicit command
// keyword; anything longer or command-like falls back to normal processing.
func (t *Tracker) Decide(text string) Decision {
	if t.pending == SlotNone {
		return DecisionIdle
	}
	tokens := nlp.Tokenize(nlp.Normalize(text))
	if len(tokens) == 0 || len(tokens) > t.slotMaxTokens {
		return DecisionDeflect
	}
	for _, tok := range tokens {
		if _, ok := cancelWords[tok]; ok {
			return DecisionCancel
		}
	}
	for _, tok := range tokens {
		if _, ok := commandWords[tok]; ok {
			return DecisionDeflect
		}
	}
	return DecisionAccept
}

// State derives the dialogue context from the current history.
func (t *Tracker) State() State {
	s := State{
		MoodTrend: models.SentimentNeutral,
		Pending:   t.pending,
		TurnCount: t.history.Len(),
	}

	recent := t.history.Last(t.intentWindow)
	for _, turn := range recent {
		s.RecentIntents = append(s.RecentIntents, turn.Intent)
	}
	if n := len(recent); n > 0 {
		s.LastIntent = recent[n-1].Intent
	}

	var positive, negative int
	for _, turn := range t.history.Last(t.moodWindow) {
		switch turn.Sentiment {
		case models.SentimentPositive:
			positive++
		case models.SentimentNegative:
			negative++
		}
	}
	switch {
	case positive > negative:
		s.MoodTrend = models.SentimentPositive
	case negative > positive:
		s.MoodTrend = models.SentimentNegative
	case positive > 0 && positive == negative:
		// Ties with signal lean positive.
		s.MoodTrend = models.SentimentPositive
	}

	return s
}
