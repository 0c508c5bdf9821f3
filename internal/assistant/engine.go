package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/classifier"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/dialogue"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/entity"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/models"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/nlp"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/responder"
)

// systemPrompt frames the external language model, when one is configured,
// as the same assistant persona the template bank speaks with.
const systemPrompt = "Eres un asistente personal de productividad. Respondes en español, " +
	"con calidez y brevedad, y ayudas con tareas, hábitos, motivación y organización personal."

// ExternalResponder is the optional LLM collaborator used as an alternate
// response source for general conversation. It may be nil.
type ExternalResponder interface {
	Reply(ctx context.Context, systemPrompt, contextSummary, userMessage string) (string, error)
}

// Config bounds the engine's dialogue bookkeeping.
type Config struct {
	MinConfidence float64
	HistorySize   int
	IntentWindow  int
	MoodWindow    int
	SlotMaxTokens int
}

// DefaultConfig mirrors the tuned values the assistant ships with.
func DefaultConfig() Config {
	return Config{
		MinConfidence: 0.3,
		HistorySize:   50,
		IntentWindow:  10,
		MoodWindow:    5,
		SlotMaxTokens: 10,
	}
}

// Engine is the conversational understanding core. One engine serves many
// sessions; each session's turns are processed strictly one at a time under
// that session's lock, while distinct sessions proceed concurrently.
type Engine struct {
	cfg        Config
	classifier classifier.Classifier
	extractor  *entity.Extractor
	composer   *responder.Composer
	external   ExternalResponder
	logger     *zap.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	mu      sync.Mutex
	tracker *dialogue.Tracker
}

// New wires the engine. external may be nil; the engine then always answers
// from the local template path.
func New(cfg Config, clf classifier.Classifier, composer *responder.Composer, external ExternalResponder, logger *zap.Logger) *Engine {
	return &Engine{
		cfg:        cfg,
		classifier: clf,
		extractor:  entity.NewExtractor(),
		composer:   composer,
		external:   external,
		logger:     logger,
		sessions:   make(map[string]*session),
	}
}

// Process runs one utterance through the full pipeline and returns the
// response. It never fails: the worst case is the static fallback reply.
func (e *Engine) Process(ctx context.Context, sessionID, text string, userCtx *models.UserContext) *models.ChatResponse {
	s := e.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if nlp.Normalize(text) == "" {
		resp := e.fallbackResponse()
		e.observe(s, text, resp)
		return resp
	}

	intentRes := e.classifier.ClassifyIntent(text)
	sentimentRes := e.classifier.ClassifySentiment(text)
	entities := e.extractor.Extract(text)
	state := s.tracker.State()

	// A pending creation flow takes priority over fresh classification.
	switch s.tracker.Decide(text) {
	case dialogue.DecisionAccept:
		resp := e.completeCreation(s, text, entities, sentimentRes)
		e.observe(s, text, resp)
		return resp
	case dialogue.DecisionCancel:
		s.tracker.ClearSlot()
		text2, suggestions := e.composer.CancelMessage()
		resp := e.respond(models.IntentGeneral, intentRes.Confidence, sentimentRes, entities, text2, suggestions)
		e.observe(s, text, resp)
		return resp
	case dialogue.DecisionDeflect:
		// The user changed the subject; the half-open flow is abandoned.
		s.tracker.ClearSlot()
	}

	var resp *models.ChatResponse
	switch intentRes.Label {
	case models.IntentCreateTask:
		s.tracker.BeginSlot(dialogue.SlotAwaitingTaskName)
		prompt, suggestions := e.composer.SlotPrompt(dialogue.SlotAwaitingTaskName)
		resp = e.respond(models.IntentTaskCreationRequest, intentRes.Confidence, sentimentRes, entities, prompt, suggestions)
	case models.IntentCreateHabit:
		s.tracker.BeginSlot(dialogue.SlotAwaitingHabitName)
		prompt, suggestions := e.composer.SlotPrompt(dialogue.SlotAwaitingHabitName)
		resp = e.respond(models.IntentHabitCreationRequest, intentRes.Confidence, sentimentRes, entities, prompt, suggestions)
	default:
		text3, suggestions := e.composeReply(ctx, intentRes.Label, entities, sentimentRes.Label, state, text, userCtx)
		resp = e.respond(intentRes.Label, intentRes.Confidence, sentimentRes, entities, text3, suggestions)
	}

	e.observe(s, text, resp)
	return resp
}

// composeReply picks the local template path, optionally letting the
// external LLM answer general conversation. LLM failure never fails a turn.
func (e *Engine) composeReply(ctx context.Context, intent string, entities entity.Set, sentiment string, state dialogue.State, text string, userCtx *models.UserContext) (string, []string) {
	if intent == models.IntentGeneral && e.external != nil {
		if reply, err := e.external.Reply(ctx, systemPrompt, e.contextSummary(state, userCtx), text); err == nil {
			return reply, e.composer.Suggestions(intent)
		}
	}

	reply, suggestions := e.composer.Compose(intent, entities, sentiment, state)
	if extra := personalContext(intent, userCtx); extra != "" {
		reply += extra
	}
	return reply, suggestions
}

// personalContext folds caller-supplied user facts into the reply.
func personalContext(intent string, userCtx *models.UserContext) string {
	if userCtx == nil {
		return ""
	}
	switch intent {
	case models.IntentViewTasks:
		if len(userCtx.RecentTaskTitles) > 0 {
			return " Tus tareas recientes: " + joinFirst(userCtx.RecentTaskTitles, 3) + "."
		}
	case models.IntentViewHabits:
		if len(userCtx.ActiveHabitNames) > 0 {
			return " Tus hábitos activos: " + joinFirst(userCtx.ActiveHabitNames, 3) + "."
		}
	case models.IntentAnalyticsRequest:
		if userCtx.LatestProductivityScore > 0 {
			return fmt.Sprintf(" Tu última puntuación de productividad fue %.1f/10.", userCtx.LatestProductivityScore)
		}
	}
	return ""
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}

// contextSummary condenses dialogue state for the external LLM.
func (e *Engine) contextSummary(state dialogue.State, userCtx *models.UserContext) string {
	parts := []string{}
	if state.LastIntent != "" {
		parts = append(parts, "última intención: "+state.LastIntent)
	}
	if state.MoodTrend != models.SentimentNeutral {
		parts = append(parts, "ánimo reciente: "+state.MoodTrend)
	}
	if userCtx != nil && userCtx.LatestMood != "" {
		parts = append(parts, "estado de ánimo reportado: "+userCtx.LatestMood)
	}
	return strings.Join(parts, "; ")
}

func (e *Engine) respond(intent string, confidence float64, sentiment classifier.Result, entities entity.Set, text string, suggestions []string) *models.ChatResponse {
	return &models.ChatResponse{
		Response:            text,
		Intent:              intent,
		Confidence:          confidence,
		Sentiment:           sentiment.Label,
		SentimentConfidence: sentiment.Confidence,
		Suggestions:         suggestions,
		Entities:            map[string]string(entities),
		Timestamp:           time.Now().UTC().Format(time.RFC3339),
	}
}

func (e *Engine) fallbackResponse() *models.ChatResponse {
	text, suggestions := e.composer.Fallback()
	return &models.ChatResponse{
		Response:            text,
		Intent:              models.IntentGeneral,
		Confidence:          0,
		Sentiment:           models.SentimentNeutral,
		SentimentConfidence: 0,
		Suggestions:         suggestions,
		Entities:            map[string]string{},
		Timestamp:           time.Now().UTC().Format(time.RFC3339),
	}
}

func (e *Engine) observe(s *session, utterance string, resp *models.ChatResponse) {
	s.tracker.Observe(dialogue.Turn{
		Utterance: utterance,
		Intent:    resp.Intent,
		Sentiment: resp.Sentiment,
		Response:  resp.Response,
		Timestamp: time.Now().UTC(),
	})
}

func (e *Engine) session(id string) *session {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[id]
	if !ok {
		s = &session{tracker: dialogue.NewTracker(e.cfg.HistorySize, e.cfg.IntentWindow, e.cfg.MoodWindow, e.cfg.SlotMaxTokens)}
		e.sessions[id] = s
	}
	return s
}

// HistoryLen reports the stored turn count for a session. Used by
// diagnostics and tests.
func (e *Engine) HistoryLen(sessionID string) int {
	s := e.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.History().Len()
}

// ModelInfo describes the classification path in use.
func (e *Engine) ModelInfo() map[string]any {
	type informer interface{ Info() map[string]any }
	if i, ok := e.classifier.(informer); ok {
		return i.Info()
	}
	return map[string]any{"mode": "unknown"}
}
