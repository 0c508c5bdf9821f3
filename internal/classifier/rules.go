package classifier

import (
	"strings"

	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/models"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/nlp"
)

// RuleClassifier is the deterministic keyword fallback used when the trained
// models are unavailable. Rules are ordered: the first matching rule wins.
// It shares the intent enumeration with the trained path and never fails.
type RuleClassifier struct {
	rules []intentRule
}

type intentRule struct {
	label      string
	confidence float64
	// match reports whether the normalized text triggers this rule.
	match func(text string) bool
}

func containsAny(text string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// NewRuleClassifier builds the keyword rule table.
func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{rules: []intentRule{
		{models.IntentGreeting, 0.8, func(t string) bool {
			return containsAny(t, "hola", "buenos días", "buenas tardes", "buenas noches", "qué tal", "saludos", "hello", "good morning")
		}},
		{models.IntentGoodbye, 0.8, func(t string) bool {
			return containsAny(t, "adiós", "chao", "hasta luego", "nos vemos", "gracias", "bye")
		}},
		{models.IntentViewTasks, 0.8, func(t string) bool {
			return strings.Contains(t, "tarea") && containsAny(t, "ver", "mostrar", "listar", "lista", "mis", "existentes")
		}},
		{models.IntentViewHabits, 0.8, func(t string) bool {
			return containsAny(t, "hábito", "habito") && containsAny(t, "ver", "mostrar", "listar", "lista", "mis", "existentes")
		}},
		{models.IntentCreateTask, 0.7, func(t string) bool {
			return strings.Contains(t, "tarea") && containsAny(t, "crear", "nueva", "agregar", "añadir")
		}},
		{models.IntentCreateHabit, 0.7, func(t string) bool {
			return containsAny(t, "hábito", "habito") && containsAny(t, "crear", "nuevo", "establecer", "formar")
		}},
		{models.IntentEmotionalSupport, 0.7, func(t string) bool {
			return containsAny(t, "me siento mal", "triste", "deprimido", "ansioso", "abrumado", "estresado", "no puedo más", "me siento solo")
		}},
		{models.IntentMotivation, 0.6, func(t string) bool {
			return containsAny(t, "motivación", "motivacion", "desmotivado", "inspiración", "ánimo", "metas")
		}},
		{models.IntentAnalyticsRequest, 0.7, func(t string) bool {
			return containsAny(t, "estadístic", "estadistic", "progreso", "reporte", "rendimiento", "analytics")
		}},
		{models.IntentProductivityAdvice, 0.6, func(t string) bool {
			return containsAny(t, "productividad", "consejo", "pomodoro", "eficien", "concentra")
		}},
		{models.IntentTaskManagement, 0.6, func(t string) bool {
			return strings.Contains(t, "tarea")
		}},
		{models.IntentHabitTracking, 0.6, func(t string) bool {
			return containsAny(t, "hábito", "habito", "rutina")
		}},
		{models.IntentHelp, 0.6, func(t string) bool {
			return containsAny(t, "ayuda", "puedes", "funciones", "help")
		}},
	}}
}

func (c *RuleClassifier) ClassifyIntent(text string) Result {
	normalized := nlp.Normalize(text)
	if normalized == "" {
		return Result{Label: models.IntentGeneral, Confidence: 0}
	}
	for _, rule := range c.rules {
		if rule.match(normalized) {
			return Result{Label: rule.label, Confidence: rule.confidence}
		}
	}
	return Result{Label: models.IntentGeneral, Confidence: 0.3}
}

var positiveWords = []string{
	"genial", "excelente", "perfecto", "feliz", "contento", "emocionado",
	"motivado", "increíble", "maravilloso", "fantástico", "orgulloso",
	"logré", "conseguí", "gané", "éxito", "alegre", "me encanta",
}

var negativeWords = []string{
	"mal", "triste", "terrible", "horrible", "deprimido", "ansioso",
	"estresado", "frustrado", "cansado", "agotado", "abrumado",
	"desmotivado", "perdido", "confundido", "no puedo", "solo",
}

func (c *RuleClassifier) ClassifySentiment(text string) Result {
	normalized := nlp.Normalize(text)
	if normalized == "" {
		return Result{Label: models.SentimentNeutral, Confidence: 0}
	}

	var positive, negative int
	for _, w := range positiveWords {
		if strings.Contains(normalized, w) {
			positive++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(normalized, w) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return Result{Label: models.SentimentPositive, Confidence: 0.7}
	case negative > positive:
		return Result{Label: models.SentimentNegative, Confidence: 0.7}
	default:
		return Result{Label: models.SentimentNeutral, Confidence: 0.5}
	}
}

// Info describes the fallback for diagnostics.
func (c *RuleClassifier) Info() map[string]any {
	return map[string]any{
		"mode":  "rule-fallback",
		"rules": len(c.rules),
	}
}
