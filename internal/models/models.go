package models

// Intent labels recognized by the engine. The trained models and the
// keyword-rule fallback share this enumeration so the two paths cannot drift.
const (
	IntentTaskManagement     = "task_management"
	IntentHabitTracking      = "habit_tracking"
	IntentProductivityAdvice = "productivity_advice"
	IntentMotivation         = "motivation"
	IntentAnalyticsRequest   = "analytics_request"
	IntentGreeting           = "greeting"
	IntentHelp               = "help"
	IntentGoodbye            = "goodbye"
	IntentGeneral            = "general"
	IntentCreateTask         = "create_task"
	IntentCreateHabit        = "create_habit"
	IntentEmotionalSupport   = "emotional_support"
	IntentViewTasks          = "view_tasks"
	IntentViewHabits         = "view_habits"
	IntentError              = "error"
)

// Flow intents reported on responses that belong to a multi-turn creation
// flow. They are response-level labels layered over the classifier set.
const (
	IntentTaskCreationRequest   = "task_creation_request"
	IntentTaskCreationComplete  = "task_creation_complete"
	IntentHabitCreationRequest  = "habit_creation_request"
	IntentHabitCreationComplete = "habit_creation_complete"
)

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Intents returns every label the classifiers may produce.
func Intents() []string {
	return []string{
		IntentTaskManagement,
		IntentHabitTracking,
		IntentProductivityAdvice,
		IntentMotivation,
		IntentAnalyticsRequest,
		IntentGreeting,
		IntentHelp,
		IntentGoodbye,
		IntentGeneral,
		IntentCreateTask,
		IntentCreateHabit,
		IntentEmotionalSupport,
		IntentViewTasks,
		IntentViewHabits,
	}
}

// Sentiments returns every sentiment label.
func Sentiments() []string {
	return []string{SentimentPositive, SentimentNegative, SentimentNeutral}
}

// ChatResponse is the JSON-serializable result of one processed utterance.
type ChatResponse struct {
	Response            string            `json:"response"`
	Intent              string            `json:"intent"`
	Confidence          float64           `json:"confidence"`
	Sentiment           string            `json:"sentiment"`
	SentimentConfidence float64           `json:"sentiment_confidence"`
	Suggestions         []string          `json:"suggestions"`
	Entities            map[string]string `json:"entities"`
	Timestamp           string            `json:"timestamp"`
	TaskCreated         *TaskDraft        `json:"task_created,omitempty"`
	HabitCreated        *HabitDraft       `json:"habit_created,omitempty"`
}

// UserContext carries optional per-user facts the caller already knows,
// used to personalize responses. All fields may be empty.
type UserContext struct {
	RecentTaskTitles        []string `json:"recent_task_titles,omitempty"`
	ActiveHabitNames        []string `json:"active_habit_names,omitempty"`
	LatestProductivityScore float64  `json:"latest_productivity_score,omitempty"`
	LatestMood              string   `json:"latest_mood,omitempty"`
}
