package classifier

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/models"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/nlp"
)

const vocabularySize = 1000

// ModelClassifier is the trained statistical bundle: one shared TF-IDF
// vectorizer and two independent naive-Bayes models, one for intent and one
// for sentiment. It is constructed once, is immutable afterwards, and is
// therefore safe for concurrent use across sessions.
type ModelClassifier struct {
	vectorizer    *nlp.Vectorizer
	intent        *nlp.NaiveBayes
	sentiment     *nlp.NaiveBayes
	minConfidence float64
	logger        *zap.Logger
}

// Train fits the vectorizer and both models on the bundled corpus.
func Train(minConfidence float64, logger *zap.Logger) (*ModelClassifier, error) {
	var (
		intentTexts    []string
		intentLabels   []string
		sentimentTexts []string
		sentLabels     []string
		allTexts       []string
	)

	for _, label := range models.Intents() {
		for _, phrase := range intentCorpus[label] {
			text := nlp.Normalize(phrase)
			intentTexts = append(intentTexts, text)
			intentLabels = append(intentLabels, label)
			allTexts = append(allTexts, text)
		}
	}
	for _, label := range models.Sentiments() {
		for _, phrase := range sentimentCorpus[label] {
			text := nlp.Normalize(phrase)
			sentimentTexts = append(sentimentTexts, text)
			sentLabels = append(sentLabels, label)
			allTexts = append(allTexts, text)
		}
	}

	vectorizer := nlp.FitVectorizer(allTexts, vocabularySize)

	intentModel, err := nlp.FitNaiveBayes(vectorize(vectorizer, intentTexts), intentLabels)
	if err != nil {
		return nil, fmt.Errorf("fitting intent model: %w", err)
	}
	sentimentModel, err := nlp.FitNaiveBayes(vectorize(vectorizer, sentimentTexts), sentLabels)
	if err != nil {
		return nil, fmt.Errorf("fitting sentiment model: %w", err)
	}

	logger.Info("classifier models trained",
		zap.Int("vocabulary", vectorizer.Size()),
		zap.Int("intent_phrases", len(intentTexts)),
		zap.Int("sentiment_phrases", len(sentimentTexts)))

	return &ModelClassifier{
		vectorizer:    vectorizer,
		intent:        intentModel,
		sentiment:     sentimentModel,
		minConfidence: minConfidence,
		logger:        logger,
	}, nil
}

func vectorize(v *nlp.Vectorizer, texts []string) [][]float64 {
	vecs := make([][]float64, len(texts))
	for i, t := range texts {
		vecs[i] = v.Transform(t)
	}
	return vecs
}

// ClassifyIntent labels the utterance with one of the closed intent set.
// Low-confidence predictions downgrade to general rather than erroring.
func (m *ModelClassifier) ClassifyIntent(text string) Result {
	normalized := nlp.Normalize(text)
	if normalized == "" {
		return Result{Label: models.IntentGeneral, Confidence: 0}
	}
	label, confidence := m.intent.Predict(m.vectorizer.Transform(normalized))
	return downgrade(Result{Label: label, Confidence: confidence}, m.minConfidence)
}

// ClassifySentiment labels the utterance's polarity. There is no confidence
// floor here: neutral is already the model's default for ambiguous input.
func (m *ModelClassifier) ClassifySentiment(text string) Result {
	normalized := nlp.Normalize(text)
	if normalized == "" {
		return Result{Label: models.SentimentNeutral, Confidence: 0}
	}
	label, confidence := m.sentiment.Predict(m.vectorizer.Transform(normalized))
	return Result{Label: label, Confidence: confidence}
}

// Info describes the trained bundle for diagnostics.
func (m *ModelClassifier) Info() map[string]any {
	return map[string]any{
		"mode":              "trained",
		"vocabulary_size":   m.vectorizer.Size(),
		"intent_classes":    m.intent.Classes(),
		"sentiment_classes": m.sentiment.Classes(),
	}
}
