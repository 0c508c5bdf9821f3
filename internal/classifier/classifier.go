package classifier

import (
	"go.uber.org/zap"

	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/models"
)

// Result is one classification outcome: a label from the closed enumeration
// and the winning class probability in [0,1].
type Result struct {
	Label      string
	Confidence float64
}

// Classifier labels an utterance with an intent and a sentiment. Inputs are
// raw user text; implementations normalize internally.
type Classifier interface {
	ClassifyIntent(text string) Result
	ClassifySentiment(text string) Result
}

// New returns the trained statistical classifier, or the deterministic
// keyword-rule classifier when training fails. Training runs once, before the
// engine serves traffic; the rule path keeps the service answering in
// degraded mode.
func New(minConfidence float64, logger *zap.Logger) Classifier {
	trained, err := Train(minConfidence, logger)
	if err != nil {
		logger.Warn("classifier training failed, using rule-based fallback",
			zap.Error(err))
		return NewRuleClassifier()
	}
	return trained
}

// downgrade applies the confidence floor: an intent the model is not sure
// about is treated as general conversation rather than surfaced as an error.
func downgrade(r Result, minConfidence float64) Result {
	if r.Confidence < minConfidence {
		return Result{Label: models.IntentGeneral, Confidence: r.Confidence}
	}
	return r
}
