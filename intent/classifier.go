// Package intent turns free-form utterances into structured IntentResults
// by way of an external language model.
package intent

import (
	"context"
	"encoding/json"
	"time"

	planner "github.com/AnmoL11221/Voice-Task-Planner"
)

// CompletionClient is the slice of the model API the classifier needs.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (json.RawMessage, error)
}

// classifier
type classifier struct {
	client CompletionClient
	l      planner.Logger
	now    func() time.Time
}

var _ planner.Classifier = (*classifier)(nil)

func NewClassifier(client CompletionClient, logger planner.Logger) planner.Classifier {
	return &classifier{
		client: client,
		l:      logger,
		now:    time.Now,
	}
}

// Classify never surfaces an error: a dead network, a misbehaving model,
// or unparsable output all collapse to UNKNOWN so the dispatch loop
// keeps running.
func (c *classifier) Classify(ctx context.Context, utterance string) planner.IntentResult {
	raw, err := c.client.Complete(ctx, SystemPrompt(c.now()), utterance)
	if err != nil {
		c.l.Warn("classification request failed", "error", err)
		return planner.UnknownResult()
	}

	var res planner.IntentResult
	if err := json.Unmarshal(raw, &res); err != nil {
		c.l.Warn("classification response is not valid JSON", "error", err, "raw", string(raw))
		return planner.UnknownResult()
	}

	switch res.Intent {
	case planner.IntentAddTask, planner.IntentGetTasks, planner.IntentCompleteTask, planner.IntentGetAllTasks:
		c.l.Debug("classified utterance", "intent", res.Intent, "entities", res.Entities)
		return res
	case planner.IntentUnknown:
		return planner.UnknownResult()
	default:
		c.l.Warn("model produced an unrecognized intent", "intent", res.Intent)
		return planner.UnknownResult()
	}
}
