package intent

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	planner "github.com/AnmoL11221/Voice-Task-Planner"
	"github.com/AnmoL11221/Voice-Task-Planner/charmlog"
)

type stubClient struct {
	raw json.RawMessage
	err error
}

func (s stubClient) Complete(context.Context, string, string) (json.RawMessage, error) {
	return s.raw, s.err
}

func newClassifierWith(client CompletionClient) planner.Classifier {
	return NewClassifier(client, charmlog.NewLogger(charmlog.Options{Writer: io.Discard}))
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("well-formed add task", func(t *testing.T) {
		c := newClassifierWith(stubClient{
			raw: json.RawMessage(`{"intent":"ADD_TASK","entities":{"task_description":"submit the report","due_date":"2026-08-28 16:00:00"}}`),
		})

		res := c.Classify(ctx, "remind me to submit the report at 4 PM today")
		assert.Equal(t, planner.IntentAddTask, res.Intent)
		assert.Equal(t, "submit the report", res.Entities.TaskDescription)
		assert.Equal(t, "2026-08-28 16:00:00", res.Entities.DueDate)
	})

	t.Run("get all tasks without entities", func(t *testing.T) {
		c := newClassifierWith(stubClient{
			raw: json.RawMessage(`{"intent":"GET_ALL_TASKS","entities":{}}`),
		})

		res := c.Classify(ctx, "list all my tasks")
		assert.Equal(t, planner.IntentGetAllTasks, res.Intent)
		assert.Equal(t, planner.Entities{}, res.Entities)
	})

	t.Run("transport failure falls back to unknown", func(t *testing.T) {
		c := newClassifierWith(stubClient{err: errors.New("connection refused")})

		res := c.Classify(ctx, "remind me to water the plants")
		assert.Equal(t, planner.UnknownResult(), res)
	})

	t.Run("malformed JSON falls back to unknown", func(t *testing.T) {
		c := newClassifierWith(stubClient{raw: json.RawMessage(`I cannot help with that`)})

		res := c.Classify(ctx, "remind me to water the plants")
		assert.Equal(t, planner.UnknownResult(), res)
	})

	t.Run("unrecognized intent tag falls back to unknown", func(t *testing.T) {
		c := newClassifierWith(stubClient{
			raw: json.RawMessage(`{"intent":"DELETE_TASK","entities":{"task_description":"everything"}}`),
		})

		res := c.Classify(ctx, "delete everything")
		assert.Equal(t, planner.UnknownResult(), res)
	})

	t.Run("unknown intent drops stray entities", func(t *testing.T) {
		c := newClassifierWith(stubClient{
			raw: json.RawMessage(`{"intent":"UNKNOWN","entities":{"task_description":"noise"}}`),
		})

		res := c.Classify(ctx, "what's the weather like")
		assert.Equal(t, planner.UnknownResult(), res)
	})
}
