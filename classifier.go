package planner

import "context"

type Intent string

const (
	IntentAddTask      Intent = "ADD_TASK"
	IntentGetTasks     Intent = "GET_TASKS"
	IntentCompleteTask Intent = "COMPLETE_TASK"
	IntentGetAllTasks  Intent = "GET_ALL_TASKS"
	IntentUnknown      Intent = "UNKNOWN"
)

// IntentResult is the structured outcome of classifying one utterance.
// It is always well-formed: a classifier that cannot produce a real
// answer reports IntentUnknown instead of an error.
type IntentResult struct {
	Intent   Intent   `json:"intent"`
	Entities Entities `json:"entities"`
}

// Entities carries the intent-specific fields extracted from an
// utterance. Fields not applicable to the classified intent are empty.
type Entities struct {
	TaskDescription string `json:"task_description,omitempty"`
	DueDate         string `json:"due_date,omitempty"`
	QueryDate       string `json:"query_date,omitempty"`
}

// Classifier maps free-form user text to an IntentResult. Implementations
// must never fail: network errors, malformed model output, and anything
// else unexpected collapse to IntentUnknown with empty entities so the
// dispatch loop only ever branches on the intent tag.
type Classifier interface {
	Classify(ctx context.Context, utterance string) IntentResult
}

// UnknownResult is the catch-all outcome for unclassifiable input.
func UnknownResult() IntentResult {
	return IntentResult{Intent: IntentUnknown}
}
