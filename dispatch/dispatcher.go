// Package dispatch routes classified utterances to the task store and
// phrases the spoken responses.
package dispatch

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	planner "github.com/AnmoL11221/Voice-Task-Planner"
	"github.com/AnmoL11221/Voice-Task-Planner/dates"
)

const (
	Greeting = "Hello! I am your voice-enabled task planner. How can I help you today?"
	Farewell = "Goodbye!"

	unknownReply = "I'm sorry, I'm not sure how to help with that. You can ask me to add a task, list tasks, or complete a task."
	storeTrouble = "Sorry, I ran into a problem with your task list. Please try again."
)

// Spoken before the classifier ever runs; any of these anywhere in the
// utterance ends the session.
var terminationWords = []string{"exit", "quit", "goodbye", "stop"}

// Reply is one turn's response. Quit marks the session as over.
type Reply struct {
	Text string
	Quit bool
}

type Dispatcher struct {
	store      planner.TaskStore
	classifier planner.Classifier
	dates      *dates.Normalizer
	l          planner.Logger
	now        func() time.Time
}

func New(store planner.TaskStore, classifier planner.Classifier, normalizer *dates.Normalizer, logger planner.Logger) *Dispatcher {
	return &Dispatcher{
		store:      store,
		classifier: classifier,
		dates:      normalizer,
		l:          logger,
		now:        time.Now,
	}
}

// HandleCommand runs one full turn: termination check, classification,
// store mutation, response phrasing. It is stateless across turns.
func (d *Dispatcher) HandleCommand(ctx context.Context, command string) Reply {
	command = strings.TrimSpace(command)
	if command == "" {
		return Reply{}
	}

	if isTermination(command) {
		return Reply{Text: Farewell, Quit: true}
	}

	turn := uuid.New()
	d.l.Info("handling command", "turn", turn, "command", command)

	res := d.classifier.Classify(ctx, command)
	d.l.Debug("dispatching", "turn", turn, "intent", res.Intent)

	switch res.Intent {
	case planner.IntentAddTask:
		return d.addTask(ctx, res.Entities)
	case planner.IntentGetTasks:
		return d.getTasksForDay(ctx, res.Entities)
	case planner.IntentCompleteTask:
		return d.completeTask(ctx, res.Entities)
	case planner.IntentGetAllTasks:
		return d.getAllTasks(ctx)
	default:
		return Reply{Text: unknownReply}
	}
}

func isTermination(command string) bool {
	lowered := strings.ToLower(command)
	for _, word := range terminationWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}

func (d *Dispatcher) addTask(ctx context.Context, e planner.Entities) Reply {
	if e.TaskDescription == "" {
		return Reply{Text: "I'm sorry, I didn't catch the task description. Please try again."}
	}

	var due time.Time
	if e.DueDate != "" {
		due = d.dates.Normalize(e.DueDate, d.now())
	}

	task, err := d.store.CreateTask(ctx, planner.CreateTaskRequest{
		Description: e.TaskDescription,
		DueDate:     due,
	})
	if err != nil {
		d.l.Error("failed creating task", "error", err)
		return Reply{Text: storeTrouble}
	}

	var sb strings.Builder
	sb.WriteString("Got it! I've added the task: ")
	sb.WriteString(task.Description)
	sb.WriteString(".")
	if task.HasDueDate() {
		sb.WriteString(" It's scheduled for ")
		sb.WriteString(task.DueDate.Format("Monday, January 02 at 03:04 PM"))
		sb.WriteString(".")
	}
	return Reply{Text: sb.String()}
}

func (d *Dispatcher) getTasksForDay(ctx context.Context, e planner.Entities) Reply {
	now := d.now()
	day := now
	if e.QueryDate != "" {
		if parsed := d.dates.Normalize(e.QueryDate, now); !parsed.IsZero() {
			day = parsed
		}
	}

	tasks, err := d.store.GetTasksForDay(ctx, day)
	if err != nil {
		d.l.Error("failed listing tasks for day", "error", err)
		return Reply{Text: storeTrouble}
	}

	dateRef := "today"
	if !sameDay(day, now) {
		dateRef = "for " + day.Format("Monday, January 02")
	}

	if len(tasks) == 0 {
		return Reply{Text: "You have no tasks scheduled " + dateRef + "."}
	}

	var sb strings.Builder
	sb.WriteString("You have ")
	sb.WriteString(countTasks(len(tasks)))
	sb.WriteString(" scheduled ")
	sb.WriteString(dateRef)
	sb.WriteString(". ")
	for i, t := range tasks {
		sb.WriteString(ordinal(i))
		sb.WriteString(t.Description)
		// tasks due at midnight were given a day but no clock time
		if t.HasDueDate() && !isMidnight(t.DueDate) {
			sb.WriteString(" at ")
			sb.WriteString(t.DueDate.Format("03:04 PM"))
		}
		sb.WriteString(". ")
	}
	return Reply{Text: strings.TrimSpace(sb.String())}
}

func (d *Dispatcher) completeTask(ctx context.Context, e planner.Entities) Reply {
	if e.TaskDescription == "" {
		return Reply{Text: "I'm not sure which task you want to complete. Please be more specific."}
	}

	updated, err := d.store.CompleteTasksMatching(ctx, e.TaskDescription)
	if err != nil {
		d.l.Error("failed completing tasks", "error", err)
		return Reply{Text: storeTrouble}
	}

	if updated > 0 {
		return Reply{Text: "Great! I've marked a task related to '" + e.TaskDescription + "' as complete."}
	}
	return Reply{Text: "I couldn't find a pending task that matches '" + e.TaskDescription + "'."}
}

func (d *Dispatcher) getAllTasks(ctx context.Context) Reply {
	tasks, err := d.store.GetAllPendingTasks(ctx)
	if err != nil {
		d.l.Error("failed listing pending tasks", "error", err)
		return Reply{Text: storeTrouble}
	}

	if len(tasks) == 0 {
		return Reply{Text: "You have no pending tasks at the moment. Great job!"}
	}

	var sb strings.Builder
	sb.WriteString("You have a total of ")
	sb.WriteString(countPendingTasks(len(tasks)))
	sb.WriteString(". ")
	for i, t := range tasks {
		sb.WriteString(ordinal(i))
		sb.WriteString(t.Description)
		if t.HasDueDate() {
			sb.WriteString(" for ")
			sb.WriteString(t.DueDate.Format("Monday, January 02 at 03:04 PM"))
		}
		sb.WriteString(". ")
	}
	return Reply{Text: strings.TrimSpace(sb.String())}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func isMidnight(t time.Time) bool {
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0
}
