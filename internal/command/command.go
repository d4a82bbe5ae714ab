// Package command holds the executable operations produced by the parser.
package command

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/josephgoksu/sejong/models"
	"github.com/josephgoksu/sejong/store"
)

// Command is one parsed user request.
type Command interface {
	// Execute runs the command and returns the feedback text. A command that
	// mutated the store but failed to persist returns both the feedback and
	// the save error.
	Execute(env *Env) (string, error)

	// IsExit reports whether the session should end after this command.
	IsExit() bool
}

// Env is what a command runs against.
type Env struct {
	Store     store.TaskStore
	Persister store.Persister
	Logger    *slog.Logger
}

func (e *Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

// persist writes the current list. The in-memory state is kept when the
// write fails.
func (e *Env) persist(op string) error {
	if e.Persister == nil {
		return nil
	}
	if err := e.Persister.Save(e.Store.Snapshot()); err != nil {
		e.logger().Error("failed to save tasks", "op", op, "error", err)
		return err
	}
	return nil
}

// taskWord pluralises "task".
func taskWord(n int) string {
	if n == 1 {
		return "task"
	}
	return "tasks"
}

func countLine(n int) string {
	return fmt.Sprintf("Now you have %d %s in the list.", n, taskWord(n))
}

// numbered renders tasks as a 1-based list, one per line.
func numbered(tasks []models.Task) string {
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = fmt.Sprintf("%d.%s", i+1, t)
	}
	return strings.Join(lines, "\n")
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n")
}
