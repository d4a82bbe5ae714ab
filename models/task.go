package models

import (
	"strings"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/josephgoksu/sejong/types"
)

// Kind discriminates the three task variants.
type Kind int

const (
	KindTodo Kind = iota + 1
	KindDeadline
	KindEvent
)

func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Icon returns the bracketed type marker used when rendering a task.
func (k Kind) Icon() string {
	switch k {
	case KindTodo:
		return "[T]"
	case KindDeadline:
		return "[D]"
	case KindEvent:
		return "[E]"
	default:
		return "[?]"
	}
}

// Task is a to-do item. The set of implementations is closed: *Todo,
// *Deadline and *Event. Use a type switch to reach variant fields.
type Task interface {
	Kind() Kind
	Description() string
	IsDone() bool
	MarkDone()
	MarkNotDone()
	// Clone returns an independent copy.
	Clone() Task
	String() string

	isTask()
}

// global validator instance
var validate = validator.New()

type base struct {
	description string
	done        bool
}

func newBase(description string, done bool) (base, error) {
	if err := validate.Var(strings.TrimSpace(description), "required"); err != nil {
		return base{}, types.NewValidationError(types.MsgEmptyDescription)
	}
	return base{description: description, done: done}, nil
}

func (b *base) Description() string { return b.description }
func (b *base) IsDone() bool        { return b.done }
func (b *base) MarkDone()           { b.done = true }
func (b *base) MarkNotDone()        { b.done = false }
func (b *base) isTask()             {}

func (b *base) statusIcon() string {
	if b.done {
		return "[X]"
	}
	return "[ ]"
}

func (b *base) render(k Kind) string {
	return k.Icon() + b.statusIcon() + " " + b.description
}

// Todo is a task without any date attached.
type Todo struct {
	base
}

// NewTodo creates a Todo. The description must not be blank.
func NewTodo(description string, done bool) (*Todo, error) {
	b, err := newBase(description, done)
	if err != nil {
		return nil, err
	}
	return &Todo{base: b}, nil
}

func (t *Todo) Kind() Kind     { return KindTodo }
func (t *Todo) Clone() Task    { c := *t; return &c }
func (t *Todo) String() string { return t.render(KindTodo) }

// Deadline is a task due on a given date.
type Deadline struct {
	base
	by civil.Date
}

// NewDeadline creates a Deadline due on by.
func NewDeadline(description string, by civil.Date, done bool) (*Deadline, error) {
	b, err := newBase(description, done)
	if err != nil {
		return nil, err
	}
	if !by.IsValid() {
		return nil, types.NewValidationError(types.MsgInvalidDate)
	}
	return &Deadline{base: b, by: by}, nil
}

func (d *Deadline) Kind() Kind { return KindDeadline }

// By returns the due date.
func (d *Deadline) By() civil.Date { return d.by }

func (d *Deadline) Clone() Task { c := *d; return &c }

func (d *Deadline) String() string {
	return d.render(KindDeadline) + " (by: " + FormatDate(d.by) + ")"
}

// Event is a task spanning an inclusive date range.
type Event struct {
	base
	from civil.Date
	to   civil.Date
}

// NewEvent creates an Event. from must not be after to.
func NewEvent(description string, from, to civil.Date, done bool) (*Event, error) {
	b, err := newBase(description, done)
	if err != nil {
		return nil, err
	}
	if !from.IsValid() || !to.IsValid() {
		return nil, types.NewValidationError(types.MsgInvalidDate)
	}
	if from.After(to) {
		return nil, types.NewValidationError(types.MsgInvalidDateRange)
	}
	return &Event{base: b, from: from, to: to}, nil
}

func (e *Event) Kind() Kind       { return KindEvent }
func (e *Event) From() civil.Date { return e.from }
func (e *Event) To() civil.Date   { return e.to }
func (e *Event) Clone() Task      { c := *e; return &c }

// Covers reports whether d falls within the event, both ends inclusive.
func (e *Event) Covers(d civil.Date) bool {
	return !d.Before(e.from) && !d.After(e.to)
}

func (e *Event) String() string {
	return e.render(KindEvent) + " (from: " + FormatDate(e.from) + " to: " + FormatDate(e.to) + ")"
}
