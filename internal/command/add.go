package command

import (
	"cloud.google.com/go/civil"
	"github.com/josephgoksu/sejong/models"
	"github.com/josephgoksu/sejong/types"
)

// AddTodo appends a Todo.
type AddTodo struct {
	Description string
}

func (c AddTodo) Execute(env *Env) (string, error) {
	task, err := models.NewTodo(c.Description, false)
	if err != nil {
		return "", err
	}
	return add(env, task)
}

func (AddTodo) IsExit() bool { return false }

// AddDeadline appends a Deadline due on By.
type AddDeadline struct {
	Description string
	By          civil.Date
}

func (c AddDeadline) Execute(env *Env) (string, error) {
	task, err := models.NewDeadline(c.Description, c.By, false)
	if err != nil {
		return "", err
	}
	return add(env, task)
}

func (AddDeadline) IsExit() bool { return false }

// AddEvent appends an Event spanning From to To. A reversed range is
// rejected when the task is built.
type AddEvent struct {
	Description string
	From        civil.Date
	To          civil.Date
}

func (c AddEvent) Execute(env *Env) (string, error) {
	task, err := models.NewEvent(c.Description, c.From, c.To, false)
	if err != nil {
		return "", err
	}
	return add(env, task)
}

func (AddEvent) IsExit() bool { return false }

func add(env *Env, task models.Task) (string, error) {
	if env.Store.HasDuplicate(task) {
		return "", types.NewValidationError(types.MsgDuplicateTask)
	}
	env.Store.Add(task)
	env.logger().Debug("task added", "kind", task.Kind().String(), "size", env.Store.Size())

	feedback := lines(
		"Got it. I've added this task:",
		"  "+task.String(),
		countLine(env.Store.Size()),
	)
	return feedback, env.persist("add")
}
