package command

// Mark sets the done flag of the task at Index (zero-based).
type Mark struct {
	Index int
}

func (c Mark) Execute(env *Env) (string, error) {
	task, err := env.Store.Mark(c.Index)
	if err != nil {
		return "", err
	}
	feedback := lines("Nice! I've marked this task as done:", "  "+task.String())
	return feedback, env.persist("mark")
}

func (Mark) IsExit() bool { return false }

// Unmark clears the done flag of the task at Index.
type Unmark struct {
	Index int
}

func (c Unmark) Execute(env *Env) (string, error) {
	task, err := env.Store.Unmark(c.Index)
	if err != nil {
		return "", err
	}
	feedback := lines("OK, I've marked this task as not done yet:", "  "+task.String())
	return feedback, env.persist("unmark")
}

func (Unmark) IsExit() bool { return false }

// Delete removes the task at Index.
type Delete struct {
	Index int
}

func (c Delete) Execute(env *Env) (string, error) {
	task, err := env.Store.Delete(c.Index)
	if err != nil {
		return "", err
	}
	feedback := lines(
		"Noted. I've removed this task:",
		"  "+task.String(),
		countLine(env.Store.Size()),
	)
	return feedback, env.persist("delete")
}

func (Delete) IsExit() bool { return false }
