package command

import (
	"fmt"

	"github.com/josephgoksu/sejong/models"
	"github.com/josephgoksu/sejong/types"
)

// List shows every task in order.
type List struct{}

func (List) Execute(env *Env) (string, error) {
	tasks := env.Store.Snapshot()
	if len(tasks) == 0 {
		return "Your task list is empty.", nil
	}
	return lines("Here are the tasks in your list:", numbered(tasks)), nil
}

func (List) IsExit() bool { return false }

// Find lists the tasks matching Criteria.
type Find struct {
	Criteria models.SearchCriteria
}

func (c Find) Execute(env *Env) (string, error) {
	matches := env.Store.Find(c.Criteria)
	env.logger().Debug("find", "criteria", c.Criteria.Describe(), "matches", len(matches))

	if len(matches) == 0 {
		return lines(c.Criteria.Describe(), "", "No matching tasks found."), nil
	}
	header := fmt.Sprintf("Found %d matching %s:", len(matches), taskWord(len(matches)))
	return lines(c.Criteria.Describe(), "", header, numbered(matches)), nil
}

func (Find) IsExit() bool { return false }

// Exit ends the session.
type Exit struct{}

func (Exit) Execute(*Env) (string, error) { return types.MsgFarewell, nil }

func (Exit) IsExit() bool { return true }
