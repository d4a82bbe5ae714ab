package parser

import (
	"errors"
	"testing"

	"github.com/josephgoksu/sejong/internal/command"
	"github.com/josephgoksu/sejong/models"
	"github.com/josephgoksu/sejong/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  command.Command
	}{
		{"bye", "bye", command.Exit{}},
		{"bye with spaces", "  bye  ", command.Exit{}},
		{"list", "list", command.List{}},
		{"mark", "mark 2", command.Mark{Index: 1}},
		{"mark tab", "mark\t3", command.Mark{Index: 2}},
		{"unmark", "unmark 1", command.Unmark{Index: 0}},
		{"delete", "delete   10", command.Delete{Index: 9}},
		{"todo", "todo read book", command.AddTodo{Description: "read book"}},
		{"todo keeps inner spacing", "todo  read   book ", command.AddTodo{Description: "read   book"}},
		{"todo keeps bars", "todo a | b", command.AddTodo{Description: "a | b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Deadline(t *testing.T) {
	got, err := Parse("deadline return book /by 2019-12-02")
	require.NoError(t, err)

	d, ok := got.(command.AddDeadline)
	require.True(t, ok, "got %T", got)
	assert.Equal(t, "return book", d.Description)
	assert.Equal(t, "2019-12-02", d.By.String())
}

func TestParse_Event(t *testing.T) {
	got, err := Parse("event project meeting /from 2019-12-01 /to 2019-12-03")
	require.NoError(t, err)

	e, ok := got.(command.AddEvent)
	require.True(t, ok, "got %T", got)
	assert.Equal(t, "project meeting", e.Description)
	assert.Equal(t, "2019-12-01", e.From.String())
	assert.Equal(t, "2019-12-03", e.To.String())
}

func TestParse_EventReversedRangeIsAcceptedByParser(t *testing.T) {
	// The range is checked when the task is built.
	got, err := Parse("event trip /from 2019-12-05 /to 2019-12-01")
	require.NoError(t, err)
	assert.IsType(t, command.AddEvent{}, got)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
		kind    *types.Error
	}{
		{"empty", "", types.MsgUnknownCommand, types.ErrUnknownCommand},
		{"unknown", "blah", types.MsgUnknownCommand, types.ErrUnknownCommand},
		{"case sensitive", "LIST", types.MsgUnknownCommand, types.ErrUnknownCommand},
		{"list with args", "list all", types.MsgUnknownCommand, types.ErrUnknownCommand},
		{"mark glued", "mark2", types.MsgUnknownCommand, types.ErrUnknownCommand},

		{"mark alone", "mark", types.MsgInvalidTaskNumber, types.ErrParse},
		{"mark word", "mark abc", types.MsgInvalidTaskNumber, types.ErrParse},
		{"mark zero", "mark 0", types.MsgInvalidTaskNumber, types.ErrIndex},
		{"mark negative", "unmark -1", types.MsgInvalidTaskNumber, types.ErrIndex},
		{"mark two args", "delete 1 2", types.MsgInvalidTaskNumber, types.ErrParse},
		{"mark overflow", "delete 99999999999999999999999", types.MsgInvalidTaskNumber, types.ErrIndex},

		{"todo empty", "todo", types.MsgEmptyTodoDescription, types.ErrParse},
		{"todo blank", "todo    ", types.MsgEmptyTodoDescription, types.ErrParse},

		{"deadline empty", "deadline", types.MsgEmptyDeadlineDescription, types.ErrParse},
		{"deadline no by", "deadline return book", types.MsgMissingDeadlineBy, types.ErrParse},
		{"deadline by first", "deadline /by 2019-12-02", types.MsgEmptyDeadlineDescription, types.ErrParse},
		{"deadline empty date", "deadline return book /by", types.MsgEmptyDeadlineTime, types.ErrParse},
		{"deadline bad date", "deadline return book /by tomorrow", types.MsgInvalidDate, types.ErrValidation},

		{"event empty", "event", types.MsgEmptyEventDescription, types.ErrParse},
		{"event no markers", "event trip", types.MsgMissingEventTime, types.ErrParse},
		{"event no to", "event trip /from 2019-12-01", types.MsgMissingEventTime, types.ErrParse},
		{"event from first", "event /from 2019-12-01 /to 2019-12-02", types.MsgEmptyEventDescription, types.ErrParse},
		{"event wrong order", "event trip /to 2019-12-02 /from 2019-12-01", types.MsgWrongEventOrder, types.ErrParse},
		{"event empty start", "event trip /from /to 2019-12-02", types.MsgEmptyEventStart, types.ErrParse},
		{"event empty end", "event trip /from 2019-12-01 /to", types.MsgEmptyEventEnd, types.ErrParse},
		{"event bad start", "event trip /from monday /to 2019-12-02", types.MsgInvalidDate, types.ErrValidation},

		{"find empty", "find", types.MsgEmptyFindKeyword, types.ErrParse},
		{"find blank", "find   ", types.MsgEmptyFindKeyword, types.ErrParse},
		{"find date missing", "find /date", types.MsgEmptyDateFilter, types.ErrParse},
		{"find type missing", "find book /type", types.MsgEmptyTypeFilter, types.ErrParse},
		{"find status missing", "find /status", types.MsgEmptyStatusFilter, types.ErrParse},
		{"find bad date", "find /date 15-12-2024", types.MsgInvalidDate, types.ErrValidation},
		{"find bad type", "find /type meeting", types.MsgInvalidTaskType, types.ErrValidation},
		{"find bad status", "find /status maybe", types.MsgInvalidStatus, types.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.True(t, errors.Is(err, tt.kind), "kind of %v", err)
		})
	}
}

func TestParse_InvalidIndexMatchesSentinel(t *testing.T) {
	_, err := Parse("mark x")
	assert.True(t, errors.Is(err, types.ErrInvalidTaskNumber))
}

func TestParseCriteria(t *testing.T) {
	tests := []struct {
		name       string
		args       string
		keywords   []string
		date       string
		taskType   models.TypeFilter
		status     models.StatusFilter
		wantDateOK bool
	}{
		{name: "single keyword", args: "book", keywords: []string{"book"}},
		{name: "many keywords", args: " team  meeting ", keywords: []string{"team", "meeting"}},
		{name: "date only", args: "/date 2024-12-15", date: "2024-12-15", wantDateOK: true},
		{
			name:     "all axes",
			args:     "meeting /type event /status pending",
			keywords: []string{"meeting"},
			taskType: models.TypeEvent,
			status:   models.StatusPending,
		},
		{
			name:       "markers in any order",
			args:       "/status done report /date 2024-01-31 /type deadline",
			keywords:   []string{"report"},
			date:       "2024-01-31",
			wantDateOK: true,
			taskType:   models.TypeDeadline,
			status:     models.StatusDone,
		},
		{name: "type case-insensitive", args: "/type TODO", taskType: models.TypeTodo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCriteria(tt.args)
			require.NoError(t, err)

			if tt.keywords == nil {
				assert.False(t, c.HasKeywords())
			} else {
				assert.Equal(t, tt.keywords, c.Keywords())
			}

			d, ok := c.Date()
			assert.Equal(t, tt.wantDateOK, ok)
			if ok {
				assert.Equal(t, tt.date, d.String())
			}

			// Unset fields default to TypeAll and StatusAll.
			assert.Equal(t, tt.taskType, c.TaskType())
			assert.Equal(t, tt.status, c.Status())
		})
	}
}
