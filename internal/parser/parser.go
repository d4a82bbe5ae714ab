// Package parser turns one line of user input into a command.
package parser

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"cloud.google.com/go/civil"
	"github.com/josephgoksu/sejong/internal/command"
	"github.com/josephgoksu/sejong/models"
	"github.com/josephgoksu/sejong/types"
)

const (
	cmdBye      = "bye"
	cmdList     = "list"
	cmdMark     = "mark"
	cmdUnmark   = "unmark"
	cmdDelete   = "delete"
	cmdTodo     = "todo"
	cmdDeadline = "deadline"
	cmdEvent    = "event"
	cmdFind     = "find"

	markerBy     = "/by"
	markerFrom   = "/from"
	markerTo     = "/to"
	markerDate   = "/date"
	markerType   = "/type"
	markerStatus = "/status"
)

// Parse interprets raw. Keywords are tried in a fixed order: exact bye and
// list, then mark, unmark and delete as whole words, then todo, deadline,
// event and find as prefixes.
func Parse(raw string) (command.Command, error) {
	input := strings.TrimSpace(raw)

	switch {
	case input == cmdBye:
		return command.Exit{}, nil
	case input == cmdList:
		return command.List{}, nil
	case hasWord(input, cmdMark):
		i, err := parseIndex(input, cmdMark)
		if err != nil {
			return nil, err
		}
		return command.Mark{Index: i}, nil
	case hasWord(input, cmdUnmark):
		i, err := parseIndex(input, cmdUnmark)
		if err != nil {
			return nil, err
		}
		return command.Unmark{Index: i}, nil
	case hasWord(input, cmdDelete):
		i, err := parseIndex(input, cmdDelete)
		if err != nil {
			return nil, err
		}
		return command.Delete{Index: i}, nil
	case strings.HasPrefix(input, cmdTodo):
		return parseTodo(input)
	case strings.HasPrefix(input, cmdDeadline):
		return parseDeadline(input)
	case strings.HasPrefix(input, cmdEvent):
		return parseEvent(input)
	case strings.HasPrefix(input, cmdFind):
		return parseFind(input)
	default:
		return nil, types.NewUnknownCommandError()
	}
}

// hasWord reports whether input is keyword alone or keyword followed by
// whitespace.
func hasWord(input, keyword string) bool {
	if !strings.HasPrefix(input, keyword) {
		return false
	}
	rest := input[len(keyword):]
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsSpace(r)
}

// parseIndex reads the single 1-based task number after keyword and
// returns it zero-based. Text that is not an integer is a parse error; an
// integer below 1 or beyond int is an index error, like any other number
// outside the list.
func parseIndex(input, keyword string) (int, error) {
	fields := strings.Fields(input[len(keyword):])
	if len(fields) != 1 {
		return 0, types.NewParseError(types.MsgInvalidTaskNumber)
	}
	n, err := strconv.Atoi(fields[0])
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, types.NewIndexError()
	case err != nil:
		return 0, types.NewParseError(types.MsgInvalidTaskNumber)
	case n < 1:
		return 0, types.NewIndexError()
	}
	return n - 1, nil
}

func parseTodo(input string) (command.Command, error) {
	description := strings.TrimSpace(input[len(cmdTodo):])
	if description == "" {
		return nil, types.NewParseError(types.MsgEmptyTodoDescription)
	}
	return command.AddTodo{Description: description}, nil
}

func parseDeadline(input string) (command.Command, error) {
	rest := strings.TrimSpace(input[len(cmdDeadline):])
	if rest == "" {
		return nil, types.NewParseError(types.MsgEmptyDeadlineDescription)
	}

	byAt := strings.Index(rest, markerBy)
	switch {
	case byAt < 0:
		return nil, types.NewParseError(types.MsgMissingDeadlineBy)
	case byAt == 0:
		return nil, types.NewParseError(types.MsgEmptyDeadlineDescription)
	}

	description := strings.TrimSpace(rest[:byAt])
	byText := strings.TrimSpace(rest[byAt+len(markerBy):])
	if description == "" {
		return nil, types.NewParseError(types.MsgEmptyDeadlineDescription)
	}
	if byText == "" {
		return nil, types.NewParseError(types.MsgEmptyDeadlineTime)
	}

	by, err := models.ParseDate(byText)
	if err != nil {
		return nil, err
	}
	return command.AddDeadline{Description: description, By: by}, nil
}

func parseEvent(input string) (command.Command, error) {
	rest := strings.TrimSpace(input[len(cmdEvent):])
	if rest == "" {
		return nil, types.NewParseError(types.MsgEmptyEventDescription)
	}

	fromAt := strings.Index(rest, markerFrom)
	toAt := strings.Index(rest, markerTo)
	switch {
	case fromAt < 0 || toAt < 0:
		return nil, types.NewParseError(types.MsgMissingEventTime)
	case fromAt == 0:
		return nil, types.NewParseError(types.MsgEmptyEventDescription)
	case toAt <= fromAt:
		return nil, types.NewParseError(types.MsgWrongEventOrder)
	}

	description := strings.TrimSpace(rest[:fromAt])
	fromText := ""
	if start := fromAt + len(markerFrom); start < toAt {
		fromText = strings.TrimSpace(rest[start:toAt])
	}
	toText := strings.TrimSpace(rest[toAt+len(markerTo):])

	if description == "" {
		return nil, types.NewParseError(types.MsgEmptyEventDescription)
	}
	if fromText == "" {
		return nil, types.NewParseError(types.MsgEmptyEventStart)
	}
	if toText == "" {
		return nil, types.NewParseError(types.MsgEmptyEventEnd)
	}

	from, err := models.ParseDate(fromText)
	if err != nil {
		return nil, err
	}
	to, err := models.ParseDate(toText)
	if err != nil {
		return nil, err
	}
	return command.AddEvent{Description: description, From: from, To: to}, nil
}

func parseFind(input string) (command.Command, error) {
	criteria, err := ParseCriteria(input[len(cmdFind):])
	if err != nil {
		return nil, err
	}
	return command.Find{Criteria: criteria}, nil
}

// ParseCriteria tokenizes the arguments of find. /date, /type and /status
// consume the following token; every other token is a keyword.
func ParseCriteria(args string) (models.SearchCriteria, error) {
	var (
		keywords []string
		date     *civil.Date
		taskType = models.TypeAll
		status   = models.StatusAll
	)

	tokens := strings.Fields(args)
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case markerDate:
			if i+1 >= len(tokens) {
				return models.SearchCriteria{}, types.NewParseError(types.MsgEmptyDateFilter)
			}
			i++
			d, err := models.ParseDate(tokens[i])
			if err != nil {
				return models.SearchCriteria{}, err
			}
			date = &d
		case markerType:
			if i+1 >= len(tokens) {
				return models.SearchCriteria{}, types.NewParseError(types.MsgEmptyTypeFilter)
			}
			i++
			t, err := models.ParseTypeFilter(tokens[i])
			if err != nil {
				return models.SearchCriteria{}, err
			}
			taskType = t
		case markerStatus:
			if i+1 >= len(tokens) {
				return models.SearchCriteria{}, types.NewParseError(types.MsgEmptyStatusFilter)
			}
			i++
			s, err := models.ParseStatusFilter(tokens[i])
			if err != nil {
				return models.SearchCriteria{}, err
			}
			status = s
		default:
			keywords = append(keywords, tokens[i])
		}
	}

	criteria := models.NewSearchCriteria(keywords, date, taskType, status)
	if criteria.IsEmpty() {
		return models.SearchCriteria{}, types.NewParseError(types.MsgEmptyFindKeyword)
	}
	return criteria, nil
}
