package models

import (
	"strings"

	"cloud.google.com/go/civil"
	"github.com/josephgoksu/sejong/types"
)

// TypeFilter restricts a search to one task kind.
type TypeFilter int

const (
	TypeAll TypeFilter = iota
	TypeTodo
	TypeDeadline
	TypeEvent
)

func (f TypeFilter) String() string {
	switch f {
	case TypeTodo:
		return "todo"
	case TypeDeadline:
		return "deadline"
	case TypeEvent:
		return "event"
	default:
		return "all"
	}
}

// Matches reports whether a task of kind k passes the filter.
func (f TypeFilter) Matches(k Kind) bool {
	switch f {
	case TypeTodo:
		return k == KindTodo
	case TypeDeadline:
		return k == KindDeadline
	case TypeEvent:
		return k == KindEvent
	default:
		return true
	}
}

// ParseTypeFilter maps a user token (todo, deadline, event) to a TypeFilter.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch strings.ToLower(s) {
	case "todo":
		return TypeTodo, nil
	case "deadline":
		return TypeDeadline, nil
	case "event":
		return TypeEvent, nil
	default:
		return TypeAll, types.NewValidationError(types.MsgInvalidTaskType)
	}
}

// StatusFilter restricts a search by completion.
type StatusFilter int

const (
	StatusAll StatusFilter = iota
	StatusDone
	StatusPending
)

func (f StatusFilter) String() string {
	switch f {
	case StatusDone:
		return "done"
	case StatusPending:
		return "pending"
	default:
		return "all"
	}
}

// Matches reports whether a task with the given done flag passes the filter.
func (f StatusFilter) Matches(done bool) bool {
	switch f {
	case StatusDone:
		return done
	case StatusPending:
		return !done
	default:
		return true
	}
}

// ParseStatusFilter maps a user token (done, pending) to a StatusFilter.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch strings.ToLower(s) {
	case "done":
		return StatusDone, nil
	case "pending":
		return StatusPending, nil
	default:
		return StatusAll, types.NewValidationError(types.MsgInvalidStatus)
	}
}

// SearchCriteria is an immutable filter across keywords, date, type and
// completion status. Active axes are combined with AND.
type SearchCriteria struct {
	keywords []string
	date     *civil.Date
	taskType TypeFilter
	status   StatusFilter
}

// NewSearchCriteria copies keywords; date may be nil. The caller is
// responsible for rejecting criteria with no active axis.
func NewSearchCriteria(keywords []string, date *civil.Date, taskType TypeFilter, status StatusFilter) SearchCriteria {
	c := SearchCriteria{
		keywords: append([]string(nil), keywords...),
		taskType: taskType,
		status:   status,
	}
	if date != nil {
		d := *date
		c.date = &d
	}
	return c
}

// KeywordCriteria builds criteria that only match on keywords.
func KeywordCriteria(keywords ...string) SearchCriteria {
	return NewSearchCriteria(keywords, nil, TypeAll, StatusAll)
}

func (c SearchCriteria) Keywords() []string    { return append([]string(nil), c.keywords...) }
func (c SearchCriteria) TaskType() TypeFilter  { return c.taskType }
func (c SearchCriteria) Status() StatusFilter  { return c.status }
func (c SearchCriteria) HasKeywords() bool     { return len(c.keywords) > 0 }
func (c SearchCriteria) HasDateFilter() bool   { return c.date != nil }
func (c SearchCriteria) HasTypeFilter() bool   { return c.taskType != TypeAll }
func (c SearchCriteria) HasStatusFilter() bool { return c.status != StatusAll }

// Date returns the date filter and whether one is set.
func (c SearchCriteria) Date() (civil.Date, bool) {
	if c.date == nil {
		return civil.Date{}, false
	}
	return *c.date, true
}

// IsEmpty reports whether no axis is active.
func (c SearchCriteria) IsEmpty() bool {
	return !c.HasKeywords() && !c.HasDateFilter() && !c.HasTypeFilter() && !c.HasStatusFilter()
}

// Describe summarises the active axes for feedback text.
func (c SearchCriteria) Describe() string {
	var parts []string
	if c.HasKeywords() {
		parts = append(parts, "with keywords: "+strings.Join(c.keywords, ", "))
	}
	if c.HasDateFilter() {
		parts = append(parts, "on date: "+FormatDate(*c.date))
	}
	if c.HasTypeFilter() {
		parts = append(parts, "type: "+c.taskType.String())
	}
	if c.HasStatusFilter() {
		parts = append(parts, "status: "+c.status.String())
	}
	if len(parts) == 0 {
		return "Searching for tasks"
	}
	return "Searching for tasks " + strings.Join(parts, ", ")
}
