package models

import (
	"errors"
	"testing"

	"github.com/josephgoksu/sejong/types"
)

func TestSearchCriteria_Axes(t *testing.T) {
	date := mustDate(t, "2024-12-15")

	tests := []struct {
		name       string
		criteria   SearchCriteria
		wantEmpty  bool
		wantKw     bool
		wantDate   bool
		wantType   bool
		wantStatus bool
	}{
		{"nothing", NewSearchCriteria(nil, nil, TypeAll, StatusAll), true, false, false, false, false},
		{"keywords", KeywordCriteria("book"), false, true, false, false, false},
		{"date", NewSearchCriteria(nil, &date, TypeAll, StatusAll), false, false, true, false, false},
		{"type", NewSearchCriteria(nil, nil, TypeEvent, StatusAll), false, false, false, true, false},
		{"status", NewSearchCriteria(nil, nil, TypeAll, StatusPending), false, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.criteria
			if c.IsEmpty() != tt.wantEmpty {
				t.Errorf("IsEmpty() = %v", c.IsEmpty())
			}
			if c.HasKeywords() != tt.wantKw || c.HasDateFilter() != tt.wantDate ||
				c.HasTypeFilter() != tt.wantType || c.HasStatusFilter() != tt.wantStatus {
				t.Errorf("unexpected axes: kw=%v date=%v type=%v status=%v",
					c.HasKeywords(), c.HasDateFilter(), c.HasTypeFilter(), c.HasStatusFilter())
			}
		})
	}
}

func TestSearchCriteria_IsImmutable(t *testing.T) {
	keywords := []string{"meeting"}
	date := mustDate(t, "2024-12-15")
	c := NewSearchCriteria(keywords, &date, TypeAll, StatusAll)

	keywords[0] = "changed"
	date = mustDate(t, "2000-01-01")
	c.Keywords()[0] = "changed again"

	if got := c.Keywords()[0]; got != "meeting" {
		t.Errorf("keywords leaked mutation: %q", got)
	}
	if got, _ := c.Date(); got.String() != "2024-12-15" {
		t.Errorf("date leaked mutation: %s", got)
	}
}

func TestSearchCriteria_Describe(t *testing.T) {
	date := mustDate(t, "2024-12-15")
	c := NewSearchCriteria([]string{"team", "meeting"}, &date, TypeEvent, StatusPending)

	want := "Searching for tasks with keywords: team, meeting, on date: Dec 15 2024, type: event, status: pending"
	if got := c.Describe(); got != want {
		t.Errorf("Describe() = %q\nwant %q", got, want)
	}
}

func TestParseTypeFilter(t *testing.T) {
	for in, want := range map[string]TypeFilter{"todo": TypeTodo, "DEADLINE": TypeDeadline, "Event": TypeEvent} {
		got, err := ParseTypeFilter(in)
		if err != nil || got != want {
			t.Errorf("ParseTypeFilter(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseTypeFilter("meeting"); !errors.Is(err, &types.Error{Message: types.MsgInvalidTaskType}) {
		t.Errorf("expected invalid type error, got %v", err)
	}
}

func TestParseStatusFilter(t *testing.T) {
	for in, want := range map[string]StatusFilter{"done": StatusDone, "Pending": StatusPending} {
		got, err := ParseStatusFilter(in)
		if err != nil || got != want {
			t.Errorf("ParseStatusFilter(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseStatusFilter("all"); !errors.Is(err, &types.Error{Message: types.MsgInvalidStatus}) {
		t.Errorf("expected invalid status error, got %v", err)
	}
}

func TestFilters_Match(t *testing.T) {
	if !TypeAll.Matches(KindTodo) || !TypeEvent.Matches(KindEvent) || TypeTodo.Matches(KindDeadline) {
		t.Error("TypeFilter.Matches returned unexpected result")
	}
	if !StatusAll.Matches(true) || !StatusDone.Matches(true) || StatusPending.Matches(true) {
		t.Error("StatusFilter.Matches returned unexpected result")
	}
}
