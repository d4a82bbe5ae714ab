package models

import (
	"errors"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/josephgoksu/sejong/types"
)

func mustDate(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) failed: %v", s, err)
	}
	return d
}

func TestNewTodo_Validation(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     bool
	}{
		{name: "valid", description: "read book", wantErr: false},
		{name: "empty", description: "", wantErr: true},
		{name: "whitespace only", description: "   \t", wantErr: true},
		{name: "contains delimiter", description: "a | b", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTodo(tt.description, false)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTodo() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, types.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestNewEvent_DateRange(t *testing.T) {
	from := mustDate(t, "2019-12-05")
	to := mustDate(t, "2019-12-01")

	_, err := NewEvent("trip", from, to, false)
	if err == nil {
		t.Fatal("expected error when from is after to")
	}
	if err.Error() != types.MsgInvalidDateRange {
		t.Errorf("unexpected message: %q", err.Error())
	}

	same, err := NewEvent("one day", from, from, false)
	if err != nil {
		t.Fatalf("single-day event rejected: %v", err)
	}
	if !same.Covers(from) {
		t.Error("single-day event should cover its own date")
	}
}

func TestNewDeadline_RejectsZeroDate(t *testing.T) {
	if _, err := NewDeadline("return book", civil.Date{}, false); err == nil {
		t.Fatal("expected error for zero date")
	}
}

func TestTask_String(t *testing.T) {
	todo, _ := NewTodo("read book", false)
	deadline, _ := NewDeadline("return book", mustDate(t, "2019-12-02"), true)
	event, _ := NewEvent("project meeting", mustDate(t, "2019-12-01"), mustDate(t, "2019-12-05"), false)

	tests := []struct {
		task Task
		want string
	}{
		{todo, "[T][ ] read book"},
		{deadline, "[D][X] return book (by: Dec 02 2019)"},
		{event, "[E][ ] project meeting (from: Dec 01 2019 to: Dec 05 2019)"},
	}

	for _, tt := range tests {
		if got := tt.task.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTask_MarkIsIdempotent(t *testing.T) {
	todo, _ := NewTodo("read book", false)

	todo.MarkDone()
	todo.MarkDone()
	if !todo.IsDone() {
		t.Error("expected task to be done")
	}

	todo.MarkNotDone()
	if todo.IsDone() {
		t.Error("expected task to be pending")
	}
}

func TestTask_CloneIsIndependent(t *testing.T) {
	original, _ := NewDeadline("return book", mustDate(t, "2019-12-02"), false)
	clone := original.Clone()

	clone.MarkDone()
	if original.IsDone() {
		t.Error("marking the clone must not affect the original")
	}
	if clone.(*Deadline).By() != original.By() {
		t.Error("clone should keep the due date")
	}
}

func TestEvent_Covers(t *testing.T) {
	event, _ := NewEvent("conference", mustDate(t, "2024-12-14"), mustDate(t, "2024-12-16"), false)

	tests := []struct {
		date string
		want bool
	}{
		{"2024-12-13", false},
		{"2024-12-14", true},
		{"2024-12-15", true},
		{"2024-12-16", true},
		{"2024-12-17", false},
	}

	for _, tt := range tests {
		if got := event.Covers(mustDate(t, tt.date)); got != tt.want {
			t.Errorf("Covers(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2019-12-02", false},
		{"2024-02-29", false},
		{"2019-02-30", true},
		{"2019-13-01", true},
		{"02/12/2019", true},
		{"2019-12-02T10:00", true},
		{"", true},
	}

	for _, tt := range tests {
		_, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil && err.Error() != types.MsgInvalidDate {
			t.Errorf("ParseDate(%q) message = %q", tt.in, err.Error())
		}
	}
}
