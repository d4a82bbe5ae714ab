/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

import (
	"errors"
	"strings"
)

// ErrorKind classifies a user-facing failure.
type ErrorKind int

const (
	// KindParse covers malformed keywords and arguments.
	KindParse ErrorKind = iota + 1
	// KindValidation covers empty required fields, marker ordering and enum values.
	KindValidation
	// KindIndex covers task numbers outside the current list.
	KindIndex
	// KindIO covers an unreadable or unwritable data file.
	KindIO
	// KindUnknownCommand is returned when no command keyword matched.
	KindUnknownCommand
)

func (k ErrorKind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindValidation:
		return "validation"
	case KindIndex:
		return "index"
	case KindIO:
		return "io"
	case KindUnknownCommand:
		return "unknown-command"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by the parser, the store and the
// storage codec. Message is always safe to show to the user.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Kind == KindIO {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by kind and message. A zero Kind or an empty
// Message on the target acts as a wildcard, so both ErrIndex and
// ErrInvalidTaskNumber can be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != 0 && t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// Kind sentinels.
var (
	ErrParse          = &Error{Kind: KindParse}
	ErrValidation     = &Error{Kind: KindValidation}
	ErrIndex          = &Error{Kind: KindIndex}
	ErrIO             = &Error{Kind: KindIO}
	ErrUnknownCommand = &Error{Kind: KindUnknownCommand}
)

// Message sentinels, independent of kind.
var (
	ErrInvalidTaskNumber = &Error{Message: MsgInvalidTaskNumber}
	ErrDuplicateTask     = &Error{Message: MsgDuplicateTask}
)

// NewParseError returns a KindParse error carrying msg.
func NewParseError(msg string) *Error {
	return &Error{Kind: KindParse, Message: msg}
}

// NewValidationError returns a KindValidation error carrying msg.
func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NewIndexError returns the canonical invalid task number error.
func NewIndexError() *Error {
	return &Error{Kind: KindIndex, Message: MsgInvalidTaskNumber}
}

// NewIOError wraps a filesystem failure.
func NewIOError(msg string, err error) *Error {
	return &Error{Kind: KindIO, Message: msg, Err: err}
}

// NewUnknownCommandError returns the error for unmatched input.
func NewUnknownCommandError() *Error {
	return &Error{Kind: KindUnknownCommand, Message: MsgUnknownCommand}
}

// UserMessage flattens err into the text shown to the user. Joined errors
// are rendered one per line.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var lines []string
		for _, e := range joined.Unwrap() {
			if msg := UserMessage(e); msg != "" {
				lines = append(lines, msg)
			}
		}
		return strings.Join(lines, "\n")
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Error()
	}
	return err.Error()
}
