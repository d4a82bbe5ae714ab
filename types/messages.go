/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

const errorPrefix = "OOPS!!! "

// User-facing error messages.
const (
	MsgUnknownCommand    = errorPrefix + "I'm sorry, but I don't know what that means :-("
	MsgInvalidTaskNumber = errorPrefix + "Please provide a valid task number."

	MsgEmptyTodoDescription = errorPrefix + "The description of a todo cannot be empty."

	MsgEmptyDeadlineDescription = errorPrefix + "The description of a deadline cannot be empty."
	MsgMissingDeadlineBy        = errorPrefix + "Please specify when the deadline is using /by."
	MsgEmptyDeadlineTime        = errorPrefix + "The deadline time cannot be empty."

	MsgEmptyEventDescription = errorPrefix + "The description of an event cannot be empty."
	MsgMissingEventTime      = errorPrefix + "Please specify the event time using /from and /to."
	MsgWrongEventOrder       = errorPrefix + "Please use /from before /to."
	MsgEmptyEventStart       = errorPrefix + "The event start time cannot be empty."
	MsgEmptyEventEnd         = errorPrefix + "The event end time cannot be empty."

	MsgEmptyFindKeyword  = errorPrefix + "Please provide a keyword to search for."
	MsgInvalidTaskType   = errorPrefix + "Invalid task type. Use: todo, deadline, or event."
	MsgInvalidStatus     = errorPrefix + "Invalid status. Use: done or pending."
	MsgEmptyDateFilter   = errorPrefix + "Please specify a date after /date."
	MsgEmptyTypeFilter   = errorPrefix + "Please specify a type after /type."
	MsgEmptyStatusFilter = errorPrefix + "Please specify a status after /status."

	MsgDuplicateTask = errorPrefix + "This task already exists in the list."

	MsgEmptyDescription = "Description cannot be empty!"
	MsgInvalidDate      = "Invalid date format! Please use yyyy-MM-dd format (e.g., 2019-12-02)"
	MsgInvalidDateRange = "Start date cannot be after end date!"

	MsgLoadError = "Error loading tasks from file."
	MsgSaveError = "Error saving tasks to file"
)

// Conversation text.
const (
	MsgGreeting = "Hello! I'm Sejong\nWhat can I do for you?"
	MsgFarewell = "Bye. Hope to see you again soon!"
)
