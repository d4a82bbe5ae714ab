package store

import (
	"cloud.google.com/go/civil"
	"github.com/josephgoksu/sejong/models"
)

// TaskStore defines the contract for the ordered task collection.
// Indices are zero-based and follow insertion order, which is also the
// order the tasks are shown to the user and written to disk.
type TaskStore interface {
	// Add appends a task to the end of the list.
	Add(task models.Task)

	// Get returns the task at index i or an index error.
	Get(i int) (models.Task, error)

	// Delete removes and returns the task at index i.
	Delete(i int) (models.Task, error)

	// Mark sets the done flag of the task at index i. Marking a task that
	// is already done succeeds without change.
	Mark(i int) (models.Task, error)

	// Unmark clears the done flag of the task at index i.
	Unmark(i int) (models.Task, error)

	// HasDuplicate reports whether an equivalent task is already stored.
	HasDuplicate(task models.Task) bool

	// Find returns copies of the tasks matching every active axis of
	// criteria, in list order. Like Snapshot, the results do not alias the
	// store.
	Find(criteria models.SearchCriteria) []models.Task

	// FindByKeyword returns tasks whose description contains keyword,
	// ignoring case.
	FindByKeyword(keyword string) []models.Task

	// FindOnDate returns deadlines due on date and events spanning it.
	FindOnDate(date civil.Date) []models.Task

	// Size returns the number of stored tasks.
	Size() int

	// Snapshot returns a copy of the list. Mutating the returned tasks
	// does not affect the store.
	Snapshot() []models.Task
}
