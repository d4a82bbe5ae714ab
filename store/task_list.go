package store

import (
	"slices"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/josephgoksu/sejong/models"
	"github.com/josephgoksu/sejong/types"
	"golang.org/x/text/cases"
)

// TaskList implements TaskStore in memory. It is not safe for concurrent
// use; callers serialise access.
type TaskList struct {
	tasks []models.Task
}

// NewTaskList creates a TaskList holding tasks in the given order.
func NewTaskList(tasks ...models.Task) *TaskList {
	return &TaskList{tasks: append([]models.Task(nil), tasks...)}
}

var _ TaskStore = (*TaskList)(nil)

func (l *TaskList) Add(task models.Task) {
	l.tasks = append(l.tasks, task)
}

func (l *TaskList) Get(i int) (models.Task, error) {
	if i < 0 || i >= len(l.tasks) {
		return nil, types.NewIndexError()
	}
	return l.tasks[i], nil
}

func (l *TaskList) Delete(i int) (models.Task, error) {
	task, err := l.Get(i)
	if err != nil {
		return nil, err
	}
	l.tasks = slices.Delete(l.tasks, i, i+1)
	return task, nil
}

func (l *TaskList) Mark(i int) (models.Task, error) {
	task, err := l.Get(i)
	if err != nil {
		return nil, err
	}
	task.MarkDone()
	return task, nil
}

func (l *TaskList) Unmark(i int) (models.Task, error) {
	task, err := l.Get(i)
	if err != nil {
		return nil, err
	}
	task.MarkNotDone()
	return task, nil
}

func (l *TaskList) HasDuplicate(task models.Task) bool {
	for _, existing := range l.tasks {
		if IsDuplicate(task, existing) {
			return true
		}
	}
	return false
}

func (l *TaskList) Find(criteria models.SearchCriteria) []models.Task {
	return l.filter(func(t models.Task) bool { return Matches(t, criteria) })
}

func (l *TaskList) FindByKeyword(keyword string) []models.Task {
	return l.Find(models.KeywordCriteria(keyword))
}

func (l *TaskList) FindOnDate(date civil.Date) []models.Task {
	return l.Find(models.NewSearchCriteria(nil, &date, models.TypeAll, models.StatusAll))
}

func (l *TaskList) Size() int {
	return len(l.tasks)
}

func (l *TaskList) Snapshot() []models.Task {
	out := make([]models.Task, len(l.tasks))
	for i, t := range l.tasks {
		out[i] = t.Clone()
	}
	return out
}

// filter returns clones of the matching tasks, like Snapshot.
func (l *TaskList) filter(keep func(models.Task) bool) []models.Task {
	var out []models.Task
	for _, t := range l.tasks {
		if keep(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// IsDuplicate reports whether a and b describe the same task: same kind,
// descriptions equal after trimming and case folding, and equal dates.
func IsDuplicate(a, b models.Task) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	if fold(strings.TrimSpace(a.Description())) != fold(strings.TrimSpace(b.Description())) {
		return false
	}
	switch x := a.(type) {
	case *models.Deadline:
		return x.By() == b.(*models.Deadline).By()
	case *models.Event:
		y := b.(*models.Event)
		return x.From() == y.From() && x.To() == y.To()
	default:
		return true
	}
}

// Matches evaluates criteria against a single task. Axes that are not set
// always pass.
func Matches(t models.Task, criteria models.SearchCriteria) bool {
	if criteria.HasKeywords() {
		description := fold(t.Description())
		for _, kw := range criteria.Keywords() {
			if !strings.Contains(description, fold(kw)) {
				return false
			}
		}
	}
	if date, ok := criteria.Date(); ok && !onDate(t, date) {
		return false
	}
	if !criteria.TaskType().Matches(t.Kind()) {
		return false
	}
	return criteria.Status().Matches(t.IsDone())
}

func onDate(t models.Task, date civil.Date) bool {
	switch x := t.(type) {
	case *models.Deadline:
		return x.By() == date
	case *models.Event:
		return x.Covers(date)
	default:
		return false
	}
}

// fold applies Unicode case folding. A Caser holds state, so one is built
// per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
