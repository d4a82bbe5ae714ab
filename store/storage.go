package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gofrs/flock"
	"github.com/josephgoksu/sejong/models"
	"github.com/josephgoksu/sejong/types"
	"github.com/spf13/afero"
)

const (
	// DefaultDataFile is used when no path is configured.
	DefaultDataFile = "./data/sejong.txt"

	delimiter = " | "

	tagTodo     = "T"
	tagDeadline = "D"
	tagEvent    = "E"
)

// fieldSplitter mirrors the delimiter with any whitespace around the bar.
var fieldSplitter = regexp.MustCompile(`\s\|\s`)

// Descriptions may contain the delimiter and line breaks. The bar is written
// as %7C, CR and LF as %0D and %0A, and the percent sign itself as %25 so
// decoding is unambiguous and every task stays on one line.
var (
	descriptionEscaper = strings.NewReplacer(
		"%", "%25", "|", "%7C", "\r", "%0D", "\n", "%0A",
	)
	descriptionUnescaper = strings.NewReplacer(
		"%7C", "|", "%7c", "|", "%0D", "\r", "%0d", "\r", "%0A", "\n", "%0a", "\n", "%25", "%",
	)
)

// Persister saves the full task list.
type Persister interface {
	Save(tasks []models.Task) error
}

// Storage reads and writes the flat task file. Every save rewrites the
// whole file.
type Storage struct {
	fs       afero.Fs
	filePath string
	lock     bool
	logger   *slog.Logger
}

// Option configures a Storage.
type Option func(*Storage)

// WithFs sets the filesystem. Tests use afero.NewMemMapFs().
func WithFs(fs afero.Fs) Option {
	return func(s *Storage) { s.fs = fs }
}

// WithFileLock holds an advisory lock on "<file>.lock" while saving. It only
// applies to the OS filesystem.
func WithFileLock() Option {
	return func(s *Storage) { s.lock = true }
}

// WithLogger sets the logger used to report skipped lines.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Storage) { s.logger = logger }
}

// NewStorage creates a Storage for filePath on the OS filesystem unless
// WithFs is given.
func NewStorage(filePath string, opts ...Option) *Storage {
	if filePath == "" {
		filePath = DefaultDataFile
	}
	s := &Storage{
		fs:       afero.NewOsFs(),
		filePath: filePath,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Persister = (*Storage)(nil)

// Path returns the data file path.
func (s *Storage) Path() string {
	return s.filePath
}

// SkippedLine records a line that could not be decoded during Load.
type SkippedLine struct {
	Number int
	Line   string
	Reason error
}

// LoadResult holds the decoded tasks plus the lines that were skipped.
type LoadResult struct {
	Tasks   []models.Task
	Skipped []SkippedLine
}

// Load reads every task from the data file. A missing file yields an empty
// result. Lines that fail to decode are skipped and reported in
// LoadResult.Skipped; they never abort the load.
func (s *Storage) Load() (LoadResult, error) {
	var result LoadResult

	data, err := afero.ReadFile(s.fs, s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, nil
		}
		return result, types.NewIOError(types.MsgLoadError, err)
	}

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		task, err := DecodeTask(line)
		if err != nil {
			s.logger.Warn("skipping corrupted task line", "file", s.filePath, "line", i+1, "error", err)
			result.Skipped = append(result.Skipped, SkippedLine{Number: i + 1, Line: line, Reason: err})
			continue
		}
		result.Tasks = append(result.Tasks, task)
	}

	s.logger.Debug("tasks loaded", "file", s.filePath, "count", len(result.Tasks), "skipped", len(result.Skipped))
	return result, nil
}

// Save rewrites the data file with tasks, creating the parent directory if
// needed. The content goes to a temporary file first and is renamed into
// place.
func (s *Storage) Save(tasks []models.Task) error {
	if dir := filepath.Dir(s.filePath); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return types.NewIOError(types.MsgSaveError, fmt.Errorf("create directory %s: %w", dir, err))
		}
	}

	if s.lock {
		if _, ok := s.fs.(*afero.OsFs); ok {
			flk := flock.New(s.filePath + ".lock")
			locked, err := flk.TryLock()
			if err != nil {
				return types.NewIOError(types.MsgSaveError, fmt.Errorf("lock %s: %w", s.filePath, err))
			}
			if !locked {
				return types.NewIOError(types.MsgSaveError, fmt.Errorf("%s is locked by another process", s.filePath))
			}
			defer func() { _ = flk.Unlock() }()
		}
	}

	var b strings.Builder
	for _, task := range tasks {
		b.WriteString(EncodeTask(task))
		b.WriteString("\n")
	}

	tempFilePath := s.filePath + ".tmp"
	defer func() { _ = s.fs.Remove(tempFilePath) }()

	if err := afero.WriteFile(s.fs, tempFilePath, []byte(b.String()), 0o644); err != nil {
		return types.NewIOError(types.MsgSaveError, fmt.Errorf("write %s: %w", tempFilePath, err))
	}
	if err := s.fs.Rename(tempFilePath, s.filePath); err != nil {
		return types.NewIOError(types.MsgSaveError, fmt.Errorf("rename %s to %s: %w", tempFilePath, s.filePath, err))
	}

	s.logger.Debug("tasks saved", "file", s.filePath, "count", len(tasks))
	return nil
}

// EncodeTask renders one task as a storage line without a trailing newline.
func EncodeTask(task models.Task) string {
	done := "0"
	if task.IsDone() {
		done = "1"
	}
	fields := []string{"", done, descriptionEscaper.Replace(task.Description())}

	switch t := task.(type) {
	case *models.Todo:
		fields[0] = tagTodo
	case *models.Deadline:
		fields[0] = tagDeadline
		fields = append(fields, t.By().String())
	case *models.Event:
		fields[0] = tagEvent
		fields = append(fields, t.From().String(), t.To().String())
	}
	return strings.Join(fields, delimiter)
}

// DecodeTask parses one storage line.
func DecodeTask(line string) (models.Task, error) {
	parts := fieldSplitter.Split(line, -1)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 3 {
		return nil, fmt.Errorf("expected at least 3 fields, got %d", len(parts))
	}

	var done bool
	switch parts[1] {
	case "1":
		done = true
	case "0":
	default:
		return nil, fmt.Errorf("invalid done flag %q", parts[1])
	}
	description := descriptionUnescaper.Replace(parts[2])

	switch parts[0] {
	case tagTodo:
		if len(parts) != 3 {
			return nil, fmt.Errorf("todo expects 3 fields, got %d", len(parts))
		}
		todo, err := models.NewTodo(description, done)
		if err != nil {
			return nil, err
		}
		return todo, nil
	case tagDeadline:
		if len(parts) != 4 {
			return nil, fmt.Errorf("deadline expects 4 fields, got %d", len(parts))
		}
		by, err := models.ParseDate(parts[3])
		if err != nil {
			return nil, fmt.Errorf("deadline date %q: %w", parts[3], err)
		}
		deadline, err := models.NewDeadline(description, by, done)
		if err != nil {
			return nil, err
		}
		return deadline, nil
	case tagEvent:
		if len(parts) != 5 {
			return nil, fmt.Errorf("event expects 5 fields, got %d", len(parts))
		}
		from, err := models.ParseDate(parts[3])
		if err != nil {
			return nil, fmt.Errorf("event start %q: %w", parts[3], err)
		}
		to, err := models.ParseDate(parts[4])
		if err != nil {
			return nil, fmt.Errorf("event end %q: %w", parts[4], err)
		}
		event, err := models.NewEvent(description, from, to, done)
		if err != nil {
			return nil, err
		}
		return event, nil
	default:
		return nil, fmt.Errorf("unknown task type %q", parts[0])
	}
}

