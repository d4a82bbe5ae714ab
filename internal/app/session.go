// Package app wires the parser, the task store and storage into a
// conversation session. The REPL, the TUI and one-shot exec are thin
// adapters over Session.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/josephgoksu/sejong/internal/command"
	"github.com/josephgoksu/sejong/internal/logger"
	"github.com/josephgoksu/sejong/internal/parser"
	"github.com/josephgoksu/sejong/store"
	"github.com/josephgoksu/sejong/types"
)

// Storage loads and saves the task file.
type Storage interface {
	Load() (store.LoadResult, error)
	store.Persister
}

// Response is the outcome of one input line.
type Response struct {
	// Text is the command feedback. It may be set together with Err when a
	// change was applied but could not be saved.
	Text string
	Err  error
	Exit bool
}

// Message joins the feedback and the user-facing error text.
func (r Response) Message() string {
	switch {
	case r.Err == nil:
		return r.Text
	case r.Text == "":
		return types.UserMessage(r.Err)
	default:
		return r.Text + "\n" + types.UserMessage(r.Err)
	}
}

// Session owns the task list for one run of the program. Handle may be
// called from more than one goroutine; calls are serialised.
type Session struct {
	mu      sync.Mutex
	env     *command.Env
	logger  *slog.Logger
	skipped []store.SkippedLine
	loadErr error
}

// NewSession loads the task list from storage. An unreadable file does not
// fail the session: it starts empty and the greeting reports the problem.
func NewSession(storage Storage, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	result, err := storage.Load()
	if err != nil {
		log.Error("failed to load tasks", "error", err)
	}
	if len(result.Skipped) > 0 {
		log.Warn("corrupted lines skipped during load", "count", len(result.Skipped))
	}

	return &Session{
		env: &command.Env{
			Store:     store.NewTaskList(result.Tasks...),
			Persister: storage,
			Logger:    log,
		},
		logger:  log,
		skipped: result.Skipped,
		loadErr: err,
	}
}

// Greeting is shown when a session starts.
func (s *Session) Greeting() string {
	var parts []string
	if s.loadErr != nil {
		parts = append(parts, types.MsgLoadError)
	}
	parts = append(parts, types.MsgGreeting)
	if n := len(s.skipped); n > 0 {
		word := "lines"
		if n == 1 {
			word = "line"
		}
		parts = append(parts, fmt.Sprintf("(%d unreadable %s in the task file %s skipped.)", n, word, verb(n)))
	}
	return strings.Join(parts, "\n")
}

func verb(n int) string {
	if n == 1 {
		return "was"
	}
	return "were"
}

// Skipped returns the lines dropped while loading.
func (s *Session) Skipped() []store.SkippedLine {
	return append([]store.SkippedLine(nil), s.skipped...)
}

// Size returns the number of tasks currently held.
func (s *Session) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.env.Store.Size()
}

// Handle parses and executes one line of input.
func (s *Session) Handle(line string) Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.RecordInput(line)

	cmd, err := parser.Parse(line)
	if err != nil {
		s.logger.Debug("rejected input", "error", err)
		return Response{Err: err}
	}

	text, err := cmd.Execute(s.env)
	if err != nil {
		var appErr *types.Error
		if !errors.As(err, &appErr) {
			s.logger.Error("unexpected command failure", "command", fmt.Sprintf("%T", cmd), "error", err)
		}
	}
	return Response{Text: text, Err: err, Exit: cmd.IsExit()}
}

const divider = "    ____________________________________________________________"

// Run drives a line-oriented conversation: greeting, then one response per
// input line until bye or end of input. prompt is written before each read
// when non-empty.
func (s *Session) Run(in io.Reader, out io.Writer, prompt string) error {
	if err := writeFramed(out, s.Greeting()); err != nil {
		return err
	}

	// A Reader rather than a Scanner: lines have no length limit.
	reader := bufio.NewReader(in)
	for {
		if prompt != "" {
			if _, err := io.WriteString(out, prompt); err != nil {
				return err
			}
		}
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read input: %w", readErr)
		}
		if line == "" && readErr != nil {
			break
		}

		resp := s.Handle(strings.TrimRight(line, "\r\n"))
		if err := writeFramed(out, resp.Message()); err != nil {
			return err
		}
		if resp.Exit {
			return nil
		}
		if readErr != nil {
			break
		}
	}

	// End of input behaves like bye.
	if prompt != "" {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return writeFramed(out, types.MsgFarewell)
}

func writeFramed(w io.Writer, text string) error {
	var b strings.Builder
	b.WriteString(divider + "\n")
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("     " + line + "\n")
	}
	b.WriteString(divider + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}
