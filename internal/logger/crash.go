// Package logger builds the application logger and handles crash recovery.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

const (
	// CrashLogDir is the directory for crash logs relative to the data directory
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is the maximum number of crash logs to keep
	MaxCrashLogs = 10

	recentInputLimit = 5
	inputMaxLen      = 500
)

// crashContext is what a crash report knows about the running session.
type crashContext struct {
	mu       sync.RWMutex
	fs       afero.Fs
	basePath string
	dataFile string
	command  string
	version  string
	inputs   []string // oldest first
}

func newCrashContext() *crashContext {
	return &crashContext{fs: afero.NewOsFs()}
}

var crashCtx = newCrashContext()

// SetBasePath sets the directory crash logs are written under.
func SetBasePath(path string) {
	crashCtx.mu.Lock()
	defer crashCtx.mu.Unlock()
	crashCtx.basePath = path
}

// SetDataFile records the task file in use.
func SetDataFile(path string) {
	crashCtx.mu.Lock()
	defer crashCtx.mu.Unlock()
	crashCtx.dataFile = path
}

// SetVersion sets the application version for crash logs.
func SetVersion(version string) {
	crashCtx.mu.Lock()
	defer crashCtx.mu.Unlock()
	crashCtx.version = version
}

// SetCommand records the cobra command being executed.
func SetCommand(cmd string) {
	crashCtx.mu.Lock()
	defer crashCtx.mu.Unlock()
	crashCtx.command = cmd
}

// RecordInput remembers a command line typed in a session. Only the last
// few lines are kept.
func RecordInput(line string) {
	crashCtx.mu.Lock()
	defer crashCtx.mu.Unlock()

	crashCtx.inputs = append(crashCtx.inputs, truncateForLog(strings.TrimSpace(line), inputMaxLen))
	if n := len(crashCtx.inputs); n > recentInputLimit {
		crashCtx.inputs = append([]string(nil), crashCtx.inputs[n-recentInputLimit:]...)
	}
}

func truncateForLog(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}

// CrashReport is the content of one crash log.
type CrashReport struct {
	Timestamp   time.Time
	Version     string
	Command     string
	DataFile    string
	PanicValue  string
	StackTrace  string
	RecentInput []string
	GoVersion   string
	OS          string
	Arch        string
}

// HandlePanic recovers a panic, writes a crash log and exits with status 1.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	r := recover()
	if r == nil {
		return
	}

	report := newCrashReport(r)
	path, err := writeCrashReport(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n[CRASH] Failed to write crash log: %v\n", err)
		fmt.Fprintf(os.Stderr, "[CRASH] Panic: %v\n%s\n", r, report.StackTrace)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "╭──────────────────────────────────────────────────────╮\n")
	fmt.Fprintf(os.Stderr, "│ 🔴 Sejong encountered an unexpected error           │\n")
	fmt.Fprintf(os.Stderr, "╰──────────────────────────────────────────────────────╯\n")
	fmt.Fprintf(os.Stderr, "\n")
	if err == nil {
		fmt.Fprintf(os.Stderr, "A crash log has been saved to:\n  %s\n\n", path)
	}
	if report.DataFile != "" {
		fmt.Fprintf(os.Stderr, "Tasks saved before the crash are in %s.\n\n", report.DataFile)
	}
	os.Exit(1)
}

func newCrashReport(panicValue any) CrashReport {
	crashCtx.mu.RLock()
	defer crashCtx.mu.RUnlock()

	return CrashReport{
		Timestamp:   time.Now(),
		Version:     crashCtx.version,
		Command:     crashCtx.command,
		DataFile:    crashCtx.dataFile,
		PanicValue:  fmt.Sprintf("%v", panicValue),
		StackTrace:  string(debug.Stack()),
		RecentInput: append([]string(nil), crashCtx.inputs...),
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
	}
}

// writeCrashReport stores report and prunes old logs. It returns the path
// written.
func writeCrashReport(report CrashReport) (string, error) {
	fs := crashFs()
	dir := CrashDir()

	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}

	path := crashLogPath(report.Timestamp)
	if err := afero.WriteFile(fs, path, []byte(formatCrashReport(report)), 0o644); err != nil {
		return "", fmt.Errorf("write crash log: %w", err)
	}

	if err := pruneCrashLogs(fs, dir); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to clean old crash logs: %v\n", err)
	}
	return path, nil
}

func crashFs() afero.Fs {
	crashCtx.mu.RLock()
	defer crashCtx.mu.RUnlock()
	return crashCtx.fs
}

// CrashDir returns the directory crash logs are written to.
func CrashDir() string {
	crashCtx.mu.RLock()
	basePath := crashCtx.basePath
	crashCtx.mu.RUnlock()

	if basePath == "" {
		// Same directory as the default task file
		basePath = "data"
	}
	return filepath.Join(basePath, CrashLogDir)
}

func crashLogPath(t time.Time) string {
	return filepath.Join(CrashDir(), fmt.Sprintf("crash_%s.log", t.Format("20060102_150405")))
}

func formatCrashReport(r CrashReport) string {
	rule := strings.Repeat("-", 80)
	var sb strings.Builder

	section := func(title string) {
		sb.WriteString("\n" + rule + "\n" + title + "\n" + rule + "\n")
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString("SEJONG CRASH LOG\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	fmt.Fprintf(&sb, "Timestamp: %s\n", r.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&sb, "Version:   %s\n", r.Version)
	fmt.Fprintf(&sb, "Command:   %s\n", r.Command)
	fmt.Fprintf(&sb, "Task file: %s\n", r.DataFile)
	fmt.Fprintf(&sb, "Go:        %s (%s/%s)\n", r.GoVersion, r.OS, r.Arch)

	section("PANIC VALUE")
	sb.WriteString(r.PanicValue + "\n")

	section("STACK TRACE")
	sb.WriteString(r.StackTrace)

	if len(r.RecentInput) > 0 {
		section("RECENT INPUT (oldest first)")
		for _, line := range r.RecentInput {
			sb.WriteString("> " + line + "\n")
		}
	}

	return sb.String()
}

// pruneCrashLogs keeps the MaxCrashLogs newest crash logs in dir. Names
// embed the timestamp, so name order is age order.
func pruneCrashLogs(fs afero.Fs, dir string) error {
	logs, err := crashLogNames(fs, dir)
	if err != nil || len(logs) <= MaxCrashLogs {
		return err
	}
	for _, name := range logs[:len(logs)-MaxCrashLogs] {
		if err := fs.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", name, err)
		}
	}
	return nil
}

func crashLogNames(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "crash_") && strings.HasSuffix(e.Name(), ".log") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// ListCrashLogs returns the paths of the stored crash logs, oldest first.
func ListCrashLogs() ([]string, error) {
	dir := CrashDir()
	names, err := crashLogNames(crashFs(), dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}
