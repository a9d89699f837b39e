package report

import (
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Reporter receives leveled, user-facing messages. Message content is
// passed through unmodified; each level maps to a fixed display color.
type Reporter interface {
	Error(msg string)
	Warn(msg string)
	Info(msg string)
	Success(msg string)
}

// Console writes colored messages to the configured streams: error and
// warn go to Err, info and success go to Out.
type Console struct {
	// Out and Err can be set for testing; default to os.Stdout/os.Stderr.
	Out io.Writer
	Err io.Writer
}

var (
	errColor     = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
)

func (c *Console) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *Console) err() io.Writer {
	if c.Err != nil {
		return c.Err
	}
	return os.Stderr
}

// Error writes msg in red to the error stream.
func (c *Console) Error(msg string) { errColor.Fprintln(c.err(), msg) }

// Warn writes msg in yellow to the error stream.
func (c *Console) Warn(msg string) { warnColor.Fprintln(c.err(), msg) }

// Info writes msg uncolored to the output stream.
func (c *Console) Info(msg string) { io.WriteString(c.out(), msg+"\n") }

// Success writes msg in green to the output stream.
func (c *Console) Success(msg string) { successColor.Fprintln(c.out(), msg) }

// Level identifies the severity of a recorded message.
type Level string

// Recorded severity levels.
const (
	LevelError   Level = "error"
	LevelWarn    Level = "warn"
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
)

// Entry is a single message captured by a Recorder.
type Entry struct {
	Level   Level
	Message string
}

// Recorder captures messages instead of printing them. Safe for
// concurrent use; fan-out pipeline steps report from separate goroutines.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) record(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg})
}

func (r *Recorder) Error(msg string)   { r.record(LevelError, msg) }
func (r *Recorder) Warn(msg string)    { r.record(LevelWarn, msg) }
func (r *Recorder) Info(msg string)    { r.record(LevelInfo, msg) }
func (r *Recorder) Success(msg string) { r.record(LevelSuccess, msg) }

// Entries returns a copy of the captured messages in arrival order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the captured messages for the given level.
func (r *Recorder) Messages(level Level) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}
