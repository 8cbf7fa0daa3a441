package app

import (
	"encoding/json"
	"io"
	"time"
)

// Logger writes one JSON object per line. Suitable for CI logs and
// pipelines; there is no leveling knob, callers pick Info or Error.
type Logger struct {
	out io.Writer
}

type logEvent struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

func NewLogger(out io.Writer) *Logger {
	return &Logger{out: out}
}

// NewNopLogger discards everything. Used by tests and the TUI path, where
// log lines would corrupt the screen.
func NewNopLogger() *Logger {
	return &Logger{out: io.Discard}
}

func (l *Logger) Info(message string, fields map[string]any) {
	l.write("info", message, fields)
}

func (l *Logger) Error(message string, fields map[string]any) {
	l.write("error", message, fields)
}

func (l *Logger) write(level, message string, fields map[string]any) {
	evt := logEvent{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Message:   message,
		Fields:    fields,
	}
	payload, _ := json.Marshal(evt)
	payload = append(payload, '\n')
	_, _ = l.out.Write(payload)
}
