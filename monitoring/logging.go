package monitoring

import (
	"encoding/json"
	"io"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Component string                 `json:"component"`
	EventType string                 `json:"event_type"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

type logger struct {
	component string
	out       io.Writer
}

// NewLogger returns a Logger that writes one JSON entry per line to out.
func NewLogger(component string, out io.Writer) Logger {
	return &logger{
		component: component,
		out:       out,
	}
}

func (l *logger) Log(level LogLevel, eventType string, message string, details map[string]interface{}) {
	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     level.String(),
		Message:   message,
		Component: l.component,
		EventType: eventType,
		Details:   details,
	}

	_ = json.NewEncoder(l.out).Encode(entry)
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

type Logger interface {
	Log(level LogLevel, eventType string, message string, details map[string]interface{})
}
