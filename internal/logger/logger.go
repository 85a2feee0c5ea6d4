package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the request id and the acting user.
// Values are read by key, which works for both gin.Context and plain contexts.
func WithContext(ctx context.Context) *Logger {
	l := New()
	if ctx == nil {
		return l
	}

	if requestID, ok := ctx.Value("request_id").(string); ok && requestID != "" {
		l.Entry = l.Entry.WithField("request_id", requestID)
	}

	if email, ok := ctx.Value("email").(string); ok && email != "" {
		l.Entry = l.Entry.WithField("user", email)
	} else if username, ok := ctx.Value("username").(string); ok && username != "" {
		l.Entry = l.Entry.WithField("user", username)
	} else {
		l.Entry = l.Entry.WithField("user", "system")
	}

	return l
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches an error under the standard logrus error key
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}

// Component tags every entry with the emitting component name
func (l *Logger) Component(name string) *Logger {
	return l.WithField("component", name)
}
