package logger

import (
	"io"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the gin context key holding the request id
const RequestIDKey = "request_id"

// Logger wraps logrus for structured logging with request context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Setup configures the process-wide logrus logger: JSON lines on stdout at the given level.
// Unknown levels fall back to info.
func Setup(level string) {
	SetupWithOutput(level, os.Stdout)
}

// SetupWithOutput is Setup with an explicit destination
func SetupWithOutput(level string, out io.Writer) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)

	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// FromGin creates a logger tagged with the request id and route of the current request
func FromGin(c *gin.Context) *Logger {
	l := New()
	if id := c.GetString(RequestIDKey); id != "" {
		l.Entry = l.Entry.WithField(RequestIDKey, id)
	}
	if c.Request != nil {
		l.Entry = l.Entry.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		})
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

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
