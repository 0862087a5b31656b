// internal/pkg/notify/notify.go
package notify

import "github.com/sirupsen/logrus"

// Notifier surfaces short success messages to the user. It is the
// server-side stand-in for the storefront's toast notifications.
type Notifier interface {
	Success(message string)
}

// Logger is a Notifier that emits notifications through logrus
type Logger struct {
	logger *logrus.Logger
}

// NewLogger creates a logrus-backed notifier
func NewLogger(logger *logrus.Logger) *Logger {
	return &Logger{logger: logger}
}

// Success logs a user-facing success notification
func (l *Logger) Success(message string) {
	l.logger.WithField("notification", "success").Info(message)
}

// Recorder is a Notifier that captures messages for inspection in tests
type Recorder struct {
	Messages []string
}

// Success records the message
func (r *Recorder) Success(message string) {
	r.Messages = append(r.Messages, message)
}
