package util

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Severity is an enum type for audit event severities
type Severity string

// INFO marks routine audit events
const INFO Severity = "info"

// WARNING marks audit events that need attention
const WARNING Severity = "warning"

// ERROR marks audit events recording a failure
const ERROR Severity = "error"

// LogContext provides the contextual fields attached to structured log
// output. Operations that share a session implement it once and pass
// themselves to the helpers below.
type LogContext interface {
	AppName() string
	SessionID() string
	LogRootDir() string
}

// BasicLogContext is a minimal LogContext for code paths that have no
// session of their own
type BasicLogContext struct {
	sessionID string
}

// AppName returns the application name
func (c *BasicLogContext) AppName() string {
	return "muninn-s5p"
}

// SessionID returns a session ID, creating one if needed
func (c *BasicLogContext) SessionID() string {
	if c.sessionID == "" {
		c.sessionID = NewSessionID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *BasicLogContext) LogRootDir() string {
	return ""
}

// NewSessionID returns a fresh identifier for correlating log output
func NewSessionID() string {
	return uuid.NewString()
}

func contextFields(context LogContext) log.Fields {
	return log.Fields{
		"app":     context.AppName(),
		"session": context.SessionID(),
	}
}

// LogDebug logs a debug message with contextual fields
func LogDebug(context LogContext, message string) {
	log.WithFields(contextFields(context)).Debug(message)
}

// LogInfo logs an informational message with contextual fields
func LogInfo(context LogContext, message string) {
	log.WithFields(contextFields(context)).Info(message)
}

// LogAlert logs a message that needs operator attention
func LogAlert(context LogContext, message string) {
	log.WithFields(contextFields(context)).Warn(message)
}

// LogSimpleErr logs an error with its message and returns the wrapped error
// for further propagation
func LogSimpleErr(context LogContext, message string, err error) error {
	log.WithFields(contextFields(context)).WithError(err).Error(message)
	return errors.Wrap(err, message)
}

// LogAuditInput describes an auditable event: who did what to whom
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity Severity
}

// LogAudit logs an auditable event with its actor/action/actee fields
func LogAudit(context LogContext, input LogAuditInput) {
	entry := log.WithFields(contextFields(context)).WithFields(log.Fields{
		"actor":  input.Actor,
		"action": input.Action,
		"actee":  input.Actee,
	})
	switch input.Severity {
	case ERROR:
		entry.Error(input.Message)
	case WARNING:
		entry.Warn(input.Message)
	default:
		entry.Info(input.Message)
	}
}

// HTTPError logs a failed request and writes the message as a plain text
// response with the given status
func HTTPError(r *http.Request, w http.ResponseWriter, context LogContext, message string, status int) {
	log.WithFields(contextFields(context)).WithFields(log.Fields{
		"method": r.Method,
		"url":    r.URL.String(),
		"status": status,
	}).Warn(message)
	http.Error(w, message, status)
}
