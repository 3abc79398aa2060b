package pdok

import (
	"github.com/hashicorp/go-hclog"
)

// hclogAdapter adapts an hclog.Logger to the Logger interface.
type hclogAdapter struct {
	logger hclog.Logger
}

// NewHCLogAdapter wraps an hclog.Logger so it can be passed as a client
// Logger.
func NewHCLogAdapter(logger hclog.Logger) Logger {
	return &hclogAdapter{logger: logger}
}

func (l *hclogAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fieldsToArgs(fields)...)
}

func (l *hclogAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fieldsToArgs(fields)...)
}

func (l *hclogAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fieldsToArgs(fields)...)
}

func (l *hclogAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fieldsToArgs(fields)...)
}

func fieldsToArgs(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		args = append(args, key, value)
	}

	return args
}
