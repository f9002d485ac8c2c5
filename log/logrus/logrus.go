package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/paywire"
)

var _ paywire.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New wraps l, tagging every entry with component=paywire.
func New(l *logrus.Logger) LogrusLogger {
	return LogrusLogger{E: l.WithField("component", "paywire")}
}

func (l LogrusLogger) Debug(msg string, f paywire.Fields) { l.with(f).Debug(msg) }
func (l LogrusLogger) Info(msg string, f paywire.Fields)  { l.with(f).Info(msg) }
func (l LogrusLogger) Warn(msg string, f paywire.Fields)  { l.with(f).Warn(msg) }
func (l LogrusLogger) Error(msg string, f paywire.Fields) { l.with(f).Error(msg) }

func (l LogrusLogger) with(f paywire.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	return l.E.WithFields(logrus.Fields(f))
}
