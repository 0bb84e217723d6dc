// Package log provides the logrus.FieldLogger plumbing used throughout
// kepler-formal: loggers are constructor-injected as logrus.FieldLogger
// values, and debug verbosity is toggled globally from the CLI's --debug
// flag.
package log

import "github.com/sirupsen/logrus"

// New returns a logrus.FieldLogger configured at the given level, with a
// "component" field set so callers can tell pipeline stages apart in
// mixed output (cone extraction, conversion, SAT solve).
func New(component string, debug bool) logrus.FieldLogger {
	l := logrus.New()
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l.WithField("component", component)
}

// SetDebug raises the package-level default logger to debug level.
func SetDebug(debug bool) {
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
