package contrib

import (
	"github.com/dlshle/golodash/logging"
	"github.com/sirupsen/logrus"
)

var logrusLevels = map[int]logrus.Level{
	logging.TRACE: logrus.TraceLevel,
	logging.DEBUG: logrus.DebugLevel,
	logging.INFO:  logrus.InfoLevel,
	logging.WARN:  logrus.WarnLevel,
	logging.ERROR: logrus.ErrorLevel,
	// never logrus.FatalLevel, which exits
	logging.FATAL: logrus.ErrorLevel,
}

// LogrusWriter forwards log entities to a logrus logger. Context entries
// become fields next to "prefix" and "file".
type LogrusWriter struct {
	logger *logrus.Logger
}

func NewLogrusWriter(logger *logrus.Logger) logging.LogWriter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusWriter{
		logger: logger,
	}
}

func (w *LogrusWriter) Write(entity *logging.LogEntity) {
	fields := make(logrus.Fields, len(entity.Context)+2)
	for k, v := range entity.Context {
		fields[k] = v
	}
	if entity.Prefix != "" {
		fields["prefix"] = entity.Prefix
	}
	fields["file"] = entity.File
	level, ok := logrusLevels[entity.Level]
	if !ok {
		level = logrus.InfoLevel
	}
	w.logger.WithFields(fields).WithTime(entity.Timestamp).Log(level, entity.Message)
}
