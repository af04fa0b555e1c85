package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/dlshle/golodash/errors"
)

type LevelLogger struct {
	writer            LogWriter
	prefix            string
	logLevelWaterMark int
	context           map[string]string
}

const LogAllWaterMark = -1

func StdOutLevelLogger(prefix string) Logger {
	return CreateLevelLogger(NewConsoleLogWriter(os.Stdout), prefix, LogAllWaterMark)
}

func NewLevelLogger(writer io.Writer, prefix string, waterMark int) Logger {
	return CreateLevelLogger(NewConsoleLogWriter(writer), prefix, waterMark)
}

func CreateLevelLogger(entityWriter LogWriter, prefix string, loggingMark int) Logger {
	return &LevelLogger{
		writer:            entityWriter,
		prefix:            prefix,
		logLevelWaterMark: loggingMark,
		context:           make(map[string]string),
	}
}

func (l *LevelLogger) output(ctx context.Context, level int, data ...string) {
	if level < l.logLevelWaterMark {
		return
	}
	message := "nil"
	if data != nil {
		message = strings.Join(data, "")
	}
	logEntity := newLogEntity(level, l.prefix, l.prepareContext(ctx), time.Now(), message, l.getFileName())
	l.writer.Write(logEntity)
	logEntity.recycle()
}

// getFileName reports the caller of the public logging method.
func (l *LevelLogger) getFileName() string {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		file = "???"
		line = 0
	}
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		file = file[i+1:]
	}
	return file + ":" + strconv.Itoa(line)
}

func (l *LevelLogger) prepareContext(ctx context.Context) map[string]string {
	allContext := make(map[string]string, len(l.context))
	for k, v := range l.context {
		allContext[k] = v
	}
	if ctx != nil {
		if loggingCtx, ok := ctx.Value(CtxValLoggingContext).(map[string]string); ok {
			for k, v := range loggingCtx {
				allContext[k] = v
			}
		}
	}
	return allContext
}

func (l *LevelLogger) Trace(ctx context.Context, records ...string) {
	l.output(ctx, TRACE, records...)
}

func (l *LevelLogger) Debug(ctx context.Context, records ...string) {
	l.output(ctx, DEBUG, records...)
}

func (l *LevelLogger) Info(ctx context.Context, records ...string) {
	l.output(ctx, INFO, records...)
}

func (l *LevelLogger) Warn(ctx context.Context, records ...string) {
	l.output(ctx, WARN, records...)
}

func (l *LevelLogger) Error(ctx context.Context, records ...string) {
	l.output(ctx, ERROR, records...)
}

func (l *LevelLogger) TrackableError(ctx context.Context, err *errors.TrackableError, records ...string) {
	l.output(ctx, ERROR, append(records, "\n", err.Error())...)
}

func (l *LevelLogger) Fatal(ctx context.Context, records ...string) {
	l.output(ctx, FATAL, records...)
}

func (l *LevelLogger) Tracef(ctx context.Context, format string, records ...interface{}) {
	l.output(ctx, TRACE, fmt.Sprintf(format, records...))
}

func (l *LevelLogger) Debugf(ctx context.Context, format string, records ...interface{}) {
	l.output(ctx, DEBUG, fmt.Sprintf(format, records...))
}

func (l *LevelLogger) Infof(ctx context.Context, format string, records ...interface{}) {
	l.output(ctx, INFO, fmt.Sprintf(format, records...))
}

func (l *LevelLogger) Warnf(ctx context.Context, format string, records ...interface{}) {
	l.output(ctx, WARN, fmt.Sprintf(format, records...))
}

func (l *LevelLogger) Errorf(ctx context.Context, format string, records ...interface{}) {
	l.output(ctx, ERROR, fmt.Sprintf(format, records...))
}

func (l *LevelLogger) Fatalf(ctx context.Context, format string, records ...interface{}) {
	l.output(ctx, FATAL, fmt.Sprintf(format, records...))
}

func (l *LevelLogger) SetContext(k, v string) {
	l.context[k] = v
}

func (l *LevelLogger) DeleteContext(k string) {
	delete(l.context, k)
}

func (l *LevelLogger) SetWaterMark(mark int) {
	l.logLevelWaterMark = mark
}

func (l *LevelLogger) Prefix(prefix string) {
	l.prefix = prefix
}

func (l *LevelLogger) Writer(writer LogWriter) {
	l.writer = writer
}

// create new logger
func (l *LevelLogger) derive() *LevelLogger {
	context := make(map[string]string, len(l.context))
	for k, v := range l.context {
		context[k] = v
	}
	return &LevelLogger{
		writer:            l.writer,
		prefix:            l.prefix,
		logLevelWaterMark: l.logLevelWaterMark,
		context:           context,
	}
}

func (l *LevelLogger) WithPrefix(prefix string) Logger {
	subLogger := l.derive()
	subLogger.prefix = prefix
	return subLogger
}

func (l *LevelLogger) WithWriter(writer LogWriter) Logger {
	subLogger := l.derive()
	subLogger.writer = writer
	return subLogger
}

func (l *LevelLogger) WithContext(context map[string]string) Logger {
	subLogger := l.derive()
	for k, v := range context {
		subLogger.context[k] = v
	}
	return subLogger
}

func (l *LevelLogger) WithWaterMark(mark int) Logger {
	subLogger := l.derive()
	subLogger.logLevelWaterMark = mark
	return subLogger
}
