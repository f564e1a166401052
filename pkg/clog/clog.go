package clog

import (
	"io"
	"sync"

	"github.com/apex/log"
)

// Logging contexts used by the service. Each can be given its own level.
const (
	GlobalLoggerCtx = "global"
	HTTPCtx         = "http"
	IntakeCtx       = "intake"
	FeaturesCtx     = "features"
	RecommendCtx    = "recommend"
)

const ctxField = "ctx"

// ContextLogger hands out apex/log entries tagged with a context name. Contexts without
// their own logger share the global one.
type ContextLogger struct {
	GlobalLogger   *log.Logger
	ContextLoggers sync.Map
	handler        *Handler
}

func NewContextLogger(w io.WriteCloser) *ContextLogger {
	h := NewHandler(w)
	return &ContextLogger{
		GlobalLogger: &log.Logger{Handler: h, Level: log.InfoLevel},
		handler:      h,
	}
}

// AddLoggingContext gives ctx its own logger sharing the global output, so its level can
// be changed independently.
func (l *ContextLogger) AddLoggingContext(ctx string) {
	l.ContextLoggers.LoadOrStore(ctx, &log.Logger{Handler: l.handler, Level: l.GlobalLogger.Level})
}

func (l *ContextLogger) SetLevel(ctx string, level log.Level) {
	if ctx == GlobalLoggerCtx {
		l.GlobalLogger.Level = level
		return
	}

	if logger := l.getContextLogger(ctx); logger != nil {
		logger.Level = level
	}
}

func (l *ContextLogger) SetLevelFromString(ctx, s string) error {
	level, err := log.ParseLevel(s)
	if err != nil {
		return err
	}

	l.SetLevel(ctx, level)

	return nil
}

// SetOutput redirects every context to w.
func (l *ContextLogger) SetOutput(w io.WriteCloser) {
	l.handler.SetOutput(w)
}

func (l *ContextLogger) UsingCtx(ctx string) *log.Entry {
	if logger := l.getContextLogger(ctx); logger != nil {
		return logger.WithField(ctxField, ctx)
	}

	return l.GlobalLogger.WithField(ctxField, ctx)
}

func (l *ContextLogger) Global() *log.Entry {
	return l.UsingCtx(GlobalLoggerCtx)
}

func (l *ContextLogger) getContextLogger(ctx string) *log.Logger {
	logger, ok := l.ContextLoggers.Load(ctx)
	if !ok {
		return nil
	}

	clogger, _ := logger.(*log.Logger)
	return clogger
}
