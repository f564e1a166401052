package clog

import (
	"io"
	"os"

	"github.com/apex/log"
)

var clogger = newDefaultLogger()

// newDefaultLogger also installs its handler as the apex/log default, so package level
// log.Infof calls share the output and the global level with the context loggers.
func newDefaultLogger() *ContextLogger {
	l := NewContextLogger(os.Stdout)
	for _, ctx := range []string{HTTPCtx, IntakeCtx, FeaturesCtx, RecommendCtx} {
		l.AddLoggingContext(ctx)
	}

	log.SetHandler(l.handler)
	log.SetLevel(l.GlobalLogger.Level)

	return l
}

// Contexts lists the global context followed by every registered context.
func Contexts() []string {
	return []string{GlobalLoggerCtx, HTTPCtx, IntakeCtx, FeaturesCtx, RecommendCtx}
}

func SetLevel(ctx string, level log.Level) {
	clogger.SetLevel(ctx, level)
	if ctx == GlobalLoggerCtx {
		log.SetLevel(level)
	}
}

func SetLevelFromString(ctx, s string) error {
	level, err := log.ParseLevel(s)
	if err != nil {
		return err
	}

	SetLevel(ctx, level)

	return nil
}

func SetGlobalLoggerLevelFromString(s string) error {
	return SetLevelFromString(GlobalLoggerCtx, s)
}

// SetOutput redirects the context loggers and the apex/log default to w.
func SetOutput(w io.WriteCloser) {
	clogger.SetOutput(w)
}

func UsingCtx(ctx string) *log.Entry {
	return clogger.UsingCtx(ctx)
}

func Global() *log.Entry {
	return clogger.Global()
}
