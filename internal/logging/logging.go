package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/xvzc/treeheap/internal/session"
)

const (
	// scopeFieldName defines the key for the "scope" field in structured logs.
	scopeFieldName   = "scope"
	traceIDFieldName = "trace_id"
	commandFieldName = "command"
)

// NewLogger creates the base zerolog.Logger for the application. It is meant
// to be passed to components, which derive their own logger with WithScope.
// Colors are only used when out is a file such as os.Stderr.
func NewLogger(level zerolog.Level, out io.Writer) zerolog.Logger {
	_, isFile := out.(*os.File)

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    !isFile,
		TimeFormat: time.RFC3339,
		// FormatPrepare intercepts fields just before printing to turn the
		// scope into [SCOPE] and the command into "cmd;".
		FormatPrepare: func(m map[string]any) error {
			if v, ok := m[traceIDFieldName].(string); ok && v != "" {
				m[traceIDFieldName] = v
			} else {
				// Empty instead of missing, otherwise zerolog prints <nil>.
				m[traceIDFieldName] = ""
			}

			if v, ok := m[scopeFieldName].(string); ok && v != "" {
				m[scopeFieldName] = fmt.Sprintf("[%s]", v)
			} else {
				m[scopeFieldName] = "[app]"
			}

			if v, ok := m[commandFieldName].(string); ok && v != "" {
				m[commandFieldName] = fmt.Sprintf("%s;", v)
			} else {
				m[commandFieldName] = ""
			}

			return nil
		},
		// The raw fields were already folded into the parts above.
		FieldsExclude: []string{
			traceIDFieldName,
			scopeFieldName,
			commandFieldName,
		},
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			traceIDFieldName,
			scopeFieldName,
			commandFieldName,
			zerolog.MessageFieldName,
		},
	}

	return zerolog.New(consoleWriter).
		Hook(ctxHook{}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// WithScope is a helper for components (like the engine or the shell)
// to create a sub-logger with their component name.
func WithScope(logger zerolog.Logger, scope string) zerolog.Logger {
	return logger.With().Str(scopeFieldName, scope).Logger()
}

// ctxHook copies request-scoped values out of the context attached to an
// event with .Ctx(ctx).
type ctxHook struct{}

func (h ctxHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}

	if traceID, ok := session.TraceIDFrom(ctx); ok {
		e.Str(traceIDFieldName, traceID)
	}

	if command, ok := session.CommandFrom(ctx); ok {
		e.Str(commandFieldName, command)
	}
}

type joinableError interface {
	Unwrap() []error
}

// ErrorUnwrapped logs each error of an errors.Join separately.
// A plain error is logged once.
func ErrorUnwrapped(logger *zerolog.Logger, msg string, err error) {
	logUnwrapped(logger, zerolog.ErrorLevel, msg, err)
}

func WarnUnwrapped(logger *zerolog.Logger, msg string, err error) {
	logUnwrapped(logger, zerolog.WarnLevel, msg, err)
}

func logUnwrapped(logger *zerolog.Logger, level zerolog.Level, msg string, err error) {
	var joinedErrs joinableError

	if errors.As(err, &joinedErrs) {
		for _, e := range joinedErrs.Unwrap() {
			logger.WithLevel(level).Err(e).Msg(msg)
		}

		return
	}

	logger.WithLevel(level).Err(err).Msg(msg)
}
