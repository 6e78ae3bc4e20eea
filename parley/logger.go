package parley

import "github.com/labstack/gommon/log"

// Logger is a minimal logging interface accepted by the SDK.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// noopLogger discards all logs.
type noopLogger struct{}

func (noopLogger) Debug(string, map[string]any) {}
func (noopLogger) Info(string, map[string]any)  {}
func (noopLogger) Warn(string, map[string]any)  {}
func (noopLogger) Error(string, map[string]any) {}

// GommonLogger adapts labstack's gommon logger to the SDK interface.
type GommonLogger struct {
	l *log.Logger
}

// NewGommonLogger builds a logger with the given prefix and level.
func NewGommonLogger(prefix string, lvl log.Lvl) *GommonLogger {
	l := log.New(prefix)
	l.SetLevel(lvl)
	return &GommonLogger{l: l}
}

func (g *GommonLogger) Debug(msg string, fields map[string]any) { g.l.Debugj(jsonFields(msg, fields)) }
func (g *GommonLogger) Info(msg string, fields map[string]any)  { g.l.Infoj(jsonFields(msg, fields)) }
func (g *GommonLogger) Warn(msg string, fields map[string]any)  { g.l.Warnj(jsonFields(msg, fields)) }
func (g *GommonLogger) Error(msg string, fields map[string]any) { g.l.Errorj(jsonFields(msg, fields)) }

func jsonFields(msg string, fields map[string]any) log.JSON {
	j := log.JSON{"message": msg}
	for k, v := range fields {
		j[k] = v
	}
	return j
}
