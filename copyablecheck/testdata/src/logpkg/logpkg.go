// Package logpkg is a minimal deferred logger used by the analyzer tests.
package logpkg

func Emit(msg string, keyvals ...any) {}

type Logger struct{}

func (Logger) Info(msg string, keyvals ...any)  {}
func (Logger) Debug(msg string, keyvals ...any) {}

type Sink interface {
	Send(msg string, keyvals ...any)
}
