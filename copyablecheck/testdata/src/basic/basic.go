package basic

import "logpkg"

type session struct {
	id   uint64
	conn *session
}

type request struct {
	ID   uint64
	Path string
	Tags []string
}

func (request) CopyLoggable() {}

func emitAll(lg logpkg.Logger, sink logpkg.Sink, sess *session, req request, err error) {
	logpkg.Emit("ok", "id", 42, "name", "alice", "ratio", 1.5)
	logpkg.Emit("ok", "req", req, "tags", []string{"a", "b"})
	logpkg.Emit("ok", "grid", [2][2]int{})
	logpkg.Emit("nil is fine", "v", nil)

	logpkg.Emit("bad", "sess", sess)       // want `argument type \*session is not safe to copy`
	lg.Info("bad", "err", err)             // want `argument type error is not safe to copy`
	sink.Send("bad", "ch", make(chan int)) // want `argument type chan int is not safe to copy`
	logpkg.Emit("bad", "cb", func() {})    // want `argument type func\(\) is not safe to copy`

	// Debug is not in the configured function list.
	lg.Debug("unchecked", "sess", sess)

	// Spread arguments are not visible individually.
	args := []any{"sess", sess}
	logpkg.Emit("spread", args...)
}
