package trusted

import "logpkg"

// Clock mimics a foreign type whose pointer field references shared immutable
// data; the test trusts it by name.
type Clock struct {
	wall uint64
	loc  *int
}

func emit(c Clock) {
	logpkg.Emit("ok", "clock", c)
	logpkg.Emit("ok", "clocks", []Clock{c})
	logpkg.Emit("bad", "ptr", &c) // want `argument type \*Clock is not safe to copy`
}
