package quiet

import "logpkg"

type leaky struct{ p *int }

// Without -funcs the analyzer stays silent even on unsafe arguments.
func emit(l leaky) {
	logpkg.Emit("quiet", "l", l)
}
