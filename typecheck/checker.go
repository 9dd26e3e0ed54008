// Package typecheck applies the copyable classification rules to go/types
// objects, so analyzers and code generators can make the same
// deferred-vs-eager decision at build time that the runtime classifier makes
// from reflection.
//
// The rule set mirrors the root package: basic booleans, numbers and strings
// are safe; structs are safe when trivial, when they are a two-field pair of
// safe types, or when tagged with a CopyLoggable method; slices, arrays and
// maps are safe when their element (and key) types are; everything else —
// pointers, interfaces, channels, funcs, type parameters — defaults to
// unsafe. No input type produces an error or panic.
package typecheck

import "go/types"

// Checker classifies types. The zero value applies the structural rules
// alone; New adds trusted type names, the build-time counterpart of the
// runtime registry.
type Checker struct {
	trusted map[string]bool
}

// New returns a Checker that additionally treats every fully qualified named
// type in trust (for example "time.Time") as safe regardless of structure.
func New(trust ...string) *Checker {
	c := &Checker{}
	for _, name := range trust {
		if name == "" {
			continue
		}
		if c.trusted == nil {
			c.trusted = make(map[string]bool)
		}
		c.trusted[name] = true
	}
	return c
}

// IsCopyable reports whether values of type t are safe to shallow-copy into a
// queue and format later. A nil type reports false.
func (c *Checker) IsCopyable(t types.Type) bool {
	return c.copyable(t, make(map[types.Type]bool))
}

// IsCopyable applies the structural rules with no trusted names.
func IsCopyable(t types.Type) bool {
	return (&Checker{}).IsCopyable(t)
}

// copyable resolves one type. seen holds the types on the current descent
// path; a type that reaches itself through its own element structure resolves
// to the unsafe default instead of recursing forever.
func (c *Checker) copyable(t types.Type, seen map[types.Type]bool) bool {
	if t == nil {
		return false
	}
	t = types.Unalias(t)
	if c.trustedName(t) {
		return true
	}
	if seen[t] {
		return false
	}
	seen[t] = true
	defer delete(seen, t)

	switch u := t.Underlying().(type) {
	case *types.Basic:
		// Arithmetic and string basics, including untyped constants. The
		// unsafe.Pointer basic carries neither bit and stays unsafe.
		return u.Info()&(types.IsBoolean|types.IsNumeric|types.IsString) != 0
	case *types.Struct:
		if trivial(t) {
			return true
		}
		if u.NumFields() == 2 &&
			c.copyable(u.Field(0).Type(), seen) && c.copyable(u.Field(1).Type(), seen) {
			return true
		}
		return tagged(t)
	case *types.Slice:
		return c.copyable(u.Elem(), seen)
	case *types.Array:
		return c.copyable(u.Elem(), seen)
	case *types.Map:
		return c.copyable(u.Key(), seen) && c.copyable(u.Elem(), seen)
	}
	return false
}

func (c *Checker) trustedName(t types.Type) bool {
	if len(c.trusted) == 0 {
		return false
	}
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	name := obj.Name()
	if pkg := obj.Pkg(); pkg != nil {
		name = pkg.Path() + "." + name
	}
	return c.trusted[name]
}

// trivial reports whether a shallow copy of t is the whole value. Terminates
// without a cycle guard because a struct or array cannot contain itself by
// value.
func trivial(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		return u.Info()&(types.IsBoolean|types.IsNumeric) != 0
	case *types.Array:
		return trivial(u.Elem())
	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			if !trivial(u.Field(i).Type()) {
				return false
			}
		}
		return true
	}
	return false
}

// tagged reports whether t declares the CopyLoggable marker method, on either
// receiver form. Only presence counts; the signature does not matter.
func tagged(t types.Type) bool {
	obj, _, _ := types.LookupFieldOrMethod(t, true, nil, "CopyLoggable")
	_, ok := obj.(*types.Func)
	return ok
}
