package copyable

import "reflect"

// isString matches Go's one textual string type and every named variant of it.
func isString(t reflect.Type) bool {
	return t.Kind() == reflect.String
}

// isPair matches a two-field heterogeneous struct, the pair shape.
func isPair(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.NumField() == 2
}

// isIterable reports whether range can walk t as a sequence of elements.
// Channels are deliberately absent: draining a channel later is not a copy.
func isIterable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

// isContainer matches iterable types except strings; strings get their own,
// more specific rule and must not fall into the generic container path.
var isContainer = And(isIterable, Not(isString))

func isStruct(t reflect.Type) bool {
	return t.Kind() == reflect.Struct
}

// isArithmetic matches the fundamental numeric kinds plus bool.
func isArithmetic(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// isTrivial reports whether a shallow copy of t is the whole value: no field
// or element, exported or not, can reach memory the value does not own.
// Terminates without a cycle guard because Go forbids a struct or array from
// containing itself by value.
func isTrivial(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isTrivial(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isTrivial(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}

// tagged detects the author's opt-in marker. See Loggable.
var tagged = HasMethod("CopyLoggable")

// userDefinedCopyable matches non-trivial structs whose author asserted
// safety via the tag. Trivial structs are already covered by isTrivial and
// need no tag.
var userDefinedCopyable = And(isStruct, Not(isTrivial), tagged)

// pairOfSafe reports whether both fields of a pair classify safe. Only
// reachable behind isPair, so the field accesses are well-defined.
func pairOfSafe(seen map[reflect.Type]bool) Predicate {
	return func(t reflect.Type) bool {
		return classify(t.Field(0).Type, seen) && classify(t.Field(1).Type, seen)
	}
}

// containerOfSafe reports whether every element type of a container
// classifies safe. Maps contribute both key and element. Only reachable
// behind isContainer.
func containerOfSafe(seen map[reflect.Type]bool) Predicate {
	return func(t reflect.Type) bool {
		if t.Kind() == reflect.Map && !classify(t.Key(), seen) {
			return false
		}
		return classify(t.Elem(), seen)
	}
}

// filterCopyable is the full rule set. Any one passing rule suffices; the
// composite rules sit behind their shape checks so the structural queries
// they make are always well-defined.
func filterCopyable(seen map[reflect.Type]bool) Predicate {
	return Or(
		isTrivial,
		isArithmetic,
		isString,
		And(isPair, pairOfSafe(seen)),
		And(isContainer, containerOfSafe(seen)),
		userDefinedCopyable,
	)
}

// classify resolves one type, consulting the registry, then the cache, then
// the structural rules. seen holds the types on the current descent path; a
// type that reaches itself through its own element structure (such as
// type T []T) resolves to the unsafe default instead of recursing forever.
func classify(t reflect.Type, seen map[reflect.Type]bool) bool {
	if t == nil {
		return false
	}
	if safe, ok := overrideFor(t); ok {
		return safe
	}
	if v, ok := cache.Load(t); ok {
		return v.(bool)
	}
	if seen[t] {
		return false
	}
	seen[t] = true
	safe := filterCopyable(seen)(t)
	delete(seen, t)
	cache.Store(t, safe)
	return safe
}
