package copyable

import "reflect"

// Loggable is the marker a type declares to assert "instances of me are safe
// to shallow-copy and format later". The method never runs and does nothing;
// only its presence is inspected. Implementing the interface is the
// conventional way to declare it because the declaration can then be
// compile-checked with a blank assignment.
//
// The tag applies to struct types. To classify a foreign or non-struct type
// as safe, use Register instead.
type Loggable interface {
	CopyLoggable()
}

// Is reports whether values of type t may be shallow-copied into a shared
// buffer and formatted later on another goroutine. The default for any shape
// the rules do not recognise is false: assume unsafe and format eagerly. A
// nil type is false. Is never panics, whatever t looks like.
func Is(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if safe, ok := overrideFor(t); ok {
		return safe
	}
	if v, ok := cache.Load(t); ok {
		return v.(bool)
	}
	return classify(t, make(map[reflect.Type]bool))
}

// Value reports whether v's dynamic type classifies safe to copy. A nil
// interface has no type to classify and reports false.
func Value(v any) bool {
	if v == nil {
		return false
	}
	return Is(reflect.TypeOf(v))
}

// For reports whether type T classifies safe to copy, without needing an
// instance.
func For[T any]() bool {
	return Is(reflect.TypeOf((*T)(nil)).Elem())
}
