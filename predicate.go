package copyable

import "reflect"

// Predicate is a boolean classification over a type. Predicates are pure:
// the same type always yields the same answer.
type Predicate func(reflect.Type) bool

// And returns a predicate that is true when every operand is true for the
// queried type. With no operands the result is true. Evaluation stops at the
// first false operand, so later operands are never invoked and may assume
// whatever shape an earlier operand established.
func And(preds ...Predicate) Predicate {
	return func(t reflect.Type) bool {
		for _, p := range preds {
			if !p(t) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate that is true when at least one operand is true for
// the queried type. With no operands the result is false. Evaluation stops at
// the first true operand.
func Or(preds ...Predicate) Predicate {
	return func(t reflect.Type) bool {
		for _, p := range preds {
			if p(t) {
				return true
			}
		}
		return false
	}
}

// Not returns the complement of p.
func Not(p Predicate) Predicate {
	return func(t reflect.Type) bool {
		return !p(t)
	}
}

// HasMethod returns a predicate reporting whether the queried type, or a
// pointer to it, declares a method with the given name. Only presence counts;
// the signature does not matter. This is the member-detection primitive the
// tag check is built on.
func HasMethod(name string) Predicate {
	return func(t reflect.Type) bool {
		if t == nil {
			return false
		}
		if _, ok := t.MethodByName(name); ok {
			return true
		}
		if t.Kind() != reflect.Pointer {
			if _, ok := reflect.PointerTo(t).MethodByName(name); ok {
				return true
			}
		}
		return false
	}
}
