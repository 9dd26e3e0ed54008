package copyable

import (
	"reflect"
	"sync"
)

// overrides holds caller-supplied classifications. An entry wins over the
// structural rules in both directions.
var overrides sync.Map // reflect.Type -> bool

// cache holds derived classifications so repeat queries are a single
// lock-free map hit.
var cache sync.Map // reflect.Type -> bool

// Register records an explicit classification for T, for types whose
// structure the rules judge wrong or cannot see. The canonical example is
// time.Time: it carries a *Location, so the rules call it unsafe, yet the
// pointee is shared and immutable, making the shallow copy sound.
//
// Registration is intended for process start-up, before logging begins. It is
// safe for concurrent use, but each call drops the derived cache so composite
// types built on top of T are reclassified.
func Register[T any](safe bool) {
	RegisterType(reflect.TypeOf((*T)(nil)).Elem(), safe)
}

// RegisterType is Register for a reflect.Type held at runtime. A nil type is
// ignored.
func RegisterType(t reflect.Type, safe bool) {
	if t == nil {
		return
	}
	overrides.Store(t, safe)
	cache.Range(func(k, _ any) bool {
		cache.Delete(k)
		return true
	})
}

func overrideFor(t reflect.Type) (bool, bool) {
	v, ok := overrides.Load(t)
	if !ok {
		return false, false
	}
	return v.(bool), true
}
