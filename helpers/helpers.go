package helpers

import (
	"reflect"
	"time"
)

// NilPanic panics with panicMessage if v is nil (nil interface, pointer, slice, map, chan or func); otherwise returns v.
//
// Parameters: v — required dependency; panicMessage — panic value.
//
// Returns: v unchanged when non-nil.
//
// Called from constructors in service, handlers and adapters when validating required dependencies at startup.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// StrPanic panics with panicMessage if p is empty; otherwise returns p.
func StrPanic(p string, panicMessage string) string {
	if p == "" {
		panic(panicMessage)
	}
	return p
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// TestNow returns a fixed time (2026-02-11 12:00:00 UTC) for deterministic tests of bindings and publications.
func TestNow() time.Time {
	return time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
}
