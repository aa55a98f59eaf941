package assert

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

// Equal errors if actual is not equal to expected.  Integers of different
// (integral) types are compared by value.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) || intEqual(expected, actual) {
		return
	}

	t.Errorf("expected: %v, actual: %v", expected, actual)
	fail(t, msg)
}

// NotEqual errors if actual is equal to expected.
func NotEqual(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if !reflect.DeepEqual(expected, actual) && !intEqual(expected, actual) {
		return
	}

	t.Errorf("unexpected: %v", actual)
	fail(t, msg)
}

// True errors if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		return
	}

	t.Errorf("condition is false")
	fail(t, msg)
}

// False errors if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		return
	}

	t.Errorf("condition is true")
	fail(t, msg)
}

// NoError errors if err is not nil.
func NoError(t *testing.T, err error, msg ...any) {
	t.Helper()
	//
	if err == nil {
		return
	}

	t.Errorf("unexpected error: %v", err)
	fail(t, msg)
}

// Error errors if err is nil.
func Error(t *testing.T, err error, msg ...any) {
	t.Helper()
	//
	if err != nil {
		return
	}

	t.Errorf("expected an error")
	fail(t, msg)
}

// Panics errors unless calling fn panics.
func Panics(t *testing.T, fn func(), msg ...any) {
	t.Helper()
	//
	if panicked(fn) {
		return
	}

	t.Errorf("function did not panic")
	fail(t, msg)
}

func panicked(fn func()) (result bool) {
	defer func() {
		if r := recover(); r != nil {
			result = true
		}
	}()
	//
	fn()
	//
	return false
}

func fail(t *testing.T, msg []any) {
	t.Helper()
	//
	if len(msg) != 0 {
		if format, ok := msg[0].(string); ok {
			t.Errorf(format, msg[1:]...)
		} else {
			t.Errorf("%s", fmt.Sprint(msg...))
		}
	}

	t.FailNow()
}

// intEqual returns whether expected and actual are both integers and whether they are equal
// if that is the case.
func intEqual(expected, actual any) bool {
	a, aInt64 := asInt64(expected)
	b, bInt64 := asInt64(actual)

	if aInt64 != bInt64 {
		return false
	}

	if aInt64 {
		return a == b
	}

	x, aUint64 := asUint64(expected)
	y, bUint64 := asUint64(actual)

	if !aUint64 || !bUint64 {
		return false
	}

	return x == y
}

func asUint64(x any) (uint64, bool) {
	switch x := x.(type) {
	case uint64:
		return x, true
	case uint:
		return uint64(x), true
	}

	return 0, false
}

// asInt64 tries to convert x to an int64 and specifies if the conversion was successful or
// if x only can be expressed as a uint64
func asInt64(x any) (int64, bool) {
	if y, ok := asUint64(x); ok && y > math.MaxInt64 {
		return 0, false
	}

	switch x := x.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	}

	return 0, false
}
