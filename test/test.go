// Package test wraps *testing.T with assertions that dump both sides of a
// mismatch with spew and print the calling test's stack.
package test

import (
	"bytes"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/davecgh/go-spew/spew"

	"github.com/amirrezaask/contacts/errors"
)

var dumper = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}

type T struct {
	*testing.T
	fakery *gofakeit.Faker
}

func Test(t *testing.T) *T {
	return &T{
		T:      t,
		fakery: gofakeit.New(0),
	}
}

// Fakery is seeded per T so a failing run can be reproduced from its output.
func (t *T) Fakery() *gofakeit.Faker { return t.fakery }

func (t *T) fail(expected, have any, msgAndArgs ...any) {
	t.T.Helper()
	if len(msgAndArgs) < 1 {
		msgAndArgs = append(msgAndArgs, "Assertion failed")
	}
	if _, isString := msgAndArgs[0].(string); !isString {
		msgAndArgs[0] = fmt.Sprint(msgAndArgs[0])
	}
	var args []any
	if len(msgAndArgs) > 1 {
		args = msgAndArgs[1:]
	}
	caller := strings.Join(callerInfo(), "\n\t")

	t.T.Logf("\n\n❌ Failed Assert => %s\nexpected:\n%s\nhave:\n%s\nStack: \n\t%s\n\n",
		fmt.Sprintf(msgAndArgs[0].(string), args...), dumper.Sdump(expected), dumper.Sdump(have), caller)
	t.T.FailNow()
}

func (t *T) AreNotEqual(expected any, have any, msgAndArgs ...any) {
	t.T.Helper()
	if !ObjectsAreEqualValues(expected, have) {
		return
	}
	if len(msgAndArgs) < 1 {
		msgAndArgs = append(msgAndArgs, "Assertion failed due to both arguments are equal")
	}
	t.fail(expected, have, msgAndArgs...)
}

func (t *T) IsEmpty(obj any, msgAndArgs ...any) {
	t.T.Helper()
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Array, reflect.Slice, reflect.Map, reflect.String:
	default:
		panic(fmt.Sprintf("invalid argument to test.IsEmpty, only Array|Slice|Map|String not %s", v.Kind().String()))
	}
	if len(msgAndArgs) < 1 {
		msgAndArgs = append(msgAndArgs, "expected empty")
	}

	t.AssertEq(0, v.Len(), msgAndArgs...)
}

func ObjectsAreEqualValues(expected, actual interface{}) bool {
	if ObjectsAreEqual(expected, actual) {
		return true
	}

	expectedValue := reflect.ValueOf(expected)
	actualValue := reflect.ValueOf(actual)
	if !expectedValue.IsValid() || !actualValue.IsValid() {
		return false
	}

	expectedType := expectedValue.Type()
	actualType := actualValue.Type()
	if !expectedType.ConvertibleTo(actualType) {
		return false
	}

	if !isNumericType(expectedType) || !isNumericType(actualType) {
		return reflect.DeepEqual(
			expectedValue.Convert(actualType).Interface(), actual,
		)
	}

	// Convert the smaller numeric type to the larger one so overflow cannot
	// produce a false positive.
	if expectedType.Size() >= actualType.Size() {
		return actualValue.Convert(expectedType).Interface() == expected
	}

	return expectedValue.Convert(actualType).Interface() == actual
}

func isNumericType(t reflect.Type) bool {
	return t.Kind() >= reflect.Int && t.Kind() <= reflect.Complex128
}

func ObjectsAreEqual(expected, actual interface{}) bool {
	if expected == nil || actual == nil {
		return expected == actual
	}

	exp, ok := expected.([]byte)
	if !ok {
		return reflect.DeepEqual(expected, actual)
	}

	act, ok := actual.([]byte)
	if !ok {
		return false
	}
	if exp == nil || act == nil {
		return exp == nil && act == nil
	}
	return bytes.Equal(exp, act)
}

func (t *T) AssertWeakEq(expected any, have any, msgAndArgs ...any) {
	t.T.Helper()
	if ObjectsAreEqualValues(expected, have) {
		return
	}
	t.fail(expected, have, msgAndArgs...)
}

func (t *T) AssertEq(expected, have any, msgAndArgs ...any) {
	t.T.Helper()
	if len(msgAndArgs) < 1 {
		msgAndArgs = append(msgAndArgs, "Assertion failed due to type mismatch")
	}
	if reflect.TypeOf(expected) != reflect.TypeOf(have) {
		t.T.Logf("[%s] %s: expected('%T') have('%T')", t.T.Name(), fmt.Sprint(msgAndArgs[0]), expected, have)
	}
	t.AssertWeakEq(expected, have, msgAndArgs...)
}

func (t *T) HasNoError(err error, msgAndArgs ...any) {
	t.T.Helper()
	if len(msgAndArgs) < 1 {
		msgAndArgs = append(msgAndArgs, "Expected error to be nil")
	}
	if err != nil {
		t.fail(nil, err.Error(), msgAndArgs...)
	}
}

func (t *T) HasError(err error, msgAndArgs ...any) {
	t.T.Helper()
	if len(msgAndArgs) < 1 {
		msgAndArgs = append(msgAndArgs, "Expected error to not be nil")
	}
	if err == nil {
		t.fail("an error", nil, msgAndArgs...)
	}
}

// ErrorIs fails unless errors.Is(err, target).
func (t *T) ErrorIs(err, target error, msgAndArgs ...any) {
	t.T.Helper()
	if len(msgAndArgs) < 1 {
		msgAndArgs = append(msgAndArgs, "Expected error chain to contain target")
	}
	if !errors.Is(err, target) {
		t.fail(target, err, msgAndArgs...)
	}
}

func (t *T) IsNil(obj any, msgAndArgs ...any) {
	t.T.Helper()
	if len(msgAndArgs) < 1 {
		msgAndArgs = append(msgAndArgs, "Expected nil")
	}
	if obj == nil {
		return
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		if v.IsNil() {
			return
		}
	}
	t.fail(nil, obj, msgAndArgs...)
}

func (t *T) IsFalse(b bool, msgAndArgs ...any) {
	t.T.Helper()
	t.AssertEq(false, b, msgAndArgs...)
}
func (t *T) IsTrue(b bool, msgAndArgs ...any) {
	t.T.Helper()
	t.AssertEq(true, b, msgAndArgs...)
}

func callerInfo() []string {
	isTest := func(name, prefix string) bool {
		if !strings.HasPrefix(name, prefix) {
			return false
		}
		if len(name) == len(prefix) { // "Test" is ok
			return true
		}
		r, _ := utf8.DecodeRuneInString(name[len(prefix):])
		return !unicode.IsLower(r)
	}

	var pc uintptr
	var ok bool
	var file string
	var line int
	var name string

	callers := []string{}
	for i := 0; ; i++ {
		pc, file, line, ok = runtime.Caller(i)
		if !ok {
			break
		}

		if file == "<autogenerated>" {
			break
		}

		f := runtime.FuncForPC(pc)
		if f == nil {
			break
		}
		name = f.Name()

		// Subtests are called directly by tRunner, stop there.
		if name == "testing.tRunner" {
			break
		}

		parts := strings.Split(file, "/")
		if len(parts) > 1 {
			dir := parts[len(parts)-2]
			if dir != "test" {
				callers = append(callers, fmt.Sprintf("%s:%d", file, line))
			}
		}

		segments := strings.Split(name, ".")
		name = segments[len(segments)-1]
		if isTest(name, "Test") ||
			isTest(name, "Benchmark") ||
			isTest(name, "Example") {
			break
		}
	}

	return callers
}
