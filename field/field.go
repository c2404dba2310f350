// Package field holds validated single-value cells. A Field can only be
// created through its kind's constructor and every later Set re-runs the same
// validation, so a constructed field never holds a rejected value.
package field

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/amirrezaask/contacts/errors"
	"github.com/amirrezaask/contacts/validate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// kind pairs a field name with how raw input is checked and converted.
type kind[T any] struct {
	name  string
	check validate.Predicate
	parse func(string) (T, error)
}

type Field[T any] struct {
	kind  *kind[T]
	raw   string
	value T
}

func newField[T any](k *kind[T], raw string) (Field[T], error) {
	f := Field[T]{kind: k}
	if err := f.Set(raw); err != nil {
		return Field[T]{}, err
	}

	return f, nil
}

// Set validates raw and replaces the stored value. On rejection the previous
// value is kept.
func (f *Field[T]) Set(raw string) error {
	if f.kind == nil {
		return errors.Wrap(errors.ErrInvalidArgument, "field has no kind, construct it with its New function")
	}
	if err := f.kind.check(raw); err != nil {
		return errors.Validation(f.kind.name, raw, err)
	}
	v, err := f.kind.parse(raw)
	if err != nil {
		return errors.Validation(f.kind.name, raw, err)
	}
	f.raw = raw
	f.value = v

	return nil
}

func (f Field[T]) Value() T { return f.value }

func (f Field[T]) String() string { return f.raw }

// Equal compares by string form.
func (f Field[T]) Equal(s string) bool { return f.raw == s }

func (f Field[T]) IsValid(raw string) bool {
	if f.kind == nil {
		return false
	}
	return f.kind.check(raw) == nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.raw)
}

func (f *Field[T]) unmarshal(k *kind[T], b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return errors.Wrap(err, "%s must be a json string", k.name)
	}
	if f.kind == nil {
		next := Field[T]{kind: k}
		if err := next.Set(raw); err != nil {
			return err
		}
		*f = next
		return nil
	}

	return f.Set(raw)
}

func identity(s string) (string, error) { return s, nil }
