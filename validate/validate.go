package validate

import (
	"time"
	"unicode/utf8"

	"github.com/amirrezaask/contacts/errors"
)

// Predicate checks a raw input and returns a non-nil error describing why it
// was rejected.
type Predicate func(v string) error

// Check runs every predicate in order and returns the first rejection.
func Check(v string, predicates ...Predicate) error {
	for _, pred := range predicates {
		if err := pred(v); err != nil {
			return err
		}
	}

	return nil
}

func All(predicates ...Predicate) Predicate {
	return func(v string) error {
		return Check(v, predicates...)
	}
}

// Any accepts every input.
func Any() Predicate {
	return func(string) error { return nil }
}

func Len(n int) Predicate {
	return func(v string) error {
		if l := utf8.RuneCountInString(v); l != n {
			return errors.Newf("expected length %d, have %d", n, l)
		}
		return nil
	}
}

// Digits accepts strings made only of ASCII decimal digits. The empty string
// has no non-digit and passes; pair it with Len to require a size.
func Digits() Predicate {
	return func(v string) error {
		for i, r := range v {
			if r < '0' || r > '9' {
				return errors.Newf("non-digit %q at position %d", r, i)
			}
		}
		return nil
	}
}

// Layout accepts strings that time.Parse understands with the given layout,
// which also rejects out of range months and days.
func Layout(layout string) Predicate {
	return func(v string) error {
		_, err := time.Parse(layout, v)
		return errors.Wrap(err, "expected layout %s", layout)
	}
}
