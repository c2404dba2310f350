package errors

import (
	stdErr "errors"
	"fmt"
	"runtime"
)

var RuntimeFileInfo = false

var (
	ErrValidation      = stdErr.New("validation failed")
	ErrPhoneNotFound   = stdErr.New("phone not found")
	ErrAlreadySet      = stdErr.New("already set")
	ErrInvalidArgument = stdErr.New("invalid argument")
)

// ValidationError reports which field kind rejected which input.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (v *ValidationError) Error() string {
	if v.Err == nil {
		return fmt.Sprintf("invalid %s '%s'", v.Field, v.Value)
	}
	return fmt.Sprintf("invalid %s '%s': %s", v.Field, v.Value, v.Err.Error())
}

func (v *ValidationError) Is(target error) bool { return target == ErrValidation }
func (v *ValidationError) Unwrap() error        { return v.Err }

func Validation(field, value string, cause error) error {
	return &ValidationError{Field: field, Value: value, Err: cause}
}

func As(err error, target any) bool {
	return stdErr.As(err, target)
}

func Is(err, target error) bool {
	return stdErr.Is(err, target)
}
func Join(errs ...error) error {
	return stdErr.Join(errs...)
}

func New(text string) error {
	return stdErr.New(text)
}

func Newf(text string, args ...any) error {
	return fmt.Errorf(text, args...)
}

func Unwrap(err error) error {
	return stdErr.Unwrap(err)
}

func Wrap(err error, msg string, args ...any) error {
	if err == nil {
		return err
	}
	if RuntimeFileInfo {
		pc, file, line, ok := runtime.Caller(1)
		if ok {
			msg += " function=%s file=%s line=%d"
			rf := runtime.FuncForPC(pc)
			args = append(args, rf.Name(), file, line)
		}
	}

	msg += ": %w"
	args = append(args, err)

	return fmt.Errorf(msg, args...)
}
