// Package record holds a single contact: a name, an ordered list of phones
// and at most one birthday.
package record

import (
	"slices"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/amirrezaask/contacts/errors"
	"github.com/amirrezaask/contacts/field"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is not safe for concurrent use.
type Record struct {
	name     *field.Name
	phones   []*field.Phone
	birthday *field.Birthday
}

// New builds a record with no phones. An empty birthday means none; it can
// still be set once later with SetBirthday.
func New(name string, birthday string) (*Record, error) {
	n, err := field.NewName(name)
	if err != nil {
		return nil, err
	}
	r := &Record{name: n}
	if birthday != "" {
		if err := r.SetBirthday(birthday); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Record) Name() string { return r.name.String() }

// Phones returns a copy of the phone list in insertion order. The elements
// are the record's own phones; Set on them is validated.
func (r *Record) Phones() []*field.Phone { return slices.Clone(r.phones) }

// Birthday returns a copy of the record's birthday, nil when none was set.
// Changing the copy does not change the record; use SetBirthday.
func (r *Record) Birthday() *field.Birthday {
	if r.birthday == nil {
		return nil
	}
	b := *r.birthday
	return &b
}

// AddPhone appends phone. Duplicates are allowed.
func (r *Record) AddPhone(phone string) error {
	p, err := field.NewPhone(phone)
	if err != nil {
		return errors.Wrap(err, "cannot add phone to %s", r.Name())
	}
	r.phones = append(r.phones, p)

	return nil
}

// RemovePhone removes the first phone equal to phone, if any.
func (r *Record) RemovePhone(phone string) {
	if i := r.indexOf(phone); i >= 0 {
		r.phones = slices.Delete(r.phones, i, i+1)
	}
}

// EditPhone replaces the first phone equal to old with replacement in place.
func (r *Record) EditPhone(old, replacement string) error {
	p := r.FindPhone(old)
	if p == nil {
		return errors.Wrap(errors.ErrPhoneNotFound, "cannot edit phone %s of %s", old, r.Name())
	}

	return p.Set(replacement)
}

// FindPhone returns the first phone equal to phone or nil.
func (r *Record) FindPhone(phone string) *field.Phone {
	if i := r.indexOf(phone); i >= 0 {
		return r.phones[i]
	}
	return nil
}

func (r *Record) indexOf(phone string) int {
	return slices.IndexFunc(r.phones, func(p *field.Phone) bool { return p.Equal(phone) })
}

func (r *Record) SetBirthday(birthday string) error {
	if r.birthday != nil {
		return errors.Wrap(errors.ErrAlreadySet, "birthday of %s is %s", r.Name(), r.birthday.String())
	}
	b, err := field.NewBirthday(birthday)
	if err != nil {
		return err
	}
	r.birthday = b

	return nil
}

// DaysToBirthday counts days from today until the next birthday. ok is false
// when no birthday is set.
func (r *Record) DaysToBirthday() (days int, ok bool) {
	return r.DaysToBirthdayFrom(time.Now())
}

// DaysToBirthdayFrom is DaysToBirthday with now's calendar date as today.
// A birthday today is 0 days away. Feb 29 falls on Mar 1 in other years.
func (r *Record) DaysToBirthdayFrom(now time.Time) (days int, ok bool) {
	if r.birthday == nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	next := time.Date(today.Year(), r.birthday.Month(), r.birthday.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, r.birthday.Month(), r.birthday.Day(), 0, 0, 0, 0, time.UTC)
	}

	return int(next.Sub(today).Hours() / 24), true
}

func (r *Record) String() string {
	phones := make([]string, 0, len(r.phones))
	for _, p := range r.phones {
		phones = append(phones, p.String())
	}
	s := "Contact name: " + r.Name() + ", phones: " + strings.Join(phones, "; ")
	if r.birthday != nil {
		s += ", birthday: " + r.birthday.String()
	}
	return s
}

type recordJSON struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

func (r *Record) MarshalJSON() ([]byte, error) {
	out := recordJSON{Name: r.Name(), Phones: make([]string, 0, len(r.phones))}
	for _, p := range r.phones {
		out.Phones = append(out.Phones, p.String())
	}
	if r.birthday != nil {
		out.Birthday = r.birthday.String()
	}
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds the record through the validating constructors and
// leaves r untouched if any part is rejected.
func (r *Record) UnmarshalJSON(b []byte) error {
	var in recordJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return errors.Wrap(err, "cannot decode record")
	}
	next, err := New(in.Name, in.Birthday)
	if err != nil {
		return err
	}
	for _, p := range in.Phones {
		if err := next.AddPhone(p); err != nil {
			return err
		}
	}
	*r = *next

	return nil
}
