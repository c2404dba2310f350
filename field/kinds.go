package field

import (
	"time"

	"github.com/amirrezaask/contacts/validate"
)

// BirthdayLayout is the only accepted birthday format (YYYY-MM-DD).
const BirthdayLayout = "2006-01-02"

var (
	nameKind = &kind[string]{
		name:  "name",
		check: validate.Any(),
		parse: identity,
	}
	phoneKind = &kind[string]{
		name:  "phone",
		check: validate.All(validate.Len(10), validate.Digits()),
		parse: identity,
	}
	birthdayKind = &kind[time.Time]{
		name:  "birthday",
		check: validate.Layout(BirthdayLayout),
		parse: func(s string) (time.Time, error) {
			return time.Parse(BirthdayLayout, s)
		},
	}
)

type Name struct{ Field[string] }

func NewName(raw string) (*Name, error) {
	f, err := newField(nameKind, raw)
	if err != nil {
		return nil, err
	}
	return &Name{f}, nil
}

func (n *Name) UnmarshalJSON(b []byte) error { return n.unmarshal(nameKind, b) }

// Phone is exactly ten ASCII digits, stored as given.
type Phone struct{ Field[string] }

func NewPhone(raw string) (*Phone, error) {
	f, err := newField(phoneKind, raw)
	if err != nil {
		return nil, err
	}
	return &Phone{f}, nil
}

func (p *Phone) UnmarshalJSON(b []byte) error { return p.unmarshal(phoneKind, b) }

type Birthday struct{ Field[time.Time] }

func NewBirthday(raw string) (*Birthday, error) {
	f, err := newField(birthdayKind, raw)
	if err != nil {
		return nil, err
	}
	return &Birthday{f}, nil
}

func (b *Birthday) UnmarshalJSON(data []byte) error { return b.unmarshal(birthdayKind, data) }

func (b *Birthday) Month() time.Month { return b.value.Month() }
func (b *Birthday) Day() int          { return b.value.Day() }
