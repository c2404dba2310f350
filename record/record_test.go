package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirrezaask/contacts/errors"
	"github.com/amirrezaask/contacts/fake"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 15, 30, 0, 0, time.Local)
}

func TestNew(t *testing.T) {
	t.Run("without birthday", func(t *testing.T) {
		r, err := New("Alice", "")
		require.NoError(t, err)
		assert.Equal(t, "Alice", r.Name())
		assert.Empty(t, r.Phones())
		assert.Nil(t, r.Birthday())
	})

	t.Run("with birthday", func(t *testing.T) {
		r, err := New("Alice", "2000-01-15")
		require.NoError(t, err)
		require.NotNil(t, r.Birthday())
		assert.Equal(t, "2000-01-15", r.Birthday().String())
	})

	t.Run("invalid birthday fails construction", func(t *testing.T) {
		r, err := New("Alice", "15.01.2000")
		assert.ErrorIs(t, err, errors.ErrValidation)
		assert.Nil(t, r)
	})
}

func TestPhones(t *testing.T) {
	t.Run("add then find", func(t *testing.T) {
		r, _ := New("Alice", "")
		require.NoError(t, r.AddPhone("1234567890"))
		p := r.FindPhone("1234567890")
		require.NotNil(t, p)
		assert.Equal(t, "1234567890", p.String())
	})

	t.Run("add invalid phone", func(t *testing.T) {
		r, _ := New("Alice", "")
		for i := 0; i < 20; i++ {
			assert.ErrorIs(t, r.AddPhone(fake.InvalidPhone()), errors.ErrValidation)
		}
		assert.Empty(t, r.Phones())
	})

	t.Run("duplicates are kept in insertion order", func(t *testing.T) {
		r, _ := New("Alice", "")
		require.NoError(t, r.AddPhone("1111111111"))
		require.NoError(t, r.AddPhone("2222222222"))
		require.NoError(t, r.AddPhone("1111111111"))

		var got []string
		for _, p := range r.Phones() {
			got = append(got, p.String())
		}
		assert.Equal(t, []string{"1111111111", "2222222222", "1111111111"}, got)
	})

	t.Run("remove first match only", func(t *testing.T) {
		r, _ := New("Alice", "")
		require.NoError(t, r.AddPhone("1111111111"))
		require.NoError(t, r.AddPhone("2222222222"))
		require.NoError(t, r.AddPhone("1111111111"))

		r.RemovePhone("1111111111")
		phones := r.Phones()
		require.Len(t, phones, 2)
		assert.Equal(t, "2222222222", phones[0].String())
		assert.Equal(t, "1111111111", phones[1].String())
	})

	t.Run("remove missing phone is a no-op", func(t *testing.T) {
		r, _ := New("Alice", "")
		require.NoError(t, r.AddPhone("1111111111"))
		r.RemovePhone("x")
		r.RemovePhone("9999999999")
		assert.Len(t, r.Phones(), 1)
	})

	t.Run("edit in place", func(t *testing.T) {
		r, _ := New("Alice", "")
		require.NoError(t, r.AddPhone("5555555555"))
		require.NoError(t, r.AddPhone("1234567890"))
		require.NoError(t, r.EditPhone("1234567890", "0987654321"))

		assert.Nil(t, r.FindPhone("1234567890"))
		assert.NotNil(t, r.FindPhone("0987654321"))
		assert.Equal(t, "0987654321", r.Phones()[1].String())
	})

	t.Run("edit missing phone", func(t *testing.T) {
		r, _ := New("Alice", "")
		err := r.EditPhone("0000000000", "1111111111")
		assert.ErrorIs(t, err, errors.ErrPhoneNotFound)
	})

	t.Run("edit to invalid phone keeps the old one", func(t *testing.T) {
		r, _ := New("Alice", "")
		require.NoError(t, r.AddPhone("1234567890"))
		err := r.EditPhone("1234567890", "12-34")
		assert.ErrorIs(t, err, errors.ErrValidation)
		assert.NotNil(t, r.FindPhone("1234567890"))
	})

	t.Run("phones copy does not alias the record", func(t *testing.T) {
		r, _ := New("Alice", "")
		require.NoError(t, r.AddPhone("1111111111"))
		require.NoError(t, r.AddPhone("2222222222"))
		phones := r.Phones()
		phones[0], phones[1] = phones[1], phones[0]
		assert.Equal(t, "1111111111", r.Phones()[0].String())
	})
}

func TestSetBirthday(t *testing.T) {
	r, _ := New("Alice", "")
	assert.ErrorIs(t, r.SetBirthday("2000-02-30"), errors.ErrValidation)
	assert.Nil(t, r.Birthday())

	require.NoError(t, r.SetBirthday("2000-01-15"))
	assert.ErrorIs(t, r.SetBirthday("2001-01-15"), errors.ErrAlreadySet)
	assert.Equal(t, "2000-01-15", r.Birthday().String())

	require.NoError(t, r.Birthday().Set("1999-07-07"))
	assert.Equal(t, "2000-01-15", r.Birthday().String())
	assert.Contains(t, r.String(), "birthday: 2000-01-15")

	withBirthday, _ := New("Bob", "1990-05-05")
	assert.ErrorIs(t, withBirthday.SetBirthday("1991-05-05"), errors.ErrAlreadySet)
}

func TestDaysToBirthday(t *testing.T) {
	tests := []struct {
		name     string
		birthday string
		today    time.Time
		want     int
	}{
		{"today", "2000-01-01", day(2024, time.January, 1), 0},
		{"later this year", "2000-06-15", day(2024, time.January, 1), 166},
		{"passed, next year", "2000-01-01", day(2024, time.January, 2), 365},
		{"passed in a common year", "2000-01-01", day(2023, time.January, 2), 364},
		{"tomorrow", "1990-12-31", day(2023, time.December, 30), 1},
		{"across new year", "1990-01-01", day(2023, time.December, 31), 1},
		{"leap day in leap year", "2000-02-29", day(2024, time.February, 1), 28},
		{"leap day in common year", "2000-02-29", day(2023, time.February, 1), 28},
		{"leap day passed in common year", "2000-02-29", day(2023, time.March, 2), 364},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New("Alice", tt.birthday)
			require.NoError(t, err)
			got, ok := r.DaysToBirthdayFrom(tt.today)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("no birthday", func(t *testing.T) {
		r, _ := New("Alice", "")
		_, ok := r.DaysToBirthday()
		assert.False(t, ok)
	})

	t.Run("never negative", func(t *testing.T) {
		r, _ := New("Alice", fake.Birthday())
		days, ok := r.DaysToBirthday()
		require.True(t, ok)
		assert.GreaterOrEqual(t, days, 0)
		assert.LessOrEqual(t, days, 366)
	})
}

func TestString(t *testing.T) {
	r, _ := New("Alice", "2000-01-15")
	require.NoError(t, r.AddPhone("1234567890"))
	require.NoError(t, r.AddPhone("0987654321"))
	assert.Equal(t, "Contact name: Alice, phones: 1234567890; 0987654321, birthday: 2000-01-15", r.String())

	bare, _ := New("Bob", "")
	assert.Equal(t, "Contact name: Bob, phones: ", bare.String())
}

func TestJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		r, _ := New("Alice", "2000-01-15")
		require.NoError(t, r.AddPhone("1234567890"))

		b, err := json.Marshal(r)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Alice","phones":["1234567890"],"birthday":"2000-01-15"}`, string(b))

		var decoded Record
		require.NoError(t, json.Unmarshal(b, &decoded))
		assert.Equal(t, r.String(), decoded.String())
	})

	t.Run("birthday omitted when absent", func(t *testing.T) {
		r, _ := New("Bob", "")
		b, err := json.Marshal(r)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Bob","phones":[]}`, string(b))
	})

	t.Run("invalid phone rejects the whole record", func(t *testing.T) {
		r, _ := New("Alice", "")
		err := r.UnmarshalJSON([]byte(`{"name":"Mallory","phones":["123"]}`))
		assert.ErrorIs(t, err, errors.ErrValidation)
		assert.Equal(t, "Alice", r.Name())
	})
}
