package fake

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

func FirstName() string {
	return gofakeit.FirstName()
}
func LastName() string {
	return gofakeit.LastName()
}

// Name returns "First Last".
func Name() string {
	return gofakeit.Name()
}

func Phone() string {
	return gofakeit.Numerify("##########")
}

// InvalidPhone returns a value a phone field must reject: wrong length,
// separators or letters.
func InvalidPhone() string {
	return gofakeit.RandomString([]string{
		gofakeit.Numerify("#########"),
		gofakeit.Numerify("###########"),
		gofakeit.Numerify("###-###-####"),
		gofakeit.Numerify("+##########"),
		gofakeit.Numerify("#####") + gofakeit.Lexify("?????"),
		gofakeit.Numerify("##### #####"),
		"",
	})
}

func BirthdayTime() time.Time {
	return gofakeit.DateRange(
		time.Date(1930, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC),
	)
}

// Birthday returns a YYYY-MM-DD date.
func Birthday() string {
	return BirthdayTime().Format("2006-01-02")
}

func InvalidBirthday() string {
	b := BirthdayTime()
	return gofakeit.RandomString([]string{
		b.Format("02.01.2006"),
		b.Format("2006/01/02"),
		b.Format("2006-1-2") + "x",
		b.Format("2006") + "-13-01",
		b.Format("2006-01") + "-32",
		gofakeit.Word(),
	})
}
