package domain

import (
	"encoding/json"
	"regexp"
	"time"
)

// BirthdayLayout is the only accepted input/output format for birthdays.
const BirthdayLayout = "02.01.2006"

// birthdayRegex gates the literal DD.MM.YYYY shape. time.Parse alone would
// also accept "1.1.2024" for the layout above, so the width check comes first.
var birthdayRegex = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}\.[0-9]{4}$`)

// BirthdayDate is a calendar date with no time-of-day or zone semantics.
// The zero value is "no birthday"; construct via ParseBirthday.
type BirthdayDate struct {
	year  int
	month time.Month
	day   int
}

// ParseBirthday validates raw against DD.MM.YYYY and a real calendar
// (30.02 and month 13 are rejected by time.Parse).
func ParseBirthday(raw string) (BirthdayDate, error) {
	if !birthdayRegex.MatchString(raw) {
		return BirthdayDate{}, validationError("birthday.parse", "Invalid date format. Use DD.MM.YYYY")
	}

	t, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return BirthdayDate{}, validationError("birthday.parse", "Invalid date format. Use DD.MM.YYYY")
	}

	return BirthdayDate{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

// BirthdayOf builds a BirthdayDate from components already known to be valid
// (e.g. a weekend-adjusted reminder date).
func BirthdayOf(year int, month time.Month, day int) BirthdayDate {
	return BirthdayDate{year: year, month: month, day: day}
}

func (b BirthdayDate) Year() int { return b.year }

func (b BirthdayDate) Month() time.Month { return b.month }

func (b BirthdayDate) Day() int { return b.day }

// IsZero reports whether b is the "no birthday" zero value.
func (b BirthdayDate) IsZero() bool {
	return b == BirthdayDate{}
}

// Time returns the date at midnight UTC, for calendar arithmetic.
func (b BirthdayDate) Time() time.Time {
	return time.Date(b.year, b.month, b.day, 0, 0, 0, 0, time.UTC)
}

// String formats the date back to DD.MM.YYYY.
func (b BirthdayDate) String() string {
	return b.Time().Format(BirthdayLayout)
}

func (b BirthdayDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *BirthdayDate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
