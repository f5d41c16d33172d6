package domain

import (
	"strings"
	"time"
)

// upcomingWindowDays is the look-ahead for birthday reminders.
const upcomingWindowDays = 7

// AddressBook maps contact names (case-sensitive, unique) to records.
// Go maps iterate in random order, so the book keeps an insertion-order
// index next to the map; every listing walks that index.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: map[string]*Record{}}
}

// AddRecord inserts the record under its own name. Adding a name that already
// exists replaces the previous record and keeps its original position.
func (b *AddressBook) AddRecord(r *Record) {
	if r == nil {
		return
	}
	if _, exists := b.records[r.Name()]; !exists {
		b.order = append(b.order, r.Name())
	}
	b.records[r.Name()] = r
}

// Find returns the record for an exact name match.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record for name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return notFoundError("book.delete", "Record with name %s not found.", name)
	}

	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records returns the records as an insertion-ordered snapshot. Mutating the
// slice does not affect the book; the records themselves are shared.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// AllContacts renders every record's display string, one per line.
func (b *AddressBook) AllContacts() string {
	lines := make([]string, 0, len(b.order))
	for _, name := range b.order {
		lines = append(lines, b.records[name].String())
	}
	return strings.Join(lines, "\n")
}

// BirthdayReminder is one upcoming-birthday entry: the contact name and the
// date the congratulation is due (weekend birthdays shift to Monday).
type BirthdayReminder struct {
	Name string
	Date BirthdayDate
}

// UpcomingBirthdays lists contacts whose birthday falls within the next 7
// days of today (inclusive on both ends), in record iteration order.
// A birthday that lands on Saturday or Sunday is congratulated on the
// following Monday. Today's date component is used as-is; pass a midnight
// time for exact day arithmetic.
//
// A 29.02 birthday in a non-leap year normalizes to 01.03 (time.Date
// semantics), so leap-day contacts are observed on March 1st.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []BirthdayReminder {
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var upcoming []BirthdayReminder
	for _, name := range b.order {
		bd, ok := b.records[name].Birthday()
		if !ok {
			continue
		}

		next := time.Date(todayDate.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
		if next.Before(todayDate) {
			next = time.Date(todayDate.Year()+1, bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
		}

		daysUntil := int(next.Sub(todayDate).Hours() / 24)
		if daysUntil < 0 || daysUntil > upcomingWindowDays {
			continue
		}

		next = adjustForWeekend(next)
		upcoming = append(upcoming, BirthdayReminder{
			Name: name,
			Date: BirthdayOf(next.Year(), next.Month(), next.Day()),
		})
	}
	return upcoming
}

// adjustForWeekend moves Saturday/Sunday dates to the next Monday.
func adjustForWeekend(date time.Time) time.Time {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nextWeekday(date, time.Monday)
	}
	return date
}

// nextWeekday returns the next occurrence of weekday at or after start,
// wrapping across the week boundary.
func nextWeekday(start time.Time, weekday time.Weekday) time.Time {
	daysAhead := (int(weekday) - int(start.Weekday()) + 7) % 7
	return start.AddDate(0, 0, daysAhead)
}
