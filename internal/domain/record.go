package domain

import (
	"fmt"
	"strings"
)

// Record is a single contact: an immutable name, an ordered phone list
// (duplicates allowed, insertion order preserved) and an optional birthday.
type Record struct {
	name     string
	phones   []PhoneNumber
	birthday BirthdayDate
}

// NewRecord creates a contact with no phones and no birthday.
// The name is opaque but must be non-empty.
func NewRecord(name string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationError("record.new", "Contact name must not be empty.")
	}
	return &Record{name: name}, nil
}

// Name returns the contact name the record was created with.
func (r *Record) Name() string {
	return r.name
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []PhoneNumber {
	out := make([]PhoneNumber, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the optional birthday; ok is false when none is set.
func (r *Record) Birthday() (BirthdayDate, bool) {
	return r.birthday, !r.birthday.IsZero()
}

// AddPhone validates raw and appends it to the phone list.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhoneNumber(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes every entry equal to value. It fails when no entry
// matches and leaves the list untouched in that case.
func (r *Record) RemovePhone(value string) error {
	if _, ok := r.FindPhone(value); !ok {
		return notFoundError("record.remove_phone", "Phone number %s not found.", value)
	}

	kept := r.phones[:0]
	for _, p := range r.phones {
		if !p.Equal(value) {
			kept = append(kept, p)
		}
	}
	r.phones = kept
	return nil
}

// EditPhone replaces old with new by removing all occurrences of old and
// appending new at the tail. The order shift is deliberate and callers
// depend on it; this is not an in-place replace.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	if !phoneRegex.MatchString(newRaw) {
		return validationError("record.edit_phone",
			"New phone number %s is invalid. It must contain exactly 10 digits.", newRaw)
	}

	if _, ok := r.FindPhone(oldRaw); !ok {
		return notFoundError("record.edit_phone", "Old phone number %s does not exist.", oldRaw)
	}

	if err := r.RemovePhone(oldRaw); err != nil {
		return err
	}
	return r.AddPhone(newRaw)
}

// FindPhone returns the first entry whose value equals raw.
func (r *Record) FindPhone(raw string) (PhoneNumber, bool) {
	for _, p := range r.phones {
		if p.Equal(raw) {
			return p, true
		}
	}
	return PhoneNumber{}, false
}

// AddBirthday parses raw and sets the birthday, overwriting any previous one.
func (r *Record) AddBirthday(raw string) error {
	b, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = b
	return nil
}

// String renders the record for the "all" and "phone" style listings.
func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.String()
	}

	var birthdayInfo string
	if !r.birthday.IsZero() {
		birthdayInfo = fmt.Sprintf(", birthday: %s", r.birthday)
	}
	return fmt.Sprintf("Contact name: %s, phones: %s%s", r.name, strings.Join(values, "; "), birthdayInfo)
}

// RestoreRecord rebuilds a record from already-validated parts. Persistence
// adapters use it when loading; it cannot bypass value-type validation because
// the parts only exist via NewPhoneNumber/ParseBirthday.
func RestoreRecord(name string, phones []PhoneNumber, birthday BirthdayDate) (*Record, error) {
	r, err := NewRecord(name)
	if err != nil {
		return nil, err
	}
	r.phones = append(r.phones, phones...)
	r.birthday = birthday
	return r, nil
}
