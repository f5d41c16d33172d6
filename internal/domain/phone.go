package domain

import (
	"encoding/json"
	"regexp"
)

// phoneRegex validates the national 10-digit phone format.
var phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)

// PhoneNumber is a validated phone number: exactly 10 decimal digits.
// The zero value is not valid; construct via NewPhoneNumber.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber validates raw and returns it as a PhoneNumber.
// No trimming is applied: whitespace makes the input invalid.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if !phoneRegex.MatchString(raw) {
		return PhoneNumber{}, validationError("phone.new", "Phone number must contain exactly 10 digits.")
	}
	return PhoneNumber{value: raw}, nil
}

// String returns the digits as entered.
func (p PhoneNumber) String() string {
	return p.value
}

// Equal reports whether the stored value matches raw exactly.
func (p PhoneNumber) Equal(raw string) bool {
	return p.value == raw
}

// IsZero reports whether p is the zero (unconstructed) value.
func (p PhoneNumber) IsZero() bool {
	return p.value == ""
}

func (p PhoneNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

// UnmarshalJSON re-validates on decode so a stored book cannot smuggle in an
// invalid number.
func (p *PhoneNumber) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	parsed, err := NewPhoneNumber(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
