package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/vylia99/contactbook/internal/domain"
)

func fixedNow(t *testing.T, raw string) func() time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.BirthdayLayout, raw)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", raw, err)
	}
	return func() time.Time { return parsed }
}

func run(t *testing.T, r *Registry, book *domain.AddressBook, keyword string, args ...string) (string, error) {
	t.Helper()
	cmd, ok := r.Lookup(keyword)
	if !ok {
		t.Fatalf("unknown command %q", keyword)
	}
	return r.Run(cmd, args, book)
}

func TestAdd_CreatesContactThenListsPhone(t *testing.T) {
	r := New()
	book := domain.NewAddressBook()

	out, err := run(t, r, book, "add", "Alice", "0123456789")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if out != "Contact added" {
		t.Fatalf("add returned %q", out)
	}

	out, err = run(t, r, book, "phone", "Alice")
	if err != nil {
		t.Fatalf("phone: %v", err)
	}
	if out != "Phone number Alice: 0123456789" {
		t.Fatalf("phone returned %q", out)
	}
}

func TestAdd_AppendsToExistingContact(t *testing.T) {
	r := New()
	book := domain.NewAddressBook()

	for _, phone := range []string{"0123456789", "0987654321"} {
		if _, err := run(t, r, book, "add", "Alice", phone); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	out, err := run(t, r, book, "phone", "Alice")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Phone number Alice: 0123456789,0987654321" {
		t.Fatalf("phone returned %q", out)
	}
}

func TestAdd_InvalidPhone(t *testing.T) {
	r := New()
	book := domain.NewAddressBook()

	_, err := run(t, r, book, "add", "Alice", "123")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := FormatError(err); got != "Error: Phone number must contain exactly 10 digits." {
		t.Fatalf("FormatError = %q", got)
	}
}

func TestChange(t *testing.T) {
	r := New()
	book := domain.NewAddressBook()
	if _, err := run(t, r, book, "add", "Alice", "0123456789"); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, r, book, "change", "Alice", "0123456789", "0987654321")
	if err != nil {
		t.Fatalf("change: %v", err)
	}
	if out != "Contact updated" {
		t.Fatalf("change returned %q", out)
	}

	out, err = run(t, r, book, "change", "Nobody", "0123456789", "0987654321")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Contact not found" {
		t.Fatalf("change returned %q", out)
	}

	_, err = run(t, r, book, "change", "Alice", "1111111111", "0987654321")
	if err == nil {
		t.Fatal("expected error for missing old phone")
	}
	if got := FormatError(err); got != "Error: Old phone number 1111111111 does not exist." {
		t.Fatalf("FormatError = %q", got)
	}
}

func TestPhone_NotFoundCases(t *testing.T) {
	r := New()
	book := domain.NewAddressBook()

	out, err := run(t, r, book, "phone", "Nobody")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Phone not found" {
		t.Fatalf("phone returned %q", out)
	}

	// A contact that exists but has no phones reads the same.
	rec, err := domain.NewRecord("Empty")
	if err != nil {
		t.Fatal(err)
	}
	book.AddRecord(rec)

	out, err = run(t, r, book, "phone", "Empty")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Phone not found" {
		t.Fatalf("phone returned %q", out)
	}
}

func TestAll(t *testing.T) {
	r := New()
	book := domain.NewAddressBook()
	if _, err := run(t, r, book, "add", "Alice", "0123456789"); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, r, book, "add", "Bob", "0987654321"); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, r, book, "all")
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"Contact name: Alice, phones: 0123456789",
		"Contact name: Bob, phones: 0987654321",
	}, "\n")
	if out != want {
		t.Fatalf("all returned %q, want %q", out, want)
	}
}

func TestBirthdayCommands(t *testing.T) {
	r := New()
	book := domain.NewAddressBook()
	if _, err := run(t, r, book, "add", "Alice", "0123456789"); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, r, book, "show-birthday", "Alice")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Birthday not found" {
		t.Fatalf("show-birthday returned %q", out)
	}

	out, err = run(t, r, book, "add-birthday", "Alice", "03.06.1998")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Birthday added" {
		t.Fatalf("add-birthday returned %q", out)
	}

	out, err = run(t, r, book, "show-birthday", "Alice")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Birthday Alice is 03.06.1998" {
		t.Fatalf("show-birthday returned %q", out)
	}

	out, err = run(t, r, book, "add-birthday", "Nobody", "03.06.1998")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Birthday not found" {
		t.Fatalf("add-birthday returned %q", out)
	}

	_, err = run(t, r, book, "add-birthday", "Alice", "31.02.1998")
	if err == nil {
		t.Fatal("expected error for bad date")
	}
	if got := FormatError(err); got != "Error: Invalid date format. Use DD.MM.YYYY" {
		t.Fatalf("FormatError = %q", got)
	}
}

func TestBirthdays(t *testing.T) {
	r := New(WithNow(fixedNow(t, "01.06.2024")))
	book := domain.NewAddressBook()
	if _, err := run(t, r, book, "add", "Bob", "0123456789"); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, r, book, "birthdays")
	if err != nil {
		t.Fatal(err)
	}
	if out != "There are no birthdays for the next week." {
		t.Fatalf("birthdays returned %q", out)
	}

	// 02.06.2024 is a Sunday: Bob's entry moves to Monday 03.06.
	if _, err := run(t, r, book, "add-birthday", "Bob", "02.06.1985"); err != nil {
		t.Fatal(err)
	}

	out, err = run(t, r, book, "birthdays")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Bob - with 03.06.2024" {
		t.Fatalf("birthdays returned %q", out)
	}
}

func TestHello(t *testing.T) {
	r := New()
	out, err := run(t, r, domain.NewAddressBook(), "hello")
	if err != nil {
		t.Fatal(err)
	}
	if out != "How can I help you?" {
		t.Fatalf("hello returned %q", out)
	}
}

func TestLookup_CaseInsensitiveAndUnknown(t *testing.T) {
	r := New()

	if _, ok := r.Lookup("ADD"); !ok {
		t.Fatal("keyword lookup must be case-insensitive")
	}
	if _, ok := r.Lookup("bogus"); ok {
		t.Fatal("unknown keyword must not resolve")
	}
}

func TestRun_MissingArguments(t *testing.T) {
	r := New()
	book := domain.NewAddressBook()

	cmd, _ := r.Lookup("add")
	_, err := r.Run(cmd, []string{"Alice"}, book)
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindArgument) {
		t.Fatalf("expected KindArgument, got %v", err)
	}
	if got := FormatError(err); got != "Error: Not enough arguments. Usage: add <name> <phone>" {
		t.Fatalf("FormatError = %q", got)
	}
}

func TestRun_ExtraArgumentsIgnored(t *testing.T) {
	r := New()
	book := domain.NewAddressBook()

	cmd, _ := r.Lookup("add")
	out, err := r.Run(cmd, []string{"Alice", "0123456789", "junk"}, book)
	if err != nil {
		t.Fatal(err)
	}
	if out != "Contact added" {
		t.Fatalf("add returned %q", out)
	}
}
