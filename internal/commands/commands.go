// Package commands implements one handler per user command. Handlers are
// pure with respect to the front-end: they take parsed arguments and the
// book, and return a display string or an error. A single formatter turns
// any error into the "Error: {message}" shape the front-ends print.
package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vylia99/contactbook/internal/domain"
)

// HandlerFunc runs one command against the book.
type HandlerFunc func(args []string, book *domain.AddressBook) (string, error)

// Command describes one dispatchable command.
type Command struct {
	Name    string
	Usage   string
	Short   string
	MinArgs int

	// Mutating marks commands that change the book, so one-shot callers
	// know to save afterwards.
	Mutating bool

	Run HandlerFunc
}

// Registry holds the command table and the clock used by "birthdays".
type Registry struct {
	now      func() time.Time
	commands []Command
	byName   map[string]int
}

type Option func(*Registry)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

func New(opts ...Option) *Registry {
	r := &Registry{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}

	r.commands = []Command{
		{
			Name: "add", Usage: "add <name> <phone>",
			Short: "Add a contact or append a phone to an existing one",
			MinArgs: 2, Mutating: true,
			Run: addContact,
		},
		{
			Name: "change", Usage: "change <name> <old_phone> <new_phone>",
			Short: "Replace a phone number on an existing contact",
			MinArgs: 3, Mutating: true,
			Run: changeContact,
		},
		{
			Name: "phone", Usage: "phone <name>",
			Short: "List the phone numbers of a contact",
			MinArgs: 1,
			Run: showPhones,
		},
		{
			Name: "all", Usage: "all",
			Short: "List every contact",
			Run:   showAll,
		},
		{
			Name: "add-birthday", Usage: "add-birthday <name> <DD.MM.YYYY>",
			Short: "Set a contact's birthday",
			MinArgs: 2, Mutating: true,
			Run: addBirthday,
		},
		{
			Name: "show-birthday", Usage: "show-birthday <name>",
			Short: "Show a contact's birthday",
			MinArgs: 1,
			Run: showBirthday,
		},
		{
			Name: "birthdays", Usage: "birthdays",
			Short: "List birthdays in the next 7 days",
			Run:   r.showBirthdays,
		},
		{
			Name: "hello", Usage: "hello",
			Short: "Greeting",
			Run:   hello,
		},
	}

	r.byName = make(map[string]int, len(r.commands))
	for i, c := range r.commands {
		r.byName[c.Name] = i
	}
	return r
}

// Commands returns the command table in declaration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Lookup resolves a keyword case-insensitively.
func (r *Registry) Lookup(keyword string) (Command, bool) {
	i, ok := r.byName[strings.ToLower(keyword)]
	if !ok {
		return Command{}, false
	}
	return r.commands[i], true
}

// Run executes cmd after checking arity. Arguments beyond what the command
// consumes are ignored.
func (r *Registry) Run(cmd Command, args []string, book *domain.AddressBook) (string, error) {
	if len(args) < cmd.MinArgs {
		return "", &domain.OpError{
			Op:   "commands." + cmd.Name,
			Kind: domain.KindArgument,
			Msg:  fmt.Sprintf("Not enough arguments. Usage: %s", cmd.Usage),
		}
	}
	return cmd.Run(args, book)
}

// FormatError converts any handler error to its displayable form.
func FormatError(err error) string {
	var oe *domain.OpError
	if errors.As(err, &oe) {
		return "Error: " + oe.UserMessage()
	}
	return "Error: " + err.Error()
}

func addContact(args []string, book *domain.AddressBook) (string, error) {
	name, phone := args[0], args[1]

	record, ok := book.Find(name)
	if !ok {
		created, err := domain.NewRecord(name)
		if err != nil {
			return "", err
		}
		record = created
		book.AddRecord(record)
	}

	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	return "Contact added", nil
}

func changeContact(args []string, book *domain.AddressBook) (string, error) {
	name, oldPhone, newPhone := args[0], args[1], args[2]

	record, ok := book.Find(name)
	if !ok {
		return "Contact not found", nil
	}

	if err := record.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return "Contact updated", nil
}

func showPhones(args []string, book *domain.AddressBook) (string, error) {
	name := args[0]

	record, ok := book.Find(name)
	if !ok || len(record.Phones()) == 0 {
		return "Phone not found", nil
	}

	phones := record.Phones()
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return fmt.Sprintf("Phone number %s: %s", name, strings.Join(values, ",")), nil
}

func showAll(_ []string, book *domain.AddressBook) (string, error) {
	return book.AllContacts(), nil
}

func addBirthday(args []string, book *domain.AddressBook) (string, error) {
	name, birthday := args[0], args[1]

	record, ok := book.Find(name)
	if !ok {
		return "Birthday not found", nil
	}

	if err := record.AddBirthday(birthday); err != nil {
		return "", err
	}
	return "Birthday added", nil
}

func showBirthday(args []string, book *domain.AddressBook) (string, error) {
	name := args[0]

	record, ok := book.Find(name)
	if !ok {
		return "Birthday not found", nil
	}
	bd, ok := record.Birthday()
	if !ok {
		return "Birthday not found", nil
	}
	return fmt.Sprintf("Birthday %s is %s", name, bd), nil
}

func (r *Registry) showBirthdays(_ []string, book *domain.AddressBook) (string, error) {
	reminders := book.UpcomingBirthdays(r.now())
	if len(reminders) == 0 {
		return "There are no birthdays for the next week.", nil
	}

	lines := make([]string, len(reminders))
	for i, rem := range reminders {
		lines[i] = fmt.Sprintf("%s - with %s", rem.Name, rem.Date)
	}
	return strings.Join(lines, "\n"), nil
}

func hello(_ []string, _ *domain.AddressBook) (string, error) {
	return "How can I help you?", nil
}
