package ports

import "github.com/vylia99/contactbook/internal/domain"

// BookStore persists the whole address book between sessions.
type BookStore interface {
	// Save writes the full book, replacing any previous state.
	Save(book *domain.AddressBook) error

	// Load restores the book. A missing prior state is not an error:
	// implementations return an empty book.
	Load() (*domain.AddressBook, error)
}
