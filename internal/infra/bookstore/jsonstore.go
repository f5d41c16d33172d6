// Package bookstore persists the address book. The JSON backend is the
// default; the SQLite backend covers shared-disk setups where a single flat
// file is awkward to inspect or back up incrementally.
package bookstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vylia99/contactbook/internal/domain"
	"github.com/vylia99/contactbook/internal/ports"
)

// JSONStore keeps the whole book in one JSON document.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

var _ ports.BookStore = (*JSONStore)(nil)

type bookDTO struct {
	Contacts []contactDTO `json:"contacts"`
}

type contactDTO struct {
	Name     string               `json:"name"`
	Phones   []domain.PhoneNumber `json:"phones"`
	Birthday *domain.BirthdayDate `json:"birthday,omitempty"`
}

func (s *JSONStore) Save(book *domain.AddressBook) error {
	dto := bookDTO{Contacts: make([]contactDTO, 0, book.Len())}
	for _, r := range book.Records() {
		c := contactDTO{
			Name:   r.Name(),
			Phones: r.Phones(),
		}
		if bd, ok := r.Birthday(); ok {
			c.Birthday = &bd
		}
		dto.Contacts = append(dto.Contacts, c)
	}

	b, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return &domain.OpError{
			Op:   "bookstore.marshal",
			Kind: domain.KindStorage,
			Err:  err,
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &domain.OpError{
			Op:   "bookstore.mkdir",
			Kind: domain.KindStorage,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{
			Op:   "bookstore.write",
			Kind: domain.KindStorage,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "bookstore.rename",
			Kind: domain.KindStorage,
			Err:  err,
		}
	}

	return nil
}

func (s *JSONStore) Load() (*domain.AddressBook, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		// First run: no prior state.
		return domain.NewAddressBook(), nil
	}
	if err != nil {
		return nil, &domain.OpError{
			Op:   "bookstore.read",
			Kind: domain.KindStorage,
			Err:  err,
		}
	}

	var dto bookDTO
	if err := json.Unmarshal(b, &dto); err != nil {
		return nil, &domain.OpError{
			Op:   "bookstore.unmarshal",
			Kind: domain.KindStorage,
			Err:  err,
		}
	}

	book := domain.NewAddressBook()
	for _, c := range dto.Contacts {
		var bd domain.BirthdayDate
		if c.Birthday != nil {
			bd = *c.Birthday
		}
		r, err := domain.RestoreRecord(c.Name, c.Phones, bd)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "bookstore.restore",
				Kind: domain.KindStorage,
				Err:  err,
			}
		}
		book.AddRecord(r)
	}
	return book, nil
}
