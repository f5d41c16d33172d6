package bookstore

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vylia99/contactbook/internal/domain"
	"github.com/vylia99/contactbook/internal/ports"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS contacts (
	name     TEXT PRIMARY KEY,
	birthday TEXT,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS phones (
	contact  TEXT NOT NULL REFERENCES contacts(name) ON DELETE CASCADE,
	value    TEXT NOT NULL,
	position INTEGER NOT NULL
);
`

// SQLiteStore keeps the book in a local SQLite database. Save replaces the
// whole content in one transaction; Load reads it back in stored order.
type SQLiteStore struct {
	path string
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

var _ ports.BookStore = (*SQLiteStore)(nil)

func (s *SQLiteStore) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path+"?_foreign_keys=on")
	if err != nil {
		return nil, storageError("bookstore.sqlite.open", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, storageError("bookstore.sqlite.ping", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, storageError("bookstore.sqlite.schema", err)
	}
	return db, nil
}

func (s *SQLiteStore) Save(book *domain.AddressBook) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return storageError("bookstore.sqlite.begin", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM phones`); err != nil {
		return storageError("bookstore.sqlite.clear", err)
	}
	if _, err := tx.Exec(`DELETE FROM contacts`); err != nil {
		return storageError("bookstore.sqlite.clear", err)
	}

	for pos, r := range book.Records() {
		var birthday any
		if bd, ok := r.Birthday(); ok {
			birthday = bd.String()
		}
		if _, err := tx.Exec(
			`INSERT INTO contacts (name, birthday, position) VALUES (?, ?, ?)`,
			r.Name(), birthday, pos,
		); err != nil {
			return storageError("bookstore.sqlite.insert_contact", err)
		}

		for i, p := range r.Phones() {
			if _, err := tx.Exec(
				`INSERT INTO phones (contact, value, position) VALUES (?, ?, ?)`,
				r.Name(), p.String(), i,
			); err != nil {
				return storageError("bookstore.sqlite.insert_phone", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return storageError("bookstore.sqlite.commit", err)
	}
	return nil
}

func (s *SQLiteStore) Load() (*domain.AddressBook, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	book := domain.NewAddressBook()

	rows, err := db.Query(`SELECT name, birthday FROM contacts ORDER BY position`)
	if err != nil {
		return nil, storageError("bookstore.sqlite.query_contacts", err)
	}
	defer rows.Close()

	type contactRow struct {
		name     string
		birthday sql.NullString
	}
	var contacts []contactRow
	for rows.Next() {
		var c contactRow
		if err := rows.Scan(&c.name, &c.birthday); err != nil {
			return nil, storageError("bookstore.sqlite.scan_contact", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("bookstore.sqlite.iterate_contacts", err)
	}

	for _, c := range contacts {
		phones, err := s.loadPhones(db, c.name)
		if err != nil {
			return nil, err
		}

		var bd domain.BirthdayDate
		if c.birthday.Valid {
			parsed, err := domain.ParseBirthday(c.birthday.String)
			if err != nil {
				return nil, storageError("bookstore.sqlite.restore",
					fmt.Errorf("contact %q: %w", c.name, err))
			}
			bd = parsed
		}

		r, err := domain.RestoreRecord(c.name, phones, bd)
		if err != nil {
			return nil, storageError("bookstore.sqlite.restore",
				fmt.Errorf("contact %q: %w", c.name, err))
		}
		book.AddRecord(r)
	}

	return book, nil
}

func (s *SQLiteStore) loadPhones(db *sql.DB, contact string) ([]domain.PhoneNumber, error) {
	rows, err := db.Query(`SELECT value FROM phones WHERE contact = ? ORDER BY position`, contact)
	if err != nil {
		return nil, storageError("bookstore.sqlite.query_phones", err)
	}
	defer rows.Close()

	var phones []domain.PhoneNumber
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, storageError("bookstore.sqlite.scan_phone", err)
		}
		p, err := domain.NewPhoneNumber(raw)
		if err != nil {
			return nil, storageError("bookstore.sqlite.restore",
				fmt.Errorf("contact %q: %w", contact, err))
		}
		phones = append(phones, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("bookstore.sqlite.iterate_phones", err)
	}
	return phones, nil
}

func storageError(op string, err error) *domain.OpError {
	return &domain.OpError{Op: op, Kind: domain.KindStorage, Err: err}
}
