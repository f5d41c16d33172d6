package bookstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vylia99/contactbook/internal/domain"
	"github.com/vylia99/contactbook/internal/ports"
)

// sampleBook builds three records with varying phones and birthdays.
func sampleBook(t *testing.T) *domain.AddressBook {
	t.Helper()

	book := domain.NewAddressBook()

	anna, err := domain.NewRecord("Anna")
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{"0000000001", "0000000002", "0000000001"} {
		if err := anna.AddPhone(p); err != nil {
			t.Fatal(err)
		}
	}
	if err := anna.AddBirthday("03.06.1998"); err != nil {
		t.Fatal(err)
	}

	bob, err := domain.NewRecord("Bob")
	if err != nil {
		t.Fatal(err)
	}
	if err := bob.AddPhone("0987654321"); err != nil {
		t.Fatal(err)
	}

	empty, err := domain.NewRecord("Carol")
	if err != nil {
		t.Fatal(err)
	}
	if err := empty.AddBirthday("29.02.2000"); err != nil {
		t.Fatal(err)
	}

	book.AddRecord(anna)
	book.AddRecord(bob)
	book.AddRecord(empty)
	return book
}

// assertBooksEqual compares the full observable state of two books.
func assertBooksEqual(t *testing.T, got, want *domain.AddressBook) {
	t.Helper()

	if got.Len() != want.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), want.Len())
	}

	wantRecords := want.Records()
	for i, gr := range got.Records() {
		wr := wantRecords[i]
		if gr.Name() != wr.Name() {
			t.Fatalf("record %d name = %q, want %q", i, gr.Name(), wr.Name())
		}
		if gr.String() != wr.String() {
			t.Fatalf("record %q = %q, want %q", gr.Name(), gr.String(), wr.String())
		}

		gb, gok := gr.Birthday()
		wb, wok := wr.Birthday()
		if gok != wok || gb != wb {
			t.Fatalf("record %q birthday = %v/%v, want %v/%v", gr.Name(), gb, gok, wb, wok)
		}
	}
}

func roundTrip(t *testing.T, store ports.BookStore) {
	t.Helper()

	want := sampleBook(t)
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertBooksEqual(t, got, want)
}

func TestJSONStore_RoundTrip(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "addressbook.json"))
	roundTrip(t, store)
}

func TestJSONStore_LoadMissingFileReturnsEmptyBook(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "nope.json"))

	book, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if book.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", book.Len())
	}
}

func TestJSONStore_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "addressbook.json")
	store := NewJSONStore(path)

	if err := store.Save(sampleBook(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestJSONStore_SaveOverwrites(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "addressbook.json"))

	if err := store.Save(sampleBook(t)); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(domain.NewAddressBook()); err != nil {
		t.Fatal(err)
	}

	book, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if book.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after overwrite", book.Len())
	}
}

func TestJSONStore_LoadRejectsCorruptPhone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addressbook.json")
	corrupt := []byte(`{"contacts":[{"name":"Anna","phones":["123"]}]}`)
	if err := os.WriteFile(path, corrupt, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewJSONStore(path).Load()
	if err == nil {
		t.Fatal("expected error for invalid stored phone")
	}
	if !domain.IsKind(err, domain.KindStorage) {
		t.Fatalf("expected KindStorage, got %v", err)
	}
}
