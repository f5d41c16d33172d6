// Package session runs the interactive read-eval-print loop over the
// UserInterface and BookStore ports. It owns the in-memory book for the
// lifetime of one run: loaded once at start, saved once on close/exit.
package session

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/vylia99/contactbook/internal/commands"
	"github.com/vylia99/contactbook/internal/domain"
	"github.com/vylia99/contactbook/internal/ports"
)

const (
	welcomeText  = "Welcome to the assistant bot!"
	commandsText = "Available commands: add, change, phone, all, add-birthday, show-birthday, birthdays, hello, close or exit"
	promptText   = "Enter a command: "
	goodbyeText  = "Good bye!"
)

type Session struct {
	ui       ports.UserInterface
	store    ports.BookStore
	registry *commands.Registry
	log      *slog.Logger
}

func New(ui ports.UserInterface, store ports.BookStore, registry *commands.Registry, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{ui: ui, store: store, registry: registry, log: log}
}

// Run loops until close/exit or end of input. Handler failures never abort
// the loop; only store errors do.
func (s *Session) Run() error {
	book, err := s.store.Load()
	if err != nil {
		return err
	}
	s.log.Info("session.started", "contacts", book.Len())

	s.ui.ShowMessage(welcomeText)
	s.ui.ShowMessage(commandsText)

	for {
		line, err := s.ui.GetInput(promptText)
		if errors.Is(err, io.EOF) {
			// Piped input ran out: behave like close.
			return s.close(book)
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			s.ui.ShowMessage("Enter a command.")
			continue
		}

		keyword := strings.ToLower(fields[0])
		args := fields[1:]

		if keyword == "close" || keyword == "exit" {
			return s.close(book)
		}

		cmd, ok := s.registry.Lookup(keyword)
		if !ok {
			s.log.Debug("session.unknown_command", "keyword", keyword)
			s.ui.ShowError("Invalid command.")
			continue
		}

		out, err := s.registry.Run(cmd, args, book)
		if err != nil {
			s.log.Debug("session.command_failed", "keyword", keyword, "err", err)
			s.ui.ShowMessage(commands.FormatError(err))
			continue
		}
		s.log.Debug("session.command_ok", "keyword", keyword)
		s.ui.ShowMessage(out)
	}
}

func (s *Session) close(book *domain.AddressBook) error {
	if err := s.store.Save(book); err != nil {
		s.log.Error("session.save_failed", "err", err)
		return err
	}
	s.log.Info("session.closed", "contacts", book.Len())
	s.ui.ShowMessage(goodbyeText)
	return nil
}
