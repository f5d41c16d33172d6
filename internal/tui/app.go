// Package tui is the full-screen front-end: a prompt with a scrollback of
// command results, driven by the same command registry as the console
// session. The book is loaded before the program starts and saved when the
// user quits.
package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vylia99/contactbook/internal/commands"
	"github.com/vylia99/contactbook/internal/domain"
	"github.com/vylia99/contactbook/internal/ports"
)

type Deps struct {
	Store    ports.BookStore
	Registry *commands.Registry

	Logger *slog.Logger
}

type line struct {
	text  string
	isErr bool
}

type model struct {
	theme Theme
	deps  Deps

	book  *domain.AddressBook
	input textinput.Model
	lines []line

	width  int
	height int

	saveErr error
}

func Run(deps Deps) error {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	book, err := deps.Store.Load()
	if err != nil {
		return err
	}

	m := newModel(deps, book)
	p := tea.NewProgram(m, tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return err
	}

	if final, ok := out.(model); ok && final.saveErr != nil {
		return final.saveErr
	}
	return nil
}

func newModel(deps Deps, book *domain.AddressBook) model {
	ti := textinput.New()
	ti.Placeholder = "add <name> <phone>"
	ti.Prompt = "> "
	ti.Focus()

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		book:  book,
		input: ti,
		lines: []line{
			{text: "Welcome to the assistant bot!"},
			{text: "Available commands: add, change, phone, all, add-birthday, show-birthday, birthdays, hello, close or exit"},
		},
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = msg.Width - 8
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m.quit()

		case "enter":
			value := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if value == "" {
				return m, nil
			}
			return m.submit(value)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submit(value string) (tea.Model, tea.Cmd) {
	m.lines = append(m.lines, line{text: "> " + value})

	fields := strings.Fields(value)
	keyword := strings.ToLower(fields[0])
	args := fields[1:]

	if keyword == "close" || keyword == "exit" {
		return m.quit()
	}

	cmd, ok := m.deps.Registry.Lookup(keyword)
	if !ok {
		m.deps.Logger.Debug("tui.unknown_command", "keyword", keyword)
		m.lines = append(m.lines, line{text: "Invalid command.", isErr: true})
		return m, nil
	}

	out, err := m.deps.Registry.Run(cmd, args, m.book)
	if err != nil {
		m.deps.Logger.Debug("tui.command_failed", "keyword", keyword, "err", err)
		m.lines = append(m.lines, line{text: commands.FormatError(err), isErr: true})
		return m, nil
	}

	m.deps.Logger.Debug("tui.command_ok", "keyword", keyword)
	for _, l := range strings.Split(out, "\n") {
		m.lines = append(m.lines, line{text: l})
	}
	return m, nil
}

func (m model) quit() (tea.Model, tea.Cmd) {
	if err := m.deps.Store.Save(m.book); err != nil {
		m.deps.Logger.Error("tui.save_failed", "err", err)
		m.saveErr = err
	}
	return m, tea.Quit
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Title.Render("contactbook") + "\n" +
		m.theme.Help.Render("phone book assistant — type a command and press enter")

	visible := m.visibleLines()
	rendered := make([]string, 0, len(visible))
	for _, l := range visible {
		if l.isErr {
			rendered = append(rendered, m.theme.Error.Render(l.text))
		} else {
			rendered = append(rendered, m.theme.Result.Render(l.text))
		}
	}

	scrollback := m.theme.Card.Render(strings.Join(rendered, "\n"))
	prompt := m.theme.Prompt.Render(m.input.View())
	help := m.theme.Help.Render("enter run • esc/ctrl+c save and quit")

	return wrap.Render(header + "\n\n" + scrollback + "\n\n" + prompt + "\n" + help)
}

// visibleLines trims the scrollback to what fits the terminal height.
func (m model) visibleLines() []line {
	if m.height == 0 {
		return m.lines
	}

	max := m.height - 10
	if max < 3 {
		max = 3
	}
	if len(m.lines) <= max {
		return m.lines
	}
	return m.lines[len(m.lines)-max:]
}
