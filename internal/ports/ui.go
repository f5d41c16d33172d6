package ports

// UserInterface is the narrow surface the session needs from a front-end.
// The command layer never touches it; handlers return plain strings.
type UserInterface interface {
	ShowMessage(text string)
	ShowError(text string)

	// GetInput blocks for one line of input. io.EOF signals that the
	// front-end has no more input (the session treats it as exit).
	GetInput(prompt string) (string, error)
}
