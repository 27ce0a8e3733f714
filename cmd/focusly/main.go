package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okan/focusly/internal/store"
	"github.com/okan/focusly/internal/tui"
)

// localUserEmail identifies the single user of a local terminal session.
const localUserEmail = "local@focusly"

func main() {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	s, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	user, err := s.EnsureUser(localUserEmail)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error provisioning local user: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(s, user.ID)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
