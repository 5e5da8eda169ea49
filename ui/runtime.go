package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func Start() {
	fragmentSelector := CreateFragmentSelector()
	if err := tea.NewProgram(&fragmentSelector).Start(); err != nil {
		panic(err)
	}
}
