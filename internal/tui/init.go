package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dealve/dealve/internal/config"
	"github.com/dealve/dealve/internal/itad"
)

// Run starts the deal browser with the given settings and credential and
// blocks until the user quits.
func Run(cfg config.Settings, apiKey string) error {
	m := NewModel(itad.NewClient(apiKey), cfg)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
