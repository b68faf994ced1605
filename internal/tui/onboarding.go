package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dealve/dealve/internal/config"
	"github.com/dealve/dealve/internal/itad"
)

// The onboarding wizard runs before the browser when no API key is
// configured: it walks through getting a key, validates it against the API
// and persists it on success.

type onboardStep int

const (
	stepWelcome onboardStep = iota
	stepInstructions
	stepKeyEntry
	stepValidating
	stepSuccess
	stepFailed
)

type validateResultMsg struct{ err error }

// OnboardModel is the wizard's bubbletea model.
type OnboardModel struct {
	step   onboardStep
	input  textinput.Model
	spin   spinner.Model
	errMsg string
	key    string

	width  int
	height int

	aborted bool
}

func NewOnboarding() *OnboardModel {
	in := textinput.New()
	in.Placeholder = "paste your API key"
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	in.CharLimit = 64
	in.Width = 40

	sp := spinner.New(spinner.WithSpinner(spinnerFrames))
	sp.Style = spinnerStyle

	return &OnboardModel{input: in, spin: sp}
}

// Key returns the validated key after the wizard finished, empty when the
// user aborted.
func (m *OnboardModel) Key() string {
	if m.aborted {
		return ""
	}
	return m.key
}

func (m *OnboardModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m *OnboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case validateResultMsg:
		if msg.err != nil {
			m.step = stepFailed
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.step = stepSuccess
		_ = config.SetAPIKey(m.key)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.step == stepKeyEntry {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *OnboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	case "esc":
		if m.step != stepValidating {
			m.aborted = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.step {
	case stepWelcome:
		if msg.String() == "enter" {
			m.step = stepInstructions
		}
	case stepInstructions:
		if msg.String() == "enter" {
			m.step = stepKeyEntry
			m.input.Focus()
			return m, textinput.Blink
		}
	case stepKeyEntry:
		if msg.String() == "ctrl+h" {
			if m.input.EchoMode == textinput.EchoPassword {
				m.input.EchoMode = textinput.EchoNormal
			} else {
				m.input.EchoMode = textinput.EchoPassword
			}
			return m, nil
		}
		if msg.String() == "enter" {
			key := strings.TrimSpace(m.input.Value())
			if key == "" {
				return m, nil
			}
			m.key = key
			m.step = stepValidating
			return m, validateKey(key)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case stepSuccess:
		if msg.String() == "enter" {
			return m, tea.Quit
		}
	case stepFailed:
		if msg.String() == "enter" || msg.String() == "r" {
			m.step = stepKeyEntry
			m.errMsg = ""
			m.input.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func validateKey(key string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return validateResultMsg{err: itad.ValidateKey(ctx, key)}
	}
}

func (m *OnboardModel) View() string {
	var b strings.Builder

	switch m.step {
	case stepWelcome:
		for _, line := range asciiLogo {
			b.WriteString(titleStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(valueStyle.Render("Welcome! Dealve browses game deals from IsThereAnyDeal."))
		b.WriteString("\n\n")
		b.WriteString(textStyle.Render("An API key is required. Press ") + shortcutStyle.Render("enter") + textStyle.Render(" to continue."))

	case stepInstructions:
		b.WriteString(titleStyle.Render("GET AN API KEY"))
		b.WriteString("\n\n")
		b.WriteString(textStyle.Render("1. Sign in at https://isthereanydeal.com\n"))
		b.WriteString(textStyle.Render("2. Open your profile's apps page and register an app\n"))
		b.WriteString(textStyle.Render("3. Copy the API key it shows\n\n"))
		b.WriteString(textStyle.Render("Press ") + shortcutStyle.Render("enter") + textStyle.Render(" when you have the key."))

	case stepKeyEntry:
		b.WriteString(titleStyle.Render("ENTER API KEY"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("enter validate · ctrl+h show/hide · esc quit"))

	case stepValidating:
		b.WriteString(titleStyle.Render("VALIDATING"))
		b.WriteString("\n\n")
		b.WriteString(textStyle.Render("Checking the key against the API ") + m.spin.View())

	case stepSuccess:
		b.WriteString(titleStyle.Render("ALL SET"))
		b.WriteString("\n\n")
		b.WriteString(greenStyle.Render("Key validated and saved."))
		b.WriteString("\n\n")
		b.WriteString(textStyle.Render("Press ") + shortcutStyle.Render("enter") + textStyle.Render(" to start browsing."))

	case stepFailed:
		b.WriteString(titleStyle.Render("VALIDATION FAILED"))
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
		b.WriteString(textStyle.Render("Press ") + shortcutStyle.Render("enter") + textStyle.Render(" to try again."))
	}

	b.WriteString("\n\n")
	b.WriteString(m.progressDots())

	content := popupStyle.Render(b.String())
	if m.width == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// progressDots marks how far through the wizard the user is. Success and
// failure share the last slot.
func (m *OnboardModel) progressDots() string {
	steps := []onboardStep{stepWelcome, stepInstructions, stepKeyEntry, stepValidating, stepSuccess}
	current := m.step
	if current == stepFailed {
		current = stepValidating
	}

	var b strings.Builder
	for _, s := range steps {
		if s <= current {
			b.WriteString(shortcutStyle.Render("●"))
		} else {
			b.WriteString(dimStyle.Render("○"))
		}
		b.WriteString(" ")
	}
	return b.String()
}

// RunOnboarding runs the wizard and returns the validated key, or an empty
// string when the user aborted.
func RunOnboarding() (string, error) {
	m := NewOnboarding()
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return "", err
	}
	return m.Key(), nil
}
