package main

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	planner "github.com/AnmoL11221/Voice-Task-Planner"
	"github.com/AnmoL11221/Voice-Task-Planner/dispatch"
	"github.com/AnmoL11221/Voice-Task-Planner/voice"
)

const (
	speakerYou     = "You"
	speakerPlanner = "Planner"
)

var (
	youStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("221")).Bold(true)
	plannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(false)
)

type line struct {
	speaker string
	text    string
}

type model struct {
	// children
	vp        viewport.Model
	userinput textinput.Model

	// supplied
	l          planner.Logger
	dispatcher *dispatch.Dispatcher
	speaker    voice.Speaker

	// state
	transcript []line
	thinking   bool
	quitting   bool
	h          int

	// configuration
	cmdTimeout time.Duration
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.speak(dispatch.Greeting), textinput.Blink)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var tiCmd, vpCmd, cmd tea.Cmd

	m, cmd = m.updateParent(msg)

	// update children
	m.userinput, tiCmd = m.userinput.Update(msg)
	m.vp, vpCmd = m.vp.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, cmd)
}

func (m model) updateParent(msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.h = msg.Height
		m.userinput.Width = msg.Width
		m.vp.Width = msg.Width
		m.resizeViewport()
		return m, nil
	case ReplyMsg:
		m.thinking = false
		if msg.reply.Text != "" {
			m.transcript = append(m.transcript, line{speaker: speakerPlanner, text: msg.reply.Text})
			m.vp.SetContent(m.renderTranscript())
			m.resizeViewport()
		}
		if msg.reply.Quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.thinking {
				return m, nil
			}
			input := strings.TrimSpace(m.userinput.Value())
			m.userinput.Reset()
			if input == "" {
				return m, nil
			}

			m.transcript = append(m.transcript, line{speaker: speakerYou, text: input})
			m.vp.SetContent(m.renderTranscript())
			m.resizeViewport()
			m.thinking = true
			return m, m.handleCommand(input)
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) handleCommand(input string) tea.Cmd {
	return func() tea.Msg {
		timeout, cancel := context.WithTimeout(context.Background(), m.cmdTimeout)
		defer cancel()

		reply := m.dispatcher.HandleCommand(timeout, input)
		if reply.Text != "" {
			if err := m.speaker.Speak(timeout, reply.Text); err != nil {
				m.l.Warn("failed speaking reply", "error", err)
			}
		}
		return ReplyMsg{
			reply: reply,
		}
	}
}

func (m model) speak(text string) tea.Cmd {
	return func() tea.Msg {
		timeout, cancel := context.WithTimeout(context.Background(), m.cmdTimeout)
		defer cancel()
		if err := m.speaker.Speak(timeout, text); err != nil {
			m.l.Warn("failed speaking", "error", err)
		}
		return nil
	}
}

func (m model) renderTranscript() string {
	var lines []string
	for _, ln := range m.transcript {
		label := plannerStyle.Render(ln.speaker + ":")
		if ln.speaker == speakerYou {
			label = youStyle.Render(ln.speaker + ":")
		}
		lines = append(lines, label+" "+ln.text)
	}
	return strings.Join(lines, "\n")
}

func (m model) renderFooter() string {
	if m.quitting {
		return ""
	}

	var footer strings.Builder
	footer.WriteRune('\n')
	footer.WriteString(m.userinput.View())
	footer.WriteString("\n\n")

	if m.thinking {
		footer.WriteString(faintStyle.Render("thinking..."))
	} else {
		footer.WriteString(faintStyle.Render("(ctrl+c to quit)"))
	}
	footer.WriteRune('\n')

	return footer.String()
}

func (m *model) resizeViewport() {
	transcriptHeight := lipgloss.Height(m.renderTranscript())
	footerHeight := lipgloss.Height(m.renderFooter())
	m.vp.Height = min(transcriptHeight, m.h-footerHeight)
	m.vp.GotoBottom()
}

func (m model) View() string {
	return lipgloss.JoinVertical(0, m.vp.View(), m.renderFooter())
}
