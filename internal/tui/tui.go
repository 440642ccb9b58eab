// Package tui provides a Bubble Tea terminal user interface for spotify-exporter.
package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/handiism/spotify-exporter/internal/config"
	"github.com/handiism/spotify-exporter/internal/export"
	"github.com/handiism/spotify-exporter/internal/model"
	"github.com/handiism/spotify-exporter/internal/pipeline"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1DB954")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	tableBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1DB954"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateExporting
	StateComplete
	StateError
)

// maxLogs is how many progress messages stay on screen.
const maxLogs = 8

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   pipeline.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	table     table.Model
	settings  *config.Settings
	opts      []pipeline.Option
	logs      []LogEntry
	playlist  *model.Playlist
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model. The URL field starts with settings.URL.
func NewModel(settings *config.Settings, opts ...pipeline.Option) Model {
	ti := textinput.New()
	ti.Placeholder = config.DefaultURL
	ti.SetValue(settings.URL)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 70

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#1DB954"))

	// Document log lines would tear the alternate screen.
	quiet := export.WithLogger(log.New(io.Discard))
	opts = append([]pipeline.Option{pipeline.WithExportOptions(quiet)}, opts...)

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		settings:  settings,
		opts:      opts,
		ctx:       ctx,
		cancel:    cancel,
		height:    24,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// ExportDoneMsg is sent when an export run finishes.
type ExportDoneMsg struct {
	Playlist *model.Playlist
	Events   []pipeline.ProgressEvent
	Err      error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateComplete {
			m.table.SetHeight(m.tableHeight())
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateExporting {
				m.cancel()
				return m, nil
			}
			return m, tea.Quit

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.state = StateExporting
				m.logs = nil
				return m, tea.Batch(m.runExport(), m.spinner.Tick)
			}

		case "tab":
			if m.state == StateInput {
				if m.settings.Output.Format == export.FormatCSV.String() {
					m.settings.Output.Format = export.FormatHTML.String()
				} else {
					m.settings.Output.Format = export.FormatCSV.String()
				}
				return m, nil
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.state = StateInput
				m.logs = nil
				m.playlist = nil
				m.err = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.Focus()
				return m, textinput.Blink
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ExportDoneMsg:
		for _, event := range msg.Events {
			m.addLog(event)
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			break
		}
		m.playlist = msg.Playlist
		m.table = m.newTable(msg.Playlist)
		m.state = StateComplete
	}

	switch m.state {
	case StateInput:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	case StateComplete:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) addLog(event pipeline.ProgressEvent) {
	if event.Level == pipeline.LevelVerbose {
		return
	}
	m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

func (m Model) tableHeight() int {
	h := m.height - 14
	if h < 5 {
		h = 5
	}
	return h
}

func (m Model) newTable(p *model.Playlist) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Title", Width: 32},
		{Title: "Artist", Width: 26},
		{Title: "Album", Width: 26},
	}

	rows := make([]table.Row, len(p.Tracks))
	for i, track := range p.Tracks {
		rows[i] = table.Row{strconv.Itoa(i + 1), track.Name, track.Artist, track.Album}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#6C757D")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#191414")).
		Background(lipgloss.Color("#1DB954")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♫ Spotify Exporter"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Export a public playlist to a table"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateExporting:
		b.WriteString(m.viewExporting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter playlist URL:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Format: %s (tab to switch)", m.settings.Output.Format)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output file: %s", m.settings.Output.Path)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewExporting() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Fetching playlist..."))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	b.WriteString(successStyle.Render(fmt.Sprintf("Playlist %q", m.playlist.Name)))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Tracks: %d | Skipped: %d | File: %s",
		len(m.playlist.Tracks),
		m.playlist.Skipped,
		m.playlist.OutputPath,
	)))
	b.WriteString("\n\n")
	b.WriteString(tableBoxStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Export failed:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, entry := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch entry.Level {
		case pipeline.LevelError:
			style = errorStyle
			prefix = "✗"
		case pipeline.LevelWarning:
			style = warningStyle
			prefix = "!"
		case pipeline.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case pipeline.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + entry.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: export • tab: format • esc: quit"
	case StateExporting:
		return "esc: cancel"
	case StateComplete:
		return "↑/↓: scroll • r: new export • q: quit"
	case StateError:
		return "r: try again • q: quit"
	}
	return ""
}

// runExport runs the pipeline for the entered URL.
func (m Model) runExport() tea.Cmd {
	settings := *m.settings
	settings.URL = strings.TrimSpace(m.textInput.Value())
	ctx := m.ctx
	opts := m.opts

	return func() tea.Msg {
		var events []pipeline.ProgressEvent

		exporter, err := pipeline.NewExporter(&settings, func(event pipeline.ProgressEvent) {
			events = append(events, event)
		}, opts...)
		if err != nil {
			return ExportDoneMsg{Err: err}
		}

		playlist, err := exporter.Run(ctx)
		return ExportDoneMsg{Playlist: playlist, Events: events, Err: err}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
