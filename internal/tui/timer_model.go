package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dagraham/timemate/internal/models"
	"github.com/dagraham/timemate/internal/report"
	"github.com/dagraham/timemate/internal/timer"
)

// TimerModel is the TUI model shown while a timer is running.
type TimerModel struct {
	width  int
	height int
	record models.TimeRecord

	spin spinner.Model

	// Timer state
	elapsed    time.Duration
	lastUpdate time.Time

	// UI state
	stopping bool // user pressed S, stop the timer on exit
	exiting  bool // user pressed ESC/Q, leave the timer running
}

// timerTickMsg is sent every second to update the display
type timerTickMsg struct{}

// NewTimerModel creates the model for a running record.
func NewTimerModel(record models.TimeRecord) TimerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))

	m := TimerModel{
		record:     record,
		spin:       s,
		lastUpdate: time.Now(),
	}
	if record.StartedAt != nil {
		m.elapsed = time.Since(*record.StartedAt)
	}
	return m
}

// Init starts the per-second ticker and the spinner.
func (m TimerModel) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return timerTickMsg{}
		}),
		m.spin.Tick,
	)
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		now := time.Now()
		if m.record.StartedAt != nil {
			m.elapsed = now.Sub(*m.record.StartedAt)
		}
		m.lastUpdate = now

		if !m.stopping && !m.exiting {
			return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return timerTickMsg{}
			})
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		if m.stopping || m.exiting {
			return m, nil
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			m.stopping = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the running timer.
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	var components []string

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render(
		fmt.Sprintf("%s TRACKING TIME %s", m.spin.View(), m.spin.View())))

	accountStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components,
		accountStyle.Render(fmt.Sprintf("#%d  %s", m.record.ID, m.record.Account.Name)))

	if m.record.Memo != "" {
		memoStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, memoStyle.Render(m.record.Memo))
	}

	components = append(components, m.renderBigClock())

	total := m.record.AccruedSeconds + int64(m.elapsed.Seconds())
	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Align(lipgloss.Center).
		Width(m.width)
	info := fmt.Sprintf("today %s", report.FormatHours(total))
	if m.record.StartedAt != nil {
		info += fmt.Sprintf(" · started at %s", m.record.StartedAt.Format("15:04:05"))
	}
	components = append(components, infoStyle.Render(info))

	content := strings.Join(components, "\n\n")
	panelStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Align(lipgloss.Center, lipgloss.Center)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panelStyle.Render(content),
		helpBar,
	)
}

// renderBigClock renders the elapsed session time as an ASCII art clock.
func (m TimerModel) renderBigClock() string {
	hours := int(m.elapsed.Hours())
	minutes := int(m.elapsed.Minutes()) % 60
	seconds := int(m.elapsed.Seconds()) % 60

	// ASCII art for digits (5x5 characters each)
	digits := map[rune][]string{
		'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
		'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
		'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
		'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
		'4': {"█   █", "█   █", "█████", "    █", "    █"},
		'5': {"█████", "█    ", "████ ", "    █", "████ "},
		'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
		'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
		'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
		'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
		':': {"     ", "  █  ", "     ", "  █  ", "     "},
	}

	var timeStr string
	if hours > 0 {
		timeStr = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	} else {
		timeStr = fmt.Sprintf("%02d:%02d", minutes, seconds)
	}

	var lines [5]strings.Builder
	for _, char := range timeStr {
		if digitArt, ok := digits[char]; ok {
			for i := 0; i < 5; i++ {
				lines[i].WriteString(digitArt[i])
				lines[i].WriteString(" ")
			}
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	var rendered []string
	for i := 0; i < 5; i++ {
		rendered = append(rendered, clockStyle.Render(lines[i].String()))
	}

	centered := make([]string, 0, len(rendered))
	for _, line := range rendered {
		centered = append(centered, lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(m.width).
			Render(line))
	}
	return strings.Join(centered, "\n")
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("s stop · esc/q exit (keep running) · ctrl+c force quit")
}

// RunTimerTUI shows the live timer for a running record and, if the user
// stops it from the UI, pauses the record through the service.
func RunTimerTUI(svc *timer.Service, record models.TimeRecord) error {
	model := NewTimerModel(record)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	timerModel := finalModel.(TimerModel)
	if timerModel.stopping {
		stopped, err := svc.Stop(record.ID)
		if err != nil {
			return fmt.Errorf("failed to stop timer: %w", err)
		}
		fmt.Printf("⏹️  Paused timer #%d for %s\n", stopped.ID, record.Account.Name)
		fmt.Printf("Accrued today: %s\n", report.FormatHours(stopped.AccruedSeconds))
	} else if timerModel.exiting {
		fmt.Printf("\n💡 Timer #%d is still running for %s\n", record.ID, record.Account.Name)
		fmt.Printf("   Use 'timemate status' to check it or 'timemate stop' to pause it.\n")
	}

	return nil
}
