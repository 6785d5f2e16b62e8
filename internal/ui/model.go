package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/colefleming/dupless/internal/config"
	"github.com/colefleming/dupless/internal/exporter"
	"github.com/colefleming/dupless/internal/pipeline"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type state int

const (
	statePicking state = iota
	stateImporting
	stateColumn
	stateProcessing
	stateReport
	stateSaved
	stateError
)

type Model struct {
	state   state
	cfg     *config.Settings
	session *pipeline.Session

	filepicker  filepicker.Model
	selected    []string
	columnInput textinput.Model
	reportTable table.Model
	spinner     spinner.Model

	inputErr  string
	savedPath string
	err       error
	width     int
	height    int
}

type importedMsg struct{ err error }

type processedMsg struct{ err error }

type savedMsg struct {
	path string
	err  error
}

func InitialModel(cfg *config.Settings) Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".csv", ".xlsx"}
	fp.CurrentDirectory, _ = os.Getwd()

	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#2DD4BF"))
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))
	fp.Styles.File = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color("#2DD4BF")).Bold(true)

	ti := textinput.New()
	ti.Placeholder = "1"
	ti.CharLimit = 5
	ti.Width = 10

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SelectedStyle

	session := pipeline.NewSession()
	session.StrictRows = cfg.StrictRows

	return Model{
		state:       statePicking,
		cfg:         cfg,
		session:     session,
		filepicker:  fp,
		columnInput: ti,
		spinner:     sp,
	}
}

func (m Model) Init() tea.Cmd {
	return m.filepicker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		height := msg.Height - 14
		if height < 5 {
			height = 5
		}
		m.filepicker.SetHeight(height)

		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case statePicking:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "tab":
				if len(m.selected) > 0 {
					m.state = stateImporting
					return m, tea.Batch(m.importFiles(), m.spinner.Tick)
				}
			}

		case stateColumn:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "enter":
				return m.submitColumn()
			}
			var cmd tea.Cmd
			m.columnInput, cmd = m.columnInput.Update(msg)
			return m, cmd

		case stateReport:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "s":
				return m, m.saveOutput()
			case "o":
				return m.backToColumn()
			}
			var cmd tea.Cmd
			m.reportTable, cmd = m.reportTable.Update(msg)
			return m, cmd

		case stateSaved:
			switch msg.String() {
			case "o":
				return m.backToColumn()
			default:
				return m, tea.Quit
			}

		case stateError:
			return m, tea.Quit
		}

	case importedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.columnInput.Focus()
		m.state = stateColumn
		return m, textinput.Blink

	case processedMsg:
		if msg.err != nil {
			// Strict-mode refusal: let the user pick another column.
			m.inputErr = msg.err.Error()
			m.state = stateColumn
			return m, nil
		}
		m.reportTable = buildReportTable(m.session, m.width)
		m.state = stateReport
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.savedPath = msg.path
		m.state = stateSaved
		return m, nil

	case spinner.TickMsg:
		if m.state == stateImporting || m.state == stateProcessing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.state == statePicking {
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)

		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			if !contains(m.selected, path) {
				m.selected = append(m.selected, path)
			}
			return m, cmd
		}

		return m, cmd
	}

	return m, nil
}

func (m Model) importFiles() tea.Cmd {
	session := m.session
	paths := m.selected
	return func() tea.Msg {
		return importedMsg{err: session.Load(paths)}
	}
}

func (m Model) submitColumn() (Model, tea.Cmd) {
	col, err := strconv.Atoi(strings.TrimSpace(m.columnInput.Value()))
	if err != nil {
		m.inputErr = "enter a column number"
		return m, nil
	}
	if err := m.session.SelectColumn(col); err != nil {
		m.inputErr = err.Error()
		return m, nil
	}

	m.inputErr = ""
	m.state = stateProcessing
	session := m.session
	return m, tea.Batch(
		func() tea.Msg { return processedMsg{err: session.Process()} },
		m.spinner.Tick,
	)
}

func (m Model) backToColumn() (Model, tea.Cmd) {
	m.inputErr = ""
	m.savedPath = ""
	m.columnInput.SetValue("")
	m.columnInput.Focus()
	m.state = stateColumn
	return m, textinput.Blink
}

func (m Model) saveOutput() tea.Cmd {
	session := m.session
	path := m.cfg.OutputFile
	sheet := m.cfg.SheetName
	return func() tea.Msg {
		var err error
		if strings.EqualFold(filepath.Ext(path), ".xlsx") {
			err = exporter.WriteXLSX(path, session.Result(), sheet)
		} else {
			err = exporter.Write(path, session.Result())
		}
		return savedMsg{path: path, err: err}
	}
}

func buildReportTable(session *pipeline.Session, width int) table.Model {
	valueWidth := width - 40
	if valueWidth < 20 {
		valueWidth = 20
	}

	columns := []table.Column{
		{Title: "Value", Width: valueWidth},
		{Title: "Count", Width: 7},
		{Title: "Line Numbers", Width: 24},
	}

	rows := make([]table.Row, 0, len(session.Report()))
	for _, entry := range session.Report() {
		rows = append(rows, table.Row{
			entry.Value.String(),
			strconv.Itoa(entry.Count),
			entry.LineNumbers,
		})
	}

	height := len(rows) + 1
	if height > 12 {
		height = 12
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("#2DD4BF"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#0F172A")).Background(lipgloss.Color("#2DD4BF"))
	t.SetStyles(styles)

	return t
}

func contains(paths []string, path string) bool {
	for _, p := range paths {
		if p == path {
			return true
		}
	}
	return false
}

func (m Model) View() string {
	switch m.state {
	case statePicking:
		return m.viewPicking()
	case stateImporting:
		return BoxStyle.Render(m.spinner.View() + " Importing files...")
	case stateColumn:
		return m.viewColumn()
	case stateProcessing:
		return BoxStyle.Render(m.spinner.View() + " Detecting duplicates...")
	case stateReport:
		return m.viewReport()
	case stateSaved:
		return m.viewSaved()
	case stateError:
		return m.viewError()
	}
	return ""
}

func (m Model) viewPicking() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("dupless — Duplicate Detection and Removal"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Select one or more CSV or XLSX files"))
	s.WriteString("\n\n")
	s.WriteString(m.filepicker.View())
	s.WriteString("\n")

	if len(m.selected) > 0 {
		s.WriteString(SelectedStyle.Render(fmt.Sprintf("Selected (%d):", len(m.selected))))
		s.WriteString("\n")
		for _, path := range m.selected {
			s.WriteString("  • " + filepath.Base(path) + "\n")
		}
	}

	s.WriteString(HelpStyle.Render("enter: add file • tab: import selected • q: quit"))

	return s.String()
}

func (m Model) viewColumn() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("Choose a column"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render(fmt.Sprintf("%d row(s) imported", len(m.session.Table()))))
	s.WriteString("\n")

	for _, ierr := range m.session.ImportErrors() {
		s.WriteString(WarningStyle.Render("⚠ skipped " + ierr.Error()))
		s.WriteString("\n")
	}

	if headers := m.session.Headers(); len(headers) > 0 {
		s.WriteString("\nColumns:\n")
		for i, h := range headers {
			s.WriteString(fmt.Sprintf("  %d. %s\n", i+1, h))
		}
	}

	s.WriteString("\nColumn number (1-based): ")
	s.WriteString(m.columnInput.View())
	s.WriteString("\n")

	if m.inputErr != "" {
		s.WriteString(ErrorStyle.Render("✗ " + m.inputErr))
		s.WriteString("\n")
	}

	s.WriteString(HelpStyle.Render("enter: detect and remove duplicates • ctrl+c: quit"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewReport() string {
	var s strings.Builder

	if m.session.HasDuplicates() {
		s.WriteString(TitleStyle.Render("Duplicate Detection Report"))
		s.WriteString("\n\n")
		s.WriteString(m.reportTable.View())
		s.WriteString("\n")
	} else {
		s.WriteString(TitleStyle.Render("No duplicates detected"))
		s.WriteString("\n")
	}

	s.WriteString(SubtitleStyle.Render(fmt.Sprintf(
		"%d row(s) in, %d row(s) out", len(m.session.Table()), len(m.session.Result()))))
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render(fmt.Sprintf("s: save %s • o: choose another column • q: quit", m.cfg.OutputFile)))

	return BoxStyle.Render(s.String())
}

func (m Model) viewSaved() string {
	var s strings.Builder

	s.WriteString(SuccessStyle.Render("✓ Saved " + m.savedPath))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("Rows written: %d\n", len(m.session.Result())))
	s.WriteString(HelpStyle.Render("o: choose another column • any other key: exit"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewError() string {
	var s strings.Builder

	s.WriteString(ErrorStyle.Render("✗ Error"))
	s.WriteString("\n\n")
	s.WriteString(m.err.Error())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("Press any key to exit"))

	return BoxStyle.Render(s.String())
}
