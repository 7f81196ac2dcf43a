// Package tui implements the interactive surface for managing project
// records. It is a thin event-dispatch layer over the store contract: every
// storage call runs as a tea.Cmd and reports back with a message.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/prj/internal/record"
	"github.com/fyrsmithlabs/prj/internal/store"
)

// mode is the current screen.
type mode int

const (
	modeMenu mode = iota
	modeAdd
	modePick
	modeUpdate
	modeConfirmDelete
	modeThreshold
	modeCount
	modeOutput
)

// action is what a record picked in modePick is for.
type action int

const (
	actionView action = iota
	actionUpdate
	actionDelete
)

// menuEntry is one home-screen action.
type menuEntry struct {
	key   string
	label string
	run   func(m Model) (Model, tea.Cmd)
}

// Lipgloss styles.
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("51")).
			Bold(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	containerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(1, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)
)

// Model is the bubbletea model for the record manager.
type Model struct {
	st       store.Store
	logger   *zap.Logger
	watchDir string // store directory to watch; empty disables the watcher

	mode   mode
	action action

	menuCursor int

	// add/update form: name, area, cost
	inputs     []textinput.Model
	focusIndex int

	// record picker
	records    []*record.Record
	pickCursor int
	selected   *record.Record

	// single-prompt screens
	threshold textinput.Model
	minCost   textinput.Model
	area      textinput.Model

	output   string
	status   string
	err      error
	quitting bool
}

// New creates the interactive model over the given store. watchDir, when
// non-empty, is watched for external changes to record files.
func New(st store.Store, logger *zap.Logger, watchDir string) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	inputs := make([]textinput.Model, 3)
	for i, placeholder := range []string{"name", "area", "cost"} {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 128
		in.Width = 32
		inputs[i] = in
	}

	threshold := textinput.New()
	threshold.Placeholder = "cost threshold"
	threshold.Width = 20

	minCost := textinput.New()
	minCost.Placeholder = "minimum cost"
	minCost.Width = 20

	area := textinput.New()
	area.Placeholder = "area"
	area.Width = 20

	return Model{
		st:        st,
		logger:    logger,
		watchDir:  watchDir,
		mode:      modeMenu,
		inputs:    inputs,
		threshold: threshold,
		minCost:   minCost,
		area:      area,
	}
}

// menu defines the home-screen actions in display order.
func menu() []menuEntry {
	return []menuEntry{
		{"a", "Add project", func(m Model) (Model, tea.Cmd) {
			m = m.resetForm("", "", "")
			m.mode = modeAdd
			return m, m.inputs[0].Focus()
		}},
		{"v", "Show project", func(m Model) (Model, tea.Cmd) {
			m.action = actionView
			return m, loadRecords(m.st)
		}},
		{"u", "Update project", func(m Model) (Model, tea.Cmd) {
			m.action = actionUpdate
			return m, loadRecords(m.st)
		}},
		{"d", "Delete project", func(m Model) (Model, tea.Cmd) {
			m.action = actionDelete
			return m, loadRecords(m.st)
		}},
		{"l", "Show all projects", func(m Model) (Model, tea.Cmd) {
			return m, listAll(m.st)
		}},
		{"f", "Show projects above cost", func(m Model) (Model, tea.Cmd) {
			m.threshold.SetValue("")
			m.mode = modeThreshold
			return m, m.threshold.Focus()
		}},
		{"c", "Count projects by criteria", func(m Model) (Model, tea.Cmd) {
			m.minCost.SetValue("")
			m.area.SetValue("")
			m.focusIndex = 0
			m.mode = modeCount
			return m, m.minCost.Focus()
		}},
	}
}

// Init starts the store watcher when a directory was given.
func (m Model) Init() tea.Cmd {
	if m.watchDir == "" {
		return nil
	}
	return watchStore(m.watchDir, m.logger)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case recordsMsg:
		m.err = nil
		m.records = msg.records
		m.pickCursor = 0
		if len(m.records) == 0 {
			m.mode = modeOutput
			m.output = dimStyle.Render("No projects available.")
			return m, nil
		}
		m.mode = modePick
		return m, nil

	case outputMsg:
		m.err = nil
		m.mode = modeOutput
		m.output = string(msg)
		return m, nil

	case doneMsg:
		m.err = nil
		m.mode = modeMenu
		m.status = string(msg)
		return m, nil

	case storeChangedMsg:
		// External change to the record directory: refresh whatever listing
		// is on screen and keep watching.
		cmds := []tea.Cmd{watchStore(m.watchDir, m.logger)}
		if m.mode == modePick {
			cmds = append(cmds, loadRecords(m.st))
		}
		return m, tea.Batch(cmds...)

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m.updateInputs(msg)
}

// handleKey routes key presses by mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeMenu:
		return m.handleMenuKey(msg)
	case modeAdd, modeUpdate:
		return m.handleFormKey(msg)
	case modePick:
		return m.handlePickKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	case modeThreshold:
		return m.handleThresholdKey(msg)
	case modeCount:
		return m.handleCountKey(msg)
	case modeOutput:
		m.mode = modeMenu
		m.output = ""
		return m, nil
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := menu()
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
		return m, nil
	case "down", "j":
		if m.menuCursor < len(entries)-1 {
			m.menuCursor++
		}
		return m, nil
	case "enter":
		m.status = ""
		m.err = nil
		return entries[m.menuCursor].run(m)
	}
	for _, e := range entries {
		if msg.String() == e.key {
			m.status = ""
			m.err = nil
			return e.run(m)
		}
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeMenu
		m.err = nil
		return m, nil
	case "tab", "shift+tab", "up", "down":
		if msg.String() == "tab" || msg.String() == "down" {
			m.focusIndex = (m.focusIndex + 1) % len(m.inputs)
		} else {
			m.focusIndex = (m.focusIndex - 1 + len(m.inputs)) % len(m.inputs)
		}
		var cmds []tea.Cmd
		for i := range m.inputs {
			if i == m.focusIndex {
				cmds = append(cmds, m.inputs[i].Focus())
			} else {
				m.inputs[i].Blur()
			}
		}
		return m, tea.Batch(cmds...)
	case "enter":
		name := m.inputs[0].Value()
		area := m.inputs[1].Value()
		cost := m.inputs[2].Value()
		if m.mode == modeAdd {
			return m, addRecord(m.st, name, area, cost)
		}
		return m, updateRecord(m.st, m.selected, name, area, cost)
	}
	return m.updateInputs(msg)
}

func (m Model) handlePickKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeMenu
		return m, nil
	case "up", "k":
		if m.pickCursor > 0 {
			m.pickCursor--
		}
		return m, nil
	case "down", "j":
		if m.pickCursor < len(m.records)-1 {
			m.pickCursor++
		}
		return m, nil
	case "enter":
		if m.pickCursor >= len(m.records) {
			return m, nil
		}
		m.selected = m.records[m.pickCursor]
		switch m.action {
		case actionView:
			m.mode = modeOutput
			m.output = renderRecord(m.selected)
			return m, nil
		case actionUpdate:
			m = m.resetForm(m.selected.Name(), m.selected.Area(),
				fmt.Sprintf("%g", m.selected.Cost()))
			m.mode = modeUpdate
			return m, m.inputs[0].Focus()
		case actionDelete:
			m.mode = modeConfirmDelete
			return m, nil
		}
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m, deleteRecord(m.st, m.selected.Name())
	case "n", "N", "esc":
		m.mode = modeMenu
		return m, nil
	}
	return m, nil
}

func (m Model) handleThresholdKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeMenu
		m.err = nil
		return m, nil
	case "enter":
		return m, listAboveCost(m.st, m.threshold.Value())
	}
	var cmd tea.Cmd
	m.threshold, cmd = m.threshold.Update(msg)
	return m, cmd
}

func (m Model) handleCountKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeMenu
		m.err = nil
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.focusIndex = 1 - m.focusIndex
		if m.focusIndex == 0 {
			m.area.Blur()
			return m, m.minCost.Focus()
		}
		m.minCost.Blur()
		return m, m.area.Focus()
	case "enter":
		return m, countByCriteria(m.st, m.minCost.Value(), m.area.Value())
	}
	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.minCost, cmd = m.minCost.Update(msg)
	} else {
		m.area, cmd = m.area.Update(msg)
	}
	return m, cmd
}

// updateInputs forwards non-key messages (and typing) to the text inputs.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(m.inputs)+3)
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.threshold, cmd = m.threshold.Update(msg)
	cmds = append(cmds, cmd)
	m.minCost, cmd = m.minCost.Update(msg)
	cmds = append(cmds, cmd)
	m.area, cmd = m.area.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// resetForm sets the three form fields and focuses the first.
func (m Model) resetForm(name, area, cost string) Model {
	values := []string{name, area, cost}
	for i := range m.inputs {
		m.inputs[i].SetValue(values[i])
		m.inputs[i].Blur()
	}
	m.focusIndex = 0
	return m
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(" prj — project records ") + "\n")

	switch m.mode {
	case modeMenu:
		m.viewMenu(&b)
	case modeAdd:
		m.viewForm(&b, "Add project")
	case modeUpdate:
		m.viewForm(&b, "Edit project")
	case modePick:
		m.viewPick(&b)
	case modeConfirmDelete:
		b.WriteString(sectionStyle.Render("┃ Delete project") + "\n\n")
		b.WriteString("Delete " + valueStyle.Render(m.selected.Name()) + "? ")
		b.WriteString(footerKeyStyle.Render("[y]") + footerStyle.Render(" yes  ") +
			footerKeyStyle.Render("[n]") + footerStyle.Render(" no") + "\n")
	case modeThreshold:
		b.WriteString(sectionStyle.Render("┃ Projects above cost") + "\n\n")
		b.WriteString(labelStyle.Render("Threshold: ") + m.threshold.View() + "\n")
		b.WriteString(footerStyle.Render("[enter] run  [esc] back") + "\n")
	case modeCount:
		b.WriteString(sectionStyle.Render("┃ Count projects by criteria") + "\n\n")
		b.WriteString(labelStyle.Render("Min cost: ") + m.minCost.View() + "\n")
		b.WriteString(labelStyle.Render("Area:     ") + m.area.View() + "\n")
		b.WriteString(footerStyle.Render("[tab] switch  [enter] run  [esc] back") + "\n")
	case modeOutput:
		b.WriteString("\n" + m.output + "\n")
		b.WriteString(footerStyle.Render("press any key to return") + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + okStyle.Render(m.status) + "\n")
	}

	return containerStyle.Render(b.String())
}

func (m Model) viewMenu(b *strings.Builder) {
	b.WriteString(sectionStyle.Render("┃ Actions") + "\n")
	for i, e := range menu() {
		cursor := "  "
		if i == m.menuCursor {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(cursor + footerKeyStyle.Render("["+e.key+"]") + " " + e.label + "\n")
	}
	b.WriteString(footerStyle.Render("[enter] select  [q] quit") + "\n")
}

func (m Model) viewForm(b *strings.Builder, title string) {
	b.WriteString(sectionStyle.Render("┃ "+title) + "\n\n")
	labels := []string{"Name: ", "Area: ", "Cost: "}
	for i := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]) + m.inputs[i].View() + "\n")
	}
	b.WriteString(footerStyle.Render("[tab] next field  [enter] save  [esc] cancel") + "\n")
}

func (m Model) viewPick(b *strings.Builder) {
	titles := map[action]string{
		actionView:   "Select a project to view",
		actionUpdate: "Select a project to update",
		actionDelete: "Select a project to delete",
	}
	b.WriteString(sectionStyle.Render("┃ "+titles[m.action]) + "\n")
	for i, rec := range m.records {
		cursor := "  "
		if i == m.pickCursor {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(cursor + rec.Name() + dimStyle.Render(
			fmt.Sprintf("  (%s, %.2f)", rec.Area(), rec.Cost())) + "\n")
	}
	b.WriteString(footerStyle.Render("[enter] select  [esc] back") + "\n")
}

// renderRecord renders one record's details.
func renderRecord(rec *record.Record) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("┃ Project details") + "\n")
	b.WriteString(labelStyle.Render("Name: ") + valueStyle.Render(rec.Name()) + "\n")
	b.WriteString(labelStyle.Render("Area: ") + valueStyle.Render(rec.Area()) + "\n")
	b.WriteString(labelStyle.Render("Cost: ") + valueStyle.Render(fmt.Sprintf("%.2f", rec.Cost())))
	return b.String()
}

// renderRecords renders a listing for the output screen.
func renderRecords(title string, recs []*record.Record, failures []store.ScanFailure) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("┃ "+title) + "\n")
	if len(recs) == 0 {
		b.WriteString(dimStyle.Render("  (none)") + "\n")
	}
	for _, rec := range recs {
		b.WriteString("  " + valueStyle.Render(rec.Name()) +
			dimStyle.Render(fmt.Sprintf("  %s  %.2f", rec.Area(), rec.Cost())) + "\n")
	}
	for _, f := range failures {
		b.WriteString(errorStyle.Render("  ! skipped "+f.Key) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
