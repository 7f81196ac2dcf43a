package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/prj/internal/record"
	"github.com/fyrsmithlabs/prj/internal/store"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok)
	return got
}

func testRecords(t *testing.T, names ...string) []*record.Record {
	t.Helper()
	recs := make([]*record.Record, 0, len(names))
	for _, name := range names {
		rec, err := record.New(name, "Civil", 100.0)
		require.NoError(t, err)
		recs = append(recs, rec)
	}
	return recs
}

func TestNewStartsInMenu(t *testing.T) {
	m := New(store.NewMemoryStore(), nil, "")
	assert.Equal(t, modeMenu, m.mode)
	assert.Contains(t, m.View(), "Actions")
}

func TestMenuKeyOpensAddForm(t *testing.T) {
	m := New(store.NewMemoryStore(), nil, "")
	m = update(t, m, keyMsg("a"))
	assert.Equal(t, modeAdd, m.mode)
	assert.Contains(t, m.View(), "Add project")
}

func TestMenuQuit(t *testing.T) {
	m := New(store.NewMemoryStore(), nil, "")
	m = update(t, m, keyMsg("q"))
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestEmptyRecordsShowsMessage(t *testing.T) {
	m := New(store.NewMemoryStore(), nil, "")
	m.action = actionView
	m = update(t, m, recordsMsg{})
	assert.Equal(t, modeOutput, m.mode)
	assert.Contains(t, m.output, "No projects available")
}

func TestPickNavigationStaysInBounds(t *testing.T) {
	m := New(store.NewMemoryStore(), nil, "")
	m.action = actionView
	m = update(t, m, recordsMsg{records: testRecords(t, "Bridge", "Tunnel")})
	require.Equal(t, modePick, m.mode)

	m = update(t, m, keyMsg("k"))
	assert.Equal(t, 0, m.pickCursor)

	m = update(t, m, keyMsg("j"))
	m = update(t, m, keyMsg("j"))
	assert.Equal(t, 1, m.pickCursor)
}

func TestPickViewShowsDetails(t *testing.T) {
	m := New(store.NewMemoryStore(), nil, "")
	m.action = actionView
	m = update(t, m, recordsMsg{records: testRecords(t, "Bridge")})
	m = update(t, m, keyMsg("enter"))

	assert.Equal(t, modeOutput, m.mode)
	assert.Contains(t, m.output, "Bridge")
}

func TestPickUpdatePrefillsForm(t *testing.T) {
	m := New(store.NewMemoryStore(), nil, "")
	m.action = actionUpdate
	m = update(t, m, recordsMsg{records: testRecords(t, "Bridge")})
	m = update(t, m, keyMsg("enter"))

	require.Equal(t, modeUpdate, m.mode)
	assert.Equal(t, "Bridge", m.inputs[0].Value())
	assert.Equal(t, "Civil", m.inputs[1].Value())
	assert.Equal(t, "100", m.inputs[2].Value())
}

func TestConfirmDeleteDeclineReturnsToMenu(t *testing.T) {
	m := New(store.NewMemoryStore(), nil, "")
	m.action = actionDelete
	m = update(t, m, recordsMsg{records: testRecords(t, "Bridge")})
	m = update(t, m, keyMsg("enter"))
	require.Equal(t, modeConfirmDelete, m.mode)

	m = update(t, m, keyMsg("n"))
	assert.Equal(t, modeMenu, m.mode)
}

func TestDoneMsgReturnsToMenuWithStatus(t *testing.T) {
	m := New(store.NewMemoryStore(), nil, "")
	m.mode = modeAdd
	m = update(t, m, doneMsg("Project added successfully."))
	assert.Equal(t, modeMenu, m.mode)
	assert.Contains(t, m.View(), "Project added successfully.")
}

func TestErrMsgRendersError(t *testing.T) {
	m := New(store.NewMemoryStore(), nil, "")
	m = update(t, m, errMsg{errors.New("boom")})
	assert.Contains(t, m.View(), "boom")
}

func TestOutputScreenDismissesOnAnyKey(t *testing.T) {
	m := New(store.NewMemoryStore(), nil, "")
	m.mode = modeOutput
	m.output = "something"
	m = update(t, m, keyMsg("x"))
	assert.Equal(t, modeMenu, m.mode)
	assert.Empty(t, m.output)
}

func TestParseCost(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"1500", 1500.0, false},
		{"1500.75", 1500.75, false},
		{"1500,75", 1500.75, false},
		{" 1500 ", 1500.0, false},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseCost(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCost(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseCost(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRenderRecordsReportsSkippedEntries(t *testing.T) {
	out := renderRecords("All projects", testRecords(t, "Bridge"),
		[]store.ScanFailure{{Key: "notes.md", Err: errors.New("bad")}})
	assert.True(t, strings.Contains(out, "Bridge"))
	assert.True(t, strings.Contains(out, "notes.md"))
}
