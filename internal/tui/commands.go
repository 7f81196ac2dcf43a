package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fyrsmithlabs/prj/internal/record"
	"github.com/fyrsmithlabs/prj/internal/store"
)

// Message types.
type recordsMsg struct {
	records  []*record.Record
	failures []store.ScanFailure
}
type outputMsg string
type doneMsg string
type storeChangedMsg struct{}
type errMsg struct{ err error }

// parseCost parses user-entered cost text, tolerating a comma decimal
// separator.
func parseCost(s string) (float64, error) {
	cost, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cost %q", s)
	}
	return cost, nil
}

// loadRecords lists all records for the picker.
func loadRecords(st store.Store) tea.Cmd {
	return func() tea.Msg {
		recs, failures, err := st.List(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return recordsMsg{records: recs, failures: failures}
	}
}

// addRecord validates the form fields and adds a new record.
func addRecord(st store.Store, name, area, costText string) tea.Cmd {
	return func() tea.Msg {
		cost, err := parseCost(costText)
		if err != nil {
			return errMsg{err}
		}
		rec, err := record.New(name, area, cost)
		if err != nil {
			return errMsg{err}
		}
		if err := st.Add(context.Background(), rec); err != nil {
			return errMsg{err}
		}
		return doneMsg("Project added successfully.")
	}
}

// updateRecord applies the form fields to the selected record and persists
// it. The setters revalidate; the record is left untouched on a validation
// failure.
func updateRecord(st store.Store, rec *record.Record, name, area, costText string) tea.Cmd {
	return func() tea.Msg {
		cost, err := parseCost(costText)
		if err != nil {
			return errMsg{err}
		}
		if err := rec.SetName(name); err != nil {
			return errMsg{err}
		}
		if err := rec.SetArea(area); err != nil {
			return errMsg{err}
		}
		if err := rec.SetCost(cost); err != nil {
			return errMsg{err}
		}
		if err := st.Update(context.Background(), rec); err != nil {
			return errMsg{err}
		}
		return doneMsg("Project updated successfully.")
	}
}

// deleteRecord removes a record by name.
func deleteRecord(st store.Store, name string) tea.Cmd {
	return func() tea.Msg {
		if err := st.Delete(context.Background(), name); err != nil {
			return errMsg{err}
		}
		return doneMsg(fmt.Sprintf("Project %q deleted successfully.", name))
	}
}

// listAll renders the full listing.
func listAll(st store.Store) tea.Cmd {
	return func() tea.Msg {
		recs, failures, err := st.List(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return outputMsg(renderRecords("All projects", recs, failures))
	}
}

// listAboveCost renders records with cost strictly above the threshold.
func listAboveCost(st store.Store, thresholdText string) tea.Cmd {
	return func() tea.Msg {
		threshold, err := parseCost(thresholdText)
		if err != nil {
			return errMsg{err}
		}
		recs, failures, err := st.ListAboveCost(context.Background(), threshold)
		if err != nil {
			return errMsg{err}
		}
		title := fmt.Sprintf("Projects with cost above %g", threshold)
		return outputMsg(renderRecords(title, recs, failures))
	}
}

// countByCriteria renders the count of records matching min cost and area.
func countByCriteria(st store.Store, minCostText, area string) tea.Cmd {
	return func() tea.Msg {
		minCost, err := parseCost(minCostText)
		if err != nil {
			return errMsg{err}
		}
		count, failures, err := st.CountByCriteria(context.Background(), minCost, area)
		if err != nil {
			return errMsg{err}
		}
		out := sectionStyle.Render("┃ Count") + "\n" +
			labelStyle.Render("Matching projects: ") + valueStyle.Render(strconv.Itoa(count))
		for _, f := range failures {
			out += "\n" + errorStyle.Render("  ! skipped "+f.Key)
		}
		return outputMsg(out)
	}
}
