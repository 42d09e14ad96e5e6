package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Leaderboard layout constants
const (
	leaderboardSize = 8 // Rows shown next to the end screen
	leaderboardGap  = 3 // Columns between board and table
)

var leaderboardTitle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

// newLeaderboardTable builds a read-only table of session scores.
func newLeaderboardTable(entries []storage.ScoreEntry) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 6},
		{Title: "Time", Width: 8},
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		when := "-"
		if !e.CreatedAt.IsZero() {
			when = e.CreatedAt.Local().Format("15:04:05")
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			truncate(e.Player, 12),
			strconv.Itoa(e.Score),
			when,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(leaderboardSize+1),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	// No cursor: the table is display only
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// leaderboardView renders the session leaderboard panel.
func leaderboardView(title string, entries []storage.ScoreEntry) string {
	if len(entries) == 0 {
		return leaderboardTitle.Render(title) + "\nNo rounds finished yet."
	}
	t := newLeaderboardTable(entries)
	return lipgloss.JoinVertical(lipgloss.Left,
		leaderboardTitle.Render(fmt.Sprintf("%s · session best", title)),
		t.View(),
	)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
