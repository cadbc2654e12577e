package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// maxRounds is how many journal rows the game-over panel lists.
const maxRounds = 5

// newRoundsTable creates the table listing the best rounds of this process.
func newRoundsTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Skin", Width: 8},
		{Title: "Score", Width: 7},
		{Title: "Hits", Width: 6},
		{Title: "When", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(maxRounds+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// roundRows formats journal rounds as table rows.
func roundRows(rounds []storage.Round) []table.Row {
	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Skin,
			humanize.Comma(int64(r.Score)),
			fmt.Sprintf("%d/%d", r.EvilHits, r.HeroHits),
			humanize.Time(r.CreatedAt),
		}
	}
	return rows
}

// loadRounds refreshes t from the journal. A nil store leaves it empty.
func loadRounds(t *table.Model, store *storage.Store) error {
	if store == nil {
		t.SetRows(nil)
		return nil
	}
	rounds, err := store.TopRounds("", maxRounds)
	if err != nil {
		t.SetRows(nil)
		return err
	}
	t.SetRows(roundRows(rounds))
	t.GotoTop()
	return nil
}
