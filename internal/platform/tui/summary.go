package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// maxSummaryRows caps the runs listed after a session.
const maxSummaryRows = 15

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))
	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	summaryEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Italic(true)
)

// newRunTable creates a table listing runs in play order, numbered from first.
func newRunTable(runs []storage.Run, first int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Best", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "End", Width: 5},
		{Title: "Theme", Width: 8},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		end := r.Cause
		if r.GodMode {
			end += "*"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", first+i),
			flappy.FormatScore(r.Score),
			flappy.FormatScore(r.Best),
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
			end,
			r.Theme,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// RenderSummary renders the end-of-session report: the session's runs and
// the aggregate figures of the run log.
func RenderSummary(runs []storage.Run, stats *storage.Stats) string {
	var b strings.Builder

	b.WriteString(summaryTitleStyle.Render("SESSION SUMMARY"))
	b.WriteString("\n")

	if len(runs) == 0 {
		b.WriteString(summaryEmptyStyle.Render("No rounds finished."))
		b.WriteString("\n")
		return b.String()
	}

	first := 1
	if len(runs) > maxSummaryRows {
		first = len(runs) - maxSummaryRows + 1
		runs = runs[len(runs)-maxSummaryRows:]
	}
	b.WriteString(summaryBoxStyle.Render(newRunTable(runs, first).View()))
	b.WriteString("\n")

	if stats != nil {
		fmt.Fprintf(&b, "Rounds: %d   Best: %s   Average: %.2f   Played: %s\n",
			stats.Runs,
			flappy.FormatScore(stats.BestScore),
			stats.AvgScore,
			stats.TotalTime.Round(100*time.Millisecond),
		)
	}

	return b.String()
}

// leaderboardRows caps the runs listed on the server leaderboard.
const leaderboardRows = 5

// RenderLeaderboard renders the best runs across every session, ranked.
func RenderLeaderboard(top []storage.Run) string {
	var b strings.Builder

	b.WriteString(summaryTitleStyle.Render("SERVER TOP"))
	b.WriteString("\n")

	if len(top) == 0 {
		b.WriteString(summaryEmptyStyle.Render("No rounds finished yet."))
		b.WriteString("\n")
		return b.String()
	}

	if len(top) > leaderboardRows {
		top = top[:leaderboardRows]
	}
	b.WriteString(summaryBoxStyle.Render(newRunTable(top, 1).View()))
	b.WriteString("\n")
	return b.String()
}
