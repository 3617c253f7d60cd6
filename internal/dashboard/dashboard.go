package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cf-insight/internal/report"
	"cf-insight/internal/stats"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Underline(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

type view int

const (
	viewOverview view = iota
	viewTags
	viewActivity
	viewContests
	viewCount
)

var viewNames = [viewCount]string{"Overview", "Tags", "Activity", "Contests"}

// Model is the dashboard over pre-aggregated per-user statistics. The window
// is fixed at launch; the model never recomputes stats, it only re-renders
// read-only views of them.
type Model struct {
	reports []report.UserReport
	window  stats.Window

	user     int
	active   view
	contests table.Model
	width    int
	height   int
}

// New builds a dashboard over the given reports.
func New(reports []report.UserReport, window stats.Window) Model {
	m := Model{
		reports: reports,
		window:  window,
	}
	m.contests = m.contestTable()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.active = (m.active + 1) % viewCount
		case "shift+tab", "left", "h":
			m.active = (m.active + viewCount - 1) % viewCount
		case "down", "j":
			if m.user < len(m.reports)-1 {
				m.user++
				m.contests = m.contestTable()
			}
		case "up", "k":
			if m.user > 0 {
				m.user--
				m.contests = m.contestTable()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	if m.active == viewContests {
		var cmd tea.Cmd
		m.contests, cmd = m.contests.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.reports) == 0 {
		return "No users to display.\n\nPress q to quit."
	}

	r := m.reports[m.user]

	var b strings.Builder
	b.WriteString(titleStyle.Render("Codeforces Activity Dashboard"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s (%s)  ·  user %d/%d\n\n",
		r.Name, r.Handle, m.user+1, len(m.reports)))
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.active {
	case viewOverview:
		b.WriteString(m.renderOverview(r))
	case viewTags:
		b.WriteString(m.renderTags(r))
	case viewActivity:
		b.WriteString(m.renderActivity(r))
	case viewContests:
		b.WriteString(m.contests.View())
	}

	b.WriteString(helpStyle.Render("\n↑/↓ user · tab/←/→ view · q quit"))
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, int(viewCount))
	for v := view(0); v < viewCount; v++ {
		if v == m.active {
			tabs = append(tabs, tabActiveStyle.Render(viewNames[v]))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(viewNames[v]))
		}
	}
	return strings.Join(tabs, "  ")
}

func (m Model) renderOverview(r report.UserReport) string {
	s := r.Stats
	lines := []string{
		statLine("Problems Attempted", fmt.Sprintf("%d", s.Attempted)),
		statLine("Problems Solved", fmt.Sprintf("%d", s.Solved)),
		statLine("Average Difficulty", fmt.Sprintf("%d", s.AvgDifficulty)),
		statLine("Contests Participated", fmt.Sprintf("%d", s.ContestCount)),
		statLine("Reporting Period", fmt.Sprintf("%s - %s",
			m.window.Start.Format("02 Jan 2006"),
			m.window.End.AddDate(0, 0, -1).Format("02 Jan 2006"))),
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func statLine(label, value string) string {
	return fmt.Sprintf("%s %s",
		statLabelStyle.Render(fmt.Sprintf("%-22s", label+":")),
		statValueStyle.Render(value))
}

func (m Model) renderTags(r report.UserReport) string {
	rows := report.TopTags(r.Stats.TagFrequency, 10)
	if len(rows) == 0 {
		return "No tag data for the selected period."
	}

	max := rows[0].Count
	var b strings.Builder
	for _, tc := range rows {
		b.WriteString(fmt.Sprintf("%-24s %s %d\n", tc.Tag, bar(tc.Count, max, 30), tc.Count))
	}
	return b.String()
}

func (m Model) renderActivity(r report.UserReport) string {
	rows := report.SortedDays(r.Stats.DailySolves)
	if len(rows) == 0 {
		return "No activity in the selected period."
	}

	max := 0
	for _, d := range rows {
		if d.Count > max {
			max = d.Count
		}
	}

	var b strings.Builder
	for _, d := range rows {
		b.WriteString(fmt.Sprintf("%s %s %d\n", d.Day, bar(d.Count, max, 30), d.Count))
	}
	return b.String()
}

// bar renders a fixed-width proportional bar. Nonzero counts always get at
// least one block so sparse days stay visible.
func bar(count, max, width int) string {
	if max <= 0 {
		max = 1
	}
	filled := count * width / max
	if filled == 0 && count > 0 {
		filled = 1
	}
	return barStyle.Render(strings.Repeat("█", filled) + strings.Repeat(" ", width-filled))
}

func (m Model) contestTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 13},
		{Title: "Contest", Width: 38},
		{Title: "Rank", Width: 6},
		{Title: "Rating", Width: 7},
		{Title: "Change", Width: 7},
	}

	var rows []table.Row
	if len(m.reports) > 0 {
		for _, c := range m.reports[m.user].Stats.ContestResults {
			change := c.RatingChange()
			changeText := fmt.Sprintf("%d", change)
			if change > 0 {
				changeText = fmt.Sprintf("+%d", change)
			}
			rows = append(rows, table.Row{
				time.Unix(c.Timestamp, 0).In(m.window.Loc).Format("Jan 02 15:04"),
				c.Name,
				fmt.Sprintf("%d", c.Rank),
				fmt.Sprintf("%d", c.NewRating),
				changeText,
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("62")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)

	return t
}
