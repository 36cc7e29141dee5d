package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Color definitions for terminal output.
var (
	Primary   = lipgloss.Color("63")  // Purple
	Secondary = lipgloss.Color("42")  // Green
	Subtle    = lipgloss.Color("240") // Gray
	Warning   = lipgloss.Color("220") // Yellow
)

// TitleStyle is used for the dashboard heading.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary)

// SubtitleStyle is used under the heading.
var SubtitleStyle = lipgloss.NewStyle().
	Foreground(Subtle).
	MarginBottom(1)

// CardStyle creates a bordered stat card.
var CardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Subtle).
	Padding(0, 1).
	Width(26)

// SectionStyle styles section headings.
var SectionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginTop(1)

var badgeStyles = map[Badge]lipgloss.Style{
	BadgeExcellent: lipgloss.NewStyle().Foreground(Secondary).Bold(true),
	BadgeGood:      lipgloss.NewStyle().Foreground(Primary),
	BadgeAverage:   lipgloss.NewStyle().Foreground(Warning),
}

// RenderTerminal draws the dashboard for a terminal of the given width.
func RenderTerminal(d Dashboard, width int) string {
	if width < 40 {
		width = 40
	}

	sections := []string{
		TitleStyle.Render(d.Title),
		SubtitleStyle.Render(d.Subtitle + "  |  Date range: " + d.DateLabel),
		renderCards(d.Cards),
		SectionStyle.Render("Top 10 Campaigns by Volume"),
		renderVolume(d.Volume, width),
		SectionStyle.Render("Reply Rate Performance"),
		renderBreakdown(d.Breakdown, width),
		SectionStyle.Render("Detailed Campaign Performance"),
		renderTable(d.Rows),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderCards(cards []StatCard) string {
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Foreground(Subtle).Render(c.Label),
			lipgloss.NewStyle().Bold(true).Render(c.Value),
			c.Detail,
		)
		rendered = append(rendered, CardStyle.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderVolume plots sent and replies as two series, one point per campaign.
func renderVolume(v VolumeChart, width int) string {
	if len(v.Sent) == 0 {
		return lipgloss.NewStyle().Foreground(Subtle).Render("No data available")
	}

	sent, replies := v.Sent, v.Replies
	// asciigraph needs at least two points to draw a line
	if len(sent) == 1 {
		sent = []float64{sent[0], sent[0]}
		replies = []float64{replies[0], replies[0]}
	}

	graph := asciigraph.PlotMany([][]float64{sent, replies},
		asciigraph.Height(8),
		asciigraph.Width(width-12),
		asciigraph.Caption("emails sent (blue) vs replies (green)"),
		asciigraph.SeriesColors(
			asciigraph.Blue,
			asciigraph.Green,
		),
	)

	var legend []string
	for i, label := range v.Labels {
		legend = append(legend, fmt.Sprintf("%2d. %s", i+1, label))
	}
	return graph + "\n" + strings.Join(legend, "\n")
}

// renderBreakdown draws one horizontal bar per campaign reply rate.
func renderBreakdown(slices []RateSlice, width int) string {
	if len(slices) == 0 {
		return lipgloss.NewStyle().Foreground(Subtle).Render("No data available")
	}

	maxVal, maxLabel := 0.0, 0
	for _, s := range slices {
		if s.Rate.Percent > maxVal {
			maxVal = s.Rate.Percent
		}
		if w := lipgloss.Width(s.Name); w > maxLabel {
			maxLabel = w
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	barWidth := width - maxLabel - 12
	if barWidth < 10 {
		barWidth = 10
	}

	lines := make([]string, 0, len(slices))
	for _, s := range slices {
		value := "n/a"
		barLen := 0
		if s.Rate.Known {
			value = formatPercent(s.Rate.Percent)
			barLen = int(s.Rate.Percent / maxVal * float64(barWidth))
		}
		if barLen < 0 {
			barLen = 0
		}
		bar := lipgloss.NewStyle().Foreground(Secondary).Render(strings.Repeat("█", barLen))
		label := s.Name + strings.Repeat(" ", maxLabel-lipgloss.Width(s.Name))
		lines = append(lines, fmt.Sprintf("%s │%s %s", label, bar, value))
	}
	return strings.Join(lines, "\n")
}

func renderTable(rows []TableRow) string {
	headers := []string{"CAMPAIGN NAME", "STATUS", "EMAILS SENT", "REPLIES", "REPLY RATE"}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		rec := []string{r.Name, r.Status, r.EmailsSent, r.Replies, r.ReplyRate}
		for i, c := range rec {
			if w := lipgloss.Width(c); w > widths[i] {
				widths[i] = w
			}
		}
		cells = append(cells, rec)
	}

	pad := func(s string, w int) string {
		return s + strings.Repeat(" ", w-lipgloss.Width(s))
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(pad(h, widths[i])))
		b.WriteString("  ")
	}
	for ri, rec := range cells {
		b.WriteString("\n")
		for i, c := range rec {
			text := pad(c, widths[i])
			if i == len(rec)-1 {
				if style, ok := badgeStyles[rows[ri].Badge]; ok {
					text = style.Render(text)
				}
			}
			b.WriteString(text)
			b.WriteString("  ")
		}
	}
	return b.String()
}
