package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/ignite/campaign-dashboard/internal/datanorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTerminal(t *testing.T) {
	out := RenderTerminal(Build(snapshotFrom(t, sampleDocument)), 100)

	assert.Contains(t, out, "Acme Campaign Analytics")
	assert.Contains(t, out, "TOTAL EMAILS SENT")
	assert.Contains(t, out, "12,500")
	assert.Contains(t, out, "Top 10 Campaigns by Volume")
	assert.Contains(t, out, " 1. Summer")
	assert.Contains(t, out, "Reply Rate Performance")
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, "CAMPAIGN NAME")
	assert.Contains(t, out, "Winter")
}

func TestRenderTerminalEmpty(t *testing.T) {
	out := RenderTerminal(Build(snapshotFrom(t, `{}`)), 10)

	assert.Contains(t, out, "Client Campaign Analytics")
	assert.Contains(t, out, "No data available")
}

func TestRenderTerminalSingleCampaign(t *testing.T) {
	raw := `{"campaigns": [{"name": "Solo", "status": 1, "emails_sent": 10, "replies": -3, "reply_rate": "-5%"}]}`

	assert.NotPanics(t, func() {
		out := RenderTerminal(Build(snapshotFrom(t, raw)), 80)
		assert.Contains(t, out, "Solo")
	})
}

func TestRenderBreakdownAlignsWideLabels(t *testing.T) {
	out := renderBreakdown([]RateSlice{
		{Name: "Café Ñoño", Rate: datanorm.KnownRate(3)},
		{Name: "Spring", Rate: datanorm.KnownRate(1.5)},
		{Name: "日本", Rate: datanorm.Rate{}},
	}, 60)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	want := -1
	for _, line := range lines {
		prefix, _, found := strings.Cut(line, "│")
		require.True(t, found, line)
		if want < 0 {
			want = lipgloss.Width(prefix)
		}
		assert.Equal(t, want, lipgloss.Width(prefix), line)
	}
}
