package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV_Layout(t *testing.T) {
	out := string(CSV(sampleSnapshot(t)))
	lines := strings.Split(out, "\n")

	want := []string{
		"SUMMARY",
		"Metric,Value",
		"Brand,Acme Corp",
		"View,Last 30 days",
		"Date Start,2024-03-01",
		"Date End,2024-03-30",
		"Days,30",
		"Total Emails Sent,12400",
		"Total Replies,310",
		"Avg Reply Rate (%),2.5",
		"Active Campaigns,2",
		"",
		"CAMPAIGNS",
		"Campaign Name,Status,Emails Sent,Replies,Avg Reply Rate",
		`"Acme, ""Best"" Co",Active,400,10,2.5%`,
		"Spring Push,Completed,9000,250,",
		"Zero Rate,Active,3000,0,0%",
	}
	assert.Equal(t, want, lines)
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestCSV_QuotedNameRoundTrips(t *testing.T) {
	out := CSV(sampleSnapshot(t))

	idx := strings.Index(string(out), "CAMPAIGNS\n")
	require.GreaterOrEqual(t, idx, 0)

	r := csv.NewReader(strings.NewReader(string(out[idx+len("CAMPAIGNS\n"):])))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, `Acme, "Best" Co`, records[1][0])
	assert.Equal(t, "", records[2][4])
	assert.Equal(t, "0%", records[3][4])
}

func TestCSVEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"", ""},
		{"a,b", `"a,b"`},
		{`say "hi"`, `"say ""hi"""`},
		{"line\nbreak", "\"line\nbreak\""},
		{" leading space", " leading space"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, csvEscape(tt.in), "csvEscape(%q)", tt.in)
	}
}

func TestCSV_Deterministic(t *testing.T) {
	snap := sampleSnapshot(t)
	assert.Equal(t, CSV(snap), CSV(snap))
}

func TestCSV_EmptySnapshot(t *testing.T) {
	snap := sampleSnapshot(t)
	snap.Campaigns = nil
	lines := strings.Split(string(CSV(snap)), "\n")
	assert.Equal(t, "Campaign Name,Status,Emails Sent,Replies,Avg Reply Rate", lines[len(lines)-1])
}
