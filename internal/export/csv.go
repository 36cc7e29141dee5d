package export

import (
	"strconv"
	"strings"

	"github.com/ignite/campaign-dashboard/internal/datanorm"
)

var campaignCSVHeader = []string{"Campaign Name", "Status", "Emails Sent", "Replies", "Avg Reply Rate"}

// CSV renders the two-section SUMMARY / CAMPAIGNS document. Campaigns keep
// snapshot order. Lines are joined with "\n" and there is no trailing newline.
func CSV(snap *datanorm.Snapshot) []byte {
	lines := []string{"SUMMARY", "Metric,Value"}
	for _, row := range summaryRows(snap) {
		lines = append(lines, csvEscape(row.label)+","+csvEscape(row.text))
	}

	lines = append(lines, "", "CAMPAIGNS", strings.Join(campaignCSVHeader, ","))
	for _, c := range snap.Campaigns {
		lines = append(lines, strings.Join([]string{
			csvEscape(c.Name),
			csvEscape(string(c.Status)),
			csvEscape(strconv.FormatInt(c.EmailsSent, 10)),
			csvEscape(strconv.FormatInt(c.Replies, 10)),
			csvEscape(formatRate(c.ReplyRate)),
		}, ","))
	}

	return []byte(strings.Join(lines, "\n"))
}

// csvEscape quotes a field containing a comma, quote or newline and doubles
// inner quotes. Anything else is written as-is.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// formatRate renders a known rate as "<n>%" and an unknown one as blank.
func formatRate(r datanorm.Rate) string {
	if !r.Known {
		return ""
	}
	return formatNumber(r.Percent) + "%"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// summaryRow is one metric of the summary block. number is set for metrics
// that the spreadsheet stores as numeric cells.
type summaryRow struct {
	label   string
	text    string
	number  float64
	numeric bool
}

func summaryRows(snap *datanorm.Snapshot) []summaryRow {
	s := snap.Stats
	num := func(label string, v float64) summaryRow {
		return summaryRow{label: label, text: formatNumber(v), number: v, numeric: true}
	}
	return []summaryRow{
		{label: "Brand", text: snap.Brand},
		{label: "View", text: snap.ViewLabel()},
		{label: "Date Start", text: snap.DateRange.Start},
		{label: "Date End", text: snap.DateRange.End},
		num("Days", float64(snap.DateRange.Days)),
		num("Total Emails Sent", s.TotalSent),
		num("Total Replies", s.TotalReplies),
		num("Avg Reply Rate (%)", s.ReplyRatePercent),
		num("Active Campaigns", float64(s.ActiveCampaigns)),
	}
}
