// Package view builds the read-only dashboard presentation from a snapshot:
// header text, stat cards, the volume and reply-rate charts and the
// campaign table.
package view

import (
	"fmt"
	"math"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/ignite/campaign-dashboard/internal/datanorm"
)

const (
	// VolumeChartLimit caps the number of campaigns in the volume chart.
	VolumeChartLimit = 10
	// BreakdownLimit caps the number of campaigns in the reply-rate breakdown.
	BreakdownLimit = 4
)

// Badge grades a campaign's reply rate in the table.
type Badge string

const (
	BadgeNone      Badge = ""
	BadgeExcellent Badge = "excellent"
	BadgeGood      Badge = "good"
	BadgeAverage   Badge = "average"
)

// GradeRate maps a reply rate onto a badge. Unknown rates get no badge.
func GradeRate(r datanorm.Rate) Badge {
	switch {
	case !r.Known:
		return BadgeNone
	case r.Percent >= 2.0:
		return BadgeExcellent
	case r.Percent >= 1.0:
		return BadgeGood
	default:
		return BadgeAverage
	}
}

// StatCard is one headline metric
type StatCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Detail string `json:"detail"`
}

// VolumeChart is the emails-sent vs replies chart. Derived is true when the
// series were computed from campaigns because the payload had no chart block.
type VolumeChart struct {
	Labels  []string  `json:"labels"`
	Sent    []float64 `json:"sent"`
	Replies []float64 `json:"replies"`
	Derived bool      `json:"derived"`
}

// RateSlice is one entry of the reply-rate breakdown
type RateSlice struct {
	Name string        `json:"name"`
	Rate datanorm.Rate `json:"reply_rate"`
}

// TableRow is one formatted campaign table row
type TableRow struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	EmailsSent string `json:"emails_sent"`
	Replies    string `json:"replies"`
	ReplyRate  string `json:"reply_rate"`
	Badge      Badge  `json:"badge,omitempty"`
}

// Dashboard is the complete view model for one snapshot
type Dashboard struct {
	Title     string      `json:"title"`
	Subtitle  string      `json:"subtitle"`
	DateLabel string      `json:"date_label"`
	Cards     []StatCard  `json:"cards"`
	Volume    VolumeChart `json:"volume"`
	Breakdown []RateSlice `json:"breakdown"`
	Rows      []TableRow  `json:"rows"`
}

// Build derives the view model. It never fails; empty campaigns and zero
// stats render as an empty but well-formed dashboard.
func Build(snap *datanorm.Snapshot) Dashboard {
	if snap == nil {
		snap = &datanorm.Snapshot{Brand: datanorm.DefaultBrand}
	}

	dr := snap.DateRange
	active := snap.Stats.ActiveCampaigns

	d := Dashboard{
		Title: render(header.title, map[string]interface{}{"brand": snap.Brand},
			snap.Brand+" Campaign Analytics"),
		Subtitle: render(header.subtitle, map[string]interface{}{
			"start": dr.Start, "end": dr.End, "days": dr.Days, "active": active,
		}, ""),
		DateLabel: render(header.dateLabel, map[string]interface{}{"label": dr.Label, "days": dr.Days},
			dr.Label),
		Cards:     statCards(snap.Stats),
		Volume:    volumeChart(snap),
		Breakdown: breakdown(snap.Campaigns),
		Rows:      tableRows(snap.Campaigns),
	}
	return d
}

func statCards(s datanorm.Stats) []StatCard {
	return []StatCard{
		{Label: "TOTAL EMAILS SENT", Value: formatCount(s.TotalSent), Detail: "Delivered to prospects"},
		{Label: "REPLY RATE", Value: formatPercent(s.EffectiveReplyRate()), Detail: formatCount(s.TotalReplies) + " total replies"},
		{Label: "BOUNCE RATE", Value: formatPercent(s.BounceRatePercent), Detail: formatCount(s.TotalBounced) + " bounced"},
		{Label: "ACTIVE CAMPAIGNS", Value: humanize.Comma(int64(s.ActiveCampaigns)), Detail: "Currently running"},
	}
}

// volumeChart reads charts.campaign_performance when present, otherwise
// ranks campaigns by emails sent.
func volumeChart(snap *datanorm.Snapshot) VolumeChart {
	perf := datanorm.Object(snap.Charts, "campaign_performance")
	labels := sequence(perf, "labels")
	if len(labels) > 0 {
		n := len(labels)
		if n > VolumeChartLimit {
			n = VolumeChartLimit
		}
		sent := sequence(perf, "sent")
		replies := sequence(perf, "replies")
		chart := VolumeChart{
			Labels:  make([]string, n),
			Sent:    make([]float64, n),
			Replies: make([]float64, n),
		}
		for i := 0; i < n; i++ {
			chart.Labels[i] = datanorm.ToString(labels[i])
			chart.Sent[i] = datanorm.ToNumber(at(sent, i))
			chart.Replies[i] = datanorm.ToNumber(at(replies, i))
		}
		return chart
	}

	ranked := make([]datanorm.Campaign, len(snap.Campaigns))
	copy(ranked, snap.Campaigns)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EmailsSent > ranked[j].EmailsSent
	})
	if len(ranked) > VolumeChartLimit {
		ranked = ranked[:VolumeChartLimit]
	}

	chart := VolumeChart{
		Labels:  make([]string, 0, len(ranked)),
		Sent:    make([]float64, 0, len(ranked)),
		Replies: make([]float64, 0, len(ranked)),
		Derived: true,
	}
	for _, c := range ranked {
		chart.Labels = append(chart.Labels, c.Name)
		chart.Sent = append(chart.Sent, float64(c.EmailsSent))
		chart.Replies = append(chart.Replies, float64(c.Replies))
	}
	return chart
}

func breakdown(campaigns []datanorm.Campaign) []RateSlice {
	n := len(campaigns)
	if n > BreakdownLimit {
		n = BreakdownLimit
	}
	out := make([]RateSlice, 0, n)
	for _, c := range campaigns[:n] {
		out = append(out, RateSlice{Name: c.Name, Rate: c.ReplyRate})
	}
	return out
}

func tableRows(campaigns []datanorm.Campaign) []TableRow {
	rows := make([]TableRow, 0, len(campaigns))
	for _, c := range campaigns {
		rate := ""
		if c.ReplyRate.Known {
			rate = formatPercent(c.ReplyRate.Percent)
		}
		rows = append(rows, TableRow{
			Name:       c.Name,
			Status:     string(c.Status),
			EmailsSent: humanize.Comma(c.EmailsSent),
			Replies:    humanize.Comma(c.Replies),
			ReplyRate:  rate,
			Badge:      GradeRate(c.ReplyRate),
		})
	}
	return rows
}

func sequence(rec datanorm.Record, key string) []interface{} {
	if rec == nil {
		return nil
	}
	seq, _ := rec[key].([]interface{})
	return seq
}

func at(seq []interface{}, i int) interface{} {
	if i < len(seq) {
		return seq[i]
	}
	return nil
}

func formatCount(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
