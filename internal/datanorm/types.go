package datanorm

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Record is an untyped JSON object as decoded from a producer payload.
type Record map[string]interface{}

// Status is the display state of a campaign.
type Status string

const (
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
	StatusPaused    Status = "Paused"
)

// Rate is a reply rate in percentage points that may be unknown.
// The zero value is Unknown, which is distinct from a known 0%.
type Rate struct {
	Percent float64
	Known   bool
}

// KnownRate returns a Rate holding pct percentage points.
func KnownRate(pct float64) Rate {
	return Rate{Percent: pct, Known: true}
}

// IsZero reports whether the rate is known and equal to 0%.
func (r Rate) IsZero() bool {
	return r.Known && r.Percent == 0
}

// MarshalJSON encodes an unknown rate as null.
func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.Known {
		return []byte("null"), nil
	}
	return json.Marshal(r.Percent)
}

// UnmarshalJSON decodes null as an unknown rate and a number as a known one.
func (r *Rate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Rate{}
		return nil
	}
	var pct float64
	if err := json.Unmarshal(data, &pct); err != nil {
		return err
	}
	*r = KnownRate(pct)
	return nil
}

// DateRange is the reporting window supplied by the producer.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
	Label string `json:"label"`
}

// Stats is the canonical statistics record for one load.
type Stats struct {
	TotalSent         float64 `json:"total_sent"`
	TotalReplies      float64 `json:"total_replies"`
	ReplyRatePercent  float64 `json:"reply_rate"`
	ReplyRateResolved bool    `json:"reply_rate_resolved"`
	ActiveCampaigns   int     `json:"active_campaigns"`
	BounceRatePercent float64 `json:"bounce_rate"`
	TotalBounced      float64 `json:"total_bounced"`
}

// EffectiveReplyRate returns the resolved reply rate, or replies/sent*100
// when the producer supplied no rate. Presentation code uses this; the
// normalizer itself never derives the rate.
func (s Stats) EffectiveReplyRate() float64 {
	if s.ReplyRateResolved {
		return s.ReplyRatePercent
	}
	if s.TotalSent <= 0 {
		return 0
	}
	return roundPercent(s.TotalReplies / s.TotalSent * 100)
}

// Campaign is the canonical record for one raw campaign entry.
type Campaign struct {
	Name       string `json:"name"`
	Status     Status `json:"status"`
	StatusCode int    `json:"status_code"`
	EmailsSent int64  `json:"emails_sent"`
	Replies    int64  `json:"replies"`
	ReplyRate  Rate   `json:"reply_rate"`
}

// IsActive reports whether the campaign counts toward the active total.
func (c Campaign) IsActive() bool {
	return c.Status == StatusActive
}

// Snapshot is the immutable canonical model built from one RawDocument.
type Snapshot struct {
	ID        uuid.UUID  `json:"id"`
	LoadedAt  time.Time  `json:"loaded_at"`
	Brand     string     `json:"brand"`
	DateRange DateRange  `json:"date_range"`
	Stats     Stats      `json:"stats"`
	Campaigns []Campaign `json:"campaigns"`
	Charts    Record     `json:"charts,omitempty"`
}

// DefaultBrand is shown when the payload carries no brand_name.
const DefaultBrand = "Client"

// ViewLabel is the date-range label used in export summaries and filenames.
func (s *Snapshot) ViewLabel() string {
	if s.DateRange.Label != "" {
		return s.DateRange.Label
	}
	return "Last_" + strconv.Itoa(s.DateRange.Days) + "_days"
}
