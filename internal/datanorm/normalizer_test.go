package datanorm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStats_NoRecognizedKeys(t *testing.T) {
	for _, stats := range []Record{nil, {}, {"unrelated": 5, "open_rate": "3%"}} {
		got := NormalizeStats(stats, nil)
		assert.Equal(t, Stats{}, got)
	}
}

func TestNormalizeStats_KeyFamilies(t *testing.T) {
	tests := []struct {
		name  string
		stats Record
		check func(t *testing.T, s Stats)
	}{
		{
			name:  "emails_sent alias",
			stats: Record{"emails_sent": "2,500"},
			check: func(t *testing.T, s Stats) { assert.Equal(t, 2500.0, s.TotalSent) },
		},
		{
			name:  "total_emails_sent alias",
			stats: Record{"total_emails_sent": 900},
			check: func(t *testing.T, s Stats) { assert.Equal(t, 900.0, s.TotalSent) },
		},
		{
			name:  "emails_sent_count alias",
			stats: Record{"emails_sent_count": 12},
			check: func(t *testing.T, s Stats) { assert.Equal(t, 12.0, s.TotalSent) },
		},
		{
			name:  "reply_count alias",
			stats: Record{"reply_count": 33},
			check: func(t *testing.T, s Stats) { assert.Equal(t, 33.0, s.TotalReplies) },
		},
		{
			name:  "camelCase reply rate fraction",
			stats: Record{"replyRate": 0.031},
			check: func(t *testing.T, s Stats) {
				assert.InDelta(t, 3.1, s.ReplyRatePercent, 1e-9)
				assert.True(t, s.ReplyRateResolved)
			},
		},
		{
			name:  "bounce family",
			stats: Record{"bounce_rate": "1.2%", "bounced": "40"},
			check: func(t *testing.T, s Stats) {
				assert.InDelta(t, 1.2, s.BounceRatePercent, 1e-9)
				assert.Equal(t, 40.0, s.TotalBounced)
			},
		},
		{
			name:  "negative totals clamp",
			stats: Record{"total_sent": -10},
			check: func(t *testing.T, s Stats) { assert.Equal(t, 0.0, s.TotalSent) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, NormalizeStats(tt.stats, nil))
		})
	}
}

func TestNormalizeStats_ActiveCampaigns(t *testing.T) {
	raw := []Record{{"status": 1}, {"status": 1}, {"status": 3}, {"status": 0}}
	campaigns := ProjectCampaigns(raw)

	t.Run("derived from campaign statuses", func(t *testing.T) {
		assert.Equal(t, 2, NormalizeStats(Record{}, campaigns).ActiveCampaigns)
	})

	t.Run("explicit active_campaigns wins", func(t *testing.T) {
		assert.Equal(t, 7, NormalizeStats(Record{"active_campaigns": 7, "total_campaigns": 9}, campaigns).ActiveCampaigns)
	})

	t.Run("total_campaigns second", func(t *testing.T) {
		assert.Equal(t, 9, NormalizeStats(Record{"total_campaigns": "9"}, campaigns).ActiveCampaigns)
	})

	t.Run("explicit zero is respected", func(t *testing.T) {
		assert.Equal(t, 0, NormalizeStats(Record{"active_campaigns": 0}, campaigns).ActiveCampaigns)
	})

	t.Run("huge explicit count stays non-negative", func(t *testing.T) {
		assert.Positive(t, NormalizeStats(Record{"active_campaigns": "1e30"}, campaigns).ActiveCampaigns)
	})

	t.Run("no campaigns", func(t *testing.T) {
		assert.Equal(t, 0, NormalizeStats(nil, nil).ActiveCampaigns)
	})
}

func TestEffectiveReplyRate(t *testing.T) {
	s := Stats{TotalSent: 200, TotalReplies: 5}
	assert.InDelta(t, 2.5, s.EffectiveReplyRate(), 1e-9)

	s.ReplyRateResolved = true
	s.ReplyRatePercent = 3
	assert.Equal(t, 3.0, s.EffectiveReplyRate())

	assert.Equal(t, 0.0, Stats{}.EffectiveReplyRate())
}

func TestProjectCampaign(t *testing.T) {
	t.Run("canonical keys", func(t *testing.T) {
		c := ProjectCampaign(Record{"name": "A", "sent": 100, "replies": 5, "reply_rate": 5, "status": 1})
		assert.Equal(t, "A", c.Name)
		assert.Equal(t, StatusActive, c.Status)
		assert.Equal(t, int64(100), c.EmailsSent)
		assert.Equal(t, int64(5), c.Replies)
		assert.Equal(t, KnownRate(5), c.ReplyRate)
	})

	t.Run("alternate keys", func(t *testing.T) {
		c := ProjectCampaign(Record{
			"campaign_name":      "B",
			"emails_sent_count":  "1,500",
			"reply_count_unique": 12,
			"avg_reply_rate":     "0.8%",
			"campaign_status":    3,
		})
		assert.Equal(t, "B", c.Name)
		assert.Equal(t, StatusCompleted, c.Status)
		assert.Equal(t, int64(1500), c.EmailsSent)
		assert.Equal(t, int64(12), c.Replies)
		assert.InDelta(t, 0.8, c.ReplyRate.Percent, 1e-9)
	})

	t.Run("missing everything", func(t *testing.T) {
		c := ProjectCampaign(Record{})
		assert.Equal(t, "", c.Name)
		assert.Equal(t, StatusPaused, c.Status)
		assert.Zero(t, c.EmailsSent)
		assert.False(t, c.ReplyRate.Known)
	})

	t.Run("huge counters stay non-negative", func(t *testing.T) {
		c := ProjectCampaign(Record{"sent": "1e30", "replies": 9.3e18})
		assert.Equal(t, int64(math.MaxInt64), c.EmailsSent)
		assert.Equal(t, int64(math.MaxInt64), c.Replies)
	})

	t.Run("zero rate is known", func(t *testing.T) {
		c := ProjectCampaign(Record{"reply_rate": 0})
		assert.True(t, c.ReplyRate.IsZero())
	})
}

func TestProjectCampaigns_PreservesOrder(t *testing.T) {
	got := ProjectCampaigns([]Record{{"name": "small", "sent": 1}, {"name": "big", "sent": 1000}, {"name": "mid", "sent": 50}})
	require.Len(t, got, 3)
	assert.Equal(t, "small", got[0].Name)
	assert.Equal(t, "big", got[1].Name)
	assert.Equal(t, "mid", got[2].Name)
}
