package datanorm

import (
	"time"

	"github.com/google/uuid"
)

// NormalizeStats builds the canonical statistics record from a raw stats
// object and the already-projected campaign list. Every field is always
// populated; malformed input degrades to 0.
func NormalizeStats(stats Record, campaigns []Campaign) Stats {
	out := Stats{
		TotalSent:         nonNegative(ToNumber(Resolve(stats, totalSentKeys, 0))),
		TotalReplies:      nonNegative(ToNumber(Resolve(stats, totalRepliesKeys, 0))),
		ReplyRatePercent:  ToPercent(Resolve(stats, replyRateKeys, 0)),
		ReplyRateResolved: Has(stats, replyRateKeys),
		BounceRatePercent: ToPercent(Resolve(stats, bounceRateKeys, 0)),
		TotalBounced:      nonNegative(ToNumber(Resolve(stats, totalBouncedKeys, 0))),
	}

	if v := Resolve(stats, activeCampaignsKeys, nil); v != nil {
		out.ActiveCampaigns = int(ToCount(v))
	} else {
		out.ActiveCampaigns = CountActive(campaigns)
	}

	return out
}

// CountActive returns how many campaigns are in the Active state.
func CountActive(campaigns []Campaign) int {
	n := 0
	for _, c := range campaigns {
		if c.IsActive() {
			n++
		}
	}
	return n
}

// ProjectCampaign builds one canonical campaign from a raw campaign record.
func ProjectCampaign(rec Record) Campaign {
	status, code := campaignStatus(rec)
	return Campaign{
		Name:       ToString(Resolve(rec, campaignNameKeys, "")),
		Status:     status,
		StatusCode: code,
		EmailsSent: ToCount(Resolve(rec, campaignSentKeys, 0)),
		Replies:    ToCount(Resolve(rec, campaignRepliesKeys, 0)),
		ReplyRate:  ParseRate(Resolve(rec, campaignRateKeys, nil)),
	}
}

// ProjectCampaigns projects every raw campaign, preserving input order.
func ProjectCampaigns(recs []Record) []Campaign {
	out := make([]Campaign, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ProjectCampaign(rec))
	}
	return out
}

// Build derives the canonical snapshot for a decoded document. Campaigns
// are projected first so the active count can fall back to them.
func Build(doc RawDocument) *Snapshot {
	campaigns := ProjectCampaigns(doc.Campaigns())

	brand := doc.Brand()
	if brand == "" {
		brand = DefaultBrand
	}

	return &Snapshot{
		ID:        uuid.New(),
		LoadedAt:  time.Now().UTC(),
		Brand:     brand,
		DateRange: doc.DateRange(),
		Stats:     NormalizeStats(doc.Stats(), campaigns),
		Campaigns: campaigns,
		Charts:    doc.Charts(),
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
