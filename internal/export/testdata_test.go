package export

import (
	"testing"

	"github.com/ignite/campaign-dashboard/internal/datanorm"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
	"brand_name": "Acme Corp",
	"date_range": {"start": "2024-03-01", "end": "2024-03-30", "days": 30, "label": "Last 30 days"},
	"stats": {"total_sent": "12,400", "total_replies": 310, "reply_rate": "2.5%", "bounce_rate": 0.012},
	"campaigns": [
		{"name": "Acme, \"Best\" Co", "sent": 400, "replies": 10, "reply_rate": 2.5, "status": 1},
		{"name": "Spring Push", "sent": 9000, "replies": 250, "campaign_status": 3},
		{"name": "Zero Rate", "sent": 3000, "replies": 0, "reply_rate": 0, "status": 1}
	]
}`

func sampleSnapshot(t *testing.T) *datanorm.Snapshot {
	t.Helper()
	doc, err := datanorm.DecodeDocument([]byte(sampleDocument))
	require.NoError(t, err)
	return datanorm.Build(doc)
}
