package datanorm

// Key families accepted from the different payload producers, in priority order.
var (
	totalSentKeys       = []string{"total_sent", "emails_sent", "total_emails_sent", "emails_sent_count"}
	totalRepliesKeys    = []string{"total_replies", "reply_count", "replies"}
	replyRateKeys       = []string{"reply_rate", "replyRate"}
	activeCampaignsKeys = []string{"active_campaigns", "total_campaigns"}
	bounceRateKeys      = []string{"bounce_rate", "bounceRate"}
	totalBouncedKeys    = []string{"total_bounced", "bounced", "bounce_count"}

	campaignNameKeys    = []string{"name", "campaign_name"}
	campaignStatusKeys  = []string{"campaign_status", "status"}
	campaignLabelKeys   = []string{"status_label"}
	campaignSentKeys    = []string{"sent", "emails_sent", "emails_sent_count"}
	campaignRepliesKeys = []string{"replies", "reply_count", "reply_count_unique"}
	campaignRateKeys    = []string{"reply_rate", "avg_reply_rate"}
)

// Resolve returns the value of the first key in keys that is present in rec
// with a non-nil, non-empty-string value. 0 and false count as present.
// A nil record resolves to fallback.
func Resolve(rec Record, keys []string, fallback interface{}) interface{} {
	if rec == nil {
		return fallback
	}
	for _, k := range keys {
		v, ok := rec[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			continue
		}
		return v
	}
	return fallback
}

// Has reports whether any key in keys resolves to a present value.
func Has(rec Record, keys []string) bool {
	return Resolve(rec, keys, nil) != nil
}

// Object returns rec[key] as a Record, or nil when absent or not an object.
func Object(rec Record, key string) Record {
	if rec == nil {
		return nil
	}
	switch v := rec[key].(type) {
	case Record:
		return v
	case map[string]interface{}:
		return Record(v)
	default:
		return nil
	}
}

// Objects returns rec[key] as a list of Records. Non-object elements are
// kept as empty records so that ordering and counts survive.
func Objects(rec Record, key string) []Record {
	if rec == nil {
		return nil
	}
	list, ok := rec[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case map[string]interface{}:
			out = append(out, Record(v))
		case Record:
			out = append(out, v)
		default:
			out = append(out, Record{})
		}
	}
	return out
}
