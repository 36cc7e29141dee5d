package datanorm

// Classify maps a producer status code onto the three display states.
// Only 1 (Active) and 3 (Completed) are recognized; every other code,
// including an absent one, is shown as Paused.
func Classify(code int) Status {
	switch code {
	case 1:
		return StatusActive
	case 3:
		return StatusCompleted
	default:
		return StatusPaused
	}
}

// campaignStatus resolves a raw campaign's status. An explicit
// status_label wins verbatim over the classified code.
func campaignStatus(rec Record) (Status, int) {
	code := StatusCode(Resolve(rec, campaignStatusKeys, 0))
	if label := ToString(Resolve(rec, campaignLabelKeys, "")); label != "" {
		return Status(label), code
	}
	return Classify(code), code
}
