package entity

import (
	"sort"
	"time"
)

// BillingAttempt is a scheduled future charge event tied to a
// subscription. It exists only transiently, to resolve "the next
// attempt" when a caller does not name one explicitly.
type BillingAttempt struct {
	ID          int64
	ScheduledAt time.Time
}

// Field names the provider has used for the attempt's scheduled
// timestamp, in resolution priority order.
var attemptTimeFields = []string{"date", "scheduled_date", "scheduled_at"}

// Timestamp layouts observed in upstream responses.
var attemptTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// BillingAttemptsFromEnvelope locates the billing-attempt list inside an
// upstream envelope. Probe order: top-level "payload" array, then
// "attempts"; default empty. Attempts with no parseable timestamp sort
// at epoch zero.
func BillingAttemptsFromEnvelope(body map[string]any) []BillingAttempt {
	raw, ok := arrayAt(body, "payload")
	if !ok {
		raw, _ = arrayAt(body, "attempts")
	}

	attempts := make([]BillingAttempt, 0, len(raw))
	for _, m := range objectsIn(raw) {
		attempts = append(attempts, BillingAttempt{
			ID:          intField(m, "id"),
			ScheduledAt: attemptTime(m),
		})
	}
	return attempts
}

// EarliestAttempt returns the attempt with the earliest scheduled time.
// The caller must ensure the slice is non-empty.
func EarliestAttempt(attempts []BillingAttempt) BillingAttempt {
	sorted := make([]BillingAttempt, len(attempts))
	copy(sorted, attempts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ScheduledAt.Before(sorted[j].ScheduledAt)
	})
	return sorted[0]
}

func attemptTime(m map[string]any) time.Time {
	raw, ok := firstStringField(m, attemptTimeFields...)
	if !ok {
		return time.Unix(0, 0).UTC()
	}
	for _, layout := range attemptTimeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Unix(0, 0).UTC()
}
