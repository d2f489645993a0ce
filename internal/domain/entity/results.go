package entity

import "github.com/shopflow/subbridge/internal/domain"

// ListResult is the outcome of the list-subscriptions operation.
// Subscriptions is always non-nil; a soft failure leaves it empty and
// sets Fault.
type ListResult struct {
	Subscriptions []Subscription
	Fault         *domain.Fault
}

// OpResult is the outcome of a single-call operation (status change,
// charge now). On success Body carries the upstream response verbatim.
type OpResult struct {
	Body  map[string]any
	Fault *domain.Fault
}

// RescheduleRequest carries the validated inputs of the reschedule
// operation. AttemptID zero means "resolve the next attempt upstream".
type RescheduleRequest struct {
	SubscriptionID int64
	AttemptID      int64
	Date           string
	Time           string
	Timezone       string
	ResetSchedule  bool
}

// RescheduleResult is the outcome of the reschedule pipeline.
type RescheduleResult struct {
	BillingAttemptID int64
	Result           map[string]any
	Fault            *domain.Fault
}
