package primary

import (
	"context"

	"github.com/shopflow/subbridge/internal/domain/entity"
)

// SubscriptionBridge defines the primary port consumed by the HTTP
// adapter: the four bridge operations against the upstream provider.
// Upstream and bridge-internal failures are reported as Faults inside
// the results; the error returns carry caller-input validation only.
type SubscriptionBridge interface {
	// ListSubscriptions looks up subscriptions for a customer email.
	ListSubscriptions(ctx context.Context, email string) *entity.ListResult

	// ChangeStatus applies one of the allowed lifecycle actions
	// (pause, resume, cancel, reactivate) to a subscription.
	ChangeStatus(ctx context.Context, subscriptionID int64, action string) (*entity.OpResult, error)

	// ChargeNow forces an immediate charge of the subscription.
	ChargeNow(ctx context.Context, subscriptionID int64, resetSchedule bool) *entity.OpResult

	// Reschedule moves a subscription's billing attempt to a new
	// date/time, resolving the next attempt upstream when the caller
	// does not name one.
	Reschedule(ctx context.Context, req entity.RescheduleRequest) (*entity.RescheduleResult, error)
}
