package http

import (
	"github.com/shopflow/subbridge/internal/domain"
	"github.com/shopflow/subbridge/internal/domain/entity"
)

// ListSubscriptionsResponse is the stable shape of the list operation.
// Subscriptions is always present; soft failures add the error field.
type ListSubscriptionsResponse struct {
	Subscriptions []entity.Subscription `json:"subscriptions"`
	Error         *domain.Fault         `json:"error,omitempty"`
}

// StatusChangeRequest carries the lifecycle action to apply.
type StatusChangeRequest struct {
	Action string `json:"action"`
}

// ChargeNowRequest carries the optional reset flag. A nil pointer means
// the caller omitted it and the default (true) applies.
type ChargeNowRequest struct {
	ResetSchedule *bool `json:"reset_schedule"`
}

// RescheduleRequest carries the reschedule inputs.
type RescheduleRequest struct {
	Date          string `json:"date"`
	Time          string `json:"time"`
	Timezone      string `json:"timezone"`
	ResetSchedule *bool  `json:"reset_schedule"`
	AttemptID     int64  `json:"attempt_id"`
}

// toEntity converts the DTO, applying the reset_schedule default.
func (r *RescheduleRequest) toEntity(subscriptionID int64) entity.RescheduleRequest {
	reset := true
	if r.ResetSchedule != nil {
		reset = *r.ResetSchedule
	}
	return entity.RescheduleRequest{
		SubscriptionID: subscriptionID,
		AttemptID:      r.AttemptID,
		Date:           r.Date,
		Time:           r.Time,
		Timezone:       r.Timezone,
		ResetSchedule:  reset,
	}
}

// RescheduleResponse is returned on a successful reschedule.
type RescheduleResponse struct {
	OK               bool           `json:"ok"`
	BillingAttemptID int64          `json:"billing_attempt_id"`
	Result           map[string]any `json:"result"`
}

// FaultResponse wraps a soft failure in a 200 body.
type FaultResponse struct {
	Error *domain.Fault `json:"error"`
}

// ErrorResponse is the hard-failure payload (400 validation, 401 auth).
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	OK bool `json:"ok"`
}
