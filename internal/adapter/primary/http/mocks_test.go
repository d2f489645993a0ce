package http

import (
	"context"

	"github.com/shopflow/subbridge/internal/domain/entity"
	"github.com/shopflow/subbridge/internal/port/primary"
)

// mockBridge is a test double for primary.SubscriptionBridge. Each
// operation records its inputs and returns the scripted outcome.
type mockBridge struct {
	listCalls  int
	listEmail  string
	listResult *entity.ListResult

	statusCalls  int
	statusID     int64
	statusAction string
	statusResult *entity.OpResult
	statusErr    error

	chargeCalls  int
	chargeID     int64
	chargeReset  bool
	chargeResult *entity.OpResult

	rescheduleCalls  int
	rescheduleReq    entity.RescheduleRequest
	rescheduleResult *entity.RescheduleResult
	rescheduleErr    error

	panicWith any
}

func (m *mockBridge) ListSubscriptions(_ context.Context, email string) *entity.ListResult {
	m.maybePanic()
	m.listCalls++
	m.listEmail = email
	if m.listResult == nil {
		return &entity.ListResult{Subscriptions: []entity.Subscription{}}
	}
	return m.listResult
}

func (m *mockBridge) ChangeStatus(_ context.Context, subscriptionID int64, action string) (*entity.OpResult, error) {
	m.maybePanic()
	m.statusCalls++
	m.statusID = subscriptionID
	m.statusAction = action
	if m.statusErr != nil {
		return nil, m.statusErr
	}
	if m.statusResult == nil {
		return &entity.OpResult{Body: map[string]any{}}, nil
	}
	return m.statusResult, nil
}

func (m *mockBridge) ChargeNow(_ context.Context, subscriptionID int64, resetSchedule bool) *entity.OpResult {
	m.maybePanic()
	m.chargeCalls++
	m.chargeID = subscriptionID
	m.chargeReset = resetSchedule
	if m.chargeResult == nil {
		return &entity.OpResult{Body: map[string]any{}}
	}
	return m.chargeResult
}

func (m *mockBridge) Reschedule(_ context.Context, req entity.RescheduleRequest) (*entity.RescheduleResult, error) {
	m.maybePanic()
	m.rescheduleCalls++
	m.rescheduleReq = req
	if m.rescheduleErr != nil {
		return nil, m.rescheduleErr
	}
	if m.rescheduleResult == nil {
		return &entity.RescheduleResult{BillingAttemptID: 1, Result: map[string]any{}}, nil
	}
	return m.rescheduleResult, nil
}

func (m *mockBridge) maybePanic() {
	if m.panicWith != nil {
		panic(m.panicWith)
	}
}

func (m *mockBridge) totalCalls() int {
	return m.listCalls + m.statusCalls + m.chargeCalls + m.rescheduleCalls
}

// Compile-time interface assertion
var _ primary.SubscriptionBridge = (*mockBridge)(nil)
