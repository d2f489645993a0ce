package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/shopflow/subbridge/internal/config"
	"github.com/shopflow/subbridge/internal/domain"
	"github.com/shopflow/subbridge/internal/domain/entity"
	"github.com/shopflow/subbridge/internal/port/secondary"
)

// Lifecycle actions accepted by the status-change operation.
var allowedActions = map[string]bool{
	"pause":      true,
	"resume":     true,
	"cancel":     true,
	"reactivate": true,
}

// BridgeService implements the four bridge operations against the
// upstream provider. It holds no state across requests; every result is
// rebuilt from the upstream response.
type BridgeService struct {
	gateway     secondary.UpstreamGateway
	statusStyle string
	logger      *zap.Logger
}

// NewBridgeService creates a BridgeService with its dependencies injected.
func NewBridgeService(gateway secondary.UpstreamGateway, cfg *config.Config, logger *zap.Logger) *BridgeService {
	return &BridgeService{
		gateway:     gateway,
		statusStyle: cfg.StatusStyle,
		logger:      logger.Named("bridge-service"),
	}
}

// ListSubscriptions looks up subscriptions by customer email and
// normalizes the provider's envelope. All failures are soft: the result
// always carries a non-nil list.
func (s *BridgeService) ListSubscriptions(ctx context.Context, email string) *entity.ListResult {
	empty := []entity.Subscription{}

	email = strings.TrimSpace(email)
	if email == "" {
		return &entity.ListResult{
			Subscriptions: empty,
			Fault:         &domain.Fault{Reason: domain.ReasonMissingEmail},
		}
	}

	path := "/subscriptions?query=" + url.QueryEscape(email) + "&with-items=true"
	resp, err := s.gateway.Call(ctx, http.MethodGet, path, nil)
	if err != nil {
		s.logger.Warn("subscription lookup failed", zap.Error(err))
		return &entity.ListResult{Subscriptions: empty, Fault: s.transportFault(err)}
	}
	if !resp.OK {
		return &entity.ListResult{Subscriptions: empty, Fault: domain.UpstreamFault(resp.Status, resp.Body)}
	}

	subs := entity.SubscriptionsFromEnvelope(resp.Body)
	s.logger.Debug("subscriptions listed",
		zap.String("email", email),
		zap.Int("count", len(subs)),
	)
	return &entity.ListResult{Subscriptions: subs}
}

// ChangeStatus applies a lifecycle action to a subscription. The action
// is case-insensitive on input and validated against the allowed set.
// The upstream endpoint shape depends on the configured API revision.
func (s *BridgeService) ChangeStatus(ctx context.Context, subscriptionID int64, action string) (*entity.OpResult, error) {
	action = strings.ToLower(strings.TrimSpace(action))
	if action == "" {
		return nil, fmt.Errorf("%w: action is required", domain.ErrInvalidInput)
	}
	if !allowedActions[action] {
		return nil, fmt.Errorf("%w: action must be one of pause, resume, cancel, reactivate", domain.ErrInvalidInput)
	}

	var path string
	var payload map[string]any
	if s.statusStyle == config.StatusStyleSingular {
		path = "/subscription"
		payload = map[string]any{"id": subscriptionID, "action": action}
	} else {
		path = "/subscriptions/" + strconv.FormatInt(subscriptionID, 10)
		payload = map[string]any{"action": action}
	}

	resp, err := s.gateway.Call(ctx, http.MethodPut, path, payload)
	if err != nil {
		s.logger.Warn("status change failed",
			zap.Int64("subscription_id", subscriptionID),
			zap.String("action", action),
			zap.Error(err),
		)
		return &entity.OpResult{Fault: s.transportFault(err)}, nil
	}
	if !resp.OK {
		// Echo the attempted endpoint and payload so silent contract
		// mismatches between the two API revisions are diagnosable.
		fault := domain.UpstreamFault(resp.Status, resp.Body)
		fault.Endpoint = path
		fault.Payload = payload
		return &entity.OpResult{Fault: fault}, nil
	}

	s.logger.Info("subscription status changed",
		zap.Int64("subscription_id", subscriptionID),
		zap.String("action", action),
	)
	return &entity.OpResult{Body: resp.Body}, nil
}

// ChargeNow forces an immediate charge. The provider expects the
// reset_schedule flag string-serialized.
func (s *BridgeService) ChargeNow(ctx context.Context, subscriptionID int64, resetSchedule bool) *entity.OpResult {
	path := "/subscriptions/" + strconv.FormatInt(subscriptionID, 10) + "/charge_now"
	payload := map[string]any{"reset_schedule": strconv.FormatBool(resetSchedule)}

	resp, err := s.gateway.Call(ctx, http.MethodPut, path, payload)
	if err != nil {
		s.logger.Warn("charge now failed",
			zap.Int64("subscription_id", subscriptionID),
			zap.Error(err),
		)
		return &entity.OpResult{Fault: s.transportFault(err)}
	}
	if !resp.OK {
		return &entity.OpResult{Fault: domain.UpstreamFault(resp.Status, resp.Body)}
	}

	s.logger.Info("subscription charged",
		zap.Int64("subscription_id", subscriptionID),
		zap.Bool("reset_schedule", resetSchedule),
	)
	return &entity.OpResult{Body: resp.Body}
}

// attemptResolution is the typed intermediate of the reschedule
// pipeline's first step. Exactly one of attemptID and fault is set.
type attemptResolution struct {
	attemptID int64
	fault     *domain.Fault
}

// Reschedule moves a billing attempt to a new date/time. Two-step
// pipeline: resolve the target attempt (directly from the request, or
// the earliest scheduled attempt upstream), then issue the reschedule.
func (s *BridgeService) Reschedule(ctx context.Context, req entity.RescheduleRequest) (*entity.RescheduleResult, error) {
	if err := validateReschedule(req); err != nil {
		return nil, err
	}

	resolved := s.resolveAttempt(ctx, req.SubscriptionID, req.AttemptID)
	if resolved.fault != nil {
		return &entity.RescheduleResult{Fault: resolved.fault}, nil
	}

	payload := map[string]any{
		"id":              resolved.attemptID,
		"subscription_id": req.SubscriptionID,
		"action":          "reschedule",
		"date":            strings.TrimSpace(req.Date),
		"time":            strings.TrimSpace(req.Time),
		"timezone":        strings.TrimSpace(req.Timezone),
		"reset_schedule":  req.ResetSchedule,
	}

	resp, err := s.gateway.Call(ctx, http.MethodPut, "/subscription-billing-attempt", payload)
	if err != nil {
		s.logger.Warn("reschedule failed",
			zap.Int64("subscription_id", req.SubscriptionID),
			zap.Int64("attempt_id", resolved.attemptID),
			zap.Error(err),
		)
		return &entity.RescheduleResult{Fault: s.transportFault(err)}, nil
	}
	if !resp.OK {
		return &entity.RescheduleResult{Fault: domain.UpstreamFault(resp.Status, resp.Body)}, nil
	}

	s.logger.Info("billing attempt rescheduled",
		zap.Int64("subscription_id", req.SubscriptionID),
		zap.Int64("attempt_id", resolved.attemptID),
		zap.String("date", payload["date"].(string)),
	)
	return &entity.RescheduleResult{
		BillingAttemptID: resolved.attemptID,
		Result:           resp.Body,
	}, nil
}

// resolveAttempt returns the attempt id to reschedule. A caller-supplied
// id short-circuits the upstream lookup; otherwise the attempt with the
// earliest scheduled time wins.
func (s *BridgeService) resolveAttempt(ctx context.Context, subscriptionID, attemptID int64) attemptResolution {
	if attemptID > 0 {
		return attemptResolution{attemptID: attemptID}
	}

	path := "/subscription-billing-attempts?subscription_id=" + strconv.FormatInt(subscriptionID, 10)
	resp, err := s.gateway.Call(ctx, http.MethodGet, path, nil)
	if err != nil {
		s.logger.Warn("billing attempt lookup failed",
			zap.Int64("subscription_id", subscriptionID),
			zap.Error(err),
		)
		return attemptResolution{fault: s.transportFault(err)}
	}
	if !resp.OK {
		return attemptResolution{fault: domain.UpstreamFault(resp.Status, resp.Body)}
	}

	attempts := entity.BillingAttemptsFromEnvelope(resp.Body)
	if len(attempts) == 0 {
		return attemptResolution{fault: &domain.Fault{
			Reason:  domain.ReasonNoBillingAttemptFound,
			Message: fmt.Sprintf("no billing attempts found for subscription %d", subscriptionID),
		}}
	}

	return attemptResolution{attemptID: entity.EarliestAttempt(attempts).ID}
}

// transportFault classifies a gateway transport error. Timeouts count as
// upstream failures; everything else is a bridge-side fault.
func (s *BridgeService) transportFault(err error) *domain.Fault {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &domain.Fault{
			Reason:  domain.ReasonUpstreamError,
			Message: "upstream timeout: " + err.Error(),
		}
	}
	return domain.BridgeFault(err.Error())
}

func validateReschedule(req entity.RescheduleRequest) error {
	if req.SubscriptionID <= 0 {
		return fmt.Errorf("%w: subscription id is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Time) == "" {
		return fmt.Errorf("%w: time is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Timezone) == "" {
		return fmt.Errorf("%w: timezone is required", domain.ErrInvalidInput)
	}
	return nil
}
