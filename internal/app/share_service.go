package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen/maeumgido/internal/domain"
	"github.com/jsamuelsen/maeumgido/internal/platform/logging"
	"github.com/jsamuelsen/maeumgido/internal/ports"
)

// Status messages shown after a share or copy action.
const (
	MessageShared       = "공유 창을 열었습니다."
	MessageSharedByCopy = "이 브라우저는 앱 공유를 지원하지 않아 클립보드로 복사했습니다."
	MessageShareFailed  = "공유에 실패했습니다. 다시 시도해 주세요."
	MessageCopied       = "기도문이 클립보드에 복사되었습니다."
	MessageCopyFailed   = "복사에 실패했습니다. 브라우저 권한을 확인해 주세요."
)

// ShareAction is the user action that triggered a share attempt.
type ShareAction string

const (
	ActionShare ShareAction = "share"
	ActionCopy  ShareAction = "copy"
)

// ShareOutcome is how a share attempt ended.
type ShareOutcome string

const (
	OutcomeShared    ShareOutcome = "shared"
	OutcomeCopied    ShareOutcome = "copied"
	OutcomeCancelled ShareOutcome = "cancelled"
	OutcomeFailed    ShareOutcome = "failed"

	// OutcomeSkipped means there was no featured prayer, so nothing happened.
	OutcomeSkipped ShareOutcome = "skipped"
)

// ShareResult reports what a share or copy action did.
// Message is empty for cancelled and skipped outcomes.
type ShareResult struct {
	Action   ShareAction
	Outcome  ShareOutcome
	Strategy ports.ShareKind
	Message  string
	Err      error
}

// ShareService runs the share and copy actions for the featured prayer.
type ShareService struct {
	recommendations *RecommendationService
	native          ports.Sharer
	copiers         []ports.Sharer
	timeout         time.Duration
	metrics         *Metrics
	logger          *slog.Logger
}

// ShareServiceConfig contains the share service dependencies.
type ShareServiceConfig struct {
	Recommendations *RecommendationService

	// Native is the platform share sheet. Nil means never available.
	Native ports.Sharer

	// Copiers are probed in order for the copy action and the share fallback,
	// usually clipboard then manual.
	Copiers []ports.Sharer

	// Timeout bounds a single attempt. Zero means no extra bound.
	Timeout time.Duration

	Metrics *Metrics
	Logger  *slog.Logger
}

// NewShareService creates a share service.
func NewShareService(cfg ShareServiceConfig) *ShareService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ShareService{
		recommendations: cfg.Recommendations,
		native:          cfg.Native,
		copiers:         cfg.Copiers,
		timeout:         cfg.Timeout,
		metrics:         cfg.Metrics,
		logger:          logger.With(slog.String("component", "app.ShareService")),
	}
}

// Share opens the native share sheet when one is available, otherwise copies
// the text with a URL appended. A cancelled sheet is silent.
func (s *ShareService) Share(ctx context.Context, sel domain.Selection) ShareResult {
	payload, skip := s.payload(ctx, ActionShare, sel)
	if skip != nil {
		return *skip
	}

	if s.native != nil && s.native.Available() {
		err := s.attempt(ctx, s.native, payload)

		return s.finish(ctx, classify(ActionShare, s.native.Kind(), err, MessageShared, MessageShareFailed))
	}

	copier := s.firstAvailable()
	if copier == nil {
		return s.finish(ctx, classify(ActionShare, "", domain.ErrShareUnavailable, "", MessageShareFailed))
	}

	err := s.attempt(ctx, copier, payload)
	res := classify(ActionShare, copier.Kind(), err, MessageSharedByCopy, MessageShareFailed)

	if res.Outcome == OutcomeShared {
		res.Outcome = OutcomeCopied
	}

	return s.finish(ctx, res)
}

// Copy writes the text with a URL appended using the first available copier.
func (s *ShareService) Copy(ctx context.Context, sel domain.Selection) ShareResult {
	payload, skip := s.payload(ctx, ActionCopy, sel)
	if skip != nil {
		return *skip
	}

	copier := s.firstAvailable()
	if copier == nil {
		return s.finish(ctx, classify(ActionCopy, "", domain.ErrShareUnavailable, "", MessageCopyFailed))
	}

	res := classify(ActionCopy, copier.Kind(), s.attempt(ctx, copier, payload), MessageCopied, MessageCopyFailed)
	if res.Outcome == OutcomeShared {
		res.Outcome = OutcomeCopied
	}

	return s.finish(ctx, res)
}

// payload resolves the featured prayer. A non-nil result ends the action early.
func (s *ShareService) payload(ctx context.Context, action ShareAction, sel domain.Selection) (domain.SharePayload, *ShareResult) {
	payload, err := s.recommendations.SharePayload(ctx, sel)
	if err == nil {
		return payload, nil
	}

	res := ShareResult{Action: action, Outcome: OutcomeSkipped, Err: err}
	if !domain.IsNotFound(err) {
		res.Outcome = OutcomeFailed
		res.Message = MessageShareFailed

		if action == ActionCopy {
			res.Message = MessageCopyFailed
		}
	}

	r := s.finish(ctx, res)

	return domain.SharePayload{}, &r
}

// attempt runs one strategy under the configured timeout.
func (s *ShareService) attempt(ctx context.Context, sharer ports.Sharer, payload domain.SharePayload) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)

		defer cancel()
	}

	if err := sharer.Share(ctx, payload); err != nil {
		return domain.NewShareError(string(sharer.Kind()), err)
	}

	return nil
}

func (s *ShareService) firstAvailable() ports.Sharer {
	for _, c := range s.copiers {
		if c != nil && c.Available() {
			return c
		}
	}

	return nil
}

func (s *ShareService) finish(ctx context.Context, res ShareResult) ShareResult {
	s.metrics.recordShare(&res)

	logger := logging.FromContextOr(ctx, s.logger)
	attrs := []any{
		slog.String("action", string(res.Action)),
		slog.String("strategy", string(res.Strategy)),
		slog.String("outcome", string(res.Outcome)),
	}

	if res.Outcome == OutcomeFailed {
		logger.WarnContext(ctx, "share attempt failed", append(attrs, slog.Any("error", res.Err))...)
	} else {
		logger.InfoContext(ctx, "share attempt finished", attrs...)
	}

	return res
}

func classify(action ShareAction, kind ports.ShareKind, err error, okMsg, failMsg string) ShareResult {
	res := ShareResult{Action: action, Strategy: kind, Err: err}

	switch {
	case err == nil:
		res.Outcome = OutcomeShared
		res.Message = okMsg
	case domain.IsShareCancelled(err):
		res.Outcome = OutcomeCancelled
	default:
		res.Outcome = OutcomeFailed
		res.Message = failMsg
	}

	return res
}
