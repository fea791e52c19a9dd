package reconcile

import "go.uber.org/zap"

// EventSink receives typed engine events. The engine never writes text
// directly; observability is injected.
type EventSink interface {
	// AdjustmentPlanned fires once per adjustment when a plan is built.
	AdjustmentPlanned(adj Adjustment)

	// AdjustmentApplied fires after an adjustment's counter update has been
	// applied and verified.
	AdjustmentApplied(adj Adjustment, resultingQuantity int)

	// VerificationFailed fires when the post-apply re-read disagrees with
	// the expected quantity.
	VerificationFailed(adj Adjustment, expected, actual int)
}

// ZapSink emits engine events to a zap logger.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates an event sink backed by the given logger.
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

func (s *ZapSink) AdjustmentPlanned(adj Adjustment) {
	s.logger.Debug("adjustment planned",
		zap.String("key", adj.Key.String()),
		zap.String("action", string(adj.Action())),
		zap.Int("amount", adj.Amount),
	)
}

func (s *ZapSink) AdjustmentApplied(adj Adjustment, resultingQuantity int) {
	s.logger.Info("adjustment applied",
		zap.String("key", adj.Key.String()),
		zap.String("action", string(adj.Action())),
		zap.Int("amount", adj.Amount),
		zap.Int("resulting_quantity", resultingQuantity),
	)
}

func (s *ZapSink) VerificationFailed(adj Adjustment, expected, actual int) {
	s.logger.Error("adjustment verification failed",
		zap.String("key", adj.Key.String()),
		zap.Int("expected", expected),
		zap.Int("actual", actual),
	)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) AdjustmentPlanned(Adjustment)           {}
func (NopSink) AdjustmentApplied(Adjustment, int)      {}
func (NopSink) VerificationFailed(Adjustment, int, int) {}
