package notify

import (
	"context"

	"go.uber.org/zap"
)

// Event is the user-visible confirmation emitted for every state-changing
// action (add/remove/update cart, toggle wishlist, apply/remove coupon,
// order placed).
type Event struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Payload any    `json:"payload,omitempty"`
}

const (
	EventCartItemAdded   = "cart.item_added"
	EventCartItemRemoved = "cart.item_removed"
	EventCartQtyUpdated  = "cart.quantity_updated"
	EventCartCleared     = "cart.cleared"
	EventWishlistToggled = "wishlist.toggled"
	EventCouponApplied   = "coupon.applied"
	EventCouponRemoved   = "coupon.removed"
	EventOrderPlaced     = "order.placed"
)

// Notifier delivers events. Delivery failures are never surfaced to the user
// flow; implementations log and move on.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, event Event) {
	n.logger.Info("storefront event",
		zap.String("type", event.Type),
		zap.String("message", event.Message),
	)
}

// Fanout delivers every event to all configured notifiers.
type Fanout []Notifier

func (f Fanout) Notify(ctx context.Context, event Event) {
	for _, n := range f {
		n.Notify(ctx, event)
	}
}
