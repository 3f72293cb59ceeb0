package checkout

import (
	"context"
	"sync"

	"github.com/dev-dotsquares/ecommerce/internal/catalog"
	"github.com/dev-dotsquares/ecommerce/internal/storage"

	"go.uber.org/zap"
)

// AddressSlot is the durable storage slot holding the shipping address.
const AddressSlot = "shipping-address"

// Session owns the in-flight checkout state. The step and the applied coupon
// live only in memory (abandoning checkout discards them); the shipping
// address writes through its own mirror slot so it survives sessions.
type Session struct {
	mu         sync.Mutex
	step       Step
	coupon     *catalog.Coupon
	processing bool
	address    *ShippingAddress
	mirror     *storage.Mirror[*ShippingAddress]
	logger     *zap.Logger
}

func NewSession(ctx context.Context, mirror *storage.Mirror[*ShippingAddress], logger *zap.Logger) *Session {
	if mirror == nil {
		panic("address mirror cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		step:    StepAddress,
		address: mirror.Load(ctx),
		mirror:  mirror,
		logger:  logger,
	}
}

func (s *Session) Snapshot() (Step, *ShippingAddress, *catalog.Coupon, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step, s.copyAddress(), s.copyCoupon(), s.processing
}

// SubmitAddress persists the address and advances to the payment step.
func (s *Session) SubmitAddress(ctx context.Context, addr ShippingAddress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mirror.Save(ctx, &addr); err != nil {
		s.logger.Warn("shipping address not persisted, continuing in memory", zap.Error(err))
	}
	s.address = &addr
	s.step = StepPayment
}

// BackToAddress returns to the address step without clearing the stored
// address, so the form pre-fills on return.
func (s *Session) BackToAddress() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = StepAddress
}

func (s *Session) ApplyCoupon(coupon catalog.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = &coupon
}

func (s *Session) RemoveCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = nil
}

// BeginProcessing flips the transient processing flag; it reports false when
// an order placement is already in flight.
func (s *Session) BeginProcessing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.processing {
		return false
	}
	s.processing = true
	return true
}

// Reset ends the checkout flow after a placed order: back to the address
// step, coupon cleared, processing done. The stored address is kept.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = StepAddress
	s.coupon = nil
	s.processing = false
}

func (s *Session) copyAddress() *ShippingAddress {
	if s.address == nil {
		return nil
	}
	cp := *s.address
	return &cp
}

func (s *Session) copyCoupon() *catalog.Coupon {
	if s.coupon == nil {
		return nil
	}
	cp := *s.coupon
	return &cp
}
