package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/dev-dotsquares/ecommerce/internal/cart"
	"github.com/dev-dotsquares/ecommerce/internal/catalog"
	"github.com/dev-dotsquares/ecommerce/internal/notify"
	"github.com/dev-dotsquares/ecommerce/internal/pkg/apperror"
	"github.com/dev-dotsquares/ecommerce/internal/pricing"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Service interface {
	State(ctx context.Context) StateResponse
	SubmitAddress(ctx context.Context, req SubmitAddressRequest) (StateResponse, error)
	ChangeAddress(ctx context.Context) StateResponse
	Summary(ctx context.Context) SummaryResponse
	ApplyCoupon(ctx context.Context, code string) (SummaryResponse, error)
	RemoveCoupon(ctx context.Context) SummaryResponse
	PlaceOrder(ctx context.Context, method string) (OrderResponse, error)
}

type service struct {
	session  *Session
	cartSvc  cart.Service
	catalog  catalog.Service
	notifier notify.Notifier
	validate *validator.Validate
	logger   *zap.Logger
	delay    time.Duration
}

type Deps struct {
	Session  *Session
	CartSvc  cart.Service
	Catalog  catalog.Service
	Notifier notify.Notifier
	Logger   *zap.Logger

	// ProcessingDelay simulates payment processing before the order confirms.
	ProcessingDelay time.Duration
}

func NewService(deps Deps) Service {
	if deps.Session == nil {
		panic("checkout session cannot be nil")
	}
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.Catalog == nil {
		panic("catalog service cannot be nil")
	}
	if deps.Notifier == nil {
		panic("notifier cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		session:  deps.Session,
		cartSvc:  deps.CartSvc,
		catalog:  deps.Catalog,
		notifier: deps.Notifier,
		validate: validator.New(),
		logger:   deps.Logger,
		delay:    deps.ProcessingDelay,
	}
}

func (s *service) State(ctx context.Context) StateResponse {
	step, address, coupon, processing := s.session.Snapshot()
	return StateResponse{
		Step:         step,
		Address:      address,
		IsProcessing: processing,
		Summary:      s.summarize(ctx, coupon),
	}
}

func (s *service) SubmitAddress(ctx context.Context, req SubmitAddressRequest) (StateResponse, error) {
	addr := ShippingAddress{
		Name:    req.Name,
		Mobile:  req.Mobile,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Pincode: req.Pincode,
	}

	if err := s.validate.Struct(addr); err != nil {
		return StateResponse{}, apperror.Wrap(err, apperror.CodeInvalidInput, ErrInvalidAddress.Message, ErrInvalidAddress.HTTPStatus)
	}

	s.session.SubmitAddress(ctx, addr)
	return s.State(ctx), nil
}

func (s *service) ChangeAddress(ctx context.Context) StateResponse {
	s.session.BackToAddress()
	return s.State(ctx)
}

func (s *service) Summary(ctx context.Context) SummaryResponse {
	_, _, coupon, _ := s.session.Snapshot()
	return s.summarize(ctx, coupon)
}

func (s *service) ApplyCoupon(ctx context.Context, code string) (SummaryResponse, error) {
	coupon, err := s.catalog.ResolveCoupon(code)
	if err != nil {
		// Invalid codes surface as a message only; the session keeps whatever
		// coupon was applied before.
		return SummaryResponse{}, err
	}

	// Applying a coupon replaces any previous selection.
	s.session.ApplyCoupon(coupon)

	s.notifier.Notify(ctx, notify.Event{
		Type:    notify.EventCouponApplied,
		Message: fmt.Sprintf("Coupon %s applied", coupon.Code),
		Payload: map[string]any{"code": coupon.Code, "type": coupon.Type},
	})

	return s.summarize(ctx, &coupon), nil
}

func (s *service) RemoveCoupon(ctx context.Context) SummaryResponse {
	s.session.RemoveCoupon()

	s.notifier.Notify(ctx, notify.Event{
		Type:    notify.EventCouponRemoved,
		Message: "Coupon removed",
	})

	return s.summarize(ctx, nil)
}

func (s *service) PlaceOrder(ctx context.Context, method string) (OrderResponse, error) {
	pm := PaymentMethod(method)
	if pm != PaymentCOD && pm != PaymentCard {
		return OrderResponse{}, ErrInvalidPaymentMethod
	}

	step, address, coupon, _ := s.session.Snapshot()
	if step != StepPayment || address == nil {
		return OrderResponse{}, ErrAddressRequired
	}

	items := s.cartSvc.Items(ctx)
	if len(items) == 0 {
		return OrderResponse{}, ErrCartEmpty
	}

	if !s.session.BeginProcessing() {
		return OrderResponse{}, ErrOrderInProgress
	}

	summary := pricing.Compute(items, coupon)

	// Simulated payment processing. Deliberately not cancellable: once
	// placed, an order cannot be aborted mid-flight.
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	orderID := fmt.Sprintf("SS-%d", time.Now().UnixMilli())

	if _, err := s.cartSvc.Clear(ctx); err != nil {
		s.logger.Error("failed to clear cart after order placement",
			zap.String("order_id", orderID), zap.Error(err))
	}
	s.session.Reset()

	message := fmt.Sprintf("Your order #%s has been successfully placed", orderID)
	s.notifier.Notify(ctx, notify.Event{
		Type:    notify.EventOrderPlaced,
		Message: message,
		Payload: map[string]any{
			"orderId": orderID,
			"method":  pm,
			"total":   summary.Total.InexactFloat64(),
		},
	})

	s.logger.Info("order placed",
		zap.String("order_id", orderID),
		zap.String("method", string(pm)),
	)

	return OrderResponse{
		Message:       message,
		OrderID:       orderID,
		PaymentMethod: pm,
		Address:       *address,
		Summary:       mapSummary(summary, coupon),
	}, nil
}

func (s *service) summarize(ctx context.Context, coupon *catalog.Coupon) SummaryResponse {
	return mapSummary(pricing.Compute(s.cartSvc.Items(ctx), coupon), coupon)
}

func mapSummary(summary pricing.Summary, coupon *catalog.Coupon) SummaryResponse {
	return SummaryResponse{
		Subtotal:      summary.Subtotal.InexactFloat64(),
		TotalItems:    summary.TotalItems,
		Discount:      summary.Discount.InexactFloat64(),
		Shipping:      summary.Shipping.InexactFloat64(),
		Total:         summary.Total.InexactFloat64(),
		AppliedCoupon: coupon,
	}
}
