package cart

import (
	"context"
	"fmt"

	"github.com/dev-dotsquares/ecommerce/internal/catalog"
	"github.com/dev-dotsquares/ecommerce/internal/notify"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	AddItem(ctx context.Context, productID string) (MutationResponse, error)
	UpdateQuantity(ctx context.Context, productID string, quantity int) (MutationResponse, error)
	RemoveItem(ctx context.Context, productID string) (MutationResponse, error)
	Clear(ctx context.Context) (MutationResponse, error)
	Detail(ctx context.Context) DetailResponse

	// Items exposes the raw cart lines for checkout pricing.
	Items(ctx context.Context) []Item
}

type service struct {
	store    *Store
	catalog  catalog.Service
	notifier notify.Notifier
	logger   *zap.Logger
}

type Deps struct {
	Store    *Store
	Catalog  catalog.Service
	Notifier notify.Notifier
	Logger   *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Store == nil {
		panic("cart store cannot be nil")
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
		store:    deps.Store,
		catalog:  deps.Catalog,
		notifier: deps.Notifier,
		logger:   deps.Logger,
	}
}

func (s *service) AddItem(ctx context.Context, productID string) (MutationResponse, error) {
	product, err := s.catalog.GetProduct(productID)
	if err != nil {
		return MutationResponse{}, err
	}

	state := s.store.Dispatch(ctx, AddItem{Product: product})

	message := fmt.Sprintf("%s added to cart", product.Name)
	s.notifier.Notify(ctx, notify.Event{
		Type:    notify.EventCartItemAdded,
		Message: message,
		Payload: map[string]any{"productId": productID, "quantity": state.Quantity(productID)},
	})

	return MutationResponse{Message: message, Cart: mapDetail(state)}, nil
}

func (s *service) UpdateQuantity(ctx context.Context, productID string, quantity int) (MutationResponse, error) {
	prev := s.store.State()
	idx := prev.find(productID)
	if idx < 0 {
		// Unknown id during cart mutation is a silent no-op, never a failure.
		return MutationResponse{Message: "Cart unchanged", Cart: mapDetail(prev)}, nil
	}
	name := prev.Items[idx].Product.Name

	state := s.store.Dispatch(ctx, UpdateQuantity{ID: productID, Quantity: quantity})

	message := fmt.Sprintf("%s quantity updated", name)
	eventType := notify.EventCartQtyUpdated
	if quantity <= 0 {
		message = fmt.Sprintf("%s removed from cart", name)
		eventType = notify.EventCartItemRemoved
	}
	s.notifier.Notify(ctx, notify.Event{
		Type:    eventType,
		Message: message,
		Payload: map[string]any{"productId": productID, "quantity": state.Quantity(productID)},
	})

	return MutationResponse{Message: message, Cart: mapDetail(state)}, nil
}

func (s *service) RemoveItem(ctx context.Context, productID string) (MutationResponse, error) {
	prev := s.store.State()
	idx := prev.find(productID)
	if idx < 0 {
		return MutationResponse{Message: "Cart unchanged", Cart: mapDetail(prev)}, nil
	}
	name := prev.Items[idx].Product.Name

	state := s.store.Dispatch(ctx, RemoveItem{ID: productID})

	message := fmt.Sprintf("%s removed from cart", name)
	s.notifier.Notify(ctx, notify.Event{
		Type:    notify.EventCartItemRemoved,
		Message: message,
		Payload: map[string]any{"productId": productID},
	})

	return MutationResponse{Message: message, Cart: mapDetail(state)}, nil
}

func (s *service) Clear(ctx context.Context) (MutationResponse, error) {
	state := s.store.Dispatch(ctx, Clear{})

	message := "Cart cleared"
	s.notifier.Notify(ctx, notify.Event{
		Type:    notify.EventCartCleared,
		Message: message,
	})

	return MutationResponse{Message: message, Cart: mapDetail(state)}, nil
}

func (s *service) Detail(_ context.Context) DetailResponse {
	return mapDetail(s.store.State())
}

func (s *service) Items(_ context.Context) []Item {
	return s.store.State().Items
}

func mapDetail(state State) DetailResponse {
	items := make([]ItemResponse, 0, len(state.Items))
	subtotal := decimal.Zero
	totalItems := 0

	for _, item := range state.Items {
		lineTotal := decimal.NewFromFloat(item.Product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		totalItems += item.Quantity
		items = append(items, ItemResponse{
			Product:   item.Product,
			Quantity:  item.Quantity,
			LineTotal: lineTotal.InexactFloat64(),
		})
	}

	return DetailResponse{
		Items:      items,
		TotalItems: totalItems,
		Subtotal:   subtotal.InexactFloat64(),
	}
}
