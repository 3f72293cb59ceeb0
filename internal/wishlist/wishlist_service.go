package wishlist

import (
	"context"
	"fmt"

	"github.com/dev-dotsquares/ecommerce/internal/catalog"
	"github.com/dev-dotsquares/ecommerce/internal/notify"

	"go.uber.org/zap"
)

type Service interface {
	Toggle(ctx context.Context, productID string) (ToggleResponse, error)
	List(ctx context.Context) ListResponse
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
		panic("wishlist store cannot be nil")
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

func (s *service) Toggle(ctx context.Context, productID string) (ToggleResponse, error) {
	product, err := s.catalog.GetProduct(productID)
	if err != nil {
		return ToggleResponse{}, err
	}

	state := s.store.Dispatch(ctx, Toggle{Product: product})
	added := state.Contains(productID)

	message := fmt.Sprintf("%s removed from wishlist", product.Name)
	if added {
		message = fmt.Sprintf("%s added to wishlist", product.Name)
	}

	s.notifier.Notify(ctx, notify.Event{
		Type:    notify.EventWishlistToggled,
		Message: message,
		Payload: map[string]any{"productId": productID, "added": added},
	})

	return ToggleResponse{
		Message:  message,
		Added:    added,
		Wishlist: mapList(state),
	}, nil
}

func (s *service) List(_ context.Context) ListResponse {
	return mapList(s.store.State())
}

func mapList(state State) ListResponse {
	return ListResponse{
		Items:     state.Items,
		ItemCount: len(state.Items),
	}
}
