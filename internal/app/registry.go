package app

import (
	"context"

	"github.com/dev-dotsquares/ecommerce/internal/cart"
	"github.com/dev-dotsquares/ecommerce/internal/catalog"
	"github.com/dev-dotsquares/ecommerce/internal/catalog/seed"
	"github.com/dev-dotsquares/ecommerce/internal/checkout"
	"github.com/dev-dotsquares/ecommerce/internal/config"
	"github.com/dev-dotsquares/ecommerce/internal/notify"
	"github.com/dev-dotsquares/ecommerce/internal/storage"
	"github.com/dev-dotsquares/ecommerce/internal/wishlist"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	cfg config.Config,
	store storage.Store,
	notifier notify.Notifier,
	logger *zap.Logger,
) {
	// --- Catalog (static data source) ---
	products := seed.Products()
	catalogRepo := catalog.NewRepository(catalog.Data{
		Products:   products,
		Categories: seed.Categories(),
		Reviews:    seed.Reviews(products),
		Coupons:    seed.Coupons(),
		Banners:    seed.Banners(),
	})
	catalogService := catalog.NewService(catalogRepo)

	// --- State containers (mirror-backed) ---
	cartStore := cart.NewStore(ctx,
		storage.NewMirror(store, cart.Slot, cart.EmptyState(), logger), logger)
	wishlistStore := wishlist.NewStore(ctx,
		storage.NewMirror(store, wishlist.Slot, wishlist.EmptyState(), logger), logger)
	checkoutSession := checkout.NewSession(ctx,
		storage.NewMirror[*checkout.ShippingAddress](store, checkout.AddressSlot, nil, logger), logger)

	// --- Services ---
	cartService := cart.NewService(cart.Deps{
		Store:    cartStore,
		Catalog:  catalogService,
		Notifier: notifier,
		Logger:   logger,
	})
	wishlistService := wishlist.NewService(wishlist.Deps{
		Store:    wishlistStore,
		Catalog:  catalogService,
		Notifier: notifier,
		Logger:   logger,
	})
	checkoutService := checkout.NewService(checkout.Deps{
		Session:         checkoutSession,
		CartSvc:         cartService,
		Catalog:         catalogService,
		Notifier:        notifier,
		Logger:          logger,
		ProcessingDelay: cfg.OrderProcessingDelay,
	})

	// --- Handlers ---
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartService)
	wishlistHandler := wishlist.NewHandler(wishlistService)
	checkoutHandler := checkout.NewHandler(checkoutService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		wishlist.RegisterRoutes(api, wishlistHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
	}
}
