package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/elegante-shop/storefront-backend/api/controllers"
	"github.com/elegante-shop/storefront-backend/api/middleware"
	"github.com/elegante-shop/storefront-backend/internal/cart"
	"github.com/elegante-shop/storefront-backend/internal/catalog"
	"github.com/elegante-shop/storefront-backend/pkg/config"
	"github.com/elegante-shop/storefront-backend/pkg/logger"
	"github.com/elegante-shop/storefront-backend/pkg/metrics"
	"github.com/elegante-shop/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisPinger redis.Pinger,
	store *catalog.Store,
	cartService cart.Service,
	httpMetrics *metrics.HTTPMetrics,
	metricsGatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, redisPinger, logg))
	})

	if metricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metricsGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(store, logg))
			r.Get("/filters", controllers.GetCatalogFilters(store, logg))
			r.Get("/{productID}", controllers.GetProduct(store, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(cartService, logg))
			r.Delete("/", controllers.ClearCart(cartService, logg))
			r.Post("/items", controllers.AddCartItem(cartService, logg))
			r.Patch("/items/{itemID}", controllers.UpdateCartItem(cartService, logg))
			r.Delete("/items/{itemID}", controllers.RemoveCartItem(cartService, logg))
		})

		r.Post("/checkout/whatsapp", controllers.CheckoutWhatsApp(cartService, cfg.WhatsApp, logg))

		r.Route("/contact", func(r chi.Router) {
			r.Post("/whatsapp", controllers.SubmitContact(cfg.WhatsApp, logg))
			r.Get("/whatsapp", controllers.DirectContact(cfg.WhatsApp, logg))
		})
	})

	return r
}
