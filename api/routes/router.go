package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pedeaqui/pedeaqui-backend/api/controllers"
	"github.com/pedeaqui/pedeaqui-backend/api/middleware"
	"github.com/pedeaqui/pedeaqui-backend/internal/cart"
	"github.com/pedeaqui/pedeaqui-backend/internal/catalog"
	"github.com/pedeaqui/pedeaqui-backend/pkg/config"
	"github.com/pedeaqui/pedeaqui-backend/pkg/db"
	"github.com/pedeaqui/pedeaqui-backend/pkg/logger"
	"github.com/pedeaqui/pedeaqui-backend/pkg/metrics"
	"github.com/pedeaqui/pedeaqui-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	catalogService *catalog.Service,
	cartService *cart.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/stores", controllers.StoresByCity(catalogService, logg))
		r.Get("/stores/{storeID}/products", controllers.StoreProducts(catalogService, logg))

		r.Route("/products/{productID}", func(r chi.Router) {
			r.Get("/", controllers.ProductDetail(catalogService, logg))
			r.Post("/customization/quote", controllers.CustomizationQuote(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.CustomerContext(logg))
			r.Get("/", controllers.CartGet(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Patch("/items/{itemID}", controllers.CartUpdateItem(cartService, logg))
			r.Delete("/items/{itemID}", controllers.CartRemoveItem(cartService, logg))
			r.Patch("/fulfillment", controllers.CartSetFulfillment(cartService, logg))
		})
	})

	return r
}
