package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/felixgeelhaar/shopbazar/internal/api/handlers"
	"github.com/felixgeelhaar/shopbazar/internal/api/middleware"
	"github.com/felixgeelhaar/shopbazar/internal/api/response"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LivenessMessage is the plain-text body served at the root path
const LivenessMessage = "shop bazar is shopping"

// Router wraps the HTTP multiplexer with middleware and handlers
type Router struct {
	mux     *http.ServeMux
	app     *App
	auth    *handlers.AuthHandler
	catalog *handlers.CatalogHandler
	cart    *handlers.CartHandler
}

// NewRouter creates a new API router with all routes configured
func NewRouter(app *App) http.Handler {
	r := &Router{
		mux:     http.NewServeMux(),
		app:     app,
		auth:    handlers.NewAuthHandler(app.Auth),
		catalog: handlers.NewCatalogHandler(app.Catalog),
		cart:    handlers.NewCartHandler(app.Cart, app.Config.CartRequireAuth),
	}

	r.registerRoutes()

	return r.buildMiddlewareChain(r.mux)
}

func (r *Router) registerRoutes() {
	// Liveness, health and metrics
	r.mux.HandleFunc("GET /{$}", r.handleRoot)
	r.mux.HandleFunc("GET /health", r.handleHealth)
	r.mux.HandleFunc("GET /ready", r.handleReady)
	r.mux.Handle("GET /metrics", promhttp.HandlerFor(r.app.Registry, promhttp.HandlerOpts{}))

	// Catalog (public)
	r.mux.HandleFunc("GET /products", r.catalog.ListProducts)
	r.mux.HandleFunc("GET /products/featured", r.catalog.ListFeatured)
	r.mux.HandleFunc("GET /products/category/{name}", r.catalog.ListByCategory)
	r.mux.HandleFunc("GET /categories", r.catalog.ListCategories)
	r.mux.HandleFunc("GET /testimonials", r.catalog.ListTestimonials)

	// Registration
	r.mux.HandleFunc("POST /user-data", r.auth.Register)

	// Cart
	r.mux.HandleFunc("GET /cart/{email}", r.requireAuth(r.cart.List))
	if r.app.Config.CartRequireAuth {
		r.mux.HandleFunc("POST /cart", r.requireAuth(r.cart.Add))
		r.mux.HandleFunc("DELETE /cart/{id}", r.requireAuth(r.cart.Remove))
	} else {
		r.mux.HandleFunc("POST /cart", r.cart.Add)
		r.mux.HandleFunc("DELETE /cart/{id}", r.cart.Remove)
	}
}

func (r *Router) buildMiddlewareChain(handler http.Handler) http.Handler {
	// Apply middleware in reverse order (last applied = first executed).
	// Metrics wraps the mux directly to see the matched pattern.
	handler = r.app.Metrics.Handler(handler)
	handler = middleware.Recovery(handler)
	handler = middleware.Logger(handler)

	// Rate limiting is off in debug mode
	if r.app.RateLimit != nil {
		handler = r.app.RateLimit.Handler(handler)
	}

	handler = middleware.RequestID(handler)
	handler = middleware.CORS(r.app.Config.CORSOrigins)(handler)

	return handler
}

// requireAuth is the access guard. The whole Authorization header is the
// token. Missing and rejected tokens get the same 401 body; the reason is
// only logged at debug level.
func (r *Router) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		token := req.Header.Get("Authorization")
		if token == "" {
			r.app.Metrics.AuthFailure("missing")
			slog.Debug("missing authorization header",
				"path", req.URL.Path,
				"request_id", middleware.GetRequestID(req.Context()),
			)
			response.Unauthorized(w, req)
			return
		}

		claim, err := r.app.Auth.Authenticate(token)
		if err != nil {
			r.app.Metrics.AuthFailure("invalid")
			slog.Debug("token rejected",
				"error", err,
				"path", req.URL.Path,
				"request_id", middleware.GetRequestID(req.Context()),
			)
			response.Unauthorized(w, req)
			return
		}

		next(w, req.WithContext(handlers.WithClaim(req.Context(), claim)))
	}
}

func (r *Router) handleRoot(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(LivenessMessage))
}

// Health check handlers
func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (r *Router) handleReady(w http.ResponseWriter, req *http.Request) {
	if err := r.app.Store.Ping(req.Context()); err != nil {
		slog.Error("store health check failed",
			"error", err,
			"request_id", middleware.GetRequestID(req.Context()),
		)
		response.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "not ready",
			"checks": map[string]string{
				"store": "unhealthy",
			},
		})
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{
		"status": "ready",
		"checks": map[string]string{
			"store": "healthy",
		},
	})
}
