package handlers

import (
	"net/http"

	"github.com/felixgeelhaar/shopbazar/internal/api/response"
	"github.com/felixgeelhaar/shopbazar/internal/catalog"
)

// CatalogHandler serves the read-only storefront catalog
type CatalogHandler struct {
	catalog *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Products(r.Context())
	if err != nil {
		response.InternalError(w, r, "failed to list products", err)
		return
	}
	response.WriteJSON(w, http.StatusOK, products)
}

// ListFeatured handles GET /products/featured
func (h *CatalogHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Featured(r.Context())
	if err != nil {
		response.InternalError(w, r, "failed to list featured products", err)
		return
	}
	response.WriteJSON(w, http.StatusOK, products)
}

// ListByCategory handles GET /products/category/{name}
func (h *CatalogHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ByCategory(r.Context(), r.PathValue("name"))
	if err != nil {
		response.InternalError(w, r, "failed to list products", err)
		return
	}
	response.WriteJSON(w, http.StatusOK, products)
}

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		response.InternalError(w, r, "failed to list categories", err)
		return
	}
	response.WriteJSON(w, http.StatusOK, categories)
}

// ListTestimonials handles GET /testimonials
func (h *CatalogHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.catalog.Testimonials(r.Context())
	if err != nil {
		response.InternalError(w, r, "failed to list testimonials", err)
		return
	}
	response.WriteJSON(w, http.StatusOK, reviews)
}
