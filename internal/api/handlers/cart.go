package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/felixgeelhaar/shopbazar/internal/api/response"
	"github.com/felixgeelhaar/shopbazar/internal/cart"
	"github.com/felixgeelhaar/shopbazar/internal/domain"
)

// CartHandler serves the shopping cart
type CartHandler struct {
	cart         *cart.Service
	requireOwner bool
}

// NewCartHandler creates a new cart handler. With requireOwner set, adding
// and removing items is limited to the caller's own cart and every cart
// route must sit behind the access guard.
func NewCartHandler(cartService *cart.Service, requireOwner bool) *CartHandler {
	return &CartHandler{cart: cartService, requireOwner: requireOwner}
}

// CartItemRequest is the accepted body for POST /cart. Server-set fields
// (_id, createdAt) are not part of it and are rejected like any other
// unknown field.
type CartItemRequest struct {
	UserEmail string  `json:"userEmail"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func (req CartItemRequest) item() domain.CartItem {
	return domain.CartItem{
		UserEmail: req.UserEmail,
		ProductID: req.ProductID,
		Name:      req.Name,
		Image:     req.Image,
		Category:  req.Category,
		Price:     req.Price,
		Quantity:  req.Quantity,
	}
}

// List handles GET /cart/{email}
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	claim, _ := ClaimFromContext(r.Context())
	email := strings.TrimSpace(r.PathValue("email"))

	if err := cart.Authorize(claim, email); err != nil {
		h.writeError(w, r, err, "failed to list cart")
		return
	}

	items, err := h.cart.List(r.Context(), email)
	if err != nil {
		h.writeError(w, r, err, "failed to list cart")
		return
	}
	response.WriteJSON(w, http.StatusOK, items)
}

// Add handles POST /cart
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req CartItemRequest
	if err := decodeStrictJSON(w, r, &req); err != nil {
		response.BadRequest(w, r, "invalid request body", err)
		return
	}
	item := req.item()

	if h.requireOwner {
		claim, _ := ClaimFromContext(r.Context())
		if err := cart.Authorize(claim, item.UserEmail); err != nil {
			h.writeError(w, r, err, "failed to add cart item")
			return
		}
	}

	result, err := h.cart.Add(r.Context(), item)
	if err != nil {
		h.writeError(w, r, err, "failed to add cart item")
		return
	}
	response.WriteJSON(w, http.StatusCreated, result)
}

// Remove handles DELETE /cart/{id}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	owner := ""
	if h.requireOwner {
		claim, _ := ClaimFromContext(r.Context())
		if claim.Email == "" {
			h.writeError(w, r, domain.ErrNotOwner, "failed to remove cart item")
			return
		}
		owner = claim.Email
	}

	result, err := h.cart.Remove(r.Context(), r.PathValue("id"), owner)
	if err != nil {
		h.writeError(w, r, err, "failed to remove cart item")
		return
	}
	response.WriteJSON(w, http.StatusOK, result)
}

func (h *CartHandler) writeError(w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotOwner):
		response.Forbidden(w, r, "forbidden access")
	case errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidCartItem),
		errors.Is(err, domain.ErrInvalidItemID):
		response.BadRequest(w, r, err.Error(), nil)
	default:
		response.InternalError(w, r, internalMsg, err)
	}
}
