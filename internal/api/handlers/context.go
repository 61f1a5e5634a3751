package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/felixgeelhaar/shopbazar/internal/domain"
)

// ContextKey type for context keys
type ContextKey string

const (
	ContextKeyClaim ContextKey = "claim"
)

const maxBodyBytes = 1 << 20

// WithClaim stores the verified session claim in ctx
func WithClaim(ctx context.Context, claim domain.SessionClaim) context.Context {
	return context.WithValue(ctx, ContextKeyClaim, claim)
}

// ClaimFromContext returns the claim attached by the access guard
func ClaimFromContext(ctx context.Context) (domain.SessionClaim, bool) {
	claim, ok := ctx.Value(ContextKeyClaim).(domain.SessionClaim)
	return claim, ok
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
}

// decodeStrictJSON fails on any field dst does not declare
func decodeStrictJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
