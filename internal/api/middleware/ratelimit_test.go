package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/felixgeelhaar/shopbazar/internal/api/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_Burst(t *testing.T) {
	rl := middleware.NewRateLimiter(3, false)
	defer rl.Close()
	handler := rl.Handler(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}
}

func TestRateLimiter_MultipleClients(t *testing.T) {
	rl := middleware.NewRateLimiter(1, false)
	defer rl.Close()
	handler := rl.Handler(okHandler())

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", addr, rec.Code)
		}
	}
}

func TestRateLimiter_ForwardedFor(t *testing.T) {
	rl := middleware.NewRateLimiter(1, true)
	defer rl.Close()
	handler := rl.Handler(okHandler())

	send := func(xff string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.9:1"
		req.Header.Set("X-Forwarded-For", xff)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("203.0.113.1, 10.0.0.9"); code != http.StatusOK {
		t.Fatalf("first client: status = %d", code)
	}
	if code := send("203.0.113.1"); code != http.StatusTooManyRequests {
		t.Fatalf("same client via proxy: status = %d, want 429", code)
	}
	if code := send("203.0.113.2"); code != http.StatusOK {
		t.Fatalf("second client: status = %d", code)
	}
}

func TestRateLimiter_IgnoresForwardedForByDefault(t *testing.T) {
	rl := middleware.NewRateLimiter(1, false)
	defer rl.Close()
	handler := rl.Handler(okHandler())

	send := func(header, value string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.9:1"
		req.Header.Set(header, value)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("X-Forwarded-For", "203.0.113.1"); code != http.StatusOK {
		t.Fatalf("first request: status = %d", code)
	}
	// A fresh forwarding header does not buy a fresh bucket
	if code := send("X-Forwarded-For", "203.0.113.2"); code != http.StatusTooManyRequests {
		t.Fatalf("spoofed X-Forwarded-For: status = %d, want 429", code)
	}
	if code := send("X-Real-IP", "203.0.113.3"); code != http.StatusTooManyRequests {
		t.Fatalf("spoofed X-Real-IP: status = %d, want 429", code)
	}
}
