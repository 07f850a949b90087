package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

func TestIPRateLimiter(t *testing.T) {
	l := NewIPRateLimiter(1, 2)
	a := l.GetLimiter("10.0.0.1")
	// 同一 IP 返回同一限流器
	if l.GetLimiter("10.0.0.1") != a {
		t.Error("同一 IP 应复用限流器")
	}
	if l.GetLimiter("10.0.0.2") == a {
		t.Error("不同 IP 应各自限流")
	}
	// 突发额度 2：前两次放行，第三次拒绝
	if !a.Allow() || !a.Allow() {
		t.Error("突发额度内应放行")
	}
	if a.Allow() {
		t.Error("超出突发额度应拒绝")
	}
}

func TestLimitMiddleware(t *testing.T) {
	s := &Server{
		upgrader: websocket.Upgrader{},
		limiter:  NewIPRateLimiter(rate.Limit(1), 1),
	}
	handler := s.limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/materials", nil)
	req.RemoteAddr = "10.0.0.3:54321"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("首个请求应放行: %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("超限请求应返回 429: %d", rec.Code)
	}
}
