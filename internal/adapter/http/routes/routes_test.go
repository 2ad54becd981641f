package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"isignthis_psp/internal/adapter/http/handlers"
	"isignthis_psp/internal/adapter/http/handlers/mocks"
	"isignthis_psp/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNewRouter_Ping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(Dependencies{Logger: zap.NewNop()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["message"] != "pong" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestNewRouter_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(Dependencies{})

	t.Run("generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if len(w.Header().Get(HeaderRequestID)) != 36 {
			t.Fatalf("expected uuid request id, got %q", w.Header().Get(HeaderRequestID))
		}
	})

	t.Run("propagated when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get(HeaderRequestID); got != "req-123" {
			t.Fatalf("expected req-123, got %q", got)
		}
	})
}

func TestNewRouter_Metrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(Dependencies{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNewRouter_Swagger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(Dependencies{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("invalid swagger document: %v", err)
	}
	if doc["basePath"] != "/v1" {
		t.Fatalf("unexpected basePath %v", doc["basePath"])
	}
}

func TestNewRouter_PaymentRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)

	uc.EXPECT().GetPayment(gomock.Any(), entities.PaymentID("pay-1")).
		Return(entities.Payment{ID: "pay-1", State: entities.PaymentStatePending}, nil)
	uc.EXPECT().CancelPayment(gomock.Any(), "pay-1").Return(nil)

	r := NewRouter(Dependencies{
		PaymentHandler:  handlers.NewPaymentHandler(uc, zap.NewNop()),
		CallbackHandler: handlers.NewCallbackHandler(uc, zap.NewNop()),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/pay-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/payments/pay-1/cancel", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
