package pricing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apphttp "storefront_backend/internal/http"
	"storefront_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewModule(validator.New()).RegisterRoutes(&apphttp.RouterContext{Engine: engine, V1: engine.Group("/api/v1")})
	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestFormatEndpoint(t *testing.T) {
	engine := newTestEngine()

	rec := get(engine, "/api/v1/pricing/format?amount=1234567")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got FormatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Formatted != "1.234.567\u00a0₫" || got.Currency != "VND" || got.Compact {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestFormatEndpointCompact(t *testing.T) {
	engine := newTestEngine()

	rec := get(engine, "/api/v1/pricing/format?amount=2500000&compact=true")
	var got FormatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Formatted != "2.5M" || !got.Compact {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestFormatEndpointZeroAmount(t *testing.T) {
	engine := newTestEngine()

	rec := get(engine, "/api/v1/pricing/format?amount=0")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for zero amount, got %d", rec.Code)
	}
}

func TestFormatEndpointRejectsBadAmount(t *testing.T) {
	engine := newTestEngine()

	for _, path := range []string{
		"/api/v1/pricing/format",
		"/api/v1/pricing/format?amount=abc",
		"/api/v1/pricing/format?amount=1.5",
	} {
		if rec := get(engine, path); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, rec.Code)
		}
	}
}

func TestFormatEndpointRejectsNonBoolCompact(t *testing.T) {
	engine := newTestEngine()

	rec := get(engine, "/api/v1/pricing/format?amount=5&compact=maybe")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var got struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Error != msgInvalidRequest {
		t.Fatalf("expected %q, got %q", msgInvalidRequest, got.Error)
	}
}
