package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWithWriterProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	log.HTTPRequest("GET", "/api/health", 200, 1.5, "127.0.0.1")

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "http_request" {
		t.Fatalf("expected msg http_request, got %v", record["msg"])
	}
	if record["path"] != "/api/health" {
		t.Fatalf("expected path attribute, got %v", record["path"])
	}
}

func TestProductionSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	log.PhoneBatch(3, 2, 0.4)

	if buf.Len() != 0 {
		t.Fatalf("expected debug record to be dropped, got %q", buf.String())
	}
}

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("development", &buf)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")
	log.WithContext(ctx).Info("hello")

	if !strings.Contains(buf.String(), "request_id=req-123") {
		t.Fatalf("expected request id in log line, got %q", buf.String())
	}
}

func TestWithContextWithoutRequestID(t *testing.T) {
	log := Discard()
	if got := log.WithContext(context.Background()); got != log {
		t.Fatal("expected same logger when context carries no request id")
	}
}
