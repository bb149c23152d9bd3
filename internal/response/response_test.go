package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	err := JSONWithHeaders(rec, http.StatusCreated, JSONObject{"status": "OK"}, http.Header{"X-Test": {"1"}})
	if err != nil {
		t.Fatalf("json: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("content type = %q", got)
	}
	if got := rec.Header().Get("X-Test"); got != "1" {
		t.Fatalf("X-Test = %q", got)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "OK" {
		t.Fatalf("body = %v", body)
	}
}

func TestMetricsResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	mw := NewMetricsResponseWriter(rec)

	mw.WriteHeader(http.StatusTeapot)
	mw.WriteHeader(http.StatusOK)
	_, _ = mw.Write([]byte("hello"))

	if mw.StatusCode != http.StatusTeapot {
		t.Fatalf("status = %d", mw.StatusCode)
	}
	if mw.BytesCount != 5 {
		t.Fatalf("bytes = %d", mw.BytesCount)
	}
	if mw.Unwrap() != rec {
		t.Fatalf("unwrap must return the wrapped writer")
	}
}
