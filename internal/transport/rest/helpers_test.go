package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/greenthumb-backend/pkg/ctxutil"
)

//go:generate moq -out plant_service_mock_test.go -pkg rest . plantService
//go:generate moq -out care_service_mock_test.go -pkg rest . careService
//go:generate moq -out tip_service_mock_test.go -pkg rest . tipService
//go:generate moq -out weather_service_mock_test.go -pkg rest . weatherService
//go:generate moq -out user_service_mock_test.go -pkg rest . userService
//go:generate moq -out stats_service_mock_test.go -pkg rest . statsService

var (
	testNow    = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	testUserID = uuid.MustParse("7f1c0a52-5d3e-4d8b-9a4e-2b6f0c1d9e11")
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// serveAs mounts fn on pattern and serves one authenticated request.
func serveAs(fn http.HandlerFunc, pattern, method, target, body string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, fn)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(ctxutil.WithUserID(req.Context(), testUserID))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func ptr[T any](v T) *T { return &v }
