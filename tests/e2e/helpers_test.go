//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/greenthumb-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/greenthumb-backend/internal/app"
	"github.com/heartmarshall/greenthumb-backend/internal/auth"
	"github.com/heartmarshall/greenthumb-backend/internal/config"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "greenthumb-e2e",
			AccessTokenTTL: 15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		Garden: config.GardenConfig{DefaultWateringDays: 3},
		Weather: config.WeatherConfig{
			Units:     "imperial",
			CacheTTL:  30 * time.Minute,
			CacheSize: 16,
			Timeout:   time.Second,
		},
		LLM:       config.LLMConfig{MaxTokens: 512},
		RateLimit: config.RateLimitConfig{TipsPerMinute: 5},
	}
}

// setupTestServer bootstraps the application handler backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	clock := clockwork.NewRealClock()
	cfg := testConfig()

	handler, stop := app.NewHandler(cfg, pool, clock, logger)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    app.NewJWTManager(cfg.Auth, clock),
	}
}

// newGardener returns a token for a user id that has no stored profile yet.
func newGardener(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	userID := uuid.New()
	tok, err := ts.jwt.GenerateAccessToken(userID)
	require.NoError(t, err)
	return tok, userID
}

// do sends a JSON request and returns the status and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

// doJSON is do with the body decoded into T. It fails the test on a status mismatch.
func doJSON[T any](t *testing.T, ts *testServer, method, path string, body any, token string, wantStatus int) T {
	t.Helper()

	status, raw := ts.do(t, method, path, body, token)
	require.Equal(t, wantStatus, status, "body: %s", raw)

	var out T
	require.NoError(t, json.Unmarshal(raw, &out), fmt.Sprintf("decode %s %s", method, path))
	return out
}

type plantBody struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Location          string     `json:"location"`
	WateringFrequency int        `json:"wateringFrequency"`
	LastWatered       *time.Time `json:"lastWatered"`
	NextWatering      *time.Time `json:"nextWatering"`
	Status            string     `json:"status"`
	DisplayStatus     string     `json:"displayStatus"`
	IsOverdue         bool       `json:"isOverdue"`
	DaysUntilWatering *int       `json:"daysUntilWatering"`
}

type eventBody struct {
	ID        string    `json:"id"`
	PlantID   *string   `json:"plantId"`
	EventType string    `json:"eventType"`
	EventDate time.Time `json:"eventDate"`
	Completed bool      `json:"completed"`
}

type statsBody struct {
	TotalPlants    int `json:"totalPlants"`
	NeedWater      int `json:"needWater"`
	CareReminders  int `json:"careReminders"`
	AITipsThisWeek int `json:"aiTipsThisWeek"`
}

type errorBody struct {
	Error  string `json:"error"`
	Fields []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}
