package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/finhealth/internal/analyzer"
	"github.com/sells-group/finhealth/internal/config"
)

func testServer(t *testing.T, cfg config.ServerConfig) http.Handler {
	t.Helper()
	return New(cfg, analyzer.New()).Router()
}

func defaultServerConfig() config.ServerConfig {
	return config.ServerConfig{
		Port:           8080,
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

func validProfileBody(t *testing.T) []byte {
	t.Helper()
	doc := map[string]any{
		"age": 28, "salary": 1200000.0, "city_index": 1.5,
		"assets": 500000.0, "liabilities": 100000.0, "loans": 1,
		"emi": 5000.0, "responsibilities": 1, "savings": 200000.0,
		"credit_score": 720, "investments": 50000.0,
		"monthly_expenses": 30000.0, "risk_tolerance": 0.6,
		"high_risk_percent": 20, "confidence": 8,
		"budget": true, "insurance": "Health",
		"expense_tracking": "Monthly", "retirement": false,
		"automate": true, "defaulted": false, "advisor": false,
		"review_goals": true,
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return data
}

func TestHealthEndpoint(t *testing.T) {
	router := testServer(t, defaultServerConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := testServer(t, defaultServerConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(validProfileBody(t)))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var report map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))

	risk, ok := report["risk_assessment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "74.6/100", risk["overall_risk_score"])
	assert.Equal(t, "Growth Investor", risk["risk_profile"])

	assert.NotEmpty(t, report["report_id"])
	assert.EqualValues(t, 28, report["age"])

	// Lists serialize as arrays even when empty.
	warnings, ok := report["urgent_attention_required"].([]any)
	require.True(t, ok)
	assert.Empty(t, warnings)
}

func TestAnalyzeEndpointMissingField(t *testing.T) {
	router := testServer(t, defaultServerConfig())

	var doc map[string]any
	require.NoError(t, json.Unmarshal(validProfileBody(t), &doc))
	delete(doc, "salary")
	body, err := json.Marshal(doc)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "missing field: salary", resp["error"])
}

func TestAnalyzeEndpointMalformedBody(t *testing.T) {
	router := testServer(t, defaultServerConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "invalid request body", resp["error"])
}

func TestAnalyzeEndpointEmptyBody(t *testing.T) {
	router := testServer(t, defaultServerConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "no input data provided", resp["error"])
}

func TestCORSPreflight(t *testing.T) {
	router := testServer(t, defaultServerConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analyze", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	router := testServer(t, defaultServerConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analyze", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	cfg := defaultServerConfig()
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 2
	router := testServer(t, cfg)

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(validProfileBody(t)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Contains(t, codes, http.StatusTooManyRequests)
}

func TestMetricsEndpoint(t *testing.T) {
	router := testServer(t, defaultServerConfig())

	// Generate one analysis so the counter has a sample.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(validProfileBody(t)))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "finhealth_analyses_total")
	assert.Contains(t, rr.Body.String(), `profile="Growth Investor"`)
}
