package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symcalc/symcalc/api"
	"github.com/symcalc/symcalc/internal/logging"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(DefaultConfig(), logging.NewWithWriter(io.Discard, "error", false))
}

func postTool(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/tool", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["time"])
}

func TestSchema(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/schema", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	var doc struct {
		Tools []api.ToolSpec `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.NotEmpty(t, doc.Tools)
}

func TestToolCall_Simplify(t *testing.T) {
	s := newTestServer(t)
	body := `{
		"tool": "simplify",
		"params": {"term": {"type":"op","op":"+","args":[
			{"type":"var","name":"x"},
			{"type":"lit","value":0}
		]}}
	}`
	w := postTool(t, s, body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp api.ToolResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Error)
	assert.Equal(t, "x", resp.Text)
}

func TestToolCall_ErrorStaysHTTP200(t *testing.T) {
	// Engine-level failures are part of the tool protocol, not HTTP
	// failures.
	s := newTestServer(t)
	body := `{
		"tool": "diff",
		"params": {
			"term": {"type":"op","op":"^","args":[
				{"type":"var","name":"x"},
				{"type":"var","name":"x"}
			]},
			"var": "x"
		}
	}`
	w := postTool(t, s, body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp api.ToolResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestToolCall_MalformedJSON(t *testing.T) {
	s := newTestServer(t)
	w := postTool(t, s, `{"tool": "simplify"`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToolCall_UnknownFieldRejected(t *testing.T) {
	s := newTestServer(t)
	w := postTool(t, s, `{"tool": "simplify", "params": {}, "bogus": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToolCall_TrailingDataRejected(t *testing.T) {
	s := newTestServer(t)
	w := postTool(t, s, `{"tool": "schema", "params": {}} {"again": true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToolCall_BodyCap(t *testing.T) {
	s := newTestServer(t)
	huge := `{"tool": "simplify", "params": {"pad": "` + strings.Repeat("a", maxBodyBytes+1024) + `"}}`
	w := postTool(t, s, huge)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestIDPropagation(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, "test-id-123", w.Header().Get("X-Request-ID"))

	// Absent header gets a generated ID.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	// Drive one tool call so the counter exists.
	postTool(t, s, `{"tool": "schema", "params": {}}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	metricsBody := w.Body.String()
	assert.Contains(t, metricsBody, "symcalc_tool_calls_total")
	assert.Contains(t, metricsBody, `tool="schema"`)
}

func TestMethodNotAllowedOnTool(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/tool", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("addr: \":9090\"\nlog_level: debug\nlog_json: true\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("/does/not/exist.yaml")
	assert.Error(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unterminated"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestToolCall_ResponseOmitsEmptyFields(t *testing.T) {
	s := newTestServer(t)
	w := postTool(t, s, `{
		"tool": "canonical_text",
		"params": {"term": {"type":"var","name":"x"}}
	}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, bytes.Contains(w.Body.Bytes(), []byte(`"error"`)))
	assert.True(t, bytes.Contains(w.Body.Bytes(), []byte(`"text":"x"`)))
}
