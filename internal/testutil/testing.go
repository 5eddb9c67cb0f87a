package testutil

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"kamingo-landing/internal/config"
	"kamingo-landing/internal/middlewares"
	"kamingo-landing/internal/mocks"
	"kamingo-landing/internal/token"
	"kamingo-landing/internal/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

// TestHandoffSecret is long enough to pass config validation.
const TestHandoffSecret = "test-secret-0123456789abcdefghijklmnopqrstuv"

// TestContext holds everything needed for testing
type TestContext struct {
	AppContext     *middlewares.AppContext
	Request        *http.Request
	Response       *httptest.ResponseRecorder
	MockController *gomock.Controller
	MockSession    *mocks.MockSessionProvider
	MockOAuth      *mocks.MockOAuthProvider
	MockStorage    *mocks.MockProvider
	LogHandler     *TestLogHandler
}

// NewTestConfig returns a config that passes validation, with OAuth left
// unconfigured.
func NewTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:        8090,
			ExternalURL: "https://www.kamingo.test",
		},
		Handoff: config.HandoffConfig{
			URL:           "https://app.kamingo.test/launch",
			Secret:        TestHandoffSecret,
			TokenLifetime: 30 * time.Minute,
		},
		Admin: config.AdminConfig{
			Username:   "admin",
			Password:   "hunter2hunter2",
			PathPrefix: "/admin",
			AuthMode:   "form",
		},
	}
}

// NewTestContextWithURL creates a complete test setup with sensible defaults
func NewTestContextWithURL(t *testing.T, method, target string) *TestContext {
	cfg := NewTestConfig()

	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)

	mockSession := mocks.NewMockSessionProvider(ctrl)
	mockOAuth := mocks.NewMockOAuthProvider(ctrl)
	mockStorage := mocks.NewMockProvider(ctrl)

	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	issuer, err := token.NewIssuer(cfg.Handoff)
	if err != nil {
		t.Fatalf("failed to build token issuer: %v", err)
	}

	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Context:        req.Context(),
		Config:         cfg,
		Logger:         logger,
		SessionManager: mockSession,
		OAuth:          mockOAuth,
		Storage:        mockStorage,
		Tokens:         issuer,
		Renderer:       renderer,
		Request:        req,
		Response:       rr,
	}

	return &TestContext{
		AppContext:     appCtx,
		Request:        req,
		Response:       rr,
		MockController: ctrl,
		MockSession:    mockSession,
		MockOAuth:      mockOAuth,
		MockStorage:    mockStorage,
		LogHandler:     logHandler,
	}
}

// NewTestContext builds a context without a request, for handlers that only
// write a response.
func NewTestContext(t *testing.T) *TestContext {
	return NewTestContextWithURL(t, http.MethodGet, "/")
}

// Finish should be called at the end of tests to clean up mocks
func (tc *TestContext) Finish() {
	if tc.MockController != nil {
		tc.MockController.Finish()
	}
}

// CallHandler executes a handler with the test context
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

// AssertLocationHeader checks the redirect target
func (tc *TestContext) AssertLocationHeader(t *testing.T, expected string) {
	if loc := tc.Response.Header().Get("Location"); loc != expected {
		t.Errorf("Expected Location %q, got %q", expected, loc)
	}
}

// AssertLocationPrefix checks that the redirect target starts with a prefix
func (tc *TestContext) AssertLocationPrefix(t *testing.T, prefix string) {
	if loc := tc.Response.Header().Get("Location"); !strings.HasPrefix(loc, prefix) {
		t.Errorf("Expected Location starting with %q, got %q", prefix, loc)
	}
}

// AssertContentType checks the content type header
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// AssertBodyContains checks for a substring in the response body
func (tc *TestContext) AssertBodyContains(t *testing.T, expected string) {
	if body := tc.Response.Body.String(); !strings.Contains(body, expected) {
		t.Errorf("Expected body to contain %q, got: %s", expected, body)
	}
}

// GetJSONResponse parses the response body as JSON
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

// AssertJSONField checks a specific field in a JSON response
func (tc *TestContext) AssertJSONField(t *testing.T, field string, expected any) {
	response := tc.GetJSONResponse(t)
	if actual, ok := response[field]; !ok || actual != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, response[field])
	}
}

func (tc *TestContext) AssertLogContains(t *testing.T, level slog.Level, message string) {
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

// WithConfig allows you to override the default config for specific tests
func (tc *TestContext) WithConfig(cfg *config.Config) *TestContext {
	tc.AppContext.Config = cfg
	return tc
}

// WithoutOAuth drops the OAuth provider, simulating a deployment with no
// client credentials configured.
func (tc *TestContext) WithoutOAuth() *TestContext {
	tc.AppContext.OAuth = nil
	return tc
}

// WithoutStorage drops the storage provider, simulating a deployment with
// persistence disabled.
func (tc *TestContext) WithoutStorage() *TestContext {
	tc.AppContext.Storage = nil
	return tc
}

// WithQueryParam adds a query parameter to the request
func (tc *TestContext) WithQueryParam(key, value string) *TestContext {
	q := tc.Request.URL.Query()
	q.Add(key, value)
	tc.Request.URL.RawQuery = q.Encode()
	return tc
}

// WithHeader adds a header to the request
func (tc *TestContext) WithHeader(key, value string) *TestContext {
	tc.Request.Header.Set(key, value)
	return tc
}

// WithForm replaces the request body with URL-encoded form values
func (tc *TestContext) WithForm(values url.Values) *TestContext {
	body := strings.NewReader(values.Encode())
	req := httptest.NewRequest(tc.Request.Method, tc.Request.URL.String(), body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return tc.WithRequest(req)
}

// WithRequest allows you to set a custom request
func (tc *TestContext) WithRequest(req *http.Request) *TestContext {
	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()
	return tc
}

// WithRouteParam attaches a chi route parameter to the request context
func (tc *TestContext) WithRouteParam(key, value string) *TestContext {
	rctx, ok := tc.Request.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)

	req := tc.Request.WithContext(context.WithValue(tc.Request.Context(), chi.RouteCtxKey, rctx))
	return tc.WithRequest(req)
}
