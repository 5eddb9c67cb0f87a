package middlewares_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"kamingo-landing/internal/config"
	"kamingo-landing/internal/middlewares"
	"kamingo-landing/internal/mocks"

	"go.uber.org/mock/gomock"
)

func requireAdminConfig(mode string) *config.Config {
	return &config.Config{
		Admin: config.AdminConfig{
			Username:   "admin",
			Password:   "hunter2hunter2",
			PathPrefix: "/admin",
			AuthMode:   mode,
		},
	}
}

func serveRequireAdmin(t *testing.T, cfg *config.Config, session middlewares.SessionProvider, mutate func(*http.Request)) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	baseCtx := middlewares.NewAppContext(context.Background(), cfg, slog.New(slog.DiscardHandler), session, nil, nil, nil, nil)

	reached := false
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	handler := middlewares.AppContextMiddleware(baseCtx)(middlewares.RequireAdmin(final))

	req := httptest.NewRequest("GET", "/admin/users", nil)
	if mutate != nil {
		mutate(req)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr, reached
}

func TestRequireAdmin_BasicMode_ShouldChallengeMissingCredentials(t *testing.T) {
	rr, reached := serveRequireAdmin(t, requireAdminConfig("basic"), nil, nil)

	if reached {
		t.Error("Expected request to be rejected before reaching the handler")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if got := rr.Header().Get("WWW-Authenticate"); got != `Basic realm="admin"` {
		t.Errorf("Expected WWW-Authenticate challenge, got %q", got)
	}
}

func TestRequireAdmin_BasicMode_ShouldRejectWrongCredentials(t *testing.T) {
	rr, reached := serveRequireAdmin(t, requireAdminConfig("basic"), nil, func(r *http.Request) {
		r.SetBasicAuth("admin", "guess")
	})

	if reached {
		t.Error("Expected request to be rejected before reaching the handler")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestRequireAdmin_BasicMode_ShouldPassValidCredentials(t *testing.T) {
	rr, reached := serveRequireAdmin(t, requireAdminConfig("basic"), nil, func(r *http.Request) {
		r.SetBasicAuth("admin", "hunter2hunter2")
	})

	if !reached {
		t.Error("Expected request to reach the handler")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestRequireAdmin_FormMode_ShouldPassAdminSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSessionProvider(ctrl)
	session.EXPECT().IsAdmin(gomock.Any()).Return(true)

	rr, reached := serveRequireAdmin(t, requireAdminConfig("form"), session, nil)

	if !reached {
		t.Error("Expected request to reach the handler")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestRequireAdmin_FormMode_ShouldSendBrowsersToLoginForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSessionProvider(ctrl)
	session.EXPECT().IsAdmin(gomock.Any()).Return(false)

	rr, reached := serveRequireAdmin(t, requireAdminConfig("form"), session, func(r *http.Request) {
		r.Header.Set("Accept", "text/html,application/xhtml+xml")
	})

	if reached {
		t.Error("Expected request to be rejected before reaching the handler")
	}
	if rr.Code != http.StatusFound {
		t.Errorf("Expected status %d, got %d", http.StatusFound, rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/login?rd=%2Fadmin%2Fusers" {
		t.Errorf("Expected login redirect, got %q", loc)
	}
}

func TestRequireAdmin_FormMode_ShouldReturnJSONForAPIClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSessionProvider(ctrl)
	session.EXPECT().IsAdmin(gomock.Any()).Return(false)

	rr, reached := serveRequireAdmin(t, requireAdminConfig("form"), session, func(r *http.Request) {
		r.Header.Set("Accept", "application/json")
	})

	if reached {
		t.Error("Expected request to be rejected before reaching the handler")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}
