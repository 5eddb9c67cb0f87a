package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"testing"

	"kamingo-landing/internal/testutil"
)

const expectedAuthURL = "https://accounts.google.com/o/oauth2/v2/auth?state=12345"

func TestGetLoginHandler_ShouldRedirectToProvider(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/login")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)
	tc.MockSession.EXPECT().SetRedirectAfterLogin(tc.AppContext, "")
	tc.MockOAuth.EXPECT().StartLogin(tc.AppContext).Return(expectedAuthURL, nil)

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusFound)
	tc.AssertLocationHeader(t, expectedAuthURL)
}

func TestGetLoginHandler_ShouldRedirectAlreadyAuthenticatedUser(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/login")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(true)

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusFound)
	tc.AssertLocationHeader(t, "/")
}

func TestGetLoginHandler_ShouldRenderFormForAdminTarget(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/login")
	tc.WithQueryParam("rd", "/admin/users")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertBodyContains(t, `name="username"`)
	tc.AssertBodyContains(t, `value="/admin/users"`)
}

func TestGetLoginHandler_ShouldRenderFormWhenOAuthUnconfigured(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/login").WithoutOAuth()
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertBodyContains(t, `name="password"`)
}

func TestGetLoginHandler_ShouldRedirectToErrorPageOnStartLoginFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/login")
	defer tc.Finish()

	tc.MockSession.EXPECT().IsAuthenticated(tc.AppContext).Return(false)
	tc.MockSession.EXPECT().SetRedirectAfterLogin(tc.AppContext, "")
	tc.MockOAuth.EXPECT().StartLogin(tc.AppContext).Return("", errors.New("discovery failed"))

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusFound)
	tc.AssertLocationHeader(t, "/error?error=server_error")
	tc.AssertLogContains(t, slog.LevelError, "failed to start login")
}

func TestPostLoginHandler_ShouldAcceptValidCredentials(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/login")
	tc.WithForm(url.Values{
		"username": {"admin"},
		"password": {"hunter2hunter2"},
	})
	defer tc.Finish()

	tc.MockSession.EXPECT().SetAdmin(tc.AppContext, true)

	tc.CallHandler(POSTLoginHandler)

	tc.AssertStatus(t, http.StatusFound)
	tc.AssertLocationHeader(t, "/admin/users")
	tc.AssertLogContains(t, slog.LevelInfo, "admin logged in")
}

func TestPostLoginHandler_ShouldHonorRedirectTarget(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/login")
	tc.WithForm(url.Values{
		"username": {"admin"},
		"password": {"hunter2hunter2"},
		"rd":       {"/admin/users/3"},
	})
	defer tc.Finish()

	tc.MockSession.EXPECT().SetAdmin(tc.AppContext, true)

	tc.CallHandler(POSTLoginHandler)

	tc.AssertStatus(t, http.StatusFound)
	tc.AssertLocationHeader(t, "/admin/users/3")
}

func TestPostLoginHandler_ShouldNeuterOffsiteRedirects(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/login")
	tc.WithForm(url.Values{
		"username": {"admin"},
		"password": {"hunter2hunter2"},
		"rd":       {"https://evil.example.com/"},
	})
	defer tc.Finish()

	tc.MockSession.EXPECT().SetAdmin(tc.AppContext, true)

	tc.CallHandler(POSTLoginHandler)

	tc.AssertStatus(t, http.StatusFound)
	tc.AssertLocationHeader(t, "/")
}

func TestPostLoginHandler_ShouldRejectBadCredentials(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/login")
	tc.WithForm(url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})
	defer tc.Finish()

	tc.CallHandler(POSTLoginHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertBodyContains(t, "Invalid username or password.")
	tc.AssertLogContains(t, slog.LevelWarn, "rejected admin login attempt")
}
