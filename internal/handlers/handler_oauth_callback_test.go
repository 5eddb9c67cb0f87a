package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"kamingo-landing/internal/auth"
	"kamingo-landing/internal/models"
	"kamingo-landing/internal/testutil"
)

func callbackTestUser() *models.User {
	return &models.User{
		Sub:     "google-sub-1",
		Name:    "Ada",
		Email:   "ada@example.com",
		Picture: "https://lh3.example.com/photo.jpg",
	}
}

func TestCallbackHandler_ShouldEstablishSessionAndRedirectHome(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/auth?code=abc&state=xyz").WithoutStorage()
	defer tc.Finish()

	user := callbackTestUser()

	tc.MockOAuth.EXPECT().HandleCallback(tc.AppContext).Return(user, nil)
	tc.MockSession.EXPECT().SetUser(tc.AppContext, user)
	tc.MockSession.EXPECT().GetRedirectAfterLogin(tc.AppContext).Return("")
	tc.MockSession.EXPECT().ClearRedirectAfterLogin(tc.AppContext)

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusFound)
	tc.AssertLocationHeader(t, "/")
	tc.AssertLogContains(t, slog.LevelInfo, "user authenticated")
}

func TestCallbackHandler_ShouldPersistUserWhenStorageEnabled(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/auth?code=abc&state=xyz")
	defer tc.Finish()

	user := callbackTestUser()
	stored := callbackTestUser()
	stored.ID = 7

	tc.MockOAuth.EXPECT().HandleCallback(tc.AppContext).Return(user, nil)
	tc.MockStorage.EXPECT().
		UpsertUser(tc.Request.Context(), user.Sub, user.Name, user.Email, user.Picture).
		Return(stored, nil)
	tc.MockSession.EXPECT().SetUser(tc.AppContext, stored)
	tc.MockSession.EXPECT().GetRedirectAfterLogin(tc.AppContext).Return("/pricing")
	tc.MockSession.EXPECT().ClearRedirectAfterLogin(tc.AppContext)

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusFound)
	tc.AssertLocationHeader(t, "/pricing")
}

func TestCallbackHandler_ShouldSurviveUpsertFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/auth?code=abc&state=xyz")
	defer tc.Finish()

	user := callbackTestUser()

	tc.MockOAuth.EXPECT().HandleCallback(tc.AppContext).Return(user, nil)
	tc.MockStorage.EXPECT().
		UpsertUser(tc.Request.Context(), user.Sub, user.Name, user.Email, user.Picture).
		Return(nil, errors.New("connection refused"))
	tc.MockSession.EXPECT().SetUser(tc.AppContext, user)
	tc.MockSession.EXPECT().GetRedirectAfterLogin(tc.AppContext).Return("")
	tc.MockSession.EXPECT().ClearRedirectAfterLogin(tc.AppContext)

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusFound)
	tc.AssertLocationHeader(t, "/")
	tc.AssertLogContains(t, slog.LevelError, "failed to persist user record")
}

func TestCallbackHandler_ShouldFollowProviderErrorRedirect(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/auth?error=access_denied")
	defer tc.Finish()

	oauthErr := &auth.OAuthError{
		RedirectURL: "/error?error=access_denied",
		Message:     "access_denied",
	}

	tc.MockOAuth.EXPECT().HandleCallback(tc.AppContext).Return(nil, oauthErr)

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusFound)
	tc.AssertLocationHeader(t, "/error?error=access_denied")
	tc.AssertLogContains(t, slog.LevelWarn, "oauth callback failed")
}

func TestCallbackHandler_ShouldRedirectToErrorPageOnUnknownFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/auth?code=abc")
	defer tc.Finish()

	tc.MockOAuth.EXPECT().HandleCallback(tc.AppContext).Return(nil, errors.New("boom"))

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusFound)
	tc.AssertLocationHeader(t, "/error?error=auth_failed")
}

func TestCallbackHandler_ShouldRedirectHomeWhenOAuthUnconfigured(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/auth").WithoutOAuth()
	defer tc.Finish()

	tc.CallHandler(GETCallbackHandler)

	tc.AssertStatus(t, http.StatusFound)
	tc.AssertLocationHeader(t, "/")
}
