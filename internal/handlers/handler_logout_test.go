package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"kamingo-landing/internal/models"
	"kamingo-landing/internal/testutil"
)

func TestLogoutHandler_ShouldDestroySessionAndRedirect(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/logout")
	defer tc.Finish()

	testUser := &models.User{Sub: "google-sub-1", Email: "ada@example.com"}

	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(testUser, true)
	tc.MockSession.EXPECT().Logout(tc.AppContext).Return(nil)

	tc.CallHandler(GETLogoutHandler)

	tc.AssertStatus(t, http.StatusFound)
	tc.AssertLocationHeader(t, "/")
	tc.AssertLogContains(t, slog.LevelInfo, "user logged out")
}

func TestLogoutHandler_ShouldRedirectAnonymousVisitors(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/logout")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(nil, false)
	tc.MockSession.EXPECT().Logout(tc.AppContext).Return(nil)

	tc.CallHandler(GETLogoutHandler)

	tc.AssertStatus(t, http.StatusFound)
	tc.AssertLocationHeader(t, "/")
}

func TestLogoutHandler_Should500OnDestroyFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/logout")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetUser(tc.AppContext).Return(nil, false)
	tc.MockSession.EXPECT().Logout(tc.AppContext).Return(errors.New("fail"))

	tc.CallHandler(GETLogoutHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "error", "Failed to logout")
	tc.AssertLogContains(t, slog.LevelError, "failed to destroy session")
}
