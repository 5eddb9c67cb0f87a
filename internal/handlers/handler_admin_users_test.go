package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"kamingo-landing/internal/models"
	"kamingo-landing/internal/storage"
	"kamingo-landing/internal/testutil"

	"go.uber.org/mock/gomock"
)

func adminTestUsers() []*models.User {
	now := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	return []*models.User{
		{ID: 1, Sub: "sub-1", Name: "Ada", Email: "ada@example.com", LastLoggedIn: now, CreatedAt: now},
		{ID: 2, Sub: "sub-2", Name: "Grace", Email: "grace@example.com", LastLoggedIn: now, CreatedAt: now},
	}
}

func TestAdminUsersHandler_ShouldListUsers(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/admin/users")
	defer tc.Finish()

	tc.MockStorage.EXPECT().ListUsers(tc.Request.Context()).Return(adminTestUsers(), nil)

	tc.CallHandler(GETAdminUsersHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertBodyContains(t, "ada@example.com")
	tc.AssertBodyContains(t, "grace@example.com")
}

func TestAdminUsersHandler_Should500OnStorageFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/admin/users")
	defer tc.Finish()

	tc.MockStorage.EXPECT().ListUsers(tc.Request.Context()).Return(nil, errors.New("connection refused"))

	tc.CallHandler(GETAdminUsersHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertJSONField(t, "error", "Internal Server Error")
}

func TestAdminUsersHandler_Should503WhenStorageDisabled(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/admin/users").WithoutStorage()
	defer tc.Finish()

	tc.CallHandler(GETAdminUsersHandler)

	tc.AssertStatus(t, http.StatusServiceUnavailable)
	tc.AssertBodyContains(t, "User storage is not configured")
}

func TestAdminUserHandler_ShouldRenderEditForm(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/admin/users/1")
	tc.WithRouteParam("id", "1")
	defer tc.Finish()

	tc.MockStorage.EXPECT().GetUserByID(tc.Request.Context(), int64(1)).Return(adminTestUsers()[0], nil)

	tc.CallHandler(GETAdminUserHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertBodyContains(t, `value="Ada"`)
	tc.AssertBodyContains(t, `value="ada@example.com"`)
}

func TestAdminUserHandler_Should400OnBadID(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/admin/users/abc")
	tc.WithRouteParam("id", "abc")
	defer tc.Finish()

	tc.CallHandler(GETAdminUserHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONField(t, "error", "invalid user id")
}

func TestAdminUserHandler_Should404OnUnknownUser(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/admin/users/99")
	tc.WithRouteParam("id", "99")
	defer tc.Finish()

	tc.MockStorage.EXPECT().GetUserByID(tc.Request.Context(), int64(99)).Return(nil, storage.ErrUserNotFound)

	tc.CallHandler(GETAdminUserHandler)

	tc.AssertStatus(t, http.StatusNotFound)
	tc.AssertJSONField(t, "error", "user not found")
}

func TestPostAdminUserHandler_ShouldUpdateAndRedirect(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/admin/users/1")
	tc.WithForm(url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"picture": {"https://lh3.example.com/photo.jpg"},
	})
	tc.WithRouteParam("id", "1")
	defer tc.Finish()

	tc.MockStorage.EXPECT().
		UpdateUser(gomock.Any(), int64(1), "Ada Lovelace", "ada@example.com", "https://lh3.example.com/photo.jpg").
		Return(adminTestUsers()[0], nil)

	tc.CallHandler(POSTAdminUserHandler)

	tc.AssertStatus(t, http.StatusFound)
	tc.AssertLocationHeader(t, "/admin/users")
}

func TestPostAdminUserHandler_ShouldRejectEmptyEmail(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/admin/users/1")
	tc.WithForm(url.Values{
		"name":  {"Ada"},
		"email": {""},
	})
	tc.WithRouteParam("id", "1")
	defer tc.Finish()

	tc.MockStorage.EXPECT().GetUserByID(gomock.Any(), int64(1)).Return(adminTestUsers()[0], nil)

	tc.CallHandler(POSTAdminUserHandler)

	tc.AssertStatus(t, http.StatusUnprocessableEntity)
	tc.AssertBodyContains(t, "Email must not be empty.")
}

func TestPostAdminUserHandler_Should404OnUnknownUser(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/admin/users/99")
	tc.WithForm(url.Values{
		"email": {"ghost@example.com"},
	})
	tc.WithRouteParam("id", "99")
	defer tc.Finish()

	tc.MockStorage.EXPECT().
		UpdateUser(gomock.Any(), int64(99), "", "ghost@example.com", "").
		Return(nil, storage.ErrUserNotFound)

	tc.CallHandler(POSTAdminUserHandler)

	tc.AssertStatus(t, http.StatusNotFound)
	tc.AssertJSONField(t, "error", "user not found")
}
