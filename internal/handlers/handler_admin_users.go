package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"kamingo-landing/internal/middlewares"
	"kamingo-landing/internal/storage"

	"github.com/go-chi/chi/v5"
)

// GETAdminUsersHandler lists every stored user record.
func GETAdminUsersHandler(ctx *middlewares.AppContext) {
	if ctx.Storage == nil {
		ctx.Render(http.StatusServiceUnavailable, "error.html", map[string]any{
			"Error":       "storage_disabled",
			"Description": "User storage is not configured on this deployment.",
		})
		return
	}

	users, err := ctx.Storage.ListUsers(ctx.Request.Context())
	if err != nil {
		ctx.Logger.Error("failed to list users", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Render(http.StatusOK, "admin_users.html", map[string]any{
		"Users": users,
	})
}

// GETAdminUserHandler shows the edit form for a single user record.
func GETAdminUserHandler(ctx *middlewares.AppContext) {
	if ctx.Storage == nil {
		ctx.SetJSONError(http.StatusServiceUnavailable, "user storage is not configured")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(ctx.Request, "id"), 10, 64)
	if err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := ctx.Storage.GetUserByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "user not found")
			return
		}

		ctx.Logger.Error("failed to load user", "error", err, "id", id)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Render(http.StatusOK, "admin_user_edit.html", map[string]any{
		"User": user,
	})
}

// POSTAdminUserHandler applies an edit to a user record.
func POSTAdminUserHandler(ctx *middlewares.AppContext) {
	if ctx.Storage == nil {
		ctx.SetJSONError(http.StatusServiceUnavailable, "user storage is not configured")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(ctx.Request, "id"), 10, 64)
	if err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid user id")
		return
	}

	if err := ctx.Request.ParseForm(); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Bad Request")
		return
	}

	name := ctx.Request.PostFormValue("name")
	email := ctx.Request.PostFormValue("email")
	picture := ctx.Request.PostFormValue("picture")

	if email == "" {
		user, err := ctx.Storage.GetUserByID(ctx.Request.Context(), id)
		if err != nil {
			ctx.SetJSONError(http.StatusNotFound, "user not found")
			return
		}

		ctx.Render(http.StatusUnprocessableEntity, "admin_user_edit.html", map[string]any{
			"User":  user,
			"Error": "Email must not be empty.",
		})
		return
	}

	if _, err := ctx.Storage.UpdateUser(ctx.Request.Context(), id, name, email, picture); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "user not found")
			return
		}

		ctx.Logger.Error("failed to update user", "error", err, "id", id)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Logger.Info("user record updated", "id", id)
	ctx.Redirect(ctx.Config.Admin.PathPrefix+"/users", http.StatusFound)
}
