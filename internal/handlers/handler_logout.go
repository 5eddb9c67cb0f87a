package handlers

import (
	"net/http"

	"kamingo-landing/internal/middlewares"
)

func GETLogoutHandler(ctx *middlewares.AppContext) {
	user, _ := ctx.SessionManager.GetUser(ctx)

	if err := ctx.SessionManager.Logout(ctx); err != nil {
		ctx.Logger.Error("failed to destroy session", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to logout")
		return
	}

	if user != nil {
		ctx.Logger.Info("user logged out", "sub", user.Sub)
	}

	ctx.Redirect("/", http.StatusFound)
}
