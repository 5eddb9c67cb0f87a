package handlers

import (
	"errors"
	"net/http"

	"kamingo-landing/internal/auth"
	"kamingo-landing/internal/metrics"
	"kamingo-landing/internal/middlewares"
)

// GETCallbackHandler completes the authorization-code flow: it validates
// the provider response, records the user and establishes the session.
func GETCallbackHandler(ctx *middlewares.AppContext) {
	if ctx.OAuth == nil {
		ctx.Redirect("/", http.StatusFound)
		return
	}

	user, err := ctx.OAuth.HandleCallback(ctx)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("oauth", "failure").Inc()

		var oauthErr *auth.OAuthError
		if errors.As(err, &oauthErr) {
			ctx.Logger.Warn("oauth callback failed", "error", oauthErr.Message)
			ctx.Redirect(oauthErr.RedirectURL, http.StatusFound)
			return
		}

		ctx.Logger.Error("oauth callback failed", "error", err)
		ctx.Redirect("/error?error=auth_failed", http.StatusFound)
		return
	}

	if ctx.Storage != nil {
		stored, err := ctx.Storage.UpsertUser(ctx.Request.Context(), user.Sub, user.Name, user.Email, user.Picture)
		if err != nil {
			ctx.Logger.Error("failed to persist user record", "error", err, "sub", user.Sub)
		} else {
			user = stored
		}
	}

	metrics.LoginAttempts.WithLabelValues("oauth", "success").Inc()
	ctx.SessionManager.SetUser(ctx, user)

	ctx.Logger.Info("user authenticated",
		"sub", user.Sub,
		"email", user.Email,
	)

	redirectTo := ctx.SessionManager.GetRedirectAfterLogin(ctx)
	ctx.SessionManager.ClearRedirectAfterLogin(ctx)
	if redirectTo == "" {
		redirectTo = "/"
	}

	ctx.Redirect(redirectTo, http.StatusFound)
}
