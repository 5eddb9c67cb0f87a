package handlers

import (
	"net/http"
	"strings"

	"kamingo-landing/internal/metrics"
	"kamingo-landing/internal/middlewares"
)

// GETLoginHandler starts a login. Requests aimed at the admin area, or any
// request when no OAuth client is configured, get the credential form;
// everything else is sent to the identity provider.
func GETLoginHandler(ctx *middlewares.AppContext) {
	if ctx.SessionManager.IsAuthenticated(ctx) {
		ctx.Redirect("/", http.StatusFound)
		return
	}

	redirectTo := sanitizeRedirect(ctx.Request.URL.Query().Get("rd"))

	if ctx.OAuth == nil || strings.HasPrefix(redirectTo, ctx.Config.Admin.PathPrefix) {
		ctx.Render(http.StatusOK, "login.html", map[string]any{
			"Redirect":     redirectTo,
			"OAuthEnabled": false,
		})
		return
	}

	ctx.SessionManager.SetRedirectAfterLogin(ctx, redirectTo)

	authURL, err := ctx.OAuth.StartLogin(ctx)
	if err != nil {
		ctx.Logger.Error("failed to start login", "error", err)
		ctx.Redirect("/error?error=server_error", http.StatusFound)
		return
	}

	ctx.Logger.Debug("redirecting to identity provider", "url", authURL)
	ctx.Redirect(authURL, http.StatusFound)
}

// POSTLoginHandler checks the submitted form credentials against the
// configured admin account.
func POSTLoginHandler(ctx *middlewares.AppContext) {
	if err := ctx.Request.ParseForm(); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Bad Request")
		return
	}

	username := ctx.Request.PostFormValue("username")
	password := ctx.Request.PostFormValue("password")
	redirectTo := sanitizeRedirect(ctx.Request.PostFormValue("rd"))

	if !middlewares.VerifyAdminCredentials(ctx.Config, username, password) {
		metrics.LoginAttempts.WithLabelValues("form", "failure").Inc()
		ctx.Logger.Warn("rejected admin login attempt", "username", username)

		ctx.Render(http.StatusUnauthorized, "login.html", map[string]any{
			"Error":    "Invalid username or password.",
			"Redirect": redirectTo,
		})
		return
	}

	metrics.LoginAttempts.WithLabelValues("form", "success").Inc()
	ctx.SessionManager.SetAdmin(ctx, true)
	ctx.Logger.Info("admin logged in", "username", username)

	if redirectTo == "" {
		redirectTo = ctx.Config.Admin.PathPrefix + "/users"
	}

	ctx.Redirect(redirectTo, http.StatusFound)
}

// sanitizeRedirect keeps post-login redirects on this host. Anything that
// is not a local absolute path is replaced with the site root.
func sanitizeRedirect(rd string) string {
	if rd == "" {
		return ""
	}
	if !strings.HasPrefix(rd, "/") || strings.HasPrefix(rd, "//") {
		return "/"
	}
	return rd
}
