package handlers

import (
	"net/http"
	"net/url"

	"kamingo-landing/internal/metrics"
	"kamingo-landing/internal/middlewares"
	"kamingo-landing/internal/web"
)

// GETHomeHandler serves the landing page. A visitor with an authenticated
// session is not shown the page at all: they get a freshly signed identity
// token and are forwarded to the downstream application.
func GETHomeHandler(ctx *middlewares.AppContext) {
	if user, ok := ctx.SessionManager.GetUser(ctx); ok && ctx.Tokens != nil {
		signed, err := ctx.Tokens.Issue(user)
		if err != nil {
			ctx.Logger.Error("failed to issue handoff token", "error", err, "sub", user.Sub)
			ctx.Redirect("/error?error=server_error", http.StatusFound)
			return
		}

		metrics.HandoffTokensIssued.Inc()

		target := ctx.Config.Handoff.URL + "?token=" + url.QueryEscape(signed)
		ctx.Logger.Info("handing off authenticated user", "sub", user.Sub)
		ctx.Redirect(target, http.StatusFound)
		return
	}

	device := web.DetectDevice(ctx.Request.UserAgent())
	ctx.Render(http.StatusOK, web.LandingTemplate(device), nil)
}
