package handlers

import (
	"net/http"

	"kamingo-landing/internal/middlewares"
)

func GETAboutHandler(ctx *middlewares.AppContext) {
	ctx.Render(http.StatusOK, "about.html", nil)
}

func GETContactHandler(ctx *middlewares.AppContext) {
	ctx.Render(http.StatusOK, "contact.html", nil)
}

func GETPricingHandler(ctx *middlewares.AppContext) {
	ctx.Render(http.StatusOK, "pricing.html", nil)
}

// GETErrorHandler renders the error page from the standard OAuth error
// query parameters so provider failures surface as a page, not a 5xx.
func GETErrorHandler(ctx *middlewares.AppContext) {
	query := ctx.Request.URL.Query()

	ctx.Render(http.StatusOK, "error.html", map[string]any{
		"Error":       query.Get("error"),
		"Description": query.Get("error_description"),
	})
}
