package middlewares

import (
	"net/http"
	"net/url"
	"strings"
)

// RequireAdmin gates the admin path prefix. The guard mode comes from
// configuration: "basic" challenges with HTTP Basic auth on every request,
// "form" checks the session admin flag and sends browsers to the login form.
//
// The admin session flag is only ever set here (basic mode) or by the form
// login handler, both after passing VerifyAdminCredentials.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		switch appCtx.Config.Admin.AuthMode {
		case "basic":
			username, password, ok := r.BasicAuth()
			if !ok || !VerifyAdminCredentials(appCtx.Config, username, password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
				appCtx.SetJSONError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
				return
			}

			next.ServeHTTP(w, r)

		default:
			if appCtx.SessionManager.IsAdmin(appCtx) {
				next.ServeHTTP(w, r)
				return
			}

			if acceptsHTML(r) {
				appCtx.Redirect("/login?rd="+url.QueryEscape(r.URL.Path), http.StatusFound)
				return
			}

			appCtx.SetJSONError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
	})
}

func acceptsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
