package middlewares

import (
	"net/http"

	"kamingo-landing/internal/models"
)

//go:generate mockgen -source=session_provider.go -destination=../mocks/session.go -package=mocks

type SessionProvider interface {
	SetUser(ctx *AppContext, user *models.User)
	GetUser(ctx *AppContext) (user *models.User, ok bool)
	IsAuthenticated(ctx *AppContext) bool
	SetAdmin(ctx *AppContext, admin bool)
	IsAdmin(ctx *AppContext) bool
	SetRedirectAfterLogin(ctx *AppContext, redirectAfterLogin string)
	GetRedirectAfterLogin(ctx *AppContext) string
	ClearRedirectAfterLogin(ctx *AppContext)
	SetOauthState(ctx *AppContext, state string)
	GetOauthState(ctx *AppContext) string
	ClearOauthState(ctx *AppContext)
	SetOauthNonce(ctx *AppContext, nonce string)
	GetOauthNonce(ctx *AppContext) string
	ClearOauthNonce(ctx *AppContext)
	SetOauthCodeVerifier(ctx *AppContext, verifier string)
	GetOauthCodeVerifier(ctx *AppContext) string
	ClearOauthCodeVerifier(ctx *AppContext)
	Logout(ctx *AppContext) error

	LoadAndSave(next http.Handler) http.Handler
}
