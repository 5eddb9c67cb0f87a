package middlewares

import (
	"kamingo-landing/internal/models"
)

//go:generate mockgen -source=oauth_provider.go -destination=../mocks/oauth.go -package=mocks

type OAuthProvider interface {
	// StartLogin stores state, nonce and PKCE verifier in the session and
	// returns the provider authorization URL to redirect the browser to.
	StartLogin(ctx *AppContext) (string, error)
	// HandleCallback validates the callback request, exchanges the
	// authorization code and returns the fetched user profile.
	HandleCallback(ctx *AppContext) (*models.User, error)
}
