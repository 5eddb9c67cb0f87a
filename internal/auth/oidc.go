package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"

	"kamingo-landing/internal/config"
	"kamingo-landing/internal/middlewares"
	"kamingo-landing/internal/models"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// NewGoogleOAuthProvider discovers the issuer's endpoints and returns a
// provider implementing the authorization-code flow with PKCE.
func NewGoogleOAuthProvider(ctx context.Context, cfg config.OAuthConfig) (middlewares.OAuthProvider, error) {
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     provider.Endpoint(),
		Scopes:       cfg.Scopes,
		RedirectURL:  cfg.RedirectURL,
	}

	return &GoogleOAuthProvider{
		provider:     provider,
		oauth2Config: oauth2Config,
	}, nil
}

type GoogleOAuthProvider struct {
	provider     *oidc.Provider
	oauth2Config *oauth2.Config
}

func generateRandString(bytes int) string {
	if bytes <= 0 {
		bytes = 32
	}

	b := make([]byte, bytes)
	_, _ = rand.Read(b)

	return base64.URLEncoding.EncodeToString(b)
}

func generateCodeVerifier() (string, string) {
	b := make([]byte, 56)
	_, _ = rand.Read(b)

	codeVerifier := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b)
	hash := sha256.Sum256([]byte(codeVerifier))
	codeChallenge := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(hash[:])
	return codeVerifier, codeChallenge
}

func (g *GoogleOAuthProvider) StartLogin(ctx *middlewares.AppContext) (string, error) {
	state := generateRandString(32)
	nonce := generateRandString(32)
	codeVerifier, codeChallenge := generateCodeVerifier()

	ctx.SessionManager.SetOauthState(ctx, state)
	ctx.SessionManager.SetOauthNonce(ctx, nonce)
	ctx.SessionManager.SetOauthCodeVerifier(ctx, codeVerifier)

	authURL := g.oauth2Config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("response_type", "code"),
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	return authURL, nil
}

func (g *GoogleOAuthProvider) HandleCallback(ctx *middlewares.AppContext) (*models.User, error) {
	query := ctx.Request.URL.Query()

	if errorParam := query.Get("error"); errorParam != "" {
		errorURL := fmt.Sprintf("/error?error=%s", url.QueryEscape(errorParam))
		if desc := query.Get("error_description"); desc != "" {
			errorURL += "&error_description=" + url.QueryEscape(desc)
		}

		return nil, &OAuthError{RedirectURL: errorURL, Message: errorParam}
	}

	storedState := ctx.SessionManager.GetOauthState(ctx)
	if storedState == "" {
		return nil, &OAuthError{
			RedirectURL: "/error?error=invalid_request&error_description=" + url.QueryEscape("No oauth state found in session"),
			Message:     "no oauth state found in session",
		}
	}

	if query.Get("state") != storedState {
		return nil, &OAuthError{
			RedirectURL: "/error?error=invalid_request&error_description=" + url.QueryEscape("Invalid state parameter"),
			Message:     "invalid state parameter",
		}
	}

	ctx.SessionManager.ClearOauthState(ctx)

	code := query.Get("code")
	if code == "" {
		return nil, &OAuthError{
			RedirectURL: "/error?error=invalid_request&error_description=" + url.QueryEscape("No authorization code received"),
			Message:     "no authorization code received",
		}
	}

	codeVerifier := ctx.SessionManager.GetOauthCodeVerifier(ctx)
	ctx.SessionManager.ClearOauthCodeVerifier(ctx)

	token, err := g.oauth2Config.Exchange(ctx.Request.Context(), code, oauth2.VerifierOption(codeVerifier))
	if err != nil {
		return nil, &OAuthError{
			RedirectURL: "/error?error=invalid_grant&error_description=" + url.QueryEscape("Failed to exchange code for token"),
			Message:     fmt.Sprintf("failed to exchange code for token: %v", err),
		}
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, &OAuthError{
			RedirectURL: "/error?error=invalid_token&error_description=" + url.QueryEscape("No id_token found in oauth2 token"),
			Message:     "no id_token found in oauth2 token",
		}
	}

	verifier := g.provider.Verifier(&oidc.Config{ClientID: g.oauth2Config.ClientID})

	idToken, err := verifier.Verify(ctx.Request.Context(), rawIDToken)
	if err != nil {
		return nil, &OAuthError{
			RedirectURL: "/error?error=invalid_token&error_description=" + url.QueryEscape("Failed to verify ID Token"),
			Message:     fmt.Sprintf("failed to verify ID Token: %v", err),
		}
	}

	user, nonce, err := extractUserClaims(idToken)
	if err != nil {
		return nil, &OAuthError{
			RedirectURL: "/error?error=server_error&error_description=" + url.QueryEscape("Failed to extract user from ID Token"),
			Message:     fmt.Sprintf("failed to extract user from ID Token: %v", err),
		}
	}

	if nonce != ctx.SessionManager.GetOauthNonce(ctx) {
		return nil, &OAuthError{
			RedirectURL: "/error?error=server_error&error_description=" + url.QueryEscape("Invalid nonce"),
			Message:     "nonce in ID Token is invalid",
		}
	}

	ctx.SessionManager.ClearOauthNonce(ctx)

	enhancedUser, err := g.fetchUserInfo(ctx.Request.Context(), token, user)
	if err != nil {
		ctx.Logger.Warn("failed to fetch user info, using ID token data only", "error", err)
		enhancedUser = user
	}

	return enhancedUser, nil
}

func extractUserClaims(idToken *oidc.IDToken) (*models.User, string, error) {
	var claims struct {
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
		Nonce   string `json:"nonce"`
	}

	if err := idToken.Claims(&claims); err != nil {
		return nil, "", fmt.Errorf("failed to parse ID token claims: %w", err)
	}

	if claims.Sub == "" {
		return nil, "", fmt.Errorf("ID token is missing the sub claim")
	}

	user := &models.User{
		Sub:     claims.Sub,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}

	return user, claims.Nonce, nil
}

// fetchUserInfo retrieves additional profile fields from the UserInfo
// endpoint; the ID token alone may omit name and picture.
func (g *GoogleOAuthProvider) fetchUserInfo(ctx context.Context, token *oauth2.Token, baseUser *models.User) (*models.User, error) {
	userInfo, err := g.provider.UserInfo(ctx, oauth2.StaticTokenSource(token))
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	var claims struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture string `json:"picture"`
	}

	if err := userInfo.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to parse user info claims: %w", err)
	}

	enhancedUser := &models.User{
		Sub:     baseUser.Sub,
		Name:    getPreferredValue(claims.Name, baseUser.Name),
		Email:   getPreferredValue(claims.Email, baseUser.Email),
		Picture: getPreferredValue(claims.Picture, baseUser.Picture),
	}

	return enhancedUser, nil
}

// getPreferredValue returns the first non-empty string from the provided values
func getPreferredValue(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
