package auth

type SessionKey string

var (
	SessionKeyUserData           SessionKey = "user_data"
	SessionKeyAuthenticated      SessionKey = "authenticated"
	SessionKeyAdmin              SessionKey = "admin"
	SessionKeyRedirectAfterLogin SessionKey = "redirect_after_login"
	SessionKeyOauthState         SessionKey = "oauth_state"
	SessionKeyOauthNonce         SessionKey = "oauth_nonce"
	SessionKeyOauthCodeVerifier  SessionKey = "oauth_code_verifier"
)
