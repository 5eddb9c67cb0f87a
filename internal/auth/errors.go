package auth

// OAuthError carries both an internal message for the logs and the /error
// page URL the browser should be redirected to.
type OAuthError struct {
	RedirectURL string
	Message     string
}

func (e *OAuthError) Error() string {
	return e.Message
}
