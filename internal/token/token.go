// Package token mints and verifies the short-lived signed credential handed
// to the downstream application after a successful login.
package token

import (
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/google/uuid"

	"kamingo-landing/internal/config"
	"kamingo-landing/internal/models"
)

// Claims is the handoff payload. The downstream consumer must verify the
// signature and expiry before trusting any of these fields.
type Claims struct {
	jwt.Claims
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Issuer struct {
	secret   []byte
	lifetime time.Duration

	// now is swappable in tests
	now func() time.Time
}

// NewIssuer validates the signing configuration. A missing secret is a fatal
// configuration error at startup, never a per-request one.
func NewIssuer(cfg config.HandoffConfig) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("handoff signing secret is not configured")
	}

	lifetime := cfg.TokenLifetime
	if lifetime <= 0 {
		lifetime = config.DefaultHandoffConfig.TokenLifetime
	}

	return &Issuer{
		secret:   []byte(cfg.Secret),
		lifetime: lifetime,
		now:      time.Now,
	}, nil
}

// Issue signs a token for the given user profile with HMAC-SHA256.
func (i *Issuer) Issue(user *models.User) (string, error) {
	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.HS256, Key: i.secret}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create signer: %w", err)
	}

	now := i.now()
	claims := Claims{
		Claims: jwt.Claims{
			Subject:  user.Sub,
			ID:       uuid.New().String(),
			IssuedAt: jwt.NewNumericDate(now),
			Expiry:   jwt.NewNumericDate(now.Add(i.lifetime)),
		},
		Email: user.Email,
		Name:  user.Name,
	}

	raw, err := jwt.Signed(signer).Claims(claims).Serialize()
	if err != nil {
		return "", fmt.Errorf("failed to sign handoff token: %w", err)
	}

	return raw, nil
}

// Verify checks the signature and expiry of a raw token and returns its
// claims.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	parsed, err := jwt.ParseSigned(raw, []jose.SignatureAlgorithm{jose.HS256})
	if err != nil {
		return nil, fmt.Errorf("failed to parse handoff token: %w", err)
	}

	var claims Claims
	if err := parsed.Claims(i.secret, &claims); err != nil {
		return nil, fmt.Errorf("invalid token signature: %w", err)
	}

	// Zero leeway: a token is invalid the moment its expiry passes. The
	// library default would otherwise accept it for another minute.
	if err := claims.ValidateWithLeeway(jwt.Expected{Time: i.now()}, 0); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	return &claims, nil
}
