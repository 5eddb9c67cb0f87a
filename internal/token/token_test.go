package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kamingo-landing/internal/config"
	"kamingo-landing/internal/models"
)

var testUser = &models.User{
	Sub:     "108256349573925692110",
	Name:    "Steve Example",
	Email:   "steve@example.com",
	Picture: "https://lh3.example.com/photo.jpg",
}

func newTestIssuer(t *testing.T, secret string) *Issuer {
	t.Helper()

	issuer, err := NewIssuer(config.HandoffConfig{
		Secret:        secret,
		TokenLifetime: 30 * time.Minute,
	})
	require.NoError(t, err)
	return issuer
}

func TestNewIssuerRequiresSecret(t *testing.T) {
	_, err := NewIssuer(config.HandoffConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signing secret")
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	issuer := newTestIssuer(t, strings.Repeat("a", 32))

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issuedAt }

	raw, err := issuer.Issue(testUser)
	require.NoError(t, err)

	claims, err := issuer.Verify(raw)
	require.NoError(t, err)

	assert.Equal(t, testUser.Sub, claims.Subject)
	assert.Equal(t, testUser.Email, claims.Email)
	assert.Equal(t, testUser.Name, claims.Name)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, issuedAt.Add(30*time.Minute).Unix(), claims.Expiry.Time().Unix())
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := newTestIssuer(t, strings.Repeat("a", 32))
	other := newTestIssuer(t, strings.Repeat("b", 32))

	raw, err := issuer.Issue(testUser)
	require.NoError(t, err)

	_, err = other.Verify(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signature")
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := newTestIssuer(t, strings.Repeat("a", 32))

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issuedAt }

	raw, err := issuer.Issue(testUser)
	require.NoError(t, err)

	issuer.now = func() time.Time { return issuedAt.Add(31 * time.Minute) }

	_, err = issuer.Verify(raw)
	require.Error(t, err)
}

func TestVerifyRejectsTokenJustPastExpiry(t *testing.T) {
	issuer := newTestIssuer(t, strings.Repeat("a", 32))

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issuedAt }

	raw, err := issuer.Issue(testUser)
	require.NoError(t, err)

	// One second inside the lifetime still verifies.
	issuer.now = func() time.Time { return issuedAt.Add(30*time.Minute - time.Second) }
	_, err = issuer.Verify(raw)
	require.NoError(t, err)

	// One second past it does not, with no grace window.
	issuer.now = func() time.Time { return issuedAt.Add(30*time.Minute + time.Second) }
	_, err = issuer.Verify(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	issuer := newTestIssuer(t, strings.Repeat("a", 32))

	raw, err := issuer.Issue(testUser)
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".eyJzdWIiOiJzb21lb25lLWVsc2UifQ." + parts[2]

	_, err = issuer.Verify(tampered)
	require.Error(t, err)
}
