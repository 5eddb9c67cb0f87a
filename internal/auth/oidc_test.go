package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"testing"
)

func TestGenerateCodeVerifier(t *testing.T) {
	verifier, challenge := generateCodeVerifier()

	if verifier == "" || challenge == "" {
		t.Fatal("Expected non-empty verifier and challenge")
	}
	if verifier == challenge {
		t.Error("Expected challenge to differ from verifier")
	}

	hash := sha256.Sum256([]byte(verifier))
	want := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(hash[:])
	if challenge != want {
		t.Errorf("Expected challenge %q, got %q", want, challenge)
	}
}

func TestGenerateRandString(t *testing.T) {
	a := generateRandString(32)
	b := generateRandString(32)

	if a == b {
		t.Error("Expected two random strings to differ")
	}
	if generateRandString(0) == "" {
		t.Error("Expected a default-length string for non-positive sizes")
	}
}

func TestGetPreferredValue(t *testing.T) {
	if got := getPreferredValue("", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got %q", got)
	}
	if got := getPreferredValue("primary", "fallback"); got != "primary" {
		t.Errorf("Expected primary, got %q", got)
	}
	if got := getPreferredValue("", ""); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}
