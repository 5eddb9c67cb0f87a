package middlewares

import (
	"testing"

	"kamingo-landing/internal/config"
)

func credentialsTestConfig() *config.Config {
	return &config.Config{
		Admin: config.AdminConfig{
			Username: "admin",
			Password: "correct horse battery staple",
		},
	}
}

func TestVerifyAdminCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"valid credentials", "admin", "correct horse battery staple", true},
		{"wrong password", "admin", "guess", false},
		{"wrong username", "root", "correct horse battery staple", false},
		{"both wrong", "root", "guess", false},
		{"empty credentials", "", "", false},
		{"username as password", "admin", "admin", false},
	}

	cfg := credentialsTestConfig()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyAdminCredentials(cfg, tt.username, tt.password); got != tt.want {
				t.Errorf("VerifyAdminCredentials(%q, %q) = %v, want %v", tt.username, tt.password, got, tt.want)
			}
		})
	}
}
