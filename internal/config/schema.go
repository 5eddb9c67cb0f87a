package config

import (
	"time"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	OAuth     OAuthConfig     `yaml:"oauth"`
	Handoff   HandoffConfig   `yaml:"handoff"`
	Admin     AdminConfig     `yaml:"admin"`
	Blocklist BlocklistConfig `yaml:"blocklist"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Sessions  SessionConfig   `yaml:"sessions"`
	Redis     *RedisConfig    `yaml:"redis"`
	Storage   *StorageConfig  `yaml:"storage"`
}

type ServerConfig struct {
	Port        int                `yaml:"port"`
	ExternalURL string             `yaml:"external_url"`
	Debug       *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port: 8090,
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

// OAuthConfig configures the identity provider integration. Leaving the
// client credentials empty disables the OAuth login flow entirely.
type OAuthConfig struct {
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	IssuerURL    string   `yaml:"issuer_url"`
	RedirectURL  string   `yaml:"redirect_url"`
	Scopes       []string `yaml:"scopes"`
}

var DefaultOAuthConfig = OAuthConfig{
	IssuerURL: "https://accounts.google.com",
	Scopes:    []string{"openid", "email", "profile"},
}

// HandoffConfig describes the downstream application that consumes the
// signed identity token minted after a successful login.
type HandoffConfig struct {
	URL           string        `yaml:"url"`
	Secret        string        `yaml:"secret"`
	TokenLifetime time.Duration `yaml:"token_lifetime"`
}

var DefaultHandoffConfig = HandoffConfig{
	TokenLifetime: 30 * time.Minute,
}

// AdminConfig holds the static credentials and guard mode for the admin
// panel. AuthMode selects between an HTTP Basic challenge and the login
// form; both entry points share the same constant-time verifier.
type AdminConfig struct {
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	PathPrefix string `yaml:"path_prefix"`
	AuthMode   string `yaml:"auth_mode"`
}

var DefaultAdminConfig = AdminConfig{
	PathPrefix: "/admin",
	AuthMode:   "form",
}

type BlocklistConfig struct {
	Addresses []string `yaml:"addresses"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{},
	AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

type SessionConfig struct {
	Store        string        `yaml:"store"`
	FixedTimeout time.Duration `yaml:"fixed_timeout"`
	Name         string        `yaml:"name"`
	Secure       bool          `yaml:"secure"`
}

var DefaultSessionConfig = SessionConfig{
	Store:        "memory",
	FixedTimeout: 24 * time.Hour,
	Name:         "session_id",
	Secure:       true,
}

type RedisConfig struct {
	Address      string `yaml:"address"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	SessionIndex int    `yaml:"session_index"`
}

type StorageConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}
