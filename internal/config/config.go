package config

import (
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use -config or -c)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvSecretKey         = "SECRET_KEY"
	EnvAdminUsername     = "ADMIN_USERNAME"
	EnvAdminPassword     = "ADMIN_PASSWORD"
	EnvOAuthClientID     = "GOOGLE_CLIENT_ID"
	EnvOAuthClientSecret = "GOOGLE_CLIENT_SECRET"
	EnvStoragePassword   = "STORAGE_PASSWORD"
	EnvRedisPassword     = "REDIS_PASSWORD"
)

func applyEnvironmentOverrides(config *Config) {
	if secret := os.Getenv(EnvSecretKey); secret != "" {
		config.Handoff.Secret = secret
	}

	if username := os.Getenv(EnvAdminUsername); username != "" {
		config.Admin.Username = username
	}

	if password := os.Getenv(EnvAdminPassword); password != "" {
		config.Admin.Password = password
	}

	if clientID := os.Getenv(EnvOAuthClientID); clientID != "" {
		config.OAuth.ClientID = clientID
	}

	if clientSecret := os.Getenv(EnvOAuthClientSecret); clientSecret != "" {
		config.OAuth.ClientSecret = clientSecret
	}

	if password := os.Getenv(EnvStoragePassword); password != "" {
		if config.Storage == nil {
			config.Storage = &StorageConfig{}
		}
		config.Storage.Password = password
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateOAuthConfig()
	if err != nil {
		return err
	}

	err = config.validateHandoffConfig()
	if err != nil {
		return err
	}

	err = config.validateAdminConfig()
	if err != nil {
		return err
	}

	err = config.validateBlocklistConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	if config.Sessions.Store == "redis" {
		err = config.validateRedisConfig()
		if err != nil {
			return err
		}
	}

	err = config.validateStorageConfig()
	if err != nil {
		return err
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.ExternalURL == "" {
		return fmt.Errorf("server.external_url is required")
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

// OAuthEnabled reports whether the OAuth login flow is configured. With no
// client registration the server falls back to the form-login-only surface.
func (c *Config) OAuthEnabled() bool {
	return c.OAuth.ClientID != "" && c.OAuth.ClientSecret != ""
}

func (c *Config) validateOAuthConfig() error {
	if !c.OAuthEnabled() {
		if c.OAuth.ClientID != "" || c.OAuth.ClientSecret != "" {
			return fmt.Errorf("oauth client_id and client_secret must be set together")
		}
		return nil
	}

	if c.OAuth.IssuerURL == "" {
		c.OAuth.IssuerURL = DefaultOAuthConfig.IssuerURL
	}

	if err := validateURL(c.OAuth.IssuerURL, "oauth.issuer_url"); err != nil {
		return err
	}

	if c.OAuth.RedirectURL == "" {
		c.OAuth.RedirectURL = strings.TrimSuffix(c.Server.ExternalURL, "/") + "/auth"
	}

	if err := validateURL(c.OAuth.RedirectURL, "oauth.redirect_url"); err != nil {
		return err
	}

	if len(c.OAuth.Scopes) == 0 {
		c.OAuth.Scopes = DefaultOAuthConfig.Scopes
	}

	return nil
}

func (c *Config) validateHandoffConfig() error {
	if !c.OAuthEnabled() {
		return nil
	}

	// The signing secret is a startup requirement, never a per-request one.
	if c.Handoff.Secret == "" {
		return fmt.Errorf("handoff.secret is required when oauth is enabled (set %s)", EnvSecretKey)
	}

	if len(c.Handoff.Secret) < 32 {
		return fmt.Errorf("handoff.secret must be at least 32 characters")
	}

	if err := validateURL(c.Handoff.URL, "handoff.url"); err != nil {
		return err
	}

	if c.Handoff.TokenLifetime <= 0 {
		c.Handoff.TokenLifetime = DefaultHandoffConfig.TokenLifetime
	}

	return nil
}

func (c *Config) validateAdminConfig() error {
	if c.Admin.PathPrefix == "" {
		c.Admin.PathPrefix = DefaultAdminConfig.PathPrefix
	}

	if !strings.HasPrefix(c.Admin.PathPrefix, "/") {
		return fmt.Errorf("admin.path_prefix must start with '/', got %q", c.Admin.PathPrefix)
	}

	if c.Admin.AuthMode == "" {
		c.Admin.AuthMode = DefaultAdminConfig.AuthMode
	}

	switch c.Admin.AuthMode {
	case "basic", "form":
	default:
		return fmt.Errorf("invalid admin auth_mode: %s, options are 'basic' or 'form'", c.Admin.AuthMode)
	}

	if c.Admin.Username == "" || c.Admin.Password == "" {
		return fmt.Errorf("admin.username and admin.password are required (set %s and %s)", EnvAdminUsername, EnvAdminPassword)
	}

	return nil
}

func (c *Config) validateBlocklistConfig() error {
	for i, addr := range c.Blocklist.Addresses {
		if _, err := netip.ParseAddr(addr); err == nil {
			continue
		}
		if _, err := netip.ParsePrefix(addr); err == nil {
			continue
		}
		return fmt.Errorf("blocklist.addresses[%d]: %q is not a valid IP address or CIDR", i, addr)
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else {
		switch c.Log.Format {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Store == "" {
		c.Sessions.Store = DefaultSessionConfig.Store
	} else {
		switch c.Sessions.Store {
		case "memory", "redis":
		default:
			return fmt.Errorf("invalid session store: %s, options are 'memory' or 'redis'", c.Sessions.Store)
		}
	}

	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	if c.Sessions.FixedTimeout == 0 {
		c.Sessions.FixedTimeout = DefaultSessionConfig.FixedTimeout
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis config is required when sessions.store is 'redis'")
	}

	if c.Redis.Address == "" {
		return fmt.Errorf("redis address is required")
	}

	if _, _, err := net.SplitHostPort(c.Redis.Address); err != nil {
		return fmt.Errorf("invalid redis address format (expected host:port): %w", err)
	}

	if c.Redis.SessionIndex < 0 || c.Redis.SessionIndex > 15 {
		return fmt.Errorf("redis session_index must be between 0 and 15, got %d", c.Redis.SessionIndex)
	}

	return nil
}

func (c *Config) validateStorageConfig() error {
	if c.Storage == nil || !c.Storage.Enabled {
		return nil
	}

	if c.Storage.Host == "" {
		return fmt.Errorf("storage.host is required when storage is enabled")
	}

	if c.Storage.Port <= 0 || c.Storage.Port > 65535 {
		return fmt.Errorf("storage.port must be between 1 and 65535, got %d", c.Storage.Port)
	}

	if c.Storage.Database == "" {
		return fmt.Errorf("storage.database is required when storage is enabled")
	}

	return nil
}

func validateURL(rawURL, field string) error {
	if rawURL == "" {
		return fmt.Errorf("%s is required", field)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", field, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https scheme, got %q", field, u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("%s is missing a host", field)
	}

	return nil
}
