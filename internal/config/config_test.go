package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "LOG_FORMAT", "USERS_ROUTE_FAMILY", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}
	if cfg.Users.RouteFamily != RouteFamilyUsers {
		t.Errorf("Users.RouteFamily = %q, want %q", cfg.Users.RouteFamily, RouteFamilyUsers)
	}
	if cfg.RateLimit.RequestsPerSecond != 100 || cfg.RateLimit.Burst != 200 {
		t.Errorf("RateLimit = %+v, want 100/200", cfg.RateLimit)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("USERS_ROUTE_FAMILY", RouteFamilyUserByID)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "text")
	}
	if cfg.Users.RouteFamily != RouteFamilyUserByID {
		t.Errorf("Users.RouteFamily = %q, want %q", cfg.Users.RouteFamily, RouteFamilyUserByID)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Log:       LogConfig{Level: "info", Format: "json"},
			Users:     UsersConfig{RouteFamily: RouteFamilyUsers},
			RateLimit: RateLimitConfig{RequestsPerSecond: 1, Burst: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "user-by-id family", mutate: func(c *Config) { c.Users.RouteFamily = RouteFamilyUserByID }},
		{name: "unknown family", mutate: func(c *Config) { c.Users.RouteFamily = "orders" }, wantErr: true},
		{name: "unknown log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
		{name: "negative burst", mutate: func(c *Config) { c.RateLimit.Burst = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAdaptConfigForServerless(t *testing.T) {
	t.Run("server mode leaves config untouched", func(t *testing.T) {
		t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")

		cfg := &Config{
			Log:       LogConfig{Format: "text"},
			RateLimit: RateLimitConfig{RequestsPerSecond: 10, Burst: 20},
		}
		AdaptConfigForServerless(cfg)

		if cfg.Log.Format != "text" {
			t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "text")
		}
		if GetDeploymentMode() != "server" {
			t.Errorf("GetDeploymentMode() = %q, want %q", GetDeploymentMode(), "server")
		}
	})

	t.Run("lambda mode forces json and disables rate limiting", func(t *testing.T) {
		t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "users")

		cfg := &Config{
			Log:       LogConfig{Format: "text"},
			RateLimit: RateLimitConfig{RequestsPerSecond: 10, Burst: 20},
		}
		AdaptConfigForServerless(cfg)

		if cfg.Log.Format != "json" {
			t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
		}
		if cfg.RateLimit.RequestsPerSecond != 0 || cfg.RateLimit.Burst != 0 {
			t.Errorf("RateLimit = %+v, want disabled", cfg.RateLimit)
		}
		if GetDeploymentMode() != "serverless" {
			t.Errorf("GetDeploymentMode() = %q, want %q", GetDeploymentMode(), "serverless")
		}
		if sc := GetServerlessConfig(); sc.FunctionName != "users" {
			t.Errorf("FunctionName = %q, want %q", sc.FunctionName, "users")
		}
	})
}
