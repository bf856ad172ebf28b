package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func productionConfig() *Config {
	return &Config{
		Environment:          EnvProduction,
		LogLevel:             "info",
		SessionAuthKey:       strings.Repeat("a", 32),
		SessionEncryptionKey: strings.Repeat("b", 32),
		CORSAllowedOrigins:   "https://domainogen.example",
		OracleLatencyMin:     300 * time.Millisecond,
		OracleLatencyMax:     1500 * time.Millisecond,
		AvailabilityTimeout:  2 * time.Second,
	}
}

func TestValidateForProduction(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"short auth key", func(c *Config) { c.SessionAuthKey = "short" }, "SESSION_AUTH_KEY"},
		{"short encryption key", func(c *Config) { c.SessionEncryptionKey = "short" }, "SESSION_ENCRYPTION_KEY"},
		{"non-AES encryption key", func(c *Config) { c.SessionEncryptionKey = strings.Repeat("b", 20) }, "SESSION_ENCRYPTION_KEY"},
		{"24-byte encryption key", func(c *Config) { c.SessionEncryptionKey = strings.Repeat("b", 24) }, ""},
		{"debug logging", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
		{"wildcard cors", func(c *Config) { c.CORSAllowedOrigins = "*" }, "CORS_ALLOWED_ORIGINS"},
		{"inverted latency", func(c *Config) { c.OracleLatencyMax = 100 * time.Millisecond }, "ORACLE_LATENCY_MAX"},
		{"timeout below latency", func(c *Config) { c.AvailabilityTimeout = time.Second }, "AVAILABILITY_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateForProduction_SkipsOtherEnvironments(t *testing.T) {
	cfg := &Config{Environment: EnvDevelopment, LogLevel: "debug", CORSAllowedOrigins: "*"}
	if err := ValidateForProduction(cfg); err != nil {
		t.Fatalf("development config must not be validated: %v", err)
	}
}

func TestMockOnly(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"AIza-test", false},
	}
	for _, tt := range tests {
		if got := (&Config{GeminiAPIKey: tt.key}).MockOnly(); got != tt.want {
			t.Errorf("MockOnly(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

// confDefault returns the default value declared in a Config field's conf tag.
func confDefault(t *testing.T, field string) string {
	t.Helper()
	f, ok := reflect.TypeOf(Config{}).FieldByName(field)
	if !ok {
		t.Fatalf("no field %s", field)
	}
	for _, part := range strings.Split(f.Tag.Get("conf"), ",") {
		if v, ok := strings.CutPrefix(part, "default:"); ok {
			return v
		}
	}
	t.Fatalf("field %s has no default", field)
	return ""
}

func TestSessionKeyDefaults(t *testing.T) {
	if n := len(confDefault(t, "SessionEncryptionKey")); !ValidEncryptionKeyLen(n) {
		t.Fatalf("default SESSION_ENCRYPTION_KEY is %d bytes, want 16, 24 or 32", n)
	}
	if n := len(confDefault(t, "SessionAuthKey")); n < 32 {
		t.Fatalf("default SESSION_AUTH_KEY is %d bytes, want at least 32", n)
	}
}

func TestValidEncryptionKeyLen(t *testing.T) {
	for n := 0; n <= 64; n++ {
		want := n == 16 || n == 24 || n == 32
		if got := ValidEncryptionKeyLen(n); got != want {
			t.Errorf("ValidEncryptionKeyLen(%d) = %v, want %v", n, got, want)
		}
	}
}
