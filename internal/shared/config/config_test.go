package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")
	t.Setenv("LLM_TIMEOUT_SECONDS", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.LLMProvider != "openai" {
		t.Fatalf("LLMProvider = %q, want openai", cfg.LLMProvider)
	}
	if cfg.RateLimitPerMinute != 120 {
		t.Fatalf("RateLimitPerMinute = %d, want 120", cfg.RateLimitPerMinute)
	}
	if cfg.LLMTimeoutSeconds != 120 {
		t.Fatalf("LLMTimeoutSeconds = %d, want 120", cfg.LLMTimeoutSeconds)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "GEMINI")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")
	t.Setenv("EXTENSION_SHARED_SECRET", "  s3cret  ")

	cfg := Load()
	if cfg.LLMProvider != "gemini" {
		t.Fatalf("LLMProvider = %q, want gemini", cfg.LLMProvider)
	}
	if cfg.Credential() != "g-key" {
		t.Fatalf("Credential() = %q, want gemini key", cfg.Credential())
	}
	if cfg.RateLimitPerMinute != 30 {
		t.Fatalf("RateLimitPerMinute = %d, want 30", cfg.RateLimitPerMinute)
	}
	if cfg.SharedSecret != "s3cret" {
		t.Fatalf("SharedSecret = %q, want trimmed value", cfg.SharedSecret)
	}
}

func TestGetEnvIntRejectsGarbage(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	if cfg := Load(); cfg.RateLimitPerMinute != 120 {
		t.Fatalf("RateLimitPerMinute = %d, want default 120", cfg.RateLimitPerMinute)
	}
	t.Setenv("RATE_LIMIT_PER_MINUTE", "-5")
	if cfg := Load(); cfg.RateLimitPerMinute != 120 {
		t.Fatalf("RateLimitPerMinute = %d, want default 120", cfg.RateLimitPerMinute)
	}
}
