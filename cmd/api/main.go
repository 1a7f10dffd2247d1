package main

import (
	"context"
	"log"
	"time"

	"screener-backend/internal/filters"
	"screener-backend/internal/llm"
	"screener-backend/internal/llm/gemini"
	"screener-backend/internal/llm/openai"
	"screener-backend/internal/screening"
	"screener-backend/internal/shared/config"
	"screener-backend/internal/shared/server"
	"screener-backend/internal/shared/server/middleware"
	"screener-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	client := buildLLMClient(cfg)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute, nil)
	r := server.NewRouter(server.RouterDeps{
		Config:    cfg,
		Limiter:   limiter,
		Screening: screening.NewHandler(&screening.Service{LLM: client}),
		Filters:   filters.NewHandler(&filters.Service{LLM: client}),
	})

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s (provider=%s model=%s)", addr, cfg.LLMProvider, cfg.LLMModel)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// buildLLMClient wires the configured provider. A missing credential is a
// startup warning, not a fatal error: requests fail at the adapter instead.
func buildLLMClient(cfg config.Config) llm.Client {
	if cfg.Credential() == "" {
		telemetry.Warn("llm.credential_missing", map[string]any{
			"provider": cfg.LLMProvider,
		})
		return llm.Unconfigured{}
	}

	switch cfg.LLMProvider {
	case "gemini":
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			telemetry.Warn("llm.client_init_failed", map[string]any{
				"provider": "gemini",
				"error":    err.Error(),
			})
			return llm.Unconfigured{}
		}
		return client
	default:
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, time.Duration(cfg.LLMTimeoutSeconds)*time.Second)
		if err != nil {
			telemetry.Warn("llm.client_init_failed", map[string]any{
				"provider": "openai",
				"error":    err.Error(),
			})
			return llm.Unconfigured{}
		}
		return client
	}
}
