package main

import (
	"log/slog"
	"strings"

	"github.com/Sujal12345-pheoniix/AirGaurd/internal/domain/chat"
	"github.com/Sujal12345-pheoniix/AirGaurd/internal/infra/airquality/openmeteo"
	"github.com/Sujal12345-pheoniix/AirGaurd/internal/infra/config"
	"github.com/Sujal12345-pheoniix/AirGaurd/internal/infra/llm/chatgpt"
)

func provideChatConfig(cfg *config.Config) chat.Config {
	return chat.Config{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Prompt:      cfg.Chat.Prompt,
	}
}

// provideChatClient returns nil when no LLM credential is configured. That is
// the documented way to run the chat responder in deterministic fallback mode.
func provideChatClient(cfg *config.Config, logger *slog.Logger) chat.ChatClient {
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		return nil
	}
	client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
	if err != nil {
		logger.Error("failed to build llm client, falling back to offline responder", "error", err)
		return nil
	}
	return client
}

func provideAirQualityClient(cfg *config.Config) *openmeteo.Client {
	return openmeteo.NewClient(cfg.AirQuality.BaseURL, cfg.AirQuality.Timeout)
}
