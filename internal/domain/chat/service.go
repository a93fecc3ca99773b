package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"github.com/Sujal12345-pheoniix/AirGaurd/internal/infra/llm/chatgpt"
	apperrors "github.com/Sujal12345-pheoniix/AirGaurd/pkg/errors"
	"github.com/Sujal12345-pheoniix/AirGaurd/pkg/metrics"
)

// Service answers free-text air-quality questions. A chat turn never fails:
// every path degrades to deterministic text instead of returning an error.
type Service interface {
	Respond(ctx context.Context, req Request) Response
}

type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

type service struct {
	cfg     Config
	client  ChatClient
	logger  *slog.Logger
	encoder *tiktoken.Tiktoken
}

// NewService wires up the chat responder. A nil client selects fallback mode
// for the process lifetime; that is the expected state when no LLM credential
// is configured, not an error.
func NewService(cfg Config, client ChatClient, logger *slog.Logger) Service {
	log := logger.With("component", "chat.service")
	svc := &service{cfg: cfg, client: client, logger: log}
	if client == nil {
		log.Info("llm backend not configured, responder running in fallback mode")
		return svc
	}
	svc.encoder = loadEncoder(cfg.Model, log)
	return svc
}

func (s *service) Respond(ctx context.Context, req Request) Response {
	message := strings.TrimSpace(req.Message)

	if s.client == nil {
		return Response{Response: fallbackAnswer(message, false)}
	}

	completion, err := s.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []chatgpt.Message{
			{Role: "system", Content: s.cfg.Prompt},
			{Role: "user", Content: message},
		},
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		if apperrors.IsCode(err, "llm_error") {
			s.logger.Warn("llm backend failed, downgrading to fallback", "error", err)
		} else {
			s.logger.Error("llm request failed, downgrading to fallback", "error", err)
		}
		return Response{Response: fallbackAnswer(message, true)}
	}
	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		s.logger.Error("llm returned no usable choices, downgrading to fallback")
		return Response{Response: fallbackAnswer(message, true)}
	}

	answer := completion.Choices[0].Message.Content
	s.recordUsage(message, answer)
	return Response{Response: answer}
}

// recordUsage logs approximate token counts for the turn. Accounting is
// observability only and must never affect the answer.
func (s *service) recordUsage(message, answer string) {
	if s.encoder == nil {
		return
	}
	usage := metrics.TokenUsage{
		PromptTokens:     len(s.encoder.Encode(s.cfg.Prompt+message, nil, nil)),
		CompletionTokens: len(s.encoder.Encode(answer, nil, nil)),
	}
	usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens
	if usage.IsZero() {
		return
	}
	s.logger.Info("chat turn served", "prompt_tokens", usage.PromptTokens, "completion_tokens", usage.CompletionTokens, "total_tokens", usage.TotalTokens)
}

func loadEncoder(model string, logger *slog.Logger) *tiktoken.Tiktoken {
	enc, err := tiktoken.EncodingForModel(model)
	if err == nil {
		return enc
	}
	enc, err = tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		logger.Debug("tokenizer unavailable, skipping usage accounting", "error", err)
		return nil
	}
	return enc
}
