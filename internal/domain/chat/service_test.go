package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sujal12345-pheoniix/AirGaurd/internal/infra/llm/chatgpt"
	apperrors "github.com/Sujal12345-pheoniix/AirGaurd/pkg/errors"
)

func TestRespondAIMode(t *testing.T) {
	stub := &stubChatClient{content: "AQI below 100 is generally fine for a jog."}
	svc := NewService(Config{Model: "gpt-test", Prompt: "You are AirGuard."}, stub, testLogger())

	resp := svc.Respond(context.Background(), Request{Message: "Is it safe to go jogging?"})

	require.Equal(t, "AQI below 100 is generally fine for a jog.", resp.Response)
	require.Equal(t, 1, stub.calls)
	require.Len(t, stub.lastRequest.Messages, 2)
	require.Equal(t, "system", stub.lastRequest.Messages[0].Role)
	require.Equal(t, "You are AirGuard.", stub.lastRequest.Messages[0].Content)
	require.Equal(t, "Is it safe to go jogging?", stub.lastRequest.Messages[1].Content)
}

func TestRespondDowngradesOnBackendError(t *testing.T) {
	for _, backendErr := range []error{
		errors.New("quota exceeded"),
		apperrors.Wrap("llm_error", "chatgpt request failed: status=500", nil),
	} {
		stub := &stubChatClient{err: backendErr}
		svc := NewService(Config{Model: "gpt-test"}, stub, testLogger())

		resp := svc.Respond(context.Background(), Request{Message: "What precautions should I take?"})

		require.True(t, strings.HasPrefix(resp.Response, "[AI Unavailable] "))
		require.Contains(t, resp.Response, "N95 mask")
		require.NotEmpty(t, strings.TrimPrefix(resp.Response, "[AI Unavailable] "))
	}
}

func TestRespondDowngradesOnEmptyCompletion(t *testing.T) {
	stub := &stubChatClient{content: ""}
	svc := NewService(Config{Model: "gpt-test"}, stub, testLogger())

	resp := svc.Respond(context.Background(), Request{Message: "hello"})
	require.True(t, strings.HasPrefix(resp.Response, "[AI Unavailable] "))
}

func TestFallbackModeWhenUnconfigured(t *testing.T) {
	svc := NewService(Config{}, nil, testLogger())

	resp := svc.Respond(context.Background(), Request{Message: "Is it safe outside?"})
	require.Equal(t, "It depends on your local AQI. Generally, if AQI is below 100, it is safe.", resp.Response)
}

func TestFallbackRulePriority(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"Is it SAFE to be OUTSIDE today?", "It depends on your local AQI. Generally, if AQI is below 100, it is safe."},
		{"Any precautions before my commute?", "Wear a N95 mask if AQI > 200. Avoid outdoor exercise if AQI > 300."},
		{"What will the AQI be tomorrow?", "Tomorrow's AQI is predicted to act similarly to today's trend unless weather changes."},
		{"Best time for jogging?", "Early morning is usually best, unless smog is high. Check specific AQI."},
		{"when should i run", "Early morning is usually best, unless smog is high. Check specific AQI."},
		{"What's the capital of France?", fallbackDefault},
		// "safe"+"outside" outranks the jogging rule.
		{"Is it safe outside for a run?", "It depends on your local AQI. Generally, if AQI is below 100, it is safe."},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, fallbackAnswer(tc.message, false), "message %q", tc.message)
	}
}

func TestFallbackStateless(t *testing.T) {
	svc := NewService(Config{}, nil, testLogger())
	first := svc.Respond(context.Background(), Request{Message: "precautions?"})
	second := svc.Respond(context.Background(), Request{Message: "precautions?"})
	require.Equal(t, first, second)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubChatClient struct {
	content     string
	err         error
	calls       int
	lastRequest chatgpt.ChatCompletionRequest
}

func (s *stubChatClient) CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error) {
	s.calls++
	s.lastRequest = req
	if s.err != nil {
		return chatgpt.ChatCompletionResponse{}, s.err
	}
	var resp chatgpt.ChatCompletionResponse
	resp.Choices = []chatgpt.Choice{{Message: chatgpt.Message{Role: "assistant", Content: s.content}}}
	return resp, nil
}
