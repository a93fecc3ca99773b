package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenUsageIsZero(t *testing.T) {
	require.True(t, TokenUsage{}.IsZero())
	require.False(t, TokenUsage{PromptTokens: 12}.IsZero())
	require.False(t, TokenUsage{CompletionTokens: 3}.IsZero())
	require.False(t, TokenUsage{TotalTokens: 15}.IsZero())
}
