package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want any
	}{
		{
			name: "429 maps to rate limit",
			err:  &googleapi.Error{Code: 429, Message: "slow down"},
			want: &RateLimitError{},
		},
		{
			name: "402 maps to quota",
			err:  &googleapi.Error{Code: 402, Message: "no credits"},
			want: &QuotaError{},
		},
		{
			name: "500 maps to transport",
			err:  &googleapi.Error{Code: 500, Message: "server error"},
			want: &TransportError{},
		},
		{
			name: "wrapped api error still classified",
			err:  fmt.Errorf("call failed: %w", &googleapi.Error{Code: 429}),
			want: &RateLimitError{},
		},
		{
			name: "plain error maps to transport",
			err:  errors.New("connection refused"),
			want: &TransportError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestClassifiedErrorsUnwrap(t *testing.T) {
	cause := &googleapi.Error{Code: 429}
	err := classifyError(cause)

	var apiErr *googleapi.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 429, apiErr.Code)
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "")
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.InDelta(t, 0.1, cfg.Temperature, 0.001)

	t.Setenv("GEMINI_MODEL", "gemini-exp")
	cfg = DefaultConfig()
	assert.Equal(t, "gemini-exp", cfg.Model)

	override := cfg.WithModel("other-model")
	assert.Equal(t, "other-model", override.Model)
	assert.Equal(t, "gemini-exp", cfg.Model, "WithModel must not mutate the receiver")
}
