package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 0.0, cfg.LLM.Temperature)
	assert.Equal(t, 1000, cfg.LLM.MaxTokens)
	assert.Equal(t, DefaultCategories, cfg.Categories)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.NotEmpty(t, cfg.Database.Path)
	assert.Equal(t, DefaultPrompts(), cfg.Prompts)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	v.Set("llm.provider", "openai")
	v.Set("llm.rate_limit", 30)
	v.Set("llm.cache_ttl", "5m")
	v.Set("categories", []string{"food", "travel"})
	v.Set("prompts.clarify_amount", "How much was '{text}'?")

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 30, cfg.LLM.RateLimit)
	assert.Equal(t, 5*time.Minute, cfg.LLM.CacheTTL)
	assert.Equal(t, []string{"food", "travel"}, cfg.Categories)
	assert.Equal(t, "How much was '{text}'?", cfg.Prompts.ClarifyAmount)
	// Untouched prompts keep their defaults.
	assert.Equal(t, DefaultPrompts().ParseExpense, cfg.Prompts.ParseExpense)
}

func TestFromViperRejectsBadTemperature(t *testing.T) {
	v := viper.New()
	v.Set("llm.temperature", 2.5)

	_, err := FromViper(v)
	require.Error(t, err)
}

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		vars map[string]string
		name string
		tmpl string
		want string
	}{
		{
			name: "all placeholders",
			tmpl: "'{category}' for '{text}' ({amount}): {categories}",
			vars: map[string]string{
				"category":   "snacks",
				"text":       "chips 5 bucks",
				"amount":     "5",
				"categories": "groceries, dining",
			},
			want: "'snacks' for 'chips 5 bucks' (5): groceries, dining",
		},
		{
			name: "unrecognized placeholder passes through",
			tmpl: "hello {text} {nope}",
			vars: map[string]string{"text": "world"},
			want: "hello world {nope}",
		},
		{
			name: "no vars",
			tmpl: "static prompt",
			vars: nil,
			want: "static prompt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderTemplate(tt.tmpl, tt.vars))
		})
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("BUDDY_TEST_DIR", "/var/data")

	assert.Equal(t, "/var/data/buddy.db", ExpandPath("$BUDDY_TEST_DIR/buddy.db"))
	assert.Equal(t, "", ExpandPath(""))

	expanded := ExpandPath("~/buddy.db")
	assert.NotContains(t, expanded, "~")
}
