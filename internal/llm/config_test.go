package llm

import "testing"

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ASCENT_LLM_PROVIDER", "openai")
	t.Setenv("ASCENT_OPENAI_API_KEY", "sk-test")
	t.Setenv("ASCENT_OPENAI_MODEL", "gpt-4o")
	t.Setenv("ASCENT_OPENAI_BASE_URL", "https://gateway.example.com/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.BaseURL != "https://gateway.example.com/v1" {
		t.Errorf("base url = %q", cfg.OpenAI.BaseURL)
	}
	// Untouched defaults survive.
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("anthropic model = %q, want default", cfg.Anthropic.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("retry attempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearKeys := func(t *testing.T) {
		t.Helper()
		for _, k := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
			t.Setenv(k, "")
		}
	}

	t.Run("anthropic wins", func(t *testing.T) {
		clearKeys(t)
		t.Setenv("ANTHROPIC_API_KEY", "a-key")
		t.Setenv("OPENAI_API_KEY", "o-key")

		cfg, ok := DiscoverConfig()
		if !ok {
			t.Fatal("expected discovery to succeed")
		}
		if cfg.Provider != "anthropic" {
			t.Errorf("provider = %q, want anthropic", cfg.Provider)
		}
	})

	t.Run("openrouter maps to openai with base url", func(t *testing.T) {
		clearKeys(t)
		t.Setenv("OPENROUTER_API_KEY", "or-key")

		cfg, ok := DiscoverConfig()
		if !ok {
			t.Fatal("expected discovery to succeed")
		}
		if cfg.Provider != "openai" {
			t.Errorf("provider = %q, want openai", cfg.Provider)
		}
		if cfg.OpenAI.BaseURL == "" {
			t.Error("expected openrouter base url set")
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		clearKeys(t)
		if _, ok := DiscoverConfig(); ok {
			t.Error("expected discovery to fail with no keys")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"anthropic with key", func(c *Config) { c.Anthropic.APIKey = "k" }, false},
		{"anthropic without key", func(c *Config) {}, true},
		{"openai without key", func(c *Config) { c.Provider = "openai" }, true},
		{"gemini without key", func(c *Config) { c.Provider = "gemini" }, true},
		{"mock needs nothing", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "vax" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
