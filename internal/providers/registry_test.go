package providers

import (
	"slices"
	"testing"
)

func testRegistryConfig() RegistryConfig {
	return RegistryConfig{
		LLMProviders: map[string]LLMProviderConfig{
			"openrouter": {
				Type:    "openrouter",
				Model:   "anthropic/claude-3.5-sonnet",
				APIKey:  "test-key",
				Enabled: true,
			},
			"openai": {
				Type:    "openai",
				Model:   "gpt-4o-mini",
				APIKey:  "test-key",
				Enabled: true,
			},
			"disabled": {
				Type:    "openrouter",
				APIKey:  "test-key",
				Enabled: false,
			},
			"keyless": {
				Type:    "openrouter",
				Enabled: true,
			},
		},
	}
}

func TestNewRegistryFromConfig(t *testing.T) {
	r := NewRegistryFromConfig(testRegistryConfig())

	names := r.ListLLM()
	slices.Sort(names)
	want := []string{"openai", "openrouter"}
	if !slices.Equal(names, want) {
		t.Errorf("registered %v, want %v", names, want)
	}

	if _, err := r.GetLLM("disabled"); err == nil {
		t.Error("disabled provider must not be registered")
	}
	if _, err := r.GetLLM("keyless"); err == nil {
		t.Error("provider without API key must not be registered")
	}

	client, err := r.GetLLM("openrouter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Name() != OpenRouterName {
		t.Errorf("client name = %q, want %q", client.Name(), OpenRouterName)
	}
}

func TestRegistryReload(t *testing.T) {
	cfg := testRegistryConfig()
	r := NewRegistryFromConfig(cfg)

	before, _ := r.GetLLM("openrouter")

	t.Run("unchanged provider keeps its client", func(t *testing.T) {
		r.Reload(cfg)
		after, _ := r.GetLLM("openrouter")
		if before != after {
			t.Error("unchanged provider should not be recreated")
		}
	})

	t.Run("changed key recreates the client", func(t *testing.T) {
		changed := testRegistryConfig()
		p := changed.LLMProviders["openrouter"]
		p.APIKey = "rotated-key"
		changed.LLMProviders["openrouter"] = p

		r.Reload(changed)
		after, _ := r.GetLLM("openrouter")
		if before == after {
			t.Error("changed provider should be recreated")
		}
	})

	t.Run("removed provider is unregistered", func(t *testing.T) {
		changed := testRegistryConfig()
		delete(changed.LLMProviders, "openai")

		r.Reload(changed)
		if r.HasLLM("openai") {
			t.Error("removed provider should be unregistered")
		}
		if !r.HasLLM("openrouter") {
			t.Error("remaining provider should survive reload")
		}
	})
}

func TestRegistryManualRegistration(t *testing.T) {
	r := NewRegistry()
	mock := NewMockClient()

	r.RegisterLLM(MockClientName, mock)
	if !r.HasLLM(MockClientName) {
		t.Fatal("expected mock to be registered")
	}

	r.UnregisterLLM(MockClientName)
	if r.HasLLM(MockClientName) {
		t.Error("expected mock to be unregistered")
	}
}
