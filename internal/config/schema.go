package config

// Config holds outliner configuration.
// Stored at: {home}/config.yaml
type Config struct {
	LLMProviders map[string]LLMProviderCfg `mapstructure:"llm_providers" yaml:"llm_providers"`
	Models       map[string]ModelCfg       `mapstructure:"models" yaml:"models"`
	Defaults     DefaultsCfg               `mapstructure:"defaults" yaml:"defaults"`
}

// LLMProviderCfg configures an LLM provider.
type LLMProviderCfg struct {
	Type    string `mapstructure:"type" yaml:"type"`         // "openrouter", "openai"
	Model   string `mapstructure:"model" yaml:"model"`       // Default model name
	APIKey  string `mapstructure:"api_key" yaml:"api_key"`   // API key (supports ${ENV_VAR} syntax)
	BaseURL string `mapstructure:"base_url" yaml:"base_url"` // Optional custom endpoint
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
}

// ModelCfg is the per-model capability table. Capabilities are
// declared here, never inferred from the model name.
type ModelCfg struct {
	SupportsImages bool `mapstructure:"supports_images" yaml:"supports_images"`
}

// DefaultsCfg specifies default selections for extraction jobs.
type DefaultsCfg struct {
	LLMProvider string `mapstructure:"llm_provider" yaml:"llm_provider"` // Default LLM provider
	DPI         int    `mapstructure:"dpi" yaml:"dpi"`                   // Render resolution for image-assisted extraction
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LLMProviders: map[string]LLMProviderCfg{
			"openrouter": {
				Type:    "openrouter",
				Model:   "anthropic/claude-sonnet-4",
				APIKey:  "${OPENROUTER_API_KEY}",
				Enabled: true,
			},
			"openai": {
				Type:    "openai",
				Model:   "gpt-4o-mini",
				APIKey:  "${OPENAI_API_KEY}",
				Enabled: false,
			},
		},
		Models: map[string]ModelCfg{
			"anthropic/claude-sonnet-4":   {SupportsImages: true},
			"anthropic/claude-3.5-sonnet": {SupportsImages: true},
			"gpt-4o":                      {SupportsImages: true},
			"gpt-4o-mini":                 {SupportsImages: true},
		},
		Defaults: DefaultsCfg{
			LLMProvider: "openrouter",
			DPI:         300,
		},
	}
}

// GetLLMProvider returns an LLM provider config by name.
func (c *Config) GetLLMProvider(name string) (LLMProviderCfg, bool) {
	cfg, ok := c.LLMProviders[name]
	return cfg, ok
}

// EnabledLLMProviders returns all enabled LLM providers.
func (c *Config) EnabledLLMProviders() map[string]LLMProviderCfg {
	result := make(map[string]LLMProviderCfg)
	for name, cfg := range c.LLMProviders {
		if cfg.Enabled {
			result[name] = cfg
		}
	}
	return result
}

// SupportsImages reports whether the capability table flags the model
// as multimodal. Unknown models default to text-only.
func (c *Config) SupportsImages(model string) bool {
	m, ok := c.Models[model]
	return ok && m.SupportsImages
}
