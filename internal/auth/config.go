package auth

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

const defaultRedirectURL = "http://localhost:8080"

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret   string                    `yaml:"jwt_secret" json:"jwt_secret" mapstructure:"jwt_secret"`
	RedirectURL string                    `yaml:"redirect_url" json:"redirect_url" mapstructure:"redirect_url"`
	Providers   map[string]ProviderConfig `yaml:"providers" json:"providers" mapstructure:"providers"`
}

// ProviderConfig holds configuration for a specific provider
type ProviderConfig struct {
	ClientID          string `yaml:"client_id" json:"client_id" mapstructure:"client_id"`
	ClientSecret      string `yaml:"client_secret" json:"client_secret" mapstructure:"client_secret"`
	EnterpriseBaseURL string `yaml:"enterprise_base_url,omitempty" json:"enterprise_base_url,omitempty" mapstructure:"enterprise_base_url"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if redirectURL := os.Getenv("AUTH_REDIRECT_URL"); redirectURL != "" {
		config.RedirectURL = redirectURL
	}
	config.JWTSecret = expandPlaceholder(config.JWTSecret)
	if config.RedirectURL = expandPlaceholder(config.RedirectURL); config.RedirectURL == "" {
		config.RedirectURL = defaultRedirectURL
	}

	config = overrideFromEnvironment(config)

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// GetProvider returns the configuration for a specific provider
func (c *AuthConfig) GetProvider(provider string) (*ProviderConfig, error) {
	providerConfig, exists := c.Providers[provider]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found", provider)
	}

	return &providerConfig, nil
}

// ProviderNames lists the configured providers in a stable order
func (c *AuthConfig) ProviderNames() []string {
	names := make([]string, 0, len(c.Providers))
	for name := range c.Providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.RedirectURL == "" {
		return fmt.Errorf("redirect URL is required")
	}

	if len(c.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}

	for providerName, provider := range c.Providers {
		if provider.ClientID == "" {
			return fmt.Errorf("client_id is required for provider '%s'", providerName)
		}
		if provider.ClientSecret == "" {
			return fmt.Errorf("client_secret is required for provider '%s'", providerName)
		}
	}

	return nil
}

func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("redirect_url", defaultRedirectURL)
	// No default JWT secret, it must come from the file or JWT_SECRET
	v.SetDefault("providers", map[string]interface{}{
		"github": map[string]interface{}{
			"client_id":     "",
			"client_secret": "",
		},
	})
}

// overrideFromEnvironment applies <PROVIDER>_CLIENT_ID / <PROVIDER>_CLIENT_SECRET
// and expands ${VAR} placeholders left in the file
func overrideFromEnvironment(config AuthConfig) AuthConfig {
	for name, provider := range config.Providers {
		prefix := strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
		if id := os.Getenv(prefix + "_CLIENT_ID"); id != "" {
			provider.ClientID = id
		}
		if secret := os.Getenv(prefix + "_CLIENT_SECRET"); secret != "" {
			provider.ClientSecret = secret
		}
		provider.ClientID = expandPlaceholder(provider.ClientID)
		provider.ClientSecret = expandPlaceholder(provider.ClientSecret)
		config.Providers[name] = provider
	}
	return config
}

// expandPlaceholder resolves a whole-value ${VAR}. An unset variable yields "".
func expandPlaceholder(value string) string {
	if len(value) > 3 && strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		return os.Getenv(value[2 : len(value)-1])
	}
	return value
}
