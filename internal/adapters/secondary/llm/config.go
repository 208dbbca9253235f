package llm

import "time"

const (
	ProviderHTTP = "http"
	ProviderEino = "eino"
)

type Config struct {
	Provider    string  `envconfig:"PROVIDER" default:"http"` // http | eino
	BaseURL     string  `envconfig:"BASE_URL" default:"https://api.groq.com/openai/v1"`
	APIKey      string  `envconfig:"API_KEY"`
	Model       string  `envconfig:"MODEL" default:"llama-3.3-70b-versatile"`
	Temperature float32 `envconfig:"TEMPERATURE" default:"0.8"`
	MaxTokens   int     `envconfig:"MAX_TOKENS" default:"2048"`
	RPM         int     `envconfig:"RPM" default:"60"`
	Burst       int     `envconfig:"BURST" default:"1"`
	Timeout     int     `envconfig:"TIMEOUT" default:"60"` // в секундах
	SkipSSL     string  `envconfig:"SKIP_SSL"`             // Railway требует строки вместо bool
}

func (c *Config) ShouldSkipSSL() bool {
	return c.SkipSSL == "true" || c.SkipSSL == "1" || c.SkipSSL == "True"
}

func (c *Config) RequestTimeout() time.Duration {
	if c.Timeout <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}
