package config

import "time"

// LLMConfig holds settings for the gRPC LLM completion service.
type LLMConfig struct {
	// GRPCAddr is the LLM service endpoint (plaintext gRPC).
	GRPCAddr string `yaml:"grpc_addr"`

	// Model is the model identifier forwarded with every request.
	Model string `yaml:"model"`

	// Temperature, when non-nil, overrides the service default.
	Temperature *float32 `yaml:"temperature,omitempty"`

	// MaxTokens, when non-nil, caps the completion length.
	MaxTokens *int32 `yaml:"max_tokens,omitempty"`

	// RequestTimeout bounds a single completion call.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		GRPCAddr:       "localhost:50051",
		Model:          "gemini-2.5-flash",
		RequestTimeout: 60 * time.Second,
	}
}
