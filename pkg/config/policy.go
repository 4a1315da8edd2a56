package config

// Policy captures the process-wide operating mode. It is read once at startup
// and injected; components never consult environment variables at call sites.
type Policy struct {
	// UseMockMode replaces every external tool dependency (MCP servers) with
	// deterministic local mocks. The full pipeline runs with no credentials.
	UseMockMode bool `yaml:"use_mock_mode"`

	// UseMockLLM replaces the gRPC LLM service with a deterministic local
	// planner/completion mock.
	UseMockLLM bool `yaml:"use_mock_llm"`

	// HITLEnabled inserts human approval gates: plan approval before
	// execution and result approval before completion. When false, workflows
	// run start-to-finish unattended.
	HITLEnabled bool `yaml:"hitl_enabled"`
}

// DefaultPolicy returns the built-in policy: fully mocked with approval gates,
// so a fresh checkout runs end-to-end with no external services.
func DefaultPolicy() *Policy {
	return &Policy{
		UseMockMode: true,
		UseMockLLM:  true,
		HITLEnabled: true,
	}
}
