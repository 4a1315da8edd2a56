package models

// TeamDefinition is the YAML document shape accepted by POST /api/teams/upload.
type TeamDefinition struct {
	ID          string         `yaml:"id" json:"id"`
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Agents      []TeamAgent    `yaml:"agents" json:"agents"`
	Metadata    map[string]any `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// TeamAgent is one member of a team definition. Name must match a registered
// agent; capabilities are free-form hints surfaced to the planner.
type TeamAgent struct {
	Name         string   `yaml:"name" json:"name"`
	Capabilities []string `yaml:"capabilities,omitempty" json:"capabilities,omitempty"`
}
