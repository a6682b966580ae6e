package core

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

const (
	// SkillName name the agent registers the skill under
	SkillName = "solana_swap"

	// RequestSchema json schema of the swap request argument
	RequestSchema = `{
  "type": "object",
  "properties": {
    "from_token": {
      "type": "string",
      "description": "Symbol or mint address of the token to sell"
    },
    "to_token": {
      "type": "string",
      "description": "Symbol or mint address of the token to buy"
    },
    "amount": {
      "type": ["number", "string"],
      "description": "Amount of from_token to swap"
    }
  },
  "required": ["from_token", "to_token", "amount"]
}`

	skillDescription = "Propose a token swap on Solana. The proposal is checked by the risk manager before anything is executed."

	skillInstructions = `Call this skill with a single JSON object holding from_token, to_token and amount.
The skill answers with a proposal: {"type": "proposal", "data": {...}}.
The proposal carries a fixed amount_usd of 100.0 and an expected_slippage of 0.5 until a quote service is wired in.
`
)

// SkillMetadata SKILL.md frontmatter
type SkillMetadata struct {
	Name        string                 `yaml:"name" json:"name"`
	Description string                 `yaml:"description" json:"description"`
	Parameters  map[string]interface{} `yaml:"parameters" json:"parameters"`
	Script      string                 `yaml:"script,omitempty" json:"script,omitempty"`
	Runtime     string                 `yaml:"runtime,omitempty" json:"runtime,omitempty"`
}

// NewSkillMetadata metadata for this skill, overridden by the non empty fields of cfg
func NewSkillMetadata(cfg Skill) (*SkillMetadata, error) {
	var params map[string]interface{}
	if err := json.Unmarshal([]byte(RequestSchema), &params); err != nil {
		return nil, err
	}

	m := &SkillMetadata{
		Name:        SkillName,
		Description: skillDescription,
		Parameters:  params,
		Script:      cfg.Script,
		Runtime:     cfg.Runtime,
	}

	if cfg.Name != "" {
		m.Name = cfg.Name
	}

	if cfg.Description != "" {
		m.Description = cfg.Description
	}

	return m, nil
}

// Markdown render SKILL.md, yaml frontmatter followed by the instructions
func (m *SkillMetadata) Markdown() ([]byte, error) {
	front, err := yaml.Marshal(m)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(front)
	buf.WriteString("---\n\n")
	buf.WriteString(skillInstructions)
	return buf.Bytes(), nil
}
