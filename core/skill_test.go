package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSkillMarkdown(t *testing.T) {
	m, err := NewSkillMetadata(Skill{Runtime: "exec", Script: "solana-swap"})
	require.Nil(t, err)

	doc, err := m.Markdown()
	require.Nil(t, err)

	parts := strings.SplitN(string(doc), "---\n", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "", parts[0])
	assert.Contains(t, parts[2], "from_token, to_token and amount")

	var front SkillMetadata
	require.Nil(t, yaml.Unmarshal([]byte(parts[1]), &front))
	assert.Equal(t, SkillName, front.Name)
	assert.Equal(t, "exec", front.Runtime)
	assert.Equal(t, "solana-swap", front.Script)
	assert.Equal(t, "object", front.Parameters["type"])
	assert.ElementsMatch(t, []interface{}{"from_token", "to_token", "amount"}, front.Parameters["required"])
}

func TestSkillOverrides(t *testing.T) {
	m, err := NewSkillMetadata(Skill{Name: "swap", Description: "swap tokens"})
	require.Nil(t, err)
	assert.Equal(t, "swap", m.Name)
	assert.Equal(t, "swap tokens", m.Description)
	assert.Empty(t, m.Runtime)
}
