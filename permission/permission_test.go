package permission_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	guard "github.com/armatrix/agent-guard-go"
	"github.com/armatrix/agent-guard-go/permission"
)

func newEngine(policies []guard.Policy, defaultEffect guard.Effect) *guard.PolicyEngine {
	return guard.NewPolicyEngine(guard.WithPolicySet(&guard.PolicySet{
		Metadata: guard.Metadata{Name: "test"},
		Defaults: guard.Defaults{Effect: defaultEffect, Channel: guard.ChannelChat},
		Policies: policies,
	}))
}

func TestFromEngineDecisionMapping(t *testing.T) {
	engine := newEngine([]guard.Policy{
		{ID: "allow-read", Effect: guard.EffectAllow, Condition: guard.Condition{Tools: []string{"Read"}}},
		{ID: "deny-bash", Effect: guard.EffectDeny, Condition: guard.Condition{Tools: []string{"Bash"}}},
		{ID: "hitl-deploy", Effect: guard.EffectHITL, Condition: guard.Condition{Tools: []string{"Deploy"}}},
		{ID: "custom", Effect: guard.Effect("quarantine"), Condition: guard.Condition{Tools: []string{"Odd"}}},
	}, guard.EffectAsk)

	check := permission.FromEngine(engine, permission.Binding{Mode: "interactive"})
	ctx := context.Background()

	tests := []struct {
		tool string
		want permission.Decision
	}{
		{"Read", permission.Allow},
		{"Bash", permission.Deny},
		{"Deploy", permission.Ask},  // hitl needs out-of-band approval
		{"Odd", permission.Ask},     // custom effects are conservative
		{"Unknown", permission.Ask}, // default effect
	}
	for _, tt := range tests {
		d, err := check(ctx, tt.tool, nil)
		require.NoError(t, err)
		assert.Equal(t, tt.want, d, "tool %s", tt.tool)
	}
}

func TestFromEngineBindsFixedFields(t *testing.T) {
	engine := newEngine([]guard.Policy{
		{ID: "bg-deny", Effect: guard.EffectDeny, Condition: guard.Condition{Modes: []string{"background"}}},
	}, guard.EffectAllow)

	bg := permission.FromEngine(engine, permission.Binding{Mode: "background", User: "alice"})
	d, err := bg(context.Background(), "Read", nil)
	require.NoError(t, err)
	assert.Equal(t, permission.Deny, d)

	fg := permission.FromEngine(engine, permission.Binding{Mode: "interactive", User: "alice"})
	d, err = fg(context.Background(), "Read", nil)
	require.NoError(t, err)
	assert.Equal(t, permission.Allow, d)
}

func TestFromEngineDerivesMcpServer(t *testing.T) {
	engine := newEngine([]guard.Policy{
		{ID: "deny-azure", Effect: guard.EffectDeny, Condition: guard.Condition{McpServers: []string{"azure-*"}}},
	}, guard.EffectAllow)

	check := permission.FromEngine(engine, permission.Binding{})

	d, err := check(context.Background(), "mcp__azure-deploy__create_vm", nil)
	require.NoError(t, err)
	assert.Equal(t, permission.Deny, d)

	d, err = check(context.Background(), "mcp__github__create_issue", nil)
	require.NoError(t, err)
	assert.Equal(t, permission.Allow, d)

	// Plain tools carry no server, so the server-scoped policy cannot fire.
	d, err = check(context.Background(), "Bash", nil)
	require.NoError(t, err)
	assert.Equal(t, permission.Allow, d)
}

func TestFromEngineRiskClassifier(t *testing.T) {
	engine := newEngine([]guard.Policy{
		{ID: "deny-high", Effect: guard.EffectDeny, Condition: guard.Condition{Risk: []string{"high"}}},
	}, guard.EffectAllow)

	check := permission.FromEngine(engine, permission.Binding{
		Risk: func(toolName string, input json.RawMessage) string {
			if toolName == "Bash" {
				return "high"
			}
			return "low"
		},
	})

	d, err := check(context.Background(), "Bash", json.RawMessage(`{"command":"rm -rf /"}`))
	require.NoError(t, err)
	assert.Equal(t, permission.Deny, d)

	d, err = check(context.Background(), "Read", nil)
	require.NoError(t, err)
	assert.Equal(t, permission.Allow, d)
}

func TestMcpServerFromTool(t *testing.T) {
	tests := []struct {
		name string
		tool string
		want string
	}{
		{"mcp tool", "mcp__context7__query", "context7"},
		{"mcp tool with dashes", "mcp__azure-deploy__create_vm", "azure-deploy"},
		{"no tool segment", "mcp__context7", ""},
		{"plain tool", "Bash", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, permission.McpServerFromTool(tt.tool))
		})
	}
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allow", permission.Allow.String())
	assert.Equal(t, "deny", permission.Deny.String())
	assert.Equal(t, "ask", permission.Ask.String())
}
