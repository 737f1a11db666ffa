// Package permission adapts guard engine verdicts to the permission
// callback shape agent runtimes consume.
//
// Agent SDKs typically ask a single function whether a tool may run:
//
//	func(ctx context.Context, toolName string, input json.RawMessage) (Decision, error)
//
// [FromEngine] builds such a function on top of a [guard.PolicyEngine],
// so a declarative policy set can drive the runtime's permission
// prompt without custom gating code.
package permission

import (
	"context"
	"encoding/json"
	"strings"

	guard "github.com/armatrix/agent-guard-go"
)

// Decision represents the outcome of a permission check.
type Decision int

const (
	Allow Decision = iota // Tool execution is permitted
	Deny                  // Tool execution is blocked
	Ask                   // User should be prompted for confirmation
)

// String returns the lowercase tag for the decision.
func (d Decision) String() string {
	switch d {
	case Deny:
		return "deny"
	case Ask:
		return "ask"
	default:
		return "allow"
	}
}

// Func is the permission callback signature consumed by agent runtimes.
type Func func(ctx context.Context, toolName string, input json.RawMessage) (Decision, error)

// Binding fixes the invocation attributes that do not vary per tool
// call. Tool and MCP server are derived from the callback's tool name.
type Binding struct {
	Mode    string
	Model   string
	Channel string
	User    string
	Session string

	// Risk, when set, classifies each call into a risk tier for the
	// engine's risk field. Nil leaves the field unset.
	Risk func(toolName string, input json.RawMessage) string
}

// FromEngine returns a Func that consults the engine for every tool
// call. Verdict effects map onto decisions as allow, deny, and
// everything else Ask: custom effects and the human/agent-in-the-loop
// family all require an out-of-band approval from the runtime's point
// of view.
func FromEngine(engine *guard.PolicyEngine, b Binding) Func {
	return func(_ context.Context, toolName string, input json.RawMessage) (Decision, error) {
		ectx := guard.EvalContext{
			Mode:      b.Mode,
			Model:     b.Model,
			Channel:   b.Channel,
			User:      b.User,
			Session:   b.Session,
			Tool:      toolName,
			McpServer: McpServerFromTool(toolName),
		}
		if b.Risk != nil {
			ectx.Risk = b.Risk(toolName, input)
		}

		switch engine.Evaluate(ectx).Effect {
		case guard.EffectAllow:
			return Allow, nil
		case guard.EffectDeny:
			return Deny, nil
		default:
			return Ask, nil
		}
	}
}

// McpServerFromTool extracts the server name from MCP-style tool names
// of the form "mcp__<server>__<tool>". It returns "" for tools not
// affiliated with any server.
func McpServerFromTool(toolName string) string {
	rest, ok := strings.CutPrefix(toolName, "mcp__")
	if !ok {
		return ""
	}
	server, _, ok := strings.Cut(rest, "__")
	if !ok {
		return ""
	}
	return server
}
