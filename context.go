package guard

// EvalContext is the runtime snapshot for a single tool invocation.
// Empty fields mean "unset". Callers build a fresh context per
// invocation; the engine never mutates one.
type EvalContext struct {
	Mode      string // execution mode, e.g. "interactive", "background"
	Model     string // model identifier driving the agent
	Channel   string // channel the invocation originated from
	Tool      string // tool being invoked
	McpServer string // MCP server the tool belongs to, if any
	Risk      string // caller-assessed risk tier, e.g. "low", "high"
	User      string
	Session   string
}

// WithMode returns a copy of the context with Mode replaced. Fallback
// re-evaluation derives a fresh context per hop instead of mutating a
// shared one.
func (c EvalContext) WithMode(mode string) EvalContext {
	c.Mode = mode
	return c
}
