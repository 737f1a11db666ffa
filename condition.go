package guard

// Condition defines matching criteria for a policy. All specified
// fields must match (AND); within a field, any listed pattern may
// match (OR). A nil field means "don't care".
type Condition struct {
	Modes      []string `yaml:"modes,omitempty"       json:"modes,omitempty"`
	Models     []string `yaml:"models,omitempty"      json:"models,omitempty"`
	Channels   []string `yaml:"channels,omitempty"    json:"channels,omitempty"`
	Tools      []string `yaml:"tools,omitempty"       json:"tools,omitempty"`
	McpServers []string `yaml:"mcp_servers,omitempty" json:"mcp_servers,omitempty"`
	Risk       []string `yaml:"risk,omitempty"        json:"risk,omitempty"`
	Users      []string `yaml:"users,omitempty"       json:"users,omitempty"`
	Sessions   []string `yaml:"sessions,omitempty"    json:"sessions,omitempty"`
}

// Matches reports whether the condition accepts the context. A
// condition with every field nil matches any context (catch-all).
func (c Condition) Matches(ctx EvalContext) bool {
	if !listMatches(c.Modes, ctx.Mode) {
		return false
	}
	if !listMatches(c.Models, ctx.Model) {
		return false
	}
	if !listMatches(c.Channels, ctx.Channel) {
		return false
	}
	if !listMatches(c.Tools, ctx.Tool) {
		return false
	}
	if !listMatches(c.Risk, ctx.Risk) {
		return false
	}
	if !listMatches(c.Users, ctx.User) {
		return false
	}
	if !listMatches(c.Sessions, ctx.Session) {
		return false
	}

	// mcp_servers is stricter than the other fields: a policy scoped to
	// specific servers must not fire on invocations with no server at all.
	if c.McpServers != nil {
		if ctx.McpServer == "" {
			return false
		}
		if !listMatches(c.McpServers, ctx.McpServer) {
			return false
		}
	}

	return true
}
