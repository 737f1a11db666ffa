package guard

// KindPolicySet is the document kind accepted by the loader.
const KindPolicySet = "PolicySet"

// Policy is a single guardrail policy. Lower priority evaluates first;
// equal priorities keep their declaration order.
type Policy struct {
	ID          string    `yaml:"id"                    json:"id"`
	Effect      Effect    `yaml:"effect"                json:"effect"`
	Name        string    `yaml:"name,omitempty"        json:"name,omitempty"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Enabled     *bool     `yaml:"enabled,omitempty"     json:"enabled,omitempty"`
	Priority    int       `yaml:"priority,omitempty"    json:"priority,omitempty"`
	Condition   Condition `yaml:"condition,omitempty"   json:"condition,omitempty"`
	Channel     Channel   `yaml:"channel,omitempty"     json:"channel,omitempty"`
}

// IsEnabled reports whether the policy is active. Policies are enabled
// unless explicitly disabled.
func (p *Policy) IsEnabled() bool {
	if p.Enabled == nil {
		return true
	}
	return *p.Enabled
}

// Metadata holds descriptive information about a PolicySet.
type Metadata struct {
	Name        string            `yaml:"name"                  json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string            `yaml:"version,omitempty"     json:"version,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"      json:"labels,omitempty"`
}

// Defaults defines the verdict returned when no policy matches after
// all fallbacks.
type Defaults struct {
	Effect  Effect  `yaml:"effect,omitempty"  json:"effect,omitempty"`
	Channel Channel `yaml:"channel,omitempty" json:"channel,omitempty"`
}

// PolicySet is a complete guardrail configuration document.
// ContextFallbacks maps a mode to the mode to retry under when no
// policy matches; the mapping may contain cycles.
type PolicySet struct {
	APIVersion       string            `yaml:"apiVersion" json:"apiVersion"`
	Kind             string            `yaml:"kind"       json:"kind"`
	Metadata         Metadata          `yaml:"metadata"   json:"metadata"`
	Defaults         Defaults          `yaml:"defaults"   json:"defaults"`
	Policies         []Policy          `yaml:"policies"   json:"policies"`
	ContextFallbacks map[string]string `yaml:"context_fallbacks,omitempty" json:"context_fallbacks,omitempty"`
}

// Verdict is the engine's decision for one evaluation.
type Verdict struct {
	Effect   Effect
	Channel  Channel
	PolicyID string // empty when the defaults applied
}

// MatchResult describes whether a single policy matched a context.
// Returned by [PolicyEngine.EvaluateAll] for introspection.
type MatchResult struct {
	PolicyID string
	Name     string
	Priority int
	Effect   Effect
	Matched  bool
	Enabled  bool
}
