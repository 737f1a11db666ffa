package guard

import (
	"sort"
	"sync"
)

// PolicyEngine evaluates tool invocations against a PolicySet.
//
// The engine keeps a private, priority-sorted copy of the policies and
// the fallback map, so mutating the original PolicySet after loading
// cannot perturb evaluation. Load swaps that state atomically; Evaluate
// and EvaluateAll are safe for concurrent use.
type PolicyEngine struct {
	mu               sync.RWMutex
	defaults         Defaults
	policies         []Policy
	contextFallbacks map[string]string
}

// NewPolicyEngine creates an engine, optionally loading a PolicySet.
//
//	engine := guard.NewPolicyEngine(guard.WithPolicySet(ps))
func NewPolicyEngine(opts ...Option) *PolicyEngine {
	o := resolveOptions(opts)
	e := &PolicyEngine{
		defaults:         o.defaults,
		contextFallbacks: make(map[string]string),
	}
	if o.policySet != nil {
		e.Load(o.policySet)
	}
	return e
}

// Load replaces the active policy set wholesale. Policies are sorted by
// priority ascending with a stable sort, so authors can rely on
// declaration order to break ties.
func (e *PolicyEngine) Load(ps *PolicySet) {
	policies := make([]Policy, len(ps.Policies))
	copy(policies, ps.Policies)
	sort.SliceStable(policies, func(i, j int) bool {
		return policies[i].Priority < policies[j].Priority
	})

	fallbacks := make(map[string]string, len(ps.ContextFallbacks))
	for k, v := range ps.ContextFallbacks {
		fallbacks[k] = v
	}

	e.mu.Lock()
	e.defaults = ps.Defaults
	e.policies = policies
	e.contextFallbacks = fallbacks
	e.mu.Unlock()
}

// snapshot returns the current (policies, defaults, fallbacks) triple.
// Load never mutates these in place, only swaps them, so the returned
// references are safe to read without holding the lock.
func (e *PolicyEngine) snapshot() ([]Policy, Defaults, map[string]string) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.policies, e.defaults, e.contextFallbacks
}

// Evaluate returns a Verdict for the given context.
//
// Policies are scanned in priority order; the first enabled policy whose
// condition matches wins. On a total miss the engine walks the context
// fallback chain, re-running the scan with the mode replaced per hop,
// and finally returns the defaults. Cycles in the fallback map are
// detected and treated as chain exhaustion.
func (e *PolicyEngine) Evaluate(ctx EvalContext) Verdict {
	policies, defaults, fallbacks := e.snapshot()

	if v, ok := matchFirst(policies, ctx); ok {
		return v
	}

	mode := ctx.Mode
	visited := map[string]bool{mode: true}
	for {
		next, exists := fallbacks[mode]
		if !exists || visited[next] {
			break
		}
		visited[next] = true
		mode = next
		if v, ok := matchFirst(policies, ctx.WithMode(mode)); ok {
			return v
		}
	}

	return Verdict{
		Effect:  defaults.Effect,
		Channel: defaults.Channel,
	}
}

// Resolve is a convenience method returning just the effect tag.
func (e *PolicyEngine) Resolve(ctx EvalContext) string {
	return string(e.Evaluate(ctx).Effect)
}

// EvaluateAll returns a match report for every policy in priority
// order, without short-circuiting. It shares the matching predicate
// with Evaluate but has no effect on the primary decision; it exists
// for debugging and audit tooling.
func (e *PolicyEngine) EvaluateAll(ctx EvalContext) []MatchResult {
	policies, _, _ := e.snapshot()

	results := make([]MatchResult, 0, len(policies))
	for i := range policies {
		p := &policies[i]
		enabled := p.IsEnabled()
		results = append(results, MatchResult{
			PolicyID: p.ID,
			Name:     p.Name,
			Priority: p.Priority,
			Effect:   p.Effect,
			Matched:  enabled && p.Condition.Matches(ctx),
			Enabled:  enabled,
		})
	}
	return results
}

// Policies returns a copy of the currently loaded policies, sorted by
// priority.
func (e *PolicyEngine) Policies() []Policy {
	policies, _, _ := e.snapshot()
	out := make([]Policy, len(policies))
	copy(out, policies)
	return out
}

// Defaults returns the fallback effect and channel.
func (e *PolicyEngine) Defaults() Defaults {
	_, defaults, _ := e.snapshot()
	return defaults
}

// ContextFallbacks returns a copy of the mode fallback mapping.
func (e *PolicyEngine) ContextFallbacks() map[string]string {
	_, _, fallbacks := e.snapshot()
	out := make(map[string]string, len(fallbacks))
	for k, v := range fallbacks {
		out[k] = v
	}
	return out
}

// matchFirst scans policies for the first enabled condition match
// against a single context, with no fallback.
func matchFirst(policies []Policy, ctx EvalContext) (Verdict, bool) {
	for i := range policies {
		p := &policies[i]
		if !p.IsEnabled() {
			continue
		}
		if p.Condition.Matches(ctx) {
			return Verdict{
				Effect:   p.Effect,
				Channel:  p.Channel,
				PolicyID: p.ID,
			}, true
		}
	}
	return Verdict{}, false
}
