// Package guard provides a declarative guardrail policy engine for
// gating AI-agent tool invocations.
//
// Policies are declared in YAML (schema loosely inspired by Azure Policy)
// and evaluated against an [EvalContext] snapshot of a single tool call.
// The engine walks policies in priority order, returns the first enabled
// match as a [Verdict], retries along the configured mode fallback chain,
// and falls back to the policy set's defaults when nothing matches.
//
// # Quick Start
//
//	ps, err := guard.LoadPolicySet("policies.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine := guard.NewPolicyEngine(guard.WithPolicySet(ps))
//
//	v := engine.Evaluate(guard.EvalContext{
//	    Mode: "interactive",
//	    Tool: "bash",
//	    User: "alice",
//	})
//	if v.Effect == guard.EffectDeny {
//	    // block the tool call
//	}
//
// Evaluation is pure and performs no I/O. [PolicyEngine.Evaluate] may be
// called concurrently from any number of goroutines; [PolicyEngine.Load]
// atomically swaps the active policy set.
//
// # Sub-packages
//
//   - [permission] adapts engine verdicts to the permission-callback
//     shape agent runtimes consume.
//   - [schema] generates a JSON Schema for PolicySet documents.
package guard
