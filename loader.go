package guard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultAPIVersion is applied to documents that omit apiVersion.
const DefaultAPIVersion = "agent-policy/v1"

// LoadPolicySetFromBytes parses a PolicySet from YAML bytes.
//
// A missing kind is defaulted to "PolicySet"; any other kind is
// rejected with [ErrUnsupportedKind]. Unset defaults become ask/chat,
// unset policy channels become chat, and a zero policy priority becomes
// 100. Channel values are validated against the closed enumeration;
// effect values are passed through as-is (the effect vocabulary is
// open).
func LoadPolicySetFromBytes(data []byte) (*PolicySet, error) {
	var ps PolicySet
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return nil, fmt.Errorf("guard: parse policy document: %w", err)
	}
	if ps.Kind != "" && ps.Kind != KindPolicySet {
		return nil, fmt.Errorf("%w: %q (expected %s)", ErrUnsupportedKind, ps.Kind, KindPolicySet)
	}

	if ps.APIVersion == "" {
		ps.APIVersion = DefaultAPIVersion
	}
	if ps.Kind == "" {
		ps.Kind = KindPolicySet
	}
	if ps.Defaults.Effect == "" {
		ps.Defaults.Effect = EffectAsk
	}
	if ps.Defaults.Channel == "" {
		ps.Defaults.Channel = ChannelChat
	}
	if _, err := ParseChannel(string(ps.Defaults.Channel)); err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}

	for i := range ps.Policies {
		p := &ps.Policies[i]
		if p.Channel == "" {
			p.Channel = ChannelChat
		}
		if _, err := ParseChannel(string(p.Channel)); err != nil {
			return nil, fmt.Errorf("policy %q: %w", p.ID, err)
		}
		if p.Priority == 0 {
			p.Priority = 100
		}
	}

	return &ps, nil
}

// LoadPolicySet loads a PolicySet from a YAML file on disk.
func LoadPolicySet(path string) (*PolicySet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("guard: read %s: %w", path, err)
	}
	return LoadPolicySetFromBytes(data)
}
