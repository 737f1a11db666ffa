package guard

// Option configures a PolicyEngine via the functional options pattern.
type Option func(*engineOptions)

// engineOptions holds configurable fields set via Option functions.
type engineOptions struct {
	defaults  Defaults
	policySet *PolicySet
}

// applyDefaults fills in zero-value fields with the built-in fallback
// behaviour: ask over the chat channel.
func (o *engineOptions) applyDefaults() {
	if o.defaults.Effect == "" {
		o.defaults.Effect = EffectAsk
	}
	if o.defaults.Channel == "" {
		o.defaults.Channel = ChannelChat
	}
}

// resolveOptions applies all option functions and fills defaults.
func resolveOptions(opts []Option) engineOptions {
	var o engineOptions
	for _, fn := range opts {
		fn(&o)
	}
	o.applyDefaults()
	return o
}

// WithDefaults sets the verdict used before any policy set is loaded.
// A loaded PolicySet's own defaults take over on Load.
func WithDefaults(d Defaults) Option {
	return func(o *engineOptions) { o.defaults = d }
}

// WithPolicySet loads the given policy set into the engine at
// construction time.
func WithPolicySet(ps *PolicySet) Option {
	return func(o *engineOptions) { o.policySet = ps }
}
