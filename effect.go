package guard

import "fmt"

// Effect represents the action to take when a policy matches.
// Well-known effects are provided as constants; any other string is a
// legal custom effect, so organizations can extend the vocabulary
// without engine changes.
type Effect string

const (
	EffectAllow  Effect = "allow"
	EffectDeny   Effect = "deny"
	EffectAsk    Effect = "ask"
	EffectHITL   Effect = "hitl"
	EffectPITL   Effect = "pitl"
	EffectAITL   Effect = "aitl"
	EffectFilter Effect = "filter"
)

// Channel represents how the user should be asked for approval.
// Unlike Effect, the channel vocabulary is closed.
type Channel string

const (
	ChannelChat  Channel = "chat"
	ChannelPhone Channel = "phone"
)

// ParseChannel validates a channel string against the closed
// enumeration. It returns an error wrapping [ErrInvalidChannel] for
// anything other than a known channel.
func ParseChannel(s string) (Channel, error) {
	switch Channel(s) {
	case ChannelChat, ChannelPhone:
		return Channel(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidChannel, s)
	}
}
