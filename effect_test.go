package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	guard "github.com/armatrix/agent-guard-go"
)

func TestParseChannel(t *testing.T) {
	ch, err := guard.ParseChannel("chat")
	require.NoError(t, err)
	assert.Equal(t, guard.ChannelChat, ch)

	ch, err = guard.ParseChannel("phone")
	require.NoError(t, err)
	assert.Equal(t, guard.ChannelPhone, ch)

	_, err = guard.ParseChannel("carrier-pigeon")
	assert.ErrorIs(t, err, guard.ErrInvalidChannel)

	_, err = guard.ParseChannel("")
	assert.ErrorIs(t, err, guard.ErrInvalidChannel)
}

func TestPolicyIsEnabled(t *testing.T) {
	var p guard.Policy
	assert.True(t, p.IsEnabled(), "policies default to enabled")

	p.Enabled = boolPtr(false)
	assert.False(t, p.IsEnabled())

	p.Enabled = boolPtr(true)
	assert.True(t, p.IsEnabled())
}
