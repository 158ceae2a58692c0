package uaid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAIDWithRoutingParams(t *testing.T) {
	parsed, err := Parse(" uaid:aid:example;uid=agent-1;registry=demo;proto=mcp ")
	require.NoError(t, err)
	assert.Equal(t, TargetAID, parsed.Target)
	assert.Equal(t, "example", parsed.ID)
	assert.Equal(t, "agent-1", parsed.Params["uid"])
	assert.Equal(t, "demo", parsed.Registry())
	assert.Equal(t, "mcp", parsed.Protocol())
}

func TestParseDIDDecodesParams(t *testing.T) {
	parsed, err := Parse("uaid:did:example.com;src=did%3Aweb%3Aexample.com;proto=\"a2a\"")
	require.NoError(t, err)
	assert.Equal(t, TargetDID, parsed.Target)
	assert.Equal(t, "example.com", parsed.ID)
	assert.Equal(t, "did:web:example.com", parsed.Params["src"])
	assert.Equal(t, "a2a", parsed.Protocol())
}

func TestParseRejectsInvalidValues(t *testing.T) {
	_, err := Parse("code assistant")
	assert.ErrorIs(t, err, ErrInvalidUAID)

	_, err = Parse("uaid:xyz:abc")
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = Parse("uaid:aid:;proto=mcp")
	assert.ErrorIs(t, err, ErrIdentifierRequired)

	assert.False(t, IsUAID(""))
	assert.True(t, IsUAID("uaid:aid:abc"))
}

func TestParseSkipsMalformedParams(t *testing.T) {
	parsed, err := Parse("uaid:aid:abc;;=x;flag;proto=")
	require.NoError(t, err)
	assert.Empty(t, parsed.Params)
	assert.Equal(t, "", parsed.Protocol())
}

func TestBuildCanonicalOrder(t *testing.T) {
	built := Build(TargetAID, "abc", map[string]string{
		"zeta":     "last",
		"proto":    "mcp",
		"uid":      "agent 1",
		"alpha":    "first",
		"registry": "",
	})
	assert.Equal(t, "uaid:aid:abc;uid=agent%201;proto=mcp;alpha=first;zeta=last", built)
	assert.Equal(t, "uaid:did:abc", Build(TargetDID, "abc", nil))

	parsed, err := Parse(built)
	require.NoError(t, err)
	assert.Equal(t, built, parsed.String())
}
