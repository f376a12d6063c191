package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyValuePairs(t *testing.T) {
	pairs, err := parseKeyValuePairs([]string{"KEY=value", "URL=https://example.com/?a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"KEY": "value",
		"URL": "https://example.com/?a=b",
	}, pairs)

	_, err = parseKeyValuePairs([]string{"missing-equals"})
	assert.ErrorContains(t, err, "missing =")
}

func TestParseConfigJSON(t *testing.T) {
	values, err := parseConfigJSON(`{"token": "abc", "debug": true, "port": 8080, "empty": null}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"token": "abc",
		"debug": "true",
		"port":  "8080",
		"empty": "",
	}, values)
}

func TestParseConfigJSONEmpty(t *testing.T) {
	values, err := parseConfigJSON("")
	require.NoError(t, err)
	assert.Nil(t, values)
}

func TestParseConfigJSONRejectsNested(t *testing.T) {
	_, err := parseConfigJSON(`{"nested": {"a": 1}}`)
	assert.ErrorContains(t, err, "must be a scalar")
}

func TestParseConfigJSONInvalid(t *testing.T) {
	_, err := parseConfigJSON(`not json`)
	assert.ErrorContains(t, err, "invalid --config JSON")
}

func TestBuildOverridesEnvFlagBeatsConfig(t *testing.T) {
	ov, err := buildOverrides(`{"TOKEN": "from-config"}`, []string{"TOKEN=from-flag", "EXTRA=1"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", ov.Env["TOKEN"])
	assert.Equal(t, "1", ov.Env["EXTRA"])
}

func TestBuildOverridesArgsAndHeaders(t *testing.T) {
	ov, err := buildOverrides("", nil, []string{"path=/tmp"}, []string{"X-Api-Key=secret"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"path": "/tmp"}, ov.Args)
	assert.Equal(t, map[string]string{"X-Api-Key": "secret"}, ov.Headers)
}
