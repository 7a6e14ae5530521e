package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-01")

	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", d.String())
}

func TestParseDate_RejectsTimeComponent(t *testing.T) {
	_, err := ParseDate("2024-03-01T10:00:00Z")

	assert.Error(t, err)
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-12-31")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-31"`, string(b))

	var decoded Date
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, d, decoded)
}

func TestDate_UnmarshalRejectsNonString(t *testing.T) {
	var d Date

	assert.Error(t, json.Unmarshal([]byte(`20240301`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"03/01/2024"`), &d))
}

func TestDate_After(t *testing.T) {
	older, err := ParseDate("2023-01-01")
	require.NoError(t, err)
	newer, err := ParseDate("2024-01-01")
	require.NoError(t, err)

	assert.True(t, newer.After(older))
	assert.False(t, older.After(newer))
	assert.False(t, newer.After(newer))
}
