package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	require.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	require.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	require.False(t, ok)
}

func TestCodecs_AgreeOnNumbers(t *testing.T) {
	v := map[string]any{
		"total_token_count": uint64(192427),
		"cat":               []float64{0.1, -0.25, 1e-7},
		"Emma":              int64(865),
	}

	std := MustMarshal(JSON{}, v)
	fast := MustMarshal(GoJSON{}, v)
	require.JSONEq(t, string(std), string(fast))

	var back map[string]any
	require.NoError(t, GoJSON{}.Unmarshal(fast, &back))
	require.Equal(t, float64(865), back["Emma"])
}
