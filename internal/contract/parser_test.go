package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanStripsFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"fenced with tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced without tag", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n  ", `{"a":1}`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestDecodeArray(t *testing.T) {
	type item struct {
		Question string `json:"question"`
	}

	t.Run("valid", func(t *testing.T) {
		got, err := DecodeArray[item]("```json\n[{\"question\":\"q1\"},{\"question\":\"q2\"}]\n```")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "q1", got[0].Question)
	})

	t.Run("truncated json is malformed", func(t *testing.T) {
		_, err := DecodeArray[item](`[{"question":"q1"},{"ques`)
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("empty response is malformed", func(t *testing.T) {
		_, err := DecodeArray[item]("")
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("empty array is semantic", func(t *testing.T) {
		_, err := DecodeArray[item]("[]")
		require.ErrorIs(t, err, ErrSemantic)
		assert.NotErrorIs(t, err, ErrMalformed)
	})
}

func TestDecodeObject(t *testing.T) {
	var out struct {
		Category string `json:"category"`
	}

	require.NoError(t, DecodeObject("```json\n{\"category\":\"x\"}\n```", &out))
	assert.Equal(t, "x", out.Category)

	require.ErrorIs(t, DecodeObject("not json at all", &out), ErrMalformed)
	require.ErrorIs(t, DecodeObject("", &out), ErrMalformed)
}
