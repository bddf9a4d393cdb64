package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAMLSingle(t *testing.T) {
	data := []byte(`
id: tiny
name: Tiny
metadata:
  hint: go right
plan:
  - "x@ox"
  - "xxxx"
`)
	lvls, err := ParseYAML(data)
	require.NoError(t, err)
	require.Len(t, lvls, 1)

	assert.Equal(t, "tiny", lvls[0].ID)
	assert.Equal(t, "Tiny", lvls[0].Name)
	assert.Equal(t, []string{"x@ox", "xxxx"}, lvls[0].Plan)
	assert.Equal(t, "go right", lvls[0].Metadata["hint"])
}

func TestParseYAMLBlockPlan(t *testing.T) {
	data := []byte("id: block\nplan: |\n  x@ x\n  xxxx\n")

	lvls, err := ParseYAML(data)
	require.NoError(t, err)
	require.Len(t, lvls, 1)
	assert.Equal(t, []string{"x@ x", "xxxx"}, lvls[0].Plan)
	assert.Equal(t, "block", lvls[0].Name, "name falls back to id")
}

func TestParseYAMLBlockPlanLeadingSpaces(t *testing.T) {
	data := []byte("id: open\nplan: |2\n     @ \n  xxxxx\n")

	lvls, err := ParseYAML(data)
	require.NoError(t, err)
	require.Len(t, lvls, 1)
	assert.Equal(t, []string{"   @ ", "xxxxx"}, lvls[0].Plan)
}

func TestParseYAMLPack(t *testing.T) {
	data := []byte(`
levels:
  - id: b
    plan: ["@", "x"]
  - id: a
    name: Alpha
    plan: ["@o", "xx"]
`)
	lvls, err := ParseYAML(data)
	require.NoError(t, err)
	require.Len(t, lvls, 2)
	assert.Equal(t, "b", lvls[0].ID, "file order is kept")
	assert.Equal(t, "Alpha", lvls[1].Name)
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"missing id", "plan: [\"@\"]\n", ErrMissingID},
		{"missing plan", "id: x\n", ErrMissingPlan},
		{"pack level missing plan", "levels:\n  - id: a\n", ErrMissingPlan},
		{"mixed", "id: a\nplan: [\"@\"]\nlevels:\n  - id: b\n    plan: [\"@\"]\n", ErrMixedFile},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseYAMLMalformed(t *testing.T) {
	_, err := ParseYAML([]byte("id: [unterminated"))
	assert.Error(t, err)

	_, err = ParseYAML([]byte("id: x\nplan:\n  nested: map\n"))
	assert.Error(t, err)
}
