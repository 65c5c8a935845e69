package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinNumbering(t *testing.T) {
	all := Builtin()
	require.Len(t, all, 4)
	for i, s := range all {
		assert.Equal(t, i+1, s.Number)
		assert.NotEmpty(t, s.Phases)
	}
	assert.Equal(t, []string{"balanced", "surplus", "deficit-injection", "solar-injection"}, Names())
}

func TestBuiltinIsFresh(t *testing.T) {
	a := Builtin()
	a[0].Phases[0].Supplies[0] = 1
	b := Builtin()
	assert.Equal(t, 150.0, b[0].Phases[0].Supplies[0])
}

func TestSelect(t *testing.T) {
	all, err := Select()
	require.NoError(t, err)
	assert.Len(t, all, 4)

	some, err := Select("solar-injection", "balanced")
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, 4, some[0].Number)
	assert.Equal(t, 1, some[1].Number)

	_, err = Select("storm")
	assert.Error(t, err)
}
