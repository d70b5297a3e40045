package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 50, cfg.MemoryLen)
	assert.Equal(t, 0.5, cfg.ZeroValue)

	n, err := cfg.normalize()
	require.NoError(t, err)
	assert.NotNil(t, n.Logger)
}

func TestConfigNormalize(t *testing.T) {
	n, err := Config{ZeroValue: 1}.normalize()
	require.NoError(t, err)
	assert.Equal(t, DefaultMemoryLen, n.MemoryLen, "zero MemoryLen falls back to the default")

	_, err = Config{MemoryLen: -1}.normalize()
	require.ErrorIs(t, err, ErrInvalidMemoryLen)

	for _, v := range []float64{-0.1, 1.1, math.NaN(), math.Inf(1)} {
		_, err = Config{MemoryLen: 1, ZeroValue: v}.normalize()
		assert.ErrorIs(t, err, ErrInvalidZeroValue, "zero value %v", v)
	}
}
