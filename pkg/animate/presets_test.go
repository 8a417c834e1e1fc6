package animate

import (
	"testing"

	"github.com/fogleman/ease"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/sawtooth/pkg/errors"
)

func TestOscillate(t *testing.T) {
	t.Parallel()

	fn := Oscillate(10, 30, 2, nil)
	var got []float64
	for range 6 {
		got = append(got, fn())
	}
	assert.Equal(t, []float64{10, 20, 30, 20, 10, 20}, got)
}

func TestOscillateEasing(t *testing.T) {
	t.Parallel()

	fn := Oscillate(0, 100, 4, ease.InQuad)
	assert.Equal(t, 0.0, fn())
	assert.InDelta(t, 6.25, fn(), 1e-9)
	assert.InDelta(t, 25, fn(), 1e-9)

	one := Oscillate(5, 9, 0, nil)
	assert.Equal(t, 5.0, one())
	assert.Equal(t, 9.0, one())
	assert.Equal(t, 5.0, one())
}

func TestCycle(t *testing.T) {
	t.Parallel()

	fn := Cycle(100, 200, 300)
	assert.Equal(t, 100.0, fn(0))
	assert.Equal(t, 300.0, fn(2))
	assert.Equal(t, 100.0, fn(3))
	assert.Equal(t, 200.0, fn(-1))

	assert.Equal(t, 0.0, Cycle()(5))
}

func TestEasingByName(t *testing.T) {
	t.Parallel()

	fn, err := EasingByName(" In-Out-Sine ")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, fn(0.5), 1e-9)

	fn, err = EasingByName("")
	require.NoError(t, err)
	assert.Equal(t, 0.25, fn(0.25))

	_, err = EasingByName("wobble")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	names := EasingNames()
	assert.Contains(t, names, "linear")
	assert.IsNonDecreasing(t, names)
}
