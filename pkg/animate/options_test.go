package animate

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/sawtooth/pkg/errors"
	"github.com/matzehuels/sawtooth/pkg/svg"
)

func TestResolveFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fn     func() float64
		static float64
		want   float64
	}{
		{"default", nil, 0, 4},
		{"static", nil, 2, 2},
		{"fn wins over static", func() float64 { return 7 }, 2, 7},
		{"fn zero falls back to static", func() float64 { return 0 }, 2, 2},
		{"fn NaN falls back to static", func() float64 { return math.NaN() }, 2, 2},
		{"fn zero and static zero", func() float64 { return 0 }, 0, 4},
		{"static NaN", nil, math.NaN(), 4},
		{"negative is truthy", nil, -3, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(tt.fn, tt.static, DefaultStrokeWidth))
		})
	}
}

func TestResolveOtherTypes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "black", resolve(nil, "", DefaultStrokeColor))
	assert.Equal(t, "red", resolve(nil, "red", DefaultStrokeColor))
	assert.Equal(t, 8, resolve(func() int { return 0 }, 0, DefaultPeriod))
	assert.Equal(t, 3, resolve(func() int { return 3 }, 5, DefaultPeriod))
	assert.Equal(t, 3*time.Second, resolve(nil, 0, DefaultTimeInterval))
	assert.Equal(t, time.Second, resolve(nil, time.Second, DefaultTimeInterval))
}

func TestAtTick(t *testing.T) {
	t.Parallel()

	require.Nil(t, atTick[float64](nil, 3))

	fn := atTick(func(i int) float64 { return float64(i * 10) }, 3)
	require.NotNil(t, fn)
	assert.Equal(t, 30.0, fn())
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Options{}.Validate())
	require.NoError(t, DefaultOptions().Validate())

	for _, o := range []Options{
		{N: -1},
		{TimeInterval: -time.Second},
	} {
		err := o.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	}
}

func TestNegativePeriodDrawsMoveOnly(t *testing.T) {
	t.Parallel()

	require.NoError(t, Options{Period: -1}.Validate())

	doc := svg.NewDocument(3000, 800)
	l, err := New(doc, Options{Period: -1})
	require.NoError(t, err)
	el, err := l.Tick()
	require.NoError(t, err)
	d, _ := el.Attribute("d")
	assert.Equal(t, "M0 100", d)
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	assert.Equal(t, 20, o.N)
	assert.Equal(t, 4.0, o.StrokeWidth)
	assert.Equal(t, "black", o.StrokeColor)
	assert.Equal(t, 100.0, o.StartY)
	assert.Equal(t, 40.0, o.IntervalY)
	assert.Equal(t, 3000.0, o.Width)
	assert.Equal(t, 30.0, o.Height)
	assert.Equal(t, 8, o.Period)
	assert.Equal(t, 700.0, o.RestartY)
	assert.Equal(t, 3*time.Second, o.TimeInterval)
}
