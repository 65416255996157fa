package goldbach

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDInvalidArgument(t *testing.T) {
	for _, n := range []int{7, 3, 1, 2, 0, -2, -4, -7, 101} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			v, err := D(n)
			require.Error(t, err, "D(%d)", n)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "D(%d): %v", n, err)
			assert.Zero(t, v)
		})
	}
}

func TestDErrorMessage(t *testing.T) {
	_, err := D(7)
	require.Error(t, err)
	assert.Equal(t, "invalid argument: N must be even and > 2 (got 7)", err.Error())
}

func TestDSmallCases(t *testing.T) {
	t.Run("N=4 single candidate", func(t *testing.T) {
		v, err := D(4)
		require.NoError(t, err)
		assert.Equal(t, 1.0, v)
	})

	t.Run("N=6 only the midpoint qualifies", func(t *testing.T) {
		v, err := D(6)
		require.NoError(t, err)
		assert.Equal(t, 1.0, v)
	})
}

func TestDGolden(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{8, 1.8788261256269516},
		{10, 2.6374615061559634},
		{28, 2.1738897381046303},
		{100, 3.4761131604181874},
		{1000, 4.121052466947454},
	}
	for _, tt := range tests {
		got, err := D(tt.n)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-12, "D(%d)", tt.n)
	}
}

func TestDNonNegative(t *testing.T) {
	for n := 4; n <= 2000; n += 2 {
		v, err := D(n)
		require.NoError(t, err)
		if v < 0 {
			t.Fatalf("D(%d) = %f, expected >= 0", n, v)
		}
	}
}

func TestDIdempotent(t *testing.T) {
	first, err := D(100)
	require.NoError(t, err)
	second, err := D(100)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPartitions(t *testing.T) {
	parts, err := Partitions(100)
	require.NoError(t, err)

	wantK := []int{3, 11, 17, 29, 41, 47, 53, 59, 71, 83, 89, 97}
	require.Len(t, parts, len(wantK))

	var total float64
	for i, p := range parts {
		assert.Equal(t, wantK[i], p.K)
		assert.Equal(t, 100-p.K, p.Complement)
		assert.Equal(t, float64(p.K)-50, p.Offset)
		assert.Greater(t, p.Weight, 0.0)
		assert.LessOrEqual(t, p.Weight, 1.0)

		// Mirror pair carries the same weight.
		mirror := parts[len(parts)-1-i]
		assert.Equal(t, p.K, mirror.Complement)
		assert.InDelta(t, p.Weight, mirror.Weight, 1e-15)

		total += p.Weight
	}

	d, err := D(100)
	require.NoError(t, err)
	assert.Equal(t, d, total)
}

func TestPartitionsInvalid(t *testing.T) {
	parts, err := Partitions(9)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Nil(t, parts)
}

func TestWeight(t *testing.T) {
	assert.Equal(t, 1.0, Weight(4, 2))
	assert.Equal(t, 1.0, Weight(100, 50))
	assert.Equal(t, Weight(100, 3), Weight(100, 97))
	assert.InDelta(t, 1.5966783897804747e-05, Weight(100, 3), 1e-15)
}

func TestEvaluate(t *testing.T) {
	r, err := Evaluate(100)
	require.NoError(t, err)
	assert.Equal(t, 100, r.N)
	assert.Equal(t, 12, r.Pairs)

	d, err := D(100)
	require.NoError(t, err)
	assert.Equal(t, d, r.Value)

	_, err = Evaluate(2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
