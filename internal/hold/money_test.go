package hold

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"79.95", 7995},
		{"40", 4000},
		{"0", 0},
		{"0.005", 1},   // half rounds away from zero
		{"-0.005", -1}, // ...in both directions
		{"1.004", 100},
		{"19.999", 2000},
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, MinorUnits(d), "input %s", tt.in)
	}
}

func TestMajorString(t *testing.T) {
	assert.Equal(t, "79.95", MajorString(7995))
	assert.Equal(t, "90.00", MajorString(9000))
	assert.Equal(t, "0.00", MajorString(0))
	assert.Equal(t, "0.05", MajorString(5))
}

// Converting minor -> display -> minor must be a fixed point.
func TestConversionRoundTrips(t *testing.T) {
	for _, minor := range []int64{0, 1, 99, 100, 7995, 9000, 123456789} {
		d, err := decimal.NewFromString(MajorString(minor))
		require.NoError(t, err)
		assert.Equal(t, minor, MinorUnits(d))
	}
}
