package businessflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateShipRating(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		used     bool
		prodYear int
		expected float64
	}{
		{
			name:     "new ship year 2900",
			speed:    0.5,
			used:     false,
			prodYear: 2900,
			expected: 0.33, // 80*0.5/120
		},
		{
			name:     "used ship year 2900",
			speed:    0.5,
			used:     true,
			prodYear: 2900,
			expected: 0.17, // 80*0.5*0.5/120
		},
		{
			name:     "newest possible year gives denominator of one",
			speed:    0.99,
			used:     false,
			prodYear: 3019,
			expected: 79.2,
		},
		{
			name:     "oldest possible year",
			speed:    0.99,
			used:     false,
			prodYear: 2800,
			expected: 0.36, // 79.2/220
		},
		{
			name:     "slowest used ship",
			speed:    0.01,
			used:     true,
			prodYear: 2800,
			expected: 0.0, // 0.4/220 rounds to zero
		},
		{
			name:     "half up rounding on third decimal",
			speed:    0.75,
			used:     false,
			prodYear: 3000,
			expected: 3.0, // 60/20
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateShipRating(tt.speed, tt.used, tt.prodYear)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestCalculateShipRating_UsedHalvesRating(t *testing.T) {
	fresh := CalculateShipRating(0.8, false, 3000)
	used := CalculateShipRating(0.8, true, 3000)
	assert.InDelta(t, fresh/2, used, 0.01)
}
