package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedianInt(t *testing.T) {
	tests := []struct {
		name     string
		vals     []float64
		expected int
	}{
		{
			name:     "Odd count takes middle value",
			vals:     []float64{1200, 1500, 1700},
			expected: 1500,
		},
		{
			name:     "Even count averages the two central values",
			vals:     []float64{1500, 1700},
			expected: 1600,
		},
		{
			name:     "Fractional average truncates, not rounds",
			vals:     []float64{1500, 1701},
			expected: 1600,
		},
		{
			name:     "Order does not matter",
			vals:     []float64{1700, 1200, 1500},
			expected: 1500,
		},
		{
			name:     "Single value",
			vals:     []float64{980.5},
			expected: 980,
		},
		{
			name:     "Empty input",
			vals:     nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, medianInt(tt.vals))
		})
	}
}

func TestMedianFloatDoesNotMutateInput(t *testing.T) {
	vals := []float64{3, 1, 2}
	medianFloat(vals)
	assert.Equal(t, []float64{3, 1, 2}, vals)
}

func TestModeString(t *testing.T) {
	tests := []struct {
		name       string
		vals       []string
		expected   string
		expectedOK bool
	}{
		{
			name:       "Clear winner",
			vals:       []string{"Fully Furnished", "Unfurnished", "Fully Furnished"},
			expected:   "Fully Furnished",
			expectedOK: true,
		},
		{
			name:       "Tie breaks to lexicographically smallest",
			vals:       []string{"Unfurnished", "Fully Furnished"},
			expected:   "Fully Furnished",
			expectedOK: true,
		},
		{
			name:       "Empty input",
			vals:       nil,
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, ok := modeString(tt.vals)
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expected, mode)
			}
		})
	}
}

func TestModeFloat(t *testing.T) {
	tests := []struct {
		name       string
		vals       []float64
		expected   float64
		expectedOK bool
	}{
		{
			name:       "Clear winner",
			vals:       []float64{3, 3, 2},
			expected:   3,
			expectedOK: true,
		},
		{
			name:       "Tie breaks to smallest value",
			vals:       []float64{4, 2, 4, 2},
			expected:   2,
			expectedOK: true,
		},
		{
			name:       "Fractional encodings are distinct values",
			vals:       []float64{2.0, 2.0, 2.5},
			expected:   2.0,
			expectedOK: true,
		},
		{
			name:       "Empty input",
			vals:       nil,
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, ok := modeFloat(tt.vals)
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expected, mode)
			}
		})
	}
}
