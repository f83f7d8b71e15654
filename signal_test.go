package tsl1128

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrengthToPercentage(t *testing.T) {
	tests := []struct {
		strength float64
		expected int
	}{
		{-95, 0},
		{-90, 0},
		{-57.5, 50},
		{-52, 58},
		{-25, 100},
		{-10, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StrengthToPercentage(tt.strength))
	}
}
