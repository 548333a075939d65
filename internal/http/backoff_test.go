package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBackoff(t *testing.T) {
	config := BackoffConfig{
		BaseDelay:  time.Second,
		MaxDelay:   60 * time.Second,
		Multiplier: 2.0,
	}

	tests := []struct {
		name     string
		attempt  int
		expected time.Duration
	}{
		{"zero attempt returns base", 0, time.Second},
		{"negative attempt returns base", -1, time.Second},
		{"first retry", 1, 2 * time.Second},
		{"second retry", 2, 4 * time.Second},
		{"third retry", 3, 8 * time.Second},
		{"capped at max", 10, 60 * time.Second},
		{"huge attempt stays capped", 100, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateBackoff(config, tt.attempt))
		})
	}
}

func TestCalculateBackoff_CustomMultiplier(t *testing.T) {
	config := BackoffConfig{
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 1.5,
	}

	assert.Equal(t, 150*time.Millisecond, CalculateBackoff(config, 1))
	assert.Equal(t, 300*time.Millisecond, CalculateBackoff(config, 2))
}
