package health_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soham-0510/vyapar-sathi-final/internal/domain/health"
)

func TestScore(t *testing.T) {
	assert.Equal(t, 100, health.Score(0), "no alerts is a perfect score")
	assert.Equal(t, 90, health.Score(1))
	assert.Equal(t, 70, health.Score(3))
	assert.Equal(t, 40, health.Score(6), "exactly at the floor")
	assert.Equal(t, 40, health.Score(10), "clamped at the floor")
	assert.Equal(t, 40, health.Score(1000))
}

func TestScore_NegativeCountClampsToMax(t *testing.T) {
	assert.Equal(t, 100, health.Score(-5))
}
