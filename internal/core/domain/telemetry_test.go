package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rig/internal/core/domain"
)

func TestStep_TargetAndPhase(t *testing.T) {
	tests := []struct {
		name   string
		phase  string
		target string
	}{
		{"build simd", "build", "simd"},
		{"run core/strings", "run", "core/strings"},
		{"run my test", "run", "my test"},
		{"orphan", "orphan", "orphan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := domain.Step{Name: tt.name}
			assert.Equal(t, tt.phase, step.Phase())
			assert.Equal(t, tt.target, step.Target())
		})
	}
}

func TestStep_Duration(t *testing.T) {
	start := time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 3*time.Second, domain.Step{Started: start, Completed: start.Add(3 * time.Second)}.Duration())
	assert.Zero(t, domain.Step{Started: start}.Duration())
	assert.Zero(t, domain.Step{}.Duration())
}
