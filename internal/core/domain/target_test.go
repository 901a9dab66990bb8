package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rig/internal/core/domain"
)

func TestNormalizeTargetName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"alloc", "alloc"},
		{"alloc.odin", "alloc"},
		{"./alloc.odin", "alloc"},
		{"core/strings.odin", "core/strings"},
		{"core//strings", "core/strings"},
		{"alloc.c", "alloc.c"},
		{"", "."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.NormalizeTargetName(tt.input, "odin"))
		})
	}
}

func TestValidateTargetName(t *testing.T) {
	valid := []string{"alloc", "core/strings", "test_simd", "my test", ".hidden"}
	for _, name := range valid {
		assert.NoError(t, domain.ValidateTargetName(name), name)
	}

	invalid := []string{"", ".", "/etc/passwd", "../escape", "a/../../b"}
	for _, name := range invalid {
		err := domain.ValidateTargetName(name)
		assert.ErrorIs(t, err, domain.ErrInvalidTargetName, name)
	}
}
