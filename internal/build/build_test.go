package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rig/internal/build"
)

func TestInfo(t *testing.T) {
	version, commit := build.Version, build.Commit
	t.Cleanup(func() { build.Version, build.Commit = version, commit })

	build.Version, build.Commit = "v1.2.0", ""
	assert.Equal(t, "rig version v1.2.0", build.Info())

	build.Commit = "3f9a2c1d8e7b6a5f4e3d"
	assert.Equal(t, "rig version v1.2.0 (3f9a2c1d8e7b)", build.Info())
}
