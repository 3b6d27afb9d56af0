package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabledFromEnvironment(t *testing.T) {
	t.Setenv(EnvVar, "1")
	assert.True(t, Enabled())

	t.Setenv(EnvVar, "0")
	assert.False(t, Enabled())
}

func TestEnabledFromBuild(t *testing.T) {
	prev := enabled
	t.Cleanup(func() { enabled = prev })

	enabled = "true"
	t.Setenv(EnvVar, "")
	assert.False(t, Enabled(), "an explicit environment value wins")
}
