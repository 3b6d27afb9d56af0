// Package debug turns on debug logging for debug builds or when
// GPTAUTOCLI_DEBUG=1 is set.
package debug

import "os"

// enabled is set via ldflags for debug builds
var enabled = ""

// EnvVar enables debug logging when set to "1".
const EnvVar = "GPTAUTOCLI_DEBUG"

// Enabled reports whether debug logging was requested by the build or the
// environment. The environment overrides the build setting.
func Enabled() bool {
	if v, ok := os.LookupEnv(EnvVar); ok {
		return v == "1"
	}
	return enabled == "true"
}
