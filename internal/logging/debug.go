package logging

import (
	"os"
)

// DebugEnvVar turns on debug logging when set to any non-empty value
const DebugEnvVar = "TIMESLIME_DEBUG"

// DebugEnabled returns true if debug mode is enabled via TIMESLIME_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv(DebugEnvVar) != ""
}
