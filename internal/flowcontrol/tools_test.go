package flowcontrol

import (
	"os"
	"time"
)

// scaleDuration scales the timeouts used by the blocking tests,
// so they don't flake on slow CI machines.
func scaleDuration(d time.Duration) time.Duration {
	if os.Getenv("CI") != "" {
		return 5 * d
	}
	return d
}
