// ABOUTME: Retry backoff helper shared by the provider clients
// ABOUTME: Exponential delay with jitter, capped to keep retries bounded
package util

import (
	"math/rand/v2"
	"time"
)

const maxBackoff = 30 * time.Second

// CalculateBackoff returns the delay to sleep before retry `attempt`
// (1-based). The base delay doubles per attempt up to a 30s cap, with
// random jitter in [-25%, +25%] to avoid synchronized retries.
func CalculateBackoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 || baseDelay <= 0 {
		return 0
	}

	backoff := baseDelay
	for i := 1; i < attempt && backoff < maxBackoff; i++ {
		backoff *= 2
	}
	if backoff > maxBackoff {
		backoff = maxBackoff
	}

	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}
