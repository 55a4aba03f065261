package upstream

import "time"

// Config configures the upstream HTTP client.
type Config struct {
	// URL is the upstream service's base URL (no trailing slash); /embed is
	// appended per call.
	URL string

	// Timeout bounds a single upstream HTTP call.
	Timeout time.Duration
}
