// Package probe implements a concurrent load client for the case-poker
// service. It draws hands over HTTP, verifies each response and reports the
// observed category frequencies.
package probe

import "time"

// Config holds the probe parameters.
type Config struct {
	// BaseURL of the service under test, e.g. "http://localhost:8080".
	BaseURL string

	// Draws is the number of /draw requests to issue.
	Draws int

	// Workers is the number of concurrent request workers.
	Workers int

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// RunID tags the probe run. Generated when empty.
	RunID string
}
