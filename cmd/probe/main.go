package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/glennib/case-poker/internal/probe"
	"github.com/glennib/case-poker/pkg/logger"
)

// Default configuration constants.
const (
	defaultDraws        = 1000
	defaultWorkerFactor = 2 // multiplier for runtime.NumCPU()
	defaultTimeout      = 10 * time.Second
	defaultProbeTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8080", "Base URL of the service")
		draws   = flag.Int("draws", defaultDraws, "Number of hands to draw")
		workers = flag.Int("workers", runtime.NumCPU()*defaultWorkerFactor, "Number of concurrent workers")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultProbeTimeout)
	defer cancel()

	config := &probe.Config{
		BaseURL: *baseURL,
		Draws:   *draws,
		Workers: *workers,
		Timeout: *timeout,
	}

	if err := probe.Run(ctx, config); err != nil {
		logger.Get().Error(ctx, "probe failed", logger.Error(err))
		os.Exit(1)
	}
}
