package probe

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/glennib/case-poker/pkg/logger"
)

// drawnCard mirrors the card shape returned by GET /draw.
type drawnCard struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// drawResult mirrors the response shape of GET /draw.
type drawResult struct {
	Hand     []drawnCard `json:"hand"`
	Category string      `json:"category"`
}

// Run executes the draw probe: checks service health, issues the configured
// number of /draw requests concurrently, verifies every returned hand holds
// five unique cards, and reports the observed category frequencies.
func Run(ctx context.Context, config *Config) error {
	if config.RunID == "" {
		config.RunID = uuid.NewString()
	}

	log := logger.Get().Named("probe")
	log.Info(ctx, "starting draw probe",
		logger.String("runID", config.RunID),
		logger.String("baseURL", config.BaseURL),
		logger.Int("draws", config.Draws),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()))

	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	start := time.Now()
	tally, failed, err := drawHands(ctx, config)
	if err != nil {
		return fmt.Errorf("draw probe failed: %w", err)
	}
	elapsed := time.Since(start)

	reportFrequencies(ctx, log, tally, config.Draws, failed, elapsed)
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	client := newHTTPClient(config.Timeout)

	resp, err := client.get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Any 200 response counts as healthy (the endpoint serves Prometheus metrics).
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}
	return nil
}

// drawHands issues the draws concurrently and tallies categories per worker,
// merging at the end.
func drawHands(ctx context.Context, config *Config) (map[string]int, int64, error) {
	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/draw"

	var failed atomic.Int64
	tallies := make([]map[string]int, config.Workers)

	work := make(chan struct{})
	var wg sync.WaitGroup
	for w := 0; w < config.Workers; w++ {
		tallies[w] = make(map[string]int)
		wg.Add(1)
		go func(tally map[string]int) {
			defer wg.Done()
			for range work {
				var result drawResult
				if err := client.getJSON(ctx, url, &result); err != nil {
					failed.Add(1)
					continue
				}
				if err := verifyDraw(result); err != nil {
					failed.Add(1)
					logger.Get().Warn(ctx, "invalid draw response", logger.Error(err))
					continue
				}
				tally[result.Category]++
			}
		}(tallies[w])
	}

	for i := 0; i < config.Draws; i++ {
		select {
		case <-ctx.Done():
			close(work)
			wg.Wait()
			return nil, failed.Load(), ctx.Err()
		case work <- struct{}{}:
		}
	}
	close(work)
	wg.Wait()

	merged := make(map[string]int)
	for _, tally := range tallies {
		for category, n := range tally {
			merged[category] += n
		}
	}
	return merged, failed.Load(), nil
}

// verifyDraw checks the draw invariant on a response: five cards, all unique.
func verifyDraw(result drawResult) error {
	if len(result.Hand) != 5 {
		return fmt.Errorf("hand has %d cards, want 5", len(result.Hand))
	}
	seen := make(map[drawnCard]struct{}, len(result.Hand))
	for _, c := range result.Hand {
		seen[c] = struct{}{}
	}
	if len(seen) != len(result.Hand) {
		return fmt.Errorf("hand has duplicate cards: %v", result.Hand)
	}
	if result.Category == "" {
		return fmt.Errorf("response has no category")
	}
	return nil
}

// reportFrequencies logs the observed category distribution, most frequent
// first.
func reportFrequencies(ctx context.Context, log logger.Logger, tally map[string]int, draws int, failed int64, elapsed time.Duration) {
	categories := make([]string, 0, len(tally))
	for category := range tally {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return tally[categories[i]] > tally[categories[j]]
	})

	succeeded := draws - int(failed)
	log.Info(ctx, "draw probe finished",
		logger.Int("draws", draws),
		logger.Int("succeeded", succeeded),
		logger.Int("failed", int(failed)),
		logger.String("elapsed", elapsed.String()))

	for _, category := range categories {
		n := tally[category]
		share := 0.0
		if succeeded > 0 {
			share = float64(n) / float64(succeeded) * 100
		}
		log.Info(ctx, "category frequency",
			logger.String("category", category),
			logger.Int("count", n),
			logger.String("share", fmt.Sprintf("%.3f%%", share)))
	}
}
