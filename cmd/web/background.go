package main

import (
	"context"
	"time"
)

// refreshReviewsEvery reloads the review cache now and then on every tick
// until ctx is cancelled. Load failures are logged by the store.
func (app *application) refreshReviewsEvery(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Run once immediately
		app.store.Reviews.LoadReviews(ctx)

		for {
			select {
			case <-ctx.Done():
				app.logger.Infow("review refresh stopped")
				return
			case <-ticker.C:
				app.store.Reviews.LoadReviews(ctx)
			}
		}
	}()
}
