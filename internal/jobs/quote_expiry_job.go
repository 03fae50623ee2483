package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// QuoteExpiryJobName is the name of the quote expiry job
const QuoteExpiryJobName = "quote_expiry"

// QuoteExpirer defines the interface for expiring stale pending quotes.
type QuoteExpirer interface {
	// ExpireQuotes marks pending quotes past their validity date as expired
	// and returns how many rows were updated.
	ExpireQuotes(ctx context.Context) (int64, error)
}

// QuoteExpiryJob transitions pending quotes whose validity window has
// passed into the expired status.
type QuoteExpiryJob struct {
	quotes  QuoteExpirer
	logger  *zap.Logger
	timeout time.Duration
}

// NewQuoteExpiryJob creates a new quote expiry job.
// The timeout controls how long the expiry pass is allowed to run.
func NewQuoteExpiryJob(quotes QuoteExpirer, logger *zap.Logger, timeout time.Duration) *QuoteExpiryJob {
	return &QuoteExpiryJob{
		quotes:  quotes,
		logger:  logger,
		timeout: timeout,
	}
}

// Run executes the expiry pass. This is called by the scheduler according
// to the cron expression.
func (j *QuoteExpiryJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()

	expired, err := j.quotes.ExpireQuotes(ctx)
	if err != nil {
		j.logger.Error("quote expiry job failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	if expired > 0 {
		j.logger.Info("quote expiry job completed",
			zap.Int64("expired", expired),
			zap.Duration("duration", time.Since(start)))
	}
}
