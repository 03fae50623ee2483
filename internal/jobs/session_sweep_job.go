package jobs

import (
	"time"

	"go.uber.org/zap"
)

// SessionSweepJobName is the name of the idle session sweep job
const SessionSweepJobName = "session_sweep"

// SessionSweeper defines the interface for reclaiming idle quoting sessions.
// This interface allows the job to call the service without importing the service package directly.
type SessionSweeper interface {
	// SweepIdle removes sessions whose last activity is older than ttl and
	// returns how many were removed.
	SweepIdle(ttl time.Duration) int

	// OpenCount returns the number of sessions currently held in memory.
	OpenCount() int
}

// SessionSweepJob evicts quoting sessions that have been idle for longer
// than the configured TTL so abandoned drafts do not pin memory.
type SessionSweepJob struct {
	sessions SessionSweeper
	ttl      time.Duration
	logger   *zap.Logger
}

// NewSessionSweepJob creates a new idle session sweep job.
func NewSessionSweepJob(sessions SessionSweeper, ttl time.Duration, logger *zap.Logger) *SessionSweepJob {
	return &SessionSweepJob{
		sessions: sessions,
		ttl:      ttl,
		logger:   logger,
	}
}

// Run executes the sweep. This is called by the scheduler according to the
// cron expression.
func (j *SessionSweepJob) Run() {
	start := time.Now()

	removed := j.sessions.SweepIdle(j.ttl)
	if removed == 0 {
		return
	}

	j.logger.Info("idle session sweep completed",
		zap.Int("removed", removed),
		zap.Int("open", j.sessions.OpenCount()),
		zap.Duration("ttl", j.ttl),
		zap.Duration("duration", time.Since(start)))
}
