// Package availability provides read-only connectivity to the external
// scheduling service that knows which staff members are free for a given
// window. Its answers are advisory: callers degrade to "whole roster
// available" whenever the service is disabled, unreachable or slow.
package availability

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bookwell/booking-api/internal/config"
	"github.com/bookwell/booking-api/internal/domain"
	"github.com/bookwell/booking-api/internal/quote"
)

const (
	defaultRequestTimeout     = 5 * time.Second
	defaultHealthCheckTimeout = 5 * time.Second

	apiKeyHeader = "X-Api-Key"
)

// Client queries the external availability service over HTTP. A nil Client
// is valid and reports every query as failed, which callers treat as
// fail-open.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// HealthStatus is the health check result for the availability connection
type HealthStatus struct {
	Status  string        `json:"status"`
	Latency time.Duration `json:"latency_ms"`
	Error   string        `json:"error,omitempty"`
}

// queryRequest is the wire format of an availability query
type queryRequest struct {
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// queryResponse is the wire format of the service's partition answer
type queryResponse struct {
	Available []staffEntry `json:"available"`
	Busy      []busyEntry  `json:"busy"`
}

type staffEntry struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type busyEntry struct {
	staffEntry
	Reason string `json:"reason"`
}

// NewClient creates a new availability client with the given configuration.
// Returns nil if the service is not enabled or not configured; a nil client
// is safe to use everywhere.
func NewClient(cfg *config.AvailabilityConfig, logger *zap.Logger) *Client {
	if cfg == nil || !cfg.Enabled {
		logger.Info("Availability service disabled")
		return nil
	}
	if cfg.BaseURL == "" {
		logger.Warn("Availability service enabled but base URL missing, skipping")
		return nil
	}

	timeout := cfg.RequestTimeoutDuration()
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	logger.Info("Initializing availability client",
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("request_timeout", timeout),
	)

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

// Query asks the scheduling service which roster members can take the given
// window. It implements quote.Gate. Any transport, status or decoding
// problem comes back as an error; the session layer turns that into a
// full-roster answer.
func (c *Client) Query(ctx context.Context, date, startTime string, durationMinutes int) (*quote.Partition, error) {
	if c == nil {
		return nil, fmt.Errorf("availability client not initialized")
	}

	body, err := json.Marshal(queryRequest{
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode availability query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/availability/query", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build availability request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Availability query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, fmt.Errorf("availability query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Availability service returned non-OK status",
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("availability service returned status %d", resp.StatusCode)
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode availability response: %w", err)
	}

	partition := &quote.Partition{
		Available: make([]domain.StaffMember, 0, len(decoded.Available)),
		Busy:      make([]quote.BusyStaff, 0, len(decoded.Busy)),
	}
	for _, entry := range decoded.Available {
		partition.Available = append(partition.Available, entry.toStaffMember())
	}
	for _, entry := range decoded.Busy {
		partition.Busy = append(partition.Busy, quote.BusyStaff{
			StaffMember: entry.toStaffMember(),
			Reason:      entry.Reason,
		})
	}

	c.logger.Debug("Availability query completed",
		zap.Int("available", len(partition.Available)),
		zap.Int("busy", len(partition.Busy)),
		zap.Duration("duration", time.Since(start)),
	)

	return partition, nil
}

// HealthCheck pings the availability service's health endpoint
func (c *Client) HealthCheck(ctx context.Context) *HealthStatus {
	if c == nil {
		return &HealthStatus{Status: "disabled"}
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultHealthCheckTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return &HealthStatus{Status: "unhealthy", Error: err.Error()}
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(start)

	status := &HealthStatus{Latency: latency}
	if err != nil {
		c.logger.Warn("Availability health check failed",
			zap.Error(err),
			zap.Duration("latency", latency),
		)
		status.Status = "unhealthy"
		status.Error = err.Error()
		return status
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		status.Status = "unhealthy"
		status.Error = fmt.Sprintf("health endpoint returned status %d", resp.StatusCode)
		return status
	}

	status.Status = "healthy"
	return status
}

func (e staffEntry) toStaffMember() domain.StaffMember {
	sm := domain.StaffMember{
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Role:      e.Role,
		IsActive:  true,
	}
	if id, err := uuid.Parse(e.ID); err == nil {
		sm.ID = id
	}
	return sm
}
