package availability_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookwell/booking-api/internal/availability"
	"github.com/bookwell/booking-api/internal/config"
)

func newTestClient(t *testing.T, baseURL string) *availability.Client {
	t.Helper()
	client := availability.NewClient(&config.AvailabilityConfig{
		Enabled:        true,
		BaseURL:        baseURL,
		APIKey:         "test-key",
		RequestTimeout: 2,
	}, zap.NewNop())
	require.NotNil(t, client)
	return client
}

func TestNewClient_Disabled(t *testing.T) {
	client := availability.NewClient(&config.AvailabilityConfig{Enabled: false}, zap.NewNop())
	assert.Nil(t, client)

	client = availability.NewClient(&config.AvailabilityConfig{Enabled: true, BaseURL: ""}, zap.NewNop())
	assert.Nil(t, client, "enabled without a base URL yields no client")
}

func TestClient_Query(t *testing.T) {
	noraID := uuid.New()
	jonasID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/availability/query", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2026-03-01", req["date"])
		assert.Equal(t, "10:00", req["startTime"])
		assert.Equal(t, float64(45), req["durationMinutes"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"available": []map[string]string{
				{"id": noraID.String(), "firstName": "Nora", "lastName": "Berg", "role": "Stylist"},
			},
			"busy": []map[string]string{
				{"id": jonasID.String(), "firstName": "Jonas", "lastName": "Lien", "role": "Stylist", "reason": "conflicting booking"},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	partition, err := client.Query(context.Background(), "2026-03-01", "10:00", 45)
	require.NoError(t, err)

	require.Len(t, partition.Available, 1)
	assert.Equal(t, noraID, partition.Available[0].ID)
	assert.Equal(t, "Nora", partition.Available[0].FirstName)
	assert.Equal(t, "Stylist", partition.Available[0].Role)

	require.Len(t, partition.Busy, 1)
	assert.Equal(t, jonasID, partition.Busy[0].ID)
	assert.Equal(t, "conflicting booking", partition.Busy[0].Reason)
}

func TestClient_QueryNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	partition, err := client.Query(context.Background(), "2026-03-01", "10:00", 45)
	assert.Error(t, err)
	assert.Nil(t, partition)
}

func TestClient_QueryBadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Query(context.Background(), "2026-03-01", "10:00", 45)
	assert.Error(t, err)
}

func TestClient_QueryUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed up front: every request fails at the transport

	client := newTestClient(t, server.URL)
	partition, err := client.Query(context.Background(), "2026-03-01", "10:00", 45)
	assert.Error(t, err)
	assert.Nil(t, partition)
}

func TestClient_NilClientQuery(t *testing.T) {
	var client *availability.Client
	partition, err := client.Query(context.Background(), "2026-03-01", "10:00", 45)
	assert.Error(t, err)
	assert.Nil(t, partition)
}

func TestClient_HealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		status := newTestClient(t, server.URL).HealthCheck(context.Background())
		assert.Equal(t, "healthy", status.Status)
		assert.Empty(t, status.Error)
	})

	t.Run("non-OK status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		status := newTestClient(t, server.URL).HealthCheck(context.Background())
		assert.Equal(t, "unhealthy", status.Status)
		assert.NotEmpty(t, status.Error)
	})

	t.Run("nil client reports disabled", func(t *testing.T) {
		var client *availability.Client
		status := client.HealthCheck(context.Background())
		assert.Equal(t, "disabled", status.Status)
	})
}
