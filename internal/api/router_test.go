package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/acbryeans/astra-space-assignment/internal/scoring"
	"github.com/acbryeans/astra-space-assignment/internal/store"
)

// Mocks

type mockStore struct {
	snap   *store.Snapshot
	agents []*store.Agent
}

func (m *mockStore) Snapshot(_ context.Context) (*store.Snapshot, error) { return m.snap, nil }
func (m *mockStore) ListAgents(_ context.Context) ([]*store.Agent, error) {
	return m.agents, nil
}
func (m *mockStore) CreateAgent(_ context.Context, a *store.Agent) error {
	a.ID = int64(len(m.agents) + 1)
	a.CreatedAt = time.Now()
	m.agents = append(m.agents, a)
	return nil
}
func (m *mockStore) CreateAssignment(_ context.Context, _ *store.Assignment) error { return nil }
func (m *mockStore) Stats(_ context.Context) (*store.FleetStats, error) {
	return &store.FleetStats{TotalAgents: len(m.agents)}, nil
}
func (m *mockStore) Close() error { return nil }

type mockEvents struct {
	published []string
}

func (m *mockEvents) Publish(subject string, _ interface{}) error {
	m.published = append(m.published, subject)
	return nil
}
func (m *mockEvents) Close() {}

func booked(agentID int64, lead, comm, dest string, status store.BookingStatus) *store.Assignment {
	a := &store.Assignment{
		ID:                  uuid.New(),
		AgentID:             agentID,
		LeadSource:          lead,
		CommunicationMethod: comm,
	}
	if dest != "" {
		a.Booking = &store.Booking{ID: uuid.New(), Destination: dest, Status: status}
	}
	return a
}

func testSnapshot() *store.Snapshot {
	return &store.Snapshot{
		Agents: []*store.Agent{
			{ID: 1, Name: "Aria Chen", Rating: 4.8, Department: "Outer Planets", YearsOfService: 12},
			{ID: 2, Name: "Marcus Webb", Rating: 4.2, Department: "Inner System", YearsOfService: 3},
		},
		Assignments: []*store.Assignment{
			booked(1, "Organic", "Phone Call", "Europa", store.BookingConfirmed),
			booked(1, "Organic", "Phone Call", "Mars", store.BookingConfirmed),
			booked(2, "Bought", "Text", "Mars", store.BookingCancelled),
		},
		TakenAt: time.Now(),
	}
}

func setupTestRouter(t *testing.T) (http.Handler, *mockStore, *mockEvents) {
	t.Helper()
	ms := &mockStore{snap: testSnapshot()}
	ms.agents = ms.snap.Agents
	me := &mockEvents{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine, err := scoring.NewEngine(ms, scoring.DefaultParams(), logger)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	router := NewRouter(ms, engine, me, "test-token", logger)
	return router, ms, me
}

func TestAgentsRequiresAdminToken(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/agents", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest("GET", "/api/v1/agents", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with token, got %d", rec.Code)
	}
}

func TestStatsEndpoint(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/stats", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestMetricsRouterHealth(t *testing.T) {
	router := NewMetricsRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest("GET", "/metrics", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 from /metrics, got %d", rec.Code)
	}
}
