package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	BookingPending   BookingStatus = "Pending"
)

// Agent is a service agent eligible for customer assignment.
type Agent struct {
	ID             int64     `json:"agent_id"`
	Name           string    `json:"name"`
	Rating         float64   `json:"average_customer_service_rating"`
	Department     string    `json:"department_name,omitempty"`
	YearsOfService int       `json:"years_of_service"`
	CreatedAt      time.Time `json:"created_at"`
}

// Assignment records one historical customer-to-agent assignment and the
// channel it came through. An assignment carries zero or one booking.
type Assignment struct {
	ID                  uuid.UUID `json:"id"`
	AgentID             int64     `json:"agent_id"`
	LeadSource          string    `json:"lead_source"`
	CommunicationMethod string    `json:"communication_method"`
	Booking             *Booking  `json:"booking,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// Booking is the trip outcome of an assignment.
type Booking struct {
	ID          uuid.UUID     `json:"id"`
	Destination string        `json:"destination"`
	Status      BookingStatus `json:"booking_status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Snapshot is a consistent read of everything the ranking engine scores
// against. All records come from a single transaction so one request never
// sees a partially applied update.
type Snapshot struct {
	Agents      []*Agent
	Assignments []*Assignment
	TakenAt     time.Time
}

type FleetStats struct {
	TotalAgents      int     `json:"total_agents"`
	TotalAssignments int     `json:"total_assignments"`
	TotalBookings    int     `json:"total_bookings"`
	AvgRating        float64 `json:"avg_rating"`
}

type Store interface {
	Snapshot(ctx context.Context) (*Snapshot, error)

	ListAgents(ctx context.Context) ([]*Agent, error)
	CreateAgent(ctx context.Context, a *Agent) error
	CreateAssignment(ctx context.Context, a *Assignment) error

	Stats(ctx context.Context) (*FleetStats, error)

	Close() error
}
