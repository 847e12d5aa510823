package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const agentColumns = `agent_id, name, rating, department, years_of_service, created_at`

// Snapshot reads agents and assignments (with their linked bookings) inside
// one REPEATABLE READ transaction, so the ranking engine scores against a
// consistent view even while bookings are being written.
func (s *PostgresStore) Snapshot(ctx context.Context) (*Snapshot, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback(ctx)

	agents, err := queryAgents(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("snapshot agents: %w", err)
	}

	assignments, err := queryAssignments(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("snapshot assignments: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit snapshot tx: %w", err)
	}

	return &Snapshot{
		Agents:      agents,
		Assignments: assignments,
		TakenAt:     time.Now().UTC(),
	}, nil
}

func (s *PostgresStore) ListAgents(ctx context.Context) ([]*Agent, error) {
	return queryAgents(ctx, s.pool)
}

func (s *PostgresStore) CreateAgent(ctx context.Context, a *Agent) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO astra_agents (name, rating, department, years_of_service)
		VALUES ($1, $2, $3, $4)
		RETURNING agent_id, created_at`,
		a.Name, a.Rating, a.Department, a.YearsOfService,
	).Scan(&a.ID, &a.CreatedAt)
}

// CreateAssignment inserts the assignment and its booking (if any) in one
// transaction so a booking can never reference a missing assignment.
func (s *PostgresStore) CreateAssignment(ctx context.Context, a *Assignment) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `
		INSERT INTO astra_assignments (agent_id, lead_source, communication_method)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		a.AgentID, a.LeadSource, a.CommunicationMethod,
	).Scan(&a.ID, &a.CreatedAt); err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}

	if a.Booking != nil {
		if err := tx.QueryRow(ctx, `
			INSERT INTO astra_bookings (assignment_id, destination, status)
			VALUES ($1, $2, $3)
			RETURNING id, created_at`,
			a.ID, a.Booking.Destination, a.Booking.Status,
		).Scan(&a.Booking.ID, &a.Booking.CreatedAt); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (s *PostgresStore) Stats(ctx context.Context) (*FleetStats, error) {
	stats := &FleetStats{}
	err := s.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM astra_agents),
			(SELECT COUNT(*) FROM astra_assignments),
			(SELECT COUNT(*) FROM astra_bookings),
			(SELECT COALESCE(AVG(rating), 0) FROM astra_agents)`,
	).Scan(&stats.TotalAgents, &stats.TotalAssignments, &stats.TotalBookings, &stats.AvgRating)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// querier is satisfied by both pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func queryAgents(ctx context.Context, q querier) ([]*Agent, error) {
	rows, err := q.Query(ctx, `
		SELECT `+agentColumns+`
		FROM astra_agents
		ORDER BY agent_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []*Agent
	for rows.Next() {
		a := &Agent{}
		var department sql.NullString
		if err := rows.Scan(&a.ID, &a.Name, &a.Rating, &department, &a.YearsOfService, &a.CreatedAt); err != nil {
			return nil, err
		}
		if department.Valid {
			a.Department = department.String
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

func queryAssignments(ctx context.Context, q querier) ([]*Assignment, error) {
	rows, err := q.Query(ctx, `
		SELECT a.id, a.agent_id, a.lead_source, a.communication_method, a.created_at,
			b.id, b.destination, b.status, b.created_at
		FROM astra_assignments a
		LEFT JOIN astra_bookings b ON b.assignment_id = a.id
		ORDER BY a.created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*Assignment
	for rows.Next() {
		a := &Assignment{}
		var bookingID uuid.NullUUID
		var destination, status sql.NullString
		var bookingCreated sql.NullTime
		if err := rows.Scan(
			&a.ID, &a.AgentID, &a.LeadSource, &a.CommunicationMethod, &a.CreatedAt,
			&bookingID, &destination, &status, &bookingCreated,
		); err != nil {
			return nil, err
		}
		if bookingID.Valid {
			a.Booking = &Booking{
				ID:          bookingID.UUID,
				Destination: destination.String,
				Status:      BookingStatus(status.String),
				CreatedAt:   bookingCreated.Time,
			}
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
