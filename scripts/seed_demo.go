// seed_demo.go is a standalone script that creates the schema and seeds a
// demo fleet of agents with assignment/booking history.
//
// Usage:
//
//	go run scripts/seed_demo.go -db postgres://localhost/astra
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS astra_agents (
	agent_id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	rating DOUBLE PRECISION NOT NULL CHECK (rating >= 1.0 AND rating <= 5.0),
	department TEXT,
	years_of_service INT NOT NULL DEFAULT 0 CHECK (years_of_service >= 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS astra_assignments (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	agent_id BIGINT NOT NULL REFERENCES astra_agents(agent_id),
	lead_source TEXT NOT NULL,
	communication_method TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS astra_bookings (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	assignment_id UUID NOT NULL UNIQUE REFERENCES astra_assignments(id),
	destination TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

type demoAgent struct {
	name       string
	rating     float64
	department string
	years      int
	trips      int
}

var demoAgents = []demoAgent{
	{"Aria Chen", 4.8, "Outer Planets", 12, 14},
	{"Marcus Webb", 4.2, "Inner System", 3, 6},
	{"Elena Rodriguez", 3.9, "Outer Planets", 0, 0},
	{"Dev Patel", 4.5, "Jovian Moons", 8, 11},
	{"Yuki Tanaka", 4.1, "Inner System", 5, 7},
	{"Omar Haddad", 3.6, "Jovian Moons", 15, 9},
}

var (
	leadSources   = []string{"Organic", "Bought"}
	commMethods   = []string{"Phone Call", "Text"}
	destinations  = []string{"Mars", "Europa", "Venus", "Titan", "Ganymede"}
	bookingStates = []string{"Confirmed", "Confirmed", "Confirmed", "Cancelled", "Pending"}
)

func main() {
	dbURL := flag.String("db", "postgres://localhost/astra", "database URL")
	seed := flag.Int64("seed", 42, "rng seed for reproducible fixtures")
	flag.Parse()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, *dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))

	for _, da := range demoAgents {
		var agentID int64
		err := pool.QueryRow(ctx, `
			INSERT INTO astra_agents (name, rating, department, years_of_service)
			VALUES ($1, $2, $3, $4)
			RETURNING agent_id`,
			da.name, da.rating, da.department, da.years,
		).Scan(&agentID)
		if err != nil {
			log.Fatalf("insert agent %s: %v", da.name, err)
		}

		for i := 0; i < da.trips; i++ {
			var assignmentID string
			err := pool.QueryRow(ctx, `
				INSERT INTO astra_assignments (agent_id, lead_source, communication_method)
				VALUES ($1, $2, $3)
				RETURNING id`,
				agentID,
				leadSources[rng.Intn(len(leadSources))],
				commMethods[rng.Intn(len(commMethods))],
			).Scan(&assignmentID)
			if err != nil {
				log.Fatalf("insert assignment for %s: %v", da.name, err)
			}

			// Roughly one in five assignments never reached a booking.
			if rng.Intn(5) == 0 {
				continue
			}
			_, err = pool.Exec(ctx, `
				INSERT INTO astra_bookings (assignment_id, destination, status)
				VALUES ($1, $2, $3)`,
				assignmentID,
				destinations[rng.Intn(len(destinations))],
				bookingStates[rng.Intn(len(bookingStates))],
			)
			if err != nil {
				log.Fatalf("insert booking for %s: %v", da.name, err)
			}
		}

		log.Printf("seeded agent %s (id=%d, trips=%d)", da.name, agentID, da.trips)
	}

	log.Println("done")
}
