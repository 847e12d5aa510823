package scoring

import (
	"log/slog"

	"github.com/acbryeans/astra-space-assignment/internal/store"
)

// Aggregator folds the historical record collections into one
// PerformanceProfile per agent, conditioned on the customer profile.
type Aggregator struct {
	logger *slog.Logger
}

func NewAggregator(logger *slog.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// conditionTally accumulates the conditional rating means. The value being
// averaged is the agent's overall rating (the history carries no
// per-assignment rating), so each mean is a presence indicator weighted by
// the static rating.
type conditionTally struct {
	leadSourceSum    float64
	leadSourceN      int
	destinationSum   float64
	destinationN     int
	communicationSum float64
	communicationN   int
}

// Aggregate produces exactly one profile per agent in the snapshot.
// Agents with no history stay in the output with absent conditional
// ratings and zero counts — left-join semantics. Assignments referencing
// an unknown agent are skipped and counted, never fatal.
func (a *Aggregator) Aggregate(profile CustomerProfile, snap *store.Snapshot) ([]*PerformanceProfile, int) {
	profiles := make([]*PerformanceProfile, 0, len(snap.Agents))
	byID := make(map[int64]*PerformanceProfile, len(snap.Agents))
	tallies := make(map[int64]*conditionTally, len(snap.Agents))

	for _, agent := range snap.Agents {
		pp := &PerformanceProfile{
			AgentID:        agent.ID,
			Name:           agent.Name,
			Department:     agent.Department,
			Rating:         agent.Rating,
			YearsOfService: agent.YearsOfService,
		}
		profiles = append(profiles, pp)
		byID[agent.ID] = pp
		tallies[agent.ID] = &conditionTally{}
	}

	skipped := 0
	for _, as := range snap.Assignments {
		pp, ok := byID[as.AgentID]
		if !ok {
			skipped++
			a.logger.Warn("assignment references unknown agent, skipping",
				"assignment_id", as.ID, "agent_id", as.AgentID)
			continue
		}
		tally := tallies[as.AgentID]

		if as.LeadSource == profile.LeadSource {
			tally.leadSourceSum += pp.Rating
			tally.leadSourceN++
		}
		if as.CommunicationMethod == profile.CommunicationMethod {
			tally.communicationSum += pp.Rating
			tally.communicationN++
		}

		if as.Booking != nil {
			// Volume counts are agent-wide, not filtered by the request.
			pp.TotalBookings++
			switch as.Booking.Status {
			case store.BookingConfirmed:
				pp.ConfirmedBookings++
			case store.BookingCancelled:
				pp.CancelledBookings++
			}
			if as.Booking.Destination == profile.Destination {
				tally.destinationSum += pp.Rating
				tally.destinationN++
			}
		}
	}

	for _, pp := range profiles {
		tally := tallies[pp.AgentID]
		if tally.leadSourceN > 0 {
			mean := tally.leadSourceSum / float64(tally.leadSourceN)
			pp.LeadSourceRating = &mean
		}
		if tally.destinationN > 0 {
			mean := tally.destinationSum / float64(tally.destinationN)
			pp.DestinationRating = &mean
		}
		if tally.communicationN > 0 {
			mean := tally.communicationSum / float64(tally.communicationN)
			pp.CommunicationRating = &mean
		}
		// Zero bookings means zero risk, not an undefined rate.
		if pp.TotalBookings > 0 {
			pp.CancellationRate = float64(pp.CancelledBookings) / float64(pp.TotalBookings)
		}
	}

	return profiles, skipped
}
