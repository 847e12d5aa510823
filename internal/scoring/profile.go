package scoring

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Closed enumerations for customer profile fields. The calling layer is
// expected to validate against these before handing a profile to the
// engine, but the engine re-checks and rejects rather than scoring nonsense.
var (
	CommunicationMethods = []string{"Phone Call", "Text"}
	LeadSources          = []string{"Organic", "Bought"}
	Destinations         = []string{"Mars", "Europa", "Venus", "Titan", "Ganymede"}
	LaunchLocations      = []string{
		"Kennedy Space Center",
		"Dallas-Fort Worth Launch Complex",
		"New York Orbital Gateway",
		"Tokyo Spaceport Terminal",
		"Dubai Interplanetary Hub",
		"London Ascension Platform",
		"Sydney Stellar Port",
	}
)

// CustomerProfile is the incoming customer the agent pool is ranked against.
type CustomerProfile struct {
	CommunicationMethod string `json:"communication_method"`
	LeadSource          string `json:"lead_source"`
	Destination         string `json:"destination"`
	LaunchLocation      string `json:"launch_location"`
	CustomerName        string `json:"customer_name"`
}

// Validate checks every categorical field against its closed enumeration
// and that the customer name is non-empty after trimming.
func (p CustomerProfile) Validate() error {
	if strings.TrimSpace(p.CustomerName) == "" {
		return &ValidationError{Field: "customer_name", Reason: "must be non-empty"}
	}
	if !inSet(CommunicationMethods, p.CommunicationMethod) {
		return &ValidationError{Field: "communication_method", Value: p.CommunicationMethod, Reason: "not a known communication method"}
	}
	if !inSet(LeadSources, p.LeadSource) {
		return &ValidationError{Field: "lead_source", Value: p.LeadSource, Reason: "not a known lead source"}
	}
	if !inSet(Destinations, p.Destination) {
		return &ValidationError{Field: "destination", Value: p.Destination, Reason: "not a known destination"}
	}
	if !inSet(LaunchLocations, p.LaunchLocation) {
		return &ValidationError{Field: "launch_location", Value: p.LaunchLocation, Reason: "not a known launch location"}
	}
	return nil
}

func inSet(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// PerformanceProfile is one agent's history conditioned on a customer
// profile, recomputed fresh for every ranking request. A nil rating field
// means the agent has no qualifying records for that dimension — absent,
// not zero.
type PerformanceProfile struct {
	AgentID        int64
	Name           string
	Department     string
	Rating         float64
	YearsOfService int

	LeadSourceRating    *float64
	DestinationRating   *float64
	CommunicationRating *float64

	// Volume and risk counts run across ALL bookings, regardless of how
	// they match the current request.
	TotalBookings     int
	ConfirmedBookings int
	CancelledBookings int
	CancellationRate  float64
}

// ScoredAgent is a PerformanceProfile enriched with normalized metrics,
// scores, and the final rank (1 = best).
type ScoredAgent struct {
	AgentID           int64   `json:"agent_id"`
	Name              string  `json:"name"`
	Department        string  `json:"department_name,omitempty"`
	Rating            float64 `json:"average_customer_service_rating"`
	YearsOfService    int     `json:"years_of_service"`
	TotalBookings     int     `json:"total_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
	CancellationRate  float64 `json:"cancellation_rate"`

	NormalizedServiceYears float64 `json:"normalized_service_years"`
	NormalizedTripVolume   float64 `json:"normalized_trip_volume"`

	BaseScore  float64 `json:"base_score"`
	FinalScore float64 `json:"final_score"`
	Rank       int     `json:"rank"`

	SubScores []SubScore `json:"sub_scores"`
}

// RankingResult is the full response for one ranking request: the ordered
// agents plus an echo of the input and timestamps for audit traceability.
type RankingResult struct {
	RequestID      uuid.UUID       `json:"request_id"`
	Profile        CustomerProfile `json:"customer_profile"`
	ComputedAt     time.Time       `json:"computed_at"`
	SnapshotAt     time.Time       `json:"snapshot_taken_at"`
	Agents         []ScoredAgent   `json:"agents"`
	SkippedRecords int             `json:"skipped_records,omitempty"`
}
