package events

import "time"

// RankingComputedEvent announces a completed ranking so downstream
// consumers (assignment workflow, audit) can react without polling.
type RankingComputedEvent struct {
	RequestID      string    `json:"request_id"`
	CustomerName   string    `json:"customer_name"`
	Destination    string    `json:"destination"`
	LeadSource     string    `json:"lead_source"`
	TopAgentID     int64     `json:"top_agent_id"`
	TopAgentName   string    `json:"top_agent_name"`
	AgentCount     int       `json:"agent_count"`
	SkippedRecords int       `json:"skipped_records,omitempty"`
	ComputedAt     time.Time `json:"computed_at"`
}

// RankingRejectedEvent announces a profile that failed validation.
type RankingRejectedEvent struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type AgentCreatedEvent struct {
	AgentID int64  `json:"agent_id"`
	Name    string `json:"name"`
}
