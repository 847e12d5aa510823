package events

const (
	StreamName   = "ASTRA_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectRankingComputed(requestID string) string { return "astra.ranking." + requestID + ".computed" }
func SubjectRankingRejected() string                 { return "astra.ranking.rejected" }
func SubjectAgentCreated(agentID string) string      { return "astra.agent." + agentID + ".created" }
