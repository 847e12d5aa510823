package scoring

import (
	"math"
	"sort"
)

// scoreTolerance treats final scores this close as an exact tie.
const scoreTolerance = 1e-9

// Rank sorts agents by final score descending and assigns ranks 1..N.
// Ties order by agent id ascending, so repeated runs against the same
// snapshot produce identical output. No agent is excluded; callers decide
// how many top entries to act on.
func Rank(agents []ScoredAgent) []ScoredAgent {
	sort.Slice(agents, func(i, j int) bool {
		if math.Abs(agents[i].FinalScore-agents[j].FinalScore) <= scoreTolerance {
			return agents[i].AgentID < agents[j].AgentID
		}
		return agents[i].FinalScore > agents[j].FinalScore
	})
	for i := range agents {
		agents[i].Rank = i + 1
	}
	return agents
}
