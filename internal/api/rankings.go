package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/acbryeans/astra-space-assignment/internal/events"
	"github.com/acbryeans/astra-space-assignment/internal/scoring"
)

type RankingsHandler struct {
	engine *scoring.Engine
	events events.Client
}

func NewRankingsHandler(engine *scoring.Engine, ev events.Client) *RankingsHandler {
	return &RankingsHandler{engine: engine, events: ev}
}

// Create handles POST /api/v1/rankings. The body is a customer profile;
// the response is the full ranked agent list with per-dimension breakdown.
func (h *RankingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var profile scoring.CustomerProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	start := time.Now()
	result, err := h.engine.Rank(r.Context(), profile)
	if err != nil {
		var verr *scoring.ValidationError
		if errors.As(err, &verr) {
			rankingsTotal.WithLabelValues("rejected").Inc()
			if h.events != nil {
				_ = h.events.Publish(events.SubjectRankingRejected(), events.RankingRejectedEvent{
					Field:  verr.Field,
					Reason: verr.Reason,
				})
			}
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error()})
			return
		}
		rankingsTotal.WithLabelValues("error").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	rankingDuration.Observe(time.Since(start).Seconds())
	rankingsTotal.WithLabelValues("ok").Inc()
	if result.SkippedRecords > 0 {
		integritySkips.Add(float64(result.SkippedRecords))
	}

	if h.events != nil && len(result.Agents) > 0 {
		top := result.Agents[0]
		_ = h.events.Publish(events.SubjectRankingComputed(result.RequestID.String()), events.RankingComputedEvent{
			RequestID:      result.RequestID.String(),
			CustomerName:   result.Profile.CustomerName,
			Destination:    result.Profile.Destination,
			LeadSource:     result.Profile.LeadSource,
			TopAgentID:     top.AgentID,
			TopAgentName:   top.Name,
			AgentCount:     len(result.Agents),
			SkippedRecords: result.SkippedRecords,
			ComputedAt:     result.ComputedAt,
		})
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
