package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/acbryeans/astra-space-assignment/internal/events"
	"github.com/acbryeans/astra-space-assignment/internal/store"
)

type AdminHandler struct {
	store  store.Store
	events events.Client
}

func NewAdminHandler(s store.Store, ev events.Client) *AdminHandler {
	return &AdminHandler{store: s, events: ev}
}

// Agents handles GET /api/v1/agents.
func (h *AdminHandler) Agents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.store.ListAgents(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if agents == nil {
		agents = []*store.Agent{}
	}
	writeJSON(w, http.StatusOK, agents)
}

type CreateAgentRequest struct {
	Name           string  `json:"name"`
	Rating         float64 `json:"average_customer_service_rating"`
	Department     string  `json:"department_name,omitempty"`
	YearsOfService int     `json:"years_of_service"`
}

// CreateAgent handles POST /api/v1/agents.
func (h *AdminHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var req CreateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name required"})
		return
	}
	if req.Rating < 1.0 || req.Rating > 5.0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "rating must be in [1.0, 5.0]"})
		return
	}
	if req.YearsOfService < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "years_of_service must be non-negative"})
		return
	}

	agent := &store.Agent{
		Name:           req.Name,
		Rating:         req.Rating,
		Department:     req.Department,
		YearsOfService: req.YearsOfService,
	}
	if err := h.store.CreateAgent(r.Context(), agent); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectAgentCreated(strconv.FormatInt(agent.ID, 10)), events.AgentCreatedEvent{
			AgentID: agent.ID,
			Name:    agent.Name,
		})
	}

	writeJSON(w, http.StatusCreated, agent)
}

// Stats handles GET /api/v1/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
