package scoring

import (
	"log/slog"
)

// SubScore captures one weighted dimension's contribution to the base score.
type SubScore struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Weight    float64 `json:"weight"`
	Weighted  float64 `json:"weighted"`
	Available bool    `json:"available"`
	Reason    string  `json:"reason"`
}

// Scorer combines the normalized and rating-based sub-scores into a base
// score, then applies the multiplicative cancellation-rate penalty.
type Scorer struct {
	params Params
	logger *slog.Logger
}

// NewScorer validates the scoring configuration up front; an invalid weight
// vector or domain never reaches request handling.
func NewScorer(params Params, logger *slog.Logger) (*Scorer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{params: params, logger: logger}, nil
}

// Score computes the full scoring output for one agent. tenure and volume
// are the normalization scales for years of service and confirmed bookings.
func (s *Scorer) Score(pp *PerformanceProfile, tenure, volume *LinearScale) ScoredAgent {
	normYears := tenure.Normalize(float64(pp.YearsOfService))
	normVolume := volume.Normalize(float64(pp.ConfirmedBookings))

	subs := []SubScore{
		{Name: string(SignalOverallRating), Value: pp.Rating, Available: true, Reason: "agent rating"},
		s.ratingSub(SignalLeadSource, pp.LeadSourceRating),
		s.ratingSub(SignalDestination, pp.DestinationRating),
		s.ratingSub(SignalCommunication, pp.CommunicationRating),
		{Name: string(SignalServiceYears), Value: normYears, Available: true, Reason: "normalized tenure"},
		{Name: string(SignalTripVolume), Value: normVolume, Available: true, Reason: "normalized confirmed bookings"},
	}

	w := s.params.Weights
	weights := []float64{
		w.OverallRating, w.LeadSource, w.Destination,
		w.Communication, w.ServiceYears, w.TripVolume,
	}

	var base float64
	for i := range subs {
		subs[i].Weight = weights[i]
		subs[i].Weighted = subs[i].Value * weights[i]
		base += subs[i].Weighted
	}

	// Multiplicative penalty, proportional to base quality.
	final := base * (1.0 - pp.CancellationRate)

	return ScoredAgent{
		AgentID:           pp.AgentID,
		Name:              pp.Name,
		Department:        pp.Department,
		Rating:            pp.Rating,
		YearsOfService:    pp.YearsOfService,
		TotalBookings:     pp.TotalBookings,
		ConfirmedBookings: pp.ConfirmedBookings,
		CancelledBookings: pp.CancelledBookings,
		CancellationRate:  pp.CancellationRate,

		NormalizedServiceYears: normYears,
		NormalizedTripVolume:   normVolume,

		BaseScore:  base,
		FinalScore: final,

		SubScores: subs,
	}
}

// ratingSub substitutes the conservative baseline whenever the aggregator
// produced no qualifying history for a rating dimension. Absence of data is
// a business rule here, not an error condition.
func (s *Scorer) ratingSub(sig Signal, v *float64) SubScore {
	if v == nil {
		return SubScore{
			Name:      string(sig),
			Value:     s.params.BaselineRating,
			Available: false,
			Reason:    "no qualifying history, baseline",
		}
	}
	return SubScore{Name: string(sig), Value: *v, Available: true, Reason: "from history"}
}
