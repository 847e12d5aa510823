package scoring

import (
	"fmt"
	"math"
)

// Signal identifies the independent input a weighted dimension reads from.
// Every weight must bind to its own signal; reusing one signal under two
// weights silently inflates its effective weight.
type Signal string

const (
	SignalOverallRating Signal = "overall_rating"
	SignalLeadSource    Signal = "lead_source_rating"
	SignalDestination   Signal = "destination_rating"
	SignalCommunication Signal = "communication_rating"
	SignalServiceYears  Signal = "normalized_service_years"
	SignalTripVolume    Signal = "normalized_trip_volume"
)

const weightTolerance = 1e-9

// WeightSet defines the relative importance of each scoring dimension.
// All weights must sum to 1.0 (±1e-9 tolerance).
type WeightSet struct {
	OverallRating float64 `yaml:"overall_rating"`
	LeadSource    float64 `yaml:"lead_source"`
	Destination   float64 `yaml:"destination"`
	Communication float64 `yaml:"communication"`
	ServiceYears  float64 `yaml:"service_years"`
	TripVolume    float64 `yaml:"trip_volume"`
}

// DefaultWeights returns the current production weight distribution.
func DefaultWeights() WeightSet {
	return WeightSet{
		OverallRating: 0.30,
		LeadSource:    0.15,
		Destination:   0.15,
		Communication: 0.10,
		ServiceYears:  0.10,
		TripVolume:    0.20,
	}
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	return w.OverallRating + w.LeadSource + w.Destination +
		w.Communication + w.ServiceYears + w.TripVolume
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w WeightSet) Validate() error {
	if math.Abs(w.Sum()-1.0) > weightTolerance {
		return fmt.Errorf("weights sum to %.12f, must sum to 1.0", w.Sum())
	}
	for _, v := range w.asList() {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}

func (w WeightSet) asList() []float64 {
	return []float64{
		w.OverallRating, w.LeadSource, w.Destination,
		w.Communication, w.ServiceYears, w.TripVolume,
	}
}

// Params is the full scoring configuration, passed explicitly rather than
// read from ambient globals so multiple weight regimes can coexist and be
// tested side by side.
type Params struct {
	Weights WeightSet

	// BaselineRating substitutes for a rating dimension the agent has no
	// qualifying history for. Sits below typical observed ratings so that
	// missing experience never advantages an untested agent.
	BaselineRating float64

	TenureDomain     Domain
	TripVolumeDomain Domain

	// TripVolumeFromPool derives the trip volume domain from the observed
	// confirmed-booking spread across the current pool instead of the
	// static TripVolumeDomain.
	TripVolumeFromPool bool
}

// DefaultParams returns the production scoring configuration.
func DefaultParams() Params {
	return Params{
		Weights:            DefaultWeights(),
		BaselineRating:     3.0,
		TenureDomain:       Domain{Min: 2, Max: 18},
		TripVolumeDomain:   Domain{Min: 0, Max: 50},
		TripVolumeFromPool: true,
	}
}

// Validate applies every configuration-time check. A Params that fails here
// must never reach request handling.
func (p Params) Validate() error {
	if err := p.Weights.Validate(); err != nil {
		return err
	}
	if p.BaselineRating < targetMin || p.BaselineRating > targetMax {
		return fmt.Errorf("baseline rating %g outside [%g,%g]", p.BaselineRating, targetMin, targetMax)
	}
	if err := p.TenureDomain.Validate(); err != nil {
		return fmt.Errorf("tenure: %w", err)
	}
	if err := p.TripVolumeDomain.Validate(); err != nil {
		return fmt.Errorf("trip volume: %w", err)
	}
	return validateDimensionSignals()
}

// dimensionSignals is the binding table between weight entries and input
// signals, in scoring order.
var dimensionSignals = []Signal{
	SignalOverallRating,
	SignalLeadSource,
	SignalDestination,
	SignalCommunication,
	SignalServiceYears,
	SignalTripVolume,
}

// validateDimensionSignals rejects a binding table that reads the same
// signal under more than one weight. An earlier formula double-counted the
// overall rating this way.
func validateDimensionSignals() error {
	seen := make(map[Signal]bool, len(dimensionSignals))
	for _, sig := range dimensionSignals {
		if seen[sig] {
			return fmt.Errorf("signal %q bound to more than one weight", sig)
		}
		seen[sig] = true
	}
	return nil
}
