package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/acbryeans/astra-space-assignment/internal/store"
)

// Engine runs the full ranking pipeline for one customer profile:
// validate → snapshot → aggregate → normalize → score → rank. It holds no
// mutable state between requests, so concurrent requests need no
// coordination.
type Engine struct {
	store      store.Store
	params     Params
	scorer     *Scorer
	aggregator *Aggregator
	tenure     *LinearScale
	logger     *slog.Logger
}

func NewEngine(st store.Store, params Params, logger *slog.Logger) (*Engine, error) {
	scorer, err := NewScorer(params, logger)
	if err != nil {
		return nil, err
	}
	tenure, err := NewLinearScale(params.TenureDomain)
	if err != nil {
		return nil, fmt.Errorf("tenure scale: %w", err)
	}
	// The static volume domain is validated here even when the pool-derived
	// domain is preferred, so a bad config can never surface mid-request.
	if _, err := NewLinearScale(params.TripVolumeDomain); err != nil {
		return nil, fmt.Errorf("trip volume scale: %w", err)
	}
	return &Engine{
		store:      st,
		params:     params,
		scorer:     scorer,
		aggregator: NewAggregator(logger),
		tenure:     tenure,
		logger:     logger,
	}, nil
}

// Rank produces the ordered best-to-worst agent list for one customer.
func (e *Engine) Rank(ctx context.Context, profile CustomerProfile) (*RankingResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	snap, err := e.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	profiles, skipped := e.aggregator.Aggregate(profile, snap)

	volume, err := e.volumeScale(profiles)
	if err != nil {
		return nil, err
	}

	agents := make([]ScoredAgent, 0, len(profiles))
	for _, pp := range profiles {
		agents = append(agents, e.scorer.Score(pp, e.tenure, volume))
	}
	agents = Rank(agents)

	e.logger.Info("ranking computed",
		"customer", profile.CustomerName,
		"destination", profile.Destination,
		"agents", len(agents),
		"skipped_records", skipped,
	)

	return &RankingResult{
		RequestID:      uuid.New(),
		Profile:        profile,
		ComputedAt:     time.Now().UTC(),
		SnapshotAt:     snap.TakenAt,
		Agents:         agents,
		SkippedRecords: skipped,
	}, nil
}

// volumeScale derives the trip volume domain from the observed
// confirmed-booking spread across the pool when configured to. A degenerate
// spread (single agent, or all agents equal) falls back to the static
// domain, which was validated at construction.
func (e *Engine) volumeScale(profiles []*PerformanceProfile) (*LinearScale, error) {
	if e.params.TripVolumeFromPool && len(profiles) > 1 {
		min, max := profiles[0].ConfirmedBookings, profiles[0].ConfirmedBookings
		for _, pp := range profiles[1:] {
			if pp.ConfirmedBookings < min {
				min = pp.ConfirmedBookings
			}
			if pp.ConfirmedBookings > max {
				max = pp.ConfirmedBookings
			}
		}
		if max > min {
			return NewLinearScale(Domain{Min: float64(min), Max: float64(max)})
		}
	}
	return NewLinearScale(e.params.TripVolumeDomain)
}
