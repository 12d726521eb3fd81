package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"breadthpulse/internal/breadth"
	"breadthpulse/internal/domain/models"
	"breadthpulse/internal/logger"
	"breadthpulse/internal/metrics"
	"breadthpulse/internal/storage"
)

// BreadthService defines the business operations exposed over HTTP.
// It decouples handlers from data access and from the aggregation core.
type BreadthService interface {
	// GetBreadth runs the full pipeline over the trailing window.
	// Returns (nil, nil) when the window holds no snapshots; callers must
	// surface that as a "no data" outcome, not a zero-filled series.
	GetBreadth(ctx context.Context) (*models.Breadth, error)

	// GetUniverse returns the latest quote for each security in the
	// configured allow-list. An empty result is a valid empty slice.
	GetUniverse(ctx context.Context) ([]models.UniverseQuote, error)

	// GetOverview fetches breadth and universe concurrently.
	GetOverview(ctx context.Context) (*models.Breadth, []models.UniverseQuote, error)
}

// Options carries the externally supplied aggregation parameters.
// Zero fields fall back to the documented defaults.
type Options struct {
	Window      time.Duration    // trailing window queried from the store (default 60m)
	BucketWidth time.Duration    // bucket width for minute grouping (default 1m)
	UniverseIDs []int64          // fixed security allow-list
	Now         func() time.Time // clock; injectable for deterministic tests
}

type breadthService struct {
	repo        storage.SnapshotsRepository
	agg         breadth.Aggregator
	window      time.Duration
	universeIDs []int64
	now         func() time.Time
}

func NewBreadthService(repo storage.SnapshotsRepository, opts Options) BreadthService {
	if opts.Window <= 0 {
		opts.Window = 60 * time.Minute
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &breadthService{
		repo:        repo,
		agg:         breadth.NewAggregator(opts.BucketWidth),
		window:      opts.Window,
		universeIDs: opts.UniverseIDs,
		now:         opts.Now,
	}
}

func (s *breadthService) GetBreadth(ctx context.Context) (*models.Breadth, error) {
	// The window lower bound is the pipeline's only clock dependency.
	since := s.now().UTC().Add(-s.window)

	snaps, err := s.repo.SnapshotsSince(ctx, since)
	if err != nil {
		metrics.BreadthRuns.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("fetch snapshots: %w", err)
	}
	if len(snaps) == 0 {
		metrics.BreadthRuns.WithLabelValues("empty").Inc()
		return nil, nil
	}

	result, skipped := s.agg.Compute(snaps)
	if skipped > 0 {
		metrics.UnparseableSnapshots.Add(float64(skipped))
		logger.L().Warn().
			Int("skipped", skipped).
			Int("snapshots", len(snaps)).
			Msg("snapshots excluded from breadth tally")
	}
	metrics.BreadthRuns.WithLabelValues("ok").Inc()
	return result, nil
}

func (s *breadthService) GetUniverse(ctx context.Context) ([]models.UniverseQuote, error) {
	quotes, err := s.repo.LatestQuotes(ctx, s.universeIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch universe quotes: %w", err)
	}
	return quotes, nil
}

// GetOverview fans out the two independent queries; the first failure
// cancels the sibling.
func (s *breadthService) GetOverview(ctx context.Context) (*models.Breadth, []models.UniverseQuote, error) {
	var (
		b      *models.Breadth
		quotes []models.UniverseQuote
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		b, err = s.GetBreadth(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		quotes, err = s.GetUniverse(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return b, quotes, nil
}
