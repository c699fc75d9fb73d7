package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jvamontagens/jva_backend/internal/apperrors"
	"github.com/jvamontagens/jva_backend/internal/core/aggregator"
	"github.com/jvamontagens/jva_backend/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

const (
	projectionSummary   = "period_summary"
	projectionOverview  = "park_overview"
	projectionCarRental = "car_rental"
)

// Summary computes the financial summary of one period from a consistent snapshot.
func (s *financialService) Summary(ctx context.Context, periodID int64, session domain.Session) (summary *domain.FinancialSummary, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveAggregation(projectionSummary, err, time.Since(start)) }()

	snap, err := s.periodRepo.LoadPeriodSnapshot(ctx, periodID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load period snapshot", slog.Int64("period_id", periodID))
		}
		return nil, err
	}

	summary, err = aggregator.ComputeSummary(snap.Period, snap.Services, snap.Payments)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute period summary", slog.Int64("period_id", periodID))
		return nil, err
	}
	s.LogDebug(ctx, "Period summary computed",
		slog.Int64("period_id", periodID),
		slog.Int("services", len(snap.Services)),
		slog.Int("payments", len(snap.Payments)))
	return summary, nil
}

// ParkOverview computes every period summary of a park, at most
// s.concurrency at a time, and folds them into the overview.
func (s *financialService) ParkOverview(ctx context.Context, parkID int64, session domain.Session) (overview *domain.ParkFinancialOverview, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveAggregation(projectionOverview, err, time.Since(start)) }()

	park, err := s.parkRepo.FindParkByID(ctx, parkID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find park", slog.Int64("park_id", parkID))
		}
		return nil, err
	}
	periods, err := s.periodRepo.ListPeriods(ctx, &parkID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list park periods", slog.Int64("park_id", parkID))
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}

	results := make([]domain.PeriodWithSummary, len(periods))
	found := make([]bool, len(periods))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range periods {
		i := i
		periodID := periods[i].PeriodID
		g.Go(func() error {
			snap, err := s.periodRepo.LoadPeriodSnapshot(gctx, periodID)
			if errors.Is(err, apperrors.ErrNotFound) {
				// deleted after the listing
				return nil
			}
			if err != nil {
				return fmt.Errorf("period %d: %w", periodID, err)
			}
			sum, err := aggregator.ComputeSummary(snap.Period, snap.Services, snap.Payments)
			if err != nil {
				return fmt.Errorf("period %d: %w", periodID, err)
			}
			results[i] = domain.PeriodWithSummary{Period: snap.Period, Summary: *sum}
			found[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to summarise park periods", slog.Int64("park_id", parkID))
		return nil, err
	}
	summaries := make([]domain.PeriodWithSummary, 0, len(results))
	for i := range results {
		if found[i] {
			summaries = append(summaries, results[i])
		}
	}

	overview, err = aggregator.ComputeParkOverview(*park, summaries)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute park overview", slog.Int64("park_id", parkID))
		return nil, err
	}
	s.LogDebug(ctx, "Park overview computed", slog.Int64("park_id", parkID), slog.Int("periods", len(summaries)))
	return overview, nil
}

// CarRentalSummary totals the car rental values of one park or of every park.
func (s *financialService) CarRentalSummary(ctx context.Context, parkID *int64, session domain.Session) (summary *domain.CarRentalSummary, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveAggregation(projectionCarRental, err, time.Since(start)) }()

	scope := aggregator.AllParks()
	if parkID != nil {
		if _, err := s.parkRepo.FindParkByID(ctx, *parkID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogError(ctx, err, "Failed to find park", slog.Int64("park_id", *parkID))
			}
			return nil, err
		}
		scope = aggregator.SinglePark(*parkID)
	}

	periods, err := s.periodRepo.ListPeriods(ctx, parkID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list periods for car rental summary")
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	parks, err := s.parkRepo.ListParks(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parks for car rental summary")
		return nil, fmt.Errorf("failed to list parks: %w", err)
	}
	byID := make(map[int64]domain.Park, len(parks))
	for _, p := range parks {
		byID[p.ParkID] = p
	}

	summary, err = aggregator.ComputeCarRentalSummary(periods, byID, scope, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to compute car rental summary")
		return nil, err
	}
	return summary, nil
}
