package simulation

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// ErrInvalidDays is returned when a run is asked for a negative number of days
var ErrInvalidDays = errors.New("days must not be negative")

// Advancer ages a single item by one business day
type Advancer interface {
	Advance(item domain.Item) domain.Item
}

// Recorder observes simulation progress
type Recorder interface {
	RecordRun()
	RecordDay()
	RecordAdvance(before, after domain.Item)
}

// Snapshot is the state of every item at the end of a day; day 0 is the input
type Snapshot struct {
	Day   int
	Items []domain.Item
}

// Service runs the day loop over a list of items
type Service interface {
	// Run returns days+1 snapshots, starting with the unmodified input
	Run(ctx context.Context, items []domain.Item, days int) ([]Snapshot, error)
	// Final returns only the last snapshot. Earlier days are not retained.
	Final(ctx context.Context, items []domain.Item, days int) (Snapshot, error)
}

type service struct {
	engine   Advancer
	recorder Recorder
}

// NewService creates a new simulation service
func NewService(engine Advancer, recorder Recorder) Service {
	return &service{
		engine:   engine,
		recorder: recorder,
	}
}

// Run ages every item once per day. The input slice is never modified.
func (s *service) Run(ctx context.Context, items []domain.Item, days int) ([]Snapshot, error) {
	snapshots := make([]Snapshot, 0, max(days, 0)+1)
	err := s.walk(ctx, items, days, func(snapshot Snapshot) {
		snapshots = append(snapshots, snapshot)
	})
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

// Final ages every item like Run but keeps only the current day in memory
func (s *service) Final(ctx context.Context, items []domain.Item, days int) (Snapshot, error) {
	var last Snapshot
	err := s.walk(ctx, items, days, func(snapshot Snapshot) {
		last = snapshot
	})
	if err != nil {
		return Snapshot{}, err
	}
	return last, nil
}

// walk calls visit with day 0 and then once per simulated day
func (s *service) walk(ctx context.Context, items []domain.Item, days int, visit func(Snapshot)) error {
	if days < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDays, days)
	}

	if logger.GetRunID(ctx) == "" {
		ctx = logger.WithRunID(ctx, logger.GenerateRequestID())
	}
	log := logger.FromContext(ctx)
	log.Info("Simulation started", "items", len(items), "days", days)
	s.recorder.RecordRun()

	current := make([]domain.Item, len(items))
	copy(current, items)
	visit(Snapshot{Day: 0, Items: current})

	for day := 1; day <= days; day++ {
		if err := ctx.Err(); err != nil {
			log.Warn("Simulation cancelled", "day", day, "error", err)
			return err
		}

		next := make([]domain.Item, len(current))
		for i, item := range current {
			next[i] = s.engine.Advance(item)
			s.recorder.RecordAdvance(item, next[i])
		}
		s.recorder.RecordDay()

		log.Debug("Day simulated", "day", day)
		visit(Snapshot{Day: day, Items: next})
		current = next
	}

	log.Info("Simulation finished", "days", days)
	return nil
}
