package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"trail-itinerary-service/internal/domain"
	"trail-itinerary-service/internal/platform/obs"
	"trail-itinerary-service/internal/ports"
)

// One configuration in a comparison matrix.
type ComparisonCase struct {
	Name      string
	Strategy  domain.Strategy
	StartDate time.Time
}

// Summary of one simulator run within a comparison.
type ComparisonRow struct {
	Name              string
	Strategy          domain.Strategy
	StartDate         time.Time
	FinishDate        time.Time
	TotalDays         int
	TotalMiles        float64
	MilesPerDay       float64
	AvgAvailableHours float64
	Feasible          bool
	Reason            domain.InfeasibilityReason
	Detail            string
}

type comparisonResult struct {
	index int
	row   ComparisonRow
	err   error
}

// Compare runs the simulator once per case and collects per-run summaries.
//
// Runs share no mutable state, so cases execute concurrently under a bounded
// worker pool. Rows come back in case order regardless of completion order,
// keeping the comparison deterministic.
func Compare(
	ctx context.Context,
	base domain.HikeConfig,
	cases []ComparisonCase,
	profile ports.RouteProfile,
	daylight ports.DaylightProvider,
	workers int,
) (_ []ComparisonRow, err error) {
	defer obs.Time(ctx, "comparator.Compare")(&err)

	if len(cases) == 0 {
		return []ComparisonRow{}, nil
	}
	if workers < 1 {
		workers = 4
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, workers)
	resultsCh := make(chan comparisonResult, len(cases))
	var wg sync.WaitGroup

	for i, c := range cases {
		wg.Add(1)
		go func(idx int, cs ComparisonCase) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			cfg := base
			cfg.Strategy = cs.Strategy
			cfg.StartDate = cs.StartDate

			res, err := Simulate(ctx, cfg, profile, daylight)
			if err != nil {
				resultsCh <- comparisonResult{
					index: idx,
					err:   fmt.Errorf("compare: case %q: %w", cs.Name, err),
				}
				cancel()
				return
			}

			resultsCh <- comparisonResult{
				index: idx,
				row: ComparisonRow{
					Name:              cs.Name,
					Strategy:          cs.Strategy,
					StartDate:         cs.StartDate,
					FinishDate:        res.FinishDate,
					TotalDays:         res.TotalDays,
					TotalMiles:        res.TotalMiles(),
					MilesPerDay:       res.MilesPerDay(),
					AvgAvailableHours: res.AvgAvailableHours(),
					Feasible:          res.Feasible,
					Reason:            res.Reason,
					Detail:            res.Detail,
				},
			}
		}(i, c)
	}

	wg.Wait()
	close(resultsCh)

	rows := make([]ComparisonRow, len(cases))
	var firstErr error
	for res := range resultsCh {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		rows[res.index] = res.row
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return rows, nil
}

// StartMonthCases builds the conventional northbound start-date sweep
// (the 15th of each month in [from, to]) for a given strategy and year.
func StartMonthCases(strategy domain.Strategy, year int, from, to time.Month) []ComparisonCase {
	cases := []ComparisonCase{}
	for m := from; m <= to; m++ {
		start := time.Date(year, m, 15, 0, 0, 0, 0, time.UTC)
		cases = append(cases, ComparisonCase{
			Name:      start.Format("Jan 2") + " " + string(strategy),
			Strategy:  strategy,
			StartDate: start,
		})
	}
	return cases
}
