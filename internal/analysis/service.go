package analysis

import (
	"context"
	"errors"
	"log"

	"innkeeper/internal/pricing"
	"innkeeper/internal/stats"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Analyze builds the historical baseline for one
// (eventTypeCode, guestCount) key: descriptive statistics over the
// recorded actuals of that event type, plus the matching price-list
// entry if one covers the guest count.
func (s *Service) Analyze(
	ctx context.Context,
	eventTypeCode string,
	guestCount int,
) (*pricing.Baseline, error) {

	if eventTypeCode == "" {
		return nil, errors.New("missing eventTypeCode")
	}

	actuals, err := s.repo.ListActualsByEventType(ctx, eventTypeCode)
	if err != nil {
		return nil, err
	}

	// Per-head metrics only make sense for events that recorded
	// guests; filter before extraction.
	withGuests := make([]EventActual, 0, len(actuals))
	for _, a := range actuals {
		if a.GuestCount > 0 {
			withGuests = append(withGuests, a)
		}
	}

	alcoholPerHead := stats.Summarize(withGuests, func(a EventActual) (float64, bool) {
		return a.TotalAlcoholExpenses / float64(a.GuestCount), true
	})
	totalPerHead := stats.Summarize(withGuests, func(a EventActual) (float64, bool) {
		return a.TotalExpenses() / float64(a.GuestCount), true
	})
	iceExpenses := stats.Summarize(actuals, func(a EventActual) (float64, bool) {
		return a.TotalIceExpenses, true
	})
	totalExpenses := stats.Summarize(actuals, func(a EventActual) (float64, bool) {
		return a.TotalExpenses(), true
	})

	baseline := &pricing.Baseline{
		History: pricing.BaselineHistory{
			AlcoholPerHead:      alcoholPerHead.Mean,
			AlcoholStdDev:       alcoholPerHead.StdDev,
			IceExpenses:         iceExpenses.Mean,
			TotalExpenses:       totalExpenses.Mean,
			StdDevTotalExpenses: totalExpenses.StdDev,
			TotalPerHead:        totalPerHead.Mean,
			StdDevTotalPerHead:  totalPerHead.StdDev,
			Samples:             len(actuals),
		},
	}

	entry, err := s.repo.FindPriceListEntry(ctx, eventTypeCode, guestCount)
	if err != nil {
		// The statistics are still useful without the price list.
		log.Printf("[ANALYSIS] price list lookup failed for %s/%d: %v",
			eventTypeCode, guestCount, err)
	} else if entry != nil {
		baseline.Recommendation = &pricing.PriceListMatch{
			Name:  entry.Name,
			Price: entry.Price,
		}
	}

	return baseline, nil
}

// FetchAnalysis lets the pricing session consume this service
// in-process as its AnalysisClient.
func (s *Service) FetchAnalysis(
	ctx context.Context,
	eventTypeCode string,
	guestCount int,
) (*pricing.Baseline, error) {
	return s.Analyze(ctx, eventTypeCode, guestCount)
}

// Statistics computes the dashboard's descriptive-statistics block
// over all recorded actuals.
func (s *Service) Statistics(ctx context.Context) (*DashboardStatistics, error) {
	actuals, err := s.repo.ListActuals(ctx)
	if err != nil {
		return nil, err
	}

	withGuests := make([]EventActual, 0, len(actuals))
	for _, a := range actuals {
		if a.GuestCount > 0 {
			withGuests = append(withGuests, a)
		}
	}

	profit := func(a EventActual) float64 { return a.Price - a.TotalExpenses() }

	return &DashboardStatistics{
		ExpensesPerEvent: stats.Summarize(actuals, func(a EventActual) (float64, bool) {
			return a.TotalExpenses(), true
		}),
		ProfitPerEvent: stats.Summarize(actuals, func(a EventActual) (float64, bool) {
			return profit(a), true
		}),
		WagesPerEvent: stats.Summarize(actuals, func(a EventActual) (float64, bool) {
			return a.TotalWages, true
		}),
		AlcoholPerHead: stats.Summarize(withGuests, func(a EventActual) (float64, bool) {
			return a.TotalAlcoholExpenses / float64(a.GuestCount), true
		}),
		WagesPerHead: stats.Summarize(withGuests, func(a EventActual) (float64, bool) {
			return a.TotalWages / float64(a.GuestCount), true
		}),
		TotalExpensesPerHead: stats.Summarize(withGuests, func(a EventActual) (float64, bool) {
			return a.TotalExpenses() / float64(a.GuestCount), true
		}),
		ProfitPerHead: stats.Summarize(withGuests, func(a EventActual) (float64, bool) {
			return profit(a) / float64(a.GuestCount), true
		}),
		Samples: len(actuals),
	}, nil
}
