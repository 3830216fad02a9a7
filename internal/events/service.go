package events

import (
	"context"
	"errors"

	"innkeeper/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id int) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Event, error) {
	return s.repo.List(ctx)
}

// ApplyPrice writes a chosen price back onto the event record. This is
// the only mutation the pricing calculator hands back.
func (s *Service) ApplyPrice(ctx context.Context, id int, price float64) error {
	if price < 0 {
		return errors.New("price must be non-negative")
	}
	return s.repo.UpdatePrice(ctx, id, price)
}

// GetEventRecord implements core.EventReader for the pricing
// calculator.
func (s *Service) GetEventRecord(ctx context.Context, eventID int) (*core.EventRecord, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	record := &core.EventRecord{
		ID:                   event.ID,
		GuestCount:           event.GuestCount,
		StartTime:            event.StartTime,
		EndTime:              event.EndTime,
		TravelDistanceMeters: event.TravelDistanceMeters,
		TravelDurationSec:    event.TravelDurationSec,
		Price:                event.Price,
	}
	if event.EventTypeCode != "" {
		record.EventType = &core.EventTypeRef{
			Code:  event.EventTypeCode,
			Label: event.EventTypeLabel,
		}
	}
	return record, nil
}
