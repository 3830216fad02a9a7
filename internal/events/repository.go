package events

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	GetByID(ctx context.Context, id int) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	UpdatePrice(ctx context.Context, id int, price float64) error
}
