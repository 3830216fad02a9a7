package analysis

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	ListActualsByEventType(ctx context.Context, eventTypeCode string) ([]EventActual, error)
	ListActuals(ctx context.Context) ([]EventActual, error)
	FindPriceListEntry(ctx context.Context, eventTypeCode string, guestCount int) (*PriceListEntry, error)
}
