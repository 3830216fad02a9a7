package settings

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	List(ctx context.Context) ([]Setting, error)
	Get(ctx context.Context, key string) (*Setting, error)
	Upsert(ctx context.Context, s Setting) error
	Delete(ctx context.Context, key string) error
}
