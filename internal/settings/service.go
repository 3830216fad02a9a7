package settings

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Setting, error) {
	return s.repo.List(ctx)
}

// KeyValue returns all settings flattened to key -> value, the shape
// the policy resolution and the dashboard both consume.
func (s *Service) KeyValue(ctx context.Context) (map[string]string, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(all))
	for _, st := range all {
		out[st.Key] = st.Value
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, key string) (*Setting, error) {
	if key == "" {
		return nil, errors.New("missing key")
	}
	return s.repo.Get(ctx, key)
}

func (s *Service) Save(ctx context.Context, key, value, description string) error {
	if key == "" || value == "" {
		return errors.New("missing required fields")
	}
	return s.repo.Upsert(ctx, Setting{Key: key, Value: value, Description: description})
}

func (s *Service) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("missing key")
	}
	return s.repo.Delete(ctx, key)
}

// Policy resolves the current business policy. A read failure falls
// back to the built-in defaults so pricing keeps working without the
// settings table.
func (s *Service) Policy(ctx context.Context) Policy {
	values, err := s.KeyValue(ctx)
	if err != nil {
		return ResolvePolicy(nil)
	}
	return ResolvePolicy(values)
}
