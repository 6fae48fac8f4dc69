package clientmock

import (
	"context"

	domain "loan-ledger/internal/domain/client"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to no-op; reads default to context.Canceled.
type Repo struct {
	CreateFn         func(ctx context.Context, c *domain.Client) error
	GetByClientIDFn  func(ctx context.Context, clientID string) (*domain.Client, error)
	ListFn           func(ctx context.Context) ([]domain.Client, error)
	SaveFn           func(ctx context.Context, c *domain.Client) error
	UpdateStandingFn func(ctx context.Context, clientID string, s domain.Standing) error
	UpdateRatingFn   func(ctx context.Context, clientID string, rating float64) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Client) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByClientID(ctx context.Context, clientID string) (*domain.Client, error) {
	if m.GetByClientIDFn != nil {
		return m.GetByClientIDFn(ctx, clientID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Client, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, c *domain.Client) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) UpdateStanding(ctx context.Context, clientID string, s domain.Standing) error {
	if m.UpdateStandingFn != nil {
		return m.UpdateStandingFn(ctx, clientID, s)
	}
	return nil
}

func (m *Repo) UpdateRating(ctx context.Context, clientID string, rating float64) error {
	if m.UpdateRatingFn != nil {
		return m.UpdateRatingFn(ctx, clientID, rating)
	}
	return nil
}
