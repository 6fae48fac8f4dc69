package reportmock

import (
	"context"

	domain "loan-ledger/internal/domain/report"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	StatsFn                func(ctx context.Context) (domain.Stats, error)
	PendingNotificationsFn func(ctx context.Context, limit int) ([]domain.NotificationView, error)
	LoansFn                func(ctx context.Context) ([]domain.LoanView, error)
}

func (m *Repo) Stats(ctx context.Context) (domain.Stats, error) {
	if m.StatsFn != nil {
		return m.StatsFn(ctx)
	}
	return domain.Stats{}, context.Canceled
}

func (m *Repo) PendingNotifications(ctx context.Context, limit int) ([]domain.NotificationView, error) {
	if m.PendingNotificationsFn != nil {
		return m.PendingNotificationsFn(ctx, limit)
	}
	return nil, context.Canceled
}

func (m *Repo) Loans(ctx context.Context) ([]domain.LoanView, error) {
	if m.LoansFn != nil {
		return m.LoansFn(ctx)
	}
	return nil, context.Canceled
}

var _ domain.SnapshotInvalidator = (*Invalidator)(nil)

// Invalidator counts Invalidate calls and returns Err.
type Invalidator struct {
	Calls int
	Err   error
}

func (m *Invalidator) Invalidate(context.Context) error {
	m.Calls++
	return m.Err
}
