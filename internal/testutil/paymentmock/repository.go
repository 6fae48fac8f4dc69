package paymentmock

import (
	"context"

	domain "loan-ledger/internal/domain/payment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, p *domain.Payment) error
	ListByLoanIDFn func(ctx context.Context, loanID string) ([]domain.Payment, error)
	SumByLoanIDFn  func(ctx context.Context, loanID string) (float64, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID string) ([]domain.Payment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) SumByLoanID(ctx context.Context, loanID string) (float64, error) {
	if m.SumByLoanIDFn != nil {
		return m.SumByLoanIDFn(ctx, loanID)
	}
	return 0, context.Canceled
}
