package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	// ListByLoanID returns the loan's payments, newest first.
	ListByLoanID(ctx context.Context, loanID string) ([]Payment, error)
	SumByLoanID(ctx context.Context, loanID string) (float64, error)
}
