package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the row for the rest of the transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error

	// List returns matching loans, newest first.
	List(ctx context.Context, f Filter) ([]Loan, error)

	// TransitionStatus moves a loan from one status to another only if it
	// is still in `from`. It reports whether the row changed.
	TransitionStatus(ctx context.Context, loanID string, from, to Status) (bool, error)

	CountByStatus(ctx context.Context, clientID string) (StatusCounts, error)
}
