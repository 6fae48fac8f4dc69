package uow

import (
	"context"

	"loan-ledger/internal/domain/client"
	"loan-ledger/internal/domain/loan"
	"loan-ledger/internal/domain/notification"
	"loan-ledger/internal/domain/payment"
)

// Repos are bound to the same transaction.
type Repos struct {
	Clients       client.Repository
	Loans         loan.Repository
	Payments      payment.Repository
	Notifications notification.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the loan row first, then pass it in; loan.ErrNotFound if missing
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
