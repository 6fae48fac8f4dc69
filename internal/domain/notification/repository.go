package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByLoanID(ctx context.Context, loanID string) ([]Notification, error)
}
