package report

import "context"

// SnapshotInvalidator drops cached read models once a write has committed.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Repository serves read-only, cross-table queries.
type Repository interface {
	Stats(ctx context.Context) (Stats, error)
	// PendingNotifications returns newest first; limit <= 0 means no limit.
	PendingNotifications(ctx context.Context, limit int) ([]NotificationView, error)
	// Loans returns every loan newest first.
	Loans(ctx context.Context) ([]LoanView, error)
}
