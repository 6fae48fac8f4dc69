package delinquency

import (
	"context"
	"errors"
	"log"
	"time"

	domainLoan "loan-ledger/internal/domain/loan"
	domainNotification "loan-ledger/internal/domain/notification"
	domainReport "loan-ledger/internal/domain/report"
	"loan-ledger/internal/domain/uow"
	"loan-ledger/internal/usecase/standing"
	"loan-ledger/pkg/id"
)

type Usecase struct {
	uow       uow.UnitOfWork
	snapshots domainReport.SnapshotInvalidator
	now       func() time.Time
}

func NewUsecase(tx uow.UnitOfWork) *Usecase {
	return &Usecase{uow: tx, now: time.Now}
}

// WithSnapshots registers a cache to drop after a sweep that marked loans.
func (u *Usecase) WithSnapshots(s domainReport.SnapshotInvalidator) *Usecase {
	u.snapshots = s
	return u
}

type SweepResult struct {
	Marked int       `json:"marked"`
	AsOf   time.Time `json:"as_of"`
}

// Sweep marks every active loan whose due date is before today as
// delinquent, queues one notification per marked loan and refreshes the
// affected clients' counters. A second sweep on the same day marks nothing.
func (u *Usecase) Sweep(ctx context.Context) (*SweepResult, error) {
	if u.uow == nil {
		return nil, errors.New("unit of work not configured")
	}
	today := domainLoan.Day(u.now())
	res := &SweepResult{AsOf: today}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		due, err := r.Loans.List(ctx, domainLoan.Filter{Status: domainLoan.StatusActive, DueBefore: today})
		if err != nil {
			return err
		}

		var touched []string
		seen := map[string]bool{}
		for i := range due {
			// the status gate: only a loan still active flips
			ok, err := r.Loans.TransitionStatus(ctx, due[i].LoanID, domainLoan.StatusActive, domainLoan.StatusDelinquent)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			// List ran unlocked; a payment may have landed before the flip.
			l, err := r.Loans.GetByLoanIDForUpdate(ctx, due[i].LoanID)
			if err != nil {
				return err
			}
			if err := r.Notifications.Create(ctx, &domainNotification.Notification{
				NotificationID:   id.NewID32(),
				LoanID:           l.LoanID,
				NotificationType: domainNotification.TypeDelinquent,
				Message:          domainNotification.DelinquencyMessage(l.LoanID, l.DaysOverdue(today), l.Outstanding()),
				SentDate:         today,
				Status:           domainNotification.StatusPending,
			}); err != nil {
				return err
			}
			res.Marked++
			if !seen[l.ClientID] {
				seen[l.ClientID] = true
				touched = append(touched, l.ClientID)
			}
		}

		for _, clientID := range touched {
			if _, err := standing.Refresh(ctx, r.Clients, r.Loans, clientID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if res.Marked > 0 && u.snapshots != nil {
		if err := u.snapshots.Invalidate(ctx); err != nil {
			log.Printf("snapshot invalidate: %v", err)
		}
	}
	return res, nil
}
