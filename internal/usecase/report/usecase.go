package report

import (
	"context"
	"log"
	"time"

	domainClient "loan-ledger/internal/domain/client"
	domainLoan "loan-ledger/internal/domain/loan"
	domainNotification "loan-ledger/internal/domain/notification"
	domainPayment "loan-ledger/internal/domain/payment"
	domainReport "loan-ledger/internal/domain/report"
	"loan-ledger/pkg/money"
)

// SnapshotCache keeps the last dashboard snapshot for a short while.
// Load returns (nil, nil) on a miss.
type SnapshotCache interface {
	Load(ctx context.Context) (*DashboardDTO, error)
	Store(ctx context.Context, d *DashboardDTO) error
}

type Usecase struct {
	reports  domainReport.Repository
	loans    domainLoan.Repository
	clients  domainClient.Repository
	payments domainPayment.Repository
	notes    domainNotification.Repository
	cache    SnapshotCache
	now      func() time.Time
}

func NewUsecase(
	reports domainReport.Repository,
	loans domainLoan.Repository,
	clients domainClient.Repository,
	payments domainPayment.Repository,
	notes domainNotification.Repository,
) *Usecase {
	return &Usecase{reports: reports, loans: loans, clients: clients, payments: payments, notes: notes, now: time.Now}
}

// WithCache enables dashboard snapshot caching. nil disables it.
func (u *Usecase) WithCache(c SnapshotCache) *Usecase {
	u.cache = c
	return u
}

func clientName(company *string, contact string) string {
	if company != nil && *company != "" {
		return *company
	}
	return contact
}

func toNotificationDTOs(vs []domainReport.NotificationView) []NotificationDTO {
	out := make([]NotificationDTO, 0, len(vs))
	for _, v := range vs {
		out = append(out, NotificationDTO{
			NotificationID:   v.NotificationID,
			LoanID:           v.LoanID,
			ClientID:         v.ClientID,
			ClientName:       clientName(v.CompanyName, v.ContactPerson),
			NotificationType: v.NotificationType,
			Message:          v.Message,
			SentDate:         v.SentDate,
			Status:           string(v.Status),
		})
	}
	return out
}

// Dashboard returns portfolio counts and sums with the ten most recent
// pending notifications. Cache errors are logged and never fail the call.
func (u *Usecase) Dashboard(ctx context.Context) (*DashboardDTO, error) {
	if u.cache != nil {
		d, err := u.cache.Load(ctx)
		if err != nil {
			log.Printf("dashboard cache load: %v", err)
		} else if d != nil {
			return d, nil
		}
	}

	s, err := u.reports.Stats(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := u.reports.PendingNotifications(ctx, dashboardPendingLimit)
	if err != nil {
		return nil, err
	}

	d := &DashboardDTO{
		Stats: StatsDTO{
			TotalClients:    s.TotalClients,
			TotalLoans:      s.TotalLoans,
			ActiveLoans:     s.ActiveLoans,
			DelinquentLoans: s.DelinquentLoans,
			TotalPrincipal:  money.Round2(s.TotalPrincipal),
			TotalCollected:  money.Round2(s.TotalCollected),
		},
		RecentNotifications: toNotificationDTOs(pending),
		GeneratedAt:         u.now().UTC(),
	}

	if u.cache != nil {
		if err := u.cache.Store(ctx, d); err != nil {
			log.Printf("dashboard cache store: %v", err)
		}
	}
	return d, nil
}

// PendingNotifications returns every pending notification, newest first.
func (u *Usecase) PendingNotifications(ctx context.Context) ([]NotificationDTO, error) {
	vs, err := u.reports.PendingNotifications(ctx, 0)
	if err != nil {
		return nil, err
	}
	return toNotificationDTOs(vs), nil
}

// ListLoans returns every loan newest first with its client's name.
func (u *Usecase) ListLoans(ctx context.Context) ([]LoanRowDTO, error) {
	vs, err := u.reports.Loans(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanRowDTO, 0, len(vs))
	for i := range vs {
		v := &vs[i]
		out = append(out, LoanRowDTO{
			LoanID:          v.LoanID,
			ClientID:        v.ClientID,
			ClientName:      clientName(v.CompanyName, v.ContactPerson),
			PrincipalAmount: v.PrincipalAmount,
			InterestRate:    v.InterestRate,
			TotalAmount:     money.Round2(v.TotalAmount),
			PaidAmount:      money.Round2(v.PaidAmount),
			Outstanding:     money.Round2(v.Outstanding()),
			StartDate:       v.StartDate,
			DueDate:         v.DueDate,
			Status:          string(v.Status),
		})
	}
	return out, nil
}

func (u *Usecase) LoanSummary(ctx context.Context, loanID string) (*LoanSummaryDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	c, err := u.clients.GetByClientID(ctx, l.ClientID)
	if err != nil {
		return nil, err
	}
	ps, err := u.payments.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	paidSum, err := u.payments.SumByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	ns, err := u.notes.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	out := &LoanSummaryDTO{
		LoanID:          l.LoanID,
		PrincipalAmount: l.PrincipalAmount,
		InterestRate:    l.InterestRate,
		LoanTermDays:    l.LoanTermDays,
		Installments:    l.Installments,
		ProcessingFee:   l.ProcessingFee,
		StartDate:       l.StartDate,
		DueDate:         l.DueDate,
		TotalAmount:     money.Round2(l.TotalAmount),
		PaidAmount:      money.Round2(l.PaidAmount),
		Outstanding:     money.Round2(l.Outstanding()),
		Status:          string(l.Status),
		Client: ClientBriefDTO{
			ClientID:      c.ClientID,
			CompanyName:   c.CompanyName,
			ContactPerson: c.ContactPerson,
			Email:         c.Email,
			Phone:         c.Phone,
			RatingScore:   c.RatingScore,
		},
		Payments:      make([]PaymentDTO, 0, len(ps)),
		PaymentsTotal: money.Round2(paidSum),
		Notifications: make([]LoanNotificationDTO, 0, len(ns)),
	}
	for _, p := range ps {
		out.Payments = append(out.Payments, PaymentDTO{
			PaymentID:     p.PaymentID,
			Amount:        p.Amount,
			PaymentDate:   p.PaymentDate,
			PaymentMethod: p.PaymentMethod,
			Notes:         p.Notes,
		})
	}
	for _, n := range ns {
		out.Notifications = append(out.Notifications, LoanNotificationDTO{
			NotificationID:   n.NotificationID,
			NotificationType: n.NotificationType,
			Message:          n.Message,
			SentDate:         n.SentDate,
			Status:           string(n.Status),
		})
	}
	return out, nil
}
