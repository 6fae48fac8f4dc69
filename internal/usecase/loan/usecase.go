package loan

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	domainClient "loan-ledger/internal/domain/client"
	domainLoan "loan-ledger/internal/domain/loan"
	domainPayment "loan-ledger/internal/domain/payment"
	domainReport "loan-ledger/internal/domain/report"
	"loan-ledger/internal/domain/uow"
	"loan-ledger/internal/usecase/standing"
	"loan-ledger/pkg/id"
	"loan-ledger/pkg/money"
)

var errNoUoW = errors.New("unit of work not configured")

type Usecase struct {
	loans     domainLoan.Repository
	clients   domainClient.Repository
	uow       uow.UnitOfWork
	baseRate  float64
	snapshots domainReport.SnapshotInvalidator
	now       func() time.Time
}

// NewUsecase: baseRate is used by SuggestRate when the caller gives none.
func NewUsecase(loans domainLoan.Repository, clients domainClient.Repository, tx uow.UnitOfWork, baseRate float64) *Usecase {
	return &Usecase{loans: loans, clients: clients, uow: tx, baseRate: baseRate, now: time.Now}
}

// WithSnapshots registers a cache to drop after every committed write.
func (u *Usecase) WithSnapshots(s domainReport.SnapshotInvalidator) *Usecase {
	u.snapshots = s
	return u
}

func (u *Usecase) dropSnapshots(ctx context.Context) {
	if u.snapshots == nil {
		return
	}
	if err := u.snapshots.Invalidate(ctx); err != nil {
		log.Printf("snapshot invalidate: %v", err)
	}
}

func toDTO(l *domainLoan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:          l.LoanID,
		ClientID:        l.ClientID,
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
		CreatedAt:       l.CreatedAt,
	}
}

func installmentsOrDefault(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

// Create originates an active loan starting today and refreshes the
// owning client's counters in the same transaction.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	terms := domainLoan.Terms{
		Principal:    in.Principal,
		Rate:         in.Rate,
		TermDays:     in.TermDays,
		Installments: installmentsOrDefault(in.Installments),
		Fee:          in.Fee,
	}
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if u.uow == nil {
		return nil, errNoUoW
	}

	var l *domainLoan.Loan
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Clients.GetByClientID(ctx, in.ClientID); err != nil {
			return err
		}
		l = domainLoan.New(id.NewID32(), in.ClientID, terms, u.now())
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		_, err := standing.Refresh(ctx, r.Clients, r.Loans, in.ClientID)
		return err
	})
	if err != nil {
		return nil, err
	}
	u.dropSnapshots(ctx)
	return toDTO(l), nil
}

// Edit overwrites the terms and due date and recomputes total_amount.
// paid_amount and status are not touched.
func (u *Usecase) Edit(ctx context.Context, loanID string, in EditLoanInput) (*LoanDTO, error) {
	terms := domainLoan.Terms{
		Principal:    in.Principal,
		Rate:         in.Rate,
		TermDays:     in.TermDays,
		Installments: installmentsOrDefault(in.Installments),
		Fee:          in.Fee,
	}
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if u.uow == nil {
		return nil, errNoUoW
	}

	var out *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		due := l.StartDate.AddDate(0, 0, terms.TermDays)
		if in.DueDate != nil {
			due = *in.DueDate
		}
		l.Reprice(terms, due)
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.dropSnapshots(ctx)
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// SuggestRate is advisory. baseRate <= 0 uses the configured base rate; an
// unknown client gets the base rate back.
func (u *Usecase) SuggestRate(ctx context.Context, clientID string, baseRate float64) (*RateSuggestionDTO, error) {
	if baseRate <= 0 {
		baseRate = u.baseRate
	}
	c, err := u.clients.GetByClientID(ctx, clientID)
	if errors.Is(err, domainClient.ErrNotFound) {
		return &RateSuggestionDTO{ClientID: clientID, BaseRate: baseRate, SuggestedRate: baseRate}, nil
	}
	if err != nil {
		return nil, err
	}
	return &RateSuggestionDTO{
		ClientID:      clientID,
		RatingScore:   c.RatingScore,
		BaseRate:      baseRate,
		SuggestedRate: domainLoan.SuggestRate(c.RatingScore, baseRate),
		KnownClient:   true,
	}, nil
}

// PostPayment appends a payment dated today and adds it to paid_amount under
// the loan's row lock. The payment that first covers total_amount settles
// the loan and re-rates the client. Overpayment is accepted.
func (u *Usecase) PostPayment(ctx context.Context, loanID string, in PaymentInput) (*PaymentDTO, error) {
	if in.Amount <= 0 {
		return nil, domainPayment.ErrInvalidAmount
	}
	if u.uow == nil {
		return nil, errNoUoW
	}
	method := strings.TrimSpace(in.Method)
	if method == "" {
		method = domainPayment.MethodCash
	}

	var dto *PaymentDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		p := &domainPayment.Payment{
			PaymentID:     id.NewID32(),
			LoanID:        l.LoanID,
			Amount:        in.Amount,
			PaymentDate:   domainLoan.Day(u.now()),
			PaymentMethod: method,
			Notes:         in.Notes,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		settled := l.ApplyPayment(in.Amount)
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if settled {
			if _, _, err := standing.Rerate(ctx, r.Clients, r.Loans, l.ClientID); err != nil {
				return err
			}
		}

		dto = &PaymentDTO{
			PaymentID:     p.PaymentID,
			LoanID:        l.LoanID,
			Amount:        p.Amount,
			PaymentDate:   p.PaymentDate,
			PaymentMethod: p.PaymentMethod,
			Notes:         p.Notes,
			LoanStatus:    string(l.Status),
			PaidAmount:    money.Round2(l.PaidAmount),
			Outstanding:   money.Round2(l.Outstanding()),
			Settled:       settled,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.dropSnapshots(ctx)
	return dto, nil
}
