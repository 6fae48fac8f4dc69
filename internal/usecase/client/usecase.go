package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	domainClient "loan-ledger/internal/domain/client"
	domainLoan "loan-ledger/internal/domain/loan"
	domainReport "loan-ledger/internal/domain/report"
	"loan-ledger/internal/domain/uow"
	"loan-ledger/internal/usecase/standing"
	"loan-ledger/pkg/id"
	"loan-ledger/pkg/money"
)

type Usecase struct {
	clients   domainClient.Repository
	loans     domainLoan.Repository
	uow       uow.UnitOfWork
	snapshots domainReport.SnapshotInvalidator
}

func NewUsecase(clients domainClient.Repository, loans domainLoan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{clients: clients, loans: loans, uow: tx}
}

// WithSnapshots registers a cache to drop after registrations and edits.
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

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (in ClientInput) validate() error {
	switch {
	case strings.TrimSpace(in.ContactPerson) == "":
		return fmt.Errorf("%w: contact person is required", domainClient.ErrValidation)
	case strings.TrimSpace(in.Email) == "":
		return fmt.Errorf("%w: email is required", domainClient.ErrValidation)
	case strings.TrimSpace(in.Phone) == "":
		return fmt.Errorf("%w: phone is required", domainClient.ErrValidation)
	case strings.TrimSpace(in.Region) == "":
		return fmt.Errorf("%w: region is required", domainClient.ErrValidation)
	}
	return nil
}

func (in ClientInput) apply(c *domainClient.Client) {
	c.CompanyName = optional(in.CompanyName)
	c.ContactPerson = strings.TrimSpace(in.ContactPerson)
	c.Email = strings.TrimSpace(in.Email)
	c.Phone = strings.TrimSpace(in.Phone)
	c.StreetAddress = optional(in.StreetAddress)
	c.City = optional(in.City)
	c.Region = strings.TrimSpace(in.Region)
}

func toDTO(c *domainClient.Client) *ClientDTO {
	return &ClientDTO{
		ClientID:        c.ClientID,
		CompanyName:     c.CompanyName,
		ContactPerson:   c.ContactPerson,
		Email:           c.Email,
		Phone:           c.Phone,
		StreetAddress:   c.StreetAddress,
		City:            c.City,
		Region:          c.Region,
		RatingScore:     c.RatingScore,
		TotalLoans:      c.TotalLoans,
		PaidLoans:       c.PaidLoans,
		DelinquentLoans: c.DelinquentLoans,
		CreatedAt:       c.CreatedAt,
	}
}

// Register stores a new client with the default rating. Emails are not unique.
func (u *Usecase) Register(ctx context.Context, in ClientInput) (*ClientDTO, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	c := &domainClient.Client{
		ClientID:    id.NewID32(),
		RatingScore: domainClient.DefaultRating,
	}
	in.apply(c)
	if err := u.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	u.dropSnapshots(ctx)
	return toDTO(c), nil
}

// Edit replaces all contact fields. Counters and rating are left alone.
func (u *Usecase) Edit(ctx context.Context, clientID string, in ClientInput) (*ClientDTO, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	c, err := u.clients.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	in.apply(c)
	if err := u.clients.Save(ctx, c); err != nil {
		return nil, err
	}
	u.dropSnapshots(ctx)
	// counters may have moved since the read
	return u.Get(ctx, clientID)
}

func (u *Usecase) Get(ctx context.Context, clientID string) (*ClientDTO, error) {
	c, err := u.clients.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) List(ctx context.Context) ([]ClientDTO, error) {
	cs, err := u.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ClientDTO, 0, len(cs))
	for i := range cs {
		out = append(out, *toDTO(&cs[i]))
	}
	return out, nil
}

func (u *Usecase) Detail(ctx context.Context, clientID string) (*ClientDetailDTO, error) {
	c, err := u.clients.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	ls, err := u.loans.List(ctx, domainLoan.Filter{ClientID: clientID})
	if err != nil {
		return nil, err
	}
	out := &ClientDetailDTO{ClientDTO: *toDTO(c), Loans: make([]LoanBriefDTO, 0, len(ls))}
	for i := range ls {
		l := &ls[i]
		out.Loans = append(out.Loans, LoanBriefDTO{
			LoanID:          l.LoanID,
			PrincipalAmount: l.PrincipalAmount,
			InterestRate:    l.InterestRate,
			TotalAmount:     money.Round2(l.TotalAmount),
			PaidAmount:      money.Round2(l.PaidAmount),
			Outstanding:     money.Round2(l.Outstanding()),
			StartDate:       l.StartDate,
			DueDate:         l.DueDate,
			Status:          string(l.Status),
		})
	}
	return out, nil
}

// RecomputeRating rebuilds the client's counters and rating from its loans.
func (u *Usecase) RecomputeRating(ctx context.Context, clientID string) (*RatingDTO, error) {
	if u.uow == nil {
		return nil, errors.New("unit of work not configured")
	}
	var dto *RatingDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Clients.GetByClientID(ctx, clientID); err != nil {
			return err
		}
		s, rating, err := standing.Rerate(ctx, r.Clients, r.Loans, clientID)
		if err != nil {
			return err
		}
		dto = &RatingDTO{
			ClientID:        clientID,
			RatingScore:     rating,
			TotalLoans:      s.TotalLoans,
			PaidLoans:       s.PaidLoans,
			DelinquentLoans: s.DelinquentLoans,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
