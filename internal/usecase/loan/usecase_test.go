package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	"loan-ledger/internal/adapter/repository/gormstore"
	domainClient "loan-ledger/internal/domain/client"
	domainLoan "loan-ledger/internal/domain/loan"
	domainPayment "loan-ledger/internal/domain/payment"
	"loan-ledger/internal/domain/uow"
	"loan-ledger/internal/testutil/clientmock"
	"loan-ledger/internal/testutil/loanmock"
	"loan-ledger/internal/testutil/paymentmock"
	"loan-ledger/internal/testutil/reportmock"
	"loan-ledger/internal/testutil/testdb"
	"loan-ledger/internal/testutil/uowmock"
	"loan-ledger/pkg/id"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)

type harness struct {
	uc       *Usecase
	clients  *gormstore.ClientRepository
	loans    *gormstore.LoanRepository
	payments *gormstore.PaymentRepository
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := testdb.Open(t)
	h := &harness{
		clients:  gormstore.NewClientRepository(db),
		loans:    gormstore.NewLoanRepository(db),
		payments: gormstore.NewPaymentRepository(db),
	}
	h.uc = NewUsecase(h.loans, h.clients, gormstore.NewGormUoW(db), 0.15)
	h.uc.now = func() time.Time { return fixedNow }
	return h
}

func (h *harness) client(t *testing.T) string {
	t.Helper()
	c := &domainClient.Client{
		ClientID:      id.NewID32(),
		ContactPerson: "Ada Lovelace",
		Email:         "ada@example.com",
		Phone:         "876-555-0101",
		Region:        "St. Andrew",
		RatingScore:   domainClient.DefaultRating,
	}
	require.NoError(t, h.clients.Create(context.Background(), c))
	return c.ClientID
}

func exampleInput(clientID string) CreateLoanInput {
	return CreateLoanInput{ClientID: clientID, Principal: 1000, Rate: 0.12, TermDays: 180, Fee: 20}
}

func TestCreate_WorkedExample(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	cid := h.client(t)

	sug, err := h.uc.SuggestRate(ctx, cid, 0.15)
	require.NoError(t, err)
	assert.InDelta(t, 0.1125, sug.SuggestedRate, 1e-12)
	assert.True(t, sug.KnownClient)

	dto, err := h.uc.Create(ctx, exampleInput(cid))
	require.NoError(t, err)
	assert.Equal(t, 1079.18, dto.TotalAmount)
	assert.Equal(t, 0.0, dto.PaidAmount)
	assert.Equal(t, "active", dto.Status)
	assert.Equal(t, 1, dto.Installments)
	assert.True(t, dto.StartDate.Equal(domainLoan.Day(fixedNow)))
	assert.True(t, dto.DueDate.Equal(domainLoan.Day(fixedNow).AddDate(0, 0, 180)))

	stored, err := h.loans.GetByLoanID(ctx, dto.LoanID)
	require.NoError(t, err)
	assert.InDelta(t, 1079.178082, stored.TotalAmount, 1e-6)

	c, err := h.clients.GetByClientID(ctx, cid)
	require.NoError(t, err)
	assert.Equal(t, 1, c.TotalLoans)
}

func TestCreate_UnknownClient(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.uc.Create(ctx, exampleInput(id.NewID32()))
	assert.ErrorIs(t, err, domainClient.ErrNotFound)

	all, err := h.loans.List(ctx, domainLoan.Filter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreate_Validation(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{}, &clientmock.Repo{}, uowmock.New(), 0.15)

	cases := map[string]func(*CreateLoanInput){
		"zero principal":        func(in *CreateLoanInput) { in.Principal = 0 },
		"negative rate":         func(in *CreateLoanInput) { in.Rate = -0.01 },
		"zero term":             func(in *CreateLoanInput) { in.TermDays = 0 },
		"negative fee":          func(in *CreateLoanInput) { in.Fee = -1 },
		"negative installments": func(in *CreateLoanInput) { in.Installments = -2 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := exampleInput("CL")
			mutate(&in)
			_, err := uc.Create(context.Background(), in)
			assert.ErrorIs(t, err, domainLoan.ErrValidation)
		})
	}
}

func TestPostPayment_PartialThenSettles(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	cid := h.client(t)

	loan, err := h.uc.Create(ctx, exampleInput(cid))
	require.NoError(t, err)

	p1, err := h.uc.PostPayment(ctx, loan.LoanID, PaymentInput{Amount: 500, Notes: "first"})
	require.NoError(t, err)
	assert.False(t, p1.Settled)
	assert.Equal(t, "active", p1.LoanStatus)
	assert.Equal(t, domainPayment.MethodCash, p1.PaymentMethod)
	assert.True(t, p1.PaymentDate.Equal(domainLoan.Day(fixedNow)))
	assert.Equal(t, 579.18, p1.Outstanding)

	p2, err := h.uc.PostPayment(ctx, loan.LoanID, PaymentInput{Amount: 579.18, Method: "bank"})
	require.NoError(t, err)
	assert.True(t, p2.Settled)
	assert.Equal(t, "paid", p2.LoanStatus)

	stored, err := h.loans.GetByLoanID(ctx, loan.LoanID)
	require.NoError(t, err)
	sum, err := h.payments.SumByLoanID(ctx, loan.LoanID)
	require.NoError(t, err)
	assert.InDelta(t, stored.PaidAmount, sum, 1e-9)
	assert.Equal(t, domainLoan.StatusPaid, stored.Status)

	c, err := h.clients.GetByClientID(ctx, cid)
	require.NoError(t, err)
	assert.Equal(t, 1, c.PaidLoans)
	assert.Equal(t, 7.5, c.RatingScore)
}

func TestPostPayment_SettlesExactlyOnce(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	cid := h.client(t)

	loan, err := h.uc.Create(ctx, exampleInput(cid))
	require.NoError(t, err)

	first, err := h.uc.PostPayment(ctx, loan.LoanID, PaymentInput{Amount: 1100})
	require.NoError(t, err)
	assert.True(t, first.Settled)
	assert.Equal(t, -20.82, first.Outstanding)

	again, err := h.uc.PostPayment(ctx, loan.LoanID, PaymentInput{Amount: 10})
	require.NoError(t, err)
	assert.False(t, again.Settled)
	assert.Equal(t, "paid", again.LoanStatus)
	assert.Equal(t, 1110.0, again.PaidAmount)

	c, err := h.clients.GetByClientID(ctx, cid)
	require.NoError(t, err)
	assert.Equal(t, 1, c.PaidLoans)
	assert.Equal(t, 1, c.TotalLoans)

	ps, err := h.payments.ListByLoanID(ctx, loan.LoanID)
	require.NoError(t, err)
	assert.Len(t, ps, 2)
}

func TestPostPayment_SettlesDelinquentLoan(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	cid := h.client(t)

	loan, err := h.uc.Create(ctx, exampleInput(cid))
	require.NoError(t, err)
	ok, err := h.loans.TransitionStatus(ctx, loan.LoanID, domainLoan.StatusActive, domainLoan.StatusDelinquent)
	require.NoError(t, err)
	require.True(t, ok)

	p, err := h.uc.PostPayment(ctx, loan.LoanID, PaymentInput{Amount: 1079.18})
	require.NoError(t, err)
	assert.True(t, p.Settled)

	c, err := h.clients.GetByClientID(ctx, cid)
	require.NoError(t, err)
	assert.Equal(t, domainClient.Standing{TotalLoans: 1, PaidLoans: 1}, c.Standing())
}

func TestPostPayment_Rejects(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.uc.PostPayment(ctx, id.NewID32(), PaymentInput{Amount: 10})
	assert.ErrorIs(t, err, domainLoan.ErrNotFound)

	for _, amt := range []float64{0, -5} {
		_, err = h.uc.PostPayment(ctx, id.NewID32(), PaymentInput{Amount: amt})
		assert.ErrorIs(t, err, domainPayment.ErrInvalidAmount)
	}
}

func TestPostPayment_StoreFailureStopsBeforeSave(t *testing.T) {
	boom := errors.New("insert failed")
	loans := &loanmock.Repo{
		GetByLoanIDForUpdateFn: func(context.Context, string) (*domainLoan.Loan, error) {
			return &domainLoan.Loan{LoanID: "LN", TotalAmount: 100, Status: domainLoan.StatusActive}, nil
		},
		SaveFn: func(context.Context, *domainLoan.Loan) error {
			t.Fatalf("Save must not run after a failed payment insert")
			return nil
		},
	}
	payments := &paymentmock.Repo{
		CreateFn: func(context.Context, *domainPayment.Payment) error { return boom },
	}
	tx := uowmock.Passthrough(uow.Repos{Loans: loans, Payments: payments})
	uc := NewUsecase(loans, &clientmock.Repo{}, tx, 0.15)

	_, err := uc.PostPayment(context.Background(), "LN", PaymentInput{Amount: 100})
	assert.ErrorIs(t, err, boom)
}

func TestEdit_RepricesKeepsPaidAndStatus(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	cid := h.client(t)

	loan, err := h.uc.Create(ctx, exampleInput(cid))
	require.NoError(t, err)
	_, err = h.uc.PostPayment(ctx, loan.LoanID, PaymentInput{Amount: 200})
	require.NoError(t, err)

	edited, err := h.uc.Edit(ctx, loan.LoanID, EditLoanInput{
		Principal: 2000, Rate: 0.365, TermDays: 100, Installments: 4, Fee: 0,
	})
	require.NoError(t, err)
	// 2000 + 2000*0.365*(100/365) = 2200
	assert.Equal(t, 2200.0, edited.TotalAmount)
	assert.Equal(t, 200.0, edited.PaidAmount)
	assert.Equal(t, "active", edited.Status)
	assert.Equal(t, 4, edited.Installments)
	assert.True(t, edited.DueDate.Equal(loan.StartDate.AddDate(0, 0, 100)))

	due := time.Date(2027, 1, 31, 12, 0, 0, 0, time.UTC)
	edited, err = h.uc.Edit(ctx, loan.LoanID, EditLoanInput{
		Principal: 2000, Rate: 0.365, TermDays: 100, Fee: 0, DueDate: &due,
	})
	require.NoError(t, err)
	assert.True(t, edited.DueDate.Equal(time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)))

	got, err := h.uc.Get(ctx, loan.LoanID)
	require.NoError(t, err)
	assert.Equal(t, 2200.0, got.TotalAmount)
	assert.Equal(t, 2000.0, got.Outstanding)
}

func TestEdit_Errors(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.uc.Edit(ctx, id.NewID32(), EditLoanInput{Principal: 1, TermDays: 1})
	assert.ErrorIs(t, err, domainLoan.ErrNotFound)

	_, err = h.uc.Edit(ctx, id.NewID32(), EditLoanInput{Principal: 0, TermDays: 1})
	assert.ErrorIs(t, err, domainLoan.ErrValidation)

	_, err = h.uc.Get(ctx, id.NewID32())
	assert.ErrorIs(t, err, domainLoan.ErrNotFound)
}

func TestSuggestRate(t *testing.T) {
	ratings := map[string]float64{"low": 1, "mid": 5, "top": 10}
	clients := &clientmock.Repo{
		GetByClientIDFn: func(_ context.Context, id string) (*domainClient.Client, error) {
			r, ok := ratings[id]
			if !ok {
				return nil, domainClient.ErrNotFound
			}
			return &domainClient.Client{ClientID: id, RatingScore: r}, nil
		},
	}
	uc := NewUsecase(&loanmock.Repo{}, clients, nil, 0.2)
	ctx := context.Background()

	tests := []struct {
		client string
		base   float64
		want   float64
		known  bool
	}{
		{"low", 0.15, 0.15, true},
		{"mid", 0.15, 0.1125, true},
		{"top", 0.15, 0.1125, true},
		{"mid", 0, 0.15, true},        // 0.2 - 0.08 floors at 0.2 * 0.75
		{"nobody", 0.15, 0.15, false}, // fallback
		{"nobody", 0, 0.2, false},
	}
	for _, tc := range tests {
		got, err := uc.SuggestRate(ctx, tc.client, tc.base)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got.SuggestedRate, 1e-12, "%s base=%v", tc.client, tc.base)
		assert.Equal(t, tc.known, got.KnownClient)
	}

	boom := errors.New("db down")
	failing := NewUsecase(&loanmock.Repo{}, &clientmock.Repo{
		GetByClientIDFn: func(context.Context, string) (*domainClient.Client, error) { return nil, boom },
	}, nil, 0.15)
	_, err := failing.SuggestRate(ctx, "x", 0.15)
	assert.ErrorIs(t, err, boom)
}

func TestWrites_DropDashboardSnapshot(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	snap := &reportmock.Invalidator{}
	h.uc.WithSnapshots(snap)
	cid := h.client(t)

	loan, err := h.uc.Create(ctx, exampleInput(cid))
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Calls)

	_, err = h.uc.PostPayment(ctx, loan.LoanID, PaymentInput{Amount: 100})
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Calls)

	_, err = h.uc.Edit(ctx, loan.LoanID, EditLoanInput{Principal: 1000, Rate: 0.12, TermDays: 90})
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Calls)

	// failed writes leave the cache alone
	_, err = h.uc.PostPayment(ctx, id.NewID32(), PaymentInput{Amount: 10})
	require.Error(t, err)
	_, err = h.uc.Create(ctx, exampleInput(id.NewID32()))
	require.Error(t, err)
	assert.Equal(t, 3, snap.Calls)
}

func TestWrites_InvalidateErrorDoesNotFailWrite(t *testing.T) {
	h := newHarness(t)
	snap := &reportmock.Invalidator{Err: errors.New("redis down")}
	h.uc.WithSnapshots(snap)
	cid := h.client(t)

	_, err := h.uc.Create(context.Background(), exampleInput(cid))
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Calls)
}
