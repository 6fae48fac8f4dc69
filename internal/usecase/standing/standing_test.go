package standing

import (
	"context"
	"errors"
	"testing"

	"loan-ledger/internal/domain/client"
	"loan-ledger/internal/domain/loan"
	"loan-ledger/internal/testutil/clientmock"
	"loan-ledger/internal/testutil/loanmock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefresh_WritesLiveCounts(t *testing.T) {
	var written client.Standing
	clients := &clientmock.Repo{
		UpdateStandingFn: func(_ context.Context, id string, s client.Standing) error {
			assert.Equal(t, "CL-1", id)
			written = s
			return nil
		},
	}
	loans := &loanmock.Repo{
		CountByStatusFn: func(context.Context, string) (loan.StatusCounts, error) {
			return loan.StatusCounts{Total: 5, Active: 1, Paid: 3, Delinquent: 1}, nil
		},
	}

	got, err := Refresh(context.Background(), clients, loans, "CL-1")
	require.NoError(t, err)
	want := client.Standing{TotalLoans: 5, PaidLoans: 3, DelinquentLoans: 1}
	assert.Equal(t, want, got)
	assert.Equal(t, want, written)
}

func TestRerate(t *testing.T) {
	var rating float64
	clients := &clientmock.Repo{
		UpdateRatingFn: func(_ context.Context, _ string, r float64) error {
			rating = r
			return nil
		},
	}
	loans := &loanmock.Repo{
		CountByStatusFn: func(context.Context, string) (loan.StatusCounts, error) {
			// paid 9/10 => +2.5, delinquent 1/10 => not above 0.1
			return loan.StatusCounts{Total: 10, Paid: 9, Delinquent: 1}, nil
		},
	}

	s, got, err := Rerate(context.Background(), clients, loans, "CL-1")
	require.NoError(t, err)
	assert.Equal(t, client.Standing{TotalLoans: 10, PaidLoans: 9, DelinquentLoans: 1}, s)
	assert.Equal(t, 7.5, got)
	assert.Equal(t, 7.5, rating)
}

func TestRerate_Errors(t *testing.T) {
	boom := errors.New("boom")

	_, _, err := Rerate(context.Background(), &clientmock.Repo{}, &loanmock.Repo{}, "CL")
	assert.ErrorIs(t, err, context.Canceled)

	okCounts := &loanmock.Repo{
		CountByStatusFn: func(context.Context, string) (loan.StatusCounts, error) {
			return loan.StatusCounts{}, nil
		},
	}
	_, _, err = Rerate(context.Background(), &clientmock.Repo{
		UpdateStandingFn: func(context.Context, string, client.Standing) error { return boom },
	}, okCounts, "CL")
	assert.ErrorIs(t, err, boom)

	_, _, err = Rerate(context.Background(), &clientmock.Repo{
		UpdateRatingFn: func(context.Context, string, float64) error { return boom },
	}, okCounts, "CL")
	assert.ErrorIs(t, err, boom)
}
