// Package standing keeps a client's denormalized loan counters and rating in
// step with the live status of its loans. Callers pass repositories bound to
// the transaction that changed the loan.
package standing

import (
	"context"
	"fmt"

	"loan-ledger/internal/domain/client"
	"loan-ledger/internal/domain/loan"
)

func fromCounts(c loan.StatusCounts) client.Standing {
	return client.Standing{
		TotalLoans:      c.Total,
		PaidLoans:       c.Paid,
		DelinquentLoans: c.Delinquent,
	}
}

// Refresh rewrites the client's counters from a live tally of its loans.
func Refresh(ctx context.Context, clients client.Repository, loans loan.Repository, clientID string) (client.Standing, error) {
	counts, err := loans.CountByStatus(ctx, clientID)
	if err != nil {
		return client.Standing{}, fmt.Errorf("count loans: %w", err)
	}
	s := fromCounts(counts)
	if err := clients.UpdateStanding(ctx, clientID, s); err != nil {
		return client.Standing{}, fmt.Errorf("update standing: %w", err)
	}
	return s, nil
}

// Rerate refreshes the counters and stores a rating computed from them.
func Rerate(ctx context.Context, clients client.Repository, loans loan.Repository, clientID string) (client.Standing, float64, error) {
	s, err := Refresh(ctx, clients, loans, clientID)
	if err != nil {
		return client.Standing{}, 0, err
	}
	rating := client.ComputeRating(s)
	if err := clients.UpdateRating(ctx, clientID, rating); err != nil {
		return client.Standing{}, 0, fmt.Errorf("update rating: %w", err)
	}
	return s, rating, nil
}
