package gormstore

import (
	"context"
	"errors"
	"testing"

	domain "loan-ledger/internal/domain/client"
	"loan-ledger/internal/testutil/testdb"
	"loan-ledger/pkg/id"
)

func strPtr(s string) *string { return &s }

func makeClient(clientID string, company *string) *domain.Client {
	return &domain.Client{
		ClientID:      clientID,
		CompanyName:   company,
		ContactPerson: "Ada Lovelace",
		Email:         "ada@example.com",
		Phone:         "876-555-0101",
		StreetAddress: strPtr("1 Harbour St"),
		City:          strPtr("Kingston"),
		Region:        "St. Andrew",
		RatingScore:   domain.DefaultRating,
	}
}

func TestClient_CreateAndGet(t *testing.T) {
	repo := NewClientRepository(testdb.Open(t))
	ctx := context.Background()

	cid := id.NewID32()
	in := makeClient(cid, strPtr("Acme Ltd"))
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if in.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByClientID(ctx, cid)
	if err != nil {
		t.Fatalf("GetByClientID: %v", err)
	}
	if got.ContactPerson != "Ada Lovelace" || got.Region != "St. Andrew" || got.CompanyName == nil || *got.CompanyName != "Acme Ltd" {
		t.Errorf("unexpected client: %+v", got)
	}
	if got.RatingScore != 5.0 || got.TotalLoans != 0 {
		t.Errorf("unexpected defaults: rating=%v total=%d", got.RatingScore, got.TotalLoans)
	}
}

func TestClient_NotFound(t *testing.T) {
	repo := NewClientRepository(testdb.Open(t))
	if _, err := repo.GetByClientID(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_DuplicateEmailAllowed(t *testing.T) {
	repo := NewClientRepository(testdb.Open(t))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.Create(ctx, makeClient(id.NewID32(), nil)); err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
	}
	all, err := repo.List(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("List: len=%d err=%v", len(all), err)
	}
}

func TestClient_ListOrderedByCompany(t *testing.T) {
	repo := NewClientRepository(testdb.Open(t))
	ctx := context.Background()

	for _, name := range []string{"Zeta Co", "Acme Ltd", "Mango Inc"} {
		if err := repo.Create(ctx, makeClient(id.NewID32(), strPtr(name))); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Acme Ltd", "Mango Inc", "Zeta Co"}
	for i, c := range all {
		if *c.CompanyName != want[i] {
			t.Fatalf("List[%d] = %s, want %s", i, *c.CompanyName, want[i])
		}
	}
}

func TestClient_SaveClearsOptionalFields(t *testing.T) {
	repo := NewClientRepository(testdb.Open(t))
	ctx := context.Background()

	cid := id.NewID32()
	c := makeClient(cid, strPtr("Acme Ltd"))
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	c.CompanyName = nil
	c.City = nil
	c.Email = "new@example.com"
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, _ := repo.GetByClientID(ctx, cid)
	if got.CompanyName != nil || got.City != nil || got.Email != "new@example.com" {
		t.Fatalf("Save did not overwrite: %+v", got)
	}
	if got.StreetAddress == nil || *got.StreetAddress != "1 Harbour St" {
		t.Fatalf("untouched field lost: %+v", got.StreetAddress)
	}
}

func TestClient_UpdateStandingAndRating(t *testing.T) {
	repo := NewClientRepository(testdb.Open(t))
	ctx := context.Background()

	cid := id.NewID32()
	if err := repo.Create(ctx, makeClient(cid, nil)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.UpdateStanding(ctx, cid, domain.Standing{TotalLoans: 4, PaidLoans: 3, DelinquentLoans: 1}); err != nil {
		t.Fatalf("UpdateStanding: %v", err)
	}
	if err := repo.UpdateRating(ctx, cid, 6.5); err != nil {
		t.Fatalf("UpdateRating: %v", err)
	}

	got, _ := repo.GetByClientID(ctx, cid)
	if got.Standing() != (domain.Standing{TotalLoans: 4, PaidLoans: 3, DelinquentLoans: 1}) {
		t.Fatalf("standing = %+v", got.Standing())
	}
	if got.RatingScore != 6.5 {
		t.Fatalf("rating = %v, want 6.5", got.RatingScore)
	}
}

func TestClient_SaveLeavesCountersAndRating(t *testing.T) {
	repo := NewClientRepository(testdb.Open(t))
	ctx := context.Background()

	cid := id.NewID32()
	stale := makeClient(cid, nil)
	if err := repo.Create(ctx, stale); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.UpdateStanding(ctx, cid, domain.Standing{TotalLoans: 2, PaidLoans: 2}); err != nil {
		t.Fatalf("UpdateStanding: %v", err)
	}
	if err := repo.UpdateRating(ctx, cid, 7.5); err != nil {
		t.Fatalf("UpdateRating: %v", err)
	}

	// stale still carries zero counters and the default rating
	stale.Phone = "876-555-0199"
	if err := repo.Save(ctx, stale); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, _ := repo.GetByClientID(ctx, cid)
	if got.Phone != "876-555-0199" {
		t.Fatalf("phone = %q", got.Phone)
	}
	if got.Standing() != (domain.Standing{TotalLoans: 2, PaidLoans: 2}) || got.RatingScore != 7.5 {
		t.Fatalf("Save overwrote ledger columns: standing=%+v rating=%v", got.Standing(), got.RatingScore)
	}
}
