package gormstore

import (
	"context"
	"errors"

	loanDomain "loan-ledger/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// Tx runs fn in a db transaction, passing a repo bound to the tx
func (r *LoanRepository) Tx(ctx context.Context, fn func(repo loanDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&LoanRepository{db: tx})
	})
}

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

// GetByLoanIDForUpdate issues SELECT ... FOR UPDATE. SQLite drops the
// locking clause and relies on its database-level write lock instead.
func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) List(ctx context.Context, f loanDomain.Filter) ([]loanDomain.Loan, error) {
	q := r.db.WithContext(ctx).Model(&loanDomain.Loan{})
	if f.ClientID != "" {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.DueBefore.IsZero() {
		q = q.Where("due_date < ?", f.DueBefore)
	}
	var out []loanDomain.Loan
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *LoanRepository) TransitionStatus(ctx context.Context, loanID string, from, to loanDomain.Status) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("loan_id = ? AND status = ?", loanID, from).
		Update("status", to)
	return res.RowsAffected > 0, res.Error
}

type statusCount struct {
	Status loanDomain.Status
	N      int
}

func (r *LoanRepository) CountByStatus(ctx context.Context, clientID string) (loanDomain.StatusCounts, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Select("status, COUNT(*) AS n").
		Where("client_id = ?", clientID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return loanDomain.StatusCounts{}, err
	}

	var out loanDomain.StatusCounts
	for _, row := range rows {
		out.Total += row.N
		switch row.Status {
		case loanDomain.StatusActive:
			out.Active = row.N
		case loanDomain.StatusPaid:
			out.Paid = row.N
		case loanDomain.StatusDelinquent:
			out.Delinquent = row.N
		}
	}
	return out, nil
}
