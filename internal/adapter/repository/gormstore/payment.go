package gormstore

import (
	"context"

	paymentDomain "loan-ledger/internal/domain/payment"

	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanID string) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("payment_date DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *PaymentRepository) SumByLoanID(ctx context.Context, loanID string) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&paymentDomain.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("loan_id = ?", loanID).
		Scan(&sum).Error
	return sum, err
}
