package payment

import (
	"errors"
	"time"
)

const MethodCash = "cash"

var (
	ErrInvalidAmount = errors.New("payment amount must be greater than 0")
)

// Table: payments. Rows are append-only.
type Payment struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	PaymentID     string    `gorm:"column:payment_id;size:32;not null;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanID        string    `gorm:"column:loan_id;size:32;not null;index:idx_payments_loan_date" json:"loan_id"`
	Amount        float64   `gorm:"column:amount;not null" json:"amount"`
	PaymentDate   time.Time `gorm:"column:payment_date;type:date;not null;index:idx_payments_loan_date" json:"payment_date"`
	PaymentMethod string    `gorm:"column:payment_method;size:32" json:"payment_method"`
	Notes         string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }
