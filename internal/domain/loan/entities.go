package loan

import (
	"errors"
	"time"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusPaid       Status = "paid"
	StatusDelinquent Status = "delinquent"
)

var (
	ErrNotFound   = errors.New("loan not found")
	ErrValidation = errors.New("invalid loan terms")
)

// Table: loans. ClientID references clients.client_id.
type Loan struct {
	ID              uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	LoanID          string    `gorm:"column:loan_id;size:32;not null;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	ClientID        string    `gorm:"column:client_id;size:32;not null;index:idx_loans_client_status" json:"client_id"`
	PrincipalAmount float64   `gorm:"column:principal_amount;not null" json:"principal_amount"`
	InterestRate    float64   `gorm:"column:interest_rate;not null" json:"interest_rate"`
	LoanTermDays    int       `gorm:"column:loan_term_days;not null" json:"loan_term_days"`
	Installments    int       `gorm:"column:installments;not null;default:1" json:"installments"`
	ProcessingFee   float64   `gorm:"column:processing_fee;not null;default:0" json:"processing_fee"`
	StartDate       time.Time `gorm:"column:start_date;type:date;not null" json:"start_date"`
	DueDate         time.Time `gorm:"column:due_date;type:date;not null;index:idx_loans_status_due" json:"due_date"`
	TotalAmount     float64   `gorm:"column:total_amount;not null" json:"total_amount"`
	PaidAmount      float64   `gorm:"column:paid_amount;not null;default:0" json:"paid_amount"`
	Status          Status    `gorm:"column:status;size:16;not null;default:'active';index:idx_loans_client_status;index:idx_loans_status_due" json:"status"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// StatusCounts is a live tally of one client's loans.
type StatusCounts struct {
	Total      int
	Active     int
	Paid       int
	Delinquent int
}

// Filter narrows List. Zero-valued fields are ignored.
type Filter struct {
	ClientID  string
	Status    Status
	DueBefore time.Time
}
