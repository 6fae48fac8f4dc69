package loan

import (
	"time"
)

type CreateLoanInput struct {
	ClientID  string  `json:"client_id"`
	Principal float64 `json:"principal_amount"`
	Rate      float64 `json:"interest_rate"`
	TermDays  int     `json:"loan_term_days"`
	// Installments defaults to 1 when zero.
	Installments int     `json:"installments"`
	Fee          float64 `json:"processing_fee"`
}

type EditLoanInput struct {
	Principal    float64 `json:"principal_amount"`
	Rate         float64 `json:"interest_rate"`
	TermDays     int     `json:"loan_term_days"`
	Installments int     `json:"installments"`
	Fee          float64 `json:"processing_fee"`
	// DueDate nil => start_date + term.
	DueDate *time.Time `json:"due_date"`
}

type PaymentInput struct {
	Amount float64 `json:"amount"`
	Method string  `json:"payment_method"`
	Notes  string  `json:"notes"`
}

type LoanDTO struct {
	LoanID          string    `json:"loan_id"`
	ClientID        string    `json:"client_id"`
	PrincipalAmount float64   `json:"principal_amount"`
	InterestRate    float64   `json:"interest_rate"`
	LoanTermDays    int       `json:"loan_term_days"`
	Installments    int       `json:"installments"`
	ProcessingFee   float64   `json:"processing_fee"`
	StartDate       time.Time `json:"start_date"`
	DueDate         time.Time `json:"due_date"`
	TotalAmount     float64   `json:"total_amount"`
	PaidAmount      float64   `json:"paid_amount"`
	Outstanding     float64   `json:"outstanding"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type PaymentDTO struct {
	PaymentID     string    `json:"payment_id"`
	LoanID        string    `json:"loan_id"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes"`
	// Loan state after the payment.
	LoanStatus  string  `json:"loan_status"`
	PaidAmount  float64 `json:"paid_amount"`
	Outstanding float64 `json:"outstanding"`
	Settled     bool    `json:"settled"`
}

type RateSuggestionDTO struct {
	ClientID      string  `json:"client_id"`
	RatingScore   float64 `json:"rating_score"`
	BaseRate      float64 `json:"base_rate"`
	SuggestedRate float64 `json:"suggested_rate"`
	// KnownClient is false when the rate fell back to BaseRate.
	KnownClient bool `json:"known_client"`
}
