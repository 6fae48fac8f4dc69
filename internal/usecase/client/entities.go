package client

import (
	"time"
)

// ClientInput carries every contact field; Edit overwrites all of them.
// Empty optional fields are stored as NULL.
type ClientInput struct {
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	Region        string `json:"region"`
}

type ClientDTO struct {
	ClientID        string    `json:"client_id"`
	CompanyName     *string   `json:"company_name"`
	ContactPerson   string    `json:"contact_person"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	StreetAddress   *string   `json:"street_address"`
	City            *string   `json:"city"`
	Region          string    `json:"region"`
	RatingScore     float64   `json:"rating_score"`
	TotalLoans      int       `json:"total_loans"`
	PaidLoans       int       `json:"paid_loans"`
	DelinquentLoans int       `json:"delinquent_loans"`
	CreatedAt       time.Time `json:"created_at"`
}

type LoanBriefDTO struct {
	LoanID          string    `json:"loan_id"`
	PrincipalAmount float64   `json:"principal_amount"`
	InterestRate    float64   `json:"interest_rate"`
	TotalAmount     float64   `json:"total_amount"`
	PaidAmount      float64   `json:"paid_amount"`
	Outstanding     float64   `json:"outstanding"`
	StartDate       time.Time `json:"start_date"`
	DueDate         time.Time `json:"due_date"`
	Status          string    `json:"status"`
}

// ClientDetailDTO is a client with its loans, newest first.
type ClientDetailDTO struct {
	ClientDTO
	Loans []LoanBriefDTO `json:"loans"`
}

type RatingDTO struct {
	ClientID        string  `json:"client_id"`
	RatingScore     float64 `json:"rating_score"`
	TotalLoans      int     `json:"total_loans"`
	PaidLoans       int     `json:"paid_loans"`
	DelinquentLoans int     `json:"delinquent_loans"`
}
