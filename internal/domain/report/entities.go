package report

import (
	"loan-ledger/internal/domain/loan"
	"loan-ledger/internal/domain/notification"
)

// Stats are portfolio-wide aggregates for the dashboard.
type Stats struct {
	TotalClients    int64
	TotalLoans      int64
	ActiveLoans     int64
	DelinquentLoans int64
	TotalPrincipal  float64
	// TotalCollected sums total_amount of paid loans.
	TotalCollected float64
}

// LoanView is a loan joined with its client's names.
type LoanView struct {
	loan.Loan     `gorm:"embedded"`
	CompanyName   *string `gorm:"column:company_name"`
	ContactPerson string  `gorm:"column:contact_person"`
}

// NotificationView is a notification joined through its loan to the client.
type NotificationView struct {
	notification.Notification `gorm:"embedded"`
	ClientID                  string  `gorm:"column:client_id"`
	CompanyName               *string `gorm:"column:company_name"`
	ContactPerson             string  `gorm:"column:contact_person"`
}
