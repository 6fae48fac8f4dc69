package report

import (
	"time"
)

const dashboardPendingLimit = 10

type StatsDTO struct {
	TotalClients    int64   `json:"total_clients"`
	TotalLoans      int64   `json:"total_loans"`
	ActiveLoans     int64   `json:"active_loans"`
	DelinquentLoans int64   `json:"delinquent_loans"`
	TotalPrincipal  float64 `json:"total_principal"`
	TotalCollected  float64 `json:"total_collected"`
}

type NotificationDTO struct {
	NotificationID   string    `json:"notification_id"`
	LoanID           string    `json:"loan_id"`
	ClientID         string    `json:"client_id"`
	ClientName       string    `json:"client_name"`
	NotificationType string    `json:"notification_type"`
	Message          string    `json:"message"`
	SentDate         time.Time `json:"sent_date"`
	Status           string    `json:"status"`
}

type DashboardDTO struct {
	Stats               StatsDTO          `json:"stats"`
	RecentNotifications []NotificationDTO `json:"recent_notifications"`
	GeneratedAt         time.Time         `json:"generated_at"`
}

type LoanRowDTO struct {
	LoanID          string    `json:"loan_id"`
	ClientID        string    `json:"client_id"`
	ClientName      string    `json:"client_name"`
	PrincipalAmount float64   `json:"principal_amount"`
	InterestRate    float64   `json:"interest_rate"`
	TotalAmount     float64   `json:"total_amount"`
	PaidAmount      float64   `json:"paid_amount"`
	Outstanding     float64   `json:"outstanding"`
	StartDate       time.Time `json:"start_date"`
	DueDate         time.Time `json:"due_date"`
	Status          string    `json:"status"`
}

type PaymentDTO struct {
	PaymentID     string    `json:"payment_id"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes"`
}

type ClientBriefDTO struct {
	ClientID      string  `json:"client_id"`
	CompanyName   *string `json:"company_name"`
	ContactPerson string  `json:"contact_person"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	RatingScore   float64 `json:"rating_score"`
}

type LoanNotificationDTO struct {
	NotificationID   string    `json:"notification_id"`
	NotificationType string    `json:"notification_type"`
	Message          string    `json:"message"`
	SentDate         time.Time `json:"sent_date"`
	Status           string    `json:"status"`
}

// LoanSummaryDTO is a loan with its client, payment history and
// notifications, newest first. PaymentsTotal is summed from the payment
// rows and matches PaidAmount unless the ledger has drifted.
type LoanSummaryDTO struct {
	LoanID          string                `json:"loan_id"`
	PrincipalAmount float64               `json:"principal_amount"`
	InterestRate    float64               `json:"interest_rate"`
	LoanTermDays    int                   `json:"loan_term_days"`
	Installments    int                   `json:"installments"`
	ProcessingFee   float64               `json:"processing_fee"`
	StartDate       time.Time             `json:"start_date"`
	DueDate         time.Time             `json:"due_date"`
	TotalAmount     float64               `json:"total_amount"`
	PaidAmount      float64               `json:"paid_amount"`
	Outstanding     float64               `json:"outstanding"`
	Status          string                `json:"status"`
	Client          ClientBriefDTO        `json:"client"`
	Payments        []PaymentDTO          `json:"payments"`
	PaymentsTotal   float64               `json:"payments_total"`
	Notifications   []LoanNotificationDTO `json:"notifications"`
}
