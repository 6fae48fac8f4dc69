package notification

import (
	"fmt"
	"time"

	"loan-ledger/pkg/money"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusHandled Status = "handled"
)

const TypeDelinquent = "delinquent"

// Table: notifications. The ledger only appends; Status is flipped by
// whoever works the queue.
type Notification struct {
	ID               uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	NotificationID   string    `gorm:"column:notification_id;size:32;not null;uniqueIndex:ux_notifications_notification_id" json:"notification_id"`
	LoanID           string    `gorm:"column:loan_id;size:32;not null;index" json:"loan_id"`
	NotificationType string    `gorm:"column:notification_type;size:32;not null" json:"notification_type"`
	Message          string    `gorm:"column:message;type:text;not null" json:"message"`
	SentDate         time.Time `gorm:"column:sent_date;type:date;not null" json:"sent_date"`
	Status           Status    `gorm:"column:status;size:16;not null;default:'pending';index:idx_notifications_status_sent" json:"status"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime;index:idx_notifications_status_sent" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

func DelinquencyMessage(loanID string, daysOverdue int, outstanding float64) string {
	return fmt.Sprintf("Loan #%s is %d days overdue. Outstanding amount: $%s",
		loanID, daysOverdue, money.Format2(outstanding))
}
