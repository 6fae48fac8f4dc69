package db

import (
	"loan-ledger/internal/domain/client"
	"loan-ledger/internal/domain/loan"
	"loan-ledger/internal/domain/notification"
	"loan-ledger/internal/domain/payment"

	"gorm.io/gorm"
)

// Migrate creates or updates the four ledger tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&client.Client{},
		&loan.Loan{},
		&payment.Payment{},
		&notification.Notification{},
	)
}
