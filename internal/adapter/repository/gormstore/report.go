package gormstore

import (
	"context"

	clientDomain "loan-ledger/internal/domain/client"
	loanDomain "loan-ledger/internal/domain/loan"
	notificationDomain "loan-ledger/internal/domain/notification"
	reportDomain "loan-ledger/internal/domain/report"

	"gorm.io/gorm"
)

type ReportRepository struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{db: db} }

func (r *ReportRepository) Stats(ctx context.Context) (reportDomain.Stats, error) {
	var s reportDomain.Stats
	db := r.db.WithContext(ctx)

	if err := db.Model(&clientDomain.Client{}).Count(&s.TotalClients).Error; err != nil {
		return s, err
	}
	if err := db.Model(&loanDomain.Loan{}).Count(&s.TotalLoans).Error; err != nil {
		return s, err
	}
	if err := db.Model(&loanDomain.Loan{}).
		Where("status = ?", loanDomain.StatusActive).
		Count(&s.ActiveLoans).Error; err != nil {
		return s, err
	}
	if err := db.Model(&loanDomain.Loan{}).
		Where("status = ?", loanDomain.StatusDelinquent).
		Count(&s.DelinquentLoans).Error; err != nil {
		return s, err
	}
	if err := db.Model(&loanDomain.Loan{}).
		Select("COALESCE(SUM(principal_amount), 0)").
		Scan(&s.TotalPrincipal).Error; err != nil {
		return s, err
	}
	if err := db.Model(&loanDomain.Loan{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ?", loanDomain.StatusPaid).
		Scan(&s.TotalCollected).Error; err != nil {
		return s, err
	}
	return s, nil
}

func (r *ReportRepository) PendingNotifications(ctx context.Context, limit int) ([]reportDomain.NotificationView, error) {
	q := r.db.WithContext(ctx).
		Table("notifications").
		Select("notifications.*, loans.client_id, clients.company_name, clients.contact_person").
		Joins("JOIN loans ON loans.loan_id = notifications.loan_id").
		Joins("JOIN clients ON clients.client_id = loans.client_id").
		Where("notifications.status = ?", notificationDomain.StatusPending).
		Order("notifications.sent_date DESC, notifications.id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []reportDomain.NotificationView
	err := q.Scan(&out).Error
	return out, err
}

func (r *ReportRepository) Loans(ctx context.Context) ([]reportDomain.LoanView, error) {
	var out []reportDomain.LoanView
	err := r.db.WithContext(ctx).
		Table("loans").
		Select("loans.*, clients.company_name, clients.contact_person").
		Joins("JOIN clients ON clients.client_id = loans.client_id").
		Order("loans.created_at DESC, loans.id DESC").
		Scan(&out).Error
	return out, err
}
