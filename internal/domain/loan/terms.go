package loan

import (
	"fmt"
	"math"
	"time"
)

const (
	DaysPerYear = 365.0

	ratingDiscountPerPoint = 0.02
	minRateFactor          = 0.75
)

// Terms are the priced inputs of a loan.
type Terms struct {
	Principal    float64
	Rate         float64
	TermDays     int
	Installments int
	Fee          float64
}

func (t Terms) Validate() error {
	switch {
	case t.Principal <= 0:
		return fmt.Errorf("%w: principal must be greater than 0", ErrValidation)
	case t.Rate < 0:
		return fmt.Errorf("%w: interest rate must not be negative", ErrValidation)
	case t.TermDays <= 0:
		return fmt.Errorf("%w: term must be at least 1 day", ErrValidation)
	case t.Installments < 1:
		return fmt.Errorf("%w: installments must be at least 1", ErrValidation)
	case t.Fee < 0:
		return fmt.Errorf("%w: processing fee must not be negative", ErrValidation)
	}
	return nil
}

// Interest is simple interest over a 365-day year.
func Interest(principal, rate float64, termDays int) float64 {
	return principal * rate * (float64(termDays) / DaysPerYear)
}

func TotalAmount(t Terms) float64 {
	return t.Principal + Interest(t.Principal, t.Rate, t.TermDays) + t.Fee
}

// SuggestRate discounts baseRate by 2 points per rating point above 1,
// never going below 75% of baseRate.
func SuggestRate(rating, baseRate float64) float64 {
	discount := (rating - 1) * ratingDiscountPerPoint
	return math.Max(baseRate-discount, baseRate*minRateFactor)
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// New prices a fresh active loan starting on today.
func New(loanID, clientID string, t Terms, today time.Time) *Loan {
	start := Day(today)
	return &Loan{
		LoanID:          loanID,
		ClientID:        clientID,
		PrincipalAmount: t.Principal,
		InterestRate:    t.Rate,
		LoanTermDays:    t.TermDays,
		Installments:    t.Installments,
		ProcessingFee:   t.Fee,
		StartDate:       start,
		DueDate:         start.AddDate(0, 0, t.TermDays),
		TotalAmount:     TotalAmount(t),
		Status:          StatusActive,
	}
}

func (l *Loan) Terms() Terms {
	return Terms{
		Principal:    l.PrincipalAmount,
		Rate:         l.InterestRate,
		TermDays:     l.LoanTermDays,
		Installments: l.Installments,
		Fee:          l.ProcessingFee,
	}
}

// Reprice overwrites the terms and due date and recomputes the total.
// PaidAmount and Status are left untouched.
func (l *Loan) Reprice(t Terms, due time.Time) {
	l.PrincipalAmount = t.Principal
	l.InterestRate = t.Rate
	l.LoanTermDays = t.TermDays
	l.Installments = t.Installments
	l.ProcessingFee = t.Fee
	l.DueDate = Day(due)
	l.TotalAmount = TotalAmount(t)
}

// Outstanding may be negative after an overpayment.
func (l *Loan) Outstanding() float64 { return l.TotalAmount - l.PaidAmount }

// ApplyPayment adds amount to PaidAmount and reports whether this call
// settled the loan. A loan settles at most once.
func (l *Loan) ApplyPayment(amount float64) bool {
	l.PaidAmount += amount
	if l.Status != StatusPaid && l.PaidAmount >= l.TotalAmount {
		l.Status = StatusPaid
		return true
	}
	return false
}

func (l *Loan) IsOverdue(today time.Time) bool {
	return l.Status == StatusActive && l.DueDate.Before(Day(today))
}

func (l *Loan) DaysOverdue(today time.Time) int {
	return int(Day(today).Sub(Day(l.DueDate)).Hours() / 24)
}
