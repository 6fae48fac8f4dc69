package client

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("client not found")
	ErrValidation = errors.New("invalid client")
)

const (
	DefaultRating = 5.0
	MinRating     = 1.0
	MaxRating     = 10.0
)

// Table: clients. Region is kept in the legacy "parish" column.
type Client struct {
	ID              uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ClientID        string    `gorm:"column:client_id;size:32;not null;uniqueIndex:ux_clients_client_id" json:"client_id"`
	CompanyName     *string   `gorm:"column:company_name;size:255;index:idx_clients_company_name" json:"company_name"`
	ContactPerson   string    `gorm:"column:contact_person;size:255;not null" json:"contact_person"`
	Email           string    `gorm:"column:email;size:255;not null" json:"email"`
	Phone           string    `gorm:"column:phone;size:64;not null" json:"phone"`
	StreetAddress   *string   `gorm:"column:street_address;size:255" json:"street_address"`
	City            *string   `gorm:"column:city;size:128" json:"city"`
	Region          string    `gorm:"column:parish;size:128;not null" json:"region"`
	RatingScore     float64   `gorm:"column:rating_score;not null;default:5" json:"rating_score"`
	TotalLoans      int       `gorm:"column:total_loans;not null;default:0" json:"total_loans"`
	PaidLoans       int       `gorm:"column:paid_loans;not null;default:0" json:"paid_loans"`
	DelinquentLoans int       `gorm:"column:delinquent_loans;not null;default:0" json:"delinquent_loans"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Client) TableName() string { return "clients" }

// Standing is the loan-history snapshot denormalized onto the client row.
type Standing struct {
	TotalLoans      int
	PaidLoans       int
	DelinquentLoans int
}

func (c *Client) Standing() Standing {
	return Standing{TotalLoans: c.TotalLoans, PaidLoans: c.PaidLoans, DelinquentLoans: c.DelinquentLoans}
}
