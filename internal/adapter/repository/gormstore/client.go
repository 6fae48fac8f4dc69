package gormstore

import (
	"context"
	"errors"

	clientDomain "loan-ledger/internal/domain/client"

	"gorm.io/gorm"
)

type ClientRepository struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) *ClientRepository { return &ClientRepository{db: db} }

func (r *ClientRepository) Create(ctx context.Context, c *clientDomain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// contactColumns are the only columns Save writes; counters and rating
// belong to the ledger.
var contactColumns = []string{
	"company_name", "contact_person", "email", "phone", "street_address", "city", "parish", "updated_at",
}

func (r *ClientRepository) Save(ctx context.Context, c *clientDomain.Client) error {
	return r.db.WithContext(ctx).
		Model(&clientDomain.Client{}).
		Where("client_id = ?", c.ClientID).
		Select(contactColumns).
		Updates(c).Error
}

func (r *ClientRepository) GetByClientID(ctx context.Context, clientID string) (*clientDomain.Client, error) {
	var out clientDomain.Client
	res := r.db.WithContext(ctx).Where("client_id = ?", clientID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, clientDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ClientRepository) List(ctx context.Context) ([]clientDomain.Client, error) {
	var out []clientDomain.Client
	err := r.db.WithContext(ctx).
		Order("company_name ASC, contact_person ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *ClientRepository) UpdateStanding(ctx context.Context, clientID string, s clientDomain.Standing) error {
	return r.db.WithContext(ctx).
		Model(&clientDomain.Client{}).
		Where("client_id = ?", clientID).
		Updates(map[string]any{
			"total_loans":      s.TotalLoans,
			"paid_loans":       s.PaidLoans,
			"delinquent_loans": s.DelinquentLoans,
		}).Error
}

func (r *ClientRepository) UpdateRating(ctx context.Context, clientID string, rating float64) error {
	return r.db.WithContext(ctx).
		Model(&clientDomain.Client{}).
		Where("client_id = ?", clientID).
		Update("rating_score", rating).Error
}
