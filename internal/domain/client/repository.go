package client

import "context"

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByClientID(ctx context.Context, clientID string) (*Client, error)

	// List returns every client ordered by company name.
	List(ctx context.Context) ([]Client, error)
	// Save writes the contact fields only.
	Save(ctx context.Context, c *Client) error

	// Counters and rating are only ever written by the ledger.
	UpdateStanding(ctx context.Context, clientID string, s Standing) error
	UpdateRating(ctx context.Context, clientID string, rating float64) error
}
