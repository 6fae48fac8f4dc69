package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	domainReport "loan-ledger/internal/domain/report"
	"loan-ledger/internal/usecase/report"

	"github.com/redis/go-redis/v9"
)

const dashboardKey = "ledger:dashboard:v1"

// DashboardCache stores the dashboard snapshot in redis under a TTL.
// Ledger writes call Invalidate so the next read rebuilds it.
type DashboardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

var (
	_ report.SnapshotCache             = (*DashboardCache)(nil)
	_ domainReport.SnapshotInvalidator = (*DashboardCache)(nil)
)

func NewDashboardCache(rdb *redis.Client, ttl time.Duration) *DashboardCache {
	return &DashboardCache{rdb: rdb, ttl: ttl}
}

func (c *DashboardCache) Load(ctx context.Context) (*report.DashboardDTO, error) {
	v, err := c.rdb.Get(ctx, dashboardKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var d report.DashboardDTO
	if err := json.Unmarshal(v, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *DashboardCache) Store(ctx context.Context, d *report.DashboardDTO) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, dashboardKey, payload, c.ttl).Err()
}

func (c *DashboardCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, dashboardKey).Err()
}
