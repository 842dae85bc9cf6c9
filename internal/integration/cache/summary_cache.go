// Package cache implements the Redis-backed summary cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
)

const keyPrefix = "summary"

type cachedSummary struct {
	UserID               uuid.UUID       `json:"userId"`
	Month                string          `json:"month"`
	Label                string          `json:"label"`
	TotalIncome          decimal.Decimal `json:"totalIncome"`
	TotalExpenses        decimal.Decimal `json:"totalExpenses"`
	Balance              decimal.Decimal `json:"balance"`
	Saving               int             `json:"saving"`
	SavingBalance        decimal.Decimal `json:"savingBalance"`
	RecommendedSavings   decimal.Decimal `json:"recommendedSavings"`
	SavingRate           int             `json:"savingRate"`
	PreviousMonthBalance decimal.Decimal `json:"previousMonthBalance"`
	CreatedAt            time.Time       `json:"createdAt"`
	LastUpdated          *time.Time      `json:"lastUpdated,omitempty"`
}

// summaryCache implements adapter.SummaryCache on Redis.
type summaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a summary cache with the given entry TTL.
func NewSummaryCache(client *redis.Client, ttl time.Duration) adapter.SummaryCache {
	return &summaryCache{client: client, ttl: ttl}
}

// Key returns the Redis key of a user's month.
func Key(userID uuid.UUID, month valueobject.MonthKey) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, userID, month)
}

func (c *summaryCache) Get(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) (*entity.MonthlySummary, error) {
	raw, err := c.client.Get(ctx, Key(userID, month)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached summary: %w", err)
	}

	var payload cachedSummary
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode cached summary: %w", err)
	}

	parsed, err := valueobject.ParseMonthKey(payload.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cached summary: %w", err)
	}

	return &entity.MonthlySummary{
		UserID:               payload.UserID,
		Month:                parsed,
		Label:                payload.Label,
		TotalIncome:          payload.TotalIncome,
		TotalExpenses:        payload.TotalExpenses,
		Balance:              payload.Balance,
		Saving:               payload.Saving,
		SavingBalance:        payload.SavingBalance,
		RecommendedSavings:   payload.RecommendedSavings,
		SavingRate:           payload.SavingRate,
		PreviousMonthBalance: payload.PreviousMonthBalance,
		CreatedAt:            payload.CreatedAt,
		LastUpdated:          payload.LastUpdated,
	}, nil
}

func (c *summaryCache) Set(ctx context.Context, summary *entity.MonthlySummary) error {
	raw, err := json.Marshal(cachedSummary{
		UserID:               summary.UserID,
		Month:                summary.Month.String(),
		Label:                summary.Label,
		TotalIncome:          summary.TotalIncome,
		TotalExpenses:        summary.TotalExpenses,
		Balance:              summary.Balance,
		Saving:               summary.Saving,
		SavingBalance:        summary.SavingBalance,
		RecommendedSavings:   summary.RecommendedSavings,
		SavingRate:           summary.SavingRate,
		PreviousMonthBalance: summary.PreviousMonthBalance,
		CreatedAt:            summary.CreatedAt,
		LastUpdated:          summary.LastUpdated,
	})
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	if err := c.client.Set(ctx, Key(summary.UserID, summary.Month), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache summary: %w", err)
	}
	return nil
}

func (c *summaryCache) Invalidate(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) error {
	if err := c.client.Del(ctx, Key(userID, month)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached summary: %w", err)
	}
	return nil
}
