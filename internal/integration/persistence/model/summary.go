package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/wallet/internal/domain/entity"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
)

// MonthlySummaryModel represents the monthly_summaries table. A user has at
// most one row per month. Money fields are stored in cents.
type MonthlySummaryModel struct {
	UserID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Month                string     `gorm:"type:varchar(7);primaryKey"`
	Label                string     `gorm:"type:varchar(32);not null"`
	TotalIncome          int64      `gorm:"type:bigint;not null;default:0"`
	TotalExpenses        int64      `gorm:"type:bigint;not null;default:0"`
	Balance              int64      `gorm:"type:bigint;not null;default:0"`
	Saving               int        `gorm:"not null;default:0"`
	SavingBalance        int64      `gorm:"type:bigint;not null;default:0"`
	RecommendedSavings   int64      `gorm:"type:bigint;not null;default:0"`
	SavingRate           int        `gorm:"not null;default:0"`
	PreviousMonthBalance int64      `gorm:"type:bigint;not null;default:0"`
	CreatedAt            time.Time  `gorm:"not null"`
	LastUpdated          *time.Time `gorm:"type:timestamp"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the MonthlySummaryModel.
func (MonthlySummaryModel) TableName() string {
	return "monthly_summaries"
}

// ToEntity converts a MonthlySummaryModel to a domain MonthlySummary entity.
func (m *MonthlySummaryModel) ToEntity() *entity.MonthlySummary {
	month, _ := valueobject.ParseMonthKey(m.Month)
	var lastUpdated *time.Time
	if m.LastUpdated != nil {
		utc := m.LastUpdated.UTC()
		lastUpdated = &utc
	}
	return &entity.MonthlySummary{
		UserID:               m.UserID,
		Month:                month,
		Label:                m.Label,
		TotalIncome:          FromCents(m.TotalIncome),
		TotalExpenses:        FromCents(m.TotalExpenses),
		Balance:              FromCents(m.Balance),
		Saving:               m.Saving,
		SavingBalance:        FromCents(m.SavingBalance),
		RecommendedSavings:   FromCents(m.RecommendedSavings),
		SavingRate:           m.SavingRate,
		PreviousMonthBalance: FromCents(m.PreviousMonthBalance),
		CreatedAt:            m.CreatedAt.UTC(),
		LastUpdated:          lastUpdated,
	}
}

// SummaryFromEntity creates a MonthlySummaryModel from a domain MonthlySummary entity.
func SummaryFromEntity(s *entity.MonthlySummary) *MonthlySummaryModel {
	return &MonthlySummaryModel{
		UserID:               s.UserID,
		Month:                s.Month.String(),
		Label:                s.Label,
		TotalIncome:          ToCents(s.TotalIncome),
		TotalExpenses:        ToCents(s.TotalExpenses),
		Balance:              ToCents(s.Balance),
		Saving:               s.Saving,
		SavingBalance:        ToCents(s.SavingBalance),
		RecommendedSavings:   ToCents(s.RecommendedSavings),
		SavingRate:           s.SavingRate,
		PreviousMonthBalance: ToCents(s.PreviousMonthBalance),
		CreatedAt:            s.CreatedAt,
		LastUpdated:          s.LastUpdated,
	}
}

// All returns every model managed by auto-migration, parents first.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&RecordModel{},
		&MonthlySummaryModel{},
	}
}
