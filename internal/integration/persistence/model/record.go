package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/wallet/internal/domain/entity"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
)

// RecordModel represents the records table in the database. Amount is in cents.
type RecordModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_records_user_month_date,priority:1"`
	Month       string    `gorm:"type:varchar(7);not null;index:idx_records_user_month_date,priority:2"`
	Date        time.Time `gorm:"type:timestamp;not null;index:idx_records_user_month_date,priority:3"`
	Type        string    `gorm:"type:varchar(10);not null"`
	Category    string    `gorm:"type:varchar(100);not null"`
	SubCategory string    `gorm:"type:varchar(100)"`
	Amount      int64     `gorm:"type:bigint;not null"`
	Note        string    `gorm:"type:text"`
	Saving      int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the RecordModel.
func (RecordModel) TableName() string {
	return "records"
}

// ToEntity converts a RecordModel to a domain Record entity.
func (m *RecordModel) ToEntity() *entity.Record {
	month, _ := valueobject.ParseMonthKey(m.Month)
	return &entity.Record{
		ID:          m.ID,
		UserID:      m.UserID,
		Month:       month,
		Type:        entity.RecordType(m.Type),
		Category:    m.Category,
		SubCategory: m.SubCategory,
		Amount:      FromCents(m.Amount),
		Note:        m.Note,
		Saving:      m.Saving,
		Date:        m.Date.UTC(),
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

// RecordFromEntity creates a RecordModel from a domain Record entity.
func RecordFromEntity(r *entity.Record) *RecordModel {
	return &RecordModel{
		ID:          r.ID,
		UserID:      r.UserID,
		Month:       r.Month.String(),
		Date:        r.Date,
		Type:        string(r.Type),
		Category:    r.Category,
		SubCategory: r.SubCategory,
		Amount:      ToCents(r.Amount),
		Note:        r.Note,
		Saving:      r.Saving,
		CreatedAt:   r.CreatedAt,
	}
}
