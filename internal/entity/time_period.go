package entity

import (
	"time"

	"github.com/guregu/null/v6"
)

type TimePeriod struct {
	ID          int64       `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Minutes     int32       `db:"minutes" json:"minutes"`
	Description null.String `db:"description" json:"description"`
	Active      bool        `db:"is_active" json:"is_active"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

func (TimePeriod) TableName() string {
	return "time_periods"
}
