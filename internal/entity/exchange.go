package entity

import (
	"time"

	"github.com/guregu/null/v6"
)

type ExchangeEnvironment string

const (
	ExchangeEnvironmentSandbox    ExchangeEnvironment = "sandbox"
	ExchangeEnvironmentProduction ExchangeEnvironment = "production"
)

type Exchange struct {
	ID          int64               `db:"id" json:"id"`
	Name        string              `db:"name" json:"name"`
	Code        string              `db:"code" json:"code"`
	Environment ExchangeEnvironment `db:"environment" json:"environment"`
	// credentials are stored for the ingestion side and never serialized
	APIKey        null.String `db:"api_key" json:"-"`
	APISecret     null.String `db:"api_secret" json:"-"`
	APIPassphrase null.String `db:"api_passphrase" json:"-"`
	Active        bool        `db:"is_active" json:"is_active"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at" json:"updated_at"`
}

func (Exchange) TableName() string {
	return "exchanges"
}
