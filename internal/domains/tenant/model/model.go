package model

import (
	"arabina/shared/model"
	"arabina/shared/money"
)

const (
	TableName  = "tenants"
	EntityName = "tenant"

	FieldID           = "id"
	FieldName         = "name"
	FieldSlug         = "slug"
	FieldReferralCode = "referral_code"
	FieldActive       = "active"
)

const (
	SettingsTableName  = "capacity_settings"
	SettingsEntityName = "capacity_settings"

	FieldSettingsID       = "id"
	FieldSettingsTenantID = "tenant_id"
)

type Tenant struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	Slug         string  `db:"slug"`
	ReferralCode string  `db:"referral_code"`
	Address      *string `db:"address"`
	Phone        *string `db:"phone"`
	Active       bool    `db:"active"`
	model.Metadata
}

// CapacitySettings holds per-tenant pricing and the daily booking cap.
// Prices are stored in cents.
type CapacitySettings struct {
	ID            string       `db:"id"`
	TenantID      string       `db:"tenant_id"`
	PriceChild    money.Amount `db:"price_child"`
	PriceAdult    money.Amount `db:"price_adult"`
	PriceSenior   money.Amount `db:"price_senior"`
	DailyCapacity int          `db:"daily_capacity"`
	model.Metadata
}
