package dto

import (
	"arabina/internal/domains/tenant/model"
	"arabina/shared"
	gDto "arabina/shared/dto"
	gModel "arabina/shared/model"
	"arabina/shared/money"
	"arabina/shared/timezone"

	"github.com/google/uuid"
)

type ProvisionTenantRequest struct {
	Name          string  `json:"name"           validate:"required,min=3,max=100"`
	Address       *string `json:"address"        validate:"omitempty,max=255"`
	Phone         *string `json:"phone"          validate:"omitempty,max=30"`
	PriceChild    int64   `json:"price_child"    validate:"gte=0"`
	PriceAdult    int64   `json:"price_adult"    validate:"gte=0"`
	PriceSenior   int64   `json:"price_senior"   validate:"gte=0"`
	DailyCapacity int     `json:"daily_capacity" validate:"gte=0"`
}

func (r *ProvisionTenantRequest) ToModel(user, slug, referralCode string) model.Tenant {
	return model.Tenant{
		ID:           uuid.NewString(),
		Name:         r.Name,
		Slug:         slug,
		ReferralCode: referralCode,
		Address:      r.Address,
		Phone:        r.Phone,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func (r *ProvisionTenantRequest) ToSettingsModel(user, tenantID string) model.CapacitySettings {
	return model.CapacitySettings{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		PriceChild:    money.Amount(r.PriceChild),
		PriceAdult:    money.Amount(r.PriceAdult),
		PriceSenior:   money.Amount(r.PriceSenior),
		DailyCapacity: r.DailyCapacity,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTenantRequest struct {
	Name    string  `db:"name"    json:"name"    validate:"omitempty,min=3,max=100"`
	Address *string `db:"address" json:"address" validate:"omitempty,max=255"`
	Phone   *string `db:"phone"   json:"phone"   validate:"omitempty,max=30"`
}

type UpdateCapacitySettingsRequest struct {
	PriceChild    *int64 `db:"price_child"    json:"price_child"    validate:"omitempty,gte=0"`
	PriceAdult    *int64 `db:"price_adult"    json:"price_adult"    validate:"omitempty,gte=0"`
	PriceSenior   *int64 `db:"price_senior"   json:"price_senior"   validate:"omitempty,gte=0"`
	DailyCapacity *int   `db:"daily_capacity" json:"daily_capacity" validate:"omitempty,gte=0"`
}

type CapacitySettingsResponse struct {
	PriceChild    money.Amount `json:"price_child"`
	PriceAdult    money.Amount `json:"price_adult"`
	PriceSenior   money.Amount `json:"price_senior"`
	DailyCapacity int          `json:"daily_capacity"`
}

func (r *CapacitySettingsResponse) FromModel(m model.CapacitySettings) {
	r.PriceChild = m.PriceChild
	r.PriceAdult = m.PriceAdult
	r.PriceSenior = m.PriceSenior
	r.DailyCapacity = m.DailyCapacity
}

type TenantResponse struct {
	ID           string                    `json:"id"`
	Name         string                    `json:"name"`
	Slug         string                    `json:"slug"`
	ReferralCode string                    `json:"referral_code"`
	Address      *string                   `json:"address,omitempty"`
	Phone        *string                   `json:"phone,omitempty"`
	Active       bool                      `json:"active"`
	Settings     *CapacitySettingsResponse `json:"settings,omitempty"`
	gDto.Metadata
}

func (r *TenantResponse) FromModel(m model.Tenant) {
	r.ID = m.ID
	r.Name = m.Name
	r.Slug = m.Slug
	r.ReferralCode = m.ReferralCode
	r.Address = m.Address
	r.Phone = m.Phone
	r.Active = m.Active
	r.Metadata.FromModel(m.Metadata)
}

func (r *TenantResponse) WithSettings(m model.CapacitySettings) {
	settings := &CapacitySettingsResponse{}
	settings.FromModel(m)
	r.Settings = settings
}

type GetTenantsResponse struct {
	Tenants   []TenantResponse `json:"tenants"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetTenantsResponse) FromModels(models []model.Tenant, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tenants = make([]TenantResponse, len(models))
	for i, m := range models {
		r.Tenants[i].FromModel(m)
	}
}
