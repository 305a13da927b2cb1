package tenant

import (
	"net/http"

	"arabina/infras/otel"
	"arabina/internal/domains/tenant/model"
	"arabina/internal/domains/tenant/model/dto"
	"arabina/internal/domains/tenant/service"
	"arabina/shared/constant"
	gDto "arabina/shared/dto"
	"arabina/shared/validator"
	"arabina/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Tenant
	otel    otel.Otel
}

func New(service service.Tenant, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/tenants", func(r chi.Router) {
		r.Post("/", handler.ProvisionTenant)
		r.Get("/", handler.GetTenants)
		r.Get("/{id}", handler.GetTenantByID)
		r.Patch("/{id}", handler.UpdateTenant)
		r.Patch("/{id}/settings", handler.UpdateCapacitySettings)
		r.Post("/{id}/deactivate", handler.DeactivateTenant)
		r.Get("/slug/{slug}", handler.GetTenantBySlug)
	})
}

// ProvisionTenant creates a tenant together with its capacity settings.
// @Summary Provision a new tenant
// @Description Create a tenant and its capacity settings in one transaction. Slug and referral code are generated.
// @Tags Tenant
// @Accept json
// @Produce json
// @Param request body dto.ProvisionTenantRequest true "Provision Tenant Request"
// @Success 201 {object} response.Data[dto.TenantResponse] "Provisioned tenant"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tenants [post]
// @Security BearerAuth
func (handler *Handler) ProvisionTenant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProvisionTenant")
	defer scope.End()

	req := dto.ProvisionTenantRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Provision(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to provision tenant")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tenant provisioned successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetTenants retrieves all tenants.
// @Summary Get all tenants
// @Description Retrieve all tenants with optional filtering and pagination.
// @Tags Tenant
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param active query string false "Filter by active flag (true/false)"
// @Success 200 {object} response.Data[dto.GetTenantsResponse] "List of tenants"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tenants [get]
// @Security BearerAuth
func (handler *Handler) GetTenants(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTenants")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if active := r.URL.Query().Get(model.FieldActive); active != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    active,
			Table:    model.TableName,
		})
	}

	tenants, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tenants")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tenants retrieved successfully")

	response.WithJSON(w, http.StatusOK, tenants)
}

// GetTenantByID retrieves a tenant by its ID.
// @Summary Get a tenant by ID
// @Description Retrieve a tenant and its capacity settings by ID.
// @Tags Tenant
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} response.Data[dto.TenantResponse] "Tenant details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tenants/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTenantByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTenantByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	tenant, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tenant by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tenant retrieved successfully")

	response.WithJSON(w, http.StatusOK, tenant)
}

// GetTenantBySlug retrieves a tenant by its public slug.
// @Summary Get a tenant by slug
// @Description Retrieve a tenant by its URL-safe slug. Public endpoint used by booking pages.
// @Tags Tenant
// @Accept json
// @Produce json
// @Param slug path string true "Tenant slug"
// @Success 200 {object} response.Data[dto.TenantResponse] "Tenant details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tenants/slug/{slug} [get]
func (handler *Handler) GetTenantBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTenantBySlug")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	tenant, err := handler.service.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tenant by slug")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tenant retrieved successfully by slug")

	response.WithJSON(w, http.StatusOK, tenant)
}

// UpdateTenant updates a tenant's profile fields.
// @Summary Update a tenant
// @Description Update the name, address, or phone of an existing tenant.
// @Tags Tenant
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param request body dto.UpdateTenantRequest true "Update Tenant Request"
// @Success 200 {object} response.Message "Tenant updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tenants/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTenant")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTenantRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update tenant")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tenant updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Tenant updated successfully")
}

// UpdateCapacitySettings updates a tenant's pricing and daily capacity.
// @Summary Update capacity settings
// @Description Update the per-category prices and daily capacity of a tenant.
// @Tags Tenant
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param request body dto.UpdateCapacitySettingsRequest true "Update Capacity Settings Request"
// @Success 200 {object} response.Message "Capacity settings updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tenants/{id}/settings [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCapacitySettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCapacitySettings")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCapacitySettingsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateSettings(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update capacity settings")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Capacity settings updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Capacity settings updated successfully")
}

// DeactivateTenant marks a tenant inactive.
// @Summary Deactivate a tenant
// @Description Deactivate a tenant. Its booking pages stop resolving; data is kept.
// @Tags Tenant
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} response.Message "Tenant deactivated successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tenants/{id}/deactivate [post]
// @Security BearerAuth
func (handler *Handler) DeactivateTenant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateTenant")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Deactivate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate tenant")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tenant deactivated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Tenant deactivated successfully")
}
