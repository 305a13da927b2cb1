package service

import (
	"context"
	"errors"
	"fmt"

	"arabina/config"
	"arabina/infras/otel"
	"arabina/internal/domains/tenant/model"
	"arabina/internal/domains/tenant/model/dto"
	"arabina/internal/domains/tenant/repository"
	"arabina/shared"
	"arabina/shared/cache"
	"arabina/shared/constant"
	gDto "arabina/shared/dto"
	"arabina/shared/failure"
	"arabina/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetTenant    = "tenant:get"
	cacheGetAllTenant = "tenant:get_all"
	cacheCountTenant  = "tenant:count"
)

type Tenant interface {
	Provision(ctx context.Context, req dto.ProvisionTenantRequest) (dto.TenantResponse, error)
	Get(ctx context.Context, id string) (dto.TenantResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.TenantResponse, error)
	GetByReferralCode(ctx context.Context, code string) (dto.TenantResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTenantsResponse, error)
	Update(ctx context.Context, req dto.UpdateTenantRequest, id string) error
	UpdateSettings(ctx context.Context, req dto.UpdateCapacitySettingsRequest, id string) error
	Deactivate(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Tenant
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Tenant, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Tenant {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Provision(ctx context.Context, req dto.ProvisionTenantRequest) (res dto.TenantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Provision")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	slug, err := s.generateSlug(ctx, req.Name)
	if err != nil {
		return res, err
	}

	referralCode, err := s.generateReferralCode(ctx)
	if err != nil {
		return res, err
	}

	tenant := req.ToModel(user, slug, referralCode)
	settings := req.ToSettingsModel(user, tenant.ID)

	if err = s.repo.Provision(ctx, tenant, settings); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("tenant slug or referral code already taken") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to provision tenant")

		return res, fmt.Errorf("failed to provision tenant: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTenant)
		shared.InvalidateCaches(c, s.cache, cacheCountTenant)
	}()

	res.FromModel(tenant)
	res.WithSettings(settings)

	return res, nil
}

// generateSlug derives a slug from the name and retries with a random
// suffix on collision, up to constant.KeyGenMaxAttempts.
func (s *serviceImpl) generateSlug(ctx context.Context, name string) (string, error) {
	base := shared.Slugify(name)
	if base == constant.Empty {
		return constant.Empty, failure.BadRequestFromString("tenant name produces an empty slug") // nolint:wrapcheck
	}

	for attempt := 0; attempt < constant.KeyGenMaxAttempts; attempt++ {
		candidate := base

		if attempt > 0 {
			suffix, err := shared.RandomToken(constant.ReferralCodeCharset, 4)
			if err != nil {
				log.Error().Err(err).Msg("failed to generate slug suffix")

				return constant.Empty, fmt.Errorf("failed to generate slug suffix: %w", err)
			}

			candidate = base + "-" + shared.Slugify(suffix)
		}

		filter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldSlug,
					Operator: gDto.FilterOperatorEq,
					Value:    candidate,
					Table:    model.TableName,
				},
			},
		}

		exists, err := s.repo.Exist(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to check slug uniqueness")

			return constant.Empty, fmt.Errorf("failed to check slug uniqueness: %w", err)
		}

		if !exists {
			return candidate, nil
		}
	}

	return constant.Empty, failure.Conflict("failed to generate a unique slug") // nolint:wrapcheck
}

// generateReferralCode draws 6 uppercase alphanumeric characters and
// retries on collision, up to constant.KeyGenMaxAttempts.
func (s *serviceImpl) generateReferralCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < constant.KeyGenMaxAttempts; attempt++ {
		code, err := shared.RandomToken(constant.ReferralCodeCharset, constant.ReferralCodeLength)
		if err != nil {
			log.Error().Err(err).Msg("failed to generate referral code")

			return constant.Empty, fmt.Errorf("failed to generate referral code: %w", err)
		}

		filter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldReferralCode,
					Operator: gDto.FilterOperatorEq,
					Value:    code,
					Table:    model.TableName,
				},
			},
		}

		exists, err := s.repo.Exist(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to check referral code uniqueness")

			return constant.Empty, fmt.Errorf("failed to check referral code uniqueness: %w", err)
		}

		if !exists {
			return code, nil
		}
	}

	return constant.Empty, failure.Conflict("failed to generate a unique referral code") // nolint:wrapcheck
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TenantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.getOne(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.TenantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySlug")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTenant, "slug", slug)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tenant")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSlug,
				Operator: gDto.FilterOperatorEq,
				Value:    slug,
				Table:    model.TableName,
			},
		},
	}

	res, err = s.getOne(ctx, filter)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tenant to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByReferralCode(ctx context.Context, code string) (res dto.TenantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByReferralCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldReferralCode,
				Operator: gDto.FilterOperatorEq,
				Value:    code,
				Table:    model.TableName,
			},
		},
	}

	return s.getOne(ctx, filter)
}

func (s *serviceImpl) getOne(ctx context.Context, filter gDto.FilterGroup) (res dto.TenantResponse, err error) {
	tenant, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tenant")

		return res, fmt.Errorf("failed to get tenant: %w", err)
	}

	if tenant.ID == constant.Empty {
		return res, failure.NotFound("tenant not found") // nolint:wrapcheck
	}

	settings, err := s.repo.GetSettings(ctx, tenant.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get capacity settings")

		return res, fmt.Errorf("failed to get capacity settings: %w", err)
	}

	res.FromModel(tenant)

	if settings.ID != constant.Empty {
		res.WithSettings(settings)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTenantsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTenant, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tenants")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tenants")

		return res, fmt.Errorf("failed to count tenants: %w", err)
	}

	tenants, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tenants")

		return res, fmt.Errorf("failed to get tenants: %w", err)
	}

	res.FromModels(tenants, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tenants to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTenantRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateTenantRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if tenant exists")

		return fmt.Errorf("failed to check if tenant exists: %w", err)
	}

	if !exist {
		return failure.NotFound("tenant not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update tenant")

		return fmt.Errorf("failed to update tenant: %w", err)
	}

	s.invalidateTenantCaches(ctx)

	return nil
}

func (s *serviceImpl) UpdateSettings(ctx context.Context, req dto.UpdateCapacitySettingsRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateCapacitySettingsRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	settings, err := s.repo.GetSettings(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get capacity settings")

		return fmt.Errorf("failed to get capacity settings: %w", err)
	}

	if settings.ID == constant.Empty {
		return failure.NotFound("capacity settings not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.UpdateSettings(ctx, updatedFields, id); err != nil {
		log.Error().Err(err).Msg("failed to update capacity settings")

		return fmt.Errorf("failed to update capacity settings: %w", err)
	}

	s.invalidateTenantCaches(ctx)

	return nil
}

func (s *serviceImpl) Deactivate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Deactivate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if tenant exists")

		return fmt.Errorf("failed to check if tenant exists: %w", err)
	}

	if !exist {
		return failure.NotFound("tenant not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldActive:        false,
		constant.FieldModifiedBy: user,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to deactivate tenant")

		return fmt.Errorf("failed to deactivate tenant: %w", err)
	}

	s.invalidateTenantCaches(ctx)

	return nil
}

func (s *serviceImpl) invalidateTenantCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetTenant)
		shared.InvalidateCaches(c, s.cache, cacheGetAllTenant)
		shared.InvalidateCaches(c, s.cache, cacheCountTenant)
	}()
}
