package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"arabina/infras/otel"
	"arabina/infras/postgres"
	"arabina/internal/domains/tenant/model"
	"arabina/shared"
	"arabina/shared/constant"
	gDto "arabina/shared/dto"
	gRepo "arabina/shared/repository"

	"github.com/rs/zerolog/log"
)

type Tenant interface {
	Insert(ctx context.Context, model model.Tenant) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Tenant, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Tenant, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Provision(ctx context.Context, tenant model.Tenant, settings model.CapacitySettings) error
	GetSettings(ctx context.Context, tenantID string) (model.CapacitySettings, error)
	UpdateSettings(ctx context.Context, req map[string]any, tenantID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Tenant]
	settings gRepo.Repository[model.CapacitySettings]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Tenant {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Tenant](model.EntityName, model.TableName, model.FieldID, db, otel),
		settings:   gRepo.NewRepository[model.CapacitySettings](model.SettingsEntityName, model.SettingsTableName, model.FieldSettingsID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Provision inserts the tenant and its capacity settings in one transaction.
func (r *repositoryImpl) Provision(ctx context.Context, tenant model.Tenant, settings model.CapacitySettings) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".tenant.Provision")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction (tenant): %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback tenant provisioning")
			}
		}
	}()

	if err = r.Repository.InsertTx(ctx, tx, tenant); err != nil {
		return fmt.Errorf("failed to insert tenant: %w", err)
	}

	if err = r.settings.InsertTx(ctx, tx, settings); err != nil {
		return fmt.Errorf("failed to insert capacity settings: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tenant provisioning: %w", err)
	}

	return nil
}

func (r *repositoryImpl) GetSettings(ctx context.Context, tenantID string) (model.CapacitySettings, error) {
	filter := shared.FilterByTenant(tenantID, model.FieldSettingsTenantID, model.SettingsTableName)

	return r.settings.Get(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateSettings(ctx context.Context, req map[string]any, tenantID string) error {
	filter := shared.FilterByTenant(tenantID, model.FieldSettingsTenantID, model.SettingsTableName)

	return r.settings.Update(ctx, req, filter) //nolint:wrapcheck
}
