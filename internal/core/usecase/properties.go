package usecase

import (
	"context"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

type CreatePropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewCreatePropertyUseCase(storage port.PropertyStoragePort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{storage: storage}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, actor *domain.Claims, property *domain.Property) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateProperty"})

	if actor == nil {
		return nil, domain.ErrForbidden
	}

	property.ID = uuid.New()
	property.OwnerID = actor.UserID
	if property.Address.ID == uuid.Nil {
		property.Address.ID = uuid.New()
	}
	now := time.Now().UTC()
	property.CreatedAt = now
	property.UpdatedAt = now

	if err := property.Validate(); err != nil {
		ucLogger.Warn("Property validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.storage.Save(ctx, property); err != nil {
		ucLogger.Error("Storage returned an error during save", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished: property created", port.Fields{"property_id": property.ID.String()})
	return property, nil
}

type GetPropertyUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetPropertyUseCase(storage port.PropertyStoragePort) *GetPropertyUseCase {
	return &GetPropertyUseCase{storage: storage}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, propertyID uuid.UUID) (*domain.Property, error) {
	property, err := uc.storage.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.ErrNotFound
	}

	// Счетчик просмотров best-effort, его сбой не ломает чтение.
	if err := uc.storage.IncrementViews(ctx, propertyID); err != nil {
		contextkeys.LoggerFromContext(ctx).Warn("Failed to increment property views", port.Fields{"error": err.Error()})
	}

	return property, nil
}

type UpdatePropertyUseCase struct {
	storage port.PropertyStoragePort
	cache   port.CachePort
	keys    port.CacheKeysPort
}

func NewUpdatePropertyUseCase(storage port.PropertyStoragePort, cache port.CachePort, keys port.CacheKeysPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{storage: storage, cache: cache, keys: keys}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, actor *domain.Claims, property *domain.Property) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": property.ID.String(),
	})

	existing, err := uc.storage.FindByID(ctx, property.ID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if !canModify(actor, existing.OwnerID) {
		ucLogger.Warn("Access denied: actor is not the owner", nil)
		return nil, domain.ErrForbidden
	}

	property.OwnerID = existing.OwnerID
	property.CreatedAt = existing.CreatedAt
	property.UpdatedAt = time.Now().UTC()

	if err := property.Validate(); err != nil {
		ucLogger.Warn("Property validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.storage.Update(ctx, property); err != nil {
		ucLogger.Error("Storage failed to update property", err, nil)
		return nil, err
	}

	if err := uc.cache.Delete(ctx, uc.keys.PropertyKeys(property.ID)...); err != nil {
		ucLogger.Warn("Failed to invalidate property cache", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished: property updated", nil)
	return property, nil
}

type DeletePropertyUseCase struct {
	storage port.PropertyStoragePort
	cache   port.CachePort
	keys    port.CacheKeysPort
}

func NewDeletePropertyUseCase(storage port.PropertyStoragePort, cache port.CachePort, keys port.CacheKeysPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{storage: storage, cache: cache, keys: keys}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, actor *domain.Claims, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": propertyID.String(),
	})

	existing, err := uc.storage.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if !canModify(actor, existing.OwnerID) {
		ucLogger.Warn("Access denied: actor is not the owner", nil)
		return domain.ErrForbidden
	}

	if err := uc.storage.Delete(ctx, propertyID); err != nil {
		ucLogger.Error("Storage failed to delete property", err, nil)
		return err
	}

	if err := uc.cache.Delete(ctx, uc.keys.PropertyKeys(propertyID)...); err != nil {
		ucLogger.Warn("Failed to invalidate property cache", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished: property deleted", nil)
	return nil
}

type FindPropertiesUseCase struct {
	storage port.PropertyStoragePort
}

func NewFindPropertiesUseCase(storage port.PropertyStoragePort) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{storage: storage}
}

func (uc *FindPropertiesUseCase) Execute(ctx context.Context, filters domain.PropertyFilters, page domain.Pagination) ([]domain.Property, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "FindProperties"})

	properties, total, err := uc.storage.FindWithFilters(ctx, filters, page.PerPage, page.Offset())
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, 0, err
	}

	return properties, total, nil
}
