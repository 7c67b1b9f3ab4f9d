package usecase

import (
	"context"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

type CreateOpenHouseUseCase struct {
	openHouses port.OpenHouseStoragePort
	listings   port.ListingStoragePort
}

func NewCreateOpenHouseUseCase(openHouses port.OpenHouseStoragePort, listings port.ListingStoragePort) *CreateOpenHouseUseCase {
	return &CreateOpenHouseUseCase{openHouses: openHouses, listings: listings}
}

func (uc *CreateOpenHouseUseCase) Execute(ctx context.Context, actor *domain.Claims, oh *domain.OpenHouse) (*domain.OpenHouse, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateOpenHouse"})

	listing, err := uc.listings.FindByID(ctx, oh.ListingID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if listing == nil {
		vErr := domain.NewValidationError()
		vErr.Add("listing_id", "listing does not exist")
		return nil, vErr
	}
	if !canModify(actor, listing.UserID) {
		ucLogger.Warn("Access denied: actor is not the listing owner", nil)
		return nil, domain.ErrForbidden
	}

	vErr := domain.NewValidationError()
	if !oh.EndTime.After(oh.StartTime) {
		vErr.Add("end_time", "must be after start_time")
	}
	if oh.MaxAttendees != nil && *oh.MaxAttendees <= 0 {
		vErr.Add("max_attendees", "must be > 0")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	oh.ID = uuid.New()
	oh.AttendeesCount = 0
	oh.CreatedAt = time.Now().UTC()

	if err := uc.openHouses.Save(ctx, oh); err != nil {
		ucLogger.Error("Storage failed to save open house", err, nil)
		return nil, err
	}

	ucLogger.Info("Open house created", port.Fields{"open_house_id": oh.ID.String()})
	return oh, nil
}

type ListOpenHousesUseCase struct {
	openHouses port.OpenHouseStoragePort
}

func NewListOpenHousesUseCase(openHouses port.OpenHouseStoragePort) *ListOpenHousesUseCase {
	return &ListOpenHousesUseCase{openHouses: openHouses}
}

func (uc *ListOpenHousesUseCase) Execute(ctx context.Context, page domain.Pagination) ([]domain.OpenHouse, error) {
	return uc.openHouses.ListUpcoming(ctx, page.PerPage, page.Offset())
}

// RsvpOpenHouseUseCase регистрирует посетителя показа. Счетчик растет
// только когда регистрация обязательна.
type RsvpOpenHouseUseCase struct {
	openHouses port.OpenHouseStoragePort
}

func NewRsvpOpenHouseUseCase(openHouses port.OpenHouseStoragePort) *RsvpOpenHouseUseCase {
	return &RsvpOpenHouseUseCase{openHouses: openHouses}
}

func (uc *RsvpOpenHouseUseCase) Execute(ctx context.Context, openHouseID uuid.UUID) (*domain.OpenHouse, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":      "RsvpOpenHouse",
		"open_house_id": openHouseID.String(),
	})

	oh, err := uc.openHouses.FindByID(ctx, openHouseID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if oh == nil {
		return nil, domain.ErrNotFound
	}

	if err := oh.RSVP(); err != nil {
		ucLogger.Warn("RSVP rejected", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.openHouses.Update(ctx, oh); err != nil {
		ucLogger.Error("Storage failed to update open house", err, nil)
		return nil, err
	}

	ucLogger.Info("RSVP recorded", port.Fields{"attendees_count": oh.AttendeesCount})
	return oh, nil
}
