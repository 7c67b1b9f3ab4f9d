package usecase

import (
	"context"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

// FavoriteListingUseCase добавляет объявление в избранное: растет счетчик
// избранного у объекта недвижимости.
type FavoriteListingUseCase struct {
	listings   port.ListingStoragePort
	properties port.PropertyStoragePort
}

func NewFavoriteListingUseCase(listings port.ListingStoragePort, properties port.PropertyStoragePort) *FavoriteListingUseCase {
	return &FavoriteListingUseCase{listings: listings, properties: properties}
}

func (uc *FavoriteListingUseCase) Execute(ctx context.Context, actor *domain.Claims, listingID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "FavoriteListing",
		"listing_id": listingID.String(),
	})

	if actor == nil {
		return domain.ErrForbidden
	}

	listing, err := uc.listings.FindByID(ctx, listingID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}
	if listing == nil {
		return domain.ErrNotFound
	}

	if err := uc.properties.IncrementFavorites(ctx, listing.PropertyID); err != nil {
		ucLogger.Error("Failed to increment favorites counter", err, nil)
		return err
	}

	ucLogger.Info("Listing added to favorites", port.Fields{"user_id": actor.UserID.String()})
	return nil
}

// SendInquiryUseCase отправляет владельцу объявления сообщение-запрос
// и увеличивает счетчик обращений.
type SendInquiryUseCase struct {
	listings port.ListingStoragePort
	messages port.MessageRepositoryPort
}

func NewSendInquiryUseCase(listings port.ListingStoragePort, messages port.MessageRepositoryPort) *SendInquiryUseCase {
	return &SendInquiryUseCase{listings: listings, messages: messages}
}

func (uc *SendInquiryUseCase) Execute(ctx context.Context, actor *domain.Claims, listingID uuid.UUID, body string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "SendInquiry",
		"listing_id": listingID.String(),
	})

	if actor == nil {
		return domain.ErrForbidden
	}

	listing, err := uc.listings.FindByID(ctx, listingID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}
	if listing == nil {
		return domain.ErrNotFound
	}

	msg := &domain.Message{
		ID:          uuid.New(),
		SenderID:    actor.UserID,
		RecipientID: listing.UserID,
		Subject:     "Inquiry about listing " + listing.Title,
		Body:        body,
		CreatedAt:   time.Now().UTC(),
	}
	if err := msg.Validate(); err != nil {
		ucLogger.Warn("Inquiry validation failed", port.Fields{"error": err.Error()})
		return err
	}

	if err := uc.messages.Create(ctx, msg); err != nil {
		ucLogger.Error("Failed to create inquiry message", err, nil)
		return err
	}

	if err := uc.listings.IncrementInquiries(ctx, listingID); err != nil {
		ucLogger.Warn("Failed to increment inquiries counter", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Inquiry sent", port.Fields{"recipient_id": listing.UserID.String()})
	return nil
}

type GetPriceHistoryUseCase struct {
	listings port.ListingStoragePort
}

func NewGetPriceHistoryUseCase(listings port.ListingStoragePort) *GetPriceHistoryUseCase {
	return &GetPriceHistoryUseCase{listings: listings}
}

func (uc *GetPriceHistoryUseCase) Execute(ctx context.Context, listingID uuid.UUID) ([]domain.PriceHistory, error) {
	listing, err := uc.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrNotFound
	}
	return uc.listings.GetPriceHistory(ctx, listingID)
}
