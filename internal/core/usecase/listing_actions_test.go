package usecase

import (
	"context"
	"testing"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendInquiryStampsCreatedAt(t *testing.T) {
	ownerID := uuid.New()
	listing := domain.Listing{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		UserID:     ownerID,
		Title:      "Двушка у парка",
	}
	listings := &fakeListingStorage{byID: map[uuid.UUID]domain.Listing{listing.ID: listing}}
	messages := newFakeMessageRepo()
	uc := NewSendInquiryUseCase(listings, messages)

	buyer := &domain.Claims{UserID: uuid.New(), Role: domain.RoleBuyer}
	require.NoError(t, uc.Execute(context.Background(), buyer, listing.ID, "Можно посмотреть в субботу?"))

	require.Len(t, messages.byID, 1)
	for _, msg := range messages.byID {
		assert.Equal(t, buyer.UserID, msg.SenderID)
		assert.Equal(t, ownerID, msg.RecipientID)
		assert.False(t, msg.CreatedAt.IsZero(), "inquiry message must carry a creation timestamp")
	}
	assert.Equal(t, 1, listings.inquiries[listing.ID])
}

func TestSendInquiryUnknownListing(t *testing.T) {
	uc := NewSendInquiryUseCase(&fakeListingStorage{}, newFakeMessageRepo())

	err := uc.Execute(context.Background(), &domain.Claims{UserID: uuid.New()}, uuid.New(), "hello")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Execute(context.Background(), nil, uuid.New(), "hello")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
