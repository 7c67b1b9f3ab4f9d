package usecases_port

import (
	"context"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
)

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, property *domain.Property) (*domain.Property, error)
}

type GetPropertyUseCase interface {
	Execute(ctx context.Context, propertyID uuid.UUID) (*domain.Property, error)
}

type UpdatePropertyUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, property *domain.Property) (*domain.Property, error)
}

type DeletePropertyUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, propertyID uuid.UUID) error
}

type FindPropertiesUseCase interface {
	Execute(ctx context.Context, filters domain.PropertyFilters, page domain.Pagination) ([]domain.Property, int, error)
}

type CreateListingUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, listing *domain.Listing) (*domain.Listing, error)
}

type UpdateListingUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, listing *domain.Listing) (*domain.Listing, error)
}

type DeactivateListingUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, listingID uuid.UUID) error
}

// GetListingDetailsUseCase читает карточку объявления, увеличивая
// счетчик просмотров.
type GetListingDetailsUseCase interface {
	Execute(ctx context.Context, listingID uuid.UUID) (*domain.Listing, error)
}

type FindListingsUseCase interface {
	Execute(ctx context.Context, filters domain.ListingFilters, page domain.Pagination) (*domain.PaginatedListings, error)
}

type FavoriteListingUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, listingID uuid.UUID) error
}

type SendInquiryUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, listingID uuid.UUID, body string) error
}

type GetPriceHistoryUseCase interface {
	Execute(ctx context.Context, listingID uuid.UUID) ([]domain.PriceHistory, error)
}

type GetNearbyPlacesUseCase interface {
	Execute(ctx context.Context, propertyID uuid.UUID, radiusKm float64) (*domain.NearbyPlaces, error)
}

type AddTransitStationUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, station *domain.TransitStation) (*domain.TransitStation, error)
}

type AddSchoolUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, school *domain.School) (*domain.School, error)
}

type CreateOpenHouseUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, oh *domain.OpenHouse) (*domain.OpenHouse, error)
}

type ListOpenHousesUseCase interface {
	Execute(ctx context.Context, page domain.Pagination) ([]domain.OpenHouse, error)
}

type RsvpOpenHouseUseCase interface {
	Execute(ctx context.Context, openHouseID uuid.UUID) (*domain.OpenHouse, error)
}
