package domain

import (
	"time"

	"github.com/google/uuid"
)

// Типы объявлений.
const (
	ListingSale       = "sale"
	ListingRent       = "rent"
	ListingAuction    = "auction"
	ListingLeaseToOwn = "lease_to_own"
)

// Listing — объявление о продаже/аренде, привязанное к одному объекту.
// Объявление деактивируется, но не удаляется физически.
type Listing struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	UserID        uuid.UUID
	ListingType   string
	Title         string
	Description   string
	Price         float64
	Bedrooms      int
	Bathrooms     float64
	SquareFeet    *float64
	IsActive      bool
	ListedDate    time.Time
	ContractDate  *time.Time
	ClosingDate   *time.Time
	DaysOnMarket  *int
	ViewsCount    int
	InquiresCount int
	// Координаты берутся из адреса объекта и денормализуются сюда,
	// чтобы геофильтр работал одним запросом без join на каждое чтение.
	Location  Coordinate
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecalculateDaysOnMarket выводит days_on_market из дат на момент записи.
// Вызывается перед каждым сохранением объявления.
func (l *Listing) RecalculateDaysOnMarket() {
	if l.ContractDate == nil || l.ListedDate.IsZero() {
		l.DaysOnMarket = nil
		return
	}
	days := int(l.ContractDate.Sub(l.ListedDate).Hours() / 24)
	l.DaysOnMarket = &days
}

// Validate проверяет поля объявления перед сохранением.
func (l *Listing) Validate() error {
	vErr := NewValidationError()
	if l.PropertyID == uuid.Nil {
		vErr.Add("property_id", "is required")
	}
	if l.UserID == uuid.Nil {
		vErr.Add("user_id", "is required")
	}
	switch l.ListingType {
	case ListingSale, ListingRent, ListingAuction, ListingLeaseToOwn:
	default:
		vErr.Add("listing_type", "must be one of: sale, rent, auction, lease_to_own")
	}
	if l.Price < 0 {
		vErr.Add("price", "must be >= 0")
	}
	if l.Bedrooms < 0 {
		vErr.Add("bedrooms", "must be >= 0")
	}
	if l.Bathrooms < 0 {
		vErr.Add("bathrooms", "must be >= 0")
	}
	if err := l.Location.Validate(); err != nil {
		vErr.Add("location", err.Error())
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// PriceHistory — запись об изменении цены объявления.
type PriceHistory struct {
	ID               uuid.UUID
	ListingID        uuid.UUID
	OldPrice         float64
	NewPrice         float64
	ChangePercentage float64
	ChangedAt        time.Time
}

// NewPriceHistory создает запись изменения цены; процент изменения
// вычисляется на момент записи.
func NewPriceHistory(listingID uuid.UUID, oldPrice, newPrice float64) PriceHistory {
	ph := PriceHistory{
		ID:        uuid.New(),
		ListingID: listingID,
		OldPrice:  oldPrice,
		NewPrice:  newPrice,
		ChangedAt: time.Now().UTC(),
	}
	if oldPrice != 0 {
		ph.ChangePercentage = (newPrice - oldPrice) / oldPrice * 100
	}
	return ph
}

// OpenHouse — показ объекта с опциональной регистрацией посетителей.
type OpenHouse struct {
	ID                   uuid.UUID
	ListingID            uuid.UUID
	StartTime            time.Time
	EndTime              time.Time
	RegistrationRequired bool
	MaxAttendees         *int
	AttendeesCount       int
	CreatedAt            time.Time
}

// RSVP регистрирует посетителя. Счетчик растет только когда регистрация
// обязательна; при заполненном лимите запись отклоняется.
func (o *OpenHouse) RSVP() error {
	if !o.RegistrationRequired {
		return nil
	}
	if o.MaxAttendees != nil && o.AttendeesCount >= *o.MaxAttendees {
		vErr := NewValidationError()
		vErr.Add("attendees", "open house is full")
		return vErr
	}
	o.AttendeesCount++
	return nil
}

// MapCluster — кэшируемый агрегат по фиксированной географической окружности.
type MapCluster struct {
	ID            uuid.UUID
	Name          string
	Center        Coordinate
	RadiusKm      float64
	PropertyCount int
	ListingCount  int
	AvgPrice      float64
	LastUpdated   time.Time
}
