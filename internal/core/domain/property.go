package domain

import (
	"time"

	"github.com/google/uuid"
)

// Типы объектов недвижимости.
const (
	PropertyHouse      = "house"
	PropertyApartment  = "apartment"
	PropertyCondo      = "condo"
	PropertyTownhouse  = "townhouse"
	PropertyLand       = "land"
	PropertyCommercial = "commercial"
)

// Address — адрес объекта с обязательными координатами.
type Address struct {
	ID           uuid.UUID
	Street       string
	City         string
	State        string
	PostalCode   string
	Country      string
	Location     Coordinate
	Neighborhood string
}

// Property — объект недвижимости. Объект создается владельцем и
// практически никогда не удаляется; к нему привязываются объявления.
type Property struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	PropertyType   string
	Status         string
	Address        Address
	YearBuilt      *int
	LotSizeSqft    *float64
	UnitNumber     string
	FloorNumber    *int
	ViewsCount     int
	FavoritesCount int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate проверяет обязательные поля и координаты адреса.
func (p *Property) Validate() error {
	vErr := NewValidationError()
	if p.OwnerID == uuid.Nil {
		vErr.Add("owner_id", "is required")
	}
	if p.PropertyType == "" {
		vErr.Add("property_type", "is required")
	}
	if p.Address.City == "" {
		vErr.Add("address.city", "is required")
	}
	if err := p.Address.Location.Validate(); err != nil {
		vErr.Add("address.location", err.Error())
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}
