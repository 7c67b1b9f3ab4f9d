package domain

import "github.com/google/uuid"

// ListingFilters - структура для передачи всех возможных фильтров поиска
// объявлений. Геофильтр задается центром и радиусом; в SQL он превращается
// в ограничение по ограничивающему квадрату.
type ListingFilters struct {
	ListingType  string
	PriceMin     *float64
	PriceMax     *float64
	BedroomsMin  *int
	BathroomsMin *float64
	OnlyActive   bool
	PropertyID   *uuid.UUID
	UserID       *uuid.UUID
	Area         *BoundingBox
}

// PropertyFilters — фильтры списка объектов недвижимости.
type PropertyFilters struct {
	PropertyType string
	City         string
	OwnerID      *uuid.UUID
	Area         *BoundingBox
}

// Pagination — стандартные параметры постраничной выборки.
type Pagination struct {
	Page    int
	PerPage int
}

// Offset переводит номер страницы в смещение для SQL.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// PaginatedListings - стандартная структура для ответа с пагинацией.
type PaginatedListings struct {
	Listings     []Listing
	TotalCount   int
	CurrentPage  int
	ItemsPerPage int
}

// MapView — ответ карточного представления: объявления в области
// плюс агрегаты и попавшие в область кластеры.
type MapView struct {
	Listings      []Listing
	ListingCount  int
	PropertyCount int
	AvgPrice      float64
	Clusters      []MapCluster
}
