package postgres_adapter

import (
	"fmt"
	"strings"

	"marketplace-service/internal/core/domain"
)

type queryBuilder struct {
	joinClause strings.Builder
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: make([]string, 0),
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

func (qb *queryBuilder) addRawCondition(condition string) {
	qb.conditions = append(qb.conditions, condition)
}

// AddFilter принимает указатели на float64 и int
func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) AddIntFilter(fieldName string, min *int, max *int) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

// AddAreaFilter добавляет условия грубого геофильтра: координаты строки
// должны попасть в ограничивающий квадрат.
func (qb *queryBuilder) AddAreaFilter(latField, lonField string, area *domain.BoundingBox) {
	if area == nil {
		return
	}
	qb.addCondition("%s >= $%d", latField, area.MinLat)
	qb.addCondition("%s <= $%d", latField, area.MaxLat)
	qb.addCondition("%s >= $%d", lonField, area.MinLon)
	qb.addCondition("%s <= $%d", lonField, area.MaxLon)
}

// build создает финальные части запроса
func (qb *queryBuilder) build() (string, string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return qb.joinClause.String(), whereClause, qb.args
}

// applyListingFilters разбирает типизированные фильтры объявлений
// и строит части SQL запроса.
func applyListingFilters(filters domain.ListingFilters) (string, string, []interface{}) {
	qb := newQueryBuilder()

	if filters.OnlyActive {
		qb.addRawCondition("l.is_active = true")
	}
	if filters.ListingType != "" {
		qb.addCondition("%s = $%d", "l.listing_type", filters.ListingType)
	}
	if filters.PropertyID != nil {
		qb.addCondition("%s = $%d", "l.property_id", *filters.PropertyID)
	}
	if filters.UserID != nil {
		qb.addCondition("%s = $%d", "l.user_id", *filters.UserID)
	}

	qb.AddFloatFilter("l.price", filters.PriceMin, filters.PriceMax)
	qb.AddIntFilter("l.bedrooms", filters.BedroomsMin, nil)
	qb.AddFloatFilter("l.bathrooms", filters.BathroomsMin, nil)

	qb.AddAreaFilter("l.latitude", "l.longitude", filters.Area)

	return qb.build()
}

// applyPropertyFilters строит части запроса для поиска объектов.
// Адрес лежит в отдельной таблице, поэтому добавляется JOIN.
func applyPropertyFilters(filters domain.PropertyFilters) (string, string, []interface{}) {
	qb := newQueryBuilder()
	qb.joinClause.WriteString(" JOIN addresses a ON p.address_id = a.id ")

	if filters.PropertyType != "" {
		qb.addCondition("%s = $%d", "p.property_type", filters.PropertyType)
	}
	if filters.City != "" {
		qb.addCondition("%s ILIKE $%d", "a.city", filters.City)
	}
	if filters.OwnerID != nil {
		qb.addCondition("%s = $%d", "p.owner_id", *filters.OwnerID)
	}

	qb.AddAreaFilter("a.latitude", "a.longitude", filters.Area)

	return qb.build()
}
