package domain

import (
	"fmt"
	"math"
)

// KmPerDegree — приближение: 111 км на один градус широты.
// Это же значение используется и для долготы: единое документированное
// приближение для всех геозапросов сервиса (без поправки на cos(lat)).
const KmPerDegree = 111.0

// Coordinate — точка на карте.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Validate проверяет, что координаты лежат в допустимых диапазонах.
// Невалидные координаты — ошибка, а не пустой результат поиска.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v not in [-90, 90]", ErrInvalidCoordinates, c.Lat)
	}
	if math.IsNaN(c.Lon) || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v not in [-180, 180]", ErrInvalidCoordinates, c.Lon)
	}
	return nil
}

// BoundingBox — прямоугольная область для грубого геофильтра.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// NewBoundingBox строит квадрат вокруг центра со стороной 2*radiusKm.
// Квадрат намеренно шире круга радиуса radiusKm: он может захватить
// лишние точки по углам, но никогда не теряет точки внутри вписанного круга.
func NewBoundingBox(center Coordinate, radiusKm float64) (BoundingBox, error) {
	if err := center.Validate(); err != nil {
		return BoundingBox{}, err
	}
	if radiusKm < 0 || math.IsNaN(radiusKm) {
		return BoundingBox{}, fmt.Errorf("%w: radius %v must be >= 0", ErrInvalidCoordinates, radiusKm)
	}

	delta := radiusKm / KmPerDegree
	return BoundingBox{
		MinLat: center.Lat - delta,
		MaxLat: center.Lat + delta,
		MinLon: center.Lon - delta,
		MaxLon: center.Lon + delta,
	}, nil
}

// Contains сообщает, попадает ли точка в область (границы включительно).
func (b BoundingBox) Contains(p Coordinate) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}

// DistanceKm — приближенное расстояние по прямой между двумя точками.
// То же приближение 111 км/градус по обеим осям, что и в NewBoundingBox.
// Используется только для сортировки и подписей, не для фильтрации.
func DistanceKm(a, b Coordinate) float64 {
	latDiff := a.Lat - b.Lat
	lonDiff := a.Lon - b.Lon
	return math.Sqrt(latDiff*latDiff+lonDiff*lonDiff) * KmPerDegree
}
