package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateValidate(t *testing.T) {
	assert.NoError(t, Coordinate{Lat: 40.7128, Lon: -74.0060}.Validate())
	assert.NoError(t, Coordinate{Lat: -90, Lon: 180}.Validate())

	assert.Error(t, Coordinate{Lat: 91, Lon: 0}.Validate())
	assert.Error(t, Coordinate{Lat: 0, Lon: -181}.Validate())
}

func TestNewBoundingBoxCoversRadius(t *testing.T) {
	center := Coordinate{Lat: 40.7128, Lon: -74.0060}
	box, err := NewBoundingBox(center, 5)
	require.NoError(t, err)

	// Квадрат — внешняя аппроксимация круга: сам центр и точки
	// на расстоянии до радиуса обязаны попадать внутрь.
	assert.True(t, box.Contains(center))
	assert.True(t, box.Contains(Coordinate{Lat: center.Lat + 0.04, Lon: center.Lon}))
	assert.True(t, box.Contains(Coordinate{Lat: center.Lat, Lon: center.Lon - 0.04}))

	// Точка далеко за радиусом остается снаружи.
	assert.False(t, box.Contains(Coordinate{Lat: center.Lat + 1, Lon: center.Lon}))
}

func TestNewBoundingBoxRejectsBadInput(t *testing.T) {
	_, err := NewBoundingBox(Coordinate{Lat: 99, Lon: 0}, 5)
	assert.Error(t, err)

	_, err = NewBoundingBox(Coordinate{Lat: 0, Lon: 0}, -1)
	assert.Error(t, err)
}

func TestDistanceKm(t *testing.T) {
	a := Coordinate{Lat: 40.7128, Lon: -74.0060}

	assert.InDelta(t, 0, DistanceKm(a, a), 0.001)

	// Один градус широты — примерно 111 км.
	b := Coordinate{Lat: 41.7128, Lon: -74.0060}
	assert.InDelta(t, 111, DistanceKm(a, b), 1.5)
}
