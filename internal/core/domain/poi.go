package domain

import "github.com/google/uuid"

// Типы транспортных остановок.
const (
	TransitSubway = "subway"
	TransitBus    = "bus"
	TransitFerry  = "ferry"
	TransitTrain  = "train"
	TransitTram   = "tram"
)

// Типы школ.
const (
	SchoolElementary = "elementary"
	SchoolMiddle     = "middle"
	SchoolHigh       = "high"
	SchoolCharter    = "charter"
	SchoolPrivate    = "private"
)

// TransitStation — остановка общественного транспорта рядом с объектами.
type TransitStation struct {
	ID          uuid.UUID
	Name        string
	TransitType string
	Location    Coordinate
	Operator    string
}

func (s *TransitStation) Validate() error {
	vErr := NewValidationError()
	if s.Name == "" {
		vErr.Add("name", "is required")
	}
	switch s.TransitType {
	case TransitSubway, TransitBus, TransitFerry, TransitTrain, TransitTram:
	default:
		vErr.Add("transit_type", "unknown transit type")
	}
	if err := s.Location.Validate(); err != nil {
		vErr.Add("location", err.Error())
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// School — школа; rating по шкале 1-10, заполняется не всегда.
type School struct {
	ID           uuid.UUID
	Name         string
	SchoolType   string
	Location     Coordinate
	Rating       *int
	StudentCount *int
}

func (s *School) Validate() error {
	vErr := NewValidationError()
	if s.Name == "" {
		vErr.Add("name", "is required")
	}
	switch s.SchoolType {
	case SchoolElementary, SchoolMiddle, SchoolHigh, SchoolCharter, SchoolPrivate:
	default:
		vErr.Add("school_type", "unknown school type")
	}
	if err := s.Location.Validate(); err != nil {
		vErr.Add("location", err.Error())
	}
	if s.Rating != nil && (*s.Rating < 1 || *s.Rating > 10) {
		vErr.Add("rating", "must be between 1 and 10")
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// TransitDistance — остановка с расстоянием от адреса объекта.
type TransitDistance struct {
	Station    TransitStation
	DistanceKm float64
}

// SchoolDistance — школа с расстоянием от адреса объекта.
type SchoolDistance struct {
	School     School
	DistanceKm float64
}

// NearbyPlaces — транспорт и школы вокруг объекта, отсортированные
// по возрастанию расстояния.
type NearbyPlaces struct {
	Transit []TransitDistance
	Schools []SchoolDistance
}
