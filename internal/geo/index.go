// Package geo provides nearest-station lookup over a weather station table.
package geo

import (
	"errors"

	"github.com/katiamach/vessel-weather-api/internal/model"
	"github.com/umahmood/haversine"
)

// ErrEmptyIndex is returned when there are no stations to search.
var ErrEmptyIndex = errors.New("there are no stations to search")

// Index answers nearest-station queries. Implementations must be
// deterministic: on equal distances the station that appears first in the
// table order the index was built from wins.
type Index interface {
	Nearest(lat, lon float64) *model.WeatherStation
}

// LinearIndex scans every station on each query. Fine for tens of stations;
// a grid or k-d tree can implement Index for bigger tables without touching
// callers.
type LinearIndex struct {
	stations []model.WeatherStation
}

// NewLinearIndex builds an index over the given station table, keeping its
// order. Build it once and reuse it across lookups.
func NewLinearIndex(stations []model.WeatherStation) (*LinearIndex, error) {
	if len(stations) == 0 {
		return nil, ErrEmptyIndex
	}

	return &LinearIndex{stations: stations}, nil
}

// Nearest returns the station with minimum great-circle distance to the
// given point.
func (idx *LinearIndex) Nearest(lat, lon float64) *model.WeatherStation {
	var minDistance float64
	minIndex := 0

	for i, st := range idx.stations {
		km := Distance(lat, lon, st.Lat, st.Lon)
		if i == 0 || km < minDistance {
			minDistance = km
			minIndex = i
		}
	}

	return &idx.stations[minIndex]
}

// Distance returns the great-circle distance between two points in
// kilometers, computed with the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: lat1, Lon: lon1},
		haversine.Coord{Lat: lat2, Lon: lon2},
	)

	return km
}
