package service

import (
	"errors"
	"testing"
	"time"

	"github.com/tj/assert"

	"github.com/katiamach/vessel-weather-api/internal/geo"
	"github.com/katiamach/vessel-weather-api/internal/model"
)

func TestAssignStations(t *testing.T) {
	stations := []model.WeatherStation{
		{StationID: "S1", Lat: 10.000, Lon: 20.000},
		{StationID: "S2", Lat: 10.100, Lon: 20.100},
	}
	reports := []model.VesselReport{
		{VesselID: "st-1a2090", Timestamp: time.Date(2019, 2, 13, 8, 0, 0, 0, time.UTC), Lat: 10.001, Lon: 20.001},
		{VesselID: "st-1a2090", Timestamp: time.Date(2019, 2, 13, 9, 0, 0, 0, time.UTC), Lat: 10.099, Lon: 20.099},
	}

	assigned, err := AssignStations(reports, stations)
	assert.Nil(t, err)
	assert.Len(t, assigned, 2)

	assert.Equal(t, 10.000, assigned[0].StationLat)
	assert.Equal(t, 20.000, assigned[0].StationLon)
	assert.Equal(t, 10.100, assigned[1].StationLat)
	assert.Equal(t, 20.100, assigned[1].StationLon)

	// The input reports must not be touched.
	assert.Equal(t, 0.0, reports[0].StationLat)
	assert.Equal(t, 0.0, reports[0].StationLon)
}

func TestAssignStationsIsIdempotent(t *testing.T) {
	stations := []model.WeatherStation{
		{StationID: "S1", Lat: 10.000, Lon: 20.000},
		{StationID: "S2", Lat: 10.100, Lon: 20.100},
	}
	reports := []model.VesselReport{
		{VesselID: "st-1a2090", Lat: 10.001, Lon: 20.001},
		{VesselID: "st-2b3091", Lat: 10.050, Lon: 20.050},
	}

	first, err := AssignStations(reports, stations)
	assert.Nil(t, err)

	second, err := AssignStations(reports, stations)
	assert.Nil(t, err)

	assert.Equal(t, first, second)
}

func TestAssignStationsEmptyStations(t *testing.T) {
	reports := []model.VesselReport{
		{VesselID: "st-1a2090", Lat: 10.001, Lon: 20.001},
	}

	assigned, err := AssignStations(reports, nil)

	assert.Nil(t, assigned)
	assert.True(t, errors.Is(err, geo.ErrEmptyIndex))
}
