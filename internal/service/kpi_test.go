package service

import (
	"testing"
	"time"

	"github.com/tj/assert"

	"github.com/katiamach/vessel-weather-api/internal/model"
)

func TestVesselCount(t *testing.T) {
	cases := []struct {
		name          string
		vesselIDs     []string
		expectedCount int
		expectedError error
	}{
		{
			name:          "duplicates counted once",
			vesselIDs:     []string{"st-1a2090", "st-2b3091", "st-1a2090"},
			expectedCount: 2,
		},
		{
			name:          "single vessel",
			vesselIDs:     []string{"st-1a2090"},
			expectedCount: 1,
		},
		{
			name:          "no reports",
			vesselIDs:     nil,
			expectedError: ErrEmptyWindow,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reports := make([]model.VesselReport, 0, len(tc.vesselIDs))
			for _, id := range tc.vesselIDs {
				reports = append(reports, model.VesselReport{VesselID: id})
			}

			count, err := VesselCount(reports)

			assert.Equal(t, tc.expectedError, err)
			assert.Equal(t, tc.expectedCount, count)
		})
	}
}

func TestHourlyAvgSpeed(t *testing.T) {
	date := time.Date(2019, 2, 13, 0, 0, 0, 0, time.UTC)

	reports := []model.VesselReport{
		{VesselID: "st-1a2090", Timestamp: date.Add(8*time.Hour + 5*time.Minute), SpeedOverGround: 12.0},
		{VesselID: "st-1a2090", Timestamp: date.Add(8*time.Hour + 40*time.Minute), SpeedOverGround: 14.0},
		{VesselID: "st-1a2090", Timestamp: date.Add(10 * time.Hour), SpeedOverGround: 20.0},
		{VesselID: "st-2b3091", Timestamp: date.Add(8 * time.Hour), SpeedOverGround: 6.0},
		// Next day, must be excluded.
		{VesselID: "st-1a2090", Timestamp: date.Add(25 * time.Hour), SpeedOverGround: 99.0},
	}

	averages, err := HourlyAvgSpeed(reports, date)
	assert.Nil(t, err)
	assert.Len(t, averages, 3)

	assert.Equal(t, 13.0, averages[VesselHour{VesselID: "st-1a2090", Hour: date.Add(8 * time.Hour)}])
	assert.Equal(t, 20.0, averages[VesselHour{VesselID: "st-1a2090", Hour: date.Add(10 * time.Hour)}])
	assert.Equal(t, 6.0, averages[VesselHour{VesselID: "st-2b3091", Hour: date.Add(8 * time.Hour)}])
}

func TestHourlyAvgSpeedEmptyWindow(t *testing.T) {
	date := time.Date(2019, 2, 13, 0, 0, 0, 0, time.UTC)

	reports := []model.VesselReport{
		{VesselID: "st-1a2090", Timestamp: date.Add(-time.Hour), SpeedOverGround: 12.0},
	}

	averages, err := HourlyAvgSpeed(reports, date)

	assert.Nil(t, averages)
	assert.Equal(t, ErrEmptyWindow, err)
}

func TestHourlyWindExtremes(t *testing.T) {
	date := time.Date(2019, 2, 13, 0, 0, 0, 0, time.UTC)

	aligned := []model.AlignedRecord{
		alignedRecord("st-1a2090", date.Add(8*time.Hour), 5.0),
		alignedRecord("st-1a2090", date.Add(8*time.Hour+30*time.Minute), 9.0),
		alignedRecord("st-1a2090", date.Add(9*time.Hour), 7.0),
		// Other vessel and nil weather, both excluded.
		alignedRecord("st-2b3091", date.Add(8*time.Hour), 99.0),
		{VesselReport: model.VesselReport{VesselID: "st-1a2090", Timestamp: date.Add(10 * time.Hour)}},
	}

	extremes, err := HourlyWindExtremes(aligned, "st-1a2090", date)
	assert.Nil(t, err)
	assert.Len(t, extremes, 2)

	assert.Equal(t, model.WindExtremes{Max: 9.0, Min: 5.0}, extremes[date.Add(8*time.Hour)])
	assert.Equal(t, model.WindExtremes{Max: 7.0, Min: 7.0}, extremes[date.Add(9*time.Hour)])
}

func TestHourlyWindExtremesAllWeatherMissing(t *testing.T) {
	date := time.Date(2019, 2, 13, 0, 0, 0, 0, time.UTC)

	aligned := []model.AlignedRecord{
		{VesselReport: model.VesselReport{VesselID: "st-1a2090", Timestamp: date.Add(8 * time.Hour)}},
		{VesselReport: model.VesselReport{VesselID: "st-1a2090", Timestamp: date.Add(9 * time.Hour)}},
	}

	extremes, err := HourlyWindExtremes(aligned, "st-1a2090", date)

	assert.Nil(t, extremes)
	assert.Equal(t, ErrEmptyWindow, err)
}

func TestRouteWeatherSeries(t *testing.T) {
	date := time.Date(2019, 2, 13, 0, 0, 0, 0, time.UTC)

	withWeather := alignedRecord("st-1a2090", date.Add(8*time.Hour), 5.0)
	withWeather.Lat = 10.001
	withWeather.Lon = 20.001

	withoutWeather := model.AlignedRecord{
		VesselReport: model.VesselReport{
			VesselID:  "st-1a2090",
			Timestamp: date.Add(9 * time.Hour),
			Lat:       10.002,
			Lon:       20.002,
		},
	}

	points, err := RouteWeatherSeries([]model.AlignedRecord{withWeather, withoutWeather}, "st-1a2090", date)
	assert.Nil(t, err)
	assert.Len(t, points, 2)

	assert.Equal(t, 10.001, points[0].Lat)
	assert.NotNil(t, points[0].WindSpeed)
	assert.Equal(t, 5.0, *points[0].WindSpeed)
	assert.NotNil(t, points[0].Description)

	// Missing weather stays explicitly null, never zero-filled.
	assert.Equal(t, 10.002, points[1].Lat)
	assert.Nil(t, points[1].WindSpeed)
	assert.Nil(t, points[1].Temperature)
	assert.Nil(t, points[1].Description)
}

func TestRouteWeatherSeriesEmptyWindow(t *testing.T) {
	date := time.Date(2019, 2, 13, 0, 0, 0, 0, time.UTC)

	points, err := RouteWeatherSeries(nil, "st-1a2090", date)

	assert.Nil(t, points)
	assert.Equal(t, ErrEmptyWindow, err)
}

func alignedRecord(vesselID string, timestamp time.Time, windSpeed float64) model.AlignedRecord {
	return model.AlignedRecord{
		VesselReport: model.VesselReport{
			VesselID:  vesselID,
			Timestamp: timestamp,
		},
		Weather: &model.Weather{
			TimestampUTC: timestamp,
			WindSpeed:    windSpeed,
			Temperature:  4.2,
			Description:  "Few clouds",
		},
	}
}
