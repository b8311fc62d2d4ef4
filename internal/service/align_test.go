package service

import (
	"testing"
	"time"

	"github.com/tj/assert"

	"github.com/katiamach/vessel-weather-api/internal/model"
)

var (
	alignDay    = time.Date(2019, 2, 13, 0, 0, 0, 0, time.UTC)
	alignDayEnd = alignDay.Add(24 * time.Hour)
)

func report(hour, minute int) model.VesselReport {
	return model.VesselReport{
		VesselID:   "st-1a2090",
		Timestamp:  time.Date(2019, 2, 13, hour, minute, 0, 0, time.UTC),
		StationLat: 10.000,
		StationLon: 20.000,
	}
}

func observation(hour, minute, second int, windSpeed float64) model.WeatherObservation {
	return model.WeatherObservation{
		StationID:    "S1",
		TimestampUTC: time.Date(2019, 2, 13, hour, minute, second, 0, time.UTC),
		StationLat:   10.000,
		StationLon:   20.000,
		WindSpeed:    windSpeed,
		Temperature:  4.2,
		Description:  "Few clouds",
	}
}

func TestAlignWeatherNearestInTime(t *testing.T) {
	reports := []model.VesselReport{report(8, 0), report(9, 30)}
	observations := []model.WeatherObservation{
		observation(7, 55, 0, 5.0),
		observation(9, 0, 0, 7.0),
	}

	aligned := AlignWeather(reports, observations, alignDay, alignDayEnd)
	assert.Len(t, aligned, 2)

	// 08:00 matches 07:55 (5 min gap), 09:30 matches 09:00 (30 min gap).
	assert.NotNil(t, aligned[0].Weather)
	assert.Equal(t, observations[0].TimestampUTC, aligned[0].Weather.TimestampUTC)
	assert.NotNil(t, aligned[1].Weather)
	assert.Equal(t, observations[1].TimestampUTC, aligned[1].Weather.TimestampUTC)
	assert.Equal(t, 7.0, aligned[1].Weather.WindSpeed)
}

func TestAlignWeatherConservation(t *testing.T) {
	reports := []model.VesselReport{
		{VesselID: "st-1a2090", Timestamp: time.Date(2019, 2, 12, 23, 59, 0, 0, time.UTC), StationLat: 10, StationLon: 20},
		report(0, 0),
		report(12, 0),
		report(23, 59),
		{VesselID: "st-1a2090", Timestamp: time.Date(2019, 2, 14, 0, 0, 0, 0, time.UTC), StationLat: 10, StationLon: 20},
	}

	aligned := AlignWeather(reports, nil, alignDay, alignDayEnd)

	// Every in-window report yields exactly one record, nothing else does.
	assert.Len(t, aligned, 3)
	for _, record := range aligned {
		assert.Nil(t, record.Weather)
	}
}

func TestAlignWeatherToleranceBoundary(t *testing.T) {
	cases := []struct {
		name    string
		obs     model.WeatherObservation
		matched bool
	}{
		{name: "exactly one hour", obs: observation(9, 0, 0, 5.0), matched: true},
		{name: "one hour and one second", obs: observation(9, 0, 1, 5.0), matched: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reports := []model.VesselReport{report(8, 0)}

			aligned := AlignWeather(reports, []model.WeatherObservation{tc.obs}, alignDay, alignDayEnd)
			assert.Len(t, aligned, 1)

			if tc.matched {
				assert.NotNil(t, aligned[0].Weather)
			} else {
				assert.Nil(t, aligned[0].Weather)
			}
		})
	}
}

func TestAlignWeatherTieChoosesEarlier(t *testing.T) {
	reports := []model.VesselReport{report(8, 0)}
	observations := []model.WeatherObservation{
		observation(7, 30, 0, 5.0),
		observation(8, 30, 0, 7.0),
	}

	aligned := AlignWeather(reports, observations, alignDay, alignDayEnd)
	assert.Len(t, aligned, 1)
	assert.NotNil(t, aligned[0].Weather)
	assert.Equal(t, observations[0].TimestampUTC, aligned[0].Weather.TimestampUTC)
}

func TestAlignWeatherStationCoordinatesMustMatch(t *testing.T) {
	reports := []model.VesselReport{report(8, 0)}

	other := observation(8, 0, 0, 5.0)
	other.StationLat = 10.100
	other.StationLon = 20.100

	aligned := AlignWeather(reports, []model.WeatherObservation{other}, alignDay, alignDayEnd)
	assert.Len(t, aligned, 1)
	assert.Nil(t, aligned[0].Weather)
}

func TestAlignWeatherMultipleStations(t *testing.T) {
	// The vessel moves between stations during the day; each report must
	// match only its own station's series.
	near := report(8, 0)
	far := report(9, 0)
	far.StationLat = 10.100
	far.StationLon = 20.100

	otherObs := observation(9, 5, 0, 9.0)
	otherObs.StationID = "S2"
	otherObs.StationLat = 10.100
	otherObs.StationLon = 20.100

	observations := []model.WeatherObservation{
		observation(8, 10, 0, 5.0),
		otherObs,
	}

	aligned := AlignWeather([]model.VesselReport{near, far}, observations, alignDay, alignDayEnd)
	assert.Len(t, aligned, 2)
	assert.Equal(t, 5.0, aligned[0].Weather.WindSpeed)
	assert.Equal(t, 9.0, aligned[1].Weather.WindSpeed)
}

func TestAlignWeatherEmptyInputs(t *testing.T) {
	aligned := AlignWeather(nil, []model.WeatherObservation{observation(8, 0, 0, 5.0)}, alignDay, alignDayEnd)
	assert.Len(t, aligned, 0)

	aligned = AlignWeather([]model.VesselReport{report(8, 0)}, nil, alignDay, alignDayEnd)
	assert.Len(t, aligned, 1)
	assert.Nil(t, aligned[0].Weather)
}

func TestAlignWeatherPreservesReportOrder(t *testing.T) {
	reports := []model.VesselReport{report(8, 0), report(8, 30), report(9, 0), report(10, 45)}
	observations := []model.WeatherObservation{
		observation(8, 0, 0, 1.0),
		observation(9, 0, 0, 2.0),
		observation(10, 0, 0, 3.0),
	}

	aligned := AlignWeather(reports, observations, alignDay, alignDayEnd)
	assert.Len(t, aligned, 4)

	for i := 1; i < len(aligned); i++ {
		assert.True(t, !aligned[i].Timestamp.Before(aligned[i-1].Timestamp))
	}
}
