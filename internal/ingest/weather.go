package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/katiamach/vessel-weather-api/internal/logger"
	"github.com/katiamach/vessel-weather-api/internal/model"
)

const observationTimeLayout = "2006-01-02T15:04:05"

// stationJSON mirrors one station entry of the weather data file.
type stationJSON struct {
	StationID string            `json:"station_id"`
	Lat       float64           `json:"lat"`
	Lon       float64           `json:"lon"`
	Data      []observationJSON `json:"data"`
	Sources   json.RawMessage   `json:"sources"`
}

type observationJSON struct {
	TimestampUTC string  `json:"timestamp_utc"`
	Datetime     string  `json:"datetime"`
	Temp         float64 `json:"temp"`
	WindSpd      float64 `json:"wind_spd"`
	Weather      struct {
		Description string `json:"description"`
	} `json:"weather"`

	raw json.RawMessage
}

func (o *observationJSON) UnmarshalJSON(data []byte) error {
	type alias observationJSON
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*o = observationJSON(decoded)
	o.raw = append(json.RawMessage(nil), data...)
	return nil
}

// ReadWeatherData reads a weather data json file at two levels: the station
// rows, with their observation payload kept as opaque text, and the
// normalized observation rows sorted by timestamp. Station coordinates are
// rounded the same way report coordinates are.
func ReadWeatherData(r io.Reader) ([]model.WeatherStation, []model.WeatherObservation, error) {
	var entries []stationJSON
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, nil, fmt.Errorf("failed to decode weather data json: %w", err)
	}

	stations := make([]model.WeatherStation, 0, len(entries))
	var observations []model.WeatherObservation

	for _, entry := range entries {
		if entry.StationID == "" {
			return nil, nil, fmt.Errorf("%w: station_id", ErrSchemaMismatch)
		}

		stationLat := Round3(entry.Lat)
		stationLon := Round3(entry.Lon)

		stations = append(stations, model.WeatherStation{
			StationID: entry.StationID,
			Lat:       stationLat,
			Lon:       stationLon,
			Data:      rawDataText(entry.Data),
			Sources:   string(entry.Sources),
		})

		for _, obs := range entry.Data {
			timestamp, err := parseObservationTime(obs.TimestampUTC)
			if err != nil {
				logger.Error(fmt.Errorf("station %s: %v", entry.StationID, err))
				continue
			}

			observations = append(observations, model.WeatherObservation{
				StationID:    entry.StationID,
				TimestampUTC: timestamp,
				StationLat:   stationLat,
				StationLon:   stationLon,
				Temperature:  obs.Temp,
				WindSpeed:    obs.WindSpd,
				Description:  obs.Weather.Description,
			})
		}
	}

	sort.SliceStable(observations, func(i, j int) bool {
		return observations[i].TimestampUTC.Before(observations[j].TimestampUTC)
	})

	return stations, observations, nil
}

func parseObservationTime(value string) (time.Time, error) {
	t, err := time.Parse(observationTimeLayout, value)
	if err != nil {
		// Some providers append a zone designator.
		t, err = time.Parse(time.RFC3339, value)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp_utc value: %w", err)
	}

	return t.UTC(), nil
}

func rawDataText(data []observationJSON) string {
	parts := make([]json.RawMessage, 0, len(data))
	for _, obs := range data {
		parts = append(parts, obs.raw)
	}

	text, err := json.Marshal(parts)
	if err != nil {
		return ""
	}

	return string(text)
}
