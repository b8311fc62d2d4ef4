package service

import (
	"time"

	"github.com/katiamach/vessel-weather-api/internal/model"
)

// MatchTolerance is the maximum time gap between a vessel report and a
// weather observation for them to be considered aligned.
const MatchTolerance = time.Hour

// coordKey joins observations to reports by the rounded coordinates of the
// assigned station. Both sides are rounded to 3 decimals at ingestion, so
// exact float equality is safe here.
type coordKey struct {
	lat float64
	lon float64
}

// AlignWeather joins one vessel's reports with the observation series of
// their assigned stations, matching each report to the observation nearest
// in time within MatchTolerance.
//
// Reports are filtered to [windowStart, windowEnd); both inputs must be
// sorted by timestamp ascending. The merge keeps one candidate cursor per
// station series and only ever advances it, so the sweep is linear in
// reports plus observations. Every in-window report yields exactly one
// record, with nil Weather when nothing matched; report order is preserved.
// Equal time gaps resolve to the earlier observation.
func AlignWeather(reports []model.VesselReport, observations []model.WeatherObservation, windowStart, windowEnd time.Time) []model.AlignedRecord {
	series := make(map[coordKey][]model.WeatherObservation)
	for _, obs := range observations {
		key := coordKey{lat: obs.StationLat, lon: obs.StationLon}
		series[key] = append(series[key], obs)
	}
	cursors := make(map[coordKey]int)

	var aligned []model.AlignedRecord
	for _, report := range reports {
		if report.Timestamp.Before(windowStart) || !report.Timestamp.Before(windowEnd) {
			continue
		}

		record := model.AlignedRecord{VesselReport: report}

		key := coordKey{lat: report.StationLat, lon: report.StationLon}
		stationObs := series[key]
		if len(stationObs) > 0 {
			i := cursors[key]
			// Advance while the next observation is strictly closer in time.
			for i+1 < len(stationObs) &&
				timeGap(report.Timestamp, stationObs[i+1].TimestampUTC) < timeGap(report.Timestamp, stationObs[i].TimestampUTC) {
				i++
			}
			cursors[key] = i

			if obs := stationObs[i]; timeGap(report.Timestamp, obs.TimestampUTC) <= MatchTolerance {
				record.Weather = &model.Weather{
					TimestampUTC: obs.TimestampUTC,
					Temperature:  obs.Temperature,
					WindSpeed:    obs.WindSpeed,
					Description:  obs.Description,
				}
			}
		}

		aligned = append(aligned, record)
	}

	return aligned
}

func timeGap(a, b time.Time) time.Duration {
	gap := a.Sub(b)
	if gap < 0 {
		return -gap
	}

	return gap
}
