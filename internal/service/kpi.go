package service

import (
	"errors"
	"time"

	"github.com/katiamach/vessel-weather-api/internal/model"
)

// ErrEmptyWindow is returned when a query's filters leave no rows, so the
// caller can tell "no data for this selection" apart from a zero result.
var ErrEmptyWindow = errors.New("there is no data for the requested window")

// day is the length of the window all per-date queries cover.
const day = 24 * time.Hour

// VesselHour groups hourly speed averages by vessel and hour bucket.
type VesselHour struct {
	VesselID string
	Hour     time.Time
}

// VesselCount returns the number of distinct vessels present in reports.
func VesselCount(reports []model.VesselReport) (int, error) {
	if len(reports) == 0 {
		return 0, ErrEmptyWindow
	}

	seen := make(map[string]struct{})
	for _, report := range reports {
		seen[report.VesselID] = struct{}{}
	}

	return len(seen), nil
}

// HourlyAvgSpeed averages speed over ground per vessel and hour bucket over
// [date, date+1day). Vessels and hours without reports are absent from the
// result.
func HourlyAvgSpeed(reports []model.VesselReport, date time.Time) (map[VesselHour]float64, error) {
	windowStart := date.UTC()
	windowEnd := windowStart.Add(day)

	sums := make(map[VesselHour]float64)
	counts := make(map[VesselHour]int)

	for _, report := range reports {
		if report.Timestamp.Before(windowStart) || !report.Timestamp.Before(windowEnd) {
			continue
		}

		key := VesselHour{
			VesselID: report.VesselID,
			Hour:     hourBucket(report.Timestamp),
		}
		sums[key] += report.SpeedOverGround
		counts[key]++
	}

	if len(sums) == 0 {
		return nil, ErrEmptyWindow
	}

	averages := make(map[VesselHour]float64, len(sums))
	for key, sum := range sums {
		averages[key] = sum / float64(counts[key])
	}

	return averages, nil
}

// HourlyWindExtremes computes max and min wind speed per hour bucket for one
// vessel and one day. Records without matched weather contribute nothing; if
// every record in the window lacks weather, ErrEmptyWindow is returned.
func HourlyWindExtremes(aligned []model.AlignedRecord, vesselID string, date time.Time) (map[time.Time]model.WindExtremes, error) {
	windowStart := date.UTC()
	windowEnd := windowStart.Add(day)

	extremes := make(map[time.Time]model.WindExtremes)
	for _, record := range aligned {
		if record.VesselID != vesselID || record.Weather == nil {
			continue
		}
		if record.Timestamp.Before(windowStart) || !record.Timestamp.Before(windowEnd) {
			continue
		}

		hour := hourBucket(record.Timestamp)
		windSpeed := record.Weather.WindSpeed

		ext, ok := extremes[hour]
		if !ok {
			extremes[hour] = model.WindExtremes{Max: windSpeed, Min: windSpeed}
			continue
		}

		if windSpeed > ext.Max {
			ext.Max = windSpeed
		}
		if windSpeed < ext.Min {
			ext.Min = windSpeed
		}
		extremes[hour] = ext
	}

	if len(extremes) == 0 {
		return nil, ErrEmptyWindow
	}

	return extremes, nil
}

// RouteWeatherSeries returns the ordered per-point weather trail for one
// vessel and one day, for a presentation layer to render as a route.
func RouteWeatherSeries(aligned []model.AlignedRecord, vesselID string, date time.Time) ([]model.RoutePoint, error) {
	windowStart := date.UTC()
	windowEnd := windowStart.Add(day)

	var points []model.RoutePoint
	for _, record := range aligned {
		if record.VesselID != vesselID {
			continue
		}
		if record.Timestamp.Before(windowStart) || !record.Timestamp.Before(windowEnd) {
			continue
		}

		point := model.RoutePoint{
			Lat:       record.Lat,
			Lon:       record.Lon,
			Timestamp: record.Timestamp,
		}
		if record.Weather != nil {
			point.Description = &record.Weather.Description
			point.Temperature = &record.Weather.Temperature
			point.WindSpeed = &record.Weather.WindSpeed
		}

		points = append(points, point)
	}

	if len(points) == 0 {
		return nil, ErrEmptyWindow
	}

	return points, nil
}

// hourBucket truncates a timestamp to the start of its containing hour.
func hourBucket(t time.Time) time.Time {
	return t.UTC().Truncate(time.Hour)
}
