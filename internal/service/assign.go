package service

import (
	"fmt"

	"github.com/katiamach/vessel-weather-api/internal/geo"
	"github.com/katiamach/vessel-weather-api/internal/model"
)

// AssignStations attaches the coordinates of the nearest weather station to
// every report and returns the augmented copies. The inputs are not mutated,
// so running it twice over the same tables yields identical output.
func AssignStations(reports []model.VesselReport, stations []model.WeatherStation) ([]model.VesselReport, error) {
	idx, err := geo.NewLinearIndex(stations)
	if err != nil {
		return nil, fmt.Errorf("failed to build station index: %w", err)
	}

	assigned := make([]model.VesselReport, len(reports))
	for i, report := range reports {
		nearest := idx.Nearest(report.Lat, report.Lon)
		report.StationLat = nearest.Lat
		report.StationLon = nearest.Lon
		assigned[i] = report
	}

	return assigned, nil
}
