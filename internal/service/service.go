package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/katiamach/vessel-weather-api/internal/model"
)

// ErrNoSnapshot is returned when queries run before any tables were loaded.
var ErrNoSnapshot = errors.New("no table snapshot has been loaded yet")

// Repository provides necessary repo methods.
type Repository interface {
	ReadAssignedReports(ctx context.Context) ([]model.VesselReport, error)
	ReadObservations(ctx context.Context) ([]model.WeatherObservation, error)
}

// VesselWeatherService answers KPI queries over a loaded snapshot of the
// vessel report and weather observation tables.
type VesselWeatherService struct {
	repo Repository

	mu       sync.RWMutex
	snapshot *model.Snapshot
}

// New creates new VesselWeatherService. Call Reload to load the first
// snapshot before querying.
func New(repo Repository) *VesselWeatherService {
	return &VesselWeatherService{
		repo: repo,
	}
}

// Reload reads the current tables and swaps them in as the new snapshot.
// Queries in flight keep reading the snapshot they started with.
func (vs *VesselWeatherService) Reload(ctx context.Context) error {
	reports, err := vs.repo.ReadAssignedReports(ctx)
	if err != nil {
		return fmt.Errorf("failed to read vessel reports: %w", err)
	}

	observations, err := vs.repo.ReadObservations(ctx)
	if err != nil {
		return fmt.Errorf("failed to read weather observations: %w", err)
	}

	vs.mu.Lock()
	vs.snapshot = &model.Snapshot{
		Reports:      reports,
		Observations: observations,
	}
	vs.mu.Unlock()

	return nil
}

func (vs *VesselWeatherService) currentSnapshot() (*model.Snapshot, error) {
	vs.mu.RLock()
	defer vs.mu.RUnlock()

	if vs.snapshot == nil {
		return nil, ErrNoSnapshot
	}

	return vs.snapshot, nil
}

// GetVesselCount implements the distinct vessel count query.
func (vs *VesselWeatherService) GetVesselCount(ctx context.Context) (int, error) {
	snapshot, err := vs.currentSnapshot()
	if err != nil {
		return 0, err
	}

	return VesselCount(snapshot.Reports)
}

// GetHourlyAvgSpeed implements the per-vessel hourly average speed query for
// the given date.
func (vs *VesselWeatherService) GetHourlyAvgSpeed(ctx context.Context, date time.Time) ([]model.AvgSpeedRow, error) {
	snapshot, err := vs.currentSnapshot()
	if err != nil {
		return nil, err
	}

	averages, err := HourlyAvgSpeed(snapshot.Reports, date)
	if err != nil {
		return nil, err
	}

	rows := make([]model.AvgSpeedRow, 0, len(averages))
	for key, avg := range averages {
		rows = append(rows, model.AvgSpeedRow{
			VesselID: key.VesselID,
			Hour:     key.Hour,
			AvgSpeed: avg,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].VesselID != rows[j].VesselID {
			return rows[i].VesselID < rows[j].VesselID
		}
		return rows[i].Hour.Before(rows[j].Hour)
	})

	return rows, nil
}

// GetHourlyWindExtremes implements the hourly wind max/min query for one
// vessel and date.
func (vs *VesselWeatherService) GetHourlyWindExtremes(ctx context.Context, vesselID string, date time.Time) ([]model.WindExtremesRow, error) {
	aligned, err := vs.alignForVessel(ctx, vesselID, date)
	if err != nil {
		return nil, err
	}

	extremes, err := HourlyWindExtremes(aligned, vesselID, date)
	if err != nil {
		return nil, err
	}

	rows := make([]model.WindExtremesRow, 0, len(extremes))
	for hour, ext := range extremes {
		rows = append(rows, model.WindExtremesRow{
			Hour:         hour,
			WindExtremes: ext,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Hour.Before(rows[j].Hour)
	})

	return rows, nil
}

// GetRouteWeather implements the route weather trail query for one vessel
// and date.
func (vs *VesselWeatherService) GetRouteWeather(ctx context.Context, vesselID string, date time.Time) ([]model.RoutePoint, error) {
	aligned, err := vs.alignForVessel(ctx, vesselID, date)
	if err != nil {
		return nil, err
	}

	return RouteWeatherSeries(aligned, vesselID, date)
}

// alignForVessel joins one vessel's reports for the given day with the
// observations of their assigned stations.
func (vs *VesselWeatherService) alignForVessel(ctx context.Context, vesselID string, date time.Time) ([]model.AlignedRecord, error) {
	snapshot, err := vs.currentSnapshot()
	if err != nil {
		return nil, err
	}

	var vesselReports []model.VesselReport
	for _, report := range snapshot.Reports {
		if report.VesselID == vesselID {
			vesselReports = append(vesselReports, report)
		}
	}

	windowStart := date.UTC()
	return AlignWeather(vesselReports, snapshot.Observations, windowStart, windowStart.Add(day)), nil
}
