package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"

	"github.com/katiamach/vessel-weather-api/internal/logger"
	"github.com/katiamach/vessel-weather-api/internal/model"
	"github.com/katiamach/vessel-weather-api/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go VesselWeatherService

const dateLayout = "2006-01-02"

// VesselWeatherService provides vessel weather KPI methods.
type VesselWeatherService interface {
	GetVesselCount(ctx context.Context) (int, error)
	GetHourlyAvgSpeed(ctx context.Context, date time.Time) ([]model.AvgSpeedRow, error)
	GetHourlyWindExtremes(ctx context.Context, vesselID string, date time.Time) ([]model.WindExtremesRow, error)
	GetRouteWeather(ctx context.Context, vesselID string, date time.Time) ([]model.RoutePoint, error)
}

// VesselWeatherServer is a server for vessel weather KPI processing.
type VesselWeatherServer struct {
	service VesselWeatherService
}

// NewVesselWeatherServer creates new VesselWeatherServer.
func NewVesselWeatherServer(service VesselWeatherService) *VesselWeatherServer {
	return &VesselWeatherServer{service}
}

// GetVesselCountHandler handles the distinct vessel count request.
func (s *VesselWeatherServer) GetVesselCountHandler(w http.ResponseWriter, r *http.Request) {
	count, err := s.service.GetVesselCount(r.Context())
	if err != nil {
		logger.Error(fmt.Errorf("failed to get vessel count: %v", err))
		respondErr(w, statusFor(err), err)
		return
	}

	respond(w, http.StatusOK, map[string]int{"num_vessels": count})
}

// GetHourlyAvgSpeedHandler handles the hourly average speed request.
func (s *VesselWeatherServer) GetHourlyAvgSpeedHandler(w http.ResponseWriter, r *http.Request) {
	date, err := validateDateParam(r.URL.Query())
	if err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	rows, err := s.service.GetHourlyAvgSpeed(r.Context(), date)
	if err != nil {
		logger.Error(fmt.Errorf("failed to get hourly average speeds: %v", err))
		respondErr(w, statusFor(err), err)
		return
	}

	respond(w, http.StatusOK, rows)
}

// GetWindExtremesHandler handles the hourly wind extremes request.
func (s *VesselWeatherServer) GetWindExtremesHandler(w http.ResponseWriter, r *http.Request) {
	vesselID, date, err := validateVesselParams(r)
	if err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	rows, err := s.service.GetHourlyWindExtremes(r.Context(), vesselID, date)
	if err != nil {
		logger.Error(fmt.Errorf("failed to get wind extremes: %v", err))
		respondErr(w, statusFor(err), err)
		return
	}

	respond(w, http.StatusOK, rows)
}

// GetRouteWeatherHandler handles the route weather series request.
func (s *VesselWeatherServer) GetRouteWeatherHandler(w http.ResponseWriter, r *http.Request) {
	vesselID, date, err := validateVesselParams(r)
	if err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	points, err := s.service.GetRouteWeather(r.Context(), vesselID, date)
	if err != nil {
		logger.Error(fmt.Errorf("failed to get route weather: %v", err))
		respondErr(w, statusFor(err), err)
		return
	}

	respond(w, http.StatusOK, points)
}

func validateDateParam(params url.Values) (time.Time, error) {
	dateStr := params.Get("date")
	if dateStr == "" {
		return time.Time{}, errors.New("date parameter not provided in query")
	}

	date, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date parameter is not a valid date: %w", err)
	}

	return date, nil
}

func validateVesselParams(r *http.Request) (string, time.Time, error) {
	vesselID := mux.Vars(r)["vesselID"]
	if vesselID == "" {
		return "", time.Time{}, errors.New("vessel id not provided in path")
	}

	date, err := validateDateParam(r.URL.Query())
	if err != nil {
		return "", time.Time{}, err
	}

	return vesselID, date, nil
}

// statusFor maps service errors to http statuses: an empty query window is
// "no data for this selection", everything else is a server failure.
func statusFor(err error) int {
	if errors.Is(err, service.ErrEmptyWindow) {
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}
