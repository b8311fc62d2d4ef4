package api

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/katiamach/vessel-weather-api/internal/logger"
	"github.com/katiamach/vessel-weather-api/internal/repository"
	"github.com/katiamach/vessel-weather-api/internal/service"
	"github.com/katiamach/vessel-weather-api/internal/transport/rest/handler"
)

// RunAPI runs vessel weather KPI API.
func RunAPI() error {
	repo, err := repository.New()
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	vesselService := service.New(repo)
	if err := vesselService.Reload(context.Background()); err != nil {
		return fmt.Errorf("failed to load table snapshot: %w", err)
	}

	server := handler.NewVesselWeatherServer(vesselService)

	r := mux.NewRouter()

	r.HandleFunc("/vessels/count", server.GetVesselCountHandler).Methods("GET")
	r.HandleFunc("/vessels/avg-speeds", server.GetHourlyAvgSpeedHandler).Methods("GET")
	r.HandleFunc("/vessels/{vesselID}/wind-extremes", server.GetWindExtremesHandler).Methods("GET")
	r.HandleFunc("/vessels/{vesselID}/route-weather", server.GetRouteWeatherHandler).Methods("GET")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		logger.Info(fmt.Sprintf("Defaulting to port %s", port))
	}

	logger.Info(fmt.Sprintf("Starting vessel weather api at port %s", port))

	options := setupCorsOptions()
	return http.ListenAndServe(":"+port, handlers.CORS(options...)(r))
}
