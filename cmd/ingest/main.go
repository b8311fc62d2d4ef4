package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/katiamach/vessel-weather-api/internal/ingest"
	"github.com/katiamach/vessel-weather-api/internal/logger"
	"github.com/katiamach/vessel-weather-api/internal/model"
	"github.com/katiamach/vessel-weather-api/internal/repository"
	"github.com/katiamach/vessel-weather-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using process environment")
	}

	repo, err := repository.New()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to create repository: %v", err))
	}
	defer repo.Close()

	if err := run(context.Background(), repo); err != nil {
		logger.Fatal(fmt.Errorf("failed to run ingestion: %v", err))
	}

	logger.Info("Ingestion finished")
}

// run executes the batch ingestion pipeline: raw messages and weather data
// into their tables, then reports with assigned nearest stations.
func run(ctx context.Context, repo *repository.Repository) error {
	reports, err := ingestRawMessages(ctx, repo)
	if err != nil {
		return err
	}

	stations, err := ingestWeatherData(ctx, repo)
	if err != nil {
		return err
	}

	assigned, err := service.AssignStations(reports, stations)
	if err != nil {
		return fmt.Errorf("failed to assign nearest stations: %w", err)
	}

	err = repo.WriteVesselReports(ctx, repository.RawMessagesStationsTable, assigned, repository.ModeReplace)
	if err != nil {
		return fmt.Errorf("failed to write assigned reports: %w", err)
	}

	return nil
}

func ingestRawMessages(ctx context.Context, repo *repository.Repository) ([]model.VesselReport, error) {
	file, err := os.Open(envOrDefault("RAW_MESSAGES_CSV", "data/raw_messages.csv"))
	if err != nil {
		return nil, fmt.Errorf("failed to open raw messages csv: %w", err)
	}
	defer file.Close()

	reports, err := ingest.ReadRawMessages(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw messages: %w", err)
	}

	err = repo.WriteVesselReports(ctx, repository.RawMessagesTable, reports, repository.ModeReplace)
	if err != nil {
		return nil, fmt.Errorf("failed to write raw messages: %w", err)
	}

	return reports, nil
}

func ingestWeatherData(ctx context.Context, repo *repository.Repository) ([]model.WeatherStation, error) {
	file, err := os.Open(envOrDefault("WEATHER_DATA_JSON", "data/weather_data.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to open weather data json: %w", err)
	}
	defer file.Close()

	stations, observations, err := ingest.ReadWeatherData(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read weather data: %w", err)
	}

	err = repo.WriteStations(ctx, stations, repository.ModeReplace)
	if err != nil {
		return nil, fmt.Errorf("failed to write stations: %w", err)
	}

	err = repo.WriteObservations(ctx, observations, repository.ModeReplace)
	if err != nil {
		return nil, fmt.Errorf("failed to write observations: %w", err)
	}

	return stations, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
