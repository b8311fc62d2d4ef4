package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/katiamach/vessel-weather-api/internal/api"
	"github.com/katiamach/vessel-weather-api/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using process environment")
	}

	err := api.RunAPI()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run vessel weather api: %v", err))
	}
}
