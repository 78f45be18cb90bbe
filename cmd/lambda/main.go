package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/hillshade/dted/internal/api"
	"github.com/hillshade/dted/internal/config"
	"github.com/hillshade/dted/internal/dted"
	"github.com/hillshade/dted/internal/geo"
	"github.com/hillshade/dted/internal/lookup"
	"github.com/rs/zerolog/log"
)

var (
	lookupService *lookup.Service
	setupOnce     sync.Once
	setupErr      error
)

func setup(ctx context.Context) error {
	setupOnce.Do(func() {
		cfg := config.LoadFromEnv()
		cfg.InitializeLogging()

		loader, err := cfg.BuildLoader(ctx)
		if err != nil {
			setupErr = err
			return
		}
		lookupService = lookup.NewService(loader)
	})
	return setupErr
}

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if err := setup(ctx); err != nil {
		log.Error().Err(err).Msg("Initializing lookup service")
		return api.Error("Internal Server Error", http.StatusInternalServerError)
	}

	log.Info().Msg("Handling elevation request")

	latToken, lonToken, err := api.ParseCoordinateTokens(request.QueryStringParameters)
	if err != nil {
		return api.Error(err.Error(), http.StatusBadRequest)
	}

	elevation, err := lookupService.Height(ctx, latToken, lonToken)
	if err != nil {
		log.Error().Err(err).Msg("Resolving elevation")
		return api.Error(err.Error(), statusFor(err))
	}

	var meters *int32
	if elevation.Valid {
		meters = &elevation.Meters
	}
	return api.Success(api.NewElevationResponse(latToken, lonToken, meters))
}

// statusFor maps caller mistakes to 400, missing tiles to 404, and
// everything else (corrupt tiles included) to 500.
func statusFor(err error) int {
	var usageErr *lookup.UsageError
	var coordErr *geo.FormatError
	var indexErr *dted.IndexError
	switch {
	case errors.As(err, &usageErr), errors.As(err, &coordErr), errors.As(err, &indexErr):
		return http.StatusBadRequest
	case errors.Is(err, os.ErrNotExist):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func main() {
	lambda.Start(handleRequest)
}
