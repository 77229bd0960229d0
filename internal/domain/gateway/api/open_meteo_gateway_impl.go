package api

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"weather-app/internal/domain/model/external"
	"weather-app/pkg/http"
)

const (
	geocodingSearchPath = "/v1/search"
	archivePath         = "/v1/archive"
	archiveDateLayout   = "2006-01-02"
	dailyVariables      = "temperature_2m_max,temperature_2m_min,precipitation_sum"
)

type openMeteoGatewayImpl struct {
	geocodingClient *http.Client
	archiveClient   *http.Client
	language        string
}

// NewOpenMeteoGateway creates the gateway with one HTTP client per Open-Meteo host
func NewOpenMeteoGateway(geocodingURL, archiveURL, language string, clientOptions http.ClientOptions) OpenMeteoGateway {
	return &openMeteoGatewayImpl{
		geocodingClient: http.NewHttpClient(geocodingURL, clientOptions),
		archiveClient:   http.NewHttpClient(archiveURL, clientOptions),
		language:        language,
	}
}

// SearchCity returns the best geocoding match for name
func (g *openMeteoGatewayImpl) SearchCity(ctx context.Context, name string) (*external.GeocodingResult, error) {
	successResp, errResp, _, err := g.geocodingClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(geocodingSearchPath).
		WithQueryParams(map[string]string{
			"name":     name,
			"count":    "1",
			"language": g.language,
			"format":   "json",
		}).
		WithSuccessResp(&external.GeocodingResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, upstreamError("geocoding search", errResp, err)
	}

	response := successResp.(*external.GeocodingResponse)
	if len(response.Results) == 0 {
		return nil, nil
	}
	return &response.Results[0], nil
}

// GetDailyArchive fetches the historical daily series for a location
func (g *openMeteoGatewayImpl) GetDailyArchive(ctx context.Context, latitude, longitude float64, start, end time.Time) (*external.ArchiveResponse, error) {
	successResp, errResp, _, err := g.archiveClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(archivePath).
		WithQueryParams(map[string]string{
			"latitude":   strconv.FormatFloat(latitude, 'f', -1, 64),
			"longitude":  strconv.FormatFloat(longitude, 'f', -1, 64),
			"start_date": start.Format(archiveDateLayout),
			"end_date":   end.Format(archiveDateLayout),
			"daily":      dailyVariables,
			"timezone":   "auto",
		}).
		WithSuccessResp(&external.ArchiveResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, upstreamError("archive", errResp, err)
	}

	return successResp.(*external.ArchiveResponse), nil
}

func upstreamError(operation string, errResp any, err error) error {
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr.Reason != "" {
		return fmt.Errorf("open-meteo %s failed: %s: %w", operation, apiErr.Reason, err)
	}
	return fmt.Errorf("open-meteo %s failed: %w", operation, err)
}
