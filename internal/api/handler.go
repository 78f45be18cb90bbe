package api

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

type APIResponse struct {
	ResponseType string `json:"responseType"`
}

// ElevationResponse carries a resolved elevation. Elevation is null when
// the tile has no data at the requested grid post; that is a valid
// result, not an error.
type ElevationResponse struct {
	APIResponse
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Elevation *int32 `json:"elevation"`
}

type ErrorResponse struct {
	APIResponse
	Error string `json:"error"`
}

func NewElevationResponse(lat, lon string, elevation *int32) *ElevationResponse {
	return &ElevationResponse{
		APIResponse: APIResponse{ResponseType: "elevation"},
		Latitude:    lat,
		Longitude:   lon,
		Elevation:   elevation,
	}
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		APIResponse: APIResponse{ResponseType: "error"},
		Error:       message,
	}
}

// Response helpers
func Success(body interface{}) (events.APIGatewayProxyResponse, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return Error("Internal Server Error", http.StatusInternalServerError)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(jsonBody),
	}, nil
}

func Error(message string, statusCode int) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(NewErrorResponse(message))

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}, nil
}

// ParseCoordinateTokens extracts the raw coordinate tokens from the query
// parameters. Tokens stay in D.MMSSH form; the lookup service parses and
// validates them.
func ParseCoordinateTokens(params map[string]string) (string, string, error) {
	latToken, hasLat := params["lat"]
	lonToken, hasLon := params["lon"]

	if !hasLat || !hasLon {
		return "", "", MissingCoordinatesError{}
	}

	return latToken, lonToken, nil
}

type MissingCoordinatesError struct{}

func (e MissingCoordinatesError) Error() string {
	return "missing lat/lon query parameters"
}
