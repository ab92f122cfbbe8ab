package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func TestSearchQuery_EffectiveRadius(t *testing.T) {
	tests := []struct {
		name     string
		radius   *int
		expected int
	}{
		{name: "absent radius", radius: nil, expected: DefaultRadiusMeters},
		{name: "zero radius", radius: intPtr(0), expected: DefaultRadiusMeters},
		{name: "explicit radius", radius: intPtr(1200), expected: 1200},
		{name: "negative radius passes through", radius: intPtr(-5), expected: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := SearchQuery{Latitude: 1.23, Longitude: 4.56, RadiusMeters: tt.radius}
			assert.Equal(t, tt.expected, q.EffectiveRadius())
		})
	}
}

func TestPlacesStatusError(t *testing.T) {
	tests := []struct {
		status  string
		wantErr error
		message string
	}{
		{status: "OK"},
		{status: "ZERO_RESULTS"},
		{status: "INVALID_REQUEST", wantErr: ErrPlacesInvalidRequest, message: "Google Places API Error: Invalid Request."},
		{status: "OVER_QUERY_LIMIT", wantErr: ErrPlacesQueryLimit, message: "Google Places API Error: API Query limit reached."},
		{status: "REQUEST_DENIED", wantErr: ErrPlacesRequestDenied, message: "Google Places API Error: Request denied."},
		{status: "UNKNOWN_ERROR", wantErr: ErrPlacesUnknown, message: "Google Places API Error: Unknown error with request."},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			err := PlacesStatusError(tt.status)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.EqualError(t, err, tt.message)
		})
	}

	t.Run("unexpected status", func(t *testing.T) {
		err := PlacesStatusError("NOT_FOUND")

		var placesErr *PlacesError
		require.ErrorAs(t, err, &placesErr)
		assert.Equal(t, `Google Places API Error: Request failed. unexpected status "NOT_FOUND"`, err.Error())
	})
}

func TestNewPlacesRequestFailed(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewPlacesRequestFailed(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Google Places API Error: Request failed. dial tcp: connection refused", err.Error())
}
